package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	windreport "github.com/zondalab/go-windreport"
	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/units"
)

// NewRenderCmd creates the render command.
func NewRenderCmd() *cobra.Command {
	var (
		output       string
		report       string
		pressureUnit string
		forceUnit    string
	)

	cmd := &cobra.Command{
		Use:   "render [model.yaml]",
		Short: "Render a model document to a Markdown report",
		Long: `Render reads a YAML model document produced by the calculation engine
and writes the corresponding Markdown report.

Examples:
  # Render to stdout
  windreport render edificio.yaml

  # Render to a file, pressures in kN/m²
  windreport render edificio.yaml --output reporte.md --pressure-unit kN`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			structure, err := loadStructure(args[0])
			if err != nil {
				return err
			}

			unitSet := units.Set{}
			for _, sel := range []struct {
				kind units.Kind
				raw  string
			}{
				{units.Pressure, pressureUnit},
				{units.Force, forceUnit},
			} {
				u := units.Unit(sel.raw)
				if !u.Valid() {
					return fmt.Errorf("unknown unit %q (want N, kN or kG)", sel.raw)
				}
				unitSet[sel.kind] = u
			}

			out, err := windreport.Generate(cmd.Context(), windreport.Request{
				Structure: structure,
				Report:    report,
				Units:     unitSet,
			})
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			if output == "" {
				_, err := cmd.OutOrStdout().Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			slog.Info("report written", "path", output, "bytes", len(out))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().StringVarP(&report, "report", "r", "", "report document to use (defaults to the model's structure kind)")
	cmd.Flags().StringVar(&pressureUnit, "pressure-unit", "N", "display unit for pressures (N, kN, kG)")
	cmd.Flags().StringVar(&forceUnit, "force-unit", "N", "display unit for forces (N, kN, kG)")
	return cmd
}

// loadStructure reads and decodes a YAML model document.
func loadStructure(path string) (*model.Structure, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model: %w", err)
	}
	var structure model.Structure
	if err := yaml.Unmarshal(raw, &structure); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return &structure, nil
}
