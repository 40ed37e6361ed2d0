package main

import (
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// NewRootCmd creates the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "windreport",
		Short: "Render wind-load calculation results as Markdown reports",
		Long: `windreport turns the YAML model exported by a CIRSOC 102 wind-load
calculation into a formatted Markdown report (building, freestanding
sign or isolated roof), ready for conversion to PDF with pandoc.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewVersionCmd())
	return cmd
}
