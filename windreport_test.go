package windreport

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/reports"
	"github.com/zondalab/go-windreport/pkg/template"
	"github.com/zondalab/go-windreport/pkg/units"
)

func signStructure() *Structure {
	return &Structure{
		Kind:    model.KindSign,
		Project: model.Project{Name: "Cartel frontal", Location: "Rosario"},
		Site: model.Site{
			Velocity:       51,
			Category:       model.CategoryII,
			Exposure:       model.ExposureC,
			Directionality: 0.85,
			Importance:     1,
		},
		Gust: model.GustFactor{Simplified: true, Factor: 0.85},
		Sign: &model.Sign{
			Heights:       []float64{0, 3, 6},
			PartialAreas:  []float64{9, 9},
			Cf:            1.45,
			Pressures:     []float64{702.1, 735.4, 768.9},
			PartialForces: []float64{9160, 9600},
			TotalForce:    18760,
		},
	}
}

func TestGenerate(t *testing.T) {
	out, err := Generate(context.Background(), Request{Structure: signStructure()})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	got := string(out)
	for _, want := range []string{
		"title: 'Estudio de cargas de viento: Cartel'",
		"# Datos de entrada",
		"# Resultados",
		"**Total**",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateDefaultsReportToKind(t *testing.T) {
	// No Report name: the structure kind picks the document.
	out, err := Generate(context.Background(), Request{Structure: signStructure()})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if !strings.Contains(string(out), "C~f~ = 1.45") {
		t.Fatalf("sign document not selected:\n%s", out)
	}
}

func TestGenerateUnknownReport(t *testing.T) {
	_, err := Generate(context.Background(), Request{
		Structure: signStructure(),
		Report:    "inexistente",
	})
	if err == nil {
		t.Fatal("expected error for unknown report name")
	}
	if !strings.Contains(err.Error(), "inexistente") {
		t.Fatalf("error must name the missing document: %v", err)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Generate(ctx, Request{Structure: signStructure()})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateUnitSelection(t *testing.T) {
	out, err := Generate(context.Background(), Request{
		Structure: signStructure(),
		Units: UnitSet{
			units.Pressure: units.Kilonewton,
			units.Force:    units.Kilonewton,
		},
	})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	got := string(out)
	for _, want := range []string{"p [kN/m^2^]", "F [kN]", "**18.76**"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateMissingSection(t *testing.T) {
	s := signStructure()
	s.Sign = nil

	_, err := Generate(context.Background(), Request{Structure: s})
	var missing *template.MissingContextError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *template.MissingContextError, got %v", err)
	}
}

func TestGenerateWithRegistryCustomDocument(t *testing.T) {
	registry := reports.DefaultRegistry()
	custom := template.MustNew("resumen")
	custom.Append(template.Literal("# Resumen\n"))
	registry.MustRegister(custom)

	out, err := GenerateWithRegistry(context.Background(), registry, Request{
		Structure: signStructure(),
		Report:    "resumen",
	})
	if err != nil {
		t.Fatalf("GenerateWithRegistry returned error: %v", err)
	}
	if string(out) != "# Resumen\n" {
		t.Fatalf("unexpected output: %q", out)
	}
}
