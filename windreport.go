// Package windreport renders structural wind-load calculation results
// into Markdown reports ready for document conversion. The root package
// is a thin facade over pkg/render, pkg/reports and pkg/template for
// callers that just want a report out of a model document.
package windreport

import (
	"context"

	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/render"
	"github.com/zondalab/go-windreport/pkg/reports"
	"github.com/zondalab/go-windreport/pkg/template"
	"github.com/zondalab/go-windreport/pkg/units"
)

// Structure is the engineering model root consumed by report rendering.
type Structure = model.Structure

// UnitSet selects the display units for one report request.
type UnitSet = units.Set

// Converter is the external unit conversion contract.
type Converter = units.Converter

// Registry stores report documents by name.
type Registry = render.Registry

// Request describes one report generation.
type Request struct {
	// Structure is the computed engineering model to render.
	Structure *model.Structure
	// Report names the document to use. Empty defaults to the document
	// matching Structure.Kind.
	Report string
	// Units selects display units; nil renders everything in Newtons.
	Units units.Set
	// Convert overrides the unit conversion function. Defaults to
	// units.Convert.
	Convert units.Converter
}

// Generate renders one report to Markdown using the built-in documents.
// Rendering itself never blocks, so ctx is only consulted before work
// starts; batch callers can run independent requests concurrently since
// all shared state is read-only.
func Generate(ctx context.Context, req Request) ([]byte, error) {
	return GenerateWithRegistry(ctx, reports.DefaultRegistry(), req)
}

// GenerateWithRegistry renders one report using a caller-supplied
// document registry, for callers that register their own derived
// documents.
func GenerateWithRegistry(ctx context.Context, registry *render.Registry, req Request) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name := req.Report
	if name == "" && req.Structure != nil {
		name = string(req.Structure.Kind)
	}
	doc, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	bound, err := reports.BindContext(req.Structure, req.Units, req.Convert)
	if err != nil {
		return nil, err
	}

	out, err := render.NewAssembler().Render(doc, bound)
	if err != nil {
		return nil, err
	}
	return []byte(out), nil
}

// NewContext re-exports the context constructor for callers composing
// custom documents.
func NewContext() *template.Context {
	return template.NewContext()
}
