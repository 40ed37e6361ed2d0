package reports

import (
	"github.com/zondalab/go-windreport/pkg/macro"
	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/template"
	"github.com/zondalab/go-windreport/pkg/units"
)

// Context names every report document can rely on. Binding happens once
// per render request; blocks and macros read the same snapshot.
const (
	ctxStructure = "estructura"
	ctxUnits     = "unidades"
	ctxConvert   = "convertir"
	ctxHeights   = "alturas"
	ctxBuilding  = "edificio"
	ctxSign      = "cartel"
	ctxOpenRoof  = "cubierta"
	ctxWalls     = "presiones_paredes"
)

// BindContext builds the render context for one report request: the
// model root under a fixed name, the unit selection, the conversion
// function, and the per-kind intermediate bindings (analysis heights,
// grouped pressure tables). Binding is pure and fails fast when the
// model section the document needs is absent.
func BindContext(s *model.Structure, u units.Set, convert units.Converter) (*template.Context, error) {
	if s == nil {
		return nil, &template.MissingContextError{Name: ctxStructure}
	}
	if u == nil {
		u = units.DefaultSet()
	}
	if convert == nil {
		convert = units.Convert
	}

	ctx := template.NewContext().
		Bind(ctxStructure, s).
		Bind(ctxUnits, u).
		Bind(ctxConvert, convert)

	switch s.Kind {
	case model.KindBuilding:
		if s.Building == nil {
			return nil, &template.MissingContextError{Name: ctxBuilding}
		}
		ctx.Bind(ctxBuilding, s.Building).
			Bind(ctxHeights, s.Building.Heights).
			Bind(ctxWalls, s.Building.Walls)
	case model.KindSign:
		if s.Sign == nil {
			return nil, &template.MissingContextError{Name: ctxSign}
		}
		ctx.Bind(ctxSign, s.Sign).
			Bind(ctxHeights, s.Sign.Heights)
	case model.KindOpenRoof:
		if s.OpenRoof == nil {
			return nil, &template.MissingContextError{Name: ctxOpenRoof}
		}
		ctx.Bind(ctxOpenRoof, s.OpenRoof).
			Bind(ctxHeights, []float64{s.OpenRoof.Height})
	}

	return ctx, nil
}

// structureFrom resolves the model root bound by BindContext.
func structureFrom(ctx *template.Context) (*model.Structure, error) {
	return template.Value[*model.Structure](ctx, ctxStructure)
}

// pressureConfig builds the macro configuration for pressure columns
// from the bound unit selection and converter.
func pressureConfig(ctx *template.Context) (macro.Config, error) {
	u, err := template.Value[units.Set](ctx, ctxUnits)
	if err != nil {
		return macro.Config{}, err
	}
	convert, err := template.Value[units.Converter](ctx, ctxConvert)
	if err != nil {
		return macro.Config{}, err
	}
	return macro.Config{Unit: u.Pressure(), Convert: convert}, nil
}

// forceConfig builds the macro configuration for force columns.
func forceConfig(ctx *template.Context) (macro.Config, error) {
	u, err := template.Value[units.Set](ctx, ctxUnits)
	if err != nil {
		return macro.Config{}, err
	}
	convert, err := template.Value[units.Converter](ctx, ctxConvert)
	if err != nil {
		return macro.Config{}, err
	}
	return macro.Config{Unit: u.Force(), Convert: convert}, nil
}
