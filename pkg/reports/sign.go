package reports

import (
	"fmt"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/macro"
	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/template"
)

// Sign builds the freestanding sign report document.
func Sign() *template.Document {
	doc := template.MustNew(string(model.KindSign), template.Extends(newBase()))
	doc.MustDefine(BlockInput, renderSignInput)
	doc.MustDefine(BlockResults, renderSignResults)
	return doc
}

func renderSignInput(ctx *template.Context, super template.SuperFunc) (string, error) {
	base, err := super()
	if err != nil {
		return "", err
	}

	sign, err := template.Value[*model.Sign](ctx, ctxSign)
	if err != nil {
		return "", err
	}

	cf, err := format.Fixed(sign.Cf, 2)
	if err != nil {
		return "", err
	}
	return base + fmt.Sprintf("\nCoeficiente de fuerza neta adoptado: C~f~ = %s.\n", cf), nil
}

func renderSignResults(ctx *template.Context, _ template.SuperFunc) (string, error) {
	sign, err := template.Value[*model.Sign](ctx, ctxSign)
	if err != nil {
		return "", err
	}
	pressureCfg, err := pressureConfig(ctx)
	if err != nil {
		return "", err
	}
	forceCfg, err := forceConfig(ctx)
	if err != nil {
		return "", err
	}

	pressures, err := macro.SignPressures(sign.Heights, sign.Pressures, pressureCfg)
	if err != nil {
		return "", err
	}
	forces, err := macro.SignForces(sign.Heights, sign.PartialAreas, sign.PartialForces, sign.TotalForce, forceCfg)
	if err != nil {
		return "", err
	}

	return "## Presiones\n\n" + pressures + "\n## Fuerzas\n\n" + forces, nil
}
