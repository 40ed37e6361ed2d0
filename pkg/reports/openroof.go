package reports

import (
	"fmt"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/macro"
	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/template"
)

// OpenRoof builds the isolated roof report document.
func OpenRoof() *template.Document {
	doc := template.MustNew(string(model.KindOpenRoof), template.Extends(newBase()))
	doc.MustDefine(BlockInput, renderOpenRoofInput)
	doc.MustDefine(BlockResults, renderOpenRoofResults)
	return doc
}

func renderOpenRoofInput(ctx *template.Context, super template.SuperFunc) (string, error) {
	base, err := super()
	if err != nil {
		return "", err
	}

	roof, err := template.Value[*model.OpenRoof](ctx, ctxOpenRoof)
	if err != nil {
		return "", err
	}

	angle, err := format.Fixed(roof.Angle, 1)
	if err != nil {
		return "", err
	}
	height, err := format.Fixed(roof.Height, 2)
	if err != nil {
		return "", err
	}

	return base + "\n## Geometría\n\n" + kvTable([][]string{
		{"Tipo de cubierta", roof.Kind.Label()},
		{"Ángulo de cubierta [°]", angle},
		{"Altura media [m]", height},
	}, "Geometría de la cubierta aislada."), nil
}

func renderOpenRoofResults(ctx *template.Context, _ template.SuperFunc) (string, error) {
	roof, err := template.Value[*model.OpenRoof](ctx, ctxOpenRoof)
	if err != nil {
		return "", err
	}
	cfg, err := pressureConfig(ctx)
	if err != nil {
		return "", err
	}

	qh, err := format.Unit(cfg.Convert(roof.Qh, cfg.Unit), 2, cfg.Unit.PressureLabel())
	if err != nil {
		return "", err
	}

	cases, err := macro.OpenRoofPressures(roof.Cases, cfg)
	if err != nil {
		return "", err
	}

	intro := fmt.Sprintf("Presión de velocidad a la altura media de cubierta: q~h~ = %s.\n\n", qh)
	return intro + cases, nil
}
