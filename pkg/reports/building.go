package reports

import (
	"strings"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/macro"
	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/template"
)

// Building builds the enclosed-building report document. It extends the
// base skeleton: input data gains the building geometry, and results
// carry the velocity pressure, wall and roof tables, plus the eave and
// parapet tables when the geometry has one.
func Building() *template.Document {
	doc := template.MustNew(string(model.KindBuilding), template.Extends(newBase()))
	doc.MustDefine(BlockInput, renderBuildingInput)
	doc.MustDefine(BlockResults, renderBuildingResults)
	return doc
}

// renderBuildingInput splices the shared site parameters first, then
// appends the geometry table.
func renderBuildingInput(ctx *template.Context, super template.SuperFunc) (string, error) {
	base, err := super()
	if err != nil {
		return "", err
	}

	b, err := template.Value[*model.Building](ctx, ctxBuilding)
	if err != nil {
		return "", err
	}
	g := b.Geometry

	rows := make([][]string, 0, 10)
	for _, dim := range []struct {
		label    string
		value    float64
		decimals int
	}{
		{"Ancho [m]", g.Width, 2},
		{"Longitud [m]", g.Length, 2},
		{"Altura de alero [m]", g.EaveHeight, 2},
		{"Altura media [m]", g.MeanHeight, 2},
		{"Ángulo de cubierta [°]", g.Angle, 1},
		{"Alero [m]", g.Eave, 2},
		{"Parapeto [m]", g.Parapet, 2},
		{"GC~pi~", g.GCpi, 2},
	} {
		v, err := format.Fixed(dim.value, dim.decimals)
		if err != nil {
			return "", err
		}
		rows = append(rows, []string{dim.label, v})
	}
	rows = append(rows,
		[]string{"Tipo de cubierta", g.Roof.Label()},
		[]string{"Cerramiento", g.Enclosure.Label()},
	)

	return base + "\n## Geometría\n\n" + kvTable(rows, "Geometría del edificio."), nil
}

// renderBuildingResults emits the pressure tables for the SPRFV. The
// eave table only appears when the eave length is non-zero, and the
// parapet table when the parapet height is non-zero; a zero dimension
// omits the whole subsection rather than rendering an empty table.
func renderBuildingResults(ctx *template.Context, _ template.SuperFunc) (string, error) {
	b, err := template.Value[*model.Building](ctx, ctxBuilding)
	if err != nil {
		return "", err
	}
	walls, err := template.Value[map[model.WallPosition][]model.WallRow](ctx, ctxWalls)
	if err != nil {
		return "", err
	}
	cfg, err := pressureConfig(ctx)
	if err != nil {
		return "", err
	}

	var out strings.Builder

	velocity, err := macro.VelocityPressures(b.VelocityPressures, cfg)
	if err != nil {
		return "", err
	}
	out.WriteString("## Presiones de velocidad\n\n")
	out.WriteString(velocity)

	wallsTable, err := macro.WallPressures(walls, cfg)
	if err != nil {
		return "", err
	}
	out.WriteString("\n## Paredes\n\n")
	out.WriteString(wallsTable)

	roof, err := macro.RoofPressures(b.Roof, cfg)
	if err != nil {
		return "", err
	}
	out.WriteString("\n## Cubierta\n\n")
	out.WriteString(roof)

	if b.Geometry.Eave > 0 {
		eave, err := macro.EavePressures(b.Eave, cfg)
		if err != nil {
			return "", err
		}
		out.WriteString("\n## Alero\n\n")
		out.WriteString(eave)
	}

	if b.Geometry.Parapet > 0 {
		parapet, err := macro.RoofPressures(b.Parapet, macro.Config{
			Caption: "Presiones sobre parapeto para el SPRFV.",
			Unit:    cfg.Unit,
			Convert: cfg.Convert,
		})
		if err != nil {
			return "", err
		}
		out.WriteString("\n## Parapeto\n\n")
		out.WriteString(parapet)
	}

	return out.String(), nil
}
