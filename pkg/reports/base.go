package reports

import (
	"fmt"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/macro"
	"github.com/zondalab/go-windreport/pkg/model"
	"github.com/zondalab/go-windreport/pkg/render"
	"github.com/zondalab/go-windreport/pkg/template"
)

// Block names shared by the whole report family. Derived documents
// override a subset of these; anything left alone renders the base
// version.
const (
	BlockHeading    = "encabezado"
	BlockReference  = "referencia"
	BlockInput      = "datos_entrada"
	BlockTopography = "topografia"
	BlockGust       = "datos_rafaga"
	BlockResults    = "resultados"
)

// simplifiedGustSentence is the whole gust factor section when the
// engine adopted the fixed simplified value: no parameters, no tables.
const simplifiedGustSentence = "Se adopta el valor simplificado del factor de ráfaga G = 0.85, según artículo 5.8.1.\n"

// newBase builds the document skeleton every report extends: front
// matter, code reference, input data, topography, gust factor and an
// empty results placeholder the derived documents fill in.
func newBase() *template.Document {
	doc := template.MustNew("base")
	doc.Append(
		template.BlockRef(BlockHeading),
		template.BlockRef(BlockReference),
		template.Literal("\n# Datos de entrada\n\n"),
		template.BlockRef(BlockInput),
		template.Literal("\n# Topografía\n\n"),
		template.BlockRef(BlockTopography),
		template.Literal("\n# Factor de ráfaga\n\n"),
		template.BlockRef(BlockGust),
		template.Literal("\n# Resultados\n\n"),
		template.BlockRef(BlockResults),
	)
	doc.MustDefine(BlockHeading, renderHeading)
	doc.MustDefine(BlockReference, renderReference)
	doc.MustDefine(BlockInput, renderSiteInput)
	doc.MustDefine(BlockTopography, renderTopography)
	doc.MustDefine(BlockGust, renderGust)
	doc.MustDefine(BlockResults, func(*template.Context, template.SuperFunc) (string, error) {
		return "", nil
	})
	return doc
}

func renderHeading(ctx *template.Context, _ template.SuperFunc) (string, error) {
	s, err := structureFrom(ctx)
	if err != nil {
		return "", err
	}

	subtitle := s.Project.Name
	if s.Project.Location != "" {
		subtitle += " – " + s.Project.Location
	}
	fm := render.FrontMatter{
		Title:    "Estudio de cargas de viento: " + s.Kind.Label(),
		Subtitle: subtitle,
		Lang:     "es",
	}
	return fm.Render()
}

func renderReference(ctx *template.Context, _ template.SuperFunc) (string, error) {
	s, err := structureFrom(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		"\nAcción del viento determinada de acuerdo al %s, *Reglamento Argentino de Acción del Viento sobre las Construcciones*.\n",
		s.Project.CodeReference()), nil
}

func renderSiteInput(ctx *template.Context, _ template.SuperFunc) (string, error) {
	s, err := structureFrom(ctx)
	if err != nil {
		return "", err
	}

	velocity, err := format.Fixed(s.Site.Velocity, 0)
	if err != nil {
		return "", err
	}
	kd, err := format.Fixed(s.Site.Directionality, 2)
	if err != nil {
		return "", err
	}
	importance, err := format.Fixed(s.Site.Importance, 2)
	if err != nil {
		return "", err
	}

	return kvTable([][]string{
		{"Velocidad básica del viento V [m/s]", velocity},
		{"Categoría de la estructura", string(s.Site.Category)},
		{"Categoría de exposición", string(s.Site.Exposure)},
		{"Factor de direccionalidad K~d~", kd},
		{"Factor de importancia I", importance},
	}, "Parámetros generales."), nil
}

func renderTopography(ctx *template.Context, _ template.SuperFunc) (string, error) {
	s, err := structureFrom(ctx)
	if err != nil {
		return "", err
	}

	if !s.Topography.Considered {
		return "No corresponde considerar el efecto topográfico. Se adopta K~zt~ = 1.00 para todas las alturas.\n", nil
	}

	heights, err := template.Value[[]float64](ctx, ctxHeights)
	if err != nil {
		return "", err
	}

	intro := fmt.Sprintf(
		"La estructura se encuentra sobre una %s, a %s de la cresta.\n\n",
		s.Topography.Feature.Label(), s.Topography.Direction)
	params, err := macro.TopographyParams(s.Topography, heights, macro.Config{})
	if err != nil {
		return "", err
	}
	return intro + params, nil
}

func renderGust(ctx *template.Context, _ template.SuperFunc) (string, error) {
	s, err := structureFrom(ctx)
	if err != nil {
		return "", err
	}

	if s.Gust.Simplified {
		return simplifiedGustSentence, nil
	}

	consts, ok := model.ConstantsFor(s.Site.Exposure)
	if !ok {
		return "", fmt.Errorf("unknown exposure category %q", s.Site.Exposure)
	}

	intro := fmt.Sprintf("La estructura se considera %s a los efectos del cálculo del factor de ráfaga.\n\n",
		s.Gust.Flexibility.Label())
	gust, err := macro.GustParams(s.Gust, macro.Config{})
	if err != nil {
		return "", err
	}
	exposure, err := macro.ExposureConstants(s.Site.Exposure, consts, macro.Config{})
	if err != nil {
		return "", err
	}
	return intro + gust + "\n" + exposure, nil
}
