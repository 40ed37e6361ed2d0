package macro

import (
	"fmt"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/model"
)

// ExposureConstants renders the terrain exposure constant table for one
// exposure category.
func ExposureConstants(category model.ExposureCategory, consts model.ExposureConstants, cfg Config) (string, error) {
	rows, err := cfg.labeledRows([]labeled{
		{"α", consts.Alpha},
		{"z~g~ [m]", consts.Zg},
		{"â", consts.AHat},
		{"b̂", consts.BHat},
		{"ᾱ", consts.AlphaBar},
		{"b̄", consts.BBar},
		{"c", consts.C},
		{"ℓ [m]", consts.L},
		{"ε̄", consts.EpsilonBar},
		{"z~min~ [m]", consts.Zmin},
	})
	if err != nil {
		return "", err
	}

	caption := cfg.caption(fmt.Sprintf(
		"Constantes de exposición del terreno para categoría %s.", category))
	return table([]string{"Constante", "Valor"}, rows, caption), nil
}

// GustParams renders the gust effect factor parameter table. The g~R~
// and R rows only apply to flexible structures and are omitted for rigid
// ones; the resulting factor G closes the table either way.
func GustParams(gust model.GustFactor, cfg Config) (string, error) {
	entries := []labeled{
		{"z̄ [m]", gust.Params.Z},
		{"I~z̄~", gust.Params.Iz},
		{"L~z̄~ [m]", gust.Params.Lz},
		{"Q", gust.Params.Q},
	}
	if gust.Flexibility == model.Flexible {
		entries = append(entries,
			labeled{"g~R~", gust.Params.GR},
			labeled{"R", gust.Params.R},
		)
	}
	entries = append(entries, labeled{"G", gust.Factor})

	rows, err := cfg.labeledRows(entries)
	if err != nil {
		return "", err
	}

	caption := cfg.caption(fmt.Sprintf(
		"Parámetros del factor de ráfaga para estructura %s.",
		gust.Flexibility.Label()))
	return table([]string{"Parámetro", "Valor"}, rows, caption), nil
}

// TopographyParams renders the topographic factor parameter table plus
// the per-height K~3~/K~zt~ table. The per-height rows truncate to the
// shortest of heights, K3 and Kzt; an empty set renders the header only.
func TopographyParams(topo model.Topography, heights []float64, cfg Config) (string, error) {
	rows, err := cfg.labeledRows([]labeled{
		{"K", topo.Params.K},
		{"γ", topo.Params.Gamma},
		{"μ", topo.Params.Mu},
		{"L~h~ [m]", topo.Params.Lh},
		{"K~1~", topo.Params.K1},
		{"K~2~", topo.Params.K2},
	})
	if err != nil {
		return "", err
	}

	params := table([]string{"Parámetro", "Valor"}, rows,
		cfg.caption(fmt.Sprintf("Parámetros topográficos para %s.", topo.Feature.Label())))

	count := governing(len(heights), len(topo.Params.K3), len(topo.Params.Kzt))
	heightRows := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		z, err := format.Fixed(heights[i], cfg.decimals())
		if err != nil {
			return "", err
		}
		k3, err := cfg.cell(topo.Params.K3[i])
		if err != nil {
			return "", err
		}
		kzt, err := cfg.cell(topo.Params.Kzt[i])
		if err != nil {
			return "", err
		}
		heightRows = append(heightRows, []string{z, k3, kzt})
	}

	factors := table([]string{"z [m]", "K~3~", "K~zt~"}, heightRows,
		"Factor topográfico para cada altura considerada.")

	return params + "\n" + factors, nil
}
