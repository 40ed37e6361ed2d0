package macro

import (
	"fmt"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/model"
)

// VelocityPressures renders the per-height velocity pressure table
// (K~z~, K~zt~, q~z~). An empty row set renders the header only.
func VelocityPressures(rows []model.PressureRow, cfg Config) (string, error) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		z, err := format.Fixed(r.Height, cfg.decimals())
		if err != nil {
			return "", err
		}
		kz, err := cfg.cell(r.Kz)
		if err != nil {
			return "", err
		}
		kzt, err := cfg.cell(r.Kzt)
		if err != nil {
			return "", err
		}
		qz, err := cfg.unitCell(r.Qz)
		if err != nil {
			return "", err
		}
		out = append(out, []string{z, kz, kzt, qz})
	}

	header := []string{"z [m]", "K~z~", "K~zt~", "q~z~ [" + cfg.unit().PressureLabel() + "]"}
	caption := cfg.caption("Presiones de velocidad para las alturas consideradas.")
	return table(header, out, caption), nil
}

// wallOrder fixes the row order of the wall pressure table.
var wallOrder = []model.WallPosition{model.WallWindward, model.WallLeeward, model.WallSide}

// WallPressures renders the wall pressure table from rows keyed by wall
// position. The windward group always exists for a building, so its
// absence is a shape error; leeward and side groups are optional and
// simply contribute no rows.
func WallPressures(walls map[model.WallPosition][]model.WallRow, cfg Config) (string, error) {
	if _, ok := walls[model.WallWindward]; !ok {
		return "", NewMacroInputError("presiones_paredes",
			fmt.Sprintf("required wall group %q absent", model.WallWindward))
	}

	var out [][]string
	for _, pos := range wallOrder {
		for _, r := range walls[pos] {
			z, err := format.Fixed(r.Height, cfg.decimals())
			if err != nil {
				return "", err
			}
			cp, err := cfg.cell(r.Cp)
			if err != nil {
				return "", err
			}
			p, err := cfg.unitCell(r.Pressure)
			if err != nil {
				return "", err
			}
			out = append(out, []string{pos.Label(), z, cp, p})
		}
	}

	header := []string{"Pared", "z [m]", "C~p~", "p [" + cfg.unit().PressureLabel() + "]"}
	caption := cfg.caption("Presiones sobre paredes para el SPRFV.")
	return table(header, out, caption), nil
}

// RoofPressures renders roof pressure rows labelled by zone.
func RoofPressures(rows []model.RoofRow, cfg Config) (string, error) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		cp, err := cfg.cell(r.Cp)
		if err != nil {
			return "", err
		}
		p, err := cfg.unitCell(r.Pressure)
		if err != nil {
			return "", err
		}
		out = append(out, []string{r.Zone, cp, p})
	}

	header := []string{"Zona", "C~p~", "p [" + cfg.unit().PressureLabel() + "]"}
	caption := cfg.caption("Presiones sobre cubierta para el SPRFV.")
	return table(header, out, caption), nil
}

// EavePressures renders the eave pressure table, one row per height
// band. Callers omit the whole table when the building has no eave; the
// macro itself renders whatever rows it is given.
func EavePressures(rows []model.EaveRow, cfg Config) (string, error) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		z, err := format.Fixed(r.Height, cfg.decimals())
		if err != nil {
			return "", err
		}
		p, err := cfg.unitCell(r.Pressure)
		if err != nil {
			return "", err
		}
		out = append(out, []string{z, p})
	}

	header := []string{"z [m]", "p [" + cfg.unit().PressureLabel() + "]"}
	caption := cfg.caption("Presiones sobre alero para el SPRFV.")
	return table(header, out, caption), nil
}

// SignPressures renders the per-height pressure table of a sign. Heights
// and pressures zip positionally; ragged inputs truncate to the shortest
// sequence.
func SignPressures(heights, pressures []float64, cfg Config) (string, error) {
	count := governing(len(heights), len(pressures))
	out := make([][]string, 0, count)
	for i := 0; i < count; i++ {
		z, err := format.Fixed(heights[i], cfg.decimals())
		if err != nil {
			return "", err
		}
		p, err := cfg.unitCell(pressures[i])
		if err != nil {
			return "", err
		}
		out = append(out, []string{z, p})
	}

	header := []string{"z [m]", "p [" + cfg.unit().PressureLabel() + "]"}
	caption := cfg.caption("Presiones sobre el cartel para las alturas consideradas.")
	return table(header, out, caption), nil
}

// SignForces renders the per-band force table of a sign plus a total
// row. Band i spans heights[i]..heights[i+1] with area areas[i] and
// force forces[i]; the row count is governed by the shortest input.
func SignForces(heights, areas, forces []float64, total float64, cfg Config) (string, error) {
	count := governing(len(heights)-1, len(areas), len(forces))
	out := make([][]string, 0, count+1)
	for i := 0; i < count; i++ {
		from, err := format.Fixed(heights[i], cfg.decimals())
		if err != nil {
			return "", err
		}
		to, err := format.Fixed(heights[i+1], cfg.decimals())
		if err != nil {
			return "", err
		}
		area, err := format.Fixed(areas[i], cfg.decimals())
		if err != nil {
			return "", err
		}
		f, err := cfg.unitCell(forces[i])
		if err != nil {
			return "", err
		}
		out = append(out, []string{from + " – " + to, area, f})
	}

	totalCell, err := cfg.unitCell(total)
	if err != nil {
		return "", err
	}
	out = append(out, []string{"**Total**", "", "**" + totalCell + "**"})

	header := []string{"Franja [m]", "Área [m^2^]", "F [" + cfg.unit().ForceLabel() + "]"}
	caption := cfg.caption("Fuerzas parciales sobre el cartel y fuerza total.")
	return table(header, out, caption), nil
}

// OpenRoofPressures renders the net pressure table of an isolated roof,
// one row per global pressure case.
func OpenRoofPressures(cases []model.OpenRoofCase, cfg Config) (string, error) {
	out := make([][]string, 0, len(cases))
	for _, c := range cases {
		cpn, err := cfg.cell(c.Cpn)
		if err != nil {
			return "", err
		}
		p, err := cfg.unitCell(c.Pressure)
		if err != nil {
			return "", err
		}
		out = append(out, []string{c.Extreme.Label(), cpn, p})
	}

	header := []string{"Caso", "C~pn~", "p~n~ [" + cfg.unit().PressureLabel() + "]"}
	caption := cfg.caption("Presiones netas sobre la cubierta aislada.")
	return table(header, out, caption), nil
}
