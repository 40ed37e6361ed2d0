package macro

import (
	"strings"

	"github.com/nao1215/markdown"

	"github.com/zondalab/go-windreport/pkg/format"
	"github.com/zondalab/go-windreport/pkg/units"
)

// Config is the option set every table macro recognises. The zero value
// is valid: two decimals, values left in Newtons, default caption.
type Config struct {
	// Caption replaces the macro's default table caption.
	Caption string
	// Decimals overrides the fractional digit count for value columns.
	Decimals int
	// Unit is the display unit for unit-bearing columns.
	Unit units.Unit
	// Convert is the external unit conversion function. Defaults to
	// units.Convert.
	Convert units.Converter
}

const defaultDecimals = 2

func (c Config) decimals() int {
	if c.Decimals <= 0 {
		return defaultDecimals
	}
	return c.Decimals
}

func (c Config) unit() units.Unit {
	if c.Unit.Valid() {
		return c.Unit
	}
	return units.Newton
}

func (c Config) convert(v float64) float64 {
	fn := c.Convert
	if fn == nil {
		fn = units.Convert
	}
	return fn(v, c.unit())
}

func (c Config) caption(fallback string) string {
	if c.Caption != "" {
		return c.Caption
	}
	return fallback
}

// cell formats a plain numeric cell.
func (c Config) cell(v float64) (string, error) {
	return format.Fixed(v, c.decimals())
}

// unitCell converts a unit-bearing value before formatting.
func (c Config) unitCell(v float64) (string, error) {
	return format.Fixed(c.convert(v), c.decimals())
}

// governing returns the governing row count: the shortest of the input
// sequence lengths. Ragged inputs are truncated positionally, matching
// how the table rows are indexed.
func governing(lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	minLen := lengths[0]
	for _, l := range lengths[1:] {
		if l < minLen {
			minLen = l
		}
	}
	if minLen < 0 {
		return 0
	}
	return minLen
}

// labeled pairs a row label with its numeric value for two-column
// parameter tables.
type labeled struct {
	label string
	value float64
}

func (c Config) labeledRows(entries []labeled) ([][]string, error) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		v, err := c.cell(e.value)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []string{e.label, v})
	}
	return rows, nil
}

// table renders a pipe table plus an optional pandoc-style caption line.
// An empty row set renders the header only, which is a valid fragment.
func table(header []string, rows [][]string, caption string) string {
	var buf strings.Builder
	md := markdown.NewMarkdown(&buf)
	md.Table(markdown.TableSet{Header: header, Rows: rows})
	if caption != "" {
		md.PlainText(": " + caption)
	}
	return md.String()
}
