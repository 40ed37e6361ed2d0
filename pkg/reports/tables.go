package reports

import (
	"strings"

	"github.com/nao1215/markdown"
)

// kvTable renders a two-column parameter table with a pandoc caption.
// Report blocks use it for mixed text/numeric input data; purely numeric
// tables belong to pkg/macro.
func kvTable(rows [][]string, caption string) string {
	var buf strings.Builder
	md := markdown.NewMarkdown(&buf)
	md.Table(markdown.TableSet{
		Header: []string{"Parámetro", "Valor"},
		Rows:   rows,
	})
	if caption != "" {
		md.PlainText(": " + caption)
	}
	return md.String()
}
