package render

import (
	"strings"

	"github.com/zondalab/go-windreport/pkg/template"
)

// Option customises the assembler configuration.
type Option func(*Assembler)

// WithResolver injects a custom block resolver.
func WithResolver(resolver *template.Resolver) Option {
	return func(a *Assembler) {
		a.resolver = resolver
	}
}

// Assembler renders a document against a bound context: top-level blocks
// resolve in declaration order through the inheritance chain and
// concatenate with the layout's literal text. Rendering is atomic: any
// block failure aborts the whole render with no partial result.
type Assembler struct {
	resolver *template.Resolver
}

// NewAssembler constructs an Assembler applying any provided options.
func NewAssembler(options ...Option) *Assembler {
	a := &Assembler{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	if a.resolver == nil {
		a.resolver = template.NewResolver()
	}
	return a
}

// Render produces the document's text artifact.
func (a *Assembler) Render(doc *template.Document, ctx *template.Context) (string, error) {
	if doc == nil {
		return "", template.NewTemplateError("", "", "document is required")
	}

	layout, err := doc.Layout()
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, section := range layout {
		switch section.Kind {
		case template.SectionLiteral:
			out.WriteString(section.Text)
		case template.SectionBlock:
			fragment, err := a.resolver.Resolve(doc, section.Block, ctx)
			if err != nil {
				return "", err
			}
			out.WriteString(fragment)
		}
	}
	return out.String(), nil
}
