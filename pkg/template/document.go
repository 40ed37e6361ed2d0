package template

// SuperFunc renders the nearest ancestor definition of the block being
// resolved. It is handed to every BlockFunc so an override can splice the
// parent's output at any position, or ignore it entirely.
type SuperFunc func() (string, error)

// BlockFunc renders one named block against the request context.
type BlockFunc func(ctx *Context, super SuperFunc) (string, error)

// SectionKind discriminates the two section flavours of a layout.
type SectionKind int

const (
	SectionLiteral SectionKind = iota
	SectionBlock
)

// Section is one ordered unit of a document layout: literal interstitial
// text or a reference to a named block.
type Section struct {
	Kind  SectionKind
	Text  string
	Block string
}

// Literal creates a literal text section.
func Literal(text string) Section {
	return Section{Kind: SectionLiteral, Text: text}
}

// BlockRef creates a section that renders the named block.
func BlockRef(name string) Section {
	return Section{Kind: SectionBlock, Block: name}
}

// Document is a named template: an ordered section layout plus named,
// overridable block definitions, optionally extending one parent.
// Documents are defined once at initialisation and are immutable during
// rendering; the same Document serves any number of concurrent renders.
type Document struct {
	name     string
	parent   *Document
	sections []Section
	blocks   map[string]BlockFunc
}

// Option configures a Document at construction.
type Option func(*Document)

// Extends sets the parent document. A document extends at most one
// parent; chains are acyclic by construction because a child always names
// an already-built parent.
func Extends(parent *Document) Option {
	return func(d *Document) {
		d.parent = parent
	}
}

// New creates a document with the given name.
func New(name string, options ...Option) (*Document, error) {
	if name == "" {
		return nil, NewTemplateError(name, "", "document name is required")
	}
	d := &Document{
		name:   name,
		blocks: make(map[string]BlockFunc),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}
	return d, nil
}

// MustNew panics on construction failure. Useful for init-time wiring of
// the built-in report documents.
func MustNew(name string, options ...Option) *Document {
	d, err := New(name, options...)
	if err != nil {
		panic(err)
	}
	return d
}

// Name returns the document name.
func (d *Document) Name() string {
	return d.name
}

// Parent returns the parent document, or nil for a root document.
func (d *Document) Parent() *Document {
	return d.parent
}

// Append adds sections to the document's own layout in order.
func (d *Document) Append(sections ...Section) *Document {
	d.sections = append(d.sections, sections...)
	return d
}

// Define registers a block under name. Block names are unique within one
// document's own definitions; redefining one is a TemplateError. A
// descendant document may define the same name to replace (or, via a
// super call, extend) the ancestor's rendering.
func (d *Document) Define(name string, fn BlockFunc) error {
	if name == "" {
		return NewTemplateError(d.name, name, "block name is required")
	}
	if fn == nil {
		return NewTemplateError(d.name, name, "block function is required")
	}
	if _, exists := d.blocks[name]; exists {
		return NewTemplateError(d.name, name, "block already defined")
	}
	d.blocks[name] = fn
	return nil
}

// MustDefine panics on definition failure.
func (d *Document) MustDefine(name string, fn BlockFunc) *Document {
	if err := d.Define(name, fn); err != nil {
		panic(err)
	}
	return d
}

// Defines reports whether the document itself (not an ancestor) defines
// the named block.
func (d *Document) Defines(name string) bool {
	_, ok := d.blocks[name]
	return ok
}

// Layout returns the section sequence rendering should follow: the
// document's own sections, or the nearest ancestor's when the document
// only overrides blocks. A malformed parent chain fails with a
// TemplateError.
func (d *Document) Layout() ([]Section, error) {
	visited := make(map[*Document]struct{})
	for doc := d; doc != nil; doc = doc.parent {
		if _, seen := visited[doc]; seen {
			return nil, NewTemplateError(d.name, "", "inheritance cycle in parent chain")
		}
		visited[doc] = struct{}{}
		if len(doc.sections) > 0 {
			return doc.sections, nil
		}
	}
	return nil, nil
}
