package template

import "fmt"

// TemplateError reports a malformed document set: a duplicate block
// definition, an inheritance cycle, or a missing parent.
type TemplateError struct {
	Document string
	Block    string
	Message  string
}

func (e *TemplateError) Error() string {
	if e.Block != "" {
		return fmt.Sprintf("template: document %q, block %q: %s", e.Document, e.Block, e.Message)
	}
	return fmt.Sprintf("template: document %q: %s", e.Document, e.Message)
}

// NewTemplateError creates a TemplateError scoped to a document and,
// optionally, one of its blocks.
func NewTemplateError(document, block, message string) error {
	return &TemplateError{Document: document, Block: block, Message: message}
}

// MissingContextError reports a template referencing a name the context
// binder never bound. Rendering fails fast instead of emitting blanks.
type MissingContextError struct {
	Name string
}

func (e *MissingContextError) Error() string {
	return fmt.Sprintf("context: name %q is not bound", e.Name)
}

// BlockError wraps a failure raised inside a block body (a macro shape
// error, a formatting error) as that block's resolution failure.
type BlockError struct {
	Document string
	Block    string
	Cause    error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("template: resolving block %q of document %q: %v", e.Block, e.Document, e.Cause)
}

func (e *BlockError) Unwrap() error {
	return e.Cause
}
