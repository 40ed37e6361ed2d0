package template

import "fmt"

// Context is the per-request name→value environment blocks and macros
// read from. It is built once by a binder before rendering starts and is
// never passed implicitly: every block receives its Context argument
// explicitly.
//
// A Context is not safe for concurrent mutation, but renders never mutate
// it; independent render requests each get their own Context.
type Context struct {
	values map[string]any
}

// NewContext creates an empty context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Bind associates name with value and returns the context for chaining.
// Rebinding an existing name replaces the value; binders use this to
// introduce computed locals before rendering.
func (c *Context) Bind(name string, value any) *Context {
	c.values[name] = value
	return c
}

// Has reports whether name is bound.
func (c *Context) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Lookup resolves name or fails with a *MissingContextError naming the
// unresolved identifier.
func (c *Context) Lookup(name string) (any, error) {
	v, ok := c.values[name]
	if !ok {
		return nil, &MissingContextError{Name: name}
	}
	return v, nil
}

// Value resolves name and asserts it to type T. A bound name of the wrong
// type is reported as a missing binding of the expected shape, which in
// practice means the binder and the document disagree.
func Value[T any](c *Context, name string) (T, error) {
	var zero T
	raw, err := c.Lookup(name)
	if err != nil {
		return zero, err
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("context: name %q is bound to %T, not %T: %w",
			name, raw, zero, &MissingContextError{Name: name})
	}
	return v, nil
}

// Float resolves name as a float64.
func (c *Context) Float(name string) (float64, error) {
	return Value[float64](c, name)
}

// String resolves name as a string.
func (c *Context) String(name string) (string, error) {
	return Value[string](c, name)
}

// Bool resolves name as a bool.
func (c *Context) Bool(name string) (bool, error) {
	return Value[bool](c, name)
}
