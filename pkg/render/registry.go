package render

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zondalab/go-windreport/pkg/template"
)

// Registry stores report documents by name. It is the one shared
// resource between render requests: loaded once at initialisation,
// read-only afterwards.
type Registry struct {
	mu        sync.RWMutex
	documents map[string]*template.Document
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		documents: make(map[string]*template.Document),
	}
}

// Register adds a document by its Name(). Duplicate names return an error.
func (r *Registry) Register(doc *template.Document) error {
	if doc == nil {
		return fmt.Errorf("render: document is required")
	}
	name := doc.Name()
	if name == "" {
		return fmt.Errorf("render: document name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[name]; exists {
		return fmt.Errorf("render: document %q already registered", name)
	}

	r.documents[name] = doc
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(doc *template.Document) {
	if err := r.Register(doc); err != nil {
		panic(err)
	}
}

// Get retrieves a document by name.
func (r *Registry) Get(name string) (*template.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.documents[name]
	if !ok {
		return nil, fmt.Errorf("render: document %q not found", name)
	}
	return doc, nil
}

// MustGet panics if the document is missing.
func (r *Registry) MustGet(name string) *template.Document {
	doc, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return doc
}

// List returns a sorted list of document names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.documents))
	for name := range r.documents {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a document is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.documents[name]
	return ok
}
