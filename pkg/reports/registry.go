package reports

import "github.com/zondalab/go-windreport/pkg/render"

// DefaultRegistry wires the built-in report documents. The registry is
// the initialisation barrier of the rendering core: it is populated once
// here and read-only for every subsequent render request.
func DefaultRegistry() *render.Registry {
	registry := render.NewRegistry()
	registry.MustRegister(Building())
	registry.MustRegister(Sign())
	registry.MustRegister(OpenRoof())
	return registry
}
