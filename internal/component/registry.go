package component

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	wefterrors "github.com/wovenui/weft/pkg/errors"
)

// Registry holds compiled render units keyed by component name. It is
// populated during initialization and only read afterwards; the lock exists
// so late registration (tests, definition loading) stays safe.
type Registry struct {
	mu    sync.RWMutex
	units map[string]*RenderUnit
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{units: make(map[string]*RenderUnit)}
}

// Register compiles the specification and stores the resulting render unit
// under its name. Re-registering a name is a DuplicateComponentError; a
// specification is never silently overwritten.
func (r *Registry) Register(spec Specification) (*RenderUnit, error) {
	unit, err := Compile(spec)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.units[unit.name]; exists {
		return nil, wefterrors.NewDuplicateComponentError(unit.name)
	}
	r.units[unit.name] = unit

	return unit, nil
}

// MustRegister is Register for init-time catalogs, where a compile failure
// should abort startup.
func (r *Registry) MustRegister(spec Specification) *RenderUnit {
	unit, err := r.Register(spec)
	if err != nil {
		panic(fmt.Sprintf("register component %q: %v", spec.Name, err))
	}
	return unit
}

// Lookup returns the render unit registered under name.
func (r *Registry) Lookup(name string) (*RenderUnit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	unit, ok := r.units[name]
	return unit, ok
}

// List returns every registered unit sorted by name.
func (r *Registry) List() []*RenderUnit {
	r.mu.RLock()
	defer r.mu.RUnlock()

	units := make([]*RenderUnit, 0, len(r.units))
	for _, unit := range r.units {
		units = append(units, unit)
	}
	sort.Slice(units, func(i, j int) bool { return units[i].name < units[j].name })
	return units
}

// Len reports the number of registered components.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.units)
}

// Render looks up name and renders it with the given bag.
func (r *Registry) Render(ctx context.Context, w io.Writer, name string, bag map[string]any) error {
	unit, ok := r.Lookup(name)
	if !ok {
		return fmt.Errorf("component %q is not registered", name)
	}
	return unit.Render(ctx, w, bag)
}

// defaultRegistry is the process-wide registry the widget catalog populates
// at startup.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}
