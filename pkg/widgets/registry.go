// Package widgets hosts the built-in dialog backends and a registry for
// resolving backends by name.
package widgets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-dialog/pkg/widget"
)

// Registry stores widget backends by name so applications can pick a dialog
// surface from configuration ("terminal", "modal", ...).
type Registry struct {
	mu       sync.RWMutex
	backends map[string]widget.Widget
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]widget.Widget),
	}
}

// Register adds a backend under the given name. Duplicate names return an
// error.
func (r *Registry) Register(name string, backend widget.Widget) error {
	if backend == nil {
		return fmt.Errorf("widgets: backend is required")
	}
	if name == "" {
		return fmt.Errorf("widgets: backend name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.backends[name]; exists {
		return fmt.Errorf("widgets: backend %q already registered", name)
	}

	r.backends[name] = backend
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, backend widget.Widget) {
	if err := r.Register(name, backend); err != nil {
		panic(err)
	}
}

// Get retrieves a backend by name.
func (r *Registry) Get(name string) (widget.Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	backend, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("widgets: backend %q not found", name)
	}
	return backend, nil
}

// List returns the sorted backend names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a backend is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.backends[name]
	return ok
}
