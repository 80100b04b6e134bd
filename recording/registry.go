package recording

import (
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/drawlib"
)

// BackendFactory creates a fresh backend. Every NewBackend call gets its
// own instance because backends hold per-rendering state.
type BackendFactory func() Backend

// registry maps backend names to factories.
type registry struct {
	mu        sync.RWMutex
	factories map[string]BackendFactory
}

func (r *registry) add(name string, factory BackendFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case name == "":
		panic("recording: Register with empty name")
	case factory == nil:
		panic("recording: Register factory is nil for " + name)
	}
	if _, dup := r.factories[name]; dup {
		panic("recording: Register called twice for " + name)
	}
	r.factories[name] = factory
}

func (r *registry) remove(name string) {
	r.mu.Lock()
	delete(r.factories, name)
	r.mu.Unlock()
}

func (r *registry) lookup(name string) (BackendFactory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	return f, ok
}

func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var names []string
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *registry) reset() {
	r.mu.Lock()
	r.factories = make(map[string]BackendFactory)
	r.mu.Unlock()
}

var backends = &registry{factories: make(map[string]BackendFactory)}

// Register makes a backend available under name. Backend packages call it
// from init, so a blank import is enough to enable them:
//
//	import _ "github.com/gogpu/drawlib/recording/backends/raster"
//
// Register panics on an empty name, a nil factory or a duplicate name.
func Register(name string, factory BackendFactory) {
	backends.add(name, factory)
	drawlib.Logger().Debug("recording: backend registered", "name", name)
}

// Unregister removes a backend. Unknown names are ignored.
func Unregister(name string) {
	backends.remove(name)
}

// NewBackend creates a backend by name. An unknown name yields an error
// wrapping ErrUnknownBackend.
func NewBackend(name string) (Backend, error) {
	factory, ok := backends.lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	return backends.names()
}

// IsRegistered reports whether a backend is registered under name.
func IsRegistered(name string) bool {
	_, ok := backends.lookup(name)
	return ok
}
