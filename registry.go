package tidylog

import (
	"sync"

	"github.com/rs/zerolog"
)

// Registry maps logger names to their attached sink sets. It replaces the
// hidden process-global handler table of classic logging facilities with
// an explicit object whose duplicate-attachment guard is a plain
// lookup-then-insert under one mutex, so concurrent construction of the
// same name cannot attach sinks twice.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
}

type registryEntry struct {
	logger zerolog.Logger
	sinks  []*sink
}

var defaultRegistry = NewRegistry()

// NewRegistry returns an empty registry. Most callers want the process-wide
// DefaultRegistry; private registries keep tests from sharing state.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*registryEntry)}
}

// DefaultRegistry returns the process-wide registry used by New.
func DefaultRegistry() *Registry { return defaultRegistry }

// acquire returns the entry registered under name, building and inserting
// one on first use. build runs inside the registry lock; it must not log
// through the registry. An existing entry with attached sinks is returned
// as-is and build never runs, which is what makes repeated construction
// side-effect free.
func (r *Registry) acquire(name string, build func() (*registryEntry, error)) (*registryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok && len(e.sinks) > 0 {
		return e, nil
	}

	e, err := build()
	if err != nil {
		return nil, err
	}
	r.entries[name] = e
	return e, nil
}

// detach removes and returns name's sinks, leaving the name free to be
// initialized again. Detaching an unknown name returns nil.
func (r *Registry) detach(name string) []*sink {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[name]
	if !ok {
		return nil
	}
	delete(r.entries, name)
	return e.sinks
}

// sinkCount reports how many sinks are attached under name.
func (r *Registry) sinkCount(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[name]; ok {
		return len(e.sinks)
	}
	return 0
}
