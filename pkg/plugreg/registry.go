package plugreg

import "sync"

// Registry is a fixed-capacity, insertion-ordered plugin registry.
// It uses sync.RWMutex for optimal read-heavy workloads.
//
// Capacity is set at construction and never changes. Entries are
// append-only: once inserted, a plugin keeps its position for the
// registry's lifetime (there is no remove operation). All operations
// are linearizable with respect to the registry's single lock.
type Registry struct {
	mu       sync.RWMutex
	capacity int
	plugins  []Plugin
	unique   bool
}

// New creates an empty registry that holds up to capacity plugins.
// Storage is preallocated, so insertion never reallocates and entry
// positions are stable.
//
// New panics if capacity is negative. A capacity of zero is valid and
// yields a registry that rejects every Add with ErrFull.
func New(capacity int, opts ...Option) *Registry {
	if capacity < 0 {
		panic("plugreg: negative capacity")
	}
	r := &Registry{
		capacity: capacity,
		plugins:  make([]Plugin, 0, capacity),
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// Add appends a plugin at the tail of the registry.
//
// Returns ErrFull if the registry is at capacity, leaving state
// unchanged. With WithUniqueNames, returns ErrDuplicate if the name is
// already registered. Safe for concurrent use: when multiple callers
// race for the last free slot, exactly one succeeds and the rest
// observe ErrFull.
func (r *Registry) Add(p Plugin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.plugins) == r.capacity {
		return ErrFull
	}
	if r.unique {
		for i := range r.plugins {
			if r.plugins[i].Name == p.Name {
				return ErrDuplicate
			}
		}
	}
	r.plugins = append(r.plugins, p)
	return nil
}

// Find scans the registry in insertion order and returns a handle to
// the first plugin whose name matches.
//
// If duplicate names exist, the first-inserted match wins. The handle
// stays valid for the registry's lifetime: entries never move, so a
// concurrent Add cannot invalidate it. Mutation through the handle
// re-acquires the registry lock; see Handle.
func (r *Registry) Find(name string) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.plugins {
		if r.plugins[i].Name == name {
			return &Handle{registry: r, index: i}, true
		}
	}
	return nil, false
}

// ToggleEnabled flips the enabled flag of the first plugin with the
// given name and returns the new value.
//
// Returns ErrNotFound if no plugin with that name is registered at
// the time of the call.
func (r *Registry) ToggleEnabled(name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.plugins {
		if r.plugins[i].Name == name {
			r.plugins[i].Enabled = !r.plugins[i].Enabled
			return r.plugins[i].Enabled, nil
		}
	}
	return false, ErrNotFound
}

// Snapshot returns a point-in-time copy of every registered plugin in
// insertion order. The copy is disconnected: later registry mutations
// do not affect it. Length and contents are read under one lock
// acquisition, so the view is never torn.
func (r *Registry) Snapshot() []PluginView {
	r.mu.RLock()
	defer r.mu.RUnlock()

	views := make([]PluginView, len(r.plugins))
	for i := range r.plugins {
		views[i] = PluginView{
			Index:   i,
			Name:    r.plugins[i].Name,
			Version: r.plugins[i].Version,
			Enabled: r.plugins[i].Enabled,
		}
	}
	return views
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// Cap returns the registry's fixed capacity.
// The capacity is immutable, so no lock is required.
func (r *Registry) Cap() int {
	return r.capacity
}
