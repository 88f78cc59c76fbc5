package archive

import (
	"sort"
	"sync"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

// MemoryStore is an in-memory capture store for testing.
// Data is lost when the process exits.
type MemoryStore struct {
	mu       sync.RWMutex
	captures map[string]Capture
	closed   bool
}

// NewMemoryStore creates a new in-memory capture store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		captures: make(map[string]Capture),
	}
}

// Save implements Store.
func (m *MemoryStore) Save(c Capture) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	if _, ok := m.captures[c.ID]; ok {
		return ErrCaptureExists
	}

	// Copy entries to avoid retaining the caller's slice
	stored := make([]plugreg.PluginView, len(c.Plugins))
	copy(stored, c.Plugins)
	c.Plugins = stored

	m.captures[c.ID] = c
	return nil
}

// Load implements Store.
func (m *MemoryStore) Load(id string) (Capture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return Capture{}, ErrStoreClosed
	}

	c, ok := m.captures[id]
	if !ok {
		return Capture{}, ErrCaptureNotFound
	}

	out := c
	out.Plugins = make([]plugreg.PluginView, len(c.Plugins))
	copy(out.Plugins, c.Plugins)
	return out, nil
}

// List implements Store.
func (m *MemoryStore) List() ([]Info, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	infos := make([]Info, 0, len(m.captures))
	for _, c := range m.captures {
		infos = append(infos, Info{ID: c.ID, TakenAt: c.TakenAt, Count: len(c.Plugins)})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].TakenAt.Before(infos[j].TakenAt)
	})
	return infos, nil
}

// Delete implements Store.
func (m *MemoryStore) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	delete(m.captures, id)
	return nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	return nil
}
