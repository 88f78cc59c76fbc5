package plugreg

// Handle references a single registered plugin, as returned by Find.
//
// A handle lets the caller mutate the plugin's enabled flag without
// re-scanning by name, while keeping every access inside the
// registry's own lock: each method acquires the lock for its critical
// section and releases it before returning. Because entries never move
// or disappear, a handle remains valid for the registry's lifetime.
type Handle struct {
	registry *Registry
	index    int
}

// Index returns the plugin's insertion position.
// Positions are stable, so no lock is required.
func (h *Handle) Index() int {
	return h.index
}

// Name returns the plugin's name.
func (h *Handle) Name() string {
	h.registry.mu.RLock()
	defer h.registry.mu.RUnlock()
	return h.registry.plugins[h.index].Name
}

// Enabled returns the current value of the plugin's enabled flag.
func (h *Handle) Enabled() bool {
	h.registry.mu.RLock()
	defer h.registry.mu.RUnlock()
	return h.registry.plugins[h.index].Enabled
}

// Toggle flips the plugin's enabled flag and returns the new value.
// The flip happens under the registry's write lock, so it is atomic
// with respect to every other registry operation.
func (h *Handle) Toggle() bool {
	h.registry.mu.Lock()
	defer h.registry.mu.Unlock()
	p := &h.registry.plugins[h.index]
	p.Enabled = !p.Enabled
	return p.Enabled
}

// View returns a point-in-time copy of the plugin.
func (h *Handle) View() PluginView {
	h.registry.mu.RLock()
	defer h.registry.mu.RUnlock()
	p := h.registry.plugins[h.index]
	return PluginView{
		Index:   h.index,
		Name:    p.Name,
		Version: p.Version,
		Enabled: p.Enabled,
	}
}
