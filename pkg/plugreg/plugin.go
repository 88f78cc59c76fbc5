package plugreg

// Plugin is a named, versioned extension record.
//
// Name and Version are fixed at registration time. Enabled is the only
// field the registry will mutate after insertion, and only under its
// own lock (via Handle.Toggle or Registry.ToggleEnabled).
type Plugin struct {
	// Name identifies the plugin. Uniqueness is a usage convention,
	// not enforced unless the registry was built with WithUniqueNames.
	Name string

	// Version is the plugin's version number.
	Version uint

	// Enabled reports whether the plugin is active.
	Enabled bool
}

// PluginView is a point-in-time copy of a registered plugin,
// as returned by Snapshot. It does not track later mutations.
type PluginView struct {
	// Index is the plugin's insertion position in the registry.
	Index int

	// Name is the plugin's name.
	Name string

	// Version is the plugin's version number.
	Version uint

	// Enabled is the flag value at the time the snapshot was taken.
	Enabled bool
}
