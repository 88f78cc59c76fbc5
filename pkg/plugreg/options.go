package plugreg

// Option configures a registry at construction time.
type Option func(*Registry)

// WithUniqueNames makes Add reject a name that is already registered,
// returning ErrDuplicate.
//
// By default the registry is permissive: duplicate names insert
// normally and Find returns the first-inserted match. Enable this
// option when callers rely on names as unique identifiers.
func WithUniqueNames() Option {
	return func(r *Registry) {
		r.unique = true
	}
}
