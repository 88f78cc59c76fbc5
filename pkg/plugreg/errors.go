package plugreg

import "errors"

// Sentinel errors for registry operations.
var (
	// ErrFull indicates Add() was called on a registry at capacity.
	// This is a normal outcome under contention for the last slot,
	// not a registry failure; the caller may retry or drop the entry.
	ErrFull = errors.New("registry full")

	// ErrNotFound indicates a name-based operation referenced a plugin
	// that is not registered.
	ErrNotFound = errors.New("plugin not found")

	// ErrDuplicate indicates Add() would insert an already-registered
	// name on a registry built with WithUniqueNames.
	ErrDuplicate = errors.New("duplicate plugin name")
)
