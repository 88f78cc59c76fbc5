// Package archive persists point-in-time registry snapshot captures.
//
// The registry itself holds no persistent state; an archive is a
// downstream consumer of Snapshot() that records disconnected copies
// for later reporting or audit.
package archive

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

// Capture is one archived snapshot of a registry.
type Capture struct {
	// ID uniquely identifies the capture.
	ID string

	// TakenAt is the UTC time the snapshot was taken.
	TakenAt time.Time

	// Plugins are the snapshot entries, in insertion order.
	Plugins []plugreg.PluginView
}

// Info provides capture metadata without loading the entries.
type Info struct {
	ID      string
	TakenAt time.Time
	Count   int
}

// Store persists snapshot captures.
// Implementations must be safe for concurrent use.
type Store interface {
	// Save stores a capture. Returns an error if a capture with the
	// same ID already exists.
	Save(c Capture) error

	// Load retrieves a capture by ID.
	// Returns ErrCaptureNotFound if it doesn't exist.
	Load(id string) (Capture, error)

	// List returns metadata for all captures, oldest first.
	// Returns an empty slice (not an error) if the store is empty.
	List() ([]Info, error)

	// Delete removes a capture.
	// Returns nil if the capture doesn't exist.
	Delete(id string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for archive operations.
var (
	// ErrCaptureNotFound indicates a capture doesn't exist.
	ErrCaptureNotFound = errors.New("capture not found")

	// ErrCaptureExists indicates a capture ID is already stored.
	ErrCaptureExists = errors.New("capture already exists")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("archive store closed")
)

// Take snapshots the registry into a new Capture with a fresh ID.
func Take(r *plugreg.Registry) Capture {
	return Capture{
		ID:      uuid.NewString(),
		TakenAt: time.Now().UTC(),
		Plugins: r.Snapshot(),
	}
}
