/*
Package plugreg provides a fixed-capacity, thread-safe plugin registry.

# Overview

A Registry holds named, versioned plugin entries in insertion order,
bounded by a capacity chosen at construction. All operations are safe
for concurrent use and linearizable with respect to the registry's
single lock: Add appends at the tail (failing with ErrFull at
capacity), Find scans for the first name match, ToggleEnabled flips
the one mutable field, and Snapshot copies out a disconnected
point-in-time view.

There is no remove operation and no resizing: entries keep their
position for the registry's lifetime, which is what makes handles
returned by Find stable under concurrent insertion.

# Basic Usage

Create a registry, register plugins, and look them up:

	reg := plugreg.New(8)

	if err := reg.Add(plugreg.Plugin{Name: "auth", Version: 5, Enabled: true}); err != nil {
	    log.Fatal(err)
	}

	if h, ok := reg.Find("auth"); ok {
	    h.Toggle() // flip enabled under the registry lock
	}

	for _, v := range reg.Snapshot() {
	    fmt.Printf("#%d %s v%d enabled=%v\n", v.Index, v.Name, v.Version, v.Enabled)
	}

# Capacity

The (capacity+1)-th Add returns ErrFull and leaves the registry
unchanged. Under contention for the last free slot, exactly one caller
succeeds; the rest observe ErrFull. Treat ErrFull as a normal,
recoverable outcome.

# Duplicate Names

The registry does not enforce name uniqueness by default: duplicates
insert normally and Find returns the first-inserted match. Pass
WithUniqueNames to New to make Add reject duplicates with
ErrDuplicate instead.

# Related Packages

  - config: manifest-driven registry construction from YAML or JSON
  - observability: opt-in logging, metrics, and tracing wrapper
  - archive: persistence of point-in-time snapshot captures
  - report: textual and structured rendering of snapshots
*/
package plugreg
