// Package report renders registry snapshots for display and export.
//
// The registry exposes only raw ordered view data; this package is the
// formatting layer on top of it, offering a human-readable text dump
// and YAML/JSON encodings for machine consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

// Render writes a human-readable dump of a snapshot:
//
//	Registry dump:
//	  #0 auth       v5 [disabled]
//	  #1 billing    v2 [disabled]
//	  #2 metrics    v3 [enabled]
func Render(w io.Writer, views []plugreg.PluginView) error {
	if _, err := fmt.Fprintln(w, "Registry dump:"); err != nil {
		return fmt.Errorf("render header: %w", err)
	}
	for _, v := range views {
		state := "disabled"
		if v.Enabled {
			state = "enabled"
		}
		if _, err := fmt.Fprintf(w, "  #%d %-10s v%d [%s]\n", v.Index, v.Name, v.Version, state); err != nil {
			return fmt.Errorf("render entry %d: %w", v.Index, err)
		}
	}
	return nil
}

// entry is the serialized form of a PluginView.
type entry struct {
	Index   int    `yaml:"index" json:"index"`
	Name    string `yaml:"name" json:"name"`
	Version uint   `yaml:"version" json:"version"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

func toEntries(views []plugreg.PluginView) []entry {
	entries := make([]entry, len(views))
	for i, v := range views {
		entries[i] = entry{Index: v.Index, Name: v.Name, Version: v.Version, Enabled: v.Enabled}
	}
	return entries
}

// ToYAML encodes a snapshot as YAML.
func ToYAML(views []plugreg.PluginView) ([]byte, error) {
	data, err := yaml.Marshal(toEntries(views))
	if err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return data, nil
}

// ToJSON encodes a snapshot as indented JSON.
func ToJSON(views []plugreg.PluginView) ([]byte, error) {
	data, err := json.MarshalIndent(toEntries(views), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}
