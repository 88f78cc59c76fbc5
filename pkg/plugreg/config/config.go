package config

import (
	"fmt"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

// Manifest describes a registry to construct: its capacity and the
// plugins seeded into it at startup.
type Manifest struct {
	// Capacity is the registry's fixed maximum entry count.
	Capacity int `yaml:"capacity" json:"capacity"`

	// Plugins are seeded in order at construction.
	Plugins []PluginSpec `yaml:"plugins" json:"plugins"`
}

// PluginSpec describes one seed plugin.
type PluginSpec struct {
	Name    string `yaml:"name" json:"name"`
	Version uint   `yaml:"version" json:"version"`
	Enabled bool   `yaml:"enabled" json:"enabled"`
}

// Validate checks the manifest for structural errors.
func (m Manifest) Validate() error {
	if m.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", m.Capacity)
	}
	if len(m.Plugins) > m.Capacity {
		return fmt.Errorf("%d seed plugins exceed capacity %d", len(m.Plugins), m.Capacity)
	}
	for i, p := range m.Plugins {
		if p.Name == "" {
			return fmt.Errorf("plugin %d: name is required", i)
		}
	}
	return nil
}

// Build validates the manifest and constructs a registry seeded with
// its plugins, in manifest order. Options are forwarded to plugreg.New,
// so a manifest with duplicate names fails under WithUniqueNames.
func (m Manifest) Build(opts ...plugreg.Option) (*plugreg.Registry, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	reg := plugreg.New(m.Capacity, opts...)
	for _, p := range m.Plugins {
		if err := reg.Add(plugreg.Plugin{Name: p.Name, Version: p.Version, Enabled: p.Enabled}); err != nil {
			return nil, fmt.Errorf("seed plugin %q: %w", p.Name, err)
		}
	}
	return reg, nil
}
