package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/plugreg/pkg/plugreg"
)

const yamlManifest = `
capacity: 8
plugins:
  - name: auth
    version: 5
    enabled: true
  - name: billing
    version: 2
    enabled: false
`

const jsonManifest = `{
	"capacity": 8,
	"plugins": [
		{"name": "auth", "version": 5, "enabled": true},
		{"name": "billing", "version": 2, "enabled": false}
	]
}`

func TestFromYAML(t *testing.T) {
	m, err := FromYAML([]byte(yamlManifest))
	require.NoError(t, err)

	assert.Equal(t, 8, m.Capacity)
	require.Len(t, m.Plugins, 2)
	assert.Equal(t, PluginSpec{Name: "auth", Version: 5, Enabled: true}, m.Plugins[0])
	assert.Equal(t, PluginSpec{Name: "billing", Version: 2, Enabled: false}, m.Plugins[1])
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("capacity: [not an int"))
	assert.Error(t, err)
}

func TestFromJSON(t *testing.T) {
	m, err := FromJSON([]byte(jsonManifest))
	require.NoError(t, err)

	assert.Equal(t, 8, m.Capacity)
	require.Len(t, m.Plugins, 2)
	assert.Equal(t, "auth", m.Plugins[0].Name)
}

func TestFromJSONInvalid(t *testing.T) {
	_, err := FromJSON([]byte("{invalid"))
	assert.Error(t, err)
}

func TestFromFile(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"plugins.yaml", yamlManifest},
		{"plugins.yml", yamlManifest},
		{"plugins.json", jsonManifest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, []byte(tt.data), 0o644))

			m, err := FromFile(path)
			require.NoError(t, err)
			assert.Equal(t, 8, m.Capacity)
			assert.Len(t, m.Plugins, 2)
		})
	}
}

func TestFromFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plugins.toml")
	require.NoError(t, os.WriteFile(path, []byte("capacity = 8"), 0o644))

	_, err := FromFile(path)
	assert.ErrorContains(t, err, "unsupported manifest file extension")
}

func TestFromFileMissing(t *testing.T) {
	_, err := FromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		manifest Manifest
		wantErr  string
	}{
		{
			name:     "valid",
			manifest: Manifest{Capacity: 2, Plugins: []PluginSpec{{Name: "auth", Version: 1}}},
		},
		{
			name:     "empty is valid",
			manifest: Manifest{},
		},
		{
			name:     "negative capacity",
			manifest: Manifest{Capacity: -1},
			wantErr:  "capacity must not be negative",
		},
		{
			name:     "too many seeds",
			manifest: Manifest{Capacity: 1, Plugins: []PluginSpec{{Name: "a"}, {Name: "b"}}},
			wantErr:  "exceed capacity",
		},
		{
			name:     "unnamed plugin",
			manifest: Manifest{Capacity: 2, Plugins: []PluginSpec{{Version: 1}}},
			wantErr:  "name is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.manifest.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	m, err := FromYAML([]byte(yamlManifest))
	require.NoError(t, err)

	reg, err := m.Build()
	require.NoError(t, err)

	assert.Equal(t, 8, reg.Cap())
	assert.Equal(t, 2, reg.Len())

	// Seed order matches manifest order.
	views := reg.Snapshot()
	require.Len(t, views, 2)
	assert.Equal(t, "auth", views[0].Name)
	assert.True(t, views[0].Enabled)
	assert.Equal(t, "billing", views[1].Name)
	assert.False(t, views[1].Enabled)
}

func TestBuildInvalidManifest(t *testing.T) {
	m := Manifest{Capacity: -1}
	_, err := m.Build()
	assert.ErrorContains(t, err, "invalid manifest")
}

func TestBuildWithUniqueNames(t *testing.T) {
	m := Manifest{
		Capacity: 4,
		Plugins: []PluginSpec{
			{Name: "auth", Version: 1},
			{Name: "auth", Version: 2},
		},
	}

	// Permissive by default.
	reg, err := m.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, reg.Len())

	// Rejected under uniqueness enforcement.
	_, err = m.Build(plugreg.WithUniqueNames())
	assert.ErrorIs(t, err, plugreg.ErrDuplicate)
}
