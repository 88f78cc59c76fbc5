// Package config provides manifest-driven registry construction.
//
// A Manifest declares a registry's capacity and the plugins to seed it
// with. Manifests load from YAML or JSON and build directly into a
// ready registry:
//
//	m, err := config.FromFile("plugins.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	reg, err := m.Build()
//
// A YAML manifest looks like:
//
//	capacity: 8
//	plugins:
//	  - name: auth
//	    version: 5
//	    enabled: true
//	  - name: billing
//	    version: 2
//	    enabled: false
package config
