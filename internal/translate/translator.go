// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package translate provides the property model shared by the code generators.
package translate

import (
	"fmt"
	"sort"
)

// Options selects what a Translator renders for one schema.
type Options struct {
	// ClassName overrides the owning class name. When empty the translator
	// derives it from its class prefix and the schema name.
	ClassName string

	// Properties restricts output to these raw property names, in schema order.
	// Empty means every property.
	Properties []string

	// Sections restricts output to these section names. Empty means all.
	Sections []string
}

// Translator defines the interface all target-language generators implement.
type Translator interface {
	// Name returns the translator's identifier (e.g., "objc").
	Name() string

	// Sections lists the section names the translator can render, in output order.
	Sections() []string

	// Translate renders the source fragments for the properties of schema.
	Translate(schema *Schema, opts Options) ([]byte, error)
}

// Register maps translator names to translators.
type Register map[string]Translator

// Add registers t under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown translator: %s", name)
	}
	return t, nil
}

// Available returns all registered translator names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the properties of schema named in names, keeping schema
// order. An empty names slice selects every property.
func Select(schema *Schema, names []string) ([]Property, error) {
	if len(names) == 0 {
		return schema.Properties, nil
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if schema.Property(n) == nil {
			return nil, fmt.Errorf("property %q not found in schema %q", n, schema.Name)
		}
		want[n] = true
	}
	selected := make([]Property, 0, len(names))
	for _, p := range schema.Properties {
		if want[p.Name()] {
			selected = append(selected, p)
		}
	}
	return selected, nil
}
