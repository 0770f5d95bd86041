// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// SchemaResolver resolves a reference name to the schema it points at.
// Implementations must be safe for concurrent reads when generation passes
// run in parallel. The second result is false when the reference is unknown.
type SchemaResolver interface {
	Resolve(ref string) (*Schema, bool)
}

// ResolverFunc adapts a function to a SchemaResolver.
type ResolverFunc func(ref string) (*Schema, bool)

// Resolve calls f(ref).
func (f ResolverFunc) Resolve(ref string) (*Schema, bool) {
	return f(ref)
}

// MapResolver is a fixed reference table, mostly useful in tests.
type MapResolver map[string]*Schema

// Resolve looks ref up in the table.
func (m MapResolver) Resolve(ref string) (*Schema, bool) {
	s, ok := m[ref]
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}
