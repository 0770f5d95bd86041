// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"iter"

	"github.com/google/jsonschema-go/jsonschema"
)

// RefResolver resolves $ref strings to schemas.
// Return nil if the ref cannot be resolved.
type RefResolver func(ref string) *jsonschema.Schema

// Traverse returns an iterator over all schemas in the tree.
// It handles cycles by tracking visited schemas.
// If resolver is provided, it follows $ref links to their targets.
func Traverse(schema *jsonschema.Schema, resolver RefResolver) iter.Seq[*jsonschema.Schema] {
	return func(yield func(*jsonschema.Schema) bool) {
		w := &walker{resolver: resolver, yield: yield, visited: make(map[*jsonschema.Schema]struct{})}
		w.walk(schema)
	}
}

type walker struct {
	resolver RefResolver
	yield    func(*jsonschema.Schema) bool
	visited  map[*jsonschema.Schema]struct{}
}

func (w *walker) walk(schema *jsonschema.Schema) bool {
	if schema == nil {
		return true
	}
	if _, ok := w.visited[schema]; ok {
		return true
	}
	w.visited[schema] = struct{}{}

	if !w.yield(schema) {
		return false
	}

	if schema.Ref != "" && w.resolver != nil {
		if !w.walk(w.resolver(schema.Ref)) {
			return false
		}
	}

	// Map children are visited in key order so iteration is deterministic.
	maps := []map[string]*jsonschema.Schema{
		schema.Properties,
		schema.PatternProperties,
		schema.DependentSchemas,
		schema.Defs,
		schema.Definitions,
	}
	for _, m := range maps {
		for _, k := range sortedKeys(m) {
			if !w.walk(m[k]) {
				return false
			}
		}
	}

	lists := [][]*jsonschema.Schema{schema.PrefixItems, schema.AllOf, schema.AnyOf, schema.OneOf}
	for _, l := range lists {
		for _, s := range l {
			if !w.walk(s) {
				return false
			}
		}
	}

	singles := []*jsonschema.Schema{
		schema.AdditionalProperties,
		schema.PropertyNames,
		schema.UnevaluatedProperties,
		schema.Items,
		schema.AdditionalItems,
		schema.Contains,
		schema.UnevaluatedItems,
		schema.Not,
		schema.If,
		schema.Then,
		schema.Else,
		schema.ContentSchema,
	}
	for _, s := range singles {
		if !w.walk(s) {
			return false
		}
	}
	return true
}
