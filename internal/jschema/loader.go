// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"slices"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// Document is a parsed schema file.
type Document struct {
	// Path is the slash-separated location of the file inside the loader's filesystem.
	Path string

	// Root is the parsed schema.
	Root *jsonschema.Schema

	// KeyOrder maps a dotted "properties" path to its keys in source order.
	KeyOrder map[string][]string
}

// Refs returns every $ref in the document in canonical form, sorted and
// without duplicates.
func (d *Document) Refs() []string {
	var refs []string
	for s := range Traverse(d.Root, nil) {
		if s.Ref == "" {
			continue
		}
		ref := CanonicalRef(d.Path, s.Ref)
		if !slices.Contains(refs, ref) {
			refs = append(refs, ref)
		}
	}
	slices.Sort(refs)
	return refs
}

// Loader loads schemas from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a schema file.
// The format is determined from the file extension.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, err
	}

	doc, err := Parse(data, FormatFromPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filePath, err)
	}
	doc.Path = filePath
	return doc, nil
}

// Parse parses a schema document in the given format.
func Parse(data []byte, format Format) (*Document, error) {
	if format == YAML {
		return parseYAML(data)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	keyOrder, err := ExtractKeyOrderFromJSON(data)
	if err != nil {
		return nil, err
	}
	return &Document{Root: &schema, KeyOrder: keyOrder}, nil
}

// parseYAML decodes YAML through its JSON form, since the schema type only
// knows how to unmarshal JSON.
func parseYAML(data []byte) (*Document, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}

	if len(node.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}

	var raw any
	if err := node.Decode(&raw); err != nil {
		return nil, err
	}
	rawJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML to JSON: %w", err)
	}

	var schema jsonschema.Schema
	if err := json.Unmarshal(rawJSON, &schema); err != nil {
		return nil, err
	}
	return &Document{Root: &schema, KeyOrder: keyOrderFromNode(&node)}, nil
}
