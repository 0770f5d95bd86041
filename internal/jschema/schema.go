// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jschema loads JSON Schema documents and converts their properties
// into the model consumed by the code generators.
package jschema

import (
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the serialization format of a schema document.
type Format int

const (
	JSON Format = iota
	YAML
)

// FormatFromPath returns the format implied by a file extension.
// Anything that is not .yaml or .yml is read as JSON.
func FormatFromPath(p string) Format {
	if strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
		return YAML
	}
	return JSON
}

// IsFileRef returns true if ref points into another file.
// File refs do not start with "#".
func IsFileRef(ref string) bool {
	return ref != "" && !strings.HasPrefix(ref, "#")
}

// IsInternalRef returns true if ref points into the current document.
func IsInternalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// DefName extracts the definition name from an internal $ref.
// Supports $defs and definitions. Returns empty string for anything else.
func DefName(ref string) string {
	p, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return ""
	}
	switch {
	case strings.HasPrefix(p, "$defs/"):
		return strings.TrimPrefix(p, "$defs/")
	case strings.HasPrefix(p, "definitions/"):
		return strings.TrimPrefix(p, "definitions/")
	}
	return ""
}

// CanonicalRef rewrites a $ref found in the document at docPath so that it
// is addressable from the schema root: file refs are joined with the
// document's directory and internal refs are prefixed with docPath.
func CanonicalRef(docPath, ref string) string {
	switch {
	case ref == "":
		return ""
	case IsFileRef(ref):
		file, frag, found := strings.Cut(ref, "#")
		joined := path.Join(path.Dir(docPath), file)
		if found {
			return joined + "#" + frag
		}
		return joined
	default:
		return docPath + ref
	}
}

// propertiesPath reports whether p addresses a "properties" object.
func propertiesPath(p string) bool {
	return p == "properties" || strings.HasSuffix(p, ".properties")
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}

// ExtractKeyOrderFromJSON parses raw JSON and extracts the order of keys for
// all "properties" objects. The result maps a dotted path such as
// "properties" or "$defs.image.properties" to the ordered keys.
func ExtractKeyOrderFromJSON(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, p string) error
	extract = func(dec *json.Decoder, p string) error {
		token, err := dec.Token()
		if err != nil {
			return err
		}
		t, ok := token.(json.Delim)
		if !ok {
			return nil
		}
		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return err
				}
				key, _ := keyToken.(string)
				keys = append(keys, key)
				if err := extract(dec, joinPath(p, key)); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
			if propertiesPath(p) {
				result[p] = keys
			}
		case '[':
			for dec.More() {
				if err := extract(dec, p); err != nil {
					return err
				}
			}
			if _, err := dec.Token(); err != nil {
				return err
			}
		}
		return nil
	}

	if err := extract(json.NewDecoder(strings.NewReader(string(data))), ""); err != nil {
		return nil, fmt.Errorf("failed to read key order: %w", err)
	}
	return result, nil
}

// ExtractKeyOrderFromYAML is the YAML counterpart of ExtractKeyOrderFromJSON.
func ExtractKeyOrderFromYAML(data []byte) (map[string][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return keyOrderFromNode(&doc), nil
}

func keyOrderFromNode(root *yaml.Node) map[string][]string {
	result := make(map[string][]string)

	var extract func(n *yaml.Node, p string)
	extract = func(n *yaml.Node, p string) {
		switch n.Kind {
		case yaml.DocumentNode, yaml.SequenceNode:
			for _, c := range n.Content {
				extract(c, p)
			}
		case yaml.MappingNode:
			keys := make([]string, 0, len(n.Content)/2)
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)
				extract(n.Content[i+1], joinPath(p, key))
			}
			if propertiesPath(p) {
				result[p] = keys
			}
		}
	}
	extract(root, "")
	return result
}
