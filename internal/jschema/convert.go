// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"fmt"
	"math"
	"path"
	"slices"
	"strings"

	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/google/jsonschema-go/jsonschema"
)

// Convert converts the root schema of doc into the generator model.
// The schema name is the root title, or the file name without extension.
func Convert(doc *Document) (*translate.Schema, error) {
	base := path.Base(doc.Path)
	return convertSchema(doc, doc.Root, strings.TrimSuffix(base, path.Ext(base)), "properties")
}

// ConvertDef converts the definition called name, looked up in $defs first
// and then in definitions.
func ConvertDef(doc *Document, name string) (*translate.Schema, error) {
	def, section := doc.Root.Defs[name], "$defs"
	if def == nil {
		def, section = doc.Root.Definitions[name], "definitions"
	}
	if def == nil {
		return nil, fmt.Errorf("definition %q not found in %s", name, doc.Path)
	}
	return convertSchema(doc, def, name, section+"."+name+".properties")
}

func convertSchema(doc *Document, s *jsonschema.Schema, fallback, propsPath string) (*translate.Schema, error) {
	name := s.Title
	if name == "" {
		name = fallback
	}
	out := &translate.Schema{
		Name:        translate.ToSnakeCase(name),
		Description: s.Description,
	}

	for _, key := range propertyOrder(doc.KeyOrder[propsPath], s.Properties) {
		p, err := convertProperty(doc.Path, key, key, s.Properties[key])
		if err != nil {
			return nil, fmt.Errorf("schema %s: %w", out.Name, err)
		}
		out.Properties = append(out.Properties, p)
	}
	return out, nil
}

// convertProperty converts s into a property called field. Errors are
// reported against owner, which differs from field for container elements.
func convertProperty(docPath, field, owner string, s *jsonschema.Schema) (translate.Property, error) {
	if s == nil {
		return nil, translate.NewSchemaError("", owner, "missing schema")
	}
	if s.Ref != "" {
		return &translate.ReferenceProperty{FieldName: field, Ref: CanonicalRef(docPath, s.Ref)}, nil
	}

	typ, err := schemaType(s, owner)
	if err != nil {
		return nil, err
	}
	if len(s.Enum) > 0 && typ != "integer" && typ != "string" {
		return nil, translate.NewSchemaError("", owner,
			fmt.Sprintf("enumerations must be integer or string values (got %s)", typ))
	}

	switch typ {
	case "boolean":
		return &translate.BooleanProperty{FieldName: field}, nil
	case "number":
		return &translate.NumberProperty{FieldName: field}, nil
	case "integer":
		enum, err := enumValues(s.Enum, owner, intValue)
		if err != nil {
			return nil, err
		}
		return &translate.IntegerProperty{FieldName: field, Enum: enum}, nil
	case "string":
		enum, err := enumValues(s.Enum, owner, stringValue)
		if err != nil {
			return nil, err
		}
		return &translate.StringProperty{FieldName: field, Format: stringFormat(s.Format), Enum: enum}, nil
	case "array":
		items, err := element(docPath, owner, s.Items)
		if err != nil {
			return nil, err
		}
		return &translate.ArrayProperty{FieldName: field, Items: items}, nil
	case "object":
		values, err := element(docPath, owner, s.AdditionalProperties)
		if err != nil {
			return nil, err
		}
		return &translate.ObjectProperty{FieldName: field, Values: values}, nil
	case "":
		return nil, translate.NewSchemaError("", owner, "missing type")
	default:
		return nil, translate.NewSchemaError("", owner, fmt.Sprintf("unsupported type %q", typ))
	}
}

// element converts the item or value schema of a container. Schemas with
// neither a type nor a $ref leave the container untyped.
func element(docPath, owner string, s *jsonschema.Schema) (translate.Property, error) {
	if s == nil {
		return nil, nil
	}
	if s.Ref == "" {
		typ, err := schemaType(s, owner)
		if err != nil {
			return nil, err
		}
		if typ == "" {
			return nil, nil
		}
	}
	return convertProperty(docPath, "", owner, s)
}

// schemaType returns the single non-null type of s.
func schemaType(s *jsonschema.Schema, owner string) (string, error) {
	if s.Type == "null" {
		return "", nil
	}
	if s.Type != "" {
		return s.Type, nil
	}
	var types []string
	for _, t := range s.Types {
		if t != "null" {
			types = append(types, t)
		}
	}
	switch len(types) {
	case 0:
		return "", nil
	case 1:
		return types[0], nil
	default:
		return "", translate.NewSchemaError("", owner,
			fmt.Sprintf("ambiguous type %s", strings.Join(types, ", ")))
	}
}

func stringFormat(format string) translate.StringFormat {
	switch format {
	case "uri":
		return translate.FormatURI
	case "date-time":
		return translate.FormatDateTime
	default:
		return translate.FormatNone
	}
}

// enumValues reads enumeration entries. An entry is either an object with
// "default" and optional "description" keys, or a bare value.
func enumValues[T int | string](raw []any, owner string, conv func(any) (T, bool)) ([]translate.EnumValue[T], error) {
	if len(raw) == 0 {
		return nil, nil
	}
	values := make([]translate.EnumValue[T], 0, len(raw))
	for _, entry := range raw {
		var desc string
		v := entry
		if m, ok := entry.(map[string]any); ok {
			desc, _ = m["description"].(string)
			v = m["default"]
		}
		def, ok := conv(v)
		if !ok {
			return nil, translate.NewSchemaError("", owner, fmt.Sprintf("invalid enumeration value %v", v))
		}
		// Bare values, and entries without a description, are named after their value.
		if desc == "" {
			desc = fmt.Sprint(def)
		}
		values = append(values, translate.EnumValue[T]{Description: desc, Default: def})
	}
	return values, nil
}

func intValue(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}

func stringValue(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// propertyOrder returns the keys of props in source order when known.
// Keys missing from order follow, sorted.
func propertyOrder(order []string, props map[string]*jsonschema.Schema) []string {
	result := make([]string, 0, len(props))
	for _, key := range order {
		if _, ok := props[key]; ok && !slices.Contains(result, key) {
			result = append(result, key)
		}
	}
	for _, key := range sortedKeys(props) {
		if !slices.Contains(result, key) {
			result = append(result, key)
		}
	}
	return result
}

func sortedKeys(m map[string]*jsonschema.Schema) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
