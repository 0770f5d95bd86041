// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

// Kind is the schema value kind of a property.
type Kind int

// Value kinds. The set is closed: every Property variant reports exactly one of these.
const (
	KindBoolean Kind = iota
	KindInteger
	KindNumber
	KindString
	KindArray
	KindObject
	KindReference
)

var kindNames = [...]string{
	KindBoolean:   "boolean",
	KindInteger:   "integer",
	KindNumber:    "number",
	KindString:    "string",
	KindArray:     "array",
	KindObject:    "object",
	KindReference: "reference",
}

// String returns the JSON Schema spelling of the kind ("reference" for $ref).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// StringFormat is the optional format of a string property.
type StringFormat int

// String formats understood by the generators.
const (
	FormatNone StringFormat = iota
	FormatURI
	FormatDateTime
)

// String returns the JSON Schema spelling of the format.
func (f StringFormat) String() string {
	switch f {
	case FormatURI:
		return "uri"
	case FormatDateTime:
		return "date-time"
	default:
		return ""
	}
}

// EnumValue is one entry of an enumerated value set. Order within the
// enclosing slice is significant.
type EnumValue[T int | string] struct {
	Description string
	Default     T
}

// Property is a schema-derived description of one data-model field.
//
// It is a closed tagged union: the only implementations are the *Property
// structs declared in this file, and every switch over it lists all of them.
type Property interface {
	// Name returns the raw snake_case field identifier from the schema.
	Name() string
	// Kind returns the value kind of the variant.
	Kind() Kind

	sealed()
}

// BooleanProperty is a boolean field.
type BooleanProperty struct {
	FieldName string
}

// IntegerProperty is an integer field, optionally restricted to an enumeration.
type IntegerProperty struct {
	FieldName string
	Enum      []EnumValue[int]
}

// NumberProperty is a floating-point field.
type NumberProperty struct {
	FieldName string
}

// StringProperty is a string field with an optional format or enumeration.
type StringProperty struct {
	FieldName string
	Format    StringFormat
	Enum      []EnumValue[string]
}

// ArrayProperty is a sequence field. Items is nil when the schema does not
// declare an element type.
type ArrayProperty struct {
	FieldName string
	Items     Property
}

// ObjectProperty is a string-keyed mapping field. Values is nil when the
// schema does not declare a value type.
type ObjectProperty struct {
	FieldName string
	Values    Property
}

// ReferenceProperty points at another schema by reference name.
type ReferenceProperty struct {
	FieldName string
	Ref       string
}

func (p *BooleanProperty) Name() string   { return p.FieldName }
func (p *IntegerProperty) Name() string   { return p.FieldName }
func (p *NumberProperty) Name() string    { return p.FieldName }
func (p *StringProperty) Name() string    { return p.FieldName }
func (p *ArrayProperty) Name() string     { return p.FieldName }
func (p *ObjectProperty) Name() string    { return p.FieldName }
func (p *ReferenceProperty) Name() string { return p.FieldName }

func (*BooleanProperty) Kind() Kind   { return KindBoolean }
func (*IntegerProperty) Kind() Kind   { return KindInteger }
func (*NumberProperty) Kind() Kind    { return KindNumber }
func (*StringProperty) Kind() Kind    { return KindString }
func (*ArrayProperty) Kind() Kind     { return KindArray }
func (*ObjectProperty) Kind() Kind    { return KindObject }
func (*ReferenceProperty) Kind() Kind { return KindReference }

func (*BooleanProperty) sealed()   {}
func (*IntegerProperty) sealed()   {}
func (*NumberProperty) sealed()    {}
func (*StringProperty) sealed()    {}
func (*ArrayProperty) sealed()     {}
func (*ObjectProperty) sealed()    {}
func (*ReferenceProperty) sealed() {}

// Schema is a resolved model definition: a named object with ordered properties.
type Schema struct {
	Name        string     // raw schema name, e.g. "board"
	Description string     // schema description, if any
	Properties  []Property // properties in source order
}

// Property returns the property with the given raw name, or nil.
func (s *Schema) Property(name string) Property {
	for _, p := range s.Properties {
		if p.Name() == name {
			return p
		}
	}
	return nil
}
