// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"strings"

	"github.com/dacolabs/modelgen/internal/translate"
)

// IsEnumeration reports whether p carries a non-empty enumerated value set.
func IsEnumeration(p translate.Property) bool {
	switch p := p.(type) {
	case *translate.IntegerProperty:
		return len(p.Enum) > 0
	case *translate.StringProperty:
		return len(p.Enum) > 0
	default:
		return false
	}
}

// IsScalar reports whether p is passed by value: booleans, integers, numbers,
// and string enumerations (which are backed by NSInteger).
func IsScalar(p translate.Property) bool {
	switch p := p.(type) {
	case *translate.BooleanProperty, *translate.IntegerProperty, *translate.NumberProperty:
		return true
	case *translate.StringProperty:
		return IsEnumeration(p)
	default:
		return false
	}
}

// Ownership returns the memory assignment qualifier for p.
func Ownership(p translate.Property) MemoryAssignment {
	if IsScalar(p) {
		return Assign
	}
	return Strong
}

// PropertyName returns the accessor name of p.
func PropertyName(p translate.Property) string {
	return translate.ToPropertyName(p.Name())
}

// EnumTypeName returns the name of the enumeration synthesized for p: the
// class name followed by the camel-cased field name with a "_type" suffix.
// A field already ending in "_type" is not suffixed twice.
func EnumTypeName(className string, p translate.Property) string {
	name := p.Name()
	if !strings.HasSuffix(name, "_type") {
		name += "_type"
	}
	return className + translate.ToCamelCase(name)
}

// EnumMemberName returns the constant name of one enumeration entry.
func EnumMemberName(className string, p translate.Property, description string) string {
	return EnumTypeName(className, p) + translate.ToCamelCase(description)
}
