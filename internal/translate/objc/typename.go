// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"fmt"

	"github.com/dacolabs/modelgen/internal/translate"
)

// TypeName returns the Objective-C type of p, without the pointer marker.
// An unresolved reference, or a container of them, yields "".
func (g *Generator) TypeName(p translate.Property) (string, error) {
	switch p := p.(type) {
	case *translate.BooleanProperty:
		return PrimitiveBoolean, nil
	case *translate.IntegerProperty:
		if IsEnumeration(p) {
			return g.EnumTypeName(p), nil
		}
		return PrimitiveInteger, nil
	case *translate.NumberProperty:
		return PrimitiveFloat, nil
	case *translate.StringProperty:
		return g.stringTypeName(p), nil
	case *translate.ArrayProperty:
		elem, err := g.element(p, p.Items)
		if err != nil {
			return "", err
		}
		if elem == nil {
			return classArray, nil
		}
		elemType, err := g.TypeName(elem)
		if err != nil || elemType == "" {
			return "", err
		}
		return fmt.Sprintf("%s <%s *>", classArray, elemType), nil
	case *translate.ObjectProperty:
		value, err := g.element(p, p.Values)
		if err != nil {
			return "", err
		}
		if value == nil {
			return fmt.Sprintf("%s <%s *, __kindof %s *>", classDictionary, classString, classObject), nil
		}
		valueType, err := g.TypeName(value)
		if err != nil || valueType == "" {
			return "", err
		}
		return fmt.Sprintf("%s <%s *, %s *>", classDictionary, classString, valueType), nil
	case *translate.ReferenceProperty:
		return g.referenceClassName(p)
	default:
		return "", fmt.Errorf("unsupported property type %T", p)
	}
}

// stringTypeName checks the enumeration before the format: a string
// enumeration is stored as its NSInteger-backed enum type.
func (g *Generator) stringTypeName(p *translate.StringProperty) string {
	switch {
	case IsEnumeration(p):
		return g.EnumTypeName(p)
	case p.Format == translate.FormatURI:
		return classURL
	case p.Format == translate.FormatDateTime:
		return classDate
	default:
		return classString
	}
}
