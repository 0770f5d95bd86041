// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dacolabs/modelgen/internal/translate"
)

// fallbackClasses are permitted for the elements of untyped containers.
var fallbackClasses = []string{classString, classNumber}

// EncodeStatement renders the NSCoder message archiving p. The archive key is
// always the raw schema name, never the accessor name.
func (g *Generator) EncodeStatement(p translate.Property) (string, error) {
	missing, err := g.unresolved(p)
	if err != nil || missing {
		return "", err
	}

	var method string
	switch p := p.(type) {
	case *translate.IntegerProperty:
		method = "encodeInteger"
	case *translate.BooleanProperty:
		method = "encodeBool"
	case *translate.NumberProperty:
		method = "encodeCGFloat"
	case *translate.StringProperty:
		method = "encodeObject"
		if IsEnumeration(p) {
			method = "encodeInteger"
		}
	case *translate.ArrayProperty, *translate.ObjectProperty, *translate.ReferenceProperty:
		method = "encodeObject"
	default:
		return "", fmt.Errorf("unsupported property type %T", p)
	}
	return fmt.Sprintf("[aCoder %s:self.%s forKey:@\"%s\"]", method, PropertyName(p), p.Name()), nil
}

// DecodeStatement renders the NSCoder message restoring p. Object-valued
// properties decode through the minimal set of permitted classes.
func (g *Generator) DecodeStatement(p translate.Property) (string, error) {
	missing, err := g.unresolved(p)
	if err != nil || missing {
		return "", err
	}

	key := p.Name()
	switch p := p.(type) {
	case *translate.IntegerProperty:
		return fmt.Sprintf("[aDecoder decodeIntegerForKey:@\"%s\"]", key), nil
	case *translate.BooleanProperty:
		return fmt.Sprintf("[aDecoder decodeBoolForKey:@\"%s\"]", key), nil
	case *translate.NumberProperty:
		return fmt.Sprintf("[aDecoder decodeCGFloatForKey:@\"%s\"]", key), nil
	case *translate.StringProperty:
		if IsEnumeration(p) {
			return fmt.Sprintf("[aDecoder decodeIntegerForKey:@\"%s\"]", key), nil
		}
		return fmt.Sprintf("[aDecoder decodeObjectOfClass:[%s class] forKey:@\"%s\"]", g.stringTypeName(p), key), nil
	case *translate.ReferenceProperty:
		className, err := g.referenceClassName(p)
		if err != nil || className == "" {
			return "", err
		}
		return fmt.Sprintf("[aDecoder decodeObjectOfClass:[%s class] forKey:@\"%s\"]", className, key), nil
	case *translate.ArrayProperty, *translate.ObjectProperty:
		classes, err := g.PermittedClasses(p)
		if err != nil {
			return "", err
		}
		list := make([]string, len(classes))
		for i, c := range classes {
			list[i] = fmt.Sprintf("[%s class]", c)
		}
		return fmt.Sprintf("[aDecoder decodeObjectOfClasses:[NSSet setWithArray:@[%s]] forKey:@\"%s\"]", strings.Join(list, ", "), key), nil
	default:
		return "", fmt.Errorf("unsupported property type %T", p)
	}
}

// PermittedClasses returns the classes a decoder may materialize for p, in a
// fixed order: the container class, the key class for dictionaries, then the
// element classes. Untyped containers permit only the fallback primitives,
// and unresolved properties permit nothing.
func (g *Generator) PermittedClasses(p translate.Property) ([]string, error) {
	missing, err := g.unresolved(p)
	if err != nil || missing {
		return nil, err
	}

	var classes []string
	switch p := p.(type) {
	case *translate.StringProperty:
		if IsEnumeration(p) {
			return nil, nil
		}
		classes = []string{g.stringTypeName(p)}
	case *translate.ReferenceProperty:
		className, err := g.referenceClassName(p)
		if err != nil || className == "" {
			return nil, err
		}
		classes = []string{className}
	case *translate.ArrayProperty:
		elem, err := g.element(p, p.Items)
		if err != nil {
			return nil, err
		}
		classes, err = g.containerClasses([]string{classArray}, elem)
		if err != nil {
			return nil, err
		}
	case *translate.ObjectProperty:
		value, err := g.element(p, p.Values)
		if err != nil {
			return nil, err
		}
		classes, err = g.containerClasses([]string{classDictionary, classString}, value)
		if err != nil {
			return nil, err
		}
	case *translate.BooleanProperty, *translate.IntegerProperty, *translate.NumberProperty:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported property type %T", p)
	}
	return dedupe(classes), nil
}

func (g *Generator) containerClasses(classes []string, elem translate.Property) ([]string, error) {
	if elem == nil {
		return append(classes, fallbackClasses...), nil
	}
	inner, err := g.PermittedClasses(elem)
	if err != nil {
		return nil, err
	}
	return append(classes, inner...), nil
}

func dedupe(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}
