// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"fmt"
	"strings"

	"github.com/dacolabs/modelgen/internal/translate"
)

const indent = "    "

// EnumTypeName returns the enumeration type name for p within this generator's class.
func (g *Generator) EnumTypeName(p translate.Property) string {
	return EnumTypeName(g.className, p)
}

// EnumDeclaration renders the NS_ENUM typedef for an enumeration property.
//
// Integer members are assigned their declared defaults. String members are
// numbered by declaration order and keep their string value as a comment.
// Two entries deriving the same member name are a schema error.
func (g *Generator) EnumDeclaration(p translate.Property) (string, error) {
	if err := g.checkEnumeration(p); err != nil {
		return "", err
	}
	typeName := g.EnumTypeName(p)

	var members []string
	seen := make(map[string]bool)
	member := func(description string) (string, error) {
		name := EnumMemberName(g.className, p, description)
		if seen[name] {
			return "", translate.NewSchemaError(g.className, p.Name(),
				fmt.Sprintf("enumeration member %s is derived more than once", name))
		}
		seen[name] = true
		return name, nil
	}

	switch p := p.(type) {
	case *translate.IntegerProperty:
		for _, v := range p.Enum {
			name, err := member(v.Description)
			if err != nil {
				return "", err
			}
			members = append(members, fmt.Sprintf("%s%s = %d", indent, name, v.Default))
		}
	case *translate.StringProperty:
		for _, v := range p.Enum {
			name, err := member(v.Description)
			if err != nil {
				return "", err
			}
			members = append(members, fmt.Sprintf("%s%s /* %s */", indent, name, v.Default))
		}
	}

	return strings.Join([]string{
		fmt.Sprintf("typedef NS_ENUM(NSInteger, %s) {", typeName),
		strings.Join(members, ",\n"),
		"};",
	}, "\n"), nil
}

// EnumUtilityDeclarations renders the extern declarations of the string
// conversion functions of an enumeration. Their bodies belong to the file emitter.
func (g *Generator) EnumUtilityDeclarations(p translate.Property) (string, error) {
	if err := g.checkEnumeration(p); err != nil {
		return "", err
	}
	typeName := g.EnumTypeName(p)
	return strings.Join([]string{
		fmt.Sprintf("extern %s %sFromString(NSString * _Nonnull str);", typeName, typeName),
		fmt.Sprintf("extern NSString * _Nonnull %sToString(%s enumType);", typeName, typeName),
	}, "\n"), nil
}

func (g *Generator) checkEnumeration(p translate.Property) error {
	switch p.(type) {
	case *translate.IntegerProperty, *translate.StringProperty:
		if !IsEnumeration(p) {
			return fmt.Errorf("property %s.%s is not an enumeration", g.className, p.Name())
		}
		return nil
	default:
		return translate.NewSchemaError(g.className, p.Name(),
			fmt.Sprintf("enumerations must be integer or string values (got %s)", p.Kind()))
	}
}

// checkEnumTypeNames reports a schema error when two enumerations among props
// derive the same type name within this generator's class.
func (g *Generator) checkEnumTypeNames(props []translate.Property) error {
	owners := make(map[string]string)
	for _, p := range props {
		if !IsEnumeration(p) {
			continue
		}
		name := g.EnumTypeName(p)
		if other, ok := owners[name]; ok {
			return translate.NewSchemaError(g.className, p.Name(),
				fmt.Sprintf("enumeration type %s is also derived from property %s", name, other))
		}
		owners[name] = p.Name()
	}
	return nil
}
