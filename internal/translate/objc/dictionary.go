// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"fmt"

	"github.com/dacolabs/modelgen/internal/translate"
)

// Variable names shared with the surrounding generated initializer.
const (
	valueVar = "value"
	itemVar  = "obj"
)

// lookupExpression is the null-safe dictionary read used by the direct-assignment path.
func lookupExpression(p translate.Property) string {
	return fmt.Sprintf("valueOrNil(modelDictionary, @\"%s\")", p.Name())
}

// ValueExpression converts the raw dictionary value held in variable into
// the declared type of p. Containers pass through unchanged; their element
// conversion is emitted by AssignmentStatements. An unresolved reference, or a
// container of them, yields "".
func (g *Generator) ValueExpression(p translate.Property, variable string) (string, error) {
	switch p := p.(type) {
	case *translate.StringProperty:
		switch {
		case IsEnumeration(p):
			return fmt.Sprintf("%sFromString(%s)", g.EnumTypeName(p), variable), nil
		case p.Format == translate.FormatURI:
			return fmt.Sprintf("[NSURL URLWithString:%s]", variable), nil
		case p.Format == translate.FormatDateTime:
			return fmt.Sprintf("[[NSValueTransformer valueTransformerForName:%s] transformedValue:%s]", DateValueTransformerKey, variable), nil
		default:
			return variable, nil
		}
	case *translate.IntegerProperty:
		if IsEnumeration(p) {
			return fmt.Sprintf("%sFromString(%s)", g.EnumTypeName(p), variable), nil
		}
		return fmt.Sprintf("[%s integerValue]", variable), nil
	case *translate.NumberProperty:
		return fmt.Sprintf("[%s floatValue]", variable), nil
	case *translate.BooleanProperty:
		return fmt.Sprintf("[%s boolValue]", variable), nil
	case *translate.ReferenceProperty:
		className, err := g.referenceClassName(p)
		if err != nil || className == "" {
			return "", err
		}
		return fmt.Sprintf("[[%s alloc] initWithDictionary:%s]", className, variable), nil
	case *translate.ArrayProperty, *translate.ObjectProperty:
		missing, err := g.unresolved(p)
		if err != nil || missing {
			return "", err
		}
		return variable, nil
	default:
		return "", fmt.Errorf("unsupported property type %T", p)
	}
}

// RequiresConversion reports whether p needs the conversion path instead of
// a direct assignment: references, URI and date-time strings, and containers
// whose elements require conversion.
func (g *Generator) RequiresConversion(p translate.Property) (bool, error) {
	switch p := p.(type) {
	case *translate.ArrayProperty:
		elem, err := g.element(p, p.Items)
		if err != nil || elem == nil {
			return false, err
		}
		return g.RequiresConversion(elem)
	case *translate.ObjectProperty:
		value, err := g.element(p, p.Values)
		if err != nil || value == nil {
			return false, err
		}
		return g.RequiresConversion(value)
	case *translate.ReferenceProperty:
		return true, nil
	case *translate.StringProperty:
		return !IsEnumeration(p) && (p.Format == translate.FormatURI || p.Format == translate.FormatDateTime), nil
	default:
		return false, nil
	}
}

// AssignmentStatements renders the initWithDictionary: statements that set
// the instance variable of p. Container conversion skips nil and NSNull
// entries, so the resulting collections never hold nulled values.
func (g *Generator) AssignmentStatements(p translate.Property) ([]string, error) {
	target := "_" + PropertyName(p)
	return g.assignment(p, target, true)
}

// MergeStatements renders the statements merging the dictionary value of p
// into the builder held in origin. Unlike AssignmentStatements, container
// entries are converted without a null filter, and a non-nil nested model is
// merged in place rather than replaced.
func (g *Generator) MergeStatements(p translate.Property, origin string) ([]string, error) {
	target := origin + "." + PropertyName(p)
	if ref, ok := p.(*translate.ReferenceProperty); ok {
		expr, err := g.ValueExpression(ref, valueVar)
		if err != nil || expr == "" {
			return nil, err
		}
		return []string{
			fmt.Sprintf("if (%s != nil) {", target),
			fmt.Sprintf("   %s = [%s mergeWithDictionary:%s];", target, target, valueVar),
			"} else {",
			fmt.Sprintf("   %s = %s;", target, expr),
			"}",
		}, nil
	}
	return g.assignment(p, target, false)
}

func (g *Generator) assignment(p translate.Property, target string, filterNulls bool) ([]string, error) {
	missing, err := g.unresolved(p)
	if err != nil || missing {
		return nil, err
	}

	convert, err := g.RequiresConversion(p)
	if err != nil {
		return nil, err
	}
	if !convert {
		expr, err := g.ValueExpression(p, lookupExpression(p))
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s = %s;", target, expr)}, nil
	}

	switch p := p.(type) {
	case *translate.ArrayProperty:
		// The element is typed and resolved: both were checked above.
		elem, err := g.element(p, p.Items)
		if err != nil {
			return nil, err
		}
		// A nested container element is added as is. Only the outer level
		// is converted, so inner arrays keep their raw dictionaries.
		expr, err := g.ValueExpression(elem, itemVar)
		if err != nil {
			return nil, err
		}
		return arrayLoop(target, expr, filterNulls), nil
	case *translate.ObjectProperty:
		value, err := g.element(p, p.Values)
		if err != nil {
			return nil, err
		}
		// Nested container values pass through unconverted, as for arrays.
		expr, err := g.ValueExpression(value, itemVar)
		if err != nil {
			return nil, err
		}
		return dictionaryLoop(target, expr, itemType(value), filterNulls), nil
	default:
		expr, err := g.ValueExpression(p, valueVar)
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%s = %s;", target, expr)}, nil
	}
}

func arrayLoop(target, expr string, filterNulls bool) []string {
	lines := []string{
		"NSArray *items = value;",
		"NSMutableArray *result = [NSMutableArray arrayWithCapacity:items.count];",
		"for (id obj in items) {",
	}
	if filterNulls {
		lines = append(lines,
			"    if (obj != nil && [obj isEqual:[NSNull null]] == NO) {",
			fmt.Sprintf("        [result addObject:%s];", expr),
			"    }",
		)
	} else {
		lines = append(lines, fmt.Sprintf("    [result addObject:%s];", expr))
	}
	return append(lines,
		"}",
		fmt.Sprintf("%s = result;", target),
	)
}

func dictionaryLoop(target, expr, objType string, filterNulls bool) []string {
	lines := []string{
		"NSDictionary *items = value;",
		"NSMutableDictionary *result = [NSMutableDictionary dictionaryWithCapacity:items.count];",
	}
	if filterNulls {
		lines = append(lines,
			fmt.Sprintf("[items enumerateKeysAndObjectsUsingBlock:^(NSString *key, %s, BOOL *stop) {", objType),
			"    if (obj != nil && [obj isEqual:[NSNull null]] == NO) {",
			fmt.Sprintf("        result[key] = %s;", expr),
			"    }",
		)
	} else {
		lines = append(lines,
			fmt.Sprintf("[items enumerateKeysAndObjectsUsingBlock:^(NSString *key, %s, __unused BOOL *stop) {", objType),
			fmt.Sprintf("    result[key] = %s;", expr),
		)
	}
	return append(lines,
		"}];",
		fmt.Sprintf("%s = result;", target),
	)
}

// itemType is the block parameter declaration for dictionary values: nested
// models arrive as dictionaries, everything else as id.
func itemType(value translate.Property) string {
	if _, ok := value.(*translate.ReferenceProperty); ok {
		return "NSDictionary *obj"
	}
	return "id obj"
}
