// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToCamelCase converts a snake_case identifier to UpperCamelCase.
// Each underscore-separated word is capitalized and the rest of the word is
// lowercased, so "public_URL" becomes "PublicUrl". Empty words are dropped.
func ToCamelCase(s string) string {
	// A Caser keeps state between calls; never share one across goroutines.
	title := cases.Title(language.Und)

	var sb strings.Builder
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		sb.WriteString(title.String(word))
	}
	return sb.String()
}

// ToPropertyName converts a snake_case identifier to the lowerCamelCase
// accessor name used in generated code: "board_type" becomes "boardType".
func ToPropertyName(s string) string {
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var sb strings.Builder
	first := true
	for _, word := range strings.Split(s, "_") {
		if word == "" {
			continue
		}
		if first {
			sb.WriteString(lower.String(word))
			first = false
			continue
		}
		sb.WriteString(title.String(word))
	}
	return sb.String()
}

// ClassName returns the generated class name for a schema: the configured
// prefix followed by the camel-cased schema name.
func ClassName(prefix, schemaName string) string {
	return prefix + ToCamelCase(schemaName)
}

// ToSnakeCase converts a string to a valid snake_case identifier.
// It splits on non-alphanumeric characters, lowercases each part,
// and prefixes with underscore if the result starts with a digit.
func ToSnakeCase(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})

	for i, part := range parts {
		parts[i] = strings.ToLower(part)
	}

	result := strings.Join(parts, "_")
	if result != "" && result[0] >= '0' && result[0] <= '9' {
		result = "_" + result
	}
	return result
}
