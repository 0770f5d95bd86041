// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/modelgen/internal/translate"
)

// SchemaSelect returns a select field for choosing a schema file.
func SchemaSelect(value *string, files []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(files))
	for i, f := range files {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Schema").
		Options(options...).
		Filtering(true).
		Height(8).
		Value(value)
}

// PropertyMultiSelect returns a multi-select field over the properties of
// schema, in declaration order.
func PropertyMultiSelect(value *[]string, schema *translate.Schema) *huh.MultiSelect[string] {
	return huh.NewMultiSelect[string]().
		Title("Properties").
		Options(propertyOptions(schema)...).
		Filterable(true).
		Validate(atLeastOne[string]("property")).
		Value(value)
}

// SectionMultiSelect returns a multi-select field over output sections.
// Every section starts selected.
func SectionMultiSelect(value *[]string, sections []string) *huh.MultiSelect[string] {
	options := make([]huh.Option[string], len(sections))
	for i, s := range sections {
		options[i] = huh.NewOption(s, s).Selected(true)
	}
	return huh.NewMultiSelect[string]().
		Title("Sections").
		Options(options...).
		Validate(atLeastOne[string]("section")).
		Value(value)
}

func propertyOptions(schema *translate.Schema) []huh.Option[string] {
	options := make([]huh.Option[string], len(schema.Properties))
	for i, p := range schema.Properties {
		options[i] = huh.NewOption(fmt.Sprintf("%s (%s)", p.Name(), p.Kind()), p.Name())
	}
	return options
}
