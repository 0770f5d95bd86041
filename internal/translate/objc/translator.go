// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"bytes"
	"embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"text/template"

	"github.com/dacolabs/modelgen/internal/translate"
)

//go:embed objc.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").ParseFS(tmplFS, "objc.go.tmpl"))

// Section names, in output order.
const (
	SectionEnums          = "enums"
	SectionInterface      = "interface"
	SectionImplementation = "implementation"
	SectionDecode         = "decode"
	SectionEncode         = "encode"
	SectionDictionary     = "dictionary"
	SectionMerge          = "merge"
)

var sections = []struct {
	name  string
	title string
	build func(g *Generator, p translate.Property) ([]string, error)
}{
	{SectionEnums, "Enumerations", enumBlocks},
	{SectionInterface, "Interface declarations", func(g *Generator, p translate.Property) ([]string, error) {
		return single(g.InterfaceDeclaration(p))
	}},
	{SectionImplementation, "Implementation declarations", func(g *Generator, p translate.Property) ([]string, error) {
		return single(g.ImplementationDeclaration(p))
	}},
	{SectionDecode, "initWithCoder:", decodeBlocks},
	{SectionEncode, "encodeWithCoder:", func(g *Generator, p translate.Property) ([]string, error) {
		stmt, err := g.EncodeStatement(p)
		if err != nil || stmt == "" {
			return nil, err
		}
		return []string{stmt + ";"}, nil
	}},
	{SectionDictionary, "initWithDictionary:", func(g *Generator, p translate.Property) ([]string, error) {
		return joined(g.AssignmentStatements(p))
	}},
	{SectionMerge, "mergeWithDictionary:", func(g *Generator, p translate.Property) ([]string, error) {
		return joined(g.MergeStatements(p, MergeOrigin))
	}},
}

// Translator renders the Objective-C fragment sheet of a schema.
type Translator struct {
	ClassPrefix string                   // prefix of generated class names
	Resolver    translate.SchemaResolver // resolves $ref properties
	Strict      bool                     // fail on unresolved references
	Logger      *slog.Logger
}

type sectionData struct {
	Title  string
	Blocks []string
}

type sheetData struct {
	ClassName string
	Schema    string
	Sections  []sectionData
}

// Name returns the translator identifier.
func (t *Translator) Name() string {
	return "objc"
}

// Sections returns the section names in output order.
func (t *Translator) Sections() []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.name
	}
	return names
}

// Generator returns the property generator for className configured like t.
func (t *Translator) Generator(className string) *Generator {
	opts := []Option{WithClassPrefix(t.ClassPrefix), WithLogger(t.Logger)}
	if t.Strict {
		opts = append(opts, WithStrictReferences())
	}
	return New(className, t.Resolver, opts...)
}

// Translate renders the selected sections for the selected properties of schema.
func (t *Translator) Translate(schema *translate.Schema, opts translate.Options) ([]byte, error) {
	for _, name := range opts.Sections {
		if !slices.Contains(t.Sections(), name) {
			return nil, fmt.Errorf("unknown section %q (available: %s)", name, strings.Join(t.Sections(), ", "))
		}
	}

	props, err := translate.Select(schema, opts.Properties)
	if err != nil {
		return nil, err
	}

	className := opts.ClassName
	if className == "" {
		className = translate.ClassName(t.ClassPrefix, schema.Name)
	}
	g := t.Generator(className)
	if err := g.checkEnumTypeNames(schema.Properties); err != nil {
		return nil, err
	}

	data := sheetData{ClassName: className, Schema: schema.Name}
	for _, s := range sections {
		if len(opts.Sections) > 0 && !slices.Contains(opts.Sections, s.name) {
			continue
		}
		sd := sectionData{Title: s.title}
		for _, p := range props {
			blocks, err := s.build(g, p)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", s.name, err)
			}
			sd.Blocks = append(sd.Blocks, blocks...)
		}
		if len(sd.Blocks) > 0 {
			data.Sections = append(data.Sections, sd)
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "objc.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func enumBlocks(g *Generator, p translate.Property) ([]string, error) {
	if !IsEnumeration(p) {
		return nil, nil
	}
	decl, err := g.EnumDeclaration(p)
	if err != nil {
		return nil, err
	}
	utils, err := g.EnumUtilityDeclarations(p)
	if err != nil {
		return nil, err
	}
	return []string{decl, utils}, nil
}

func decodeBlocks(g *Generator, p translate.Property) ([]string, error) {
	stmt, err := g.DecodeStatement(p)
	if err != nil || stmt == "" {
		return nil, err
	}
	return []string{fmt.Sprintf("_%s = %s;", PropertyName(p), stmt)}, nil
}

func single(s string, err error) ([]string, error) {
	if err != nil || s == "" {
		return nil, err
	}
	return []string{s}, nil
}

func joined(lines []string, err error) ([]string, error) {
	if err != nil || len(lines) == 0 {
		return nil, err
	}
	return []string{strings.Join(lines, "\n")}, nil
}
