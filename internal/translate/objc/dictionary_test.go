// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"strings"
	"testing"

	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueExpression(t *testing.T) {
	tests := []struct {
		name string
		prop translate.Property
		want string
	}{
		{"number", &translate.NumberProperty{FieldName: "a"}, "[v floatValue]"},
		{"integer", &translate.IntegerProperty{FieldName: "a"}, "[v integerValue]"},
		{"integer enum", boardTypeEnum, "PIPinBoardTypeFromString(v)"},
		{"boolean", &translate.BooleanProperty{FieldName: "a"}, "[v boolValue]"},
		{"string", &translate.StringProperty{FieldName: "a"}, "v"},
		{"uri", &translate.StringProperty{FieldName: "a", Format: translate.FormatURI}, "[NSURL URLWithString:v]"},
		{
			"date-time",
			&translate.StringProperty{FieldName: "a", Format: translate.FormatDateTime},
			"[[NSValueTransformer valueTransformerForName:kPINModelDateValueTransformerKey] transformedValue:v]",
		},
		{"string enum", privacyEnum, "PIPinPrivacyTypeFromString(v)"},
		{"array", &translate.ArrayProperty{FieldName: "a"}, "v"},
		{"object", &translate.ObjectProperty{FieldName: "a"}, "v"},
		{"reference", &translate.ReferenceProperty{FieldName: "a", Ref: "board.json"}, "[[PIBoard alloc] initWithDictionary:v]"},
		{"unresolved reference", &translate.ReferenceProperty{FieldName: "a", Ref: "nope.json"}, ""},
	}

	g := newTestGenerator("PIPin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.ValueExpression(tt.prop, "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiresConversion(t *testing.T) {
	tests := []struct {
		name string
		prop translate.Property
		want bool
	}{
		{"integer", &translate.IntegerProperty{FieldName: "a"}, false},
		{"number", &translate.NumberProperty{FieldName: "a"}, false},
		{"boolean", &translate.BooleanProperty{FieldName: "a"}, false},
		{"string", &translate.StringProperty{FieldName: "a"}, false},
		{"string enum", privacyEnum, false},
		{"uri", &translate.StringProperty{FieldName: "a", Format: translate.FormatURI}, true},
		{"date-time", &translate.StringProperty{FieldName: "a", Format: translate.FormatDateTime}, true},
		{"reference", &translate.ReferenceProperty{FieldName: "a", Ref: "board.json"}, true},
		{"untyped array", &translate.ArrayProperty{FieldName: "a"}, false},
		{"array of strings", &translate.ArrayProperty{FieldName: "a", Items: &translate.StringProperty{}}, false},
		{"array of references", &translate.ArrayProperty{FieldName: "a", Items: &translate.ReferenceProperty{Ref: "board.json"}}, true},
		{"array of dates", &translate.ArrayProperty{FieldName: "a", Items: &translate.StringProperty{Format: translate.FormatDateTime}}, true},
		{"array of unresolved", &translate.ArrayProperty{FieldName: "a", Items: &translate.ReferenceProperty{Ref: "x"}}, true},
		{"object of references", &translate.ObjectProperty{FieldName: "a", Values: &translate.ReferenceProperty{Ref: "user.json"}}, true},
		{"untyped object", &translate.ObjectProperty{FieldName: "a"}, false},
	}

	g := newTestGenerator("PIPin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.RequiresConversion(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAssignmentStatements_DirectPath(t *testing.T) {
	tests := []struct {
		name string
		prop translate.Property
		want string
	}{
		{"integer", &translate.IntegerProperty{FieldName: "like_count"}, `_likeCount = [valueOrNil(modelDictionary, @"like_count") integerValue];`},
		{"number", &translate.NumberProperty{FieldName: "ratio"}, `_ratio = [valueOrNil(modelDictionary, @"ratio") floatValue];`},
		{"boolean", &translate.BooleanProperty{FieldName: "is_repin"}, `_isRepin = [valueOrNil(modelDictionary, @"is_repin") boolValue];`},
		{"string", &translate.StringProperty{FieldName: "note"}, `_note = valueOrNil(modelDictionary, @"note");`},
		{"string enum", privacyEnum, `_privacy = PIPinPrivacyTypeFromString(valueOrNil(modelDictionary, @"privacy"));`},
		{"array of strings", &translate.ArrayProperty{FieldName: "tags", Items: &translate.StringProperty{}}, `_tags = valueOrNil(modelDictionary, @"tags");`},
		{"untyped object", &translate.ObjectProperty{FieldName: "counts"}, `_counts = valueOrNil(modelDictionary, @"counts");`},
	}

	g := newTestGenerator("PIPin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.AssignmentStatements(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.want}, got)
		})
	}
}

func TestAssignmentStatements_ConversionPath(t *testing.T) {
	g := newTestGenerator("PIPin")

	got, err := g.AssignmentStatements(&translate.StringProperty{FieldName: "link", Format: translate.FormatURI})
	require.NoError(t, err)
	assert.Equal(t, []string{"_link = [NSURL URLWithString:value];"}, got)

	got, err = g.AssignmentStatements(&translate.StringProperty{FieldName: "created_at", Format: translate.FormatDateTime})
	require.NoError(t, err)
	assert.Equal(t, []string{"_createdAt = [[NSValueTransformer valueTransformerForName:kPINModelDateValueTransformerKey] transformedValue:value];"}, got)

	got, err = g.AssignmentStatements(&translate.ReferenceProperty{FieldName: "board", Ref: "board.json"})
	require.NoError(t, err)
	assert.Equal(t, []string{"_board = [[PIBoard alloc] initWithDictionary:value];"}, got)
}

func TestAssignmentStatements_ArrayOfReferences(t *testing.T) {
	g := newTestGenerator("PIPin")
	prop := &translate.ArrayProperty{FieldName: "boards", Items: &translate.ReferenceProperty{Ref: "board.json"}}

	got, err := g.AssignmentStatements(prop)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"NSArray *items = value;",
		"NSMutableArray *result = [NSMutableArray arrayWithCapacity:items.count];",
		"for (id obj in items) {",
		"    if (obj != nil && [obj isEqual:[NSNull null]] == NO) {",
		"        [result addObject:[[PIBoard alloc] initWithDictionary:obj]];",
		"    }",
		"}",
		"_boards = result;",
	}, got)
}

func TestAssignmentStatements_NestedArraysPassThrough(t *testing.T) {
	g := newTestGenerator("PIPin")
	prop := &translate.ArrayProperty{
		FieldName: "grid",
		Items:     &translate.ArrayProperty{Items: &translate.ReferenceProperty{Ref: "image.json"}},
	}

	decl, err := g.InterfaceDeclaration(prop)
	require.NoError(t, err)
	assert.Equal(t, "@property (nullable, nonatomic, strong, readonly) NSArray <NSArray <PIImage *> *> *grid;", decl)

	got, err := g.AssignmentStatements(prop)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"NSArray *items = value;",
		"NSMutableArray *result = [NSMutableArray arrayWithCapacity:items.count];",
		"for (id obj in items) {",
		"    if (obj != nil && [obj isEqual:[NSNull null]] == NO) {",
		"        [result addObject:obj];",
		"    }",
		"}",
		"_grid = result;",
	}, got)
}

func TestAssignmentStatements_ArrayOfURIs(t *testing.T) {
	g := newTestGenerator("PIPin")
	prop := &translate.ArrayProperty{FieldName: "links", Items: &translate.StringProperty{Format: translate.FormatURI}}

	got, err := g.AssignmentStatements(prop)
	require.NoError(t, err)
	require.Len(t, got, 8)
	assert.Equal(t, "        [result addObject:[NSURL URLWithString:obj]];", got[4])
	assert.Equal(t, "_links = result;", got[7])
}

func TestAssignmentStatements_ObjectOfReferences(t *testing.T) {
	g := newTestGenerator("PIPin")
	prop := &translate.ObjectProperty{FieldName: "owners", Values: &translate.ReferenceProperty{Ref: "user.json"}}

	got, err := g.AssignmentStatements(prop)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"NSDictionary *items = value;",
		"NSMutableDictionary *result = [NSMutableDictionary dictionaryWithCapacity:items.count];",
		"[items enumerateKeysAndObjectsUsingBlock:^(NSString *key, NSDictionary *obj, BOOL *stop) {",
		"    if (obj != nil && [obj isEqual:[NSNull null]] == NO) {",
		"        result[key] = [[PIUser alloc] initWithDictionary:obj];",
		"    }",
		"}];",
		"_owners = result;",
	}, got)
}

func TestAssignmentStatements_ObjectOfDates(t *testing.T) {
	g := newTestGenerator("PIPin")
	prop := &translate.ObjectProperty{FieldName: "seen", Values: &translate.StringProperty{Format: translate.FormatDateTime}}

	got, err := g.AssignmentStatements(prop)
	require.NoError(t, err)
	require.Len(t, got, 8)
	assert.Equal(t, "[items enumerateKeysAndObjectsUsingBlock:^(NSString *key, id obj, BOOL *stop) {", got[2])
}

func TestAssignmentStatements_ScalarElements(t *testing.T) {
	g := newTestGenerator("PIPin")

	_, err := g.AssignmentStatements(&translate.ObjectProperty{FieldName: "scores", Values: &translate.NumberProperty{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrInvalidSchema)
}

func TestMergeStatements(t *testing.T) {
	g := newTestGenerator("PIPin")

	got, err := g.MergeStatements(&translate.IntegerProperty{FieldName: "like_count"}, "builder")
	require.NoError(t, err)
	assert.Equal(t, []string{`builder.likeCount = [valueOrNil(modelDictionary, @"like_count") integerValue];`}, got)

	got, err = g.MergeStatements(&translate.StringProperty{FieldName: "link", Format: translate.FormatURI}, "builder")
	require.NoError(t, err)
	assert.Equal(t, []string{"builder.link = [NSURL URLWithString:value];"}, got)
}

func TestMergeStatements_Reference(t *testing.T) {
	g := newTestGenerator("PIPin")

	got, err := g.MergeStatements(&translate.ReferenceProperty{FieldName: "board", Ref: "board.json"}, "builder")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"if (builder.board != nil) {",
		"   builder.board = [builder.board mergeWithDictionary:value];",
		"} else {",
		"   builder.board = [[PIBoard alloc] initWithDictionary:value];",
		"}",
	}, got)
}

func TestMergeStatements_ContainersKeepNulls(t *testing.T) {
	g := newTestGenerator("PIPin")

	got, err := g.MergeStatements(&translate.ArrayProperty{FieldName: "boards", Items: &translate.ReferenceProperty{Ref: "board.json"}}, "builder")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"NSArray *items = value;",
		"NSMutableArray *result = [NSMutableArray arrayWithCapacity:items.count];",
		"for (id obj in items) {",
		"    [result addObject:[[PIBoard alloc] initWithDictionary:obj]];",
		"}",
		"builder.boards = result;",
	}, got)

	got, err = g.MergeStatements(&translate.ObjectProperty{FieldName: "owners", Values: &translate.ReferenceProperty{Ref: "user.json"}}, "builder")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"NSDictionary *items = value;",
		"NSMutableDictionary *result = [NSMutableDictionary dictionaryWithCapacity:items.count];",
		"[items enumerateKeysAndObjectsUsingBlock:^(NSString *key, NSDictionary *obj, __unused BOOL *stop) {",
		"    result[key] = [[PIUser alloc] initWithDictionary:obj];",
		"}];",
		"builder.owners = result;",
	}, got)
}

func TestStatements_Deterministic(t *testing.T) {
	props := []translate.Property{
		boardTypeEnum,
		privacyEnum,
		&translate.ArrayProperty{FieldName: "boards", Items: &translate.ReferenceProperty{Ref: "board.json"}},
		&translate.ObjectProperty{FieldName: "owners", Values: &translate.ReferenceProperty{Ref: "user.json"}},
		&translate.StringProperty{FieldName: "link", Format: translate.FormatURI},
	}

	render := func(p translate.Property) string {
		g := newTestGenerator("PIPin")
		var parts []string
		for _, mutable := range []bool{false, true} {
			decl, err := g.Declaration(p, mutable)
			require.NoError(t, err)
			parts = append(parts, decl)
		}
		enc, err := g.EncodeStatement(p)
		require.NoError(t, err)
		dec, err := g.DecodeStatement(p)
		require.NoError(t, err)
		assign, err := g.AssignmentStatements(p)
		require.NoError(t, err)
		merge, err := g.MergeStatements(p, "builder")
		require.NoError(t, err)
		parts = append(parts, enc, dec)
		parts = append(parts, assign...)
		parts = append(parts, merge...)
		return strings.Join(parts, "\n")
	}

	for _, p := range props {
		t.Run(p.Name(), func(t *testing.T) {
			first := render(p)
			for range 5 {
				assert.Equal(t, first, render(p))
			}
		})
	}
}

func TestStatements_AccessorRoundTrip(t *testing.T) {
	g := newTestGenerator("PIPin")
	props := []translate.Property{
		&translate.IntegerProperty{FieldName: "like_count"},
		&translate.StringProperty{FieldName: "image_large_url", Format: translate.FormatURI},
		&translate.ReferenceProperty{FieldName: "pinned_board", Ref: "board.json"},
		&translate.ArrayProperty{FieldName: "related_boards", Items: &translate.ReferenceProperty{Ref: "board.json"}},
	}

	for _, p := range props {
		t.Run(p.Name(), func(t *testing.T) {
			accessor := PropertyName(p)

			decl, err := g.InterfaceDeclaration(p)
			require.NoError(t, err)
			assert.True(t, strings.HasSuffix(decl, accessor+";"))

			assign, err := g.AssignmentStatements(p)
			require.NoError(t, err)
			assert.Equal(t, "_"+accessor, strings.SplitN(assign[len(assign)-1], " = ", 2)[0])

			merge, err := g.MergeStatements(p, "builder")
			require.NoError(t, err)
			assert.Contains(t, strings.Join(merge, "\n"), "builder."+accessor+" = ")
		})
	}
}
