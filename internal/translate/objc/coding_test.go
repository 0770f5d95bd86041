// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"testing"

	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeStatement(t *testing.T) {
	tests := []struct {
		name string
		prop translate.Property
		want string
	}{
		{"integer", &translate.IntegerProperty{FieldName: "like_count"}, `[aCoder encodeInteger:self.likeCount forKey:@"like_count"]`},
		{"integer enum", boardTypeEnum, `[aCoder encodeInteger:self.boardType forKey:@"board_type"]`},
		{"boolean", &translate.BooleanProperty{FieldName: "is_repin"}, `[aCoder encodeBool:self.isRepin forKey:@"is_repin"]`},
		{"number", &translate.NumberProperty{FieldName: "aspect_ratio"}, `[aCoder encodeCGFloat:self.aspectRatio forKey:@"aspect_ratio"]`},
		{"string", &translate.StringProperty{FieldName: "note"}, `[aCoder encodeObject:self.note forKey:@"note"]`},
		{"string enum", privacyEnum, `[aCoder encodeInteger:self.privacy forKey:@"privacy"]`},
		{"date", &translate.StringProperty{FieldName: "created_at", Format: translate.FormatDateTime}, `[aCoder encodeObject:self.createdAt forKey:@"created_at"]`},
		{"array", &translate.ArrayProperty{FieldName: "tags"}, `[aCoder encodeObject:self.tags forKey:@"tags"]`},
		{"object", &translate.ObjectProperty{FieldName: "counts"}, `[aCoder encodeObject:self.counts forKey:@"counts"]`},
		{"reference", &translate.ReferenceProperty{FieldName: "board", Ref: "board.json"}, `[aCoder encodeObject:self.board forKey:@"board"]`},
	}

	g := newTestGenerator("PIPin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.EncodeStatement(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStatement(t *testing.T) {
	tests := []struct {
		name string
		prop translate.Property
		want string
	}{
		{"integer", &translate.IntegerProperty{FieldName: "like_count"}, `[aDecoder decodeIntegerForKey:@"like_count"]`},
		{"boolean", &translate.BooleanProperty{FieldName: "is_repin"}, `[aDecoder decodeBoolForKey:@"is_repin"]`},
		{"number", &translate.NumberProperty{FieldName: "aspect_ratio"}, `[aDecoder decodeCGFloatForKey:@"aspect_ratio"]`},
		{"string", &translate.StringProperty{FieldName: "note"}, `[aDecoder decodeObjectOfClass:[NSString class] forKey:@"note"]`},
		{"uri", &translate.StringProperty{FieldName: "link", Format: translate.FormatURI}, `[aDecoder decodeObjectOfClass:[NSURL class] forKey:@"link"]`},
		{"date", &translate.StringProperty{FieldName: "created_at", Format: translate.FormatDateTime}, `[aDecoder decodeObjectOfClass:[NSDate class] forKey:@"created_at"]`},
		{"string enum", privacyEnum, `[aDecoder decodeIntegerForKey:@"privacy"]`},
		{"reference", &translate.ReferenceProperty{FieldName: "board", Ref: "board.json"}, `[aDecoder decodeObjectOfClass:[PIBoard class] forKey:@"board"]`},
		{
			"array of references",
			&translate.ArrayProperty{FieldName: "boards", Items: &translate.ReferenceProperty{Ref: "board.json"}},
			`[aDecoder decodeObjectOfClasses:[NSSet setWithArray:@[[NSArray class], [PIBoard class]]] forKey:@"boards"]`,
		},
		{
			"untyped array",
			&translate.ArrayProperty{FieldName: "tags"},
			`[aDecoder decodeObjectOfClasses:[NSSet setWithArray:@[[NSArray class], [NSString class], [NSNumber class]]] forKey:@"tags"]`,
		},
		{
			"object of references",
			&translate.ObjectProperty{FieldName: "owners", Values: &translate.ReferenceProperty{Ref: "user.json"}},
			`[aDecoder decodeObjectOfClasses:[NSSet setWithArray:@[[NSDictionary class], [NSString class], [PIUser class]]] forKey:@"owners"]`,
		},
		{
			"untyped object",
			&translate.ObjectProperty{FieldName: "counts"},
			`[aDecoder decodeObjectOfClasses:[NSSet setWithArray:@[[NSDictionary class], [NSString class], [NSNumber class]]] forKey:@"counts"]`,
		},
	}

	g := newTestGenerator("PIPin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.DecodeStatement(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPermittedClasses(t *testing.T) {
	tests := []struct {
		name string
		prop translate.Property
		want []string
	}{
		{
			"array of references is exactly container and model",
			&translate.ArrayProperty{FieldName: "boards", Items: &translate.ReferenceProperty{Ref: "board.json"}},
			[]string{"NSArray", "PIBoard"},
		},
		{
			"array of strings",
			&translate.ArrayProperty{FieldName: "tags", Items: &translate.StringProperty{}},
			[]string{"NSArray", "NSString"},
		},
		{
			"nested arrays collapse container class",
			&translate.ArrayProperty{FieldName: "grid", Items: &translate.ArrayProperty{Items: &translate.ReferenceProperty{Ref: "image.json"}}},
			[]string{"NSArray", "PIImage"},
		},
		{
			"object of dates",
			&translate.ObjectProperty{FieldName: "seen", Values: &translate.StringProperty{Format: translate.FormatDateTime}},
			[]string{"NSDictionary", "NSString", "NSDate"},
		},
		{
			"array of unresolved references permits nothing",
			&translate.ArrayProperty{FieldName: "parts", Items: &translate.ReferenceProperty{Ref: "missing.json"}},
			nil,
		},
		{
			"scalar",
			&translate.BooleanProperty{FieldName: "flag"},
			nil,
		},
	}

	g := newTestGenerator("PIPin")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := g.PermittedClasses(tt.prop)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeStatement_ScalarElements(t *testing.T) {
	g := newTestGenerator("PIPin")

	_, err := g.DecodeStatement(&translate.ArrayProperty{FieldName: "ids", Items: &translate.NumberProperty{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, translate.ErrInvalidSchema)
}

func TestCoding_ArchiveKeyIsRawName(t *testing.T) {
	g := newTestGenerator("PIPin")
	prop := &translate.StringProperty{FieldName: "image_large_url", Format: translate.FormatURI}

	enc, err := g.EncodeStatement(prop)
	require.NoError(t, err)
	dec, err := g.DecodeStatement(prop)
	require.NoError(t, err)

	assert.Contains(t, enc, `forKey:@"image_large_url"`)
	assert.Contains(t, enc, "self.imageLargeUrl")
	assert.Contains(t, dec, `forKey:@"image_large_url"`)
	assert.NotContains(t, dec, "imageLargeUrl")
}
