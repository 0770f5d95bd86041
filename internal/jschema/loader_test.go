// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_JSON(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	doc, err := loader.LoadFile("pin.json")
	require.NoError(t, err)

	assert.Equal(t, "pin.json", doc.Path)
	assert.Equal(t, "object", doc.Root.Type)
	assert.Contains(t, doc.Root.Properties, "link")
	assert.Equal(t, []string{"string", "null"}, doc.Root.Properties["link"].Types)
	assert.Equal(t, []string{"id", "link", "created_at"}, doc.KeyOrder["properties"][:3])
	assert.Equal(t, []string{"width", "height", "url"}, doc.KeyOrder["$defs.image.properties"])
}

func TestLoadFile_YAML(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	doc, err := loader.LoadFile("board.yaml")
	require.NoError(t, err)

	assert.Equal(t, "board", doc.Root.Title)
	assert.Equal(t, "integer", doc.Root.Properties["board_type"].Type)
	assert.Len(t, doc.Root.Properties["board_type"].Enum, 2)
	assert.Equal(t, []string{"name", "board_type", "owner", "sections"}, doc.KeyOrder["properties"])
	assert.Equal(t, []string{"title"}, doc.KeyOrder["definitions.section.properties"])
}

func TestLoadFile_NotFound(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	_, err := loader.LoadFile("nonexistent.yaml")
	require.Error(t, err)
}

func TestLoadFile_Invalid(t *testing.T) {
	fsys := fstest.MapFS{
		"invalid.yaml": &fstest.MapFile{Data: []byte("{{invalid yaml")},
		"invalid.json": &fstest.MapFile{Data: []byte("{invalid json}")},
		"empty.yaml":   &fstest.MapFile{Data: []byte("")},
	}
	loader := NewLoader(fsys)

	for _, name := range []string{"invalid.yaml", "invalid.json", "empty.yaml"} {
		t.Run(name, func(t *testing.T) {
			_, err := loader.LoadFile(name)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse "+name)
		})
	}
}

func TestDocument_Refs(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))

	doc, err := loader.LoadFile("pin.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"board.yaml", "nested/user.json", "pin.json#/$defs/image"}, doc.Refs())

	doc, err = loader.LoadFile("nested/user.json")
	require.NoError(t, err)
	assert.Equal(t, []string{"nested/gone.json", "pin.json#/$defs/image"}, doc.Refs())
}

func TestTraverse(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	doc, err := loader.LoadFile("board.yaml")
	require.NoError(t, err)

	var count int
	for range Traverse(doc.Root, nil) {
		count++
	}
	// Root, 4 properties, sections items, the section definition and its title.
	assert.Equal(t, 8, count)

	var first []string
	for s := range Traverse(doc.Root, nil) {
		first = append(first, s.Type)
		if len(first) == 3 {
			break
		}
	}
	// Properties are visited in sorted key order: board_type, name.
	assert.Equal(t, []string{"object", "integer", "string"}, first)
}

func TestTraverse_FollowsRefs(t *testing.T) {
	loader := NewLoader(os.DirFS("testdata"))
	doc, err := loader.LoadFile("pin.json")
	require.NoError(t, err)

	image := doc.Root.Defs["image"]
	var hits int
	resolver := func(ref string) *jsonschema.Schema {
		if ref == "#/$defs/image" {
			hits++
			return image
		}
		return nil
	}

	var count int
	for range Traverse(doc.Root, resolver) {
		count++
	}
	assert.Equal(t, 1, hits)
	assert.Positive(t, count)
}
