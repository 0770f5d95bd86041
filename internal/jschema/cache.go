// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jschema

import (
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"
	"sync"

	"github.com/dacolabs/modelgen/internal/translate"
	"golang.org/x/sync/singleflight"
)

var _ translate.SchemaResolver = (*Cache)(nil)

// Cache loads and converts schemas on demand and keeps them for the life of
// the Cache. It is safe for concurrent use; concurrent requests for the same
// file share one load.
type Cache struct {
	loader *Loader
	logger *slog.Logger
	group  singleflight.Group

	mu      sync.RWMutex
	docs    map[string]*Document
	schemas map[string]*translate.Schema
}

// NewCache creates a Cache over fsys. A nil logger discards output.
func NewCache(fsys fs.FS, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Cache{
		loader:  NewLoader(fsys),
		logger:  logger,
		docs:    make(map[string]*Document),
		schemas: make(map[string]*translate.Schema),
	}
}

// Document returns the parsed document at p.
func (c *Cache) Document(p string) (*Document, error) {
	p = path.Clean(p)

	c.mu.RLock()
	doc, ok := c.docs[p]
	c.mu.RUnlock()
	if ok {
		return doc, nil
	}

	v, err, _ := c.group.Do("doc:"+p, func() (any, error) {
		c.logger.Debug("loading schema", "path", p)
		doc, err := c.loader.LoadFile(p)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.docs[p] = doc
		c.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Document), nil
}

// Load returns the converted schema for ref. A ref is a file path such as
// "board.json", optionally followed by a definition pointer such as
// "#/$defs/image".
func (c *Cache) Load(ref string) (*translate.Schema, error) {
	file, frag, _ := strings.Cut(ref, "#")
	file = path.Clean(file)
	key := file
	if frag != "" {
		key += "#" + frag
	}

	c.mu.RLock()
	schema, ok := c.schemas[key]
	c.mu.RUnlock()
	if ok {
		return schema, nil
	}

	v, err, _ := c.group.Do("schema:"+key, func() (any, error) {
		doc, err := c.Document(file)
		if err != nil {
			return nil, err
		}

		var schema *translate.Schema
		if frag == "" {
			schema, err = Convert(doc)
		} else {
			name := DefName("#" + frag)
			if name == "" {
				return nil, fmt.Errorf("unsupported reference %q", ref)
			}
			schema, err = ConvertDef(doc, name)
		}
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.schemas[key] = schema
		c.mu.Unlock()
		return schema, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*translate.Schema), nil
}

// Resolve implements translate.SchemaResolver. Load failures count as
// unresolved.
func (c *Cache) Resolve(ref string) (*translate.Schema, bool) {
	schema, err := c.Load(ref)
	if err != nil {
		c.logger.Debug("schema reference not resolved", "ref", ref, "error", err)
		return nil, false
	}
	return schema, true
}
