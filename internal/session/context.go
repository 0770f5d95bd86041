// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package session provides project context loading for CLI commands.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"slices"
	"strings"

	"github.com/dacolabs/modelgen/internal/config"
	"github.com/dacolabs/modelgen/internal/jschema"
	"github.com/dacolabs/modelgen/internal/logging"
	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/dacolabs/modelgen/internal/translate/objc"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

var (
	// ErrNotInitialized indicates no modelgen.yaml was found in the current directory.
	ErrNotInitialized = errors.New("not in a modelgen project (modelgen.yaml not found)")

	// ErrInvalidConfig indicates the config file exists but is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSchemaNotFound indicates the schema directory or a schema file doesn't exist.
	ErrSchemaNotFound = errors.New("schema not found")
)

// EnvPrefix prefixes environment variables that override configuration keys,
// e.g. MODELGEN_CLASS_PREFIX.
const EnvPrefix = "MODELGEN"

// contextKey is used to store Context in context.Context.
type contextKey struct{}

// Context holds the resolved project configuration and the services built from it.
type Context struct {
	// Config is the fully resolved configuration (file, environment and flags applied).
	Config *config.Config

	// Fs is the project filesystem, rooted at the project directory.
	Fs afero.Fs

	// Logger writes diagnostics at the configured level.
	Logger *slog.Logger

	// Schemas loads and resolves schemas below Config.SchemaDir.
	Schemas *jschema.Cache
}

// Load loads the project context from the root of fsys and returns a new
// context.Context with the Context stored in it. Values in v, which may carry
// bound flags, take precedence over environment variables, which take
// precedence over modelgen.yaml. Log output goes to logw.
func Load(ctx context.Context, fsys afero.Fs, v *viper.Viper, logw io.Writer) (context.Context, error) {
	if _, err := fsys.Stat(config.FileName); errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotInitialized
	}

	cfg, err := config.Load(fsys, config.FileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg = overlay(cfg, v)

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, validateErr)
	}

	info, err := fsys.Stat(cfg.SchemaDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: schema directory %s does not exist", ErrSchemaNotFound, cfg.SchemaDir)
	}

	logger, err := logging.New(logw, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	schemaFs := afero.NewIOFS(afero.NewBasePathFs(fsys, cfg.SchemaDir))
	mctx := &Context{
		Config:  cfg,
		Fs:      fsys,
		Logger:  logger,
		Schemas: jschema.NewCache(schemaFs, logger),
	}
	return context.WithValue(ctx, contextKey{}, mctx), nil
}

// overlay applies environment and flag values from v on top of the file
// configuration. File values become viper defaults, the lowest precedence.
func overlay(cfg *config.Config, v *viper.Viper) *config.Config {
	if v == nil {
		v = viper.New()
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault(config.KeySchemaDir, cfg.SchemaDir)
	v.SetDefault(config.KeyClassPrefix, cfg.ClassPrefix)
	v.SetDefault(config.KeyStrictReferences, cfg.StrictReferences)
	v.SetDefault(config.KeyLogLevel, cfg.LogLevel)

	return &config.Config{
		Version:          cfg.Version,
		SchemaDir:        v.GetString(config.KeySchemaDir),
		ClassPrefix:      v.GetString(config.KeyClassPrefix),
		StrictReferences: v.GetBool(config.KeyStrictReferences),
		LogLevel:         v.GetString(config.KeyLogLevel),
	}
}

// From extracts the Context from a context.Context.
// Returns nil if no Context is stored.
func From(ctx context.Context) *Context {
	if mctx, ok := ctx.Value(contextKey{}).(*Context); ok {
		return mctx
	}
	return nil
}

// Translator returns the Objective-C translator configured for this project.
func (c *Context) Translator() *objc.Translator {
	return &objc.Translator{
		ClassPrefix: c.Config.ClassPrefix,
		Resolver:    c.Schemas,
		Strict:      c.Config.StrictReferences,
		Logger:      c.Logger,
	}
}

// Generator returns a statement generator for the class owning the
// properties of schema. An empty className derives it from the schema name.
func (c *Context) Generator(schema *translate.Schema, className string) *objc.Generator {
	if className == "" {
		className = translate.ClassName(c.Config.ClassPrefix, schema.Name)
	}
	return c.Translator().Generator(className)
}

// Translators returns the code generators available for this project.
func (c *Context) Translators() translate.Register {
	r := make(translate.Register)
	r.Add(c.Translator())
	return r
}

// LoadSchema loads the schema file at path, relative to the schema directory.
func (c *Context) LoadSchema(path string) (*jschema.Document, error) {
	doc, err := c.Schemas.Document(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
	}
	return doc, err
}

// Schema loads and converts the schema file at path, relative to the schema
// directory.
func (c *Context) Schema(path string) (*translate.Schema, error) {
	schema, err := c.Schemas.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
	}
	return schema, err
}

// ListSchemas returns the schema files below the schema directory, sorted.
func (c *Context) ListSchemas() ([]string, error) {
	var files []string
	base := afero.NewBasePathFs(c.Fs, c.Config.SchemaDir)
	err := afero.Walk(base, "/", func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if strings.HasSuffix(p, ".json") || strings.HasSuffix(p, ".yaml") || strings.HasSuffix(p, ".yml") {
			files = append(files, strings.TrimPrefix(p, "/"))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}
