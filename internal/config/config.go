// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package config handles modelgen project configuration.
package config

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/dacolabs/modelgen/internal/logging"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// FileName is the name of the project configuration file.
const FileName = "modelgen.yaml"

// Configuration keys, shared by the YAML file, environment variables and flags.
const (
	KeySchemaDir        = "schema_dir"
	KeyClassPrefix      = "class_prefix"
	KeyStrictReferences = "strict_references"
	KeyLogLevel         = "log_level"
)

var classPrefixPattern = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9]*)?$`)

// Config represents the modelgen.yaml project configuration file.
type Config struct {
	Version          int    `yaml:"version"`
	SchemaDir        string `yaml:"schema_dir,omitempty"`
	ClassPrefix      string `yaml:"class_prefix,omitempty"`
	StrictReferences bool   `yaml:"strict_references,omitempty"`
	LogLevel         string `yaml:"log_level,omitempty"`
}

// Default returns the configuration written by "modelgen init".
func Default() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		SchemaDir:   "schemas",
		ClassPrefix: "PI",
		LogLevel:    "warn",
	}
}

// Load reads a Config from a file path. Fields left empty in the file take
// their default values.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Version = 0
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(fsys afero.Fs, path string) error {
	f, err := fsys.Create(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.SchemaDir == "" {
		return errors.New("schema_dir is required")
	}
	if !classPrefixPattern.MatchString(c.ClassPrefix) {
		return fmt.Errorf("class_prefix %q is not a valid identifier prefix", c.ClassPrefix)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
