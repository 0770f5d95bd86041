// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/dacolabs/modelgen/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Persistent flag names. Each overrides the configuration key of the same
// meaning in modelgen.yaml.
const (
	flagSchemaDir        = "schema-dir"
	flagClassPrefix      = "class-prefix"
	flagStrictReferences = "strict-references"
	flagLogLevel         = "log-level"
)

// NewRootCmd creates and returns the root command for the CLI. Project files
// are read from and written to fsys; v receives the persistent flag bindings.
func NewRootCmd(fsys afero.Fs, v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "modelgen",
		Short: "Generate PINModel Objective-C property code from JSON Schema",
		Long: `modelgen turns the properties of JSON Schema documents into Objective-C
fragments for PINModel classes: property declarations, enumerations,
NSSecureCoding statements, dictionary initializers and builder merges.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagSchemaDir, "", "Schema directory, relative to the project root")
	flags.String(flagClassPrefix, "", "Prefix of generated class names")
	flags.Bool(flagStrictReferences, false, "Fail on unresolved schema references instead of skipping them")
	flags.String(flagLogLevel, "", "Log level (debug, info, warn, error)")

	bindings := map[string]string{
		config.KeySchemaDir:        flagSchemaDir,
		config.KeyClassPrefix:      flagClassPrefix,
		config.KeyStrictReferences: flagStrictReferences,
		config.KeyLogLevel:         flagLogLevel,
	}
	for key, flag := range bindings {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(
		newInitCmd(fsys),
		newGenerateCmd(fsys, v),
		newDescribeCmd(fsys, v),
		newVersionCmd(),
	)

	return rootCmd
}
