// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dacolabs/modelgen/internal/config"
	"github.com/dacolabs/modelgen/internal/prompts"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type initOptions struct {
	nonInteractive bool
}

func newInitCmd(fsys afero.Fs) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new modelgen project",
		Long: `Initialize a new modelgen project with a modelgen.yaml configuration file
and an empty schema directory. Values given as flags are used as-is; the rest
are asked for interactively unless --non-interactive is set.`,
		Example: `  # Interactive mode
  modelgen init

  # Non-interactive
  modelgen init --class-prefix PIN --schema-dir models --non-interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, fsys, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Run without prompts, using flags and defaults")

	return cmd
}

func runInit(cmd *cobra.Command, fsys afero.Fs, opts *initOptions) error {
	if exists, err := afero.Exists(fsys, config.FileName); err != nil {
		return err
	} else if exists {
		return errors.New("modelgen.yaml already exists; project already initialized")
	}

	cfg := config.Default()
	flags := cmd.Flags()
	if flags.Changed(flagSchemaDir) {
		cfg.SchemaDir, _ = flags.GetString(flagSchemaDir)
	}
	if flags.Changed(flagClassPrefix) {
		cfg.ClassPrefix, _ = flags.GetString(flagClassPrefix)
	}
	if flags.Changed(flagStrictReferences) {
		cfg.StrictReferences, _ = flags.GetBool(flagStrictReferences)
	}
	if flags.Changed(flagLogLevel) {
		cfg.LogLevel, _ = flags.GetString(flagLogLevel)
	}

	if !opts.nonInteractive {
		if err := prompts.RunInitForm(&cfg.SchemaDir, &cfg.ClassPrefix, &cfg.LogLevel, &cfg.StrictReferences); err != nil {
			return err
		}
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := fsys.MkdirAll(cfg.SchemaDir, 0o750); err != nil {
		return fmt.Errorf("failed to create schema directory: %w", err)
	}
	if err := cfg.Save(fsys, config.FileName); err != nil {
		return fmt.Errorf("config file couldn't be saved: %w", err)
	}

	prompts.PrintResult(cmd.OutOrStdout(), []prompts.ResultField{
		{Label: "Schema directory", Value: cfg.SchemaDir},
		{Label: "Class prefix", Value: cfg.ClassPrefix},
		{Label: "Strict references", Value: strconv.FormatBool(cfg.StrictReferences)},
		{Label: "Log level", Value: cfg.LogLevel},
	}, "Initialization completed")

	return nil
}
