// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"

	"github.com/dacolabs/modelgen/internal/commands"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// ProjectDirEnv names the environment variable that points the CLI at a
// project directory other than the current one.
const ProjectDirEnv = "MODELGEN_PROJECT_DIR"

// Run is the main application logic, extracted for testability.
// It accepts OS dependencies as parameters (context, env lookup).
func Run(ctx context.Context, getenv func(string) string) error {
	var fsys afero.Fs = afero.NewOsFs()
	if dir := getenv(ProjectDirEnv); dir != "" {
		fsys = afero.NewBasePathFs(fsys, dir)
	}

	rootCmd := commands.NewRootCmd(fsys, viper.New())
	return rootCmd.ExecuteContext(ctx)
}
