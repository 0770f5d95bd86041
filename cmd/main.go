// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package main is the entry point for the modelgen CLI.
package main

import (
	"context"
	"os"

	"github.com/dacolabs/modelgen/cmd/internal"
	"github.com/fatih/color"
)

func main() {
	if err := internal.Run(context.Background(), os.Getenv); err != nil {
		_, _ = color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
