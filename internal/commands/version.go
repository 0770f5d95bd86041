// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"

	"github.com/dacolabs/modelgen/internal/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	var (
		short  bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the modelgen version",
		Example: `  # Full build information
  modelgen version

  # Version number only
  modelgen version --short

  # Build information as JSON
  modelgen version -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			switch {
			case output == "json":
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(version.Get())
			case output != "text":
				return fmt.Errorf("unsupported output format %q. Available: text, json", output)
			case short:
				_, err := fmt.Fprintln(w, version.Short())
				return err
			default:
				_, err := fmt.Fprintln(w, version.Info())
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "Print the version number only")
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format (text, json)")

	return cmd
}
