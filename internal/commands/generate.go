// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/dacolabs/modelgen/internal/prompts"
	"github.com/dacolabs/modelgen/internal/session"
	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type generateOptions struct {
	properties []string
	all        bool
	className  string
	sections   []string
	lang       string
}

func newGenerateCmd(fsys afero.Fs, v *viper.Viper) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [SCHEMA]",
		Short: "Print Objective-C fragments for schema properties",
		Long: `Print the Objective-C fragments generated for the properties of a schema:
enumerations, interface and implementation declarations, initWithCoder: and
encodeWithCoder: statements, initWithDictionary: assignments and builder merges.

SCHEMA is a path relative to the schema directory. Output goes to stdout; no
files are written. Missing values are asked for interactively.`,
		Example: `  # Interactive mode
  modelgen generate

  # Every property of a schema
  modelgen generate pin.json --all

  # Two properties, declarations only
  modelgen generate pin.json --property board,link --section interface,implementation

  # Fragments for a class with a custom name
  modelgen generate pin.json --all --class PIPinModel`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: session.PreRunLoad(fsys, v),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd, ctx, args, opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.properties, "property", "p", nil, "Property name(s), comma-separated")
	cmd.Flags().BoolVarP(&opts.all, "all", "a", false, "Generate every property of the schema")
	cmd.Flags().StringVar(&opts.className, "class", "", "Owning class name (default: prefix + schema name)")
	cmd.Flags().StringSliceVarP(&opts.sections, "section", "s", nil, "Section(s) to print, comma-separated (default: all)")
	cmd.Flags().StringVarP(&opts.lang, "lang", "l", "objc", "Target language")

	return cmd
}

func runGenerate(cmd *cobra.Command, ctx *session.Context, args []string, opts *generateOptions) error {
	if opts.all && len(opts.properties) > 0 {
		return errors.New("--all and --property are mutually exclusive")
	}

	translators := ctx.Translators()
	translator, err := translators.Get(opts.lang)
	if err != nil {
		return fmt.Errorf("unsupported language %q. Available: %s",
			opts.lang, strings.Join(translators.Available(), ", "))
	}

	schemaPath, err := schemaArg(ctx, args)
	if err != nil {
		return err
	}
	schema, err := ctx.Schema(schemaPath)
	if err != nil {
		return err
	}

	properties := trimAll(opts.properties)
	if !opts.all && len(properties) == 0 {
		if err := prompts.RunFields(prompts.PropertyMultiSelect(&properties, schema)); err != nil {
			return err
		}
	}

	ctx.Logger.Debug("generating", "schema", schemaPath, "properties", len(properties), "lang", translator.Name())
	out, err := translator.Translate(schema, translate.Options{
		ClassName:  opts.className,
		Properties: properties,
		Sections:   trimAll(opts.sections),
	})
	if err != nil {
		return err
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

// schemaArg returns the schema path argument, prompting for one of the
// project's schema files when it is missing.
func schemaArg(ctx *session.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	files, err := ctx.ListSchemas()
	if err != nil {
		return "", err
	}
	if len(files) == 0 {
		return "", fmt.Errorf("%w: no schema files in %s", session.ErrSchemaNotFound, ctx.Config.SchemaDir)
	}

	var path string
	if err := prompts.RunFields(prompts.SchemaSelect(&path, files)); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", errors.New("no schema selected")
		}
		return "", err
	}
	return path, nil
}

func trimAll(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
