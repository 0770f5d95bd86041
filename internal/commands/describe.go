// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dacolabs/modelgen/internal/prompts"
	"github.com/dacolabs/modelgen/internal/session"
	"github.com/dacolabs/modelgen/internal/translate"
	"github.com/dacolabs/modelgen/internal/translate/objc"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var describeFormats = []string{"text", "json", "yaml"}

type describeOptions struct {
	output     string
	properties []string
	className  string
}

type schemaDescription struct {
	Schema     string             `json:"schema" yaml:"schema"`
	Class      string             `json:"class" yaml:"class"`
	References []referenceStatus  `json:"references,omitempty" yaml:"references,omitempty"`
	Properties []objc.Description `json:"properties" yaml:"properties"`
}

type referenceStatus struct {
	Ref      string `json:"ref" yaml:"ref"`
	Resolved bool   `json:"resolved" yaml:"resolved"`
	Class    string `json:"class,omitempty" yaml:"class,omitempty"`
}

func newDescribeCmd(fsys afero.Fs, v *viper.Viper) *cobra.Command {
	opts := &describeOptions{}

	cmd := &cobra.Command{
		Use:   "describe [SCHEMA]",
		Short: "Show how schema properties map to Objective-C",
		Long: `Show, for every property of a schema, its kind, Objective-C type, accessor
name, archive key, memory ownership and whether dictionary values need
conversion. Also lists the schema's references and whether they resolve.`,
		Example: `  # Describe a schema
  modelgen describe pin.json

  # Machine-readable output for two properties
  modelgen describe pin.json --property board,images -o json`,
		Args:    cobra.MaximumNArgs(1),
		PreRunE: session.PreRunLoad(fsys, v),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := session.RequireFromCommand(cmd)
			if err != nil {
				return err
			}
			return runDescribe(cmd, ctx, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format ("+strings.Join(describeFormats, ", ")+")")
	cmd.Flags().StringSliceVarP(&opts.properties, "property", "p", nil, "Property name(s), comma-separated (default: all)")
	cmd.Flags().StringVar(&opts.className, "class", "", "Owning class name (default: prefix + schema name)")

	return cmd
}

func runDescribe(cmd *cobra.Command, ctx *session.Context, args []string, opts *describeOptions) error {
	switch opts.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unsupported output format %q. Available: %s", opts.output, strings.Join(describeFormats, ", "))
	}

	schemaPath, err := schemaArg(ctx, args)
	if err != nil {
		return err
	}
	doc, err := ctx.LoadSchema(schemaPath)
	if err != nil {
		return err
	}
	schema, err := ctx.Schema(schemaPath)
	if err != nil {
		return err
	}
	props, err := translate.Select(schema, trimAll(opts.properties))
	if err != nil {
		return err
	}

	g := ctx.Generator(schema, opts.className)
	desc := schemaDescription{Schema: schema.Name, Class: g.ClassName()}

	for _, ref := range doc.Refs() {
		status := referenceStatus{Ref: ref}
		if target, ok := ctx.Schemas.Resolve(ref); ok {
			status.Resolved = true
			status.Class = translate.ClassName(ctx.Config.ClassPrefix, target.Name)
		}
		desc.References = append(desc.References, status)
	}

	for _, p := range props {
		d, err := g.Describe(p)
		if err != nil {
			return err
		}
		desc.Properties = append(desc.Properties, d)
	}

	w := cmd.OutOrStdout()
	switch opts.output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(desc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(desc); err != nil {
			return err
		}
		return enc.Close()
	default:
		printDescription(w, desc)
		return nil
	}
}

func printDescription(w io.Writer, desc schemaDescription) {
	_, _ = fmt.Fprintln(w, prompts.Heading(fmt.Sprintf("%s (schema %q)", desc.Class, desc.Schema)))

	for _, d := range desc.Properties {
		typeName := d.Type
		if d.Unresolved {
			typeName = "(unresolved reference)"
		}
		fields := []prompts.ResultField{
			{Label: "Property", Value: d.Name},
			{Label: "Kind", Value: d.Kind},
			{Label: "Type", Value: typeName},
			{Label: "Accessor", Value: d.Accessor},
			{Label: "Archive key", Value: d.ArchiveKey},
			{Label: "Ownership", Value: string(d.Ownership)},
			{Label: "Scalar", Value: strconv.FormatBool(d.Scalar)},
			{Label: "Conversion", Value: strconv.FormatBool(d.Conversion)},
		}
		if d.EnumType != "" {
			fields = append(fields, prompts.ResultField{Label: "Enumeration", Value: d.EnumType})
		}
		if len(d.Permitted) > 0 {
			fields = append(fields, prompts.ResultField{Label: "Permitted classes", Value: strings.Join(d.Permitted, ", ")})
		}
		prompts.PrintResult(w, fields, "")
	}

	if len(desc.References) == 0 {
		return
	}
	refs := make([]prompts.ResultField, 0, len(desc.References))
	for _, r := range desc.References {
		value := r.Class
		if !r.Resolved {
			value = "(unresolved)"
		}
		refs = append(refs, prompts.ResultField{Label: r.Ref, Value: value})
	}
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, prompts.Heading("References"))
	prompts.PrintResult(w, refs, "")
}
