// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import "github.com/dacolabs/modelgen/internal/translate"

// Description summarizes how a property is classified and named.
type Description struct {
	Name       string           `json:"name" yaml:"name"`
	Kind       string           `json:"kind" yaml:"kind"`
	Accessor   string           `json:"accessor" yaml:"accessor"`
	ArchiveKey string           `json:"archive_key" yaml:"archive_key"`
	Type       string           `json:"type" yaml:"type"`
	Scalar     bool             `json:"scalar" yaml:"scalar"`
	Ownership  MemoryAssignment `json:"ownership" yaml:"ownership"`
	EnumType   string           `json:"enum_type,omitempty" yaml:"enum_type,omitempty"`
	Conversion bool             `json:"conversion" yaml:"conversion"`
	Unresolved bool             `json:"unresolved,omitempty" yaml:"unresolved,omitempty"`
	Permitted  []string         `json:"permitted_classes,omitempty" yaml:"permitted_classes,omitempty"`
}

// Describe classifies p.
func (g *Generator) Describe(p translate.Property) (Description, error) {
	d := Description{
		Name:       p.Name(),
		Kind:       p.Kind().String(),
		Accessor:   PropertyName(p),
		ArchiveKey: p.Name(),
		Scalar:     IsScalar(p),
		Ownership:  Ownership(p),
	}
	if IsEnumeration(p) {
		d.EnumType = g.EnumTypeName(p)
	}

	missing, err := g.unresolved(p)
	if err != nil {
		return d, err
	}
	d.Unresolved = missing

	if d.Type, err = g.TypeName(p); err != nil {
		return d, err
	}
	if d.Conversion, err = g.RequiresConversion(p); err != nil {
		return d, err
	}
	if d.Permitted, err = g.PermittedClasses(p); err != nil {
		return d, err
	}
	return d, nil
}
