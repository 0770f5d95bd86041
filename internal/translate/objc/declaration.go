// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package objc

import (
	"fmt"
	"strings"

	"github.com/dacolabs/modelgen/internal/translate"
)

// InterfaceDeclaration renders the public, read-only declaration of p.
func (g *Generator) InterfaceDeclaration(p translate.Property) (string, error) {
	return g.Declaration(p, false)
}

// ImplementationDeclaration renders the private, read-write redeclaration of p.
func (g *Generator) ImplementationDeclaration(p translate.Property) (string, error) {
	return g.Declaration(p, true)
}

// Declaration renders the @property line for p. Reference kinds are always
// nullable since the model has no notion of required fields.
func (g *Generator) Declaration(p translate.Property, mutable bool) (string, error) {
	typeName, err := g.TypeName(p)
	if err != nil || typeName == "" {
		return "", err
	}

	mutability := ReadOnly
	if mutable {
		mutability = ReadWrite
	}

	attrs := []string{Atomicity, string(Ownership(p)), string(mutability)}
	if IsScalar(p) {
		return fmt.Sprintf("@property (%s) %s %s;", strings.Join(attrs, ", "), typeName, PropertyName(p)), nil
	}
	attrs = append([]string{"nullable"}, attrs...)
	return fmt.Sprintf("@property (%s) %s *%s;", strings.Join(attrs, ", "), typeName, PropertyName(p)), nil
}
