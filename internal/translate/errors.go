// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package translate

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidSchema indicates a schema-authoring error, such as an
	// enumeration over a boolean or an array of scalars.
	ErrInvalidSchema = errors.New("invalid schema")

	// ErrUnresolvedReference indicates a $ref that the resolver could not find.
	// It is only returned by generators running in strict reference mode.
	ErrUnresolvedReference = errors.New("unresolved schema reference")
)

// SchemaError describes a schema-authoring error on one property.
type SchemaError struct {
	Class    string // owning class name, if known
	Property string // raw property name
	Message  string
}

// Error implements the error interface.
func (e *SchemaError) Error() string {
	var b strings.Builder
	b.WriteString("invalid schema")
	if e.Class != "" {
		b.WriteString(" in class ")
		b.WriteString(e.Class)
	}
	if e.Property != "" {
		b.WriteString(" property ")
		b.WriteString(e.Property)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether target is ErrInvalidSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrInvalidSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(class, property, message string) *SchemaError {
	return &SchemaError{
		Class:    class,
		Property: property,
		Message:  message,
	}
}

// IsSchemaError reports whether err is or wraps a SchemaError.
func IsSchemaError(err error) bool {
	var schemaErr *SchemaError
	return errors.As(err, &schemaErr)
}
