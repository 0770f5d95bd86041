// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package objc generates the Objective-C source fragments for one property of
// an immutable model class: declarations, NSCoding statements, and the
// dictionary construction and builder merge statements.
package objc

import (
	"fmt"
	"log/slog"

	"github.com/dacolabs/modelgen/internal/translate"
)

// MemoryAssignment is the ownership qualifier of a property declaration.
type MemoryAssignment string

// Generated models are immutable, so reference kinds are held strong and never copy.
const (
	Strong MemoryAssignment = "strong"
	Assign MemoryAssignment = "assign"
)

// Mutability is the access qualifier of a property declaration.
type Mutability string

// Mutability qualifiers for the interface and implementation views.
const (
	ReadOnly  Mutability = "readonly"
	ReadWrite Mutability = "readwrite"
)

// Atomicity is fixed for every generated property.
const Atomicity = "nonatomic"

// Primitive type names.
const (
	PrimitiveFloat   = "CGFloat"
	PrimitiveInteger = "NSInteger"
	PrimitiveBoolean = "BOOL"
)

// Foundation class names.
const (
	classString     = "NSString"
	classURL        = "NSURL"
	classDate       = "NSDate"
	classNumber     = "NSNumber"
	classArray      = "NSArray"
	classDictionary = "NSDictionary"
	classObject     = "NSObject"
)

// DateValueTransformerKey names the process-wide NSValueTransformer that
// converts date strings; the generated runtime registers it lazily.
const DateValueTransformerKey = "kPINModelDateValueTransformerKey"

// MergeOrigin is the builder variable the fragment sheet merges into.
const MergeOrigin = "builder"

// Generator renders statements for the properties of one owning class.
// A Generator holds no mutable state and is safe for concurrent use when its
// resolver is.
type Generator struct {
	className   string
	resolver    translate.SchemaResolver
	classPrefix string
	strict      bool
	logger      *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithClassPrefix sets the prefix used to derive class names of referenced schemas.
func WithClassPrefix(prefix string) Option {
	return func(g *Generator) {
		g.classPrefix = prefix
	}
}

// WithStrictReferences makes every generator fail with
// translate.ErrUnresolvedReference instead of degrading when a $ref cannot be resolved.
func WithStrictReferences() Option {
	return func(g *Generator) {
		g.strict = true
	}
}

// WithLogger sets the logger used to report degraded output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New creates a Generator for properties owned by className. The resolver
// may be nil, in which case every reference is unresolved.
func New(className string, resolver translate.SchemaResolver, opts ...Option) *Generator {
	g := &Generator{
		className: className,
		resolver:  resolver,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ClassName returns the owning class name.
func (g *Generator) ClassName() string {
	return g.className
}

// referenceClassName resolves the generated class name for a reference.
// An unresolved reference yields "" unless the generator is strict.
func (g *Generator) referenceClassName(p *translate.ReferenceProperty) (string, error) {
	if g.resolver != nil {
		if schema, ok := g.resolver.Resolve(p.Ref); ok {
			return translate.ClassName(g.classPrefix, schema.Name), nil
		}
	}
	if g.strict {
		return "", fmt.Errorf("%w: %q referenced by %s.%s", translate.ErrUnresolvedReference, p.Ref, g.className, p.FieldName)
	}
	g.logger.Warn("unresolved schema reference",
		"class", g.className,
		"property", p.FieldName,
		"ref", p.Ref)
	return "", nil
}

// unresolved reports whether p is a reference that cannot be resolved, or a
// container whose elements are. Such a property contributes nothing to the
// generated output.
func (g *Generator) unresolved(p translate.Property) (bool, error) {
	switch p := p.(type) {
	case *translate.ReferenceProperty:
		name, err := g.referenceClassName(p)
		if err != nil {
			return false, err
		}
		return name == "", nil
	case *translate.ArrayProperty:
		if p.Items == nil {
			return false, nil
		}
		return g.unresolved(p.Items)
	case *translate.ObjectProperty:
		if p.Values == nil {
			return false, nil
		}
		return g.unresolved(p.Values)
	default:
		return false, nil
	}
}

// element validates the element or value type of a container. It returns nil
// when the container is untyped, so callers fall back to untyped container
// behavior.
func (g *Generator) element(container, elem translate.Property) (translate.Property, error) {
	if elem == nil {
		return nil, nil
	}
	if IsScalar(elem) {
		return nil, translate.NewSchemaError(g.className, container.Name(),
			fmt.Sprintf("%s elements must not be scalar (got %s)", container.Kind(), elem.Kind()))
	}
	return elem, nil
}
