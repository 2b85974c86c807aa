/**
 * Copyright (c) 2019, The Graphbind Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package typemap

import (
	"reflect"

	"github.com/graphbind/graphbind/graphql"
)

// Resolve converts the Go type t into its GraphQL type.
//
// A leaf type (primitive or user type) resolves to its linked GraphQL type wrapped non-null: a
// plain Go value is implicitly required. A pointer is the only way to obtain a nullable GraphQL
// type; it suppresses the non-null wrapping the inner resolution would otherwise apply. A slice or
// an array resolves to a List whose elements default to non-null. A reference thunk resolves to a
// non-null TypeRef carrying the normalized name of the thunk's result type.
//
// Recursion strictly descends into the wrapped type, so termination is bounded by the wrapper
// nesting depth of t.
func (m *TypeMap) Resolve(t reflect.Type) (graphql.Type, error) {
	shape, ok := classifyWrapper(t)
	if !ok {
		return m.resolveLeaf(t)
	}

	switch shape.Modifier {
	case modifierOptional:
		return m.resolveOptional(shape.Inner)

	case modifierList:
		return m.resolveList(shape.Inner)

	default: // modifierReference
		ref, err := graphql.NewTypeRef(referenceName(shape.Inner))
		if err != nil {
			return nil, err
		}
		return graphql.NewNonNullOfType(ref)
	}
}

// resolveLeaf terminates resolution in a registry lookup. The linked type must be
// nullable-capable so it can take the implicit non-null wrapping; a linked type that is already
// non-null is reported the same way as an unlinked one.
func (m *TypeMap) resolveLeaf(t reflect.Type) (graphql.Type, error) {
	linked, ok := m.Lookup(t)
	if !ok || !graphql.IsNullableType(linked) {
		return nil, errUnmapped(t)
	}
	return graphql.NewNonNullOfType(linked)
}

// resolveOptional handles a pointer's target. The optional strips away the non-null wrapping that
// leaf or reference resolution would otherwise apply, which makes it the only source of nullable
// types.
func (m *TypeMap) resolveOptional(inner reflect.Type) (graphql.Type, error) {
	if shape, ok := classifyWrapper(inner); ok {
		if shape.Modifier == modifierReference {
			// A nullable forward reference: the optional suppresses the non-null wrapping a bare
			// reference would get.
			return graphql.NewTypeRef(referenceName(shape.Inner))
		}
		return m.Resolve(inner)
	}

	linked, ok := m.Lookup(inner)
	if !ok {
		return nil, errUnmapped(inner)
	}
	return linked, nil
}

// resolveList handles a slice's or an array's element type. Leaf elements default to non-null;
// only an optional (pointer) element yields a list of nullable elements.
func (m *TypeMap) resolveList(inner reflect.Type) (graphql.Type, error) {
	if _, ok := classifyWrapper(inner); ok {
		elementType, err := m.Resolve(inner)
		if err != nil {
			return nil, err
		}
		return graphql.NewListOfType(elementType)
	}

	linked, ok := m.Lookup(inner)
	if !ok {
		return nil, errUnmapped(inner)
	}
	if !graphql.IsNullableType(linked) {
		return nil, errNotNullable(inner, linked)
	}
	elementType, err := graphql.NewNonNullOfType(linked)
	if err != nil {
		return nil, err
	}
	return graphql.NewListOfType(elementType)
}
