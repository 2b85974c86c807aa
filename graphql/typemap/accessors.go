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

// The narrowing accessors below share one shape: resolve the Go type, then assert that the result
// belongs to a required GraphQL type category. The accessor bodies are intentionally parallel;
// each one enforces a distinct contract.

// OutputType resolves t into a GraphQL type usable as the result type of the named field. The
// innermost leaf under t must be representable as a result value or be a protocol.
func (m *TypeMap) OutputType(t reflect.Type, fieldName string) (graphql.Type, error) {
	if !representable(t) {
		return nil, errNotRepresentable(t, fieldName)
	}

	resolved, err := m.Resolve(t)
	if err != nil {
		return nil, err
	}

	if !graphql.IsOutputType(resolved) {
		return nil, errNotOutputType(t, resolved, fieldName)
	}
	return resolved, nil
}

// InputType resolves t into a GraphQL type usable as the type of an argument or a variable of the
// named field.
func (m *TypeMap) InputType(t reflect.Type, fieldName string) (graphql.Type, error) {
	resolved, err := m.Resolve(t)
	if err != nil {
		return nil, err
	}

	if !graphql.IsInputType(resolved) {
		return nil, errNotInputType(t, resolved, fieldName)
	}
	return resolved, nil
}

// NamedType resolves t and returns the named GraphQL type it reduces to once List and NonNull
// wrappers are unwrapped.
func (m *TypeMap) NamedType(t reflect.Type) (graphql.Type, error) {
	resolved, err := m.Resolve(t)
	if err != nil {
		return nil, err
	}

	named := graphql.NamedTypeOf(resolved)
	if _, ok := named.(graphql.TypeWithName); !ok {
		return nil, errNotNamedType(t, resolved)
	}
	return named, nil
}

// InterfaceType resolves the protocol type t into the GraphQL Interface it is linked to. The
// resolved type must be non-null; interfaces exposed through this accessor are required.
func (m *TypeMap) InterfaceType(t reflect.Type) (graphql.Interface, error) {
	if !IsProtocol(t) {
		return nil, errNotAProtocol(t)
	}

	resolved, err := m.Resolve(t)
	if err != nil {
		return nil, err
	}

	nonNull, ok := resolved.(graphql.NonNull)
	if !ok {
		return nil, errNullable(t, resolved, "interface")
	}
	ifaceType, ok := nonNull.InnerType().(graphql.Interface)
	if !ok {
		return nil, errNotInterfaceType(t, nonNull.InnerType())
	}
	return ifaceType, nil
}

// ObjectType resolves t into the GraphQL Object it is linked to. The resolved type must be
// non-null; objects exposed through this accessor are required.
func (m *TypeMap) ObjectType(t reflect.Type) (graphql.Object, error) {
	resolved, err := m.Resolve(t)
	if err != nil {
		return nil, err
	}

	nonNull, ok := resolved.(graphql.NonNull)
	if !ok {
		return nil, errNullable(t, resolved, "object")
	}
	objectType, ok := nonNull.InnerType().(graphql.Object)
	if !ok {
		return nil, errNotObjectType(t, nonNull.InnerType())
	}
	return objectType, nil
}
