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

package graphql

// typeRef is our built-in implementation for TypeRef. It carries only the name of the referenced
// type; the consumer that assembles a schema is responsible for substituting the actual type
// definition for the name.
type typeRef struct {
	ThisIsTypeRefType
	name string
}

var _ TypeRef = (*typeRef)(nil)

// NewTypeRef defines a forward reference to the type with the given name.
func NewTypeRef(name string) (TypeRef, error) {
	if len(name) == 0 {
		return nil, NewError("Must provide name for TypeRef.")
	}
	return &typeRef{name: name}, nil
}

// MustNewTypeRef is a panic-on-fail version of NewTypeRef.
func MustNewTypeRef(name string) TypeRef {
	ref, err := NewTypeRef(name)
	if err != nil {
		panic(err)
	}
	return ref
}

// String implements fmt.Stringer.
func (ref *typeRef) String() string {
	return ref.name
}

// Name implements TypeWithName.
func (ref *typeRef) Name() string {
	return ref.name
}
