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

import (
	"fmt"
)

// nonNull is our built-in implementation for NonNull.
type nonNull struct {
	ThisIsNonNullType
	innerType Type
	// notation is cached value for returning from String() and is initialized in constructor.
	notation string
}

var _ NonNull = (*nonNull)(nil)

// NewNonNullOfType defines a NonNull type from a given Type of element type. The element type must
// be a nullable type; in particular, non-null of non-null is rejected.
func NewNonNullOfType(elementType Type) (NonNull, error) {
	if elementType == nil {
		return nil, NewError("Must provide an non-nil element type for NonNull.")
	}
	if !IsNullableType(elementType) {
		return nil, NewError(fmt.Sprintf("Expected a nullable type for NonNull but got an %s.", elementType.String()))
	}
	return &nonNull{
		innerType: elementType,
		notation:  fmt.Sprintf("%s!", elementType.String()),
	}, nil
}

// MustNewNonNullOfType is a panic-on-fail version of NewNonNullOfType.
func MustNewNonNullOfType(elementType Type) NonNull {
	n, err := NewNonNullOfType(elementType)
	if err != nil {
		panic(err)
	}
	return n
}

// String implements fmt.Stringer.
func (n *nonNull) String() string {
	return n.notation
}

// UnwrappedType implements WrappingType.
func (n *nonNull) UnwrappedType() Type {
	return n.InnerType()
}

// InnerType implements NonNull.
func (n *nonNull) InnerType() Type {
	return n.innerType
}
