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
)

// IsProtocol reports whether t denotes an abstract capability contract — a Go interface — rather
// than a concrete type. Protocol types may be resolved into GraphQL Interface types and bypass the
// representability requirement on output fields.
func IsProtocol(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Interface
}

// representable reports whether the innermost leaf under t can be rendered as a generic result
// value. Wrapper shapes are unwrapped first, so the check applies to the element of a list, the
// target of a pointer and the result of a reference thunk. Channels, funcs (other than reference
// thunks, which were unwrapped above) and unsafe pointers carry no data representation in a
// result; protocols pass unconditionally.
func representable(t reflect.Type) bool {
	if t == nil {
		return false
	}

	for {
		shape, ok := classifyWrapper(t)
		if !ok {
			break
		}
		t = shape.Inner
	}

	if IsProtocol(t) {
		return true
	}

	switch t.Kind() {
	case reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return false
	}
	return true
}
