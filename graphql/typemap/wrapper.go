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

// modifier enumerates the compound wrapper shapes a Go type can carry.
type modifier uint8

const (
	// modifierOptional marks a pointer type: the value may be absent, which makes the resolved
	// GraphQL type nullable.
	modifierOptional modifier = iota + 1

	// modifierList marks a slice or an array type: the value is a sequence and resolves to a List.
	modifierList

	// modifierReference marks a zero-argument single-result func type (a thunk): a named forward
	// reference to a type declared elsewhere, resolved by name at schema-assembly time.
	modifierReference
)

// wrapperShape describes a compound wrapper type: the modifier it carries and the type it wraps.
type wrapperShape struct {
	Modifier modifier
	Inner    reflect.Type
}

// classifyWrapper reports whether t is a compound wrapper shape. A type either matches one of the
// three wrapper shapes or is a leaf (primitive or user type). A nil t is the "no type" placeholder
// and is never a wrapper.
func classifyWrapper(t reflect.Type) (wrapperShape, bool) {
	if t == nil {
		return wrapperShape{}, false
	}

	switch t.Kind() {
	case reflect.Ptr:
		return wrapperShape{Modifier: modifierOptional, Inner: t.Elem()}, true

	case reflect.Slice, reflect.Array:
		return wrapperShape{Modifier: modifierList, Inner: t.Elem()}, true

	case reflect.Func:
		if t.NumIn() == 0 && t.NumOut() == 1 {
			return wrapperShape{Modifier: modifierReference, Inner: t.Out(0)}, true
		}
	}

	return wrapperShape{}, false
}
