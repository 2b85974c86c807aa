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
	"fmt"
	"reflect"
	"unsafe"

	"github.com/graphbind/graphbind/graphql"

	"github.com/json-iterator/go"
)

// Code classifies a failed attempt to resolve a Go type into a GraphQL type. Every failure is
// terminal to the specific resolution attempt: resolution is deterministic and pure, so a repeated
// call with the same input always fails the same way.
type Code uint8

// Enumeration of Code. The zero value is reserved so that a Code carried by an Error is never
// ambiguous with "no code" (see CodeOf).
const (
	// CodeNotRepresentable indicates the underlying leaf type cannot be converted to a generic
	// result value and is not a protocol.
	CodeNotRepresentable Code = iota + 1

	// CodeUnmapped indicates no GraphQL type is linked (directly or via wrapper unwrapping) for the
	// Go type.
	CodeUnmapped

	// CodeNotOutputType indicates the resolved GraphQL type cannot be used as an output type.
	CodeNotOutputType

	// CodeNotInputType indicates the resolved GraphQL type cannot be used as an input type.
	CodeNotInputType

	// CodeNotNamedType indicates the resolved GraphQL type does not reduce to a named type.
	CodeNotNamedType

	// CodeNotInterfaceType indicates the resolved GraphQL type is not an Interface.
	CodeNotInterfaceType

	// CodeNotObjectType indicates the resolved GraphQL type is not an Object.
	CodeNotObjectType

	// CodeNotAProtocol indicates an interface lookup was attempted on a concrete Go type.
	CodeNotAProtocol

	// CodeNullable indicates an interface or object lookup resolved to a nullable GraphQL type,
	// which is disallowed for those categories.
	CodeNullable

	// CodeNotNullable indicates a list element resolved to a GraphQL type that is already non-null
	// and cannot be wrapped non-null again.
	CodeNotNullable
)

func (c Code) String() string {
	switch c {
	case CodeNotRepresentable:
		return "NotRepresentable"
	case CodeUnmapped:
		return "Unmapped"
	case CodeNotOutputType:
		return "NotOutputType"
	case CodeNotInputType:
		return "NotInputType"
	case CodeNotNamedType:
		return "NotNamedType"
	case CodeNotInterfaceType:
		return "NotInterfaceType"
	case CodeNotObjectType:
		return "NotObjectType"
	case CodeNotAProtocol:
		return "NotAProtocol"
	case CodeNullable:
		return "Nullable"
	case CodeNotNullable:
		return "NotNullable"
	}
	return "Unknown"
}

// Error describes a failed attempt to resolve a Go type into a GraphQL type. The message carries
// enough context (type name and, where available, field name) to be surfaced directly as a
// schema-construction-time diagnostic.
type Error struct {
	// Code is the classification of the failure.
	Code Code

	// TypeName is the display name of the offending Go type.
	TypeName string

	// FieldName names the field being bound, when one was given to the accessor. Empty otherwise.
	FieldName string

	// Message is the user-facing diagnostic.
	Message string
}

// Error implements Go error interface.
var _ error = (*Error)(nil)

// Error implements Go's error interface.
func (e *Error) Error() string {
	return e.Message
}

// CodeOf returns the classification carried by err, or the zero Code if err is not a typemap
// Error.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return 0
}

// typeName returns the display name of a Go type for diagnostics.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

func newError(code Code, t reflect.Type, fieldName, format string, args ...interface{}) *Error {
	return &Error{
		Code:      code,
		TypeName:  typeName(t),
		FieldName: fieldName,
		Message:   fmt.Sprintf(format, args...),
	}
}

func errNotRepresentable(t reflect.Type, fieldName string) *Error {
	return newError(CodeNotRepresentable, t, fieldName,
		"Cannot use %s as the type of field %q: it cannot be represented as a result value and is not a protocol.",
		typeName(t), fieldName)
}

func errUnmapped(t reflect.Type) *Error {
	return newError(CodeUnmapped, t, "",
		"No GraphQL type has been linked for %s.", typeName(t))
}

func errNotOutputType(t reflect.Type, resolved graphql.Type, fieldName string) *Error {
	return newError(CodeNotOutputType, t, fieldName,
		"Cannot use %s as the type of field %q: %s is not an output type.", typeName(t), fieldName, resolved)
}

func errNotInputType(t reflect.Type, resolved graphql.Type, fieldName string) *Error {
	return newError(CodeNotInputType, t, fieldName,
		"Cannot use %s as the type of field %q: %s is not an input type.", typeName(t), fieldName, resolved)
}

func errNotNamedType(t reflect.Type, resolved graphql.Type) *Error {
	return newError(CodeNotNamedType, t, "",
		"Cannot resolve %s to a named GraphQL type: got %s.", typeName(t), resolved)
}

func errNotAProtocol(t reflect.Type) *Error {
	return newError(CodeNotAProtocol, t, "",
		"Cannot use %s as an interface type: it is not a protocol.", typeName(t))
}

func errNullable(t reflect.Type, resolved graphql.Type, category string) *Error {
	return newError(CodeNullable, t, "",
		"Cannot use %s as an %s type: resolved GraphQL type %s is nullable.", typeName(t), category, resolved)
}

func errNotInterfaceType(t reflect.Type, inner graphql.Type) *Error {
	return newError(CodeNotInterfaceType, t, "",
		"Cannot use %s as an interface type: %s is not an interface.", typeName(t), inner)
}

func errNotObjectType(t reflect.Type, inner graphql.Type) *Error {
	return newError(CodeNotObjectType, t, "",
		"Cannot use %s as an object type: %s is not an object.", typeName(t), inner)
}

func errNotNullable(t reflect.Type, linked graphql.Type) *Error {
	return newError(CodeNotNullable, t, "",
		"Cannot use %s as a list element: linked GraphQL type %s is already non-null.", typeName(t), linked)
}

// errorMarshaller implements jsoniter.ValEncoder to encode Error to JSON.
type errorMarshaller struct{}

var _ jsoniter.ValEncoder = errorMarshaller{}

// IsEmpty implements jsoniter.ValEncoder.
func (errorMarshaller) IsEmpty(ptr unsafe.Pointer) bool {
	return (*Error)(ptr) == nil
}

// Encode implements jsoniter.ValEncoder.
func (errorMarshaller) Encode(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	err := (*Error)(ptr)
	stream.WriteObjectStart()

	stream.WriteObjectField("code")
	stream.WriteString(err.Code.String())

	stream.WriteMore()
	stream.WriteObjectField("typeName")
	stream.WriteString(err.TypeName)

	if len(err.FieldName) > 0 {
		stream.WriteMore()
		stream.WriteObjectField("fieldName")
		stream.WriteString(err.FieldName)
	}

	stream.WriteMore()
	stream.WriteObjectField("message")
	stream.WriteString(err.Message)

	stream.WriteObjectEnd()
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(e)
}

func init() {
	jsoniter.RegisterTypeEncoder("typemap.Error", errorMarshaller{})
}
