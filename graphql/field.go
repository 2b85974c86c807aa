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

// Field describes a field in an Object or an Interface type.
type Field struct {
	// Type of value yielded by the field
	Type Type

	// Description of the field
	Description string

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation
}

// FieldMap maps field names to their definitions in an Object or an Interface type.
type FieldMap map[string]Field

// InputField defines a field in an InputObject. It is much simpler than Field because it doesn't
// resolve a value.
type InputField struct {
	// Type of value accepted by the field
	Type Type

	// Description of the field
	Description string

	// HasDefaultValue is true if the input field has a default value. DefaultValue is meaningless
	// when this is false.
	HasDefaultValue bool

	// DefaultValue specified the value to be assigned to the field when no input is provided.
	DefaultValue interface{}
}

// InputFieldMap maps field names to their definitions in an Input Object type.
type InputFieldMap map[string]InputField
