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

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject
	Name string

	// Description for the InputObject type
	Description string

	// Fields in the input object
	Fields InputFieldMap
}

// inputObject is our built-in implementation for InputObject. It is configured with and built from
// InputObjectConfig.
type inputObject struct {
	ThisIsInputObjectType
	config InputObjectConfig
}

var _ InputObject = (*inputObject)(nil)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config InputObjectConfig) (InputObject, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.")
	}
	return &inputObject{config: config}, nil
}

// MustNewInputObject is a convenience function equivalent to NewInputObject but panics on failure
// instead of returning an error.
func MustNewInputObject(config InputObjectConfig) InputObject {
	o, err := NewInputObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// String implements fmt.Stringer.
func (o *inputObject) String() string {
	return o.Name()
}

// Name implements TypeWithName.
func (o *inputObject) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *inputObject) Description() string {
	return o.config.Description
}

// Fields implements InputObject.
func (o *inputObject) Fields() InputFieldMap {
	return o.config.Fields
}
