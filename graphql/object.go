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

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object
	Name string

	// Description for the Object type
	Description string

	// Interfaces that implemented by the defining Object
	Interfaces []Interface

	// Fields in the object
	Fields FieldMap
}

// object is our built-in implementation for Object. It is configured with and built from
// ObjectConfig.
type object struct {
	ThisIsObjectType
	config ObjectConfig
}

var _ Object = (*object)(nil)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config ObjectConfig) (Object, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.")
	}
	return &object{config: config}, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config ObjectConfig) Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// String implements fmt.Stringer.
func (o *object) String() string {
	return o.Name()
}

// Name implements TypeWithName.
func (o *object) Name() string {
	return o.config.Name
}

// Description implements TypeWithDescription.
func (o *object) Description() string {
	return o.config.Description
}

// Fields implements Object.
func (o *object) Fields() FieldMap {
	return o.config.Fields
}

// Interfaces implements Object.
func (o *object) Interfaces() []Interface {
	return o.config.Interfaces
}
