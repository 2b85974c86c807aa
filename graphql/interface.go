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

// InterfaceConfig provides specification to define an Interface type.
type InterfaceConfig struct {
	// Name of the defining Interface
	Name string

	// Description for the Interface type
	Description string

	// Fields that needs to be provided when implementing this interface
	Fields FieldMap
}

// iface is our built-in implementation for Interface. It is configured with and built from
// InterfaceConfig.
type iface struct {
	ThisIsInterfaceType
	config InterfaceConfig
}

var _ Interface = (*iface)(nil)

// NewInterface defines an Interface type from an InterfaceConfig.
func NewInterface(config InterfaceConfig) (Interface, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Interface.")
	}
	return &iface{config: config}, nil
}

// MustNewInterface is a convenience function equivalent to NewInterface but panics on failure
// instead of returning an error.
func MustNewInterface(config InterfaceConfig) Interface {
	i, err := NewInterface(config)
	if err != nil {
		panic(err)
	}
	return i
}

// String implements fmt.Stringer.
func (i *iface) String() string {
	return i.Name()
}

// Name implements TypeWithName.
func (i *iface) Name() string {
	return i.config.Name
}

// Description implements TypeWithDescription.
func (i *iface) Description() string {
	return i.config.Description
}

// Fields implements Interface.
func (i *iface) Fields() FieldMap {
	return i.config.Fields
}
