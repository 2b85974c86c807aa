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

// EnumValueDefinition describes one value in an EnumConfig.
type EnumValueDefinition struct {
	// Description of the enum value
	Description string

	// Value contains the internal value to be used when the enum value is read from input. If not
	// provided, the name of the enum value is used.
	Value interface{}

	// Deprecation marks the value as deprecated.
	Deprecation *Deprecation
}

// EnumValueDefinitionMap maps enum value names to their definitions.
type EnumValueDefinitionMap map[string]EnumValueDefinition

// EnumConfig provides specification to define an Enum type.
type EnumConfig struct {
	// Name of the defining Enum
	Name string

	// Description for the Enum type
	Description string

	// Values in the enum
	Values EnumValueDefinitionMap
}

// enumValue is our built-in implementation for EnumValue.
type enumValue struct {
	name       string
	definition EnumValueDefinition
}

var _ EnumValue = (*enumValue)(nil)

// Name implements EnumValue.
func (v *enumValue) Name() string {
	return v.name
}

// Description implements EnumValue.
func (v *enumValue) Description() string {
	return v.definition.Description
}

// Value implements EnumValue.
func (v *enumValue) Value() interface{} {
	if v.definition.Value == nil {
		return v.name
	}
	return v.definition.Value
}

// Deprecation implements EnumValue.
func (v *enumValue) Deprecation() *Deprecation {
	return v.definition.Deprecation
}

// enum is our built-in implementation for Enum. It is configured with and built from EnumConfig.
type enum struct {
	ThisIsEnumType
	config EnumConfig
	values EnumValueMap
}

var _ Enum = (*enum)(nil)

// NewEnum defines an Enum type from an EnumConfig.
func NewEnum(config EnumConfig) (Enum, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Enum.")
	}

	values := make(EnumValueMap, len(config.Values))
	for name, definition := range config.Values {
		values[name] = &enumValue{
			name:       name,
			definition: definition,
		}
	}

	return &enum{
		config: config,
		values: values,
	}, nil
}

// MustNewEnum is a convenience function equivalent to NewEnum but panics on failure instead of
// returning an error.
func MustNewEnum(config EnumConfig) Enum {
	e, err := NewEnum(config)
	if err != nil {
		panic(err)
	}
	return e
}

// String implements fmt.Stringer.
func (e *enum) String() string {
	return e.Name()
}

// Name implements TypeWithName.
func (e *enum) Name() string {
	return e.config.Name
}

// Description implements TypeWithDescription.
func (e *enum) Description() string {
	return e.config.Description
}

// Values implements Enum.
func (e *enum) Values() EnumValueMap {
	return e.values
}

// CoerceResultValue implements LeafType. The result is the name of the enum value whose internal
// value matches the given one.
func (e *enum) CoerceResultValue(value interface{}) (interface{}, error) {
	for name, enumValue := range e.values {
		if enumValue.Value() == value {
			return name, nil
		}
	}
	return nil, NewCoercionError("Enum %s cannot represent value: %v", e.Name(), value)
}
