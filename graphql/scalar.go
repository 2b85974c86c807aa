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

// ScalarResultCoercer coerces result value into a value represented in the Scalar type. Please read
// "Result Coercion" in [0] to provide appropriate implementation.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarResultCoercer interface {
	// CoerceResultValue coerces the given value for the field to return.
	CoerceResultValue(value interface{}) (interface{}, error)
}

// CoerceScalarResultFunc is an adapter to allow the use of ordinary functions as
// ScalarResultCoercer.
type CoerceScalarResultFunc func(value interface{}) (interface{}, error)

// CoerceResultValue calls f(value).
func (f CoerceScalarResultFunc) CoerceResultValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarResultFunc implements ScalarResultCoercer.
var _ ScalarResultCoercer = (CoerceScalarResultFunc)(nil)

// ScalarInputCoercer coerces input values into a value represented the Scalar type. Please read
// "Input Coercion" in [0] to provide appropriate implementation.
//
// [0]: https://facebook.github.io/graphql/June2018/#sec-Scalars
type ScalarInputCoercer interface {
	// CoerceInputValue coerces a scalar value supplied as input.
	CoerceInputValue(value interface{}) (interface{}, error)
}

// CoerceScalarInputFunc is an adapter to allow the use of ordinary functions as
// ScalarInputCoercer.
type CoerceScalarInputFunc func(value interface{}) (interface{}, error)

// CoerceInputValue calls f(value).
func (f CoerceScalarInputFunc) CoerceInputValue(value interface{}) (interface{}, error) {
	return f(value)
}

// CoerceScalarInputFunc implements ScalarInputCoercer.
var _ ScalarInputCoercer = (CoerceScalarInputFunc)(nil)

// ScalarConfig provides specification to define a Scalar type.
type ScalarConfig struct {
	// Name of the defining Scalar
	Name string

	// Description for the Scalar type
	Description string

	// ResultCoercer serializes values for the scalar for inclusion in a result.
	ResultCoercer ScalarResultCoercer

	// InputCoercer parses input values into eligible Go values for the scalar. If not provided,
	// input values are coerced with ResultCoercer.
	InputCoercer ScalarInputCoercer
}

// scalar is our built-in implementation for Scalar. It is configured with and built from
// ScalarConfig.
type scalar struct {
	ThisIsScalarType
	config ScalarConfig
}

var _ Scalar = (*scalar)(nil)

// NewScalar defines a scalar type from a ScalarConfig.
func NewScalar(config ScalarConfig) (Scalar, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Scalar.")
	}
	if config.ResultCoercer == nil {
		return nil, NewError(config.Name + " must provide ResultCoercer.")
	}
	return &scalar{config: config}, nil
}

// MustNewScalar is a convenience function equivalent to NewScalar but panics on failure instead of
// returning an error.
func MustNewScalar(config ScalarConfig) Scalar {
	s, err := NewScalar(config)
	if err != nil {
		panic(err)
	}
	return s
}

// String implements fmt.Stringer.
func (s *scalar) String() string {
	return s.Name()
}

// Name implements TypeWithName.
func (s *scalar) Name() string {
	return s.config.Name
}

// Description implements TypeWithDescription.
func (s *scalar) Description() string {
	return s.config.Description
}

// CoerceResultValue implements LeafType.
func (s *scalar) CoerceResultValue(value interface{}) (interface{}, error) {
	return s.config.ResultCoercer.CoerceResultValue(value)
}

// CoerceInputValue implements Scalar.
func (s *scalar) CoerceInputValue(value interface{}) (interface{}, error) {
	if s.config.InputCoercer != nil {
		return s.config.InputCoercer.CoerceInputValue(value)
	}
	return s.config.ResultCoercer.CoerceResultValue(value)
}
