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
	"math"
	"strconv"
)

// The "type of internal value" for each built-in scalar are listed as follows,
//
// +--------------+---------------------------------+
// | GraphQL Type | Go Type ("internal value type") |
// +--------------+---------------------------------+
// | Int          | int                             |
// | Float        | float64                         |
// | String       | string                          |
// | Boolean      | bool                            |
// | ID           | string                          |
// +--------------+---------------------------------+
//
// That is, the type of underlying value behind the interface{} returned by CoerceResultValue and
// CoerceInputValue are fixed to the one given in the table for each type. Therefore, for example,
// when you receive an Int argument, you can expect you got an "int" not int32 or others.

// Reasons for the error when coercing built-in scalar types
const (
	coercionErrorNonInteger      string = "not an integer"
	coercionErrorIntegerTooLarge        = "value too large for 32-bit signed integer"
	coercionErrorIntegerTooSmall        = "value too small for 32-bit signed integer"
	coercionErrorNonNumeric             = "not a numeric value"
	coercionErrorNonString              = "not a string value"
	coercionErrorNonBoolean             = "not a boolean value"
	coercionErrorNonID                  = "not a valid identifier"
)

// coercionMode distinguishes coercion of values for inclusion in a result from coercion of input
// values. Input coercion is the stricter of the two: it never converts across kinds (e.g., a string
// input is not an eligible Int even when it spells an integer).
type coercionMode uint8

const (
	resultCoercionMode coercionMode = iota
	inputCoercionMode
)

// raiseCoercionError builds the error reported when a value cannot be coerced for the named scalar.
func raiseCoercionError(typeName string, value interface{}, reason string) error {
	if v, ok := value.(string); ok {
		// Quote the string for pretty printing.
		value = strconv.Quote(v)
	}
	return NewCoercionError("%s cannot represent %v: %s", typeName, value, reason)
}

//===-----------------------------------------------------------------------------------------===//
// Int
//===-----------------------------------------------------------------------------------------===//
// The Int scalar type represents a signed 32‐bit numeric non‐fractional value as per spec.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Int

// coerceIntValue range-checks an int64 against the 32-bit bounds required by the spec.
func coerceIntValue(value int64) (interface{}, error) {
	if value > int64(math.MaxInt32) {
		return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooLarge)
	} else if value < int64(math.MinInt32) {
		return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooSmall)
	}
	return int(value), nil
}

func coerceInt(value interface{}, mode coercionMode) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		// Input mode only accepts integer values. See "Input Coercion" in [0].
		//
		// [0]: https://facebook.github.io/graphql/June2018/#sec-Int
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		if value {
			return 1, nil
		}
		return 0, nil

	case int:
		return coerceIntValue(int64(value))
	case int8:
		return coerceIntValue(int64(value))
	case int16:
		return coerceIntValue(int64(value))
	case int32:
		return coerceIntValue(int64(value))
	case int64:
		return coerceIntValue(value)

	case uint:
		if uint64(value) > uint64(math.MaxInt32) {
			return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(value), nil
	case uint8:
		return int(value), nil
	case uint16:
		return int(value), nil
	case uint32:
		if value > uint32(math.MaxInt32) {
			return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(value), nil
	case uint64:
		if value > uint64(math.MaxInt32) {
			return nil, raiseCoercionError("Int", value, coercionErrorIntegerTooLarge)
		}
		return int(value), nil

	case float32:
		return coerceInt(float64(value), mode)
	case float64:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		// Make sure the conversion is lossless.
		intValue := int32(value)
		if float64(intValue) != value {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(intValue), nil

	case string:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		intValue, err := strconv.ParseInt(value, 10, 32)
		if err != nil {
			return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
		}
		return int(intValue), nil
	}

	return nil, raiseCoercionError("Int", value, coercionErrorNonInteger)
}

// intType implements builtin Int type in GraphQL.
type intType struct {
	ThisIsScalarType
}

// Name implements TypeWithName.
func (i *intType) Name() string {
	return "Int"
}

// Description implements TypeWithDescription.
func (i *intType) Description() string {
	return "The `Int` scalar type represents non-fractional signed whole numeric " +
		"values. Int can represent values between -(2^31) and 2^31 - 1."
}

// String implements fmt.Stringer.
func (i *intType) String() string {
	return i.Name()
}

// CoerceResultValue implements LeafType.
func (i *intType) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceInt(value, resultCoercionMode)
}

// CoerceInputValue implements Scalar.
func (i *intType) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceInt(value, inputCoercionMode)
}

var intTypeInstance = &intType{}

// Int returns the GraphQL builtin Int type definition.
func Int() Scalar {
	return intTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Float
//===-----------------------------------------------------------------------------------------===//
// The Float scalar type represents signed double‐precision fractional values as specified by IEEE
// 754.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Float

// coerceFloatValue ensures that the given floating point value is a valid IEEE 754 number. More
// specifically, not an NaN or Inf.
func coerceFloatValue(value float64) (interface{}, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
	}
	return value, nil
}

func coerceFloat(value interface{}, mode coercionMode) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		// Input mode only accepts integer and float values. See "Input Coercion" in [0].
		//
		// [0]: https://facebook.github.io/graphql/June2018/#sec-Float
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		if value {
			return 1.0, nil
		}
		return 0.0, nil

	case int:
		return coerceFloat(int64(value), mode)
	case int8:
		return coerceFloatValue(float64(value))
	case int16:
		return coerceFloatValue(float64(value))
	case int32:
		return coerceFloatValue(float64(value))
	case int64:
		floatValue := float64(value)
		// Make sure the conversion is lossless.
		if int64(floatValue) != value {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return coerceFloatValue(floatValue)

	case uint:
		return coerceFloat(uint64(value), mode)
	case uint8:
		return coerceFloatValue(float64(value))
	case uint16:
		return coerceFloatValue(float64(value))
	case uint32:
		return coerceFloatValue(float64(value))
	case uint64:
		floatValue := float64(value)
		if uint64(floatValue) != value {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return coerceFloatValue(floatValue)

	case float32:
		return coerceFloatValue(float64(value))
	case float64:
		return coerceFloatValue(value)

	case string:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		floatValue, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
		}
		return coerceFloatValue(floatValue)
	}

	return nil, raiseCoercionError("Float", value, coercionErrorNonNumeric)
}

// floatType implements builtin Float type in GraphQL.
type floatType struct {
	ThisIsScalarType
}

// Name implements TypeWithName.
func (f *floatType) Name() string {
	return "Float"
}

// Description implements TypeWithDescription.
func (f *floatType) Description() string {
	return "The `Float` scalar type represents signed double-precision fractional " +
		"values as specified by [IEEE 754](http://en.wikipedia.org/wiki/IEEE_floating_point)."
}

// String implements fmt.Stringer.
func (f *floatType) String() string {
	return f.Name()
}

// CoerceResultValue implements LeafType.
func (f *floatType) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceFloat(value, resultCoercionMode)
}

// CoerceInputValue implements Scalar.
func (f *floatType) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceFloat(value, inputCoercionMode)
}

var floatTypeInstance = &floatType{}

// Float returns the GraphQL builtin Float type definition.
func Float() Scalar {
	return floatTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// String
//===-----------------------------------------------------------------------------------------===//
// The String scalar type represents textual data, represented as UTF‐8 character sequences.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-String

func coerceString(value interface{}, mode coercionMode) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil

	case bool:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("String", value, coercionErrorNonString)
		}
		if value {
			return "true", nil
		}
		return "false", nil

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("String", value, coercionErrorNonString)
		}
		return fmt.Sprintf("%d", value), nil

	case float32, float64:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("String", value, coercionErrorNonString)
		}
		return fmt.Sprintf("%v", value), nil
	}

	return nil, raiseCoercionError("String", value, coercionErrorNonString)
}

// stringType implements builtin String type in GraphQL.
type stringType struct {
	ThisIsScalarType
}

// Name implements TypeWithName.
func (s *stringType) Name() string {
	return "String"
}

// Description implements TypeWithDescription.
func (s *stringType) Description() string {
	return "The `String` scalar type represents textual data, represented as UTF-8 " +
		"character sequences. The String type is most often used by GraphQL to " +
		"represent free-form human-readable text."
}

// String implements fmt.Stringer.
func (s *stringType) String() string {
	return s.Name()
}

// CoerceResultValue implements LeafType.
func (s *stringType) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceString(value, resultCoercionMode)
}

// CoerceInputValue implements Scalar.
func (s *stringType) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceString(value, inputCoercionMode)
}

var stringTypeInstance = &stringType{}

// String returns the GraphQL builtin String type definition.
func String() Scalar {
	return stringTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// Boolean
//===-----------------------------------------------------------------------------------------===//
// The Boolean scalar type represents true or false.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Boolean

func coerceBoolean(value interface{}, mode coercionMode) (interface{}, error) {
	switch value := value.(type) {
	case bool:
		return value, nil

	case int:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Boolean", value, coercionErrorNonBoolean)
		}
		return value != 0, nil
	case int64:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Boolean", value, coercionErrorNonBoolean)
		}
		return value != 0, nil
	case uint:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Boolean", value, coercionErrorNonBoolean)
		}
		return value != 0, nil
	case uint64:
		if mode == inputCoercionMode {
			return nil, raiseCoercionError("Boolean", value, coercionErrorNonBoolean)
		}
		return value != 0, nil
	}

	return nil, raiseCoercionError("Boolean", value, coercionErrorNonBoolean)
}

// booleanType implements builtin Boolean type in GraphQL.
type booleanType struct {
	ThisIsScalarType
}

// Name implements TypeWithName.
func (b *booleanType) Name() string {
	return "Boolean"
}

// Description implements TypeWithDescription.
func (b *booleanType) Description() string {
	return "The `Boolean` scalar type represents `true` or `false`."
}

// String implements fmt.Stringer.
func (b *booleanType) String() string {
	return b.Name()
}

// CoerceResultValue implements LeafType.
func (b *booleanType) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceBoolean(value, resultCoercionMode)
}

// CoerceInputValue implements Scalar.
func (b *booleanType) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceBoolean(value, inputCoercionMode)
}

var booleanTypeInstance = &booleanType{}

// Boolean returns the GraphQL builtin Boolean type definition.
func Boolean() Scalar {
	return booleanTypeInstance
}

//===-----------------------------------------------------------------------------------------===//
// ID
//===-----------------------------------------------------------------------------------------===//
// The ID scalar type represents a unique identifier, often used to refetch an object or as the key
// for a cache. It is serialized in the same way as a String; however, it is not intended to be
// human-readable.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-ID

func coerceID(value interface{}, mode coercionMode) (interface{}, error) {
	switch value := value.(type) {
	case string:
		return value, nil

	// While the ID is serialized as a String, it accepts integer input. See "Input Coercion" in [0].
	//
	// [0]: https://facebook.github.io/graphql/June2018/#sec-ID
	case int:
		return strconv.FormatInt(int64(value), 10), nil
	case int32:
		return strconv.FormatInt(int64(value), 10), nil
	case int64:
		return strconv.FormatInt(value, 10), nil
	case uint:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(value), 10), nil
	case uint64:
		return strconv.FormatUint(value, 10), nil
	}

	return nil, raiseCoercionError("ID", value, coercionErrorNonID)
}

// idType implements builtin ID type in GraphQL.
type idType struct {
	ThisIsScalarType
}

// Name implements TypeWithName.
func (id *idType) Name() string {
	return "ID"
}

// Description implements TypeWithDescription.
func (id *idType) Description() string {
	return "The `ID` scalar type represents a unique identifier, often used to " +
		"refetch an object or as key for a cache. The ID type appears in a JSON " +
		"response as a String; however, it is not intended to be human-readable. " +
		"When expected as an input type, any string (such as `\"4\"`) or integer " +
		"(such as `4`) input value will be accepted as an ID."
}

// String implements fmt.Stringer.
func (id *idType) String() string {
	return id.Name()
}

// CoerceResultValue implements LeafType.
func (id *idType) CoerceResultValue(value interface{}) (interface{}, error) {
	return coerceID(value, resultCoercionMode)
}

// CoerceInputValue implements Scalar.
func (id *idType) CoerceInputValue(value interface{}) (interface{}, error) {
	return coerceID(value, inputCoercionMode)
}

var idTypeInstance = &idType{}

// ID returns the GraphQL builtin ID type definition.
func ID() Scalar {
	return idTypeInstance
}
