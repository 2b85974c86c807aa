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

// UnionConfig provides specification to define a Union type.
type UnionConfig struct {
	// Name of the defining Union
	Name string

	// Description for the Union type
	Description string

	// PossibleTypes contains the member types of the union.
	PossibleTypes []Object
}

// union is our built-in implementation for Union. It is configured with and built from
// UnionConfig.
type union struct {
	ThisIsUnionType
	config UnionConfig
}

var _ Union = (*union)(nil)

// NewUnion defines a Union type from a UnionConfig.
func NewUnion(config UnionConfig) (Union, error) {
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Union.")
	}
	return &union{config: config}, nil
}

// MustNewUnion is a convenience function equivalent to NewUnion but panics on failure instead of
// returning an error.
func MustNewUnion(config UnionConfig) Union {
	u, err := NewUnion(config)
	if err != nil {
		panic(err)
	}
	return u
}

// String implements fmt.Stringer.
func (u *union) String() string {
	return u.Name()
}

// Name implements TypeWithName.
func (u *union) Name() string {
	return u.config.Name
}

// Description implements TypeWithDescription.
func (u *union) Description() string {
	return u.config.Description
}

// PossibleTypes implements Union.
func (u *union) PossibleTypes() []Object {
	return u.config.PossibleTypes
}
