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

// Package typemap resolves native Go types into GraphQL types so that application-defined data
// structures can be exposed in a schema without hand-writing a type declaration for every field.
//
// A TypeMap holds the mapping from Go types to GraphQL types. It is seeded with the primitive
// correspondences (int, float64, string and bool) and extended with Link. Resolve walks a Go type
// and produces the correctly nested GraphQL type:
//
//	int          resolves to Int!
//	*int         resolves to Int      (a pointer is the only way to obtain a nullable type)
//	[]int        resolves to [Int!]
//	[]*int       resolves to [Int]
//	func() User  resolves to User!    (a zero-argument thunk is a forward reference by name)
//	*func() User resolves to User
//
// The narrowing accessors (OutputType, InputType, NamedType, InterfaceType and ObjectType) resolve
// a Go type and then require the result to belong to a specific GraphQL type category, reporting a
// categorized *Error otherwise.
package typemap
