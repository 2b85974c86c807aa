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

// Package graphql provides the GraphQL type system values used throughout the library: the named
// types (Scalar, Object, Interface, Union, Enum and InputObject), the wrapping types (List and
// NonNull) and TypeRef, a named forward reference that defers resolution of its target until
// schema-assembly time.
//
// Types are created with direct constructors taking a Config struct (e.g., NewObject with an
// ObjectConfig). Circular definitions do not need special machinery here: a type that refers to
// itself (or to a type that is not defined yet) uses a TypeRef carrying the target's name, and the
// component assembling a schema substitutes the actual definition for the name.
package graphql
