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

package typemap

import (
	"reflect"
	"sync"

	"github.com/graphbind/graphbind/graphql"
)

// TypeMap maps native Go types to their GraphQL counterparts. Go types are identified by their
// reflect.Type: reflect guarantees a single canonical value per type, so the interface value
// itself is a stable identity and serves as the map key directly.
//
// A TypeMap is safe for concurrent use: Link may overlap Lookup and Resolve calls from other
// goroutines.
type TypeMap struct {
	mu    sync.RWMutex
	types map[reflect.Type]graphql.Type
}

// New creates a TypeMap seeded with the primitive correspondences.
func New() *TypeMap {
	return &TypeMap{
		types: map[reflect.Type]graphql.Type{
			reflect.TypeOf(int(0)):      graphql.Int(),
			reflect.TypeOf(float64(0)):  graphql.Float(),
			reflect.TypeOf(string("")):  graphql.String(),
			reflect.TypeOf(bool(false)): graphql.Boolean(),
		},
	}
}

// Link registers gqlType as the GraphQL counterpart of the Go type t, overwriting any existing
// entry for t. A nil t is the "no type" placeholder and is ignored. Link never fails; a linked
// type that cannot serve a particular resolution (e.g., a non-null type used as a list element) is
// reported by Resolve at the point of use.
func (m *TypeMap) Link(t reflect.Type, gqlType graphql.Type) {
	if t == nil {
		return
	}
	m.mu.Lock()
	m.types[t] = gqlType
	m.mu.Unlock()
}

// Lookup returns the GraphQL type linked for the Go type t. The second return value reports
// whether t has an entry.
func (m *TypeMap) Lookup(t reflect.Type) (graphql.Type, bool) {
	m.mu.RLock()
	gqlType, ok := m.types[t]
	m.mu.RUnlock()
	return gqlType, ok
}
