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

package typemap_test

import (
	"reflect"
	"sync"

	"github.com/graphbind/graphbind/graphql"
	"github.com/graphbind/graphbind/graphql/typemap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// Go-side fixture types shared by the specs in this package.
type (
	droid    struct{}
	starship struct{}

	character interface {
		Name() string
	}
)

var characterGoType = reflect.TypeOf((*character)(nil)).Elem()

func newDroidType() graphql.Object {
	return graphql.MustNewObject(graphql.ObjectConfig{
		Name: "Droid",
		Fields: graphql.FieldMap{
			"name": {Type: graphql.String()},
		},
	})
}

func newCharacterType() graphql.Interface {
	return graphql.MustNewInterface(graphql.InterfaceConfig{
		Name: "Character",
		Fields: graphql.FieldMap{
			"name": {Type: graphql.String()},
		},
	})
}

var _ = Describe("TypeMap", func() {
	var m *typemap.TypeMap

	BeforeEach(func() {
		m = typemap.New()
	})

	It("seeds the primitive correspondences", func() {
		seeds := map[reflect.Type]graphql.Type{
			reflect.TypeOf(int(0)):     graphql.Int(),
			reflect.TypeOf(float64(0)): graphql.Float(),
			reflect.TypeOf(""):         graphql.String(),
			reflect.TypeOf(false):      graphql.Boolean(),
		}
		for goType, gqlType := range seeds {
			linked, ok := m.Lookup(goType)
			Expect(ok).Should(BeTrue())
			Expect(linked).Should(Equal(gqlType))
		}
	})

	It("misses types that were never linked", func() {
		_, ok := m.Lookup(reflect.TypeOf(droid{}))
		Expect(ok).Should(BeFalse())
	})

	It("links a user type to its GraphQL counterpart", func() {
		droidType := newDroidType()
		m.Link(reflect.TypeOf(droid{}), droidType)

		linked, ok := m.Lookup(reflect.TypeOf(droid{}))
		Expect(ok).Should(BeTrue())
		Expect(linked).Should(Equal(droidType))
	})

	It("overwrites an existing entry on relink", func() {
		goType := reflect.TypeOf(droid{})
		m.Link(goType, newDroidType())

		renamed := graphql.MustNewObject(graphql.ObjectConfig{Name: "Android"})
		m.Link(goType, renamed)

		linked, _ := m.Lookup(goType)
		Expect(linked).Should(Equal(renamed))
	})

	It("ignores linking the no-type placeholder", func() {
		m.Link(nil, newDroidType())
		_, ok := m.Lookup(nil)
		Expect(ok).Should(BeFalse())
	})

	It("serves concurrent links and resolutions", func() {
		droidType := newDroidType()
		goType := reflect.TypeOf(droid{})

		const numWorkers = 8
		errs := make(chan error, numWorkers)

		var wg sync.WaitGroup
		for i := 0; i < numWorkers; i++ {
			wg.Add(2)
			go func() {
				defer wg.Done()
				m.Link(goType, droidType)
			}()
			go func() {
				defer wg.Done()
				// Primitive seeds are immutable, so resolution must succeed regardless of how it
				// interleaves with the links above.
				_, err := m.Resolve(reflect.TypeOf(int(0)))
				errs <- err
			}()
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			Expect(err).ShouldNot(HaveOccurred())
		}

		linked, _ := m.Lookup(goType)
		Expect(linked).Should(Equal(droidType))
	})
})
