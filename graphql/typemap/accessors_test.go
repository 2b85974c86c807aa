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

	"github.com/graphbind/graphbind/graphql"
	"github.com/graphbind/graphbind/graphql/typemap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Narrowing accessors", func() {
	var (
		m             *typemap.TypeMap
		droidType     graphql.Object
		characterType graphql.Interface
		reviewType    graphql.InputObject
	)

	BeforeEach(func() {
		m = typemap.New()
		droidType = newDroidType()
		characterType = newCharacterType()
		reviewType = graphql.MustNewInputObject(graphql.InputObjectConfig{
			Name: "ReviewInput",
			Fields: graphql.InputFieldMap{
				"stars": {Type: graphql.Int()},
			},
		})
	})

	Describe("OutputType", func() {
		It("resolves an output-capable type", func() {
			resolved, err := m.OutputType(reflect.TypeOf(int(0)), "stars")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved.String()).Should(Equal("Int!"))
		})

		It("rejects a type that cannot carry a result value", func() {
			_, err := m.OutputType(reflect.TypeOf(make(chan int)), "events")
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotRepresentable))
			Expect(err.Error()).Should(ContainSubstring(`field "events"`))
		})

		It("rejects a representability failure below the wrappers", func() {
			_, err := m.OutputType(reflect.TypeOf([]chan int(nil)), "events")
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotRepresentable))
		})

		It("admits a protocol even though it has no value representation", func() {
			m.Link(characterGoType, characterType)
			resolved, err := m.OutputType(characterGoType, "hero")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved.String()).Should(Equal("Character!"))
		})

		It("rejects a type that resolves to an input-only type", func() {
			m.Link(reflect.TypeOf(droid{}), reviewType)
			_, err := m.OutputType(reflect.TypeOf(droid{}), "review")
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotOutputType))
		})
	})

	Describe("InputType", func() {
		It("resolves an input-capable type", func() {
			m.Link(reflect.TypeOf(droid{}), reviewType)
			resolved, err := m.InputType(reflect.TypeOf(droid{}), "review")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(resolved.String()).Should(Equal("ReviewInput!"))
		})

		It("rejects a type that resolves to an output-only type", func() {
			m.Link(reflect.TypeOf(droid{}), droidType)
			_, err := m.InputType(reflect.TypeOf(droid{}), "hero")
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotInputType))
		})

		It("passes resolution failures through", func() {
			_, err := m.InputType(reflect.TypeOf(starship{}), "ship")
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeUnmapped))
		})
	})

	Describe("NamedType", func() {
		It("unwraps to the named type beneath the wrappers", func() {
			named, err := m.NamedType(reflect.TypeOf([]*int(nil)))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(named).Should(Equal(graphql.Int()))
		})

		It("returns the reference itself for a thunk", func() {
			named, err := m.NamedType(reflect.TypeOf((func() starship)(nil)))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(graphql.IsTypeRefType(named)).Should(BeTrue())
			Expect(named.(graphql.TypeRef).Name()).Should(Equal("starship"))
		})
	})

	Describe("InterfaceType", func() {
		It("resolves a protocol to its linked Interface", func() {
			m.Link(characterGoType, characterType)
			ifaceType, err := m.InterfaceType(characterGoType)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(ifaceType).Should(Equal(characterType))
		})

		It("rejects a concrete type before consulting the registry", func() {
			// Even an unlinked type fails the protocol check first.
			_, err := m.InterfaceType(reflect.TypeOf(droid{}))
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotAProtocol))
		})

		It("rejects a protocol linked to a non-interface type", func() {
			m.Link(characterGoType, droidType)
			_, err := m.InterfaceType(characterGoType)
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotInterfaceType))
		})

		It("passes resolution failures through", func() {
			_, err := m.InterfaceType(characterGoType)
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeUnmapped))
		})
	})

	Describe("ObjectType", func() {
		It("resolves a linked type to its Object", func() {
			m.Link(reflect.TypeOf(droid{}), droidType)
			objectType, err := m.ObjectType(reflect.TypeOf(droid{}))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(objectType).Should(Equal(droidType))
		})

		It("rejects a pointer because the resolved type is nullable", func() {
			m.Link(reflect.TypeOf(droid{}), droidType)
			_, err := m.ObjectType(reflect.TypeOf((*droid)(nil)))
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNullable))
		})

		It("rejects a type linked to a non-object type", func() {
			m.Link(characterGoType, characterType)
			_, err := m.ObjectType(characterGoType)
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeNotObjectType))
		})

		It("passes resolution failures through", func() {
			_, err := m.ObjectType(reflect.TypeOf(starship{}))
			Expect(typemap.CodeOf(err)).Should(Equal(typemap.CodeUnmapped))
		})
	})
})
