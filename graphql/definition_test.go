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

package graphql_test

import (
	"github.com/graphbind/graphbind/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// graphql-js/src/type/__tests__/definition-test.js
var _ = Describe("Type System: Type definitions", func() {
	Describe("Scalar", func() {
		coerceAnything := graphql.CoerceScalarResultFunc(
			func(value interface{}) (interface{}, error) {
				return value, nil
			})

		It("defines a scalar with a name and a result coercer", func() {
			odd, err := graphql.NewScalar(graphql.ScalarConfig{
				Name:          "Odd",
				ResultCoercer: coerceAnything,
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(odd.Name()).Should(Equal("Odd"))
			Expect(odd.String()).Should(Equal("Odd"))
		})

		It("falls back to the result coercer for input", func() {
			odd := graphql.MustNewScalar(graphql.ScalarConfig{
				Name:          "Odd",
				ResultCoercer: coerceAnything,
			})
			Expect(odd.CoerceInputValue(3)).Should(Equal(3))
		})

		It("rejects creating scalar without a name", func() {
			_, err := graphql.NewScalar(graphql.ScalarConfig{
				ResultCoercer: coerceAnything,
			})
			Expect(err).Should(MatchError("Must provide name for Scalar."))
		})

		It("rejects creating scalar without a result coercer", func() {
			_, err := graphql.NewScalar(graphql.ScalarConfig{
				Name: "Odd",
			})
			Expect(err).Should(MatchError("Odd must provide ResultCoercer."))

			Expect(func() {
				graphql.MustNewScalar(graphql.ScalarConfig{Name: "Odd"})
			}).Should(Panic())
		})
	})

	Describe("Object", func() {
		It("defines an object with fields", func() {
			image, err := graphql.NewObject(graphql.ObjectConfig{
				Name: "Image",
				Fields: graphql.FieldMap{
					"url":    {Type: graphql.String()},
					"width":  {Type: graphql.Int()},
					"height": {Type: graphql.Int()},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(image.Name()).Should(Equal("Image"))
			Expect(image.Fields()).Should(HaveLen(3))
			Expect(image.Fields()["url"].Type).Should(Equal(graphql.String()))
			Expect(image.Interfaces()).Should(BeEmpty())
		})

		It("defines an object implementing an interface", func() {
			named := graphql.MustNewInterface(graphql.InterfaceConfig{
				Name: "Named",
				Fields: graphql.FieldMap{
					"name": {Type: graphql.String()},
				},
			})
			dog := graphql.MustNewObject(graphql.ObjectConfig{
				Name:       "Dog",
				Interfaces: []graphql.Interface{named},
				Fields: graphql.FieldMap{
					"name":  {Type: graphql.String()},
					"barks": {Type: graphql.Boolean()},
				},
			})
			Expect(dog.Interfaces()).Should(ConsistOf(named))
		})

		It("rejects creating object without a name", func() {
			_, err := graphql.NewObject(graphql.ObjectConfig{})
			Expect(err).Should(MatchError("Must provide name for Object."))

			Expect(func() {
				graphql.MustNewObject(graphql.ObjectConfig{})
			}).Should(Panic())
		})
	})

	Describe("Interface", func() {
		It("rejects creating interface without a name", func() {
			_, err := graphql.NewInterface(graphql.InterfaceConfig{})
			Expect(err).Should(MatchError("Must provide name for Interface."))
		})
	})

	Describe("Union", func() {
		It("defines a union with possible types", func() {
			dog := graphql.MustNewObject(graphql.ObjectConfig{Name: "Dog"})
			cat := graphql.MustNewObject(graphql.ObjectConfig{Name: "Cat"})
			pet, err := graphql.NewUnion(graphql.UnionConfig{
				Name:          "Pet",
				PossibleTypes: []graphql.Object{dog, cat},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(pet.PossibleTypes()).Should(ConsistOf(dog, cat))
		})

		It("rejects creating union without a name", func() {
			_, err := graphql.NewUnion(graphql.UnionConfig{})
			Expect(err).Should(MatchError("Must provide name for Union."))
		})
	})

	Describe("Enum", func() {
		rgb := graphql.MustNewEnum(graphql.EnumConfig{
			Name: "RGB",
			Values: graphql.EnumValueDefinitionMap{
				"RED":   {Value: 0},
				"GREEN": {Value: 1},
				"BLUE":  {Value: 2},
			},
		})

		It("defines an enum with internal values", func() {
			Expect(rgb.Values()).Should(HaveLen(3))
			Expect(rgb.Values().Lookup("GREEN").Value()).Should(Equal(1))
			Expect(rgb.Values().Lookup("PURPLE")).Should(BeNil())
		})

		It("uses the value name as internal value when none is given", func() {
			episode := graphql.MustNewEnum(graphql.EnumConfig{
				Name: "Episode",
				Values: graphql.EnumValueDefinitionMap{
					"NEWHOPE": {},
					"EMPIRE":  {},
				},
			})
			Expect(episode.Values().Lookup("EMPIRE").Value()).Should(Equal("EMPIRE"))
		})

		It("serializes an internal value to the enum value name", func() {
			Expect(rgb.CoerceResultValue(2)).Should(Equal("BLUE"))

			_, err := rgb.CoerceResultValue(3)
			Expect(err).Should(MatchCoercionError("Enum RGB cannot represent value: 3"))
		})

		It("rejects creating enum without a name", func() {
			_, err := graphql.NewEnum(graphql.EnumConfig{})
			Expect(err).Should(MatchError("Must provide name for Enum."))
		})
	})

	Describe("InputObject", func() {
		It("defines an input object with input fields", func() {
			point, err := graphql.NewInputObject(graphql.InputObjectConfig{
				Name: "Point2D",
				Fields: graphql.InputFieldMap{
					"x": {Type: graphql.Float()},
					"y": {Type: graphql.Float()},
				},
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(point.Fields()).Should(HaveLen(2))
			Expect(point.Fields()["x"].Type).Should(Equal(graphql.Float()))
		})

		It("rejects creating input object without a name", func() {
			_, err := graphql.NewInputObject(graphql.InputObjectConfig{})
			Expect(err).Should(MatchError("Must provide name for InputObject."))
		})
	})
})
