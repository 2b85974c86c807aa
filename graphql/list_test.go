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

var _ = Describe("List", func() {
	It("rejects creating type without specifying element type", func() {
		_, err := graphql.NewListOfType(nil)
		Expect(err).Should(MatchError("Must provide an non-nil element type for List."))

		Expect(func() {
			graphql.MustNewListOfType(nil)
		}).Should(Panic())
	})

	It("accepts any type as its element type", func() {
		listOfInt := graphql.MustNewListOfType(graphql.Int())
		Expect(listOfInt.ElementType()).Should(Equal(graphql.Int()))
		Expect(listOfInt.UnwrappedType()).Should(Equal(graphql.Int()))

		listOfNonNullInt := graphql.MustNewListOfType(graphql.MustNewNonNullOfType(graphql.Int()))
		Expect(listOfNonNullInt.ElementType()).Should(
			Equal(graphql.MustNewNonNullOfType(graphql.Int())))
	})

	It("stringifies with brackets", func() {
		Expect(graphql.MustNewListOfType(graphql.Int()).String()).Should(Equal("[Int]"))
		Expect(graphql.MustNewListOfType(
			graphql.MustNewNonNullOfType(graphql.Int())).String()).Should(Equal("[Int!]"))
		Expect(graphql.MustNewListOfType(
			graphql.MustNewListOfType(graphql.Int())).String()).Should(Equal("[[Int]]"))
	})
})
