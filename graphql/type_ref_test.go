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

var _ = Describe("TypeRef", func() {
	It("rejects creating reference without a name", func() {
		_, err := graphql.NewTypeRef("")
		Expect(err).Should(MatchError("Must provide name for TypeRef."))

		Expect(func() {
			graphql.MustNewTypeRef("")
		}).Should(Panic())
	})

	It("stringifies to the referenced name", func() {
		ref := graphql.MustNewTypeRef("Episode")
		Expect(ref.Name()).Should(Equal("Episode"))
		Expect(ref.String()).Should(Equal("Episode"))
	})

	It("can be wrapped like any other type", func() {
		ref := graphql.MustNewTypeRef("Episode")
		Expect(graphql.MustNewNonNullOfType(ref).String()).Should(Equal("Episode!"))
		Expect(graphql.MustNewListOfType(ref).String()).Should(Equal("[Episode]"))
	})
})
