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
	"unsafe"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

type node struct{}

var _ = Describe("classifyWrapper", func() {
	It("classifies a pointer as an optional", func() {
		shape, ok := classifyWrapper(reflect.TypeOf((*int)(nil)))
		Expect(ok).Should(BeTrue())
		Expect(shape.Modifier).Should(Equal(modifierOptional))
		Expect(shape.Inner).Should(Equal(reflect.TypeOf(int(0))))
	})

	It("classifies slices and arrays as lists", func() {
		shape, ok := classifyWrapper(reflect.TypeOf([]string(nil)))
		Expect(ok).Should(BeTrue())
		Expect(shape.Modifier).Should(Equal(modifierList))
		Expect(shape.Inner).Should(Equal(reflect.TypeOf("")))

		shape, ok = classifyWrapper(reflect.TypeOf([4]string{}))
		Expect(ok).Should(BeTrue())
		Expect(shape.Modifier).Should(Equal(modifierList))
	})

	It("classifies a zero-argument single-result func as a reference", func() {
		shape, ok := classifyWrapper(reflect.TypeOf((func() node)(nil)))
		Expect(ok).Should(BeTrue())
		Expect(shape.Modifier).Should(Equal(modifierReference))
		Expect(shape.Inner).Should(Equal(reflect.TypeOf(node{})))
	})

	It("treats other func shapes as leaves", func() {
		_, ok := classifyWrapper(reflect.TypeOf((func(int) node)(nil)))
		Expect(ok).Should(BeFalse())

		_, ok = classifyWrapper(reflect.TypeOf((func() (node, error))(nil)))
		Expect(ok).Should(BeFalse())

		_, ok = classifyWrapper(reflect.TypeOf((func())(nil)))
		Expect(ok).Should(BeFalse())
	})

	It("treats non-compound types as leaves", func() {
		_, ok := classifyWrapper(reflect.TypeOf(int(0)))
		Expect(ok).Should(BeFalse())

		_, ok = classifyWrapper(reflect.TypeOf(map[string]int(nil)))
		Expect(ok).Should(BeFalse())

		_, ok = classifyWrapper(nil)
		Expect(ok).Should(BeFalse())
	})
})

var _ = Describe("normalizeTypeName", func() {
	It("returns ordinary names verbatim", func() {
		Expect(normalizeTypeName("Droid")).Should(Equal("Droid"))
		Expect(normalizeTypeName("")).Should(Equal(""))
		Expect(normalizeTypeName("a b c")).Should(Equal("a b c"))
	})

	It("strips the synthetic prefix from compound names", func() {
		// Drop the leading "(" and keep the bytes up to the first space.
		Expect(normalizeTypeName("(Foo) -> Bar")).Should(Equal("Foo)"))
		Expect(normalizeTypeName("(lambda x")).Should(Equal("lambda"))
	})

	It("keeps the whole remainder when no space follows", func() {
		Expect(normalizeTypeName("(Node")).Should(Equal("Node"))
	})
})

var _ = Describe("IsProtocol", func() {
	It("accepts interface types", func() {
		Expect(IsProtocol(reflect.TypeOf((*interface{ Name() string })(nil)).Elem())).Should(BeTrue())
	})

	It("rejects concrete types and pointers to interfaces", func() {
		Expect(IsProtocol(reflect.TypeOf(node{}))).Should(BeFalse())
		Expect(IsProtocol(reflect.TypeOf((*interface{ Name() string })(nil)))).Should(BeFalse())
		Expect(IsProtocol(nil)).Should(BeFalse())
	})
})

var _ = Describe("representable", func() {
	It("accepts value kinds", func() {
		Expect(representable(reflect.TypeOf(int(0)))).Should(BeTrue())
		Expect(representable(reflect.TypeOf(node{}))).Should(BeTrue())
		Expect(representable(reflect.TypeOf(map[string]int(nil)))).Should(BeTrue())
	})

	It("accepts protocols", func() {
		Expect(representable(reflect.TypeOf((*interface{ Name() string })(nil)).Elem())).Should(BeTrue())
	})

	It("checks the innermost leaf under the wrappers", func() {
		Expect(representable(reflect.TypeOf([]*int(nil)))).Should(BeTrue())
		Expect(representable(reflect.TypeOf([]chan int(nil)))).Should(BeFalse())
		Expect(representable(reflect.TypeOf((*chan int)(nil)))).Should(BeFalse())
	})

	It("rejects kinds with no value representation", func() {
		Expect(representable(reflect.TypeOf(make(chan int)))).Should(BeFalse())
		Expect(representable(reflect.TypeOf((func(int) int)(nil)))).Should(BeFalse())
		Expect(representable(reflect.TypeOf(unsafe.Pointer(nil)))).Should(BeFalse())
		Expect(representable(nil)).Should(BeFalse())
	})

	It("unwraps reference thunks before judging", func() {
		Expect(representable(reflect.TypeOf((func() node)(nil)))).Should(BeTrue())
	})
})
