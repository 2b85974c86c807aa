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
	"strings"
)

// normalizeTypeName strips the synthetic prefix from compound, closure-style type names so the
// remaining text is usable as a schema type name. A name beginning with "(" drops the leading
// character and keeps the bytes up to (but excluding) the first space; any other name is returned
// verbatim.
func normalizeTypeName(name string) string {
	if !strings.HasPrefix(name, "(") {
		return name
	}
	name = name[1:]
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

// referenceName returns the normalized schema type name for the target of a forward reference.
func referenceName(t reflect.Type) string {
	if name := t.Name(); len(name) > 0 {
		return normalizeTypeName(name)
	}
	return normalizeTypeName(t.String())
}
