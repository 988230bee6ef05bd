// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.
//

package btree

//go:generate mockgen -source sink.go -destination sink_mocks.go -package btree

// Visitor is applied to each key visited by ForEach, in sorted order. An
// error returned by Visit halts the traversal and is propagated to the
// caller of ForEach unchanged.
type Visitor[T any] interface {
	Visit(key T) error
}

// VisitorFunc adapts a plain function to a Visitor.
type VisitorFunc[T any] func(key T) error

func (f VisitorFunc[T]) Visit(key T) error { return f(key) }

// TextSink is the external collaborator Traverse writes keys to: a
// single "write-a-key" hook. The core appends a single space after each
// key but the last, and a single newline after the last.
type TextSink interface {
	WriteString(s string) (int, error)
}
