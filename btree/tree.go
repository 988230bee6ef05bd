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

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// BTree is an in-memory, ordered B-tree over keys of type T, with
// multiset semantics (duplicate keys are permitted and retained). It
// owns a single root node plus a cached node capacity and comparator.
//
// The zero value is not usable; construct with New or NewOrdered. A
// *BTree must not be copied after first use (see noCopy) and is not
// safe for concurrent use.
type BTree[T any] struct {
	noCopy noCopy

	root    node[T]
	cmp     Comparator[T]
	order   int
	maxKeys int
	minKeys int
	size    int
	height  int
}

// New constructs an empty tree of the given order (fan-out), ordering
// keys with cmp. order must be at least 3; New panics otherwise, since
// this is a constructor precondition rather than a fallible operation.
func New[T any](order int, cmp Comparator[T]) *BTree[T] {
	if order < 3 {
		panic(fmt.Sprintf("btree: order must be >= 3, got %d", order))
	}
	maxKeys := order - 1
	return &BTree[T]{
		cmp:     cmp,
		order:   order,
		maxKeys: maxKeys,
		minKeys: maxKeys / 2,
	}
}

// NewOrdered constructs an empty tree over a key type with a natural
// `<` ordering, using golang.org/x/exp/constraints.Ordered in place of
// an explicit Comparator.
func NewOrdered[T constraints.Ordered](order int) *BTree[T] {
	return New[T](order, orderedComparator[T]{})
}

// Size returns the number of keys currently stored, counting
// duplicates. O(1).
func (t *BTree[T]) Size() int { return t.size }

// Empty reports whether the tree holds no keys.
func (t *BTree[T]) Empty() bool { return t.root == nil }

// Height returns the number of nodes on any root-to-leaf path: 0 for an
// empty tree, 1 for a tree with only a root leaf.
func (t *BTree[T]) Height() int { return t.height }

// Clear removes every key, releasing the entire node tree.
func (t *BTree[T]) Clear() {
	t.root = nil
	t.size = 0
	t.height = 0
}

// Insert adds key to the tree. Duplicate keys are permitted; inserting
// an already-present key adds another occurrence. Insert never fails.
func (t *BTree[T]) Insert(key T) {
	if t.root == nil {
		leaf := newLeafNode[T](t.maxKeys)
		leaf.keys = append(leaf.keys, key)
		t.root = leaf
		t.size = 1
		t.height = 1
		return
	}
	if t.root.size() == t.maxKeys {
		newRoot := newInnerNode[T](t.maxKeys)
		newRoot.children = append(newRoot.children, t.root)
		middle, right := t.root.split()
		newRoot.keys = append(newRoot.keys, middle)
		newRoot.children = append(newRoot.children, right)
		t.root = newRoot
		t.height++
	}
	t.root.insertNonFull(t.cmp, key)
	t.size++
}

// Remove deletes one occurrence of key, if present, and reports whether
// a matching key was found. Never fails; removing an absent key returns
// false and leaves the tree unchanged.
func (t *BTree[T]) Remove(key T) bool {
	if t.root == nil {
		return false
	}
	removed := t.root.remove(t.cmp, key)
	if !removed {
		return false
	}
	t.size--
	t.collapseRoot()
	return true
}

// collapseRoot restores the invariant that a non-empty tree's root
// holds at least one key, after a removal may have emptied it. An
// emptied leaf root leaves the tree empty; an emptied inner root is
// replaced by its one remaining child, shrinking the tree's height.
func (t *BTree[T]) collapseRoot() {
	if t.root.size() > 0 {
		return
	}
	if t.root.isLeaf() {
		t.root = nil
		t.height = 0
		return
	}
	t.root = t.root.childAt(0)
	t.height--
}

// Contains reports whether key is present in the tree.
func (t *BTree[T]) Contains(key T) bool {
	n := t.root
	for n != nil {
		idx, found := n.locate(t.cmp, key)
		if found {
			return true
		}
		if n.isLeaf() {
			return false
		}
		n = n.childAt(idx)
	}
	return false
}

// Find returns an iterator positioned at the first occurrence of key in
// sorted order, or at End() if key is absent. Forward iteration from it
// visits every remaining key, including any further occurrences of key,
// in sorted order.
func (t *BTree[T]) Find(key T) *Iterator[T] {
	return newFindIterator(t.root, t.cmp, key)
}

// Begin returns an iterator positioned at the smallest key, or at End()
// if the tree is empty.
func (t *BTree[T]) Begin() *Iterator[T] {
	return newBeginIterator(t.root)
}

// End returns an iterator past the last key.
func (t *BTree[T]) End() *Iterator[T] {
	return newEndIterator[T]()
}

// Min returns the smallest key. It fails with ErrEmptyTree on an empty
// tree.
func (t *BTree[T]) Min() (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	return t.root.getMin(), nil
}

// Max returns the largest key. It fails with ErrEmptyTree on an empty
// tree.
func (t *BTree[T]) Max() (T, error) {
	var zero T
	if t.root == nil {
		return zero, ErrEmptyTree
	}
	return t.root.getMax(), nil
}

// ForEach applies visitor to every key in sorted order, stopping and
// propagating the first error it returns. The tree is not modified.
func (t *BTree[T]) ForEach(visitor Visitor[T]) error {
	if t.root == nil {
		return nil
	}
	return t.root.forEach(visitor.Visit)
}

// ToSequence materializes every key, in sorted order, into a freshly
// allocated slice of length Size().
func (t *BTree[T]) ToSequence() []T {
	out := make([]T, 0, t.size)
	_ = t.ForEach(VisitorFunc[T](func(key T) error {
		out = append(out, key)
		return nil
	}))
	return out
}

// Traverse writes every key to sink in sorted order, separated by single
// spaces, with a single newline after the last key in place of a space.
// A failure from sink is propagated unchanged; the tree is not modified.
func (t *BTree[T]) Traverse(sink TextSink) error {
	remaining := t.size
	return t.ForEach(VisitorFunc[T](func(key T) error {
		remaining--
		sep := " "
		if remaining == 0 {
			sep = "\n"
		}
		if _, err := sink.WriteString(fmt.Sprintf("%v%s", key, sep)); err != nil {
			return err
		}
		return nil
	}))
}

// CheckInvariants validates every node's structural invariants (key
// order, fill bounds, fan-out, separator placement, and equal leaf
// depth), returning the first violation found, if any. Exposed as a
// public diagnostic so property tests in any importing package can use
// it.
func (t *BTree[T]) CheckInvariants() error {
	if t.root == nil {
		return nil
	}
	expectedLeafDepth := -1
	return t.root.checkInvariants(t.cmp, t.minKeys, t.maxKeys, 0, &expectedLeafDepth, true)
}

// Stats reports the current shape and approximate memory footprint of
// the tree.
func (t *BTree[T]) Stats() Stats {
	var s Stats
	s.Height = t.height
	if t.root != nil {
		t.root.footprint(&s)
	}
	return s
}

// Clone returns a deep copy of the tree: an independent node structure
// holding the same keys in the same shape.
func (t *BTree[T]) Clone() *BTree[T] {
	clone := &BTree[T]{
		cmp:     t.cmp,
		order:   t.order,
		maxKeys: t.maxKeys,
		minKeys: t.minKeys,
		size:    t.size,
		height:  t.height,
	}
	if t.root != nil {
		clone.root = cloneNode(t.root, t.maxKeys)
	}
	return clone
}

func cloneNode[T any](n node[T], maxKeys int) node[T] {
	if n.isLeaf() {
		src := n.(*leafNode[T])
		dst := newLeafNode[T](maxKeys)
		dst.keys = append(dst.keys, src.keys...)
		return dst
	}
	src := n.(*innerNode[T])
	dst := newInnerNode[T](maxKeys)
	dst.keys = append(dst.keys, src.keys...)
	for _, child := range src.children {
		dst.children = append(dst.children, cloneNode(child, maxKeys))
	}
	return dst
}

// MoveTo transfers ownership of t's contents into dst and resets t to
// empty. Self-move (t == dst) is a no-op.
func (t *BTree[T]) MoveTo(dst *BTree[T]) {
	if t == dst {
		return
	}
	dst.root = t.root
	dst.cmp = t.cmp
	dst.order = t.order
	dst.maxKeys = t.maxKeys
	dst.minKeys = t.minKeys
	dst.size = t.size
	dst.height = t.height

	t.root = nil
	t.size = 0
	t.height = 0
}
