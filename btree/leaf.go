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

import "unsafe"

// leafNode holds a node's keys directly; it has no children. Keys follow
// multiset semantics: every insert adds an occurrence and nothing is
// ever overwritten on a match.
type leafNode[T any] struct {
	keys    []T
	capKeys int // MAX_KEYS for every node in this tree, fixed at construction
}

func newLeafNode[T any](maxKeys int) *leafNode[T] {
	return &leafNode[T]{keys: make([]T, 0, maxKeys+1), capKeys: maxKeys}
}

func (n *leafNode[T]) size() int    { return len(n.keys) }
func (n *leafNode[T]) isLeaf() bool { return true }
func (n *leafNode[T]) keyAt(i int) T {
	return n.keys[i]
}
func (n *leafNode[T]) childAt(int) node[T] {
	panic("btree: childAt called on a leaf")
}

func (n *leafNode[T]) maxKeys() int { return n.capKeys }
func (n *leafNode[T]) minKeys() int { return n.capKeys / 2 }

func (n *leafNode[T]) locate(cmp Comparator[T], key T) (int, bool) {
	return locateIn(n.keys, cmp, key)
}

// insertNonFull inserts key at its lower-bound position among equal
// keys, an insert-before-equals convention chosen so insert and
// search/delete dispatch share the same locate primitive throughout.
func (n *leafNode[T]) insertNonFull(cmp Comparator[T], key T) {
	idx, _ := n.locate(cmp, key)
	n.insertAt(idx, key, nil, nil)
}

func (n *leafNode[T]) split() (T, node[T]) {
	mid := n.capKeys / 2
	right := newLeafNode[T](n.capKeys)
	right.keys = append(right.keys, n.keys[mid+1:]...)
	middle := n.keys[mid]
	n.keys = n.keys[:mid:mid]
	return middle, right
}

func (n *leafNode[T]) removeAt(index int) (T, node[T]) {
	removed := n.keys[index]
	n.keys = append(n.keys[:index], n.keys[index+1:]...)
	return removed, nil
}

func (n *leafNode[T]) insertAt(index int, key T, _, _ node[T]) {
	var zero T
	n.keys = append(n.keys, zero)
	copy(n.keys[index+1:], n.keys[index:])
	n.keys[index] = key
}

func (n *leafNode[T]) append(key T, sibling node[T]) {
	n.keys = append(n.keys, key)
	n.keys = append(n.keys, sibling.(*leafNode[T]).keys...)
}

func (n *leafNode[T]) getMin() T { return n.keys[0] }
func (n *leafNode[T]) getMax() T { return n.keys[len(n.keys)-1] }

func (n *leafNode[T]) remove(cmp Comparator[T], key T) bool {
	idx, found := n.locate(cmp, key)
	if !found {
		return false
	}
	n.removeAt(idx)
	return true
}

func (n *leafNode[T]) forEach(visit func(T) error) error {
	for _, k := range n.keys {
		if err := visit(k); err != nil {
			return err
		}
	}
	return nil
}

func (n *leafNode[T]) checkInvariants(cmp Comparator[T], minKeys, maxKeys, depth int, expectedLeafDepth *int, isRoot bool) error {
	return checkNodeShape[T](n, cmp, minKeys, maxKeys, depth, expectedLeafDepth, isRoot)
}

func (n *leafNode[T]) footprint(acc *Stats) {
	acc.Nodes++
	acc.Leaves++
	acc.Keys += len(n.keys)
	var k T
	acc.ApproxBytes += unsafe.Sizeof(*n) + uintptr(len(n.keys))*unsafe.Sizeof(k)
}
