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

// node represents functionality common to leaf and inner nodes. Both
// leafNode and innerNode implement it; innerNode embeds leafNode and
// overrides most methods, since an inner node's keys behave exactly like
// a leaf's and only its children add new behavior.
//
// Keys within a node are never assumed unique: every locate/insert/remove
// primitive below must behave correctly for runs of equal keys.
type node[T any] interface {
	// size returns the number of keys stored directly in this node.
	size() int

	// isLeaf reports whether this node has no children.
	isLeaf() bool

	// keyAt returns the key at the given index.
	keyAt(i int) T

	// childAt returns the child at the given index. Only valid when
	// !isLeaf().
	childAt(i int) node[T]

	// locate finds the smallest index i with keys[i] >= key, using
	// binary search. found reports whether keys[i] == key. When no key
	// is >= key, locate returns (size(), false).
	locate(cmp Comparator[T], key T) (idx int, found bool)

	// insertNonFull inserts key into the subtree rooted at this node.
	// The caller guarantees this node is not at capacity (splitting, if
	// needed, happens preemptively one level up).
	insertNonFull(cmp Comparator[T], key T)

	// maxKeys and minKeys report this node's configured capacity bounds
	// (MAX_KEYS = ORDER-1, MIN_KEYS = MAX_KEYS/2), fixed at construction
	// and shared by every node in a tree.
	maxKeys() int
	minKeys() int

	// split divides a node holding exactly maxKeys()+1 keys into two
	// nodes, returning the promoted middle key and the new right
	// sibling. This node is shrunk in place to become the left sibling.
	split() (middle T, right node[T])

	// removeAt removes the key (and, for an inner node, the associated
	// child) at index and returns them. Rotation calls it through this
	// interface with index 0 or size()-1; leafNode.remove and mergeAt
	// also call the leaf version directly at an arbitrary index.
	removeAt(index int) (T, node[T])

	// insertAt inserts key at index, threading left/right child links
	// in for an inner node (nil is ignored; a leaf ignores both).
	insertAt(index int, key T, left, right node[T])

	// append concatenates key and the contents of sibling onto the end
	// of this node. Used to implement merge.
	append(key T, sibling node[T])

	// getMin/getMax return the left/rightmost key in this node's
	// subtree, the successor/predecessor source during deletion.
	getMin() T
	getMax() T

	// remove deletes one occurrence of key from this node's subtree.
	// Returns whether a matching key was found and removed.
	remove(cmp Comparator[T], key T) bool

	// forEach visits every key in this node's subtree in order, halting
	// and returning the first error a visitor reports.
	forEach(visit func(T) error) error

	// checkInvariants validates structural invariants (order, fill,
	// fan-out, balance) for this node's subtree. depth is this node's
	// depth from the root (root is 0); expectedLeafDepth records the
	// first observed leaf depth so every leaf can be checked against it.
	checkInvariants(cmp Comparator[T], minKeys, maxKeys, depth int, expectedLeafDepth *int, isRoot bool) error

	// footprint accumulates node/key/child counts and an approximate
	// byte size into acc.
	footprint(acc *Stats)
}

// locateIn performs the binary search shared by leaf and inner nodes: the
// smallest index i with keys[i] >= key. Factored out so both node kinds
// use the identical search rather than duplicating it.
func locateIn[T any](keys []T, cmp Comparator[T], key T) (int, bool) {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp.Compare(keys[mid], key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	found := lo < len(keys) && cmp.Compare(keys[lo], key) == 0
	return lo, found
}
