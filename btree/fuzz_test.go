//
// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public Licence v3.
//

package btree

import (
	"slices"
	"sort"
	"testing"
)

// referenceMultiset is a deliberately naive sorted-slice multiset used
// to cross-check the tree under random operation sequences.
type referenceMultiset struct {
	values []int
}

func (r *referenceMultiset) insert(v int) {
	idx := sort.SearchInts(r.values, v)
	r.values = append(r.values, 0)
	copy(r.values[idx+1:], r.values[idx:])
	r.values[idx] = v
}

func (r *referenceMultiset) remove(v int) bool {
	idx := sort.SearchInts(r.values, v)
	if idx >= len(r.values) || r.values[idx] != v {
		return false
	}
	r.values = append(r.values[:idx], r.values[idx+1:]...)
	return true
}

// FuzzBTreeAgainstReferenceMultiset runs byte-driven random operation
// sequences against both the tree and referenceMultiset, checking that
// remove's return value, size, and to_sequence agree after every step.
// Expressed as a native Go fuzz test rather than a fixed-length loop so
// the corpus can discover new sequences.
func FuzzBTreeAgainstReferenceMultiset(f *testing.F) {
	f.Add([]byte{1, 10, 1, 20, 0, 10, 1, 20, 0, 20})
	f.Add([]byte{0, 5, 0, 5, 0, 5, 1, 5, 1, 5})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, ops []byte) {
		n := NewOrdered[int](4)
		ref := &referenceMultiset{}

		for i := 0; i+1 < len(ops); i += 2 {
			key := int(ops[i+1]) % 50
			insertOp := ops[i]%3 != 0 // ~2/3 insert, 1/3 remove

			if insertOp {
				n.Insert(key)
				ref.insert(key)
			} else {
				gotRemoved := n.Remove(key)
				wantRemoved := ref.remove(key)
				if gotRemoved != wantRemoved {
					t.Fatalf("remove(%d): tree=%v, reference=%v", key, gotRemoved, wantRemoved)
				}
			}

			if got, want := n.Size(), len(ref.values); got != want {
				t.Fatalf("size = %d, want %d", got, want)
			}
			if got, want := n.ToSequence(), ref.values; !slices.Equal(got, want) {
				t.Fatalf("to_sequence = %v, want %v", got, want)
			}
		}
		if err := n.CheckInvariants(); err != nil {
			t.Fatalf("CheckInvariants: %v", err)
		}
	})
}
