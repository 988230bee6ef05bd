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

import "testing"

func TestStatsCountsMatchTree(t *testing.T) {
	n := NewOrdered[int](3)
	for i := 0; i < 100; i++ {
		n.Insert(i)
	}
	s := n.Stats()

	if s.Keys != n.Size() {
		t.Errorf("Stats.Keys = %d, want %d", s.Keys, n.Size())
	}
	if s.Height != n.Height() {
		t.Errorf("Stats.Height = %d, want %d", s.Height, n.Height())
	}
	if s.Nodes != s.Leaves+s.InternalNodes {
		t.Errorf("Stats.Nodes = %d, want Leaves+InternalNodes = %d", s.Nodes, s.Leaves+s.InternalNodes)
	}
	if s.ApproxBytes == 0 {
		t.Errorf("Stats.ApproxBytes = 0, want > 0 for a non-empty tree")
	}
}

func TestStatsEmptyTree(t *testing.T) {
	n := NewOrdered[int](3)
	s := n.Stats()
	if s.Nodes != 0 || s.Keys != 0 || s.Height != 0 {
		t.Errorf("Stats on empty tree = %+v, want all zero", s)
	}
}
