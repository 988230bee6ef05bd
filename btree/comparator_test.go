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

func TestOrderedComparator(t *testing.T) {
	cmp := orderedComparator[int]{}
	cases := []struct {
		a, b int
		want int
	}{
		{1, 2, -1},
		{2, 1, 1},
		{5, 5, 0},
	}
	for _, c := range cases {
		if got := cmp.Compare(c.a, c.b); got != c.want {
			t.Errorf("Compare(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestErrEmptyTreeMessage(t *testing.T) {
	if ErrEmptyTree.Error() != "btree: tree is empty" {
		t.Errorf("ErrEmptyTree.Error() = %q", ErrEmptyTree.Error())
	}
}
