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

import "fmt"

// checkNodeShape validates the invariants common to every node
// regardless of kind: key order, fill bounds, capacity, and leaf depth.
func checkNodeShape[T any](n node[T], cmp Comparator[T], minKeys, maxKeys, depth int, expectedLeafDepth *int, isRoot bool) error {
	for i := 0; i+1 < n.size(); i++ {
		if cmp.Compare(n.keyAt(i), n.keyAt(i+1)) > 0 {
			return fmt.Errorf("btree: keys not ordered at depth %d: %v > %v", depth, n.keyAt(i), n.keyAt(i+1))
		}
	}

	if isRoot {
		if n.size() < 1 {
			return fmt.Errorf("btree: root has no keys")
		}
	} else if n.size() < minKeys {
		return fmt.Errorf("btree: node below minimum fill at depth %d: %d < %d", depth, n.size(), minKeys)
	}

	if n.size() > maxKeys {
		return fmt.Errorf("btree: node above maximum fill at depth %d: %d > %d", depth, n.size(), maxKeys)
	}

	if n.isLeaf() {
		if *expectedLeafDepth == -1 {
			*expectedLeafDepth = depth
		} else if depth != *expectedLeafDepth {
			return fmt.Errorf("btree: leaf at wrong depth: %d != %d", depth, *expectedLeafDepth)
		}
	}

	return nil
}
