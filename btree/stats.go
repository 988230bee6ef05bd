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

// Stats summarizes the shape and approximate memory footprint of a
// tree: node/leaf/internal counts, total key count, height, and an
// approximate byte size.
type Stats struct {
	Nodes         int
	Leaves        int
	InternalNodes int
	Keys          int
	Height        int
	ApproxBytes   uintptr
}

func (s Stats) String() string {
	return fmt.Sprintf("btree.Stats{Nodes: %d, Leaves: %d, InternalNodes: %d, Keys: %d, Height: %d, ApproxBytes: %d}",
		s.Nodes, s.Leaves, s.InternalNodes, s.Keys, s.Height, s.ApproxBytes)
}
