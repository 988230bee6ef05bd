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

// Package btree implements an in-memory, ordered B-tree with multiset
// semantics: duplicate keys are permitted and are all retained.
//
// A tree is created with NewOrdered (for key types with a natural `<`
// ordering) or New (for any key type paired with an explicit Comparator).
// Insert, Remove and Contains run in O(log n); iteration via Find/Begin
// visits keys in non-decreasing order using an explicit descent stack
// rather than recursion.
//
// A *BTree is not safe for concurrent use, and must not be copied after
// first use; mutating it invalidates any outstanding Iterator.
package btree
