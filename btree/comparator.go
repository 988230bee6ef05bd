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

import "golang.org/x/exp/constraints"

// Comparator defines a total ordering of values of type T. Compare(a, b)
// returns a negative number when a < b, zero when a and b are equivalent
// (duplicates under this ordering), and a positive number when a > b.
// Comparator takes values rather than pointers, since B-tree keys are
// expected to be small, comparable values rather than large structs.
type Comparator[T any] interface {
	Compare(a, b T) int
}

// orderedComparator implements Comparator for any type with a natural `<`
// ordering, using golang.org/x/exp/constraints.Ordered.
type orderedComparator[T constraints.Ordered] struct{}

func (orderedComparator[T]) Compare(a, b T) int {
	switch {
	case a < b:
		return -1
	case b < a:
		return 1
	default:
		return 0
	}
}
