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

// constError is an error type usable to define immutable error constants.
type constError string

func (e constError) Error() string {
	return string(e)
}

// ErrEmptyTree is returned by Min and Max when called on an empty tree.
const ErrEmptyTree = constError("btree: tree is empty")
