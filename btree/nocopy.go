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

// noCopy is embedded in BTree so `go vet`'s copylocks analysis flags any
// accidental copy of a tree by value. The same marker idiom is used by
// sync.WaitGroup and sync.Mutex in the standard library.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
