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
	"fmt"
	"testing"
)

var boolSink bool

func BenchmarkInsert(b *testing.B) {
	for _, size := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("size %d", size), func(b *testing.B) {
			b.StopTimer()
			n := NewOrdered[int](32)
			for i := 0; i < size; i++ {
				n.Insert(i)
			}
			b.StartTimer()

			for i := 0; i < b.N; i++ {
				n.Insert(size + i)
			}
		})
	}
}

func BenchmarkContainsHit(b *testing.B) {
	for _, size := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("size %d", size), func(b *testing.B) {
			b.StopTimer()
			n := NewOrdered[int](32)
			for i := 0; i < size; i++ {
				n.Insert(i)
			}
			b.StartTimer()

			for i := 0; i < b.N; i++ {
				boolSink = n.Contains(i % size)
			}
		})
	}
}

func BenchmarkContainsMiss(b *testing.B) {
	for _, size := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("size %d", size), func(b *testing.B) {
			b.StopTimer()
			n := NewOrdered[int](32)
			for i := 0; i < size; i++ {
				n.Insert(i)
			}
			b.StartTimer()

			for i := 0; i < b.N; i++ {
				boolSink = n.Contains(size + i)
			}
		})
	}
}

func BenchmarkIteratorFullScan(b *testing.B) {
	for _, size := range []int{1_000, 100_000} {
		b.Run(fmt.Sprintf("size %d", size), func(b *testing.B) {
			n := NewOrdered[int](32)
			for i := 0; i < size; i++ {
				n.Insert(i)
			}
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				count := 0
				for it := n.Begin(); it.Valid(); it.Next() {
					count++
				}
				if count != size {
					b.Fatalf("iterated %d keys, want %d", count, size)
				}
			}
		})
	}
}
