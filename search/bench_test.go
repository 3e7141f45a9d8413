package search_test

import (
	"fmt"
	"testing"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvsort/search"
)

func BenchmarkSearch(b *testing.B) {
	for _, n := range []int{64, 4096, 1 << 16} {
		seq := lo.Range(n)
		// Worst case for a linear scan: the last element.
		target := n - 1

		b.Run(fmt.Sprintf("Linear/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				search.Linear(seq, target)
			}
		})
		b.Run(fmt.Sprintf("Binary/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				search.Binary(seq, target)
			}
		})
		b.Run(fmt.Sprintf("BinaryRecursive/n=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				search.BinaryRecursive(seq, target, 0, n-1)
			}
		})
	}
}
