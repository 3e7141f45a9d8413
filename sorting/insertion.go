package sorting

import "cmp"

// Insertion sorts seq in ascending order by growing a sorted prefix and
// returns seq (the same backing array).
//
// For each i in [1, n) the element at i is walked backwards with adjacent
// exchanges while its left neighbour is strictly greater. The walk stops at
// j == 0 or as soon as the pair is ordered, so equal elements never pass each
// other.
//
// Properties: in place, stable, adaptive (Θ(n) on sorted input).
//
// Complexity:
//   - Time:  O(n²) worst case, Θ(n) best case.
//   - Space: O(1).
func Insertion[T cmp.Ordered](seq []T, opts ...Option) []T {
	cfg := newOptions(opts)
	rec := recorder{s: cfg.Stats}

	for i := 1; i < len(seq); i++ {
		rec.pass()
		j := i
		for j > 0 {
			rec.compare()
			if !(seq[j-1] > seq[j]) {
				break
			}
			exchange(seq, j, j-1, rec)
			j--
		}
	}

	return seq
}
