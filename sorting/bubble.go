package sorting

import "cmp"

// Bubble sorts seq in ascending order by repeated adjacent exchanges and
// returns seq (the same backing array).
//
// Algorithm:
//  1. For every pass i in [0, n):
//  2. Scan every adjacent pair (j, j+1) for j in [0, n). The last position
//     has no right neighbour and is never "greater", so it is skipped.
//  3. Exchange the pair whenever seq[j] > seq[j+1].
//
// The scan window never shrinks and there is no early exit when a pass makes
// no exchange: every call performs exactly n·(n-1) comparisons.
// Stats.Swapped reports whether any exchange happened.
//
// Properties: in place, stable (equal neighbours are never exchanged).
//
// Complexity:
//   - Time:  Θ(n²) comparisons regardless of input order.
//   - Space: O(1).
func Bubble[T cmp.Ordered](seq []T, opts ...Option) []T {
	cfg := newOptions(opts)
	rec := recorder{s: cfg.Stats}

	n := len(seq)
	var i, j int
	for i = 0; i < n; i++ {
		rec.pass()
		for j = 0; j < n; j++ {
			// seq[n] does not exist: treat it as never smaller than seq[n-1].
			if j+1 >= n {
				continue
			}
			rec.compare()
			if seq[j] > seq[j+1] {
				exchange(seq, j, j+1, rec)
			}
		}
	}

	return seq
}
