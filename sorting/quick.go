package sorting

import (
	"cmp"
	"fmt"
)

// Partition rearranges seq[low..high] around the pivot seq[high] using the
// Lomuto scheme and returns the pivot's final index p.
//
// Algorithm:
//  1. pivot := seq[high]; i := low.
//  2. For j in [low, high): if seq[j] <= pivot, exchange i and j, then i++.
//  3. Exchange i and high; return i.
//
// Postcondition: every element of seq[low:p] is <= seq[p], every element of
// seq[p+1:high+1] is > seq[p].
//
// Precondition: 0 <= low <= high < len(seq). A violation panics with an
// error wrapping ErrIndexOutOfRange.
//
// Complexity: Θ(high-low) comparisons, O(1) space.
func Partition[T cmp.Ordered](seq []T, low, high int, opts ...Option) int {
	checkRange("partition", low, high, len(seq))
	if low > high {
		panic(fmt.Errorf("%w: partition range [%d, %d] is empty", ErrIndexOutOfRange, low, high))
	}
	cfg := newOptions(opts)
	return partition(seq, low, high, recorder{s: cfg.Stats})
}

func partition[T cmp.Ordered](seq []T, low, high int, rec recorder) int {
	rec.pass()
	pivot := seq[high]
	i := low
	for j := low; j < high; j++ {
		rec.compare()
		if seq[j] <= pivot {
			exchange(seq, i, j, rec)
			i++
		}
	}
	exchange(seq, i, high, rec)

	return i
}

// Quick sorts seq in ascending order with Lomuto quicksort and returns seq.
// It is QuickRange(seq, 0, len(seq)-1, opts...).
func Quick[T cmp.Ordered](seq []T, opts ...Option) []T {
	return QuickRange(seq, 0, len(seq)-1, opts...)
}

// QuickRange sorts the closed range seq[start..end] in place and returns seq.
//
// Base case: start >= end (empty or single-element range) returns seq
// unchanged. Otherwise p := Partition(seq, start, end) and both sides
// [start, p-1] and [p+1, end] are sorted.
//
// The pivot is always the last element of the range, so already-sorted
// input is the Θ(n²) worst case. To keep the stack bounded on such input
// only the smaller side is sorted recursively; the larger side is handled
// by the enclosing loop. Recursion depth is therefore O(log n) while the
// sequence of partitions is exactly that of the plain two-call recursion.
//
// Properties: in place, not stable.
//
// Bounds on a non-empty range must satisfy 0 <= start and end < len(seq);
// otherwise QuickRange panics with an error wrapping ErrIndexOutOfRange.
//
// Complexity:
//   - Time:  O(n log n) average, O(n²) worst case.
//   - Space: O(log n) stack.
func QuickRange[T cmp.Ordered](seq []T, start, end int, opts ...Option) []T {
	if start >= end {
		return seq
	}
	checkRange("quicksort", start, end, len(seq))

	cfg := newOptions(opts)
	quickSort(seq, start, end, 1, recorder{s: cfg.Stats})

	return seq
}

func quickSort[T cmp.Ordered](seq []T, start, end, depth int, rec recorder) {
	rec.depth(depth)
	for start < end {
		p := partition(seq, start, end, rec)
		// Recurse on the smaller side, iterate on the larger one.
		if p-start < end-p {
			quickSort(seq, start, p-1, depth+1, rec)
			start = p + 1
		} else {
			quickSort(seq, p+1, end, depth+1, rec)
			end = p - 1
		}
	}
}

// checkRange validates both bounds of a closed range against length n.
func checkRange(op string, low, high, n int) {
	checkIndex(op, low, n)
	checkIndex(op, high, n)
}
