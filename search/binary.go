package search

import "cmp"

// Binary searches the whole of seq for target. It is
// BinaryRange(seq, target, 0, len(seq)-1).
func Binary[T cmp.Ordered](seq []T, target T) (int, bool) {
	return BinaryRange(seq, target, 0, len(seq)-1)
}

// Contains reports whether target occurs in the ascending slice seq.
func Contains[T cmp.Ordered](seq []T, target T) bool {
	_, ok := Binary(seq, target)
	return ok
}

// BinaryRange searches the closed range seq[start..end], which must be sorted
// ascending, and returns the index of an element equal to target.
//
// Steps:
//  1. If start > end the range is empty: (NotFound, false).
//  2. mid := start + (end-start)/2, which is floor((start+end)/2) without
//     the overflow of the sum.
//  3. seq[mid] == target: found at mid.
//  4. seq[mid] > target: continue in [start, mid-1]; otherwise [mid+1, end].
//
// With duplicates any matching index may be reported, not necessarily the
// first. On unsorted input the result is unspecified: it may report either
// found or not found.
//
// Bounds of a non-empty range must satisfy 0 <= start and end < len(seq);
// otherwise BinaryRange panics with an error wrapping ErrIndexOutOfRange.
//
// Complexity: O(log n) time, O(1) space.
func BinaryRange[T cmp.Ordered](seq []T, target T, start, end int) (int, bool) {
	checkRange(start, end, len(seq))

	for start <= end {
		mid := start + (end-start)/2
		switch {
		case seq[mid] == target:
			return mid, true
		case seq[mid] > target:
			end = mid - 1
		default:
			start = mid + 1
		}
	}

	return NotFound, false
}

// BinaryRecursive is the recursive formulation of BinaryRange. It probes the
// same midpoints in the same order and therefore returns identical results,
// but uses O(log n) stack.
func BinaryRecursive[T cmp.Ordered](seq []T, target T, start, end int) (int, bool) {
	checkRange(start, end, len(seq))
	return binaryRecursive(seq, target, start, end)
}

func binaryRecursive[T cmp.Ordered](seq []T, target T, start, end int) (int, bool) {
	if start > end {
		return NotFound, false
	}

	mid := start + (end-start)/2
	if seq[mid] == target {
		return mid, true
	}
	if seq[mid] > target {
		return binaryRecursive(seq, target, start, mid-1)
	}
	return binaryRecursive(seq, target, mid+1, end)
}
