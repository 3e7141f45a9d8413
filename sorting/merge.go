package sorting

import "cmp"

// Merge combines two ascending slices into a freshly allocated ascending slice
// of length len(left)+len(right). Neither input is modified.
//
// Both inputs are walked with index cursors. The front of left is taken only
// when it is strictly less than the front of right; on a tie the element from
// right goes first. Whatever remains in either input is appended unchanged.
//
// Complexity: O(len(left)+len(right)) time and space.
func Merge[T cmp.Ordered](left, right []T) []T {
	return merge(left, right, recorder{})
}

func merge[T cmp.Ordered](left, right []T, rec recorder) []T {
	rec.pass()
	out := make([]T, 0, len(left)+len(right))

	var i, j int
	for i < len(left) && j < len(right) {
		rec.compare()
		if left[i] < right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

// MergeSort returns the elements of seq in ascending order.
//
// Sequences shorter than two elements are returned as-is (the same slice).
// Otherwise seq is split at len/2, each half is sorted recursively and the
// results are combined with Merge. The input is never modified; every merge
// step allocates its own output.
//
// Tie order: because Merge prefers right on equality, elements that compare
// equal come out in the reverse of their input order. MergeSort is therefore
// deterministic but not stable.
//
// Complexity:
//   - Time:  Θ(n log n).
//   - Space: O(n log n) total allocation, O(n) live; O(log n) stack.
func MergeSort[T cmp.Ordered](seq []T, opts ...Option) []T {
	cfg := newOptions(opts)
	return mergeSort(seq, 1, recorder{s: cfg.Stats})
}

func mergeSort[T cmp.Ordered](seq []T, depth int, rec recorder) []T {
	if len(seq) < 2 {
		return seq
	}
	rec.depth(depth)

	mid := len(seq) / 2
	left := mergeSort(seq[:mid], depth+1, rec)
	right := mergeSort(seq[mid:], depth+1, rec)

	return merge(left, right, rec)
}
