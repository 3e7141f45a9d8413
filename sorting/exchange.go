package sorting

// Exchange swaps seq[i] and seq[j] in place. All other positions are left
// untouched and i == j is a no-op.
//
// Out-of-range indices are a caller contract violation: Exchange panics with
// an error wrapping ErrIndexOutOfRange before touching the slice.
//
// Complexity: O(1).
func Exchange[T any](seq []T, i, j int) {
	n := len(seq)
	checkIndex("exchange", i, n)
	checkIndex("exchange", j, n)
	seq[i], seq[j] = seq[j], seq[i]
}

// exchange is the unchecked, instrumented swap used by the algorithms whose
// loop bounds already guarantee valid indices.
func exchange[T any](seq []T, i, j int, rec recorder) {
	rec.exchange()
	seq[i], seq[j] = seq[j], seq[i]
}
