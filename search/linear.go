package search

// Linear scans seq front to back and returns the index of the first element
// equal to target. If none matches it returns (NotFound, false).
//
// Linear has no ordering precondition and is the oracle the binary searches
// are checked against.
//
// Complexity: O(n) time, O(1) space.
func Linear[T comparable](seq []T, target T) (int, bool) {
	for i := range seq {
		if seq[i] == target {
			return i, true
		}
	}
	return NotFound, false
}
