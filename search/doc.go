// Package search provides linear and binary search over slices.
//
// Overview:
//
//   - Linear scans front to back and works on any slice of comparable values.
//   - Binary / BinaryRange halve a closed index range [start, end] of an
//     ascending slice until the target is hit or the range is empty.
//   - BinaryRecursive is the same search written recursively, for reading.
//   - Contains is a yes/no wrapper over Binary.
//
// Result:
//
//	Every search returns (index, found). On a miss the index is NotFound (-1).
//	The index, not the matched value, is reported: for a value search the
//	caller already holds the target.
//
// Preconditions:
//
//   - Binary* require seq[start..end] sorted ascending. On unsorted input the
//     result is unspecified; a miss is not guaranteed.
//   - start > end is an empty range and yields not-found, never a panic.
//   - A non-empty range reaching outside the slice panics with an error
//     wrapping ErrIndexOutOfRange.
//
// Complexity:
//
//   - Linear:          O(n) time, O(1) space.
//   - BinaryRange:     O(log n) time, O(1) space (iterative).
//   - BinaryRecursive: O(log n) time, O(log n) stack.
package search
