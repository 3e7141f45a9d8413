package search

import (
	"errors"
	"fmt"
)

// NotFound is the index reported together with found == false.
const NotFound = -1

// ErrIndexOutOfRange indicates a search range bound outside [0, len(seq)).
// It is only ever used as a (wrapped) panic payload.
var ErrIndexOutOfRange = errors.New("search: index out of range")

// checkRange panics unless [start, end] lies within a sequence of length n.
// Empty ranges (start > end) are always valid.
func checkRange(start, end, n int) {
	if start > end {
		return
	}
	if start < 0 || end >= n {
		panic(fmt.Errorf("%w: range [%d, %d] with length %d", ErrIndexOutOfRange, start, end, n))
	}
}
