package sorting_test

import (
	"math"
	"testing"
)

// recoverError runs f and returns the error it panicked with. The test fails
// if f returns normally or panics with a non-error value.
func recoverError(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic, got none")
		}
		e, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic value, got %T: %v", r, r)
		}
		err = e
	}()
	f()
	return nil
}

// negZero is -0.0: equal to 0.0 under ==, < and >, but observable with math.Signbit.
var negZero = math.Copysign(0, -1)

// signs reports the sign bit of every element, which tracks where each of
// several equal zeros ended up.
func signs(seq []float64) []bool {
	out := make([]bool, len(seq))
	for i, v := range seq {
		out[i] = math.Signbit(v)
	}
	return out
}
