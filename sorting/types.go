// Package sorting defines sentinel errors, instrumentation counters and
// functional options shared by every sort in this package.
package sorting

import (
	"errors"
	"fmt"
)

// Sentinel errors raised by the sorting primitives.
//
// Every algorithm here is a total function over well-formed input, so none of
// these values is ever returned. They are panic payloads (wrapped with
// fmt.Errorf) for broken index contracts; use errors.Is on the recovered value.
var (
	// ErrIndexOutOfRange indicates an index or range bound outside [0, len(seq)).
	ErrIndexOutOfRange = errors.New("sorting: index out of range")

	// ErrNilStats indicates that WithStats was given a nil *Stats.
	ErrNilStats = errors.New("sorting: stats sink is nil")
)

// Stats collects counters from a single sort invocation.
//
// Fields:
//   - Comparisons: element-to-element comparisons performed.
//   - Exchanges:   calls to Exchange (including i == j no-op swaps in Partition).
//   - Passes:      outer iterations: bubble passes, insertion steps,
//     partition calls (Quick) or merge calls (MergeSort).
//   - MaxDepth:    deepest recursion level reached (Quick, MergeSort); 0 otherwise.
//   - Swapped:     true if at least one exchange happened.
//
// Stats are cumulative: passing the same *Stats to several calls sums them.
type Stats struct {
	Comparisons int
	Exchanges   int
	Passes      int
	MaxDepth    int
	Swapped     bool
}

// Options configures a sort invocation.
type Options struct {
	Stats *Stats // optional counters sink; nil disables instrumentation
}

// Option represents a functional option for the sorts.
type Option func(*Options)

// WithStats records comparisons, exchanges, passes and recursion depth into s.
// Panics with ErrNilStats if s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic(ErrNilStats)
	}
	return func(o *Options) {
		o.Stats = s
	}
}

// DefaultOptions returns the zero-instrumentation configuration.
func DefaultOptions() Options {
	return Options{Stats: nil}
}

// newOptions applies opts in order over DefaultOptions.
func newOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// recorder is the nil-safe counting front end over Options.Stats.
type recorder struct {
	s *Stats
}

func (r recorder) compare() {
	if r.s != nil {
		r.s.Comparisons++
	}
}

func (r recorder) exchange() {
	if r.s != nil {
		r.s.Exchanges++
		r.s.Swapped = true
	}
}

func (r recorder) pass() {
	if r.s != nil {
		r.s.Passes++
	}
}

func (r recorder) depth(d int) {
	if r.s != nil && d > r.s.MaxDepth {
		r.s.MaxDepth = d
	}
}

// checkIndex panics with a wrapped ErrIndexOutOfRange if i is not a valid
// position in a sequence of length n.
func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Errorf("%w: %s index %d with length %d", ErrIndexOutOfRange, op, i, n))
	}
}
