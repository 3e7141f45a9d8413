package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvsort/sorting"
)

func TestExchange_SwapsOnlyTwoPositions(t *testing.T) {
	seq := []int{10, 20, 30, 40}
	sorting.Exchange(seq, 0, 3)
	assert.Equal(t, []int{40, 20, 30, 10}, seq)

	sorting.Exchange(seq, 2, 1)
	assert.Equal(t, []int{40, 30, 20, 10}, seq)
}

func TestExchange_SameIndexIsNoop(t *testing.T) {
	seq := []string{"a", "b"}
	sorting.Exchange(seq, 1, 1)
	assert.Equal(t, []string{"a", "b"}, seq)
}

func TestExchange_VisibleThroughSubslice(t *testing.T) {
	base := []int{1, 2, 3, 4, 5}
	sorting.Exchange(base[1:4], 0, 2)
	assert.Equal(t, []int{1, 4, 3, 2, 5}, base)
}

func TestExchange_OutOfRangePanics(t *testing.T) {
	cases := []struct {
		name string
		i, j int
	}{
		{"negative i", -1, 0},
		{"negative j", 0, -1},
		{"i past end", 3, 0},
		{"j past end", 0, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seq := []int{1, 2, 3}
			err := recoverError(t, func() { sorting.Exchange(seq, tc.i, tc.j) })
			assert.ErrorIs(t, err, sorting.ErrIndexOutOfRange)
			assert.Equal(t, []int{1, 2, 3}, seq, "a rejected exchange must not touch the slice")
		})
	}
}

func TestExchange_EmptySlicePanics(t *testing.T) {
	err := recoverError(t, func() { sorting.Exchange([]int{}, 0, 0) })
	assert.ErrorIs(t, err, sorting.ErrIndexOutOfRange)
}
