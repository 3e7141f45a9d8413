package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns what it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRun_AllAlgorithms(t *testing.T) {
	out, err := execute(t, "--size", "10", "--seed", "4", "--target", "7")
	require.NoError(t, err)

	for _, label := range []string{"Bubble Sort", "Quick Sort", "Insert Sort", "Merge Sort"} {
		assert.Contains(t, out, label+": 0,1,2,3,4,5,6,7,8,9\n")
	}
	assert.True(t, strings.HasPrefix(out, "Array: "))
	// Values of a permutation of 0..n-1 sit at their own index once sorted.
	assert.Contains(t, out, "\tFor Loop -> Matched: 7 at index 7\n")
	assert.Contains(t, out, "\tBinary Search -> Matched: 7 at index 7\n")
}

func TestRun_CycleGeneratorAndStats(t *testing.T) {
	out, err := execute(t, "-n", "6", "--generator", "cycle", "--algorithms", "bubble,merge", "--stats", "--target", "0")
	require.NoError(t, err)

	assert.Contains(t, out, "Bubble Sort: 0,1,2,3,4,5\n")
	assert.Contains(t, out, "Merge Sort: 0,1,2,3,4,5\n")
	assert.NotContains(t, out, "Quick Sort")
	assert.Contains(t, out, "\tcomparisons=30 ")
	assert.Contains(t, out, "Binary Search -> Matched: 0 at index 0")
}

func TestRun_MissingTarget(t *testing.T) {
	out, err := execute(t, "-n", "5", "--target", "99")
	require.NoError(t, err)
	assert.Contains(t, out, "\tFor Loop -> No match for 99\n")
	assert.Contains(t, out, "\tBinary Search -> No match for 99\n")
}

func TestRun_EmptyArray(t *testing.T) {
	out, err := execute(t, "-n", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Array: \n")
	assert.Contains(t, out, "Looking for: 0 in \n")
	assert.Contains(t, out, "Binary Search -> No match for 0")
}

func TestRun_Deterministic(t *testing.T) {
	a, err := execute(t, "-n", "20", "--seed", "9")
	require.NoError(t, err)
	b, err := execute(t, "-n", "20", "--seed", "9")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"negative size", []string{"-n", "-1"}, "--size must be non-negative"},
		{"unknown generator", []string{"--generator", "dice"}, "unknown generator"},
		{"unknown algorithm", []string{"--algorithms", "heap"}, "unknown algorithm"},
		{"positional args", []string{"extra"}, "unknown command"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestSelectAlgorithms_CanonicalOrder(t *testing.T) {
	got, err := selectAlgorithms([]string{"merge", "bubble"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "bubble", got[0].name)
	assert.Equal(t, "merge", got[1].name)
}
