package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/lvsort/internal/permutation"
	"github.com/katalvlaran/lvsort/search"
	"github.com/katalvlaran/lvsort/sorting"
)

// errUnsorted is returned when an algorithm's output fails the sortedness check.
var errUnsorted = errors.New("sortdemo: result is not sorted")

// algorithm binds a display name to a sort. In-place sorts receive a copy.
type algorithm struct {
	name  string
	label string
	run   func(seq []int, opts ...sorting.Option) []int
}

var algorithms = []algorithm{
	{name: "bubble", label: "Bubble Sort", run: sorting.Bubble[int]},
	{name: "quick", label: "Quick Sort", run: sorting.Quick[int]},
	{name: "insertion", label: "Insert Sort", run: sorting.Insertion[int]},
	{name: "merge", label: "Merge Sort", run: sorting.MergeSort[int]},
}

// config holds the parsed command-line flags.
type config struct {
	size       int
	seed       int64
	generator  string
	target     int
	algorithms []string
	stats      bool
}

func newRootCmd() *cobra.Command {
	cfg := config{}

	cmd := &cobra.Command{
		Use:   "sortdemo",
		Short: "Run the classic sorts and searches over a shuffled permutation",
		Long: "sortdemo builds a deterministic permutation of 0..n-1, sorts a copy with each\n" +
			"selected algorithm, then looks for a target with a linear scan and a binary search.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), cfg)
		},
	}
	bindFlags(cmd.Flags(), &cfg)

	return cmd
}

func bindFlags(fs *pflag.FlagSet, cfg *config) {
	fs.IntVarP(&cfg.size, "size", "n", 100, "length of the permutation")
	fs.Int64Var(&cfg.seed, "seed", permutation.DefaultSeed, "generator seed (0 selects the default seed)")
	fs.StringVar(&cfg.generator, "generator", "shuffle", "permutation generator: shuffle or cycle")
	fs.IntVar(&cfg.target, "target", -1, "value to look for (-1 picks one from the seed)")
	fs.StringSliceVar(&cfg.algorithms, "algorithms", lo.Map(algorithms, func(a algorithm, _ int) string { return a.name }),
		"comma-separated subset of bubble,quick,insertion,merge")
	fs.BoolVar(&cfg.stats, "stats", false, "print comparison and exchange counters per algorithm")
}

// selectAlgorithms returns the algorithms named in names, in canonical order.
func selectAlgorithms(names []string) ([]algorithm, error) {
	known := lo.Map(algorithms, func(a algorithm, _ int) string { return a.name })
	for _, n := range names {
		if !lo.Contains(known, n) {
			return nil, fmt.Errorf("sortdemo: unknown algorithm %q (want one of %s)", n, strings.Join(known, ","))
		}
	}
	return lo.Filter(algorithms, func(a algorithm, _ int) bool {
		return lo.Contains(names, a.name)
	}), nil
}

func run(w io.Writer, cfg config) error {
	if cfg.size < 0 {
		return fmt.Errorf("sortdemo: --size must be non-negative, got %d", cfg.size)
	}
	gen, err := permutation.ByName(cfg.generator)
	if err != nil {
		return err
	}
	selected, err := selectAlgorithms(cfg.algorithms)
	if err != nil {
		return err
	}

	array, err := gen(cfg.size, cfg.seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Array: %s\n\n", join(array))

	for _, a := range selected {
		var st sorting.Stats
		out := a.run(append([]int(nil), array...), sorting.WithStats(&st))
		if !lo.IsSorted(out) {
			return fmt.Errorf("%w: %s", errUnsorted, a.name)
		}
		fmt.Fprintf(w, "%s: %s\n", a.label, join(out))
		if cfg.stats {
			fmt.Fprintf(w, "\tcomparisons=%d exchanges=%d passes=%d depth=%d\n",
				st.Comparisons, st.Exchanges, st.Passes, st.MaxDepth)
		}
		fmt.Fprintln(w)
	}

	target := cfg.target
	if target < 0 {
		target = permutation.Target(cfg.size, cfg.seed)
	}
	sorted := sorting.Quick(append([]int(nil), array...))
	fmt.Fprintf(w, "Looking for: %d in %s\n", target, join(array))

	if i, ok := search.Linear(sorted, target); ok {
		fmt.Fprintf(w, "\tFor Loop -> Matched: %d at index %d\n", target, i)
	} else {
		fmt.Fprintf(w, "\tFor Loop -> No match for %d\n", target)
	}
	if i, ok := search.Binary(sorted, target); ok {
		fmt.Fprintf(w, "\tBinary Search -> Matched: %d at index %d\n", target, i)
	} else {
		fmt.Fprintf(w, "\tBinary Search -> No match for %d\n", target)
	}

	return nil
}

func join(seq []int) string {
	return strings.Join(lo.Map(seq, func(v int, _ int) string { return fmt.Sprint(v) }), ",")
}
