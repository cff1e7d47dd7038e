package sanity_check

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"sort_bench_go/config" // Version control file
	"sort_bench_go/ran_int_gen"
	"sort_bench_go/sorting"
)

// ErrMismatch is returned when an algorithm disagrees with the standard library sort.
var ErrMismatch = errors.New("sort result mismatch")

// Run sorts one random dataset of the given size with every algorithm and
// checks each result against slices.Sort, printing a line per algorithm.
func Run(w io.Writer, gen *ran_int_gen.Generator, size int) error {
	fmt.Fprintf(w, "Successfully running sort_bench! (%s)\n", config.Main_version)

	data, err := gen.Generate(size)
	if err != nil {
		return err
	}
	want := slices.Clone(data)
	slices.Sort(want)

	var failed []error
	for _, alg := range sorting.All() {
		got := slices.Clone(data)
		alg.Sort(got)
		if idx := firstDiff(got, want); idx >= 0 {
			fmt.Fprintf(w, "  %-12s FAIL (index %d: got %d, want %d)\n", alg, idx, got[idx], want[idx])
			failed = append(failed, fmt.Errorf("%w: %s at index %d", ErrMismatch, alg, idx))
			continue
		}
		fmt.Fprintf(w, "  %-12s ok (%d elements, seed %d)\n", alg, size, gen.Seed())
	}
	return errors.Join(failed...)
}

// firstDiff returns the first index where a and b differ, or -1. Both have equal length.
func firstDiff(a, b []int) int {
	for i := range a {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
