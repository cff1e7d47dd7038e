// algorithm.go
// Named sorting algorithms benchmarked by sort_bench
// Every algorithm sorts a []int in place into non-decreasing order

package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by Lookup for names outside the closed set.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Algorithm identifies one of the benchmarked sorts.
type Algorithm int

const (
	Quicksort Algorithm = iota
	MergeSort
	HeapSort
	BubbleSort
)

// SortFunc is the uniform contract: sort a in place, ascending.
type SortFunc func(a []int)

var (
	names = [...]string{
		Quicksort:  "Quick Sort",
		MergeSort:  "Merge Sort",
		HeapSort:   "Heap Sort",
		BubbleSort: "Bubble Sort",
	}
	funcs = [...]SortFunc{
		Quicksort:  Quick,
		MergeSort:  Merge,
		HeapSort:   Heap,
		BubbleSort: Bubble,
	}
)

// All returns the algorithms in benchmark order.
func All() []Algorithm {
	return []Algorithm{Quicksort, MergeSort, HeapSort, BubbleSort}
}

func (a Algorithm) valid() bool {
	return a >= Quicksort && a <= BubbleSort
}

// String returns the display name used in console and CSV output.
func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return names[a]
}

// Func returns the sort function behind a.
func (a Algorithm) Func() SortFunc {
	if !a.valid() {
		panic(fmt.Sprintf("sorting: invalid algorithm %d", int(a)))
	}
	return funcs[a]
}

// Sort sorts data in place with a.
func (a Algorithm) Sort(data []int) {
	a.Func()(data)
}

// Lookup resolves a display name ("Heap Sort") or short name ("heap", "heapsort",
// "heap_sort") to its Algorithm. Matching ignores case.
func Lookup(name string) (Algorithm, error) {
	key := normalize(name)
	for _, alg := range All() {
		full := normalize(alg.String())
		if key == full || key == strings.TrimSuffix(full, "sort") {
			return alg, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func normalize(name string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(name)))
}

// IsSorted reports whether a is in non-decreasing order.
func IsSorted(a []int) bool {
	for i := 1; i < len(a); i++ {
		if a[i-1] > a[i] {
			return false
		}
	}
	return true
}
