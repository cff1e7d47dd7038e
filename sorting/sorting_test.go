package sorting

import (
	"cmp"
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/pingcap/check"
)

var _ = check.Suite(&sortTestSuite{})

func TestT(t *testing.T) {
	check.TestingT(t)
}

type sortTestSuite struct {
	rng *rand.Rand
}

func (s *sortTestSuite) SetUpTest(c *check.C) {
	s.rng = rand.New(rand.NewPCG(42, 1024))
}

func (s *sortTestSuite) prepare(n, bound int) []int {
	src := make([]int, n)
	for i := range src {
		src[i] = s.rng.IntN(bound)
	}
	return src
}

// checkSorts runs every algorithm on a copy of src and compares with slices.Sort.
func (s *sortTestSuite) checkSorts(c *check.C, src []int) {
	expect := slices.Clone(src)
	slices.Sort(expect)
	for _, alg := range All() {
		got := slices.Clone(src)
		alg.Sort(got)
		c.Assert(got, check.DeepEquals, expect, check.Commentf("%s on %d elements", alg, len(src)))
	}
}

func (s *sortTestSuite) TestRandomLengths(c *check.C) {
	lens := []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 100, 1000, 1 << 11}
	for _, n := range lens {
		s.checkSorts(c, s.prepare(n, n))
	}
}

func (s *sortTestSuite) TestWideRange(c *check.C) {
	s.checkSorts(c, s.prepare(500, 1<<30))
}

func (s *sortTestSuite) TestNegatives(c *check.C) {
	s.checkSorts(c, []int{3, -1, 0, -7, 12, -7, 5, 2, -100})
}

func (s *sortTestSuite) TestAdversarial(c *check.C) {
	ascending := make([]int, 512)
	descending := make([]int, 512)
	for i := range ascending {
		ascending[i] = i
		descending[i] = len(descending) - i
	}
	equal := slices.Repeat([]int{4}, 300)
	sawtooth := make([]int, 300)
	for i := range sawtooth {
		sawtooth[i] = i % 7
	}

	for _, src := range [][]int{ascending, descending, equal, sawtooth} {
		s.checkSorts(c, src)
	}
}

func (s *sortTestSuite) TestBoundaries(c *check.C) {
	for _, alg := range All() {
		empty := []int{}
		alg.Sort(empty)
		c.Assert(empty, check.DeepEquals, []int{}, check.Commentf("%s", alg))

		one := []int{7}
		alg.Sort(one)
		c.Assert(one, check.DeepEquals, []int{7}, check.Commentf("%s", alg))

		var none []int
		alg.Sort(none)
		c.Assert(len(none), check.Equals, 0)
	}
}

func (s *sortTestSuite) TestIdempotent(c *check.C) {
	sorted := s.prepare(2000, 50)
	slices.Sort(sorted)
	for _, alg := range All() {
		got := slices.Clone(sorted)
		alg.Sort(got)
		c.Assert(got, check.DeepEquals, sorted, check.Commentf("%s", alg))
	}
}

func (s *sortTestSuite) TestMergeExample(c *check.C) {
	a := []int{5, 3, 8, 1}
	Merge(a)
	c.Assert(a, check.DeepEquals, []int{1, 3, 5, 8})
}

func (s *sortTestSuite) TestMergeStable(c *check.C) {
	type pair struct{ key, index int }
	src := make([]pair, 400)
	for i := range src {
		src[i] = pair{key: s.rng.IntN(10), index: i}
	}
	mergeFunc(src, func(x, y pair) int { return cmp.Compare(x.key, y.key) })

	for i := 1; i < len(src); i++ {
		prev, cur := src[i-1], src[i]
		c.Assert(prev.key <= cur.key, check.Equals, true)
		if prev.key == cur.key {
			c.Assert(prev.index < cur.index, check.Equals, true, check.Commentf("key %d", cur.key))
		}
	}
}

func (s *sortTestSuite) TestPartition(c *check.C) {
	a := []int{9, 1, 8, 2, 7, 3, 5}
	p := partition(a, 0, len(a)-1)
	c.Assert(a[p], check.Equals, 5)
	for i := 0; i < p; i++ {
		c.Assert(a[i] < 5, check.Equals, true)
	}
	for i := p + 1; i < len(a); i++ {
		c.Assert(a[i] >= 5, check.Equals, true)
	}
}

func (s *sortTestSuite) TestIsSorted(c *check.C) {
	c.Assert(IsSorted(nil), check.Equals, true)
	c.Assert(IsSorted([]int{1, 1, 2}), check.Equals, true)
	c.Assert(IsSorted([]int{2, 1}), check.Equals, false)
}

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    Algorithm
		wantErr bool
	}{
		{"Quick Sort", Quicksort, false},
		{"quick", Quicksort, false},
		{"quicksort", Quicksort, false},
		{"merge_sort", MergeSort, false},
		{"  HEAP  ", HeapSort, false},
		{"bubble-sort", BubbleSort, false},
		{"tim sort", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Lookup(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Lookup(%q) = %v, want error", tt.name, got)
				}
				if !errors.Is(err, ErrUnknownAlgorithm) {
					t.Errorf("error should wrap ErrUnknownAlgorithm, got: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) returned unexpected error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestAlgorithmString(t *testing.T) {
	t.Parallel()

	want := []string{"Quick Sort", "Merge Sort", "Heap Sort", "Bubble Sort"}
	for i, alg := range All() {
		if alg.String() != want[i] {
			t.Errorf("All()[%d].String() = %q, want %q", i, alg.String(), want[i])
		}
	}
	if got := Algorithm(9).String(); got != "Algorithm(9)" {
		t.Errorf("Algorithm(9).String() = %q", got)
	}
}
