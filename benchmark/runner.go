package benchmark

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"

	"github.com/charmbracelet/log"

	"sort_bench_go/sorting"
)

// Default dataset sizes.
const (
	SmallSize  = 1000
	MediumSize = 100000
	LargeSize  = 1000000
)

var (
	// ErrSink is the sentinel wrapped by SinkError.
	ErrSink = errors.New("result sink failure")
	// ErrMissingDataset is returned when the runner has no data for a planned size.
	ErrMissingDataset = errors.New("missing dataset")
)

type (
	// Record is one measurement: an algorithm timed once on one dataset.
	Record struct {
		Algorithm string
		Dataset   string
		Size      int
		Seconds   float64
	}

	// Sink receives the header once and then one row per Record, in sweep order.
	Sink interface {
		WriteHeader() error
		WriteRow(rec Record) error
	}

	// AlgorithmSink is a Sink that also wants to know where each algorithm's
	// block of rows begins and ends.
	AlgorithmSink interface {
		Sink
		BeginAlgorithm(name string) error
		EndAlgorithm(name string) error
	}

	// SinkError reports which write failed. It wraps ErrSink for errors.Is().
	SinkError struct {
		Op        string
		Algorithm string
		Size      int
		Err       error
	}

	// DatasetSpec is one dataset size and the algorithms that must not run on it.
	DatasetSpec struct {
		Label string
		Size  int
		Skip  []sorting.Algorithm
	}

	// Plan is the full sweep: algorithms in outer-loop order, datasets in inner-loop order.
	Plan struct {
		Algorithms []sorting.Algorithm
		Datasets   []DatasetSpec
	}

	// Runner executes a Plan against pre-generated datasets.
	Runner struct {
		plan     Plan
		datasets map[int][]int
		sink     Sink
		logger   *log.Logger
		measure  func(sorting.Algorithm, []int) float64
	}
)

func (e *SinkError) Error() string {
	switch {
	case e.Algorithm != "" && e.Size > 0:
		return fmt.Sprintf("%s (%s, size %d): %v", e.Op, e.Algorithm, e.Size, e.Err)
	case e.Algorithm != "":
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Algorithm, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying write error.
func (e *SinkError) Unwrap() error { return e.Err }

// Is matches ErrSink.
func (e *SinkError) Is(target error) bool { return target == ErrSink }

// Applies reports whether alg runs on this dataset.
func (d DatasetSpec) Applies(alg sorting.Algorithm) bool {
	return !slices.Contains(d.Skip, alg)
}

// DefaultPlan runs every algorithm on the small, medium and large datasets,
// except bubble sort, which only runs on the small one.
func DefaultPlan() Plan {
	quadratic := []sorting.Algorithm{sorting.BubbleSort}
	return Plan{
		Algorithms: sorting.All(),
		Datasets: []DatasetSpec{
			{Label: "Small", Size: SmallSize},
			{Label: "Medium", Size: MediumSize, Skip: quadratic},
			{Label: "Large", Size: LargeSize, Skip: quadratic},
		},
	}
}

// Sizes returns the distinct dataset sizes of the plan, in order.
func (p Plan) Sizes() []int {
	var sizes []int
	for _, d := range p.Datasets {
		if !slices.Contains(sizes, d.Size) {
			sizes = append(sizes, d.Size)
		}
	}
	return sizes
}

// Pairs returns how many records a full sweep of p emits.
func (p Plan) Pairs() int {
	n := 0
	for _, alg := range p.Algorithms {
		for _, d := range p.Datasets {
			if d.Applies(alg) {
				n++
			}
		}
	}
	return n
}

// NewRunner returns a Runner for plan. datasets maps every planned size to
// its canonical data, which the runner only ever copies. A nil logger discards.
func NewRunner(plan Plan, datasets map[int][]int, sink Sink, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		plan:     plan,
		datasets: datasets,
		sink:     sink,
		logger:   logger,
		measure:  Measure,
	}
}

// Run writes the header, then times every applicable (algorithm, dataset)
// pair and writes its record. The first sink error stops the sweep.
func (r *Runner) Run() error {
	for _, size := range r.plan.Sizes() {
		if _, ok := r.datasets[size]; !ok {
			return fmt.Errorf("%w for size %d", ErrMissingDataset, size)
		}
	}

	if err := r.sink.WriteHeader(); err != nil {
		return &SinkError{Op: "write header", Err: err}
	}

	boundaries, _ := r.sink.(AlgorithmSink)
	for _, alg := range r.plan.Algorithms {
		name := alg.String()
		r.logger.Debug("testing", "algorithm", name)

		if boundaries != nil {
			if err := boundaries.BeginAlgorithm(name); err != nil {
				return &SinkError{Op: "begin algorithm", Algorithm: name, Err: err}
			}
		}

		for _, d := range r.plan.Datasets {
			if !d.Applies(alg) {
				continue
			}
			runtime.GC()		// keep earlier garbage out of this measurement
			rec := Record{
				Algorithm: name,
				Dataset:   d.Label,
				Size:      d.Size,
				Seconds:   r.measure(alg, r.datasets[d.Size]),
			}
			r.logger.Debug("measured", "algorithm", name, "size", d.Size, "seconds", rec.Seconds)

			if err := r.sink.WriteRow(rec); err != nil {
				return &SinkError{Op: "write row", Algorithm: name, Size: d.Size, Err: err}
			}
		}

		if boundaries != nil {
			if err := boundaries.EndAlgorithm(name); err != nil {
				return &SinkError{Op: "end algorithm", Algorithm: name, Err: err}
			}
		}
	}
	return nil
}
