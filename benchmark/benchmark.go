// benchmark.go
// Timing harness for sort_bench
// Measures one sort invocation on a private copy of a dataset

package benchmark

import (
	"os"
	"runtime"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"sort_bench_go/sorting"
)

// Measure sorts a copy of data with alg and returns the elapsed wall-clock
// seconds. data itself is never modified.
func Measure(alg sorting.Algorithm, data []int) float64 {
	return MeasureFunc(alg.Func(), data)
}

// MeasureFunc is Measure for an arbitrary sort function.
func MeasureFunc(sort sorting.SortFunc, data []int) float64 {
	work := slices.Clone(data)		// copy happens before the clock starts

	start := time.Now()
	sort(work)
	elapsed := time.Since(start)	// monotonic reading

	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed.Seconds()
}

// Environment describes the host a sweep ran on, for repeatability.
type Environment struct {
	Timestamp time.Time
	Hostname  string
	GoVersion string
	OS        string
	Arch      string
	NumCPU    int
}

// Snapshot captures the current host and runtime information.
func Snapshot() Environment {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	return Environment{
		Timestamp: time.Now(),
		Hostname:  host,
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		NumCPU:    runtime.NumCPU(),
	}
}

// Log reports the snapshot through logger.
func (e Environment) Log(logger *log.Logger) {
	logger.Info("environment",
		"timestamp", e.Timestamp.Format(time.RFC1123),
		"hostname", e.Hostname,
		"go", e.GoVersion,
		"os/arch", e.OS+"/"+e.Arch,
		"cpus", e.NumCPU,
	)
}
