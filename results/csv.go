package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"sort_bench_go/benchmark"
)

// DefaultCSVPath is where results go when no output path is configured.
const DefaultCSVPath = "performance_results.csv"

// Header is the column row of the results table.
var Header = []string{"Algorithm", "Dataset Size", "Time (seconds)"}

// CSV writes one comma-separated row per record. Every write is flushed so
// that a failing destination surfaces on the write that hit it.
type CSV struct {
	w      *csv.Writer
	closer io.Closer
}

// NewCSV creates (or truncates) path, making parent directories as needed.
func NewCSV(path string) (*CSV, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := mkdirAll(dir); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create results file: %w", err)
	}
	return &CSV{w: csv.NewWriter(f), closer: f}, nil
}

// NewCSVWriter writes rows to w. Close does not close w.
func NewCSVWriter(w io.Writer) *CSV {
	return &CSV{w: csv.NewWriter(w)}
}

func (c *CSV) write(record []string) error {
	if err := c.w.Write(record); err != nil {
		return err
	}
	c.w.Flush()
	return c.w.Error()
}

// WriteHeader writes the column labels.
func (c *CSV) WriteHeader() error {
	return c.write(Header)
}

// WriteRow writes "<name>,<size>,<seconds>".
func (c *CSV) WriteRow(rec benchmark.Record) error {
	return c.write([]string{
		rec.Algorithm,
		strconv.Itoa(rec.Size),
		FormatSeconds(rec.Seconds),
	})
}

// Close flushes pending output and closes the file opened by NewCSV.
func (c *CSV) Close() error {
	c.w.Flush()
	err := c.w.Error()
	if c.closer != nil {
		if cerr := c.closer.Close(); err == nil {
			err = cerr
		}
		c.closer = nil
	}
	return err
}

func mkdirAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// FormatSeconds renders seconds with the fewest digits that round-trip.
func FormatSeconds(secs float64) string {
	return strconv.FormatFloat(secs, 'f', -1, 64)
}
