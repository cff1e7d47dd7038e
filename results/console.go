package results

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"sort_bench_go/benchmark"
)

// Console prints a human-readable block per algorithm:
//
//	Testing Quick Sort
//	Small dataset: 0.000061 seconds
//	...
//	<blank line>
type Console struct {
	w       io.Writer
	heading lipgloss.Style
}

// NewConsole writes to w. Headings are bold when w is a color terminal.
func NewConsole(w io.Writer) *Console {
	r := lipgloss.NewRenderer(w)
	return &Console{
		w:       w,
		heading: r.NewStyle().Bold(true),
	}
}

// WriteHeader is a no-op; the console has no column row.
func (c *Console) WriteHeader() error { return nil }

// BeginAlgorithm prints the algorithm heading.
func (c *Console) BeginAlgorithm(name string) error {
	_, err := fmt.Fprintln(c.w, c.heading.Render("Testing "+name))
	return err
}

// WriteRow prints one measurement line.
func (c *Console) WriteRow(rec benchmark.Record) error {
	label := rec.Dataset
	if label == "" {
		label = fmt.Sprintf("Size %d", rec.Size)
	}
	_, err := fmt.Fprintf(c.w, "%s dataset: %s seconds\n", label, FormatSeconds(rec.Seconds))
	return err
}

// EndAlgorithm prints the blank separator line.
func (c *Console) EndAlgorithm(string) error {
	_, err := fmt.Fprintln(c.w)
	return err
}
