package results

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"sort_bench_go/benchmark"
)

var (
	// ErrUnsupportedFormat is returned for chart paths gonum/plot cannot encode.
	ErrUnsupportedFormat = errors.New("unsupported chart format")
	// ErrNoData is returned when saving a chart that received no rows.
	ErrNoData = errors.New("no measurements to plot")
)

// minPlotSeconds replaces zero timings, which a log axis cannot show.
const minPlotSeconds = 1e-9

var chartFormats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Chart collects measurements and draws them as a log-log line chart, one
// line per algorithm, once the sweep has finished.
type Chart struct {
	path   string
	order  []string
	series map[string]plotter.XYs
}

// NewChart returns a Chart that Save writes to path. The extension picks the format.
func NewChart(path string) (*Chart, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	supported := false
	for _, f := range chartFormats {
		if ext == f {
			supported = true
			break
		}
	}
	if !supported {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
	return &Chart{path: path, series: make(map[string]plotter.XYs)}, nil
}

// WriteHeader is a no-op.
func (c *Chart) WriteHeader() error { return nil }

// WriteRow adds one point to the algorithm's line.
func (c *Chart) WriteRow(rec benchmark.Record) error {
	if _, ok := c.series[rec.Algorithm]; !ok {
		c.order = append(c.order, rec.Algorithm)
	}
	c.series[rec.Algorithm] = append(c.series[rec.Algorithm], plotter.XY{
		X: float64(rec.Size),
		Y: math.Max(rec.Seconds, minPlotSeconds),
	})
	return nil
}

// Plot builds the chart from the collected rows.
func (c *Chart) Plot() (*plot.Plot, error) {
	if len(c.order) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Sorting Algorithm Performance Comparison"
	p.X.Label.Text = "Dataset Size"
	p.Y.Label.Text = "Time (seconds)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for i, name := range c.order {
		pts := c.series[name]
		for _, pt := range pts {
			xmin, xmax = math.Min(xmin, pt.X), math.Max(xmax, pt.X)
			ymin, ymax = math.Min(ymin, pt.Y), math.Max(ymax, pt.Y)
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, fmt.Errorf("plot %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(2)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(name, line, points)
	}
	p.Legend.Top = true
	p.Legend.Left = true

	// A decade of headroom keeps single-size or single-timing data drawable on log axes.
	p.X.Min, p.X.Max = xmin/10, xmax*10
	p.Y.Min, p.Y.Max = ymin/10, ymax*10
	return p, nil
}

// Save renders the chart to its path.
func (c *Chart) Save() error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(c.path); dir != "." {
		if err := mkdirAll(dir); err != nil {
			return err
		}
	}
	if err := p.Save(10*vg.Inch, 6*vg.Inch, c.path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
