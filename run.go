package main

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"sort_bench_go/benchmark"
	"sort_bench_go/config"
	"sort_bench_go/ran_int_gen"
	"sort_bench_go/results"
)

// runBenchmark generates one dataset per planned size, then sweeps the plan
// writing to the console, the CSV file and, if configured, a chart.
// Sinks are closed on every path; a write failure aborts the sweep.
func runBenchmark(opts config.Options, plan benchmark.Plan, stdout io.Writer, logger *log.Logger) (err error) {
	gen := ran_int_gen.New(opts.Seed)
	logger.Info("generating datasets", "sizes", plan.Sizes(), "seed", gen.Seed())
	datasets, err := gen.GenerateAll(plan.Sizes())
	if err != nil {
		return err
	}

	var chart *results.Chart
	if opts.Plot != "" {
		if chart, err = results.NewChart(opts.Plot); err != nil {
			return err
		}
	}

	csvSink, err := results.NewCSV(opts.Output)
	if err != nil {
		return err
	}
	sinks := []benchmark.Sink{results.NewConsole(stdout), csvSink}
	if chart != nil {
		sinks = append(sinks, chart)
	}
	out := results.Multi(sinks...)
	defer func() {
		err = errors.Join(err, out.Close())
	}()

	benchmark.Snapshot().Log(logger)
	if err := benchmark.NewRunner(plan, datasets, out, logger).Run(); err != nil {
		return err
	}
	logger.Info("wrote results", "path", opts.Output, "rows", plan.Pairs())

	if chart != nil {
		if err := chart.Save(); err != nil {
			return err
		}
		logger.Info("wrote chart", "path", opts.Plot)
	}
	return nil
}
