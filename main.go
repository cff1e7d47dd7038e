package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"sort_bench_go/benchmark"
	"sort_bench_go/config"
	"sort_bench_go/ran_int_gen"
	"sort_bench_go/sanity_check"
)

// cli carries the state shared by the commands of one invocation.
type cli struct {
	cfgFile string
	opts    config.Options
	logger  *log.Logger
	plan    benchmark.Plan
	stdout  io.Writer
	stderr  io.Writer
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "sort_bench"})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// newRootCmd builds the command tree. With no flags, the root command runs
// the default sweep and writes performance_results.csv.
func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "sort_bench",
		Short: "Time quicksort, merge sort, heap sort and bubble sort on random data",
		Long: `sort_bench times four in-memory sorting algorithms on 1,000, 100,000 and
1,000,000 random integers (bubble sort on 1,000 only) and writes one row per
measurement to the console and to a CSV file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBenchmark(c.opts, c.plan, c.stdout, c.logger)
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	d := config.Defaults()
	pf := root.PersistentFlags()
	pf.StringVar(&c.cfgFile, "config", "", "config file (toml, yaml or json)")
	pf.StringP(config.KeyOutput, "o", d.Output, "CSV results file")
	pf.Uint64(config.KeySeed, d.Seed, "dataset seed (0 = time-derived)")
	pf.String(config.KeyPlot, d.Plot, "also write a comparison chart (png, svg, pdf)")
	pf.BoolP(config.KeyVerbose, "v", d.Verbose, "enable debug logging")

	root.AddCommand(newCheckCmd(c), newConfigCmd(c), newVersionCmd(c))
	return root
}

// loadConfig merges defaults, config file, environment and flags, in
// increasing priority, and sets up the logger.
func (c *cli) loadConfig(cmd *cobra.Command) error {
	v, err := config.NewViper(c.cfgFile)
	if err != nil {
		return err
	}
	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}
	opts, err := config.Load(v)
	if err != nil {
		return err
	}
	c.opts = opts
	c.logger = newLogger(c.stderr, opts.Verbose)
	return nil
}

func newCheckCmd(c *cli) *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify every algorithm against the standard library sort",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return sanity_check.Run(c.stdout, ran_int_gen.New(c.opts.Seed), size)
		},
	}
	cmd.Flags().IntVar(&size, "size", benchmark.SmallSize, "dataset size to check")
	return cmd
}

func newConfigCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.opts.TOML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(c.stdout, out)
			return err
		},
	}
}

func newVersionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := c.stdout
			fmt.Fprintln(w, "sort_bench - Version Information Menu")
			fmt.Fprintf(w, "\tsort_bench:\t\t%s\n", config.Main_version)
			fmt.Fprintf(w, "\nComponents:\n")
			fmt.Fprintf(w, "\tBenchmark:\t\t%s\n", config.Benchmark)
			fmt.Fprintf(w, "\tSorting:\t\t%s\n", config.Sorting)
			fmt.Fprintf(w, "\tRandom Int Generator:\t%s\n", config.Ran_Int_Gen)
			fmt.Fprintf(w, "\tResults:\t\t%s\n", config.Results)
			fmt.Fprintf(w, "\tSanity Check:\t\t%s\n", config.Sanity_check)
		},
	}
}

// execute runs the command tree for args and logs a failure to stderr.
func execute(args []string, stdout, stderr io.Writer) error {
	c := &cli{plan: benchmark.DefaultPlan(), stdout: stdout, stderr: stderr}
	root := newRootCmd(c)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		logger := c.logger
		if logger == nil {
			logger = newLogger(stderr, false)
		}
		logger.Error("run failed", "err", err)
		return err
	}
	return nil
}

func main() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
