package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sghaida/patterns/catalog"
	"github.com/sghaida/patterns/demo"
	"github.com/sghaida/patterns/internal/logfields"
	"github.com/sghaida/patterns/internal/metrics"
	"github.com/sghaida/patterns/internal/report"
)

// RunCmd implements the 'run' command.
type RunCmd struct {
	Names   []string `arg:"" optional:"" help:"Scenario names to run"`
	All     bool     `help:"Run every scenario"`
	Format  string   `short:"f" help:"Output format: text, json or yaml (default from PATTERNS_FORMAT)"`
	Metrics bool     `help:"Print the metrics collected during the runs"`
}

var errNothingToRun = errors.New("give scenario names or --all")

func (r *RunCmd) Run(g *Global, _ *CLI) error {
	if r.All == (len(r.Names) > 0) {
		return errNothingToRun
	}

	formatName := r.Format
	if formatName == "" {
		formatName = g.Config.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	rec := metrics.NewPrometheusRecorder(nil)
	runner := demo.NewRunner(
		catalog.New(catalog.WithSingletonWorkers(g.Config.SingletonWorkers)),
		demo.WithLogger(g.Logger),
		demo.WithRecorder(rec),
	)

	var results []demo.Result
	if r.All {
		results = runner.RunAll()
	} else {
		for _, name := range r.Names {
			res, _ := runner.Execute(name)
			results = append(results, res)
		}
	}

	g.Logger.Debug("Writing report", logfields.Format(string(format)), logfields.Events(countEvents(results)))
	if err := report.Write(g.Stdout, format, results); err != nil {
		return err
	}

	if r.Metrics {
		if err := printMetrics(g, rec); err != nil {
			return err
		}
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scenarios failed", failed, len(results))
	}
	return nil
}

func printMetrics(g *Global, rec *metrics.PrometheusRecorder) error {
	snap, err := rec.Snapshot()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(g.Stderr, "# metrics")
	for _, k := range keys {
		fmt.Fprintf(g.Stderr, "%s %g\n", k, snap[k])
	}
	return nil
}

func countEvents(results []demo.Result) int {
	n := 0
	for _, r := range results {
		n += len(r.Events)
	}
	return n
}
