package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/durack1/durolib/internal/catalog"
	"github.com/durack1/durolib/internal/check"
	"github.com/durack1/durolib/internal/config"
	"github.com/durack1/durolib/internal/display"
	"github.com/durack1/durolib/internal/logging"
	"github.com/durack1/durolib/internal/probe"
	"github.com/durack1/durolib/internal/report"
	"github.com/durack1/durolib/internal/resolver"
)

// Options carries the per-invocation inputs of [Run].
type Options struct {
	Input
	Stdout io.Writer           // Report destination when cfg.Output is stdout. Default os.Stdout.
	Dates  resolver.DateReader // Default: a probe.Prober using cfg.NcdumpPath.
	Now    func() time.Time
}

// Run is the top-level entry point for one trim. It collects paths,
// resolves them, writes the report and records the run. Nothing is
// written or recorded when resolution aborts.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, opts Options) (RunStats, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	probeDefault := opts.Dates == nil
	if probeDefault {
		opts.Dates = probe.NewProber(cfg.NcdumpPath)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	started := opts.Now()

	paths, source, err := Collect(cfg, opts.Input)
	if err != nil {
		return RunStats{}, err
	}
	log.Info("Collected %s from %s", display.Plural(len(paths), "dataset", "datasets"), source)

	if probeDefault {
		if err := check.CheckDeps(cfg, paths); err != nil {
			return RunStats{Source: source, Inputs: len(paths)}, err
		}
	}

	run := catalog.NewRun(source, started)
	log = log.WithField("run", run.ID)

	r := resolver.New(opts.Dates, resolver.WithLogger(log), resolver.WithMemo(cfg.Memoize))
	res, err := r.Resolve(ctx, paths)
	if err != nil {
		return RunStats{Source: source, Inputs: len(paths)}, err
	}
	if log.DebugEnabled() {
		logDropped(log, res)
	}

	stats := statsFrom(res)
	stats.RunID = run.ID
	stats.Source = source

	doc := report.FromResult(run.ID, started, res)
	if report.IsStdout(cfg.Output) {
		err = report.Write(opts.Stdout, cfg.OutputFormat, doc)
	} else {
		err = report.WriteFile(cfg.Output, cfg.OutputFormat, doc)
		if err == nil {
			if fi, statErr := os.Stat(cfg.Output); statErr == nil {
				stats.ReportBytes = fi.Size()
			}
		}
	}
	if err != nil {
		return stats, fmt.Errorf("write report: %w", err)
	}

	if cfg.Catalog != "" {
		run.FinishedAt = opts.Now()
		run.Inputs, run.Kept = stats.Inputs, stats.Kept
		if err := recordRun(ctx, cfg.Catalog, run, catalog.SelectionsFrom(run.ID, res)); err != nil {
			return stats, fmt.Errorf("record run: %w", err)
		}
		log.Debug("Recorded run %s in %s", run.ID, cfg.Catalog)
	}

	stats.Elapsed = opts.Now().Sub(started)
	logSummary(cfg, log, &stats)
	return stats, nil
}

func logDropped(log *logging.Logger, res *resolver.Result) {
	for _, sel := range res.Selections {
		for _, c := range sel.Candidates {
			if c.Record.Path != sel.Winner.Path {
				log.Debug("Dropped %s (superseded by %s)", c.Record.Path, sel.Winner.Path)
			}
		}
	}
}

func recordRun(ctx context.Context, path string, run catalog.Run, sels []catalog.Selection) error {
	c, err := catalog.Open(path)
	if err != nil {
		return err
	}
	defer c.Close()
	return c.RecordRun(ctx, run, sels)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Success("Done: kept %d of %d (%s dropped)",
		stats.Kept, stats.Inputs, display.FormatPercent(stats.Dropped, stats.Inputs))
	log.Info("Summary report:")
	log.Info("  Identity groups:      %d", stats.Groups)
	log.Info("  Duplicated groups:    %d", stats.Duplicated)
	log.Info("  Metadata reads:       %d", stats.MetadataReads)
	log.Info("  Elapsed:              %s", display.FormatDuration(stats.Elapsed))
	if !report.IsStdout(cfg.Output) {
		log.Info("  Report:               %s (%s)", cfg.Output, display.FormatBytes(stats.ReportBytes))
	}
	if cfg.Catalog != "" {
		log.Info("  Run ID:               %s", stats.RunID)
	}
}
