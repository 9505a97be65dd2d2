package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/slate/internal/classification"
	"github.com/Veraticus/slate/internal/cli"
	"github.com/Veraticus/slate/internal/common"
	"github.com/Veraticus/slate/internal/config"
	"github.com/Veraticus/slate/internal/export"
	"github.com/Veraticus/slate/internal/loader"
	"github.com/Veraticus/slate/internal/model"
	"github.com/Veraticus/slate/internal/pattern"
	"github.com/Veraticus/slate/internal/report"
	"github.com/Veraticus/slate/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Display modes.
const (
	modeColor   = "color"
	modeSubtree = "subtree"
	modeStats   = "stats"
)

func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", modeColor, "display mode (color, subtree, stats)")
	cmd.Flags().Bool("full", false, "print every path in each group (long output)")
	cmd.Flags().String("search", "", "print every path with this colour pattern (e.g. g_y__)")
	cmd.Flags().String("word", "", "print every path that ends in this answer")
	cmd.Flags().String("export", "", "export the grouping to a TXT or CSV file")
	cmd.Flags().String("snapshot", "", "save this run to a SQLite database")
	cmd.Flags().String("format", report.FormatText, "stats output format (text, json, yaml)")
	cmd.Flags().Bool("progress", false, "show a progress bar while grouping")
}

type reportOptions struct {
	mode     string
	search   string
	word     string
	export   string
	snapshot string
	format   string
	full     bool
	progress bool
}

func reportOptionsFromFlags(cmd *cobra.Command) (reportOptions, error) {
	var opts reportOptions
	opts.mode, _ = cmd.Flags().GetString("mode")
	opts.full, _ = cmd.Flags().GetBool("full")
	opts.search, _ = cmd.Flags().GetString("search")
	opts.word, _ = cmd.Flags().GetString("word")
	opts.export, _ = cmd.Flags().GetString("export")
	opts.snapshot, _ = cmd.Flags().GetString("snapshot")
	opts.format, _ = cmd.Flags().GetString("format")
	opts.progress, _ = cmd.Flags().GetBool("progress")

	switch opts.mode {
	case modeColor, modeSubtree, modeStats:
	default:
		return opts, fmt.Errorf("%w: %q (use color, subtree or stats)", common.ErrInvalidMode, opts.mode)
	}
	if !report.ValidFormat(opts.format) {
		return opts, fmt.Errorf("%w: %q (use text, json or yaml)", common.ErrInvalidFormat, opts.format)
	}
	if opts.format != report.FormatText && opts.mode != modeStats {
		return opts, fmt.Errorf("%w: --format %s only applies to --mode stats", common.ErrInvalidFormat, opts.format)
	}
	return opts, nil
}

// classified is one loaded input with both groupings computed.
type classified struct {
	result   *loader.Result
	scorer   *pattern.GuessScorer
	patterns *classification.Groups
	subtrees *classification.Groups
}

// classify loads the input and groups it both ways.
func classify(ctx context.Context, settings *config.Settings, progressOut io.Writer) (*classified, error) {
	res, err := loader.New(settings.Guess).LoadFile(ctx, settings.InputPath)
	if err != nil {
		return nil, err
	}

	scorer := pattern.NewScorer(settings.Guess)

	var opts []classification.Option
	var bar *cli.Progress
	if progressOut != nil {
		bar = cli.NewProgress(progressOut, 2*len(res.Records), "Grouping paths")
		opts = append(opts, classification.WithProgress(bar.Step))
	}

	c := &classified{
		result:   res,
		scorer:   scorer,
		patterns: classification.ByPattern(res.Records, scorer, opts...),
		subtrees: classification.BySubtree(res.Records, opts...),
	}
	if bar != nil {
		bar.Finish()
	}

	common.LogDebug("Grouped solver paths", common.Fields{
		"records":  len(res.Records),
		"patterns": c.patterns.Len(),
		"subtrees": c.subtrees.Len(),
		"skipped":  res.Stats.Skipped,
	})
	return c, nil
}

func runReport(cmd *cobra.Command, v *viper.Viper) error {
	opts, err := reportOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	var progressOut io.Writer
	if opts.progress {
		progressOut = cmd.ErrOrStderr()
	}

	c, err := classify(cmd.Context(), settings, progressOut)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	f := report.NewFormatter(out, report.Options{
		Guess:        settings.Guess,
		PatternLimit: settings.PatternLimit,
		SubtreeLimit: settings.SubtreeLimit,
	})

	// Lookups answer one question and stop, whatever --mode and --format say.
	if opts.search != "" || opts.word != "" {
		f.Loaded(len(c.result.Records), settings.InputPath)
		if opts.search != "" {
			f.Search(c.patterns, opts.search)
		} else {
			f.Words(classification.FindBySecret(c.result.Records, c.scorer, opts.word), opts.word)
		}
		return f.Err()
	}

	if opts.format != report.FormatText {
		return runMachineStats(cmd.Context(), out, c, settings, opts)
	}

	f.Loaded(len(c.result.Records), settings.InputPath)

	switch opts.mode {
	case modeColor:
		f.Patterns(c.patterns, opts.full)
	case modeSubtree:
		f.Subtrees(c.subtrees, opts.full)
	case modeStats:
		f.Stats(classification.ComputeStats(c.patterns, c.subtrees))
	}

	if opts.export != "" {
		abs, err := exportGroups(c, opts)
		if err != nil {
			common.LogError(err, "Export failed", common.Fields{"path": opts.export})
			return err
		}
		f.Exported(abs)
	}

	if opts.snapshot != "" {
		runID, err := saveSnapshot(cmd.Context(), c, settings, opts.snapshot)
		if err != nil {
			common.LogError(err, "Snapshot failed", common.Fields{"database": opts.snapshot})
			return err
		}
		f.Snapshot(runID, opts.snapshot)
	}

	f.Done()
	return f.Err()
}

// runMachineStats writes only the encoded statistics to out so it stays parseable.
func runMachineStats(ctx context.Context, out io.Writer, c *classified, settings *config.Settings, opts reportOptions) error {
	stats := classification.ComputeStats(c.patterns, c.subtrees)
	if err := report.EncodeStats(out, stats, opts.format); err != nil {
		return err
	}

	if opts.export != "" {
		abs, err := exportGroups(c, opts)
		if err != nil {
			common.LogError(err, "Export failed", common.Fields{"path": opts.export})
			return err
		}
		slog.Info("Exported results", "path", abs)
	}
	if opts.snapshot != "" {
		runID, err := saveSnapshot(ctx, c, settings, opts.snapshot)
		if err != nil {
			common.LogError(err, "Snapshot failed", common.Fields{"database": opts.snapshot})
			return err
		}
		slog.Info("Saved snapshot", "run_id", runID, "database", opts.snapshot)
	}
	return nil
}

// exportGroups writes the pattern grouping in color mode and the subtree grouping otherwise.
func exportGroups(c *classified, opts reportOptions) (string, error) {
	groups := c.subtrees
	if opts.mode == modeColor {
		groups = c.patterns
	}
	abs, err := export.WriteFile(config.ExpandPath(opts.export), groups, opts.mode)
	if err != nil {
		return "", fmt.Errorf("export failed: %w", err)
	}
	return abs, nil
}

func saveSnapshot(ctx context.Context, c *classified, settings *config.Settings, dbPath string) (string, error) {
	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return "", fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return "", fmt.Errorf("failed to migrate snapshot database: %w", err)
	}

	run := &model.Run{
		Guess:     settings.Guess,
		InputPath: settings.InputPath,
		Total:     c.patterns.Total(),
		Patterns:  c.patterns.Len(),
		Subtrees:  c.subtrees.Len(),
	}
	buckets := append(c.patterns.Buckets(model.KindPattern), c.subtrees.Buckets(model.KindSubtree)...)
	if err := store.SaveRun(ctx, run, buckets); err != nil {
		return "", fmt.Errorf("failed to save snapshot: %w", err)
	}

	common.LogInfo("Saved snapshot", common.Fields{
		"run_id":  run.ID,
		"buckets": len(buckets),
	})
	return run.ID, nil
}
