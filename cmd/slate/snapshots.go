package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Veraticus/slate/internal/cli"
	"github.com/Veraticus/slate/internal/config"
	"github.com/Veraticus/slate/internal/model"
	"github.com/Veraticus/slate/internal/storage"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func snapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots DATABASE",
		Short: "List runs saved with --snapshot",
		Long: `List the classification runs saved in a snapshot database.

With --run, print the buckets saved for that run instead.`,
		Example: `  # Save a run, then list the database
  slate --snapshot runs.db
  slate snapshots runs.db

  # Show the subtree buckets of one run
  slate snapshots runs.db --run 3f0c... --kind subtree`,
		Args: cobra.ExactArgs(1),
		RunE: runSnapshots,
	}

	cmd.Flags().String("run", "", "show the buckets of this run id")
	cmd.Flags().String("kind", string(model.KindPattern), "bucket kind to show with --run (pattern, subtree)")

	return cmd
}

func runSnapshots(cmd *cobra.Command, args []string) error {
	runID, _ := cmd.Flags().GetString("run")
	kind, _ := cmd.Flags().GetString("kind")

	store, err := storage.NewSQLiteStorage(config.ExpandPath(args[0]))
	if err != nil {
		return fmt.Errorf("failed to open snapshot database: %w", err)
	}
	defer func() { _ = store.Close() }()

	ctx := cmd.Context()
	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate snapshot database: %w", err)
	}

	out := cmd.OutOrStdout()
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))

	if runID != "" {
		run, err := store.GetRun(ctx, runID)
		if err != nil {
			return err
		}
		buckets, err := store.GetBuckets(ctx, run.ID, model.BucketKind(kind))
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Run %s: guess %s, %s paths from %s\n\n",
			run.ID, run.Guess, cli.FormatCount(run.Total), run.InputPath)

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, strings.Join([]string{
			headerStyle.Render("KEY"),
			headerStyle.Render("COUNT"),
			headerStyle.Render("EXAMPLE"),
		}, "\t"))
		for _, b := range buckets {
			fmt.Fprintf(w, "%s\t%d\t%s\n", b.Key, b.Count, b.Example)
		}
		return w.Flush()
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, cli.FormatWarning("No snapshots saved yet"))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{
		headerStyle.Render("ID"),
		headerStyle.Render("CREATED"),
		headerStyle.Render("GUESS"),
		headerStyle.Render("PATHS"),
		headerStyle.Render("PATTERNS"),
		headerStyle.Render("SUBTREES"),
		headerStyle.Render("INPUT"),
	}, "\t"))
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			cli.InfoStyle.Render(run.ID),
			run.CreatedAt.Local().Format(time.DateTime),
			run.Guess,
			cli.FormatCount(run.Total),
			run.Patterns,
			run.Subtrees,
			run.InputPath,
		)
	}
	return w.Flush()
}
