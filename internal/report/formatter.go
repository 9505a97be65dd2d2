// Package report renders groupings, statistics and lookups for the terminal.
package report

import (
	"fmt"
	"io"

	"github.com/Veraticus/slate/internal/classification"
	"github.com/Veraticus/slate/internal/cli"
	"github.com/Veraticus/slate/internal/pattern"
)

// Options controls how much of each bucket is shown.
type Options struct {
	Guess        string
	PatternLimit int
	SubtreeLimit int
}

// Formatter writes human-readable reports to a writer.
type Formatter struct {
	w      io.Writer
	styles *Styles
	opts   Options
	err    error
}

// NewFormatter creates a Formatter writing to w.
func NewFormatter(w io.Writer, opts Options) *Formatter {
	return &Formatter{
		w:      w,
		styles: NewStyles(w),
		opts:   opts,
	}
}

// Err returns the first write error, if any.
func (f *Formatter) Err() error {
	return f.err
}

func (f *Formatter) println(a ...any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintln(f.w, a...)
}

func (f *Formatter) printf(format string, a ...any) {
	if f.err != nil {
		return
	}
	_, f.err = fmt.Fprintf(f.w, format, a...)
}

func (f *Formatter) title(text string) {
	f.println()
	f.println(cli.Rule)
	f.println(f.styles.Title.Render(text))
	f.println(cli.Rule)
}

// Loaded announces how many paths were read from source.
func (f *Formatter) Loaded(count int, source string) {
	f.println(f.styles.Success.Render(fmt.Sprintf("%s Loaded %s solver paths from %s",
		cli.SuccessIcon, cli.FormatCount(count), source)))
}

// Patterns prints the pattern grouping, one example per bucket unless full is set.
func (f *Formatter) Patterns(groups *classification.Groups, full bool) {
	f.title("SORTED BY COLOUR PATTERN (g=green, y=yellow, _=grey)")
	f.printf("Unique patterns: %s | Total words: %s\n\n",
		cli.FormatCount(groups.Len()), cli.FormatCount(groups.Total()))

	for _, key := range groups.SortedKeys() {
		f.printf("%s %s  %s\n", cli.ChartIcon, f.styles.RenderPattern(key),
			f.styles.Count.Render(fmt.Sprintf("(%d words)", groups.Count(key))))
		f.bucket(groups, key, full, f.opts.PatternLimit, "Example")
		f.println(cli.Divider)
	}
}

// Subtrees prints the subtree grouping, one example per bucket unless full is set.
func (f *Formatter) Subtrees(groups *classification.Groups, full bool) {
	f.title(fmt.Sprintf("SORTED BY SUBTREE (second guess after '%s')", f.opts.Guess))
	f.printf("Unique second guesses: %s\n\n", cli.FormatCount(groups.Len()))

	for _, key := range groups.SortedKeys() {
		f.printf("%s Next guess %s %s  %s\n", cli.TreeIcon, cli.ArrowIcon, f.styles.Key.Render(key),
			f.styles.Count.Render(fmt.Sprintf("(%d words)", groups.Count(key))))
		f.bucket(groups, key, full, f.opts.SubtreeLimit, "Example path")
		f.println(cli.Divider)
	}
}

func (f *Formatter) bucket(groups *classification.Groups, key string, full bool, limit int, label string) {
	if !full {
		if example, ok := groups.Example(key); ok {
			f.printf("   %s: %s\n", label, example.Line)
		}
		return
	}

	recs := groups.Sorted(key)
	for i, rec := range recs {
		if limit > 0 && i == limit {
			f.println(f.styles.Subtle.Render(fmt.Sprintf("   ... and %d more", len(recs)-limit)))
			break
		}
		f.printf("   %s\n", rec.Line)
	}
}

// Stats prints the run statistics.
func (f *Formatter) Stats(s classification.Stats) {
	f.title("STATISTICS")
	f.printf("Total answers covered: %s\n", cli.FormatCount(s.Total))
	f.printf("Unique colour patterns: %s\n", cli.FormatCount(s.Patterns))
	if s.Patterns > 0 {
		f.printf("Most common pattern: %s (%d words)\n", f.styles.RenderPattern(s.LargestPattern), s.LargestPatternCount)
	} else {
		f.println("Most common pattern: none")
	}
	f.printf("Patterns with zero greens: %d\n", s.ZeroGreenPatterns)

	f.printf("\nUnique second guesses: %s\n", cli.FormatCount(s.Subtrees))
	if s.Subtrees > 0 {
		f.printf("Largest subtree: %s (%d words)\n", f.styles.Key.Render(s.LargestSubtree), s.LargestSubtreeCount)
	} else {
		f.println("Largest subtree: none")
	}
}

// Search prints every path filed under query, or a miss notice.
func (f *Formatter) Search(groups *classification.Groups, query string) {
	if !groups.Has(query) {
		f.println(f.styles.Error.Render(fmt.Sprintf("%s No matches for pattern '%s'", cli.ErrorIcon, query)))
		if !pattern.Valid(query) {
			f.println(f.styles.Subtle.Render("   Patterns are five of g, y and _ (e.g. g_y__)"))
		}
		return
	}

	f.printf("\n%s Matches for pattern '%s':\n", cli.SearchIcon, query)
	for _, rec := range groups.Sorted(query) {
		f.printf("   %s\n", rec.Line)
	}
}

// Words prints the paths that end in word together with their pattern.
func (f *Formatter) Words(matches []classification.Match, word string) {
	if len(matches) == 0 {
		f.println(f.styles.Error.Render(fmt.Sprintf("%s No paths end in '%s'", cli.ErrorIcon, word)))
		return
	}

	f.printf("\n%s Paths ending in '%s':\n", cli.SearchIcon, word)
	for _, m := range matches {
		f.printf("   %s  %s\n", f.styles.RenderPattern(string(m.Pattern)), m.Record.Line)
	}
}

// Exported announces where an export was written.
func (f *Formatter) Exported(path string) {
	f.println(f.styles.Success.Render(fmt.Sprintf("%s Exported to %s", cli.SuccessIcon, path)))
}

// Snapshot announces a saved snapshot run.
func (f *Formatter) Snapshot(runID, path string) {
	f.println(f.styles.Success.Render(fmt.Sprintf("%s Saved snapshot %s to %s", cli.SuccessIcon, runID, path)))
}

// Done prints the completion banner.
func (f *Formatter) Done() {
	f.printf("\n%s Done! The full organised Wordle solver for '%s' is ready.\n", cli.PartyIcon, f.opts.Guess)
}
