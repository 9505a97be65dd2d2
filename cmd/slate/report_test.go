package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/slate/internal/common"
	"github.com/Veraticus/slate/internal/model"
	"github.com/Veraticus/slate/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_Modes(t *testing.T) {
	input := writeFixture(t)

	tests := []struct {
		name        string
		args        []string
		contains    []string
		notContains []string
	}{
		{
			name: "color summary",
			args: nil,
			contains: []string{
				"✅ Loaded 5 solver paths from " + input,
				"SORTED BY COLOUR PATTERN",
				"Unique patterns: 4 | Total words: 5",
				"📊 ___y_  (2 words)\n   Example: slate,crane,count\n",
				"🎉 Done! The full organised Wordle solver for 'slate' is ready.",
			},
			notContains: []string{"crane,slate,mount", "MOUNT"},
		},
		{
			name: "subtree summary",
			args: []string{"--mode", "subtree"},
			contains: []string{
				"SORTED BY SUBTREE (second guess after 'slate')",
				"Unique second guesses: 3",
				"🌳 Next guess → crane  (2 words)",
			},
		},
		{
			name: "stats",
			args: []string{"--mode", "stats"},
			contains: []string{
				"Total answers covered: 5",
				"Unique colour patterns: 4",
				"Most common pattern: ___y_ (2 words)",
				"Patterns with zero greens: 1",
				"Largest subtree: crane (2 words)",
			},
		},
		{
			name:        "search short-circuits",
			args:        []string{"--search", "___y_", "--export", "unused.csv"},
			contains:    []string{"Matches for pattern '___y_':\n   slate,crane,count\n   slate,crane,mount\n"},
			notContains: []string{"SORTED BY", "Done!", "Exported"},
		},
		{
			name:        "search ignores json stats",
			args:        []string{"--mode", "stats", "--format", "json", "--search", "___y_"},
			contains:    []string{"Matches for pattern '___y_':\n   slate,crane,count\n   slate,crane,mount\n"},
			notContains: []string{"largest_pattern", "Total answers covered"},
		},
		{
			name:        "word ignores yaml stats",
			args:        []string{"--mode", "stats", "--format", "yaml", "--word", "stale"},
			contains:    []string{"Paths ending in 'stale':\n   gygyg  slate,stale\n"},
			notContains: []string{"largest_pattern:"},
		},
		{
			name:        "search miss",
			args:        []string{"--search", "yyyyy"},
			contains:    []string{"❌ No matches for pattern 'yyyyy'"},
			notContains: []string{"Done!"},
		},
		{
			name:        "word lookup",
			args:        []string{"--word", "stale"},
			contains:    []string{"Paths ending in 'stale':\n   gygyg  slate,stale\n"},
			notContains: []string{"Done!"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, append([]string{"--input", input}, tt.args...)...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, stdout, s)
			}
		})
	}
}

func TestReport_StatsJSON(t *testing.T) {
	input := writeFixture(t)

	stdout, _, err := execute(t, "--input", input, "--mode", "stats", "--format", "json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded), "stdout should be pure JSON: %s", stdout)
	assert.EqualValues(t, 5, decoded["total"])
	assert.Equal(t, "crane", decoded["largest_subtree"])
}

func TestReport_StatsYAML(t *testing.T) {
	input := writeFixture(t)

	stdout, _, err := execute(t, "--input", input, "--mode", "stats", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "largest_pattern: ___y_")
	assert.NotContains(t, stdout, "Loaded")
}

func TestReport_Export(t *testing.T) {
	input := writeFixture(t)
	dir := t.TempDir()

	tests := []struct {
		name      string
		mode      string
		file      string
		lines     int
		firstData string
	}{
		{name: "color exports patterns", mode: "color", file: "color.csv", lines: 5, firstData: "___y_,2,\"slate,crane,count\""},
		{name: "subtree exports subtrees", mode: "subtree", file: "subtree.csv", lines: 4, firstData: "crane,2,\"slate,crane,count\""},
		{name: "stats exports subtrees", mode: "stats", file: "stats.csv", lines: 4, firstData: "crane,2,\"slate,crane,count\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			stdout, _, err := execute(t, "--input", input, "--mode", tt.mode, "--export", path)
			require.NoError(t, err)
			assert.Contains(t, stdout, "✅ Exported to "+path)
			assert.Contains(t, stdout, "Done!")

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
			require.Len(t, lines, tt.lines)
			assert.Equal(t, "Pattern,Count,Example Path", lines[0])
			assert.Equal(t, tt.firstData, lines[1])
		})
	}

	t.Run("text export", func(t *testing.T) {
		path := filepath.Join(dir, "color.txt")
		_, _, err := execute(t, "--input", input, "--export", path)
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "EXPORTED COLOR RESULTS\n"+strings.Repeat("=", 80)+"\n\n"))
	})
}

func TestReport_Snapshot(t *testing.T) {
	input := writeFixture(t)
	db := filepath.Join(t.TempDir(), "runs.db")

	stdout, _, err := execute(t, "--input", input, "--snapshot", db)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Saved snapshot")

	store, err := storage.NewSQLiteStorage(db)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()
	ctx := context.Background()

	runs, err := store.ListRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "slate", runs[0].Guess)
	assert.Equal(t, 5, runs[0].Total)
	assert.Equal(t, 4, runs[0].Patterns)
	assert.Equal(t, 3, runs[0].Subtrees)

	patterns, err := store.GetBuckets(ctx, runs[0].ID, model.KindPattern)
	require.NoError(t, err)
	assert.Len(t, patterns, 4)

	t.Run("snapshots lists the run", func(t *testing.T) {
		stdout, _, err := execute(t, "snapshots", db)
		require.NoError(t, err)
		assert.Contains(t, stdout, runs[0].ID)
		assert.Contains(t, stdout, "slate")
	})

	t.Run("snapshots shows buckets of a run", func(t *testing.T) {
		stdout, _, err := execute(t, "snapshots", db, "--run", runs[0].ID, "--kind", "subtree")
		require.NoError(t, err)
		assert.Contains(t, stdout, "crane")
		assert.Contains(t, stdout, "slate,crane,count")
	})

	t.Run("unknown run", func(t *testing.T) {
		_, _, err := execute(t, "snapshots", db, "--run", "missing")
		assert.ErrorIs(t, err, storage.ErrRunNotFound)
	})
}

func TestSnapshots_Empty(t *testing.T) {
	stdout, _, err := execute(t, "snapshots", filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	assert.Contains(t, stdout, "No snapshots saved yet")
}

func TestReport_Errors(t *testing.T) {
	input := writeFixture(t)

	tests := []struct {
		wantErr error
		name    string
		args    []string
	}{
		{
			name:    "missing input",
			args:    []string{"--input", filepath.Join(t.TempDir(), "missing.txt")},
			wantErr: common.ErrInputNotFound,
		},
		{
			name:    "unknown mode",
			args:    []string{"--input", input, "--mode", "colour"},
			wantErr: common.ErrInvalidMode,
		},
		{
			name:    "invalid guess",
			args:    []string{"--input", input, "--guess", "SLATE"},
			wantErr: common.ErrInvalidGuess,
		},
		{
			name:    "unknown format",
			args:    []string{"--input", input, "--mode", "stats", "--format", "xml"},
			wantErr: common.ErrInvalidFormat,
		},
		{
			name:    "machine format outside stats",
			args:    []string{"--input", input, "--format", "json"},
			wantErr: common.ErrInvalidFormat,
		},
		{
			name:    "browse with unknown mode",
			args:    []string{"browse", "--input", input, "--mode", "stats"},
			wantErr: common.ErrInvalidMode,
		},
		{
			name:    "browse with unknown theme",
			args:    []string{"browse", "--input", input, "--theme", "neon"},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestReport_Progress(t *testing.T) {
	input := writeFixture(t)

	stdout, stderr, err := execute(t, "--input", input, "--progress")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Grouping paths")
	assert.NotContains(t, stdout, "Grouping paths")
}

func TestReport_ExportFailureIsLogged(t *testing.T) {
	input := writeFixture(t)
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	_, stderr, err := execute(t, "--input", input, "--export", path, "--log-format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create export file")
	assert.Contains(t, stderr, `"msg":"Export failed"`)
	assert.Contains(t, stderr, `"path":"`+path+`"`)
}
