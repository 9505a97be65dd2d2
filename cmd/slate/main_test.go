package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/slate/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePaths = `slate,crane,mount
slate,crane,count
slate,pious,shout
slate,stale
slate

crane,slate,mount
slate,crane,MOUNT
`

// writeFixture writes the solver path fixture and returns its path.
func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "slate_t.txt")
	require.NoError(t, os.WriteFile(path, []byte(fixturePaths), 0o600))
	return path
}

// execute runs the root command in isolation and captures both streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd(viper.New())
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "slate dev\n", stdout)
}

func TestConfigFile(t *testing.T) {
	input := writeFixture(t)
	cfg := filepath.Join(t.TempDir(), "slate.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("input: "+input+"\ndisplay:\n  pattern_limit: 1\n"), 0o600))

	stdout, _, err := execute(t, "--config", cfg, "--full")
	require.NoError(t, err)
	assert.Contains(t, stdout, "   slate,crane,count\n   ... and 1 more\n")
}

func TestConfigFile_Missing(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestEnvironment(t *testing.T) {
	input := writeFixture(t)
	t.Setenv("SLATE_INPUT", input)
	t.Setenv("SLATE_DISPLAY_SUBTREE_LIMIT", "1")

	stdout, _, err := execute(t, "--mode", "subtree", "--full")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Unique second guesses: 3")
	assert.Contains(t, stdout, "   ... and 1 more")
}

func TestLogging(t *testing.T) {
	input := writeFixture(t)

	_, stderr, err := execute(t, "--input", input, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"Grouped solver paths"`)

	_, _, err = execute(t, "--input", input, "--log-level", "loud")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestReportError(t *testing.T) {
	tests := []struct {
		err      error
		name     string
		contains []string
	}{
		{
			name: "missing input",
			err:  common.NewUserError("slate_t.txt not found", common.ErrInputNotFound),
			contains: []string{
				"❌ ERROR: slate_t.txt not found!",
				"or pass --input",
			},
		},
		{
			name:     "plain error",
			err:      common.ErrInvalidMode,
			contains: []string{"❌ invalid mode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			reportError(&buf, tt.err)
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil, false))
	assert.Equal(t, 1, exitCode(common.ErrInvalidMode, false))
	assert.Equal(t, 130, exitCode(context.Canceled, true))
	assert.Equal(t, 130, exitCode(nil, true))
}
