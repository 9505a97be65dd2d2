package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/slate/internal/cli"
	"github.com/Veraticus/slate/internal/common"
	"github.com/Veraticus/slate/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

const localConfig = "slate.yaml"

func newRootCmd(v *viper.Viper) *cobra.Command {
	var cfgFile string

	config.SetDefaults(v)

	rootCmd := &cobra.Command{
		Use:   "slate",
		Short: "🟩 Wordle solver path classifier",
		Long: `slate: organises a Wordle solver's decision paths for one opening guess.

Every path is filed under the colour pattern the opening guess produces against
its answer, and under the second guess the solver plays next.`,
		Example: `  slate --mode color --full
  slate --mode subtree
  slate --mode stats --format json
  slate --search g_y__
  slate --export color_full.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, v)
		},
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./slate.yaml or $HOME/.config/slate/config.yaml)")
	flags.String("input", config.DefaultInput, "solver path file")
	flags.String("guess", config.DefaultGuess, "opening guess every path starts with")
	flags.Int("pattern-limit", config.DefaultPatternLimit, "paths shown per pattern with --full")
	flags.Int("subtree-limit", config.DefaultSubtreeLimit, "paths shown per subtree with --full")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	// Bind flags to viper
	_ = v.BindPFlag(config.KeyInput, flags.Lookup("input"))
	_ = v.BindPFlag(config.KeyGuess, flags.Lookup("guess"))
	_ = v.BindPFlag(config.KeyPatternLimit, flags.Lookup("pattern-limit"))
	_ = v.BindPFlag(config.KeySubtreeLimit, flags.Lookup("subtree-limit"))
	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLogFormat, flags.Lookup("log-format"))

	addReportFlags(rootCmd)

	// Add commands
	rootCmd.AddCommand(browseCmd(v))
	rootCmd.AddCommand(snapshotsCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	// Set up signal handling
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx := interrupts.HandleInterrupts(context.Background())

	err := newRootCmd(viper.New()).ExecuteContext(ctx)
	interrupts.Stop() // Always cleanup

	if err != nil {
		reportError(os.Stderr, err)
	}
	if code := exitCode(err, interrupts.WasInterrupted()); code != 0 {
		os.Exit(code)
	}
}

// exitCode follows the shell convention of 128+SIGINT for interrupted runs.
func exitCode(err error, interrupted bool) int {
	switch {
	case interrupted:
		return 130
	case err != nil:
		return 1
	default:
		return 0
	}
}

// reportError prints a fatal error the way the user should see it.
func reportError(w io.Writer, err error) {
	msg, ok := common.UserMessage(err)
	if !ok {
		fmt.Fprintln(w, cli.FormatError(err.Error()))
		return
	}

	fmt.Fprintln(w, cli.FormatError("ERROR: "+msg+"!"))
	if errors.Is(err, common.ErrInputNotFound) {
		fmt.Fprintln(w, "   Save the solver paths there, one comma-separated path per line, or pass --input")
	}
}

func initConfig(v *viper.Viper, cfgFile string, logOut io.Writer) error {
	// Set up config file
	switch {
	case cfgFile != "":
		path := config.ExpandPath(cfgFile)
		if !fileExists(path) {
			return fmt.Errorf("failed to read config: %w: %s not found", common.ErrInvalidConfig, path)
		}
		v.SetConfigFile(path)
	case fileExists(localConfig):
		v.SetConfigFile(localConfig)
	default:
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "slate"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Environment variables, e.g. SLATE_DISPLAY_PATTERN_LIMIT
	v.SetEnvPrefix("SLATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// No config file means defaults and flags only.
	}

	if err := setupLogging(v, logOut); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		slog.Debug("Loaded config file", "path", used)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func setupLogging(v *viper.Viper, w io.Writer) error {
	level, err := common.ParseLevel(v.GetString(config.KeyLogLevel))
	if err != nil {
		return err
	}
	return common.SetupLogger(w, level, v.GetString(config.KeyLogFormat))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "slate %s\n", version)
		},
	}
}
