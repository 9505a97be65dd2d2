package main

import (
	"fmt"

	"github.com/Veraticus/slate/internal/common"
	"github.com/Veraticus/slate/internal/config"
	"github.com/Veraticus/slate/internal/tui"
	"github.com/Veraticus/slate/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func browseCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the groupings interactively",
		Long: `Open a terminal browser over both groupings.

The left pane lists the buckets with their sizes, the right pane shows every path
in the selected bucket. Press / to filter keys, tab to switch grouping, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd, v)
		},
	}

	cmd.Flags().String("mode", modeColor, "grouping shown first (color, subtree)")
	cmd.Flags().String("theme", "default", "color theme (default, catppuccin)")
	_ = v.BindPFlag("tui.theme", cmd.Flags().Lookup("theme"))

	return cmd
}

func runBrowse(cmd *cobra.Command, v *viper.Viper) error {
	mode, _ := cmd.Flags().GetString("mode")

	var grouping tui.Grouping
	switch mode {
	case modeColor:
		grouping = tui.GroupingPattern
	case modeSubtree:
		grouping = tui.GroupingSubtree
	default:
		return fmt.Errorf("%w: %q (use color or subtree)", common.ErrInvalidMode, mode)
	}

	theme, err := themes.ByName(v.GetString("tui.theme"))
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	c, err := classify(cmd.Context(), settings, nil)
	if err != nil {
		return err
	}

	return tui.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), c.patterns, c.subtrees,
		tui.WithGrouping(grouping),
		tui.WithTheme(theme),
		tui.WithGuess(settings.Guess),
	)
}
