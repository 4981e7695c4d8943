package main

import (
	"github.com/spf13/cobra"

	"daylight/internal/logging"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var dateFlag string
	var widthFlag int

	ctx := newCommandContext(&configFlag, &dateFlag, &widthFlag)

	rootCmd := &cobra.Command{
		Use:           "daylight",
		Short:         "Daylight statistics for your status bar",
		Long:          "Prints today's day length, sunrise and sunset changes and the year's daylight progress as an xbar/SwiftBar menu.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(logging.WithCorrelationID(cmd.Context()))
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "", "Compute for this date (YYYY-MM-DD) instead of today")
	rootCmd.PersistentFlags().IntVar(&widthFlag, "width", 0, "Progress bar width in cells (overrides display.bar_width)")

	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func runMenu(cmd *cobra.Command, ctx *commandContext) error {
	report, cfg, err := ctx.buildReport(cmd)
	if err != nil {
		return err
	}
	m := report.Menu(ctx.style(cfg, report.Position))
	return m.Render(cmd.OutOrStdout())
}
