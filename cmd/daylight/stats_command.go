package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"daylight/internal/durationfmt"
	"daylight/internal/progressbar"
	"daylight/internal/solar"
	"daylight/internal/statusbar"
	"daylight/internal/yearprogress"
)

type statsJSON struct {
	Date             string            `json:"date"`
	Position         solar.Position    `json:"position"`
	Today            solar.DaySample   `json:"today"`
	Yesterday        solar.DaySample   `json:"yesterday"`
	DayLengthSeconds int64             `json:"day_length_seconds"`
	DeltaSeconds     map[string]int64  `json:"delta_seconds"`
	Year             yearJSON          `json:"year"`
	Display          map[string]string `json:"display"`
}

type yearJSON struct {
	WindowDays int      `json:"window_days"`
	MinSeconds int64    `json:"min_seconds"`
	MaxSeconds int64    `json:"max_seconds"`
	Progress   *float64 `json:"progress"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show today's sun events and year progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, cfg, err := ctx.buildReport(cmd)
			if err != nil {
				return err
			}
			style := ctx.style(cfg, report.Position)
			if jsonOutput {
				return writeJSON(cmd, buildStatsJSON(report, style))
			}

			colorize := shouldColorize(cmd.OutOrStdout())
			out := cmd.OutOrStdout()
			for _, line := range renderSectionHeader(fmt.Sprintf("Daylight %s at %s", report.Today.Date, report.Position), colorize) {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out, renderEventsTable(report, style, colorize))
			fmt.Fprintln(out)
			fmt.Fprintln(out, renderYearTable(report, style, colorize))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func renderEventsTable(report *statusbar.Report, style statusbar.Style, colorize bool) string {
	loc := style.Location
	if loc == nil {
		loc = time.Local
	}
	layout := style.TimeLayout
	if layout == "" {
		layout = "15:04"
	}
	row := func(label string, today, yesterday string, delta time.Duration) []string {
		return []string{label, today, yesterday, colorDelta(durationfmt.SignedMinutesSeconds(delta), colorize)}
	}
	rows := [][]string{
		row("Sunrise", report.Today.Sunrise.In(loc).Format(layout), report.Yesterday.Sunrise.In(loc).Format(layout), report.EventDelta(solar.Sunrise)),
		row("Sunset", report.Today.Sunset.In(loc).Format(layout), report.Yesterday.Sunset.In(loc).Format(layout), report.EventDelta(solar.Sunset)),
		row("Daytime", durationfmt.HoursMinutes(report.Today.Length()), durationfmt.HoursMinutes(report.Yesterday.Length()), report.DayLengthDelta()),
	}
	return renderTable(
		[]string{"Event", "Today", "Yesterday", "Change"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}

func renderYearTable(report *statusbar.Report, style statusbar.Style, colorize bool) string {
	progress := report.ProgressLabel()
	if !report.Year.Known() {
		progress = colorizeText(progress+" (day length constant)", statusWarn, colorize)
	}
	rows := [][]string{
		{"Shortest day", durationfmt.HoursMinutes(report.Year.Min)},
		{"Longest day", durationfmt.HoursMinutes(report.Year.Max)},
		{"Progress", progress},
		{"Bar", "[" + progressbar.Render(report.Year.Clamped(), style.BarWidth) + "]"},
	}
	return renderTable([]string{fmt.Sprintf("Next %d days", yearprogress.WindowDays), ""}, rows, nil)
}

func buildStatsJSON(report *statusbar.Report, style statusbar.Style) statsJSON {
	year := yearJSON{
		WindowDays: yearprogress.WindowDays,
		MinSeconds: int64(report.Year.Min / time.Second),
		MaxSeconds: int64(report.Year.Max / time.Second),
	}
	if report.Year.Known() {
		progress := report.Year.Progress
		year.Progress = &progress
	}
	return statsJSON{
		Date:             report.Today.Date.String(),
		Position:         report.Position,
		Today:            report.Today,
		Yesterday:        report.Yesterday,
		DayLengthSeconds: int64(report.Today.Length() / time.Second),
		DeltaSeconds: map[string]int64{
			"day_length": int64(report.DayLengthDelta() / time.Second),
			"sunrise":    int64(report.EventDelta(solar.Sunrise) / time.Second),
			"sunset":     int64(report.EventDelta(solar.Sunset) / time.Second),
		},
		Year: year,
		Display: map[string]string{
			"day_length": durationfmt.HoursMinutes(report.Today.Length()),
			"progress":   report.ProgressLabel(),
			"bar":        report.Bar(style.BarWidth),
		},
	}
}
