// Package statusbar assembles the daylight menu: today's day length as the
// bar title, day-over-day changes for sunrise and sunset, and the year
// progress bar between the shortest and longest days.
package statusbar

import (
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"daylight/internal/durationfmt"
	"daylight/internal/logging"
	"daylight/internal/menu"
	"daylight/internal/progressbar"
	"daylight/internal/solar"
	"daylight/internal/yearprogress"
)

const day = 24 * time.Hour

// Style carries presentation settings for the dropdown items.
type Style struct {
	BarWidth   int
	Font       string
	FontSize   int
	Color      string
	DetailsURL string
	TimeLayout string
	Location   *time.Location
}

// Report holds every value shown in the menu.
type Report struct {
	Position  solar.Position     `json:"position"`
	Today     solar.DaySample    `json:"today"`
	Yesterday solar.DaySample    `json:"yesterday"`
	Year      yearprogress.Stats `json:"year"`
}

// Build computes the report for today at pos. A missing sun event on any
// scanned date fails the whole report.
func Build(today solar.Date, pos solar.Position, provider solar.Provider, logger *slog.Logger) (*Report, error) {
	logger = logging.NewComponentLogger(logger, "statusbar").With(
		slog.String(logging.FieldDate, today.String()),
		slog.Float64(logging.FieldLatitude, pos.Latitude),
		slog.Float64(logging.FieldLongitude, pos.Longitude),
	)

	current, err := solar.Sample(provider, today, pos)
	if err != nil {
		return nil, fmt.Errorf("sun events for %s: %w", today, err)
	}
	previous, err := solar.Sample(provider, today.Prev(), pos)
	if err != nil {
		return nil, fmt.Errorf("sun events for %s: %w", today.Prev(), err)
	}
	stats, err := yearprogress.Compute(today, pos, provider)
	if err != nil {
		return nil, err
	}

	if !stats.Known() {
		logger.Warn("day length does not vary over the year; progress unknown",
			slog.Duration("day_length", stats.Min))
	}
	logger.Debug("report computed",
		slog.Duration("day_length", current.Length()),
		slog.Duration("min", stats.Min),
		slog.Duration("max", stats.Max),
		slog.Float64("progress", stats.Clamped()),
	)

	return &Report{Position: pos, Today: current, Yesterday: previous, Year: stats}, nil
}

// DayLengthDelta is today's day length minus yesterday's.
func (r *Report) DayLengthDelta() time.Duration {
	return r.Today.Length() - r.Yesterday.Length()
}

// EventDelta is how much later (positive) or earlier the event happens
// today than yesterday, by time of day.
func (r *Report) EventDelta(event solar.Event) time.Duration {
	if event == solar.Sunset {
		return r.Today.Sunset.Sub(r.Yesterday.Sunset) - day
	}
	return r.Today.Sunrise.Sub(r.Yesterday.Sunrise) - day
}

// ProgressLabel renders the year progress as a percentage.
func (r *Report) ProgressLabel() string {
	if !r.Year.Known() {
		return "unknown"
	}
	return fmt.Sprintf("%.1f%%", r.Year.Progress*100)
}

// Bar renders "min [bar] max" at the given width.
func (r *Report) Bar(width int) string {
	return fmt.Sprintf("%s [%s] %s",
		durationfmt.HoursMinutes(r.Year.Min),
		progressbar.Render(r.Year.Clamped(), width),
		durationfmt.HoursMinutes(r.Year.Max),
	)
}

// Menu lays the report out as a status-bar menu.
func (r *Report) Menu(style Style) menu.Menu {
	loc := style.Location
	if loc == nil {
		loc = time.Local
	}
	layout := style.TimeLayout
	if layout == "" {
		layout = "15:04"
	}

	item := func(text string) menu.Item {
		return menu.Item{Text: text, Color: style.Color}
	}
	eventItem := func(event solar.Event, at time.Time) menu.Item {
		return item(fmt.Sprintf("%s: %s (%s)",
			eventLabel(event),
			at.In(loc).Format(layout),
			durationfmt.SignedMinutesSeconds(r.EventDelta(event)),
		))
	}

	bar := item(r.Bar(style.BarWidth))
	bar.Font = style.Font
	bar.Size = style.FontSize
	bar.Href = style.DetailsURL

	return menu.Menu{
		menu.Text(durationfmt.HoursMinutes(r.Today.Length())),
		menu.Sep(),
		item(fmt.Sprintf("Daytime: %s (%s)",
			durationfmt.HoursMinutes(r.Today.Length()),
			durationfmt.SignedMinutesSeconds(r.DayLengthDelta()),
		)),
		eventItem(solar.Sunrise, r.Today.Sunrise),
		eventItem(solar.Sunset, r.Today.Sunset),
		menu.Sep(),
		bar,
		item("Progress: " + r.ProgressLabel()),
	}
}

func eventLabel(event solar.Event) string {
	return cases.Title(language.Und).String(event.String())
}
