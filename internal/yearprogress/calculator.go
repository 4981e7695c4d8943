// Package yearprogress places today's day length between the shortest and
// longest days of the coming year.
package yearprogress

import (
	"fmt"
	"math"
	"time"

	"daylight/internal/solar"
)

// WindowDays covers a full solar year even across a leap day, so the scan
// always contains both solstices.
const WindowDays = 366

// Stats is the result of a year scan.
type Stats struct {
	Min      time.Duration `json:"min"`
	Max      time.Duration `json:"max"`
	Today    time.Duration `json:"today"`
	Progress float64       `json:"-"`
}

// Known reports whether Progress is defined. It is NaN when the window has
// no variation in day length.
func (s Stats) Known() bool {
	return !math.IsNaN(s.Progress)
}

// Clamped returns Progress limited to [0, 1], or 0 when unknown.
func (s Stats) Clamped() float64 {
	switch {
	case !s.Known():
		return 0
	case s.Progress < 0:
		return 0
	case s.Progress > 1:
		return 1
	default:
		return s.Progress
	}
}

// Compute scans WindowDays dates starting at today and returns the extreme
// day lengths and today's fractional position between them. Progress is not
// clamped. Any provider failure aborts the scan.
func Compute(today solar.Date, pos solar.Position, provider solar.Provider) (Stats, error) {
	shortest := time.Duration(math.MaxInt64)
	longest := time.Duration(math.MinInt64)

	date := today
	for i := 0; i < WindowDays; i++ {
		length, err := solar.DayLength(provider, date, pos)
		if err != nil {
			return Stats{}, fmt.Errorf("year scan %s: %w", date, err)
		}
		if length < shortest {
			shortest = length
		}
		if length > longest {
			longest = length
		}
		date = date.Next()
	}

	current, err := solar.DayLength(provider, today, pos)
	if err != nil {
		return Stats{}, fmt.Errorf("day length %s: %w", today, err)
	}

	return Stats{
		Min:      shortest,
		Max:      longest,
		Today:    current,
		Progress: fraction(current, shortest, longest),
	}, nil
}

func fraction(current, shortest, longest time.Duration) float64 {
	span := wholeSeconds(longest - shortest)
	if span == 0 {
		return math.NaN()
	}
	return wholeSeconds(current-shortest) / span
}

func wholeSeconds(d time.Duration) float64 {
	return float64(int64(d / time.Second))
}
