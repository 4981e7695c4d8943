// Package durationfmt renders day lengths and day-over-day deltas as the
// compact strings shown in the status bar.
package durationfmt

import (
	"fmt"
	"time"
)

// HoursMinutes formats d as "9h 5m", or "42m" when under an hour. Hours and
// minutes are derived from the truncated minute count, so trailing seconds
// never round up. Intended for non-negative day lengths.
func HoursMinutes(d time.Duration) string {
	minutes := int64(d / time.Minute)
	if minutes >= 60 {
		return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
	}
	return fmt.Sprintf("%dm", minutes)
}

// SignedMinutesSeconds formats a delta with an explicit sign: "+2m 7s",
// "-1m 30s", "-45s", "+0s".
func SignedMinutesSeconds(d time.Duration) string {
	minutes := int64(d / time.Minute)
	seconds := int64(d / time.Second)
	if abs(minutes) >= 1 {
		return fmt.Sprintf("%+dm %ds", minutes, abs(seconds)%60)
	}
	return fmt.Sprintf("%+ds", seconds)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
