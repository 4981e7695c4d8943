package solar

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a civil calendar date with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes out-of-range months and days the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the wall-clock date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", value, err)
	}
	return DateOf(t), nil
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return NewDate(d.Year, d.Month, d.Day+n)
}

// Next returns the following day.
func (d Date) Next() Date { return d.AddDays(1) }

// Prev returns the previous day.
func (d Date) Prev() Date { return d.AddDays(-1) }

// UTCMidnight returns the start of the date in UTC.
func (d Date) UTCMidnight() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.UTCMidnight().Format(dateLayout)
}

// MarshalText encodes the date as YYYY-MM-DD.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes a YYYY-MM-DD date.
func (d *Date) UnmarshalText(text []byte) error {
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
