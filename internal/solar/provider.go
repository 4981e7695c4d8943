package solar

import (
	"errors"
	"fmt"
	"time"
)

// Position is a geographic position in degrees. Range checks belong to
// whoever constructs it.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (p Position) String() string {
	return fmt.Sprintf("%.4f,%.4f", p.Latitude, p.Longitude)
}

// Event selects sunrise or sunset.
type Event int

const (
	Sunrise Event = iota
	Sunset
)

func (e Event) String() string {
	switch e {
	case Sunrise:
		return "sunrise"
	case Sunset:
		return "sunset"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// ErrNoSunEvent is matched by every NoSunEventError.
var ErrNoSunEvent = errors.New("no sun event")

// NoSunEventError reports a date and position where the sun never rises or
// never sets (polar day or night).
type NoSunEventError struct {
	Date     Date
	Position Position
	Event    Event
}

func (e *NoSunEventError) Error() string {
	return fmt.Sprintf("no %s on %s at %s", e.Event, e.Date, e.Position)
}

func (e *NoSunEventError) Unwrap() error { return ErrNoSunEvent }

// Provider computes the instant of a sun event for a date and position.
type Provider interface {
	SunEventTime(date Date, pos Position, event Event) (time.Time, error)
}

// DaySample holds one date's sunrise and sunset.
type DaySample struct {
	Date    Date      `json:"date"`
	Sunrise time.Time `json:"sunrise"`
	Sunset  time.Time `json:"sunset"`
}

// Length is the day length, sunset minus sunrise.
func (s DaySample) Length() time.Duration {
	return s.Sunset.Sub(s.Sunrise)
}

// Sample asks p for both events of date.
func Sample(p Provider, date Date, pos Position) (DaySample, error) {
	rise, err := p.SunEventTime(date, pos, Sunrise)
	if err != nil {
		return DaySample{}, err
	}
	set, err := p.SunEventTime(date, pos, Sunset)
	if err != nil {
		return DaySample{}, err
	}
	return DaySample{Date: date, Sunrise: rise, Sunset: set}, nil
}

// DayLength returns the day length of date at pos.
func DayLength(p Provider, date Date, pos Position) (time.Duration, error) {
	sample, err := Sample(p, date, pos)
	if err != nil {
		return 0, err
	}
	return sample.Length(), nil
}
