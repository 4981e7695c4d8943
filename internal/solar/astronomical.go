package solar

import (
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Astronomical is the production Provider. It evaluates the NOAA solar
// equations locally and returns UTC instants.
type Astronomical struct{}

// SunEventTime implements Provider.
func (Astronomical) SunEventTime(date Date, pos Position, event Event) (time.Time, error) {
	rise, set := sunrise.SunriseSunset(pos.Latitude, pos.Longitude, date.Year, date.Month, date.Day)

	var t time.Time
	switch event {
	case Sunrise:
		t = rise
	case Sunset:
		t = set
	}
	// go-sunrise signals polar day and night with zero times.
	if t.IsZero() {
		return time.Time{}, &NoSunEventError{Date: date, Position: pos, Event: event}
	}
	return t.UTC(), nil
}
