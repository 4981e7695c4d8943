package solar_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"daylight/internal/solar"
)

func TestDateArithmetic(t *testing.T) {
	d := solar.NewDate(2024, time.February, 28)
	if got := d.Next().String(); got != "2024-02-29" {
		t.Fatalf("Next() = %s, want 2024-02-29", got)
	}
	if got := d.AddDays(2).String(); got != "2024-03-01" {
		t.Fatalf("AddDays(2) = %s, want 2024-03-01", got)
	}
	if got := solar.NewDate(2025, time.January, 1).Prev().String(); got != "2024-12-31" {
		t.Fatalf("Prev() = %s, want 2024-12-31", got)
	}
	if got := d.AddDays(366).String(); got != "2025-02-28" {
		t.Fatalf("AddDays(366) = %s, want 2025-02-28", got)
	}
}

func TestDateOfUsesWallClock(t *testing.T) {
	zone := time.FixedZone("UTC-8", -8*3600)
	ts := time.Date(2024, time.June, 20, 23, 30, 0, 0, zone)
	if got := solar.DateOf(ts).String(); got != "2024-06-20" {
		t.Fatalf("DateOf = %s, want local date 2024-06-20", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := solar.ParseDate("2024-06-21")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d != (solar.Date{Year: 2024, Month: time.June, Day: 21}) {
		t.Fatalf("unexpected date %+v", d)
	}
	if _, err := solar.ParseDate("21/06/2024"); err == nil {
		t.Fatal("expected error for malformed date")
	}
}

func TestAstronomicalMidLatitude(t *testing.T) {
	london := solar.Position{Latitude: 51.5074, Longitude: -0.1278}
	summer, err := solar.Sample(solar.Astronomical{}, solar.NewDate(2024, time.June, 21), london)
	if err != nil {
		t.Fatalf("Sample summer: %v", err)
	}
	winter, err := solar.Sample(solar.Astronomical{}, solar.NewDate(2024, time.December, 21), london)
	if err != nil {
		t.Fatalf("Sample winter: %v", err)
	}

	if !summer.Sunrise.Before(summer.Sunset) {
		t.Fatalf("sunrise %v not before sunset %v", summer.Sunrise, summer.Sunset)
	}
	if summer.Sunrise.Location() != time.UTC {
		t.Fatalf("expected UTC instants, got %v", summer.Sunrise.Location())
	}
	if l := summer.Length(); l < 16*time.Hour || l > 17*time.Hour {
		t.Fatalf("London midsummer day length %v outside 16h-17h", l)
	}
	if l := winter.Length(); l < 7*time.Hour || l > 8*time.Hour+30*time.Minute {
		t.Fatalf("London midwinter day length %v outside 7h-8h30m", l)
	}
}

func TestAstronomicalPolarDay(t *testing.T) {
	svalbard := solar.Position{Latitude: 78.22, Longitude: 15.65}
	date := solar.NewDate(2024, time.June, 21)

	_, err := solar.Astronomical{}.SunEventTime(date, svalbard, solar.Sunrise)
	if !errors.Is(err, solar.ErrNoSunEvent) {
		t.Fatalf("expected ErrNoSunEvent, got %v", err)
	}
	var noEvent *solar.NoSunEventError
	if !errors.As(err, &noEvent) {
		t.Fatalf("expected *NoSunEventError, got %T", err)
	}
	if noEvent.Date != date || noEvent.Event != solar.Sunrise {
		t.Fatalf("unexpected error details: %+v", noEvent)
	}
	if _, err := solar.DayLength(solar.Astronomical{}, date, svalbard); !errors.Is(err, solar.ErrNoSunEvent) {
		t.Fatalf("DayLength: expected ErrNoSunEvent, got %v", err)
	}
}

func TestEventString(t *testing.T) {
	if solar.Sunrise.String() != "sunrise" || solar.Sunset.String() != "sunset" {
		t.Fatalf("unexpected event names %q %q", solar.Sunrise, solar.Sunset)
	}
}

func TestDateJSON(t *testing.T) {
	sample := solar.DaySample{Date: solar.NewDate(2024, time.June, 21)}
	data, err := json.Marshal(sample)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"date":"2024-06-21"`) {
		t.Fatalf("expected ISO date in %s", data)
	}
	var decoded solar.DaySample
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Date != sample.Date {
		t.Fatalf("decoded date %v, want %v", decoded.Date, sample.Date)
	}
}
