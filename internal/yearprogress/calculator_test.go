package yearprogress

import (
	"errors"
	"math"
	"testing"
	"time"

	"daylight/internal/solar"
)

// curveProvider models a mid-latitude year: day length follows a cosine
// around 12h with its peak on peakDay (day of year).
type curveProvider struct {
	amplitude time.Duration
	peakDay   int
	calls     int
	failOn    *solar.Date
}

func (p *curveProvider) length(date solar.Date) time.Duration {
	yday := date.UTCMidnight().YearDay()
	angle := 2 * math.Pi * float64(yday-p.peakDay) / 365.25
	secs := 12*3600 + math.Cos(angle)*p.amplitude.Seconds()
	return time.Duration(math.Round(secs)) * time.Second
}

func (p *curveProvider) SunEventTime(date solar.Date, pos solar.Position, event solar.Event) (time.Time, error) {
	p.calls++
	if p.failOn != nil && *p.failOn == date {
		return time.Time{}, &solar.NoSunEventError{Date: date, Position: pos, Event: event}
	}
	noon := date.UTCMidnight().Add(12 * time.Hour)
	half := p.length(date) / 2
	if event == solar.Sunrise {
		return noon.Add(-half), nil
	}
	return noon.Add(half), nil
}

type constantProvider struct{}

func (constantProvider) SunEventTime(date solar.Date, _ solar.Position, event solar.Event) (time.Time, error) {
	base := date.UTCMidnight()
	if event == solar.Sunrise {
		return base.Add(6 * time.Hour), nil
	}
	return base.Add(18 * time.Hour), nil
}

var equator = solar.Position{Latitude: 0, Longitude: 0}

func TestComputeMatchesIndependentScan(t *testing.T) {
	provider := &curveProvider{amplitude: 4 * time.Hour, peakDay: 172}
	today := solar.NewDate(2024, time.March, 20)

	stats, err := Compute(today, equator, provider)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	shortest, longest := provider.length(today), provider.length(today)
	for i := 0; i < WindowDays; i++ {
		l := provider.length(today.AddDays(i))
		if l < shortest {
			shortest = l
		}
		if l > longest {
			longest = l
		}
	}
	if stats.Min != shortest || stats.Max != longest {
		t.Fatalf("extremes = %v/%v, want %v/%v", stats.Min, stats.Max, shortest, longest)
	}
	if stats.Min > stats.Max {
		t.Fatalf("min %v greater than max %v", stats.Min, stats.Max)
	}
	if stats.Today != provider.length(today) {
		t.Fatalf("today = %v, want %v", stats.Today, provider.length(today))
	}

	want := (provider.length(today) - shortest).Seconds() / (longest - shortest).Seconds()
	if math.Abs(stats.Progress-want) > 1e-12 {
		t.Fatalf("progress = %v, want %v", stats.Progress, want)
	}
	if stats.Progress < 0.4 || stats.Progress > 0.6 {
		t.Fatalf("equinox progress %v should sit near the middle", stats.Progress)
	}
}

func TestComputeCallsProviderForWindowAndToday(t *testing.T) {
	provider := &curveProvider{amplitude: time.Hour, peakDay: 172}
	if _, err := Compute(solar.NewDate(2023, time.July, 1), equator, provider); err != nil {
		t.Fatalf("Compute: %v", err)
	}
	// Two events per day, plus the separate lookup for today.
	if want := 2*WindowDays + 2; provider.calls != want {
		t.Fatalf("provider calls = %d, want %d", provider.calls, want)
	}
}

func TestComputeIsDeterministic(t *testing.T) {
	today := solar.NewDate(2024, time.November, 2)
	first, err := Compute(today, equator, &curveProvider{amplitude: 3 * time.Hour, peakDay: 172})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	second, err := Compute(today, equator, &curveProvider{amplitude: 3 * time.Hour, peakDay: 172})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if first != second {
		t.Fatalf("repeated calls differ: %+v vs %+v", first, second)
	}
}

func TestComputeSolsticeExtremes(t *testing.T) {
	provider := &curveProvider{amplitude: 4 * time.Hour, peakDay: 172}
	today := solar.NewDate(2024, time.June, 20)
	stats, err := Compute(today, equator, provider)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if stats.Progress < 0.99 {
		t.Fatalf("progress at the longest day = %v, want ~1", stats.Progress)
	}
}

func TestComputeDegenerateRange(t *testing.T) {
	stats, err := Compute(solar.NewDate(2024, time.January, 1), equator, constantProvider{})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if stats.Known() {
		t.Fatalf("expected unknown progress, got %v", stats.Progress)
	}
	if stats.Min != 12*time.Hour || stats.Max != 12*time.Hour {
		t.Fatalf("unexpected extremes %v/%v", stats.Min, stats.Max)
	}
	if stats.Clamped() != 0 {
		t.Fatalf("Clamped() = %v, want 0", stats.Clamped())
	}
}

func TestComputePropagatesNoSunEvent(t *testing.T) {
	today := solar.NewDate(2024, time.March, 1)
	fail := today.AddDays(100)
	provider := &curveProvider{amplitude: time.Hour, peakDay: 172, failOn: &fail}

	_, err := Compute(today, equator, provider)
	if !errors.Is(err, solar.ErrNoSunEvent) {
		t.Fatalf("expected ErrNoSunEvent, got %v", err)
	}
}

func TestClamped(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.01, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.2, 1},
	}
	for _, tt := range tests {
		if got := (Stats{Progress: tt.in}).Clamped(); got != tt.want {
			t.Errorf("Clamped(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
