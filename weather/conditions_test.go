// weather/conditions_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package weather

import (
	"testing"
	"time"

	"github.com/Starfire13/dcs-retribution/rand"
)

func seededRand(s int64) *rand.Rand {
	r := rand.Make()
	r.Seed(s)
	return r
}

func TestTimeOfDayNext(t *testing.T) {
	if got := Dawn.Next(); got != Day {
		t.Errorf("after dawn: got %v, want day", got)
	}
	if got := Night.Next(); got != Dawn {
		t.Errorf("after night: got %v, want dawn", got)
	}
}

func TestSeasonForDate(t *testing.T) {
	for _, tc := range []struct {
		month time.Month
		want  Season
	}{
		{time.January, Winter},
		{time.December, Winter},
		{time.March, Spring},
		{time.August, Summer},
		{time.November, Autumn},
	} {
		day := time.Date(2008, tc.month, 15, 0, 0, 0, 0, time.UTC)
		if got := SeasonForDate(day); got != tc.want {
			t.Errorf("%v: got %v, want %v", tc.month, got, tc.want)
		}
	}
}

func TestGenerateStartTime(t *testing.T) {
	day := time.Date(2008, time.August, 8, 0, 0, 0, 0, time.UTC)
	r := seededRand(1)

	// Plain window: every roll lands on a whole hour inside it, same day.
	for i := 0; i < 50; i++ {
		got := generateStartTime(day, HourRange{8, 16}, r)
		if got.Hour() < 8 || got.Hour() > 16 {
			t.Fatalf("hour %d outside [8, 16]", got.Hour())
		}
		if got.Minute() != 0 || got.Second() != 0 {
			t.Fatalf("start time %v not on the hour", got)
		}
		if got.Day() != day.Day() {
			t.Fatalf("plain window moved to %v", got)
		}
	}

	// Wrapping window: hours 22, 23, 0, 1 or 2, and rolls past midnight
	// land on the following day.
	sawNextDay := false
	for i := 0; i < 50; i++ {
		got := generateStartTime(day, HourRange{22, 2}, r)
		h := got.Hour()
		if h > 2 && h < 22 {
			t.Fatalf("hour %d outside the 22-02 window", h)
		}
		if h <= 2 {
			sawNextDay = true
			if got.Day() != day.Day()+1 {
				t.Fatalf("post-midnight roll %v did not advance the date", got)
			}
		}
	}
	if !sawNextDay {
		t.Errorf("50 rolls of a 22-02 window never crossed midnight")
	}

	// A window starting at midnight belongs to the next day outright.
	got := generateStartTime(day, HourRange{0, 5}, r)
	if got.Day() != day.Day()+1 {
		t.Errorf("midnight window start %v did not advance the date", got)
	}
}

func TestGenerateNightMissions(t *testing.T) {
	day := time.Date(2008, time.August, 8, 0, 0, 0, 0, time.UTC)
	r := seededRand(1)

	for i := 0; i < 20; i++ {
		c := Generate(day, Night, DefaultDaytimeMap, DefaultSeasonalConditions, OnlyDay, r)
		if h := c.StartTime.Hour(); h < 14 || h > 17 {
			t.Fatalf("only-day night mission starts at %02d00", h)
		}
		if c.TimeOfDay != Night {
			t.Fatalf("time of day rewritten to %v", c.TimeOfDay)
		}
	}
	for i := 0; i < 20; i++ {
		c := Generate(day, Day, DefaultDaytimeMap, DefaultSeasonalConditions, OnlyNight, r)
		if h := c.StartTime.Hour(); h < 3 || h > 6 {
			t.Fatalf("only-night day mission starts at %02d00", h)
		}
	}
}

func TestRollWeather(t *testing.T) {
	r := seededRand(1)

	forced := SeasonalConditions{Chances: map[Season]WeatherChances{
		Summer: {Thunderstorm: 1},
	}}
	for i := 0; i < 10; i++ {
		if got := rollWeather(forced, Summer, r); got != Thunderstorm {
			t.Fatalf("sole-weight roll produced %v", got)
		}
	}

	// Season missing from the table falls back to clear skies.
	if got := rollWeather(forced, Winter, r); got != ClearSkies {
		t.Errorf("missing season: got %v, want clear skies", got)
	}

	// Zero weights likewise.
	empty := SeasonalConditions{Chances: map[Season]WeatherChances{Summer: {}}}
	if got := rollWeather(empty, Summer, r); got != ClearSkies {
		t.Errorf("zero weights: got %v, want clear skies", got)
	}
}
