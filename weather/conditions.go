// weather/conditions.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package weather generates per-turn mission conditions: start time,
// time of day, and a weather roll from seasonal chances.
package weather

import (
	"time"

	"github.com/Starfire13/dcs-retribution/rand"
)

type TimeOfDay int

const (
	Dawn TimeOfDay = iota
	Day
	Dusk
	Night
	numTimesOfDay
)

func (t TimeOfDay) String() string {
	switch t {
	case Dawn:
		return "dawn"
	case Day:
		return "day"
	case Dusk:
		return "dusk"
	default:
		return "night"
	}
}

// Next returns the time of day of the following turn.
func (t TimeOfDay) Next() TimeOfDay {
	return (t + 1) % numTimesOfDay
}

// HourRange is a whole-hour window within a day. Start may exceed End,
// in which case the window wraps past midnight.
type HourRange struct {
	Start, End int
}

// DaytimeMap gives the hour windows for each time of day on a map.
// Whole hours only: mission start times stay on the hour.
type DaytimeMap struct {
	Dawn, Day, Dusk, Night HourRange
}

func (m DaytimeMap) RangeOf(t TimeOfDay) HourRange {
	switch t {
	case Dawn:
		return m.Dawn
	case Day:
		return m.Day
	case Dusk:
		return m.Dusk
	default:
		return m.Night
	}
}

var DefaultDaytimeMap = DaytimeMap{
	Dawn:  HourRange{6, 8},
	Day:   HourRange{8, 16},
	Dusk:  HourRange{16, 18},
	Night: HourRange{0, 5},
}

// NightMissions is the user's preference for mission start times.
type NightMissions int

const (
	DayAndNight NightMissions = iota
	OnlyDay
	OnlyNight
)

// Squeezed daytime maps for users who never (or only) want to fly at
// night: every time of day keeps distinct lighting, but all windows fall
// in the preferred part of the day.
var onlyDayMap = DaytimeMap{
	Dawn:  HourRange{8, 9},
	Day:   HourRange{10, 12},
	Dusk:  HourRange{12, 14},
	Night: HourRange{14, 17},
}

var onlyNightMap = DaytimeMap{
	Dawn:  HourRange{0, 3},
	Day:   HourRange{3, 6},
	Dusk:  HourRange{21, 22},
	Night: HourRange{22, 23},
}

type Season int

const (
	Winter Season = iota
	Spring
	Summer
	Autumn
)

func (s Season) String() string {
	switch s {
	case Winter:
		return "winter"
	case Spring:
		return "spring"
	case Summer:
		return "summer"
	default:
		return "autumn"
	}
}

// SeasonForDate maps a date to its meteorological season.
func SeasonForDate(day time.Time) Season {
	switch day.Month() {
	case time.December, time.January, time.February:
		return Winter
	case time.March, time.April, time.May:
		return Spring
	case time.June, time.July, time.August:
		return Summer
	default:
		return Autumn
	}
}

type WeatherType int

const (
	ClearSkies WeatherType = iota
	Cloudy
	Raining
	Thunderstorm
)

func (w WeatherType) String() string {
	switch w {
	case ClearSkies:
		return "clear skies"
	case Cloudy:
		return "cloudy"
	case Raining:
		return "raining"
	default:
		return "thunderstorm"
	}
}

// WeatherChances are relative weights for each weather type.
type WeatherChances struct {
	Thunderstorm int
	Raining      int
	Cloudy       int
	ClearSkies   int
}

// SeasonalConditions are a theater's weather weights per season.
type SeasonalConditions struct {
	Chances map[Season]WeatherChances
}

var DefaultSeasonalConditions = SeasonalConditions{
	Chances: map[Season]WeatherChances{
		Winter: {Thunderstorm: 1, Raining: 20, Cloudy: 60, ClearSkies: 20},
		Spring: {Thunderstorm: 2, Raining: 20, Cloudy: 40, ClearSkies: 40},
		Summer: {Thunderstorm: 5, Raining: 10, Cloudy: 20, ClearSkies: 65},
		Autumn: {Thunderstorm: 2, Raining: 30, Cloudy: 40, ClearSkies: 30},
	},
}

// Conditions are the generated environment for one turn's missions.
type Conditions struct {
	TimeOfDay TimeOfDay
	StartTime time.Time
	Weather   WeatherType
}

// Generate rolls the conditions for a turn. day carries the campaign
// date; the returned start time may roll over to the next day when the
// time-of-day window wraps midnight.
func Generate(day time.Time, tod TimeOfDay, daytime DaytimeMap, seasonal SeasonalConditions,
	night NightMissions, r *rand.Rand) Conditions {
	switch night {
	case OnlyDay:
		daytime = onlyDayMap
	case OnlyNight:
		daytime = onlyNightMap
	}
	return Conditions{
		TimeOfDay: tod,
		StartTime: generateStartTime(day, daytime.RangeOf(tod), r),
		Weather:   rollWeather(seasonal, SeasonForDate(day), r),
	}
}

// generateStartTime picks a whole hour within the window. Windows that
// wrap midnight, or that start at midnight, advance to the next day.
func generateStartTime(day time.Time, window HourRange, r *rand.Rand) time.Time {
	start, end := window.Start, window.End
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	var hour int
	if start > end {
		hour = start + r.Intn(end+24-start+1)
		if hour > 23 {
			date = date.AddDate(0, 0, 1)
			hour %= 24
		}
	} else {
		if start == 0 {
			date = date.AddDate(0, 0, 1)
		}
		hour = start + r.Intn(end-start+1)
	}
	return date.Add(time.Duration(hour) * time.Hour)
}

func rollWeather(seasonal SeasonalConditions, season Season, r *rand.Rand) WeatherType {
	chances, ok := seasonal.Chances[season]
	if !ok {
		return ClearSkies
	}
	types := []WeatherType{Thunderstorm, Raining, Cloudy, ClearSkies}
	weights := []int{chances.Thunderstorm, chances.Raining, chances.Cloudy, chances.ClearSkies}
	idx := rand.SampleWeighted(r, weights, func(w int) int { return w })
	if idx < 0 {
		return ClearSkies
	}
	return types[idx]
}
