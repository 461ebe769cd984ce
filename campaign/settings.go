// campaign/settings.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package campaign

import (
	"time"

	"github.com/Starfire13/dcs-retribution/commander"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
	"github.com/Starfire13/dcs-retribution/weather"
)

// Settings are the user-facing campaign options. The commander never
// sees this struct; PlannerSettingsFor copies the relevant knobs out so
// the planner stays decoupled from the campaign aggregate.
type Settings struct {
	// Plan packages automatically for both sides each turn.
	AutoAto bool

	// Per-side willingness to fly into threat rings, 0-100.
	BlueAggressiveness int
	RedAggressiveness  int

	DesiredMissionLength time.Duration

	// Relative weights for 2/3/4 ship flights.
	FlightSizeWeights [3]int

	// How far behind the supported position refueling tracks are
	// anchored, nautical miles.
	TankerStandoffNM float64

	NightMissions        weather.NightMissions
	OcaTargetMinAircraft int

	// Mod name -> enabled; gates mod-only airframes out of factions.
	EnabledMods map[string]bool
}

func DefaultSettings() Settings {
	return Settings{
		AutoAto:              true,
		BlueAggressiveness:   50,
		RedAggressiveness:    50,
		DesiredMissionLength: 120 * time.Minute,
		FlightSizeWeights:    [3]int{60, 10, 30},
		TankerStandoffNM:     60,
		OcaTargetMinAircraft: 20,
	}
}

// PlannerSettingsFor copies the planning knobs for one side.
func (s *Settings) PlannerSettingsFor(side theater.Side) commander.PlannerSettings {
	return commander.PlannerSettings{
		Aggressiveness:       util.Select(side == theater.Red, s.RedAggressiveness, s.BlueAggressiveness),
		DesiredMissionLength: s.DesiredMissionLength,
		FlightSizeWeights:    s.FlightSizeWeights,
		TankerStandoffNM:     s.TankerStandoffNM,
		OcaTargetMinAircraft: s.OcaTargetMinAircraft,
	}
}
