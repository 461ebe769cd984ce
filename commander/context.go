// commander/context.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package commander plans the air war for one coalition: it ranks
// objectives, proposes mission packages, and fills them with flights from
// the air wing. Planning is speculative and per-turn; failures skip the
// objective rather than aborting the turn.
package commander

import (
	"time"

	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/log"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
)

// PlannerSettings are the per-side knobs controlling how the commander
// plans. The campaign settings layer copies these in so the commander
// never depends on the campaign aggregate.
type PlannerSettings struct {
	// Willingness to plan into enemy air defense coverage, 0-100. The
	// planner respects (100 - Aggressiveness)% of each threat ring.
	Aggressiveness int

	// Length of the period each planning pass covers; with the BARCAP
	// patrol duration this sets how many BARCAP rounds each vulnerable
	// control point needs.
	DesiredMissionLength time.Duration

	// Relative weights for rolling flight sizes of 2, 3, and 4 aircraft.
	FlightSizeWeights [3]int

	// Enemy airfields with at least this many parked aircraft become OCA
	// strike targets.
	OcaTargetMinAircraft int

	// Distance behind the supported position that refueling tracks are
	// anchored, nautical miles.
	TankerStandoffNM float64
}

func DefaultPlannerSettings() PlannerSettings {
	return PlannerSettings{
		Aggressiveness:       50,
		DesiredMissionLength: 120 * time.Minute,
		FlightSizeWeights:    [3]int{60, 10, 30},
		OcaTargetMinAircraft: 20,
		TankerStandoffNM:     60,
	}
}

// Context is everything a planning pass needs beyond the mutable theater
// state: who is planning, against what map, under which doctrine and
// settings, at what time.
type Context struct {
	Side          theater.Side
	Theater       *theater.ConflictTheater
	Doctrine      faction.Doctrine
	EnemyDoctrine faction.Doctrine
	Settings      PlannerSettings
	Now           time.Time
	Rand          *rand.Rand
	Distances     *theater.ObjectiveDistanceCache
	Lg            *log.Logger
}

func (c *Context) EnemySide() theater.Side { return c.Side.Opponent() }
