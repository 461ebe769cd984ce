// commander/proposals.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"fmt"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/theater"
)

// EscortType classifies escort flights within a proposal so the fulfiller
// can drop the ones the threat picture does not call for.
type EscortType int

const (
	// NotEscort marks flights that fly regardless of the threat picture.
	NotEscort EscortType = iota
	// EscortAirToAir covers the package against enemy fighters.
	EscortAirToAir
	// EscortSead suppresses radar threats along the package's route.
	EscortSead
)

// ProposedFlight is one flight of a proposed mission, before any squadron
// has been committed to it.
type ProposedFlight struct {
	Task        ato.FlightType
	NumAircraft int
	EscortType  EscortType
}

func (f ProposedFlight) String() string {
	return fmt.Sprintf("%s %d ship", f.Task, f.NumAircraft)
}

// ProposedMission is a package the planner would like to fly: a target
// and the flights needed to service it. Asap missions are scheduled at
// the earliest feasible TOT instead of the regular package flow.
type ProposedMission struct {
	Target  theater.MissionTarget
	Flights []ProposedFlight
	Asap    bool
}

func NewProposedMission(target theater.MissionTarget, flights ...ProposedFlight) ProposedMission {
	return ProposedMission{Target: target, Flights: flights}
}
