// airwing/airwing.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airwing

import (
	"slices"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
)

// AirWing is every squadron a coalition operates.
type AirWing struct {
	Squadrons []*Squadron
}

func (w *AirWing) AddSquadron(s *Squadron) {
	w.Squadrons = append(w.Squadrons, s)
}

// SquadronsAt returns the squadrons based at the given control point.
func (w *AirWing) SquadronsAt(cp *theater.ControlPoint) []*Squadron {
	return util.FilterSlice(w.Squadrons, func(s *Squadron) bool { return s.Location() == cp })
}

// CanFulfill reports whether any squadron could fly the task with the
// given flight size, ignoring range to target.
func (w *AirWing) CanFulfill(task ato.FlightType, count int) bool {
	return slices.ContainsFunc(w.Squadrons, func(s *Squadron) bool {
		return s.CanFulfill(task, count)
	})
}

// BestSquadronFor picks the squadron to fly a task against the target:
// walking the cached distance ordering of basing locations, the first
// squadron that is capable, has the airframes, and whose combat radius
// covers the target wins. Returns nil if no squadron qualifies.
func (w *AirWing) BestSquadronFor(task ato.FlightType, target theater.MissionTarget, count int,
	distances *theater.ObjectiveDistanceCache) *Squadron {
	for _, cp := range distances.ClosestAirfields(target).Airfields {
		for _, s := range w.SquadronsAt(cp) {
			if !s.CanFulfill(task, count) {
				continue
			}
			d := math.Distance2(cp.Position(), target.Position())
			if d > math.NMToMeters(s.Aircraft().CombatRangeNM) {
				continue
			}
			return s
		}
	}
	return nil
}

// ResetForTurn returns every untasked airframe to availability.
func (w *AirWing) ResetForTurn() {
	for _, s := range w.Squadrons {
		s.ResetForTurn()
	}
}
