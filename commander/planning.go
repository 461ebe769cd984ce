// commander/planning.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"slices"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

// RangeType selects which ring of an air defense site a query is about.
type RangeType int

const (
	ThreatRange RangeType = iota
	DetectionRange
)

func rangeOf(ad theater.AirDefense, rt RangeType) float64 {
	if rt == DetectionRange {
		return ad.MaxDetectionRange()
	}
	return ad.MaxThreatRange()
}

// iadsThreat is one air defense site evaluated against a target area.
// Margin is the distance from the site to the target minus the respected
// range; negative means the site covers the target.
type iadsThreat struct {
	Site   theater.AirDefense
	Margin float64
}

// packagePlanner carries what every concrete planning task needs: the
// planning context, the fulfiller that turns proposals into packages,
// and the ATO committed packages land in.
type packagePlanner struct {
	ctx          *Context
	fulfiller    *PackageFulfiller
	taskingOrder *ato.AirTaskingOrder
}

// weightedRange is the portion of a site's ring the planner respects.
// Aggressive commanders shave the ring down and accept flying deeper
// into coverage; the per-class factor reflects how seriously each class
// is taken (area SAMs fully, AAA barely).
func (p *packagePlanner) weightedRange(ad theater.AirDefense, rt RangeType) float64 {
	margin := float64(100-p.ctx.Settings.Aggressiveness) / 100
	var factor float64
	switch ad.Task() {
	case units.LORAD, units.MERAD:
		factor = 1.0
	case units.AAA:
		factor = 0.5
	default:
		factor = 0.9
	}
	return rangeOf(ad, rt) * margin * factor
}

// iadsThreats returns the enemy air defenses and warships whose ring
// covers the target area, deepest coverage first. The full ring is
// respected here so every site watching the area is surfaced for the
// DEAD and SEAD planners; whether a strike may proceed anyway is the
// weighted-range question answered by targetAreaPreconditionsMet.
func (p *packagePlanner) iadsThreats(state *TheaterState, target theater.MissionTarget, rt RangeType) []iadsThreat {
	var threats []iadsThreat
	for _, ad := range state.AirThreats() {
		margin := math.Distance2(ad.Position(), target.Position()) - rangeOf(ad, rt)
		if margin > 0 {
			continue
		}
		threats = append(threats, iadsThreat{Site: ad, Margin: margin})
	}
	slices.SortFunc(threats, func(a, b iadsThreat) int {
		switch {
		case a.Margin < b.Margin:
			return -1
		case a.Margin > b.Margin:
			return 1
		default:
			return 0
		}
	})
	return threats
}

// targetAreaPreconditionsMet checks whether the target area is clear
// enough to strike. Sites found covering or watching the area are
// recorded in the shared state either way, so the DEAD and SEAD planners
// pick them up later in the pass. Recording uses the full rings; the
// go/no-go decision respects only the weighted portion, so aggressive
// commanders strike under coverage they have noted but chosen to accept.
func (p *packagePlanner) targetAreaPreconditionsMet(state *TheaterState, target theater.MissionTarget, ignoreIads bool) bool {
	threatened := p.iadsThreats(state, target, ThreatRange)
	for _, t := range threatened {
		state.AddThreateningAirDefense(t.Site)
	}
	for _, t := range p.iadsThreats(state, target, DetectionRange) {
		state.AddDetectingAirDefense(t.Site)
	}
	if ignoreIads {
		return true
	}
	for _, t := range threatened {
		if math.Distance2(t.Site.Position(), target.Position()) <= p.weightedRange(t.Site, ThreatRange) {
			return false
		}
	}
	return true
}

// flightSize rolls a 2, 3, or 4 ship from the settings weights.
func (p *packagePlanner) flightSize() int {
	sizes := []int{2, 3, 4}
	weights := p.ctx.Settings.FlightSizeWeights
	idx := rand.SampleWeighted(p.ctx.Rand, sizes, func(n int) int { return weights[n-2] })
	if idx < 0 {
		return 2
	}
	return sizes[idx]
}

// proposeCommonEscorts adds the standard escort flights to a strike-like
// proposal. The fulfiller drops whichever the threat picture does not
// call for.
func (p *packagePlanner) proposeCommonEscorts(mission *ProposedMission) {
	mission.Flights = append(mission.Flights,
		ProposedFlight{Task: ato.SEADEscort, NumAircraft: 2, EscortType: EscortSead},
		ProposedFlight{Task: ato.Escort, NumAircraft: 2, EscortType: EscortAirToAir},
		ProposedFlight{Task: ato.SEADSweep, NumAircraft: 2, EscortType: EscortSead},
	)
}
