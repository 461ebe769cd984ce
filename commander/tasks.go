// commander/tasks.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"slices"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/theater"
)

// missionPlanner is one step of the commander's planning pass. Planners
// run in priority order and consume objectives from the state as they
// commit packages.
type missionPlanner interface {
	Name() string
	Plan(state *TheaterState)
}

// commit fulfills a proposal and adds it to the ATO. Failure is logged
// and nil returned; the objective is skipped, never fatal.
func (p *packagePlanner) commit(state *TheaterState, mission ProposedMission) *ato.Package {
	pkg, err := p.fulfiller.PlanMission(state, mission)
	if err != nil {
		p.ctx.Lg.Infof("%s: skipping %s: %v", p.ctx.Side, mission.Target.Name(), err)
		return nil
	}
	p.taskingOrder.AddPackage(pkg)

	// Carrier departures by fixed wing aircraft need a recovery tanker
	// overhead when they come home.
	for _, fl := range pkg.Flights {
		if fl.Departure.IsFleet() && !fl.IsHelo() &&
			!slices.Contains(state.RecoveryTargets, fl.Departure) {
			state.RecoveryTargets = append(state.RecoveryTargets, fl.Departure)
		}
	}
	return pkg
}

///////////////////////////////////////////////////////////////////////////
// Support planners

type planAewc struct{ *packagePlanner }

func (planAewc) Name() string { return "AEW&C" }

func (p planAewc) Plan(state *TheaterState) {
	for _, target := range slices.Clone(state.AewcTargets) {
		mission := NewProposedMission(target, ProposedFlight{Task: ato.AEWC, NumAircraft: 1})
		// The first AEW&C of the turn launches immediately: everything
		// else planned this pass wants its picture.
		mission.Asap = !p.taskingOrder.HasAWACSPackage()
		if p.commit(state, mission) != nil {
			state.AewcTargets = removeTarget(state.AewcTargets, target)
		}
	}
}

type planRefueling struct{ *packagePlanner }

func (planRefueling) Name() string { return "refueling" }

func (p planRefueling) Plan(state *TheaterState) {
	for _, target := range slices.Clone(state.RefuelingTargets) {
		if p.commit(state, NewProposedMission(target,
			ProposedFlight{Task: ato.Refueling, NumAircraft: 1})) != nil {
			state.RefuelingTargets = removeTarget(state.RefuelingTargets, target)
		}
	}
}

type planRecovery struct{ *packagePlanner }

func (planRecovery) Name() string { return "recovery" }

func (p planRecovery) Plan(state *TheaterState) {
	for _, cp := range slices.Clone(state.RecoveryTargets) {
		if p.commit(state, NewProposedMission(cp,
			ProposedFlight{Task: ato.Recovery, NumAircraft: 1})) != nil {
			state.RecoveryTargets = slices.DeleteFunc(state.RecoveryTargets,
				func(o *theater.ControlPoint) bool { return o == cp })
		}
	}
}

///////////////////////////////////////////////////////////////////////////
// Defensive planners

type planBarcap struct{ *packagePlanner }

func (planBarcap) Name() string { return "BARCAP" }

func (p planBarcap) Plan(state *TheaterState) {
	// Priority order is shared across clones so the most exposed fields
	// keep their place even when planning restarts.
	for _, cp := range state.shared.ControlPointPriority {
		for state.BarcapsNeeded[cp] > 0 {
			mission := NewProposedMission(cp,
				ProposedFlight{Task: ato.BARCAP, NumAircraft: p.flightSize()})
			if p.commit(state, mission) == nil {
				break
			}
			state.BarcapsNeeded[cp]--
		}
	}
}

///////////////////////////////////////////////////////////////////////////
// Front line planners

type planCas struct{ *packagePlanner }

func (planCas) Name() string { return "CAS" }

func (p planCas) Plan(state *TheaterState) {
	for _, front := range state.ActiveFrontLines {
		// CAS works the front regardless of coverage, but checking the
		// area seeds the DEAD planner with whatever is protecting it.
		p.targetAreaPreconditionsMet(state, front, true)
		p.commit(state, NewProposedMission(front,
			ProposedFlight{Task: ato.CAS, NumAircraft: p.flightSize()},
			ProposedFlight{Task: ato.TARCAP, NumAircraft: 2, EscortType: EscortAirToAir},
		))
	}
}

type planBai struct{ *packagePlanner }

func (planBai) Name() string { return "BAI" }

func (p planBai) Plan(state *TheaterState) {
	finder := NewObjectiveFinder(p.ctx.Theater, p.ctx.Side)
	for _, front := range state.ActiveFrontLines {
		for _, pos := range finder.BattlePositions(front) {
			p.targetAreaPreconditionsMet(state, pos, true)
			mission := NewProposedMission(pos,
				ProposedFlight{Task: ato.BAI, NumAircraft: p.flightSize()})
			p.proposeCommonEscorts(&mission)
			p.commit(state, mission)
		}
	}
}

///////////////////////////////////////////////////////////////////////////
// Degrade-the-IADS planners

type planDeadSead struct{ *packagePlanner }

func (planDeadSead) Name() string { return "DEAD/SEAD" }

func (p planDeadSead) Plan(state *TheaterState) {
	p.planAgainst(state, state.ThreateningAirDefenses(), ato.DEAD)
	p.planAgainst(state, state.DetectingAirDefenses(), ato.SEAD)
}

func (p planDeadSead) planAgainst(state *TheaterState, sites []theater.AirDefense, task ato.FlightType) {
	for _, site := range slices.Clone(sites) {
		// Sites deeper in the IADS may be covered by rings we have not
		// planned against yet; they keep their place on the shared list
		// and get another look next turn.
		if !p.targetAreaPreconditionsMet(state, site, false) {
			overlapped := p.iadsThreats(state, site, ThreatRange)
			if len(overlapped) > 1 || (len(overlapped) == 1 && overlapped[0].Site != site) {
				continue
			}
		}
		mission := NewProposedMission(site,
			ProposedFlight{Task: task, NumAircraft: p.flightSize()})
		p.proposeCommonEscorts(&mission)
		if p.commit(state, mission) != nil {
			state.EliminateAirDefense(site)
		}
	}
}

///////////////////////////////////////////////////////////////////////////
// Strike planners

type planAntiShip struct{ *packagePlanner }

func (planAntiShip) Name() string { return "anti-ship" }

func (p planAntiShip) Plan(state *TheaterState) {
	for _, ship := range slices.Clone(state.EnemyShips) {
		if !p.targetAreaPreconditionsMet(state, ship, false) {
			continue
		}
		mission := NewProposedMission(ship,
			ProposedFlight{Task: ato.AntiShip, NumAircraft: p.flightSize()})
		p.proposeCommonEscorts(&mission)
		if p.commit(state, mission) != nil {
			state.EliminateShip(ship)
		}
	}
}

type planOcaStrike struct{ *packagePlanner }

func (planOcaStrike) Name() string { return "OCA strike" }

func (p planOcaStrike) Plan(state *TheaterState) {
	for _, cp := range slices.Clone(state.OcaTargets) {
		if !p.targetAreaPreconditionsMet(state, cp, false) {
			continue
		}
		mission := NewProposedMission(cp,
			ProposedFlight{Task: ato.OcaRunway, NumAircraft: 2},
			ProposedFlight{Task: ato.OcaAircraft, NumAircraft: p.flightSize()},
		)
		p.proposeCommonEscorts(&mission)
		if p.commit(state, mission) != nil {
			state.OcaTargets = slices.DeleteFunc(state.OcaTargets,
				func(o *theater.ControlPoint) bool { return o == cp })
		}
	}
}

type planStrike struct{ *packagePlanner }

func (planStrike) Name() string { return "strike" }

func (p planStrike) Plan(state *TheaterState) {
	for _, target := range p.orderedTargets(state) {
		if !p.targetAreaPreconditionsMet(state, target, false) {
			continue
		}
		mission := NewProposedMission(target,
			ProposedFlight{Task: ato.Strike, NumAircraft: p.flightSize()})
		p.proposeCommonEscorts(&mission)
		if p.commit(state, mission) != nil {
			state.StrikeTargets = slices.DeleteFunc(state.StrikeTargets,
				func(o *theater.BuildingGroundObject) bool { return o == target })
		}
	}
}

// orderedTargets puts ammo dumps feeding active fronts ahead of the rest
// of the strike list.
func (p planStrike) orderedTargets(state *TheaterState) []*theater.BuildingGroundObject {
	var ordered []*theater.BuildingGroundObject
	seen := make(map[*theater.BuildingGroundObject]bool)
	for _, front := range state.ActiveFrontLines {
		for _, dump := range state.AmmoDumpsAt(front) {
			if !seen[dump] && slices.Contains(state.StrikeTargets, dump) {
				ordered = append(ordered, dump)
				seen[dump] = true
			}
		}
	}
	for _, target := range state.StrikeTargets {
		if !seen[target] {
			ordered = append(ordered, target)
		}
	}
	return ordered
}

func removeTarget(list []theater.MissionTarget, target theater.MissionTarget) []theater.MissionTarget {
	return slices.DeleteFunc(list, func(o theater.MissionTarget) bool { return o == target })
}
