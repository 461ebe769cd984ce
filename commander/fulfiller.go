// commander/fulfiller.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"fmt"
	"time"

	"github.com/Starfire13/dcs-retribution/airwing"
	"github.com/Starfire13/dcs-retribution/ato"
)

// Packages that are not ASAP get staggered TOTs so the whole ATO does
// not arrive at once.
const totStagger = 10 * time.Minute

// ProcurementRequest records aircraft the commander wanted but could not
// source this turn. The campaign layer turns these into purchases.
type ProcurementRequest struct {
	Task  ato.FlightType
	Count int
}

func (r ProcurementRequest) String() string {
	return fmt.Sprintf("%d x %s capable airframes", r.Count, r.Task)
}

// PackageFulfiller turns mission proposals into committed packages by
// sourcing squadrons and aircraft from the air wing and building flight
// plans. A proposal that cannot be fully sourced is rolled back without
// side effects and reported as an error; the caller logs it and moves on.
type PackageFulfiller struct {
	ctx  *Context
	wing *airwing.AirWing

	nextTot time.Time

	// Unfulfillable flights noted for the procurement pass.
	PurchaseOrders []ProcurementRequest
}

func NewPackageFulfiller(ctx *Context, wing *airwing.AirWing) *PackageFulfiller {
	return &PackageFulfiller{ctx: ctx, wing: wing, nextTot: ctx.Now}
}

// PlanMission builds a package for the proposal. Escort flights are
// dropped when the threat picture does not call for them; everything
// else must be sourced or the whole package is abandoned.
func (f *PackageFulfiller) PlanMission(state *TheaterState, mission ProposedMission) (*ato.Package, error) {
	pkg := ato.NewPackage(mission.Target)
	rollback := func() {
		for _, fl := range append([]*ato.Flight(nil), pkg.Flights...) {
			pkg.RemoveFlight(fl)
		}
	}

	for _, pf := range mission.Flights {
		if f.escortNotNeeded(state, mission, pf) {
			continue
		}
		sq := f.wing.BestSquadronFor(pf.Task, mission.Target, pf.NumAircraft, f.ctx.Distances)
		if sq == nil {
			rollback()
			f.PurchaseOrders = append(f.PurchaseOrders,
				ProcurementRequest{Task: pf.Task, Count: pf.NumAircraft})
			return nil, fmt.Errorf("no %s capable squadron in range of %s",
				pf.Task, mission.Target.Name())
		}
		if err := sq.ClaimAircraft(pf.NumAircraft); err != nil {
			rollback()
			return nil, err
		}
		pkg.AddFlight(ato.NewFlight(sq, pf.NumAircraft, pf.Task))
	}
	if len(pkg.Flights) == 0 {
		return nil, fmt.Errorf("no flights required against %s", mission.Target.Name())
	}

	builder := ato.NewPlanBuilder(pkg, f.ctx.Doctrine, state.EnemyThreatZones,
		f.ctx.Settings.TankerStandoffNM, f.ctx.Distances)
	for _, fl := range pkg.Flights {
		if err := builder.Populate(fl); err != nil {
			rollback()
			return nil, fmt.Errorf("%s: %w", mission.Target.Name(), err)
		}
	}

	f.schedule(pkg, mission.Asap)
	return pkg, nil
}

func (f *PackageFulfiller) escortNotNeeded(state *TheaterState, mission ProposedMission, pf ProposedFlight) bool {
	switch pf.EscortType {
	case EscortSead:
		return !state.EnemyThreatZones.ThreatenedByAirDefense(mission.Target.Position())
	case EscortAirToAir:
		return !state.EnemyThreatZones.Threatened(mission.Target.Position())
	default:
		return false
	}
}

func (f *PackageFulfiller) schedule(pkg *ato.Package, asap bool) {
	if asap {
		// Packages with player-controlled flights are never rescheduled
		// behind the player's back.
		pkg.AutoASAP = !pkg.HasPlayers()
		pkg.SetTotASAP(f.ctx.Now)
		return
	}
	tot := ato.NewTotEstimator(pkg).EarliestTot(f.ctx.Now)
	if f.nextTot.After(tot) {
		tot = f.nextTot
	}
	pkg.TimeOverTarget = tot
	f.nextTot = tot.Add(totStagger)
}
