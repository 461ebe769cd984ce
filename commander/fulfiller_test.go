// commander/fulfiller_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"testing"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

type stubSquadron struct {
	cp *theater.ControlPoint
	ac *units.AircraftType
}

func (s *stubSquadron) Name() string                    { return "Stub Squadron" }
func (s *stubSquadron) Aircraft() *units.AircraftType   { return s.ac }
func (s *stubSquadron) Location() *theater.ControlPoint { return s.cp }
func (s *stubSquadron) ReturnAircraft(int)              {}

func stubPackage(target theater.MissionTarget, base *theater.ControlPoint, clients int) *ato.Package {
	sq := &stubSquadron{
		cp: base,
		ac: &units.AircraftType{Name: "Testjet", CruiseSpeedKts: 360, CombatRangeNM: 400},
	}
	pkg := ato.NewPackage(target)
	f := ato.NewFlight(sq, 2, ato.Strike)
	f.ClientCount = clients
	pkg.AddFlight(f)
	return pkg
}

func TestScheduleAsap(t *testing.T) {
	base := testControlPoint("Home", math.Point2{}, theater.Blue)
	target := testControlPoint("Target", math.Point2{math.NMToMeters(60), 0}, theater.Red)
	thtr := &theater.ConflictTheater{ControlPoints: []*theater.ControlPoint{base, target}}

	ctx := testContext(thtr)
	f := NewPackageFulfiller(ctx, nil)

	// AI-only packages stay pinned to ASAP so the planner may reschedule
	// them freely.
	ai := stubPackage(target, base, 0)
	f.schedule(ai, true)
	if !ai.AutoASAP {
		t.Errorf("AI package not marked auto-ASAP")
	}
	if !ai.TimeOverTarget.Equal(ctx.Now) {
		t.Errorf("ASAP TOT: got %v, want %v", ai.TimeOverTarget, ctx.Now)
	}

	// A package with a player flight gets its ASAP TOT once but is never
	// silently rescheduled afterwards.
	player := stubPackage(target, base, 1)
	f.schedule(player, true)
	if player.AutoASAP {
		t.Errorf("player package marked auto-ASAP")
	}
}

func TestScheduleStagger(t *testing.T) {
	base := testControlPoint("Home", math.Point2{}, theater.Blue)
	target := testControlPoint("Target", math.Point2{math.NMToMeters(60), 0}, theater.Red)
	thtr := &theater.ConflictTheater{ControlPoints: []*theater.ControlPoint{base, target}}

	ctx := testContext(thtr)
	f := NewPackageFulfiller(ctx, nil)

	first := stubPackage(target, base, 0)
	second := stubPackage(target, base, 0)
	f.schedule(first, false)
	f.schedule(second, false)
	if got := second.TimeOverTarget.Sub(first.TimeOverTarget); got != totStagger {
		t.Errorf("TOT stagger: got %v, want %v", got, totStagger)
	}
}
