// theater/closestairfields_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"testing"

	"github.com/Starfire13/dcs-retribution/math"
)

func testAirfield(name string, pos math.Point2, side Side) *ControlPoint {
	return &ControlPoint{
		Name_:             name,
		Pos:               pos,
		Side:              side,
		Type:              Airbase,
		RunwayOperational: true,
		ParkingSlots:      20,
	}
}

func TestClosestAirfieldsOrdering(t *testing.T) {
	near := testAirfield("Near", math.Point2{math.NMToMeters(10), 0}, Blue)
	mid := testAirfield("Mid", math.Point2{math.NMToMeters(40), 0}, Red)
	far := testAirfield("Far", math.Point2{math.NMToMeters(90), 0}, Blue)
	target := testAirfield("Objective", math.Point2{}, Red)
	thtr := &ConflictTheater{ControlPoints: []*ControlPoint{far, near, target, mid}}

	cache := NewObjectiveDistanceCache(thtr)
	got := cache.ClosestAirfields(target).Airfields
	want := []*ControlPoint{target, near, mid, far}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("airfield %d: got %s, want %s", i, got[i].Name(), want[i].Name())
		}
	}
}

func TestClosestAirfieldsMemoization(t *testing.T) {
	a := testAirfield("A", math.Point2{}, Blue)
	b := testAirfield("B", math.Point2{math.NMToMeters(50), 0}, Blue)
	target := testAirfield("Objective", math.Point2{math.NMToMeters(20), 0}, Red)
	thtr := &ConflictTheater{ControlPoints: []*ControlPoint{a, b, target}}

	cache := NewObjectiveDistanceCache(thtr)
	first := cache.ClosestAirfields(target)
	if second := cache.ClosestAirfields(target); second != first {
		t.Errorf("repeated lookup rebuilt the ordering instead of reusing it")
	}

	// Purge drops the entry, so the next lookup recomputes against the
	// changed theater.
	cache.Purge()
	if third := cache.ClosestAirfields(target); third == first {
		t.Errorf("lookup after purge returned the stale entry")
	}
}

func TestOperationalAirfields(t *testing.T) {
	ours := testAirfield("Ours", math.Point2{}, Blue)
	cratered := testAirfield("Cratered", math.Point2{math.NMToMeters(12), 0}, Blue)
	cratered.RunwayOperational = false
	theirs := testAirfield("Theirs", math.Point2{math.NMToMeters(20), 0}, Red)
	carrier := testAirfield("Carrier", math.Point2{math.NMToMeters(30), 0}, Blue)
	carrier.Type = Carrier
	carrier.RunwayOperational = false // fleets launch regardless
	target := testAirfield("Objective", math.Point2{math.NMToMeters(5), 0}, Red)
	thtr := &ConflictTheater{ControlPoints: []*ControlPoint{ours, cratered, theirs, carrier, target}}

	cache := NewObjectiveDistanceCache(thtr)
	ops := cache.ClosestAirfields(target).OperationalAirfields(Blue)
	if len(ops) != 2 || ops[0] != ours || ops[1] != carrier {
		names := make([]string, len(ops))
		for i, cp := range ops {
			names[i] = cp.Name()
		}
		t.Errorf("operational airfields: got %v, want [Ours Carrier]", names)
	}
}
