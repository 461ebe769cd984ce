// airwing/airwing_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airwing

import (
	"testing"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

func testRand() *rand.Rand {
	r := rand.Make()
	r.Seed(1)
	return r
}

func testBase(name string, pos math.Point2, parking int) *theater.ControlPoint {
	return &theater.ControlPoint{
		Name_:             name,
		Pos:               pos,
		Side:              theater.Blue,
		Type:              theater.Airbase,
		RunwayOperational: true,
		ParkingSlots:      parking,
	}
}

func mustAircraft(t *testing.T, name string) *units.AircraftType {
	t.Helper()
	ac, ok := units.AircraftByName(name)
	if !ok {
		t.Fatalf("unknown aircraft %q", name)
	}
	return ac
}

func autoAssignableSquadron(name string, ac *units.AircraftType, cp *theater.ControlPoint, size int) *Squadron {
	sq := NewSquadron(name, ac, cp, size)
	for _, task := range ac.Tasks {
		if ft, ok := ato.FlightTypeByName(task); ok {
			sq.SetAutoAssignable(ft, true)
		}
	}
	return sq
}

func TestSquadronClaimReturn(t *testing.T) {
	ac := mustAircraft(t, "F-16CM Fighting Falcon")
	sq := autoAssignableSquadron("Test", ac, testBase("Home", math.Point2{}, 20), 12)

	if err := sq.ClaimAircraft(4); err != nil {
		t.Fatalf("claim 4 of 12: %v", err)
	}
	if sq.Untasked() != 8 {
		t.Errorf("untasked: got %d, want 8", sq.Untasked())
	}
	if err := sq.ClaimAircraft(10); err == nil {
		t.Errorf("claiming 10 of 8 untasked succeeded")
	}
	sq.ReturnAircraft(4)
	if sq.Untasked() != 12 {
		t.Errorf("untasked after return: got %d, want 12", sq.Untasked())
	}
	// Returning more than owned clamps instead of inflating the books.
	sq.ReturnAircraft(5)
	if sq.Untasked() != 12 {
		t.Errorf("untasked overflowed to %d", sq.Untasked())
	}
}

func TestSquadronCanFulfill(t *testing.T) {
	ac := mustAircraft(t, "F-16CM Fighting Falcon")
	base := testBase("Home", math.Point2{}, 20)
	sq := autoAssignableSquadron("Test", ac, base, 4)

	if !sq.CanFulfill(ato.BARCAP, 2) {
		t.Errorf("capable squadron cannot fulfill BARCAP")
	}
	if sq.CanFulfill(ato.AEWC, 1) {
		t.Errorf("F-16 squadron claims AEW&C capability")
	}
	if sq.CanFulfill(ato.BARCAP, 6) {
		t.Errorf("4-ship squadron fulfills a 6-ship request")
	}
	base.RunwayOperational = false
	if sq.CanFulfill(ato.BARCAP, 2) {
		t.Errorf("squadron with cratered runway can still launch")
	}
}

func TestBestSquadronFor(t *testing.T) {
	ac := mustAircraft(t, "F-16CM Fighting Falcon")
	near := testBase("Near", math.Point2{}, 20)
	far := testBase("Far", math.Point2{math.NMToMeters(150), 0}, 20)
	target := testBase("Objective", math.Point2{math.NMToMeters(50), 0}, 0)
	remote := testBase("Remote", math.Point2{math.NMToMeters(900), 0}, 0)
	thtr := &theater.ConflictTheater{
		ControlPoints: []*theater.ControlPoint{near, far, target, remote},
	}
	distances := theater.NewObjectiveDistanceCache(thtr)

	wing := &AirWing{}
	nearSq := autoAssignableSquadron("Near Squadron", ac, near, 12)
	farSq := autoAssignableSquadron("Far Squadron", ac, far, 12)
	wing.AddSquadron(farSq)
	wing.AddSquadron(nearSq)

	if got := wing.BestSquadronFor(ato.Strike, target, 2, distances); got != nearSq {
		t.Errorf("best squadron: got %v, want the closer one", got)
	}

	// Drain the near squadron; the far one picks up the tasking.
	if err := nearSq.ClaimAircraft(12); err != nil {
		t.Fatal(err)
	}
	if got := wing.BestSquadronFor(ato.Strike, target, 2, distances); got != farSq {
		t.Errorf("best squadron with near drained: got %v, want far", got)
	}

	// Out of combat radius: nobody qualifies.
	if got := wing.BestSquadronFor(ato.Strike, remote, 2, distances); got != nil {
		t.Errorf("squadron %v tasked beyond its combat range", got)
	}
}

func TestSquadronAssigner(t *testing.T) {
	f, err := faction.Load("usa_2005")
	if err != nil {
		t.Fatal(err)
	}
	thtr := &theater.ConflictTheater{
		ControlPoints: []*theater.ControlPoint{
			testBase("Main", math.Point2{}, 60),
			testBase("Aux", math.Point2{math.NMToMeters(30), 0}, 40),
		},
	}

	wing := &AirWing{}
	assigner := NewSquadronAssigner(f, thtr, theater.Blue, nil, testRand(), nil)
	if err := assigner.Assign(wing); err != nil {
		t.Fatal(err)
	}
	if len(wing.Squadrons) == 0 {
		t.Fatalf("assigner produced no squadrons")
	}

	for _, task := range []ato.FlightType{ato.BARCAP, ato.CAS, ato.AEWC, ato.Refueling} {
		if !wing.CanFulfill(task, 1) {
			t.Errorf("no squadron covers %s", task)
		}
	}
	// Transport is not on the assigner's task list, and none of the
	// squadrons it raises can be retasked to it.
	if wing.CanFulfill(ato.Transport, 1) {
		t.Errorf("transport tasking fulfilled without a transport squadron")
	}

	// Parking is never oversubscribed.
	used := make(map[*theater.ControlPoint]int)
	for _, sq := range wing.Squadrons {
		used[sq.Location()] += sq.Owned()
	}
	for cp, n := range used {
		if n > cp.ParkingSlots {
			t.Errorf("%s parks %d aircraft in %d slots", cp.Name(), n, cp.ParkingSlots)
		}
	}
}

func TestSquadronAssignerConfigs(t *testing.T) {
	f, err := faction.Load("usa_2005")
	if err != nil {
		t.Fatal(err)
	}
	main := testBase("Main", math.Point2{}, 40)
	aux := testBase("Aux", math.Point2{math.NMToMeters(30), 0}, 14)
	thtr := &theater.ConflictTheater{ControlPoints: []*theater.ControlPoint{main, aux}}

	configs := []SquadronConfig{
		{
			Name:              "494th Fighter Squadron",
			Nickname:          "Panthers",
			ControlPoint:      aux,
			PrimaryTask:       ato.Strike,
			PreferredAircraft: []string{"F-15E Strike Eagle", "F-16CM Fighting Falcon"},
			Size:              8,
		},
		{
			// The A-10 cannot fly BARCAP, so this squadron falls back to a
			// capable airframe instead of being dropped.
			Name:              "Mismatched Squadron",
			ControlPoint:      main,
			PrimaryTask:       ato.BARCAP,
			PreferredAircraft: []string{"A-10C Thunderbolt II"},
		},
	}

	wing := &AirWing{}
	assigner := NewSquadronAssigner(f, thtr, theater.Blue, configs, testRand(), nil)
	if err := assigner.Assign(wing); err != nil {
		t.Fatal(err)
	}

	var named *Squadron
	for _, sq := range wing.Squadrons {
		if sq.Name() == "494th Fighter Squadron" {
			named = sq
		}
	}
	if named == nil {
		t.Fatalf("configured squadron was not raised")
	}
	if named.Aircraft().Name != "F-15E Strike Eagle" {
		t.Errorf("configured squadron flies %s, want the preferred F-15E", named.Aircraft().Name)
	}
	if named.Location() != aux {
		t.Errorf("configured squadron based at %s, want Aux", named.Location().Name())
	}
	if named.Nickname() != "Panthers" {
		t.Errorf("nickname: got %q, want Panthers", named.Nickname())
	}
	if named.Owned() != 8 {
		t.Errorf("configured size: got %d, want 8", named.Owned())
	}

	var mismatched *Squadron
	for _, sq := range wing.Squadrons {
		if sq.Name() == "Mismatched Squadron" {
			mismatched = sq
		}
	}
	if mismatched == nil {
		t.Fatalf("squadron with unusable preferred airframe was dropped")
	}
	if !mismatched.CapableOf(ato.BARCAP) {
		t.Errorf("fallback airframe %s cannot fly BARCAP", mismatched.Aircraft().Name)
	}
	if mismatched.Nickname() == "" {
		t.Errorf("generated nickname is empty")
	}

	// BARCAP and Strike are covered by the configs, so the first squadron
	// the default pass generates is for CAS.
	found := false
	for _, sq := range wing.Squadrons {
		if sq.Name() == "1. Squadron (AH-64D Apache)" {
			found = true
		}
	}
	if !found {
		t.Errorf("default pass did not start with the first uncovered task")
	}
}
