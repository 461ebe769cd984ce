// ato/builder_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	gomath "math"
	"testing"

	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/threatzones"
)

func TestTankerStandoff(t *testing.T) {
	base := testBase("Home", math.Point2{})
	objective := testTarget{"Station", math.Point2{math.NMToMeters(100), 0}}
	thtr := &theater.ConflictTheater{ControlPoints: []*theater.ControlPoint{base}}
	distances := theater.NewObjectiveDistanceCache(thtr)

	for _, standoffNM := range []float64{30, 60} {
		pkg := NewPackage(objective)
		f, _ := makeTestFlight(Refueling, base)
		pkg.AddFlight(f)

		b := NewPlanBuilder(pkg, faction.Modern, threatzones.ThreatZones{}, standoffNM, distances)
		if err := b.Populate(f); err != nil {
			t.Fatal(err)
		}
		plan := f.Plan.(*PatrollingFlightPlan)
		got := math.MetersToNM(math.Distance2(objective.pos, plan.PatrolStart.Pos))
		if gomath.Abs(got-standoffNM) > 0.1 {
			t.Errorf("track anchored %.1f NM behind the station, want %.1f", got, standoffNM)
		}
	}
}

func TestPackageWaypointsAnchor(t *testing.T) {
	near := testBase("Near", math.Point2{math.NMToMeters(80), 0})
	far := testBase("Far", math.Point2{math.NMToMeters(250), 0})
	target := testTarget{"Target", math.Point2{}}
	thtr := &theater.ConflictTheater{ControlPoints: []*theater.ControlPoint{far, near}}
	distances := theater.NewObjectiveDistanceCache(thtr)

	pkg := NewPackage(target)
	strike, _ := makeTestFlight(Strike, near)
	strike.Departure = near
	escort, _ := makeTestFlight(Escort, far)
	escort.Departure = far
	pkg.AddFlight(strike)
	pkg.AddFlight(escort)

	b := NewPlanBuilder(pkg, faction.Modern, threatzones.ThreatZones{}, 60, distances)
	if err := b.Populate(strike); err != nil {
		t.Fatal(err)
	}
	if pkg.Waypoints == nil {
		t.Fatalf("formation flight did not lay out package waypoints")
	}

	// Geometry is anchored on the departure field nearest the target: the
	// ingress point sits on the target-to-Near line, one doctrine ingress
	// distance out.
	want := math.PointFromHeading(target.pos,
		math.HeadingBetween(target.pos, near.Position()),
		math.NMToMeters(faction.Modern.IngressEgressDistanceNM))
	if math.Distance2(pkg.Waypoints.Ingress, want) > 1 {
		t.Errorf("ingress at %v, want %v", pkg.Waypoints.Ingress, want)
	}

	// The second formation flight reuses the shared layout.
	if err := b.Populate(escort); err != nil {
		t.Fatal(err)
	}
	ep := escort.Plan.(*FormationFlightPlan)
	if ep.Ingress.Pos != pkg.Waypoints.Ingress {
		t.Errorf("escort ingress %v diverges from package ingress %v",
			ep.Ingress.Pos, pkg.Waypoints.Ingress)
	}

	// A package whose flights all depart elsewhere cannot be laid out.
	stray := NewPackage(target)
	orphanBase := testBase("Orphan", math.Point2{0, math.NMToMeters(300)})
	of, _ := makeTestFlight(Strike, orphanBase)
	stray.AddFlight(of)
	ob := NewPlanBuilder(stray, faction.Modern, threatzones.ThreatZones{}, 60, distances)
	if err := ob.Populate(of); err == nil {
		t.Errorf("layout succeeded for a departure outside the theater")
	}
}
