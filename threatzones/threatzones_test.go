// threatzones/threatzones_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package threatzones

import (
	gomath "math"
	"testing"

	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

func samSite(name string, pos math.Point2, unitNames ...string) *theater.IadsGroundObject {
	var group []theater.GroundUnit
	for _, n := range unitNames {
		gu, ok := units.GroundUnitByName(n)
		if !ok {
			panic(n)
		}
		group = append(group, theater.GroundUnit{Type: gu, Alive: true})
	}
	return &theater.IadsGroundObject{
		GroundObjectBase: theater.GroundObjectBase{
			ObjName: name,
			Pos:     pos,
			Group:   group,
		},
		GroupTask: units.MERAD,
	}
}

func TestForThreats(t *testing.T) {
	sam := samSite("SA-11 site", math.Point2{0, 0}, "SA-11 Buk Gadfly")
	capRange := math.NMToMeters(40)
	barcap := math.Point2{math.NMToMeters(100), 0}

	zones := ForThreats(capRange, []math.Point2{barcap}, []theater.AirDefense{sam})
	if len(zones.All) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones.All))
	}
	if len(zones.AirDefenses) != 1 {
		t.Fatalf("got %d air defense zones, want 1", len(zones.AirDefenses))
	}

	// Inside the SAM ring (SA-11 threat range is 17 NM).
	inside := math.Point2{math.NMToMeters(10), 0}
	if !zones.Threatened(inside) {
		t.Errorf("point inside SAM ring not threatened")
	}
	if !zones.ThreatenedByAirDefense(inside) {
		t.Errorf("point inside SAM ring not threatened by air defense")
	}

	// Inside the CAP circle but outside the SAM ring.
	capOnly := math.Point2{math.NMToMeters(80), 0}
	if !zones.Threatened(capOnly) {
		t.Errorf("point inside CAP circle not threatened")
	}
	if zones.ThreatenedByAirDefense(capOnly) {
		t.Errorf("CAP-only point reported as air defense threatened")
	}

	// Well clear of everything.
	clear := math.Point2{0, math.NMToMeters(200)}
	if zones.Threatened(clear) {
		t.Errorf("clear point reported as threatened")
	}
}

func TestDeadSiteContributesNothing(t *testing.T) {
	sam := samSite("dead site", math.Point2{0, 0}, "SA-11 Buk Gadfly")
	for i := range sam.Group {
		sam.Group[i].Alive = false
	}
	zones := ForThreats(0, nil, []theater.AirDefense{sam})
	if len(zones.All) != 0 {
		t.Errorf("dead site produced %d zones", len(zones.All))
	}
	if zones.Threatened(math.Point2{0, 0}) {
		t.Errorf("dead site still threatens its own position")
	}
}

func TestClosestBoundary(t *testing.T) {
	var empty ThreatZones
	if _, ok := empty.ClosestBoundary(math.Point2{1, 1}); ok {
		t.Errorf("empty zones returned a boundary")
	}

	zones := ThreatZones{All: []Zone{{Center: math.Point2{0, 0}, Radius: 1000}}}

	// From outside: boundary lies on the segment toward the center.
	p := math.Point2{3000, 0}
	edge, ok := zones.ClosestBoundary(p)
	if !ok {
		t.Fatalf("no boundary found")
	}
	if gomath.Abs(edge[0]-1000) > 0.1 || gomath.Abs(edge[1]) > 0.1 {
		t.Errorf("boundary from outside: got %v, want (1000,0)", edge)
	}

	// From inside: nearest point on the circle.
	edge, _ = zones.ClosestBoundary(math.Point2{500, 0})
	if gomath.Abs(edge[0]-1000) > 0.1 || gomath.Abs(edge[1]) > 0.1 {
		t.Errorf("boundary from inside: got %v, want (1000,0)", edge)
	}

	// From the exact center any direction works, but it must be on the
	// circle.
	edge, _ = zones.ClosestBoundary(math.Point2{0, 0})
	if d := math.Length2(edge); gomath.Abs(d-1000) > 0.1 {
		t.Errorf("boundary from center at distance %v, want 1000", d)
	}
}
