// theater/groundobject_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"testing"

	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/units"
)

func testIadsSite(t *testing.T, names ...string) *IadsGroundObject {
	t.Helper()
	var group []GroundUnit
	for _, n := range names {
		gu, ok := units.GroundUnitByName(n)
		if !ok {
			t.Fatalf("unknown ground unit %q", n)
		}
		group = append(group, GroundUnit{Type: gu, Alive: true})
	}
	return &IadsGroundObject{
		GroundObjectBase: GroundObjectBase{ObjName: "site", Pos: math.Point2{}, Group: group},
		GroupTask:        units.LORAD,
	}
}

func TestMaxThreatRange(t *testing.T) {
	site := testIadsSite(t, "S-300PS SA-10 Grumble", "SA-15 Tor Gauntlet")

	// The S-300 battery guides its own missiles; with its radar alive the
	// site reaches the full ring.
	if got, want := site.MaxThreatRange(), math.NMToMeters(40); got != want {
		t.Errorf("threat range: got %v, want %v", got, want)
	}

	// Killing the battery leaves the self-contained Tor as the only
	// shooter.
	site.Group[0].Alive = false
	if got, want := site.MaxThreatRange(), math.NMToMeters(6.5); got != want {
		t.Errorf("threat range without the battery: got %v, want %v", got, want)
	}

	// Nothing alive, nothing to fear.
	site.Group[1].Alive = false
	if got := site.MaxThreatRange(); got != 0 {
		t.Errorf("dead site still threatens out to %v", got)
	}
}
