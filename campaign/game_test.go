// campaign/game_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package campaign

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
	"github.com/Starfire13/dcs-retribution/weather"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	rng := rand.Make()
	rng.Seed(1)
	start := time.Date(2008, time.August, 8, 0, 0, 0, 0, time.UTC)
	g, err := NewGame("black_sea_2008", start, DefaultSettings(), rng, nil)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestValidate(t *testing.T) {
	var e util.ErrorLogger
	Validate(&e)
	if e.HaveErrors() {
		t.Errorf("built-in data has errors:\n%s", e.String())
	}
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	if g.CampaignName == "" {
		t.Errorf("game has no campaign name")
	}
	if g.Blue.Opponent() != g.Red || g.Red.Opponent() != g.Blue {
		t.Errorf("coalitions not paired")
	}
	for _, c := range []*Coalition{g.Blue, g.Red} {
		if len(c.AirWing.Squadrons) == 0 {
			t.Errorf("%s air wing is empty", c.Side)
		}
	}
	if g.TimeOfDay != weather.Dawn {
		t.Errorf("new game starts at %v, want dawn", g.TimeOfDay)
	}

	// The scenario's configured squadrons come up under their own names.
	want := map[string]bool{
		"494th Fighter Squadron":      false,
		"3rd Guards Fighter Regiment": false,
	}
	for _, c := range []*Coalition{g.Blue, g.Red} {
		for _, sq := range c.AirWing.Squadrons {
			if _, ok := want[sq.Name()]; ok {
				want[sq.Name()] = true
			}
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("configured squadron %q was not raised", name)
		}
	}
}

func TestAdvanceTurn(t *testing.T) {
	g := newTestGame(t)
	g.AdvanceTurn()

	if g.Turn != 1 {
		t.Errorf("turn counter at %d after one turn", g.Turn)
	}
	if g.TimeOfDay != weather.Day {
		t.Errorf("time of day %v after dawn, want day", g.TimeOfDay)
	}

	// With auto-ATO on, both commanders must produce a plan; blue has
	// vulnerable fields, so at least one package should be a BARCAP.
	for _, c := range []*Coalition{g.Blue, g.Red} {
		if len(c.Ato.Packages) == 0 {
			t.Errorf("%s planned no packages", c.Side)
		}
	}
	sawBarcap := false
	for _, pkg := range g.Blue.Ato.Packages {
		if task, ok := pkg.PrimaryTask(); ok && task == ato.BARCAP {
			sawBarcap = true
		}
		if len(pkg.Flights) == 0 {
			t.Errorf("package %s has no flights", pkg.Description())
		}
	}
	if !sawBarcap {
		t.Errorf("blue planned no BARCAP over its vulnerable fields")
	}

	// Dusk, night, then a new dawn rolls the date.
	date := g.Date
	for i := 0; i < 3; i++ {
		g.AdvanceTurn()
	}
	if g.TimeOfDay != weather.Dawn {
		t.Errorf("time of day %v after four turns, want dawn", g.TimeOfDay)
	}
	if !g.Date.After(date) {
		t.Errorf("date did not roll over at dawn")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	g := newTestGame(t)
	g.AdvanceTurn()
	g.AdvanceTurn()

	// Diverge from the scenario: flip a field, crater a runway, kill a
	// SAM radar, push a front.
	cp := g.Theater.ControlPoints[0]
	cp.RunwayOperational = false
	var killed string
	for _, obj := range g.Theater.GroundObjects {
		if ad, ok := obj.(*theater.IadsGroundObject); ok {
			units := ad.Units()
			units[0].Alive = false
			killed = ad.Name()
			break
		}
	}
	if killed == "" {
		t.Fatalf("scenario has no air defense sites")
	}
	g.Theater.FrontLines[0].Control = 0.8
	attrited := g.Blue.AirWing.Squadrons[0]
	attrited.AbsorbLosses(3)

	path := filepath.Join(t.TempDir(), "test.sav")
	if err := g.Save(path); err != nil {
		t.Fatal(err)
	}

	rng := rand.Make()
	rng.Seed(2)
	loaded, err := Load(path, rng, nil)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Turn != g.Turn || loaded.TimeOfDay != g.TimeOfDay {
		t.Errorf("clock: got turn %d %v, want turn %d %v",
			loaded.Turn, loaded.TimeOfDay, g.Turn, g.TimeOfDay)
	}
	if loaded.Theater.ControlPoints[0].RunwayOperational {
		t.Errorf("cratered runway operational after load")
	}
	if loaded.Theater.FrontLines[0].Control != 0.8 {
		t.Errorf("front control: got %v, want 0.8", loaded.Theater.FrontLines[0].Control)
	}
	for _, obj := range loaded.Theater.GroundObjects {
		if obj.Name() != killed {
			continue
		}
		if obj.Units()[0].Alive {
			t.Errorf("%s: killed unit alive after load", killed)
		}
	}
	for _, sq := range loaded.Blue.AirWing.Squadrons {
		if sq.Name() != attrited.Name() {
			continue
		}
		if sq.Owned() != attrited.Owned() {
			t.Errorf("%s strength: got %d, want %d", sq.Name(), sq.Owned(), attrited.Owned())
		}
	}
}

func TestLoadRejectsWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.sav")
	if err := util.StoreObject(path, savedGame{Version: saveVersion - 1}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, rand.Make(), nil); err == nil {
		t.Errorf("stale save version loaded without error")
	}
}
