// commander/theaterstate.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"maps"
	"slices"

	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/threatzones"
	"github.com/Starfire13/dcs-retribution/util"
)

// sharedTheaterState holds the lists that survive speculative cloning.
// When a planning task discovers a threatening SAM while checking a
// strike target, the DEAD planner must see that discovery even though it
// runs on a different clone of the state.
type sharedTheaterState struct {
	VulnerableControlPoints []*theater.ControlPoint
	ControlPointPriority    []*theater.ControlPoint
	ThreateningAirDefenses  []theater.AirDefense
	DetectingAirDefenses    []theater.AirDefense
}

// TheaterState is the commander's mutable view of the war for one
// planning pass. Tasks consume entries as they commit packages, so the
// same objective is not planned twice in a turn.
type TheaterState struct {
	ctx *Context

	BarcapsNeeded    map[*theater.ControlPoint]int
	ActiveFrontLines []*theater.FrontLine
	AewcTargets      []theater.MissionTarget
	RefuelingTargets []theater.MissionTarget
	RecoveryTargets  []*theater.ControlPoint
	EnemyAirDefenses []theater.AirDefense
	EnemyShips       []*theater.NavalGroundObject
	EnemyBarcaps     []math.Point2
	OcaTargets       []*theater.ControlPoint
	StrikeTargets    []*theater.BuildingGroundObject
	EnemyThreatZones threatzones.ThreatZones

	shared *sharedTheaterState
}

// BuildTheaterState constructs the initial state for a planning pass
// from the current theater via the objective finder.
func BuildTheaterState(ctx *Context) *TheaterState {
	finder := NewObjectiveFinder(ctx.Theater, ctx.Side)
	enemyFinder := NewObjectiveFinder(ctx.Theater, ctx.EnemySide())

	// Each vulnerable field needs enough BARCAP rounds to cover the
	// whole period this pass plans for.
	rounds := int(ctx.Settings.DesiredMissionLength / ctx.Doctrine.PatrolDuration())
	if rounds < 1 {
		rounds = 1
	}
	vulnerable := finder.VulnerableControlPoints()
	barcaps := make(map[*theater.ControlPoint]int, len(vulnerable))
	for _, cp := range vulnerable {
		barcaps[cp] = rounds
	}

	// AEW&C covers the carriers plus one overland orbit in the rear.
	aewc := util.MapSlice(finder.Carriers(),
		func(cp *theater.ControlPoint) theater.MissionTarget { return cp })
	if cp := finder.FarthestFriendlyControlPoint(); cp != nil && !cp.IsFleet() {
		aewc = append(aewc, cp)
	}

	var refueling []theater.MissionTarget
	if cp := finder.ClosestFriendlyControlPoint(); cp != nil {
		refueling = append(refueling, cp)
	}

	// The enemy defends its own vulnerable fields; their BARCAPs shape
	// our threat zones just like their SAMs do.
	enemyBarcaps := util.MapSlice(enemyFinder.VulnerableControlPoints(),
		func(cp *theater.ControlPoint) math.Point2 { return cp.Position() })

	s := &TheaterState{
		ctx:              ctx,
		BarcapsNeeded:    barcaps,
		ActiveFrontLines: finder.FrontLines(),
		AewcTargets:      aewc,
		RefuelingTargets: refueling,
		EnemyAirDefenses: finder.EnemyAirDefenses(),
		EnemyShips:       finder.EnemyShips(),
		EnemyBarcaps:     enemyBarcaps,
		OcaTargets:       finder.OcaTargets(ctx.Settings.OcaTargetMinAircraft),
		StrikeTargets:    finder.StrikeTargets(),
		shared: &sharedTheaterState{
			VulnerableControlPoints: vulnerable,
			ControlPointPriority:    slices.Clone(vulnerable),
			ThreateningAirDefenses:  finder.ThreateningAirDefenses(),
			DetectingAirDefenses:    finder.DetectingAirDefenses(),
		},
	}
	s.RebuildThreatZones()
	return s
}

// Clone returns a copy for speculative planning. Per-list copies are
// shallow: the entries are shared with the original, only list
// membership diverges. The shared lists are not copied at all.
func (s *TheaterState) Clone() *TheaterState {
	c := *s
	c.BarcapsNeeded = maps.Clone(s.BarcapsNeeded)
	c.ActiveFrontLines = slices.Clone(s.ActiveFrontLines)
	c.AewcTargets = slices.Clone(s.AewcTargets)
	c.RefuelingTargets = slices.Clone(s.RefuelingTargets)
	c.RecoveryTargets = slices.Clone(s.RecoveryTargets)
	c.EnemyAirDefenses = slices.Clone(s.EnemyAirDefenses)
	c.EnemyShips = slices.Clone(s.EnemyShips)
	c.EnemyBarcaps = slices.Clone(s.EnemyBarcaps)
	c.OcaTargets = slices.Clone(s.OcaTargets)
	c.StrikeTargets = slices.Clone(s.StrikeTargets)
	return &c
}

func (s *TheaterState) ThreateningAirDefenses() []theater.AirDefense {
	return s.shared.ThreateningAirDefenses
}

func (s *TheaterState) DetectingAirDefenses() []theater.AirDefense {
	return s.shared.DetectingAirDefenses
}

func (s *TheaterState) VulnerableControlPoints() []*theater.ControlPoint {
	return s.shared.VulnerableControlPoints
}

// AddThreateningAirDefense records a SAM discovered to cover a target
// area, making it a DEAD candidate for the rest of the pass.
func (s *TheaterState) AddThreateningAirDefense(ad theater.AirDefense) {
	if !slices.Contains(s.shared.ThreateningAirDefenses, ad) {
		s.shared.ThreateningAirDefenses = append(s.shared.ThreateningAirDefenses, ad)
	}
}

// AddDetectingAirDefense records a radar discovered to see a target
// area, making it a SEAD sweep candidate for the rest of the pass.
func (s *TheaterState) AddDetectingAirDefense(ad theater.AirDefense) {
	if !slices.Contains(s.shared.DetectingAirDefenses, ad) {
		s.shared.DetectingAirDefenses = append(s.shared.DetectingAirDefenses, ad)
	}
}

// EliminateAirDefense removes a site the pass has planned a package
// against and rebuilds the threat picture assuming the strike succeeds.
func (s *TheaterState) EliminateAirDefense(ad theater.AirDefense) {
	remove := func(list []theater.AirDefense) []theater.AirDefense {
		if i := slices.Index(list, ad); i >= 0 {
			return slices.Delete(list, i, i+1)
		}
		return list
	}
	s.EnemyAirDefenses = remove(s.EnemyAirDefenses)
	s.shared.ThreateningAirDefenses = remove(s.shared.ThreateningAirDefenses)
	s.shared.DetectingAirDefenses = remove(s.shared.DetectingAirDefenses)
	s.RebuildThreatZones()
}

// EliminateShip removes a ship group the pass has planned against and
// rebuilds the threat picture assuming the strike succeeds.
func (s *TheaterState) EliminateShip(ship *theater.NavalGroundObject) {
	if i := slices.Index(s.EnemyShips, ship); i >= 0 {
		s.EnemyShips = slices.Delete(s.EnemyShips, i, i+1)
	}
	s.shared.ThreateningAirDefenses = slices.DeleteFunc(s.shared.ThreateningAirDefenses,
		func(ad theater.AirDefense) bool { return ad == theater.AirDefense(ship) })
	s.shared.DetectingAirDefenses = slices.DeleteFunc(s.shared.DetectingAirDefenses,
		func(ad theater.AirDefense) bool { return ad == theater.AirDefense(ship) })
	s.RebuildThreatZones()
}

// AirThreats is everything that can engage aircraft: the ground-based
// IADS plus enemy warships. Warship SAMs gate strikes the same way
// ground sites do.
func (s *TheaterState) AirThreats() []theater.AirDefense {
	threats := slices.Clone(s.EnemyAirDefenses)
	for _, ship := range s.EnemyShips {
		threats = append(threats, ship)
	}
	return threats
}

// RebuildThreatZones recomputes the enemy threat picture from the
// remaining air defenses, warships, and enemy BARCAP coverage.
func (s *TheaterState) RebuildThreatZones() {
	s.EnemyThreatZones = threatzones.ForThreats(
		math.NMToMeters(s.ctx.EnemyDoctrine.CapEngagementRangeNM),
		s.EnemyBarcaps, s.AirThreats())
}

// AmmoDumpsAt returns the live enemy ammo depots supplying the front.
func (s *TheaterState) AmmoDumpsAt(front *theater.FrontLine) []*theater.BuildingGroundObject {
	finder := NewObjectiveFinder(s.ctx.Theater, s.ctx.Side)
	return finder.AmmoDumpsAt(front)
}
