// commander/objectivefinder.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
)

// ObjectiveFinder enumerates the targets one side cares about. It reads
// the theater only; the mutable planning view built from its answers
// lives in TheaterState.
type ObjectiveFinder struct {
	theater *theater.ConflictTheater
	side    theater.Side
}

func NewObjectiveFinder(t *theater.ConflictTheater, side theater.Side) *ObjectiveFinder {
	return &ObjectiveFinder{theater: t, side: side}
}

func (f *ObjectiveFinder) enemy() theater.Side { return f.side.Opponent() }

// FrontLines returns the active front lines, whichever side is friendly.
func (f *ObjectiveFinder) FrontLines() []*theater.FrontLine {
	return f.theater.ActiveFrontLines()
}

// VulnerableControlPoints returns the friendly control points worth
// defending with BARCAP: anything on the map with ramp space.
func (f *ObjectiveFinder) VulnerableControlPoints() []*theater.ControlPoint {
	return util.FilterSlice(f.theater.ControlPointsFor(f.side),
		func(cp *theater.ControlPoint) bool {
			return cp.Type != theater.OffMapSpawn && cp.ParkingSlots > 0
		})
}

// EnemyAirDefenses returns the live enemy IADS sites.
func (f *ObjectiveFinder) EnemyAirDefenses() []theater.AirDefense {
	var defenses []theater.AirDefense
	for _, g := range f.theater.GroundObjectsFor(f.enemy()) {
		if iads, ok := g.(*theater.IadsGroundObject); ok && !iads.IsDead() {
			defenses = append(defenses, iads)
		}
	}
	return defenses
}

// ThreateningAirDefenses returns enemy air defenses whose engagement
// rings reach friendly territory. These are DEAD targets even before any
// strike package trips over them.
func (f *ObjectiveFinder) ThreateningAirDefenses() []theater.AirDefense {
	return util.FilterSlice(f.EnemyAirDefenses(), func(ad theater.AirDefense) bool {
		return f.reachesFriendlyTerritory(ad.Position(), ad.MaxThreatRange())
	})
}

// DetectingAirDefenses returns enemy radars that can see into friendly
// territory, the SEAD sweep target list.
func (f *ObjectiveFinder) DetectingAirDefenses() []theater.AirDefense {
	return util.FilterSlice(f.EnemyAirDefenses(), func(ad theater.AirDefense) bool {
		return f.reachesFriendlyTerritory(ad.Position(), ad.MaxDetectionRange())
	})
}

func (f *ObjectiveFinder) reachesFriendlyTerritory(p math.Point2, rangeM float64) bool {
	if rangeM <= 0 {
		return false
	}
	for _, cp := range f.theater.ControlPointsFor(f.side) {
		if math.Distance2(p, cp.Position()) <= rangeM {
			return true
		}
	}
	for _, fl := range f.FrontLines() {
		if math.Distance2(p, fl.Position()) <= rangeM {
			return true
		}
	}
	return false
}

// EnemyShips returns live enemy warship groups.
func (f *ObjectiveFinder) EnemyShips() []*theater.NavalGroundObject {
	var ships []*theater.NavalGroundObject
	for _, g := range f.theater.GroundObjectsFor(f.enemy()) {
		if ship, ok := g.(*theater.NavalGroundObject); ok && !ship.IsDead() {
			ships = append(ships, ship)
		}
	}
	return ships
}

// OcaTargets returns enemy airfields parking enough aircraft to be worth
// an OCA strike.
func (f *ObjectiveFinder) OcaTargets(minAircraft int) []*theater.ControlPoint {
	return util.FilterSlice(f.theater.ControlPointsFor(f.enemy()),
		func(cp *theater.ControlPoint) bool {
			return cp.Type == theater.Airbase && cp.ParkedAircraft >= minAircraft
		})
}

// StrikeTargets returns live enemy buildings.
func (f *ObjectiveFinder) StrikeTargets() []*theater.BuildingGroundObject {
	var targets []*theater.BuildingGroundObject
	for _, g := range f.theater.GroundObjectsFor(f.enemy()) {
		if b, ok := g.(*theater.BuildingGroundObject); ok && !b.IsDead() {
			targets = append(targets, b)
		}
	}
	return targets
}

// BattlePositions returns the enemy ground force groups defending the
// control point on the far side of a front line, the BAI target list.
func (f *ObjectiveFinder) BattlePositions(front *theater.FrontLine) []*theater.VehicleGroupGroundObject {
	enemyCP := front.ControlPointFor(f.enemy())
	var positions []*theater.VehicleGroupGroundObject
	for _, g := range f.theater.GroundObjectsFor(f.enemy()) {
		if v, ok := g.(*theater.VehicleGroupGroundObject); ok && !v.IsDead() && v.ControlPoint() == enemyCP {
			positions = append(positions, v)
		}
	}
	return positions
}

// Carriers returns the friendly fleets, which always get AEW&C coverage.
func (f *ObjectiveFinder) Carriers() []*theater.ControlPoint {
	return util.FilterSlice(f.theater.ControlPointsFor(f.side),
		func(cp *theater.ControlPoint) bool { return cp.IsFleet() })
}

// FarthestFriendlyControlPoint returns the friendly control point most
// distant from the enemy, the natural place for standoff support orbits.
func (f *ObjectiveFinder) FarthestFriendlyControlPoint() *theater.ControlPoint {
	var farthest *theater.ControlPoint
	best := -1.0
	for _, cp := range f.theater.ControlPointsFor(f.side) {
		if cp.Type == theater.OffMapSpawn {
			continue
		}
		if d := f.distanceToEnemy(cp.Position()); d > best {
			farthest, best = cp, d
		}
	}
	return farthest
}

// ClosestFriendlyControlPoint returns the friendly control point nearest
// the enemy, where tanker tracks earn their keep.
func (f *ObjectiveFinder) ClosestFriendlyControlPoint() *theater.ControlPoint {
	var closest *theater.ControlPoint
	best := 0.0
	for _, cp := range f.theater.ControlPointsFor(f.side) {
		if cp.Type == theater.OffMapSpawn {
			continue
		}
		if d := f.distanceToEnemy(cp.Position()); closest == nil || d < best {
			closest, best = cp, d
		}
	}
	return closest
}

func (f *ObjectiveFinder) distanceToEnemy(p math.Point2) float64 {
	best := -1.0
	for _, cp := range f.theater.ControlPointsFor(f.enemy()) {
		d := math.Distance2(p, cp.Position())
		if best < 0 || d < best {
			best = d
		}
	}
	return best
}

// AmmoDumpsAt returns the live enemy ammo depots supplying a front line.
// Killing them softens the enemy's next ground push.
func (f *ObjectiveFinder) AmmoDumpsAt(front *theater.FrontLine) []*theater.BuildingGroundObject {
	enemyCP := front.ControlPointFor(f.enemy())
	return util.FilterSlice(f.StrikeTargets(),
		func(b *theater.BuildingGroundObject) bool {
			return b.IsAmmoDepot() && b.ControlPoint() == enemyCP
		})
}
