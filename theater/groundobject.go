// theater/groundobject.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"slices"

	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/units"
	"github.com/Starfire13/dcs-retribution/util"
)

// GroundUnit is one unit within a theater ground object's group.
type GroundUnit struct {
	Type  *units.GroundUnitType
	Alive bool
}

// GroundObject is a theater ground object (TGO): a named group of ground
// units positioned at a control point.
type GroundObject interface {
	MissionTarget
	ControlPoint() *ControlPoint
	Units() []GroundUnit
	IsDead() bool
}

// AirDefense is implemented by ground objects that can detect or threaten
// aircraft: SAM sites and warships.
type AirDefense interface {
	GroundObject
	// MaxDetectionRange returns the longest detection range (meters) of
	// any alive radar in the group, zero if blind.
	MaxDetectionRange() float64
	// MaxThreatRange returns the longest engagement range (meters) of any
	// alive unit in the group, zero if toothless.
	MaxThreatRange() float64
	Task() units.GroupTask
}

// GroundObjectBase carries the state shared by all TGO kinds.
type GroundObjectBase struct {
	ObjName string
	Pos     math.Point2
	CP      *ControlPoint
	Group   []GroundUnit
}

func (g *GroundObjectBase) Name() string                { return g.ObjName }
func (g *GroundObjectBase) Position() math.Point2       { return g.Pos }
func (g *GroundObjectBase) ControlPoint() *ControlPoint { return g.CP }
func (g *GroundObjectBase) Units() []GroundUnit         { return g.Group }

func (g *GroundObjectBase) IsDead() bool {
	for _, u := range g.Group {
		if u.Alive {
			return false
		}
	}
	return true
}

// DistanceTo returns the distance in meters from the object to the target.
func DistanceTo(g GroundObject, target MissionTarget) float64 {
	return math.Distance2(g.Position(), target.Position())
}

func (g *GroundObjectBase) maxRange(rangeOf func(*units.GroundUnitType) float64) float64 {
	r := 0.0
	for _, u := range g.Group {
		if u.Alive {
			r = max(r, math.NMToMeters(rangeOf(u.Type)))
		}
	}
	return r
}

func (g *GroundObjectBase) MaxDetectionRange() float64 {
	return g.maxRange(func(t *units.GroundUnitType) float64 {
		if !t.HasRadar() {
			return 0
		}
		return t.DetectionRangeNM
	})
}

func (g *GroundObjectBase) MaxThreatRange() float64 {
	return g.maxRange(func(t *units.GroundUnitType) float64 { return t.ThreatRangeNM })
}

// IadsGroundObject is a ground-based air defense site.
type IadsGroundObject struct {
	GroundObjectBase
	GroupTask units.GroupTask
}

func (g *IadsGroundObject) Task() units.GroupTask { return g.GroupTask }

// When the search radars of a site with paired launchers and trackers are
// dead, the launchers cannot engage even if alive; the threat range
// collapses to the TELARs that guide their own missiles.
func (g *IadsGroundObject) MaxThreatRange() float64 {
	db := units.DB
	r := 0.0
	trackerAlive := func(launcher string) bool {
		trackers, ok := db.LauncherTrackerPairs[launcher]
		if !ok {
			return true // self-guided
		}
		for _, u := range g.Group {
			if u.Alive && slices.Contains(trackers, u.Type.Name) {
				return true
			}
		}
		return false
	}
	for _, u := range g.Group {
		if !u.Alive {
			continue
		}
		if db.TELARs[u.Type.Name] || trackerAlive(u.Type.Name) {
			r = max(r, math.NMToMeters(u.Type.ThreatRangeNM))
		}
	}
	return r
}

// NavalGroundObject is a warship group.
type NavalGroundObject struct {
	GroundObjectBase
}

func (g *NavalGroundObject) Task() units.GroupTask { return units.Navy }

// BuildingGroundObject is a strike target.
type BuildingGroundObject struct {
	GroundObjectBase
	Category string
}

func (g *BuildingGroundObject) IsAmmoDepot() bool {
	return g.Category == "ammo"
}

// VehicleGroupGroundObject is a ground-force battle position.
type VehicleGroupGroundObject struct {
	GroundObjectBase
}

// AliveUnitCount counts the surviving units in the group.
func AliveUnitCount(g GroundObject) int {
	return len(util.FilterSlice(g.Units(), func(u GroundUnit) bool { return u.Alive }))
}
