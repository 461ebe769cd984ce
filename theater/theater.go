// theater/theater.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package theater models the campaign map: control points, ground
// objects, and front lines. It is the static side of the planner's world;
// the mutable planning view lives in the commander package.
package theater

import (
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/util"
)

type Side int

const (
	Neutral Side = iota
	Blue
	Red
)

func (s Side) String() string {
	switch s {
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "neutral"
	}
}

func (s Side) Opponent() Side {
	switch s {
	case Blue:
		return Red
	case Red:
		return Blue
	default:
		return Neutral
	}
}

// MissionTarget is anything a package can be tasked against: a control
// point, a ground object, or a front line.
type MissionTarget interface {
	Name() string
	Position() math.Point2
}

type ConflictTheater struct {
	TheaterName   string
	ControlPoints []*ControlPoint
	GroundObjects []GroundObject
	FrontLines    []*FrontLine
}

func (t *ConflictTheater) ControlPointsFor(side Side) []*ControlPoint {
	return util.FilterSlice(t.ControlPoints,
		func(cp *ControlPoint) bool { return cp.Side == side })
}

func (t *ConflictTheater) GroundObjectsFor(side Side) []GroundObject {
	return util.FilterSlice(t.GroundObjects,
		func(g GroundObject) bool { return g.ControlPoint().Side == side })
}

func (t *ConflictTheater) ActiveFrontLines() []*FrontLine {
	return util.FilterSlice(t.FrontLines, func(f *FrontLine) bool { return f.Active() })
}

// ClosestControlPoint returns the control point of the given side nearest
// to p, or nil if the side holds nothing.
func (t *ConflictTheater) ClosestControlPoint(p math.Point2, side Side) *ControlPoint {
	var closest *ControlPoint
	best := 0.0
	for _, cp := range t.ControlPointsFor(side) {
		d := math.Distance2(p, cp.Position())
		if closest == nil || d < best {
			closest, best = cp, d
		}
	}
	return closest
}
