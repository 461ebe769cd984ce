// ato/waypoint.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"github.com/Starfire13/dcs-retribution/math"
)

type WaypointType int

const (
	WaypointTakeoff WaypointType = iota
	WaypointNav
	WaypointJoin
	WaypointSplit
	WaypointIngress
	WaypointTargetPoint
	WaypointTargetGroupLoc
	WaypointPatrolTrack
	WaypointPatrolEnd
	WaypointLanding
	WaypointDivert
	WaypointBullseye
)

func (t WaypointType) String() string {
	switch t {
	case WaypointTakeoff:
		return "takeoff"
	case WaypointNav:
		return "nav"
	case WaypointJoin:
		return "join"
	case WaypointSplit:
		return "split"
	case WaypointIngress:
		return "ingress"
	case WaypointTargetPoint:
		return "target point"
	case WaypointTargetGroupLoc:
		return "target group"
	case WaypointPatrolTrack:
		return "patrol track"
	case WaypointPatrolEnd:
		return "patrol end"
	case WaypointLanding:
		return "landing"
	case WaypointDivert:
		return "divert"
	default:
		return "bullseye"
	}
}

// IsTargetWaypoint reports whether the waypoint is the one the package's
// time over target applies to.
func (t WaypointType) IsTargetWaypoint() bool {
	switch t {
	case WaypointPatrolTrack, WaypointTargetPoint, WaypointTargetGroupLoc:
		return true
	default:
		return false
	}
}

// Waypoint is one point in a flight plan. Waypoints are value types and
// compared by value.
type Waypoint struct {
	Name  string
	Pos   math.Point2
	AltFt float64
	Type  WaypointType
}

// PackageWaypoints are the positions shared by all formation flights of a
// package: where the formation forms up, turns inbound, and breaks up.
type PackageWaypoints struct {
	Join    math.Point2
	Ingress math.Point2
	Split   math.Point2
}
