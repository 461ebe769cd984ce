// ato/flightplan.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"time"

	"github.com/Starfire13/dcs-retribution/math"
)

// FlightPlan is the planned route of one flight. Times are derived from
// the owning package's time over target, so they shift automatically when
// the package is rescheduled.
type FlightPlan interface {
	Waypoints() []Waypoint

	// TOTWaypoint returns the waypoint the package TOT applies to; ok is
	// false for plans with no timed waypoint (e.g. ferry flights).
	TOTWaypoint() (Waypoint, bool)

	// TOTForWaypoint returns the time the flight is planned to arrive at
	// the given waypoint, if it has one.
	TOTForWaypoint(wp Waypoint) (time.Time, bool)

	// DepartTimeForWaypoint returns the time the flight is planned to
	// leave the given waypoint, for waypoints with a loiter.
	DepartTimeForWaypoint(wp Waypoint) (time.Time, bool)

	// RequestEscortAt returns the waypoint from which the flight wants
	// escort coverage, if any.
	RequestEscortAt() (Waypoint, bool)

	// DismissEscortAt returns the waypoint after which escorts are no
	// longer needed, if any.
	DismissEscortAt() (Waypoint, bool)

	// TravelTimeToTarget is the transit time from takeoff to the TOT
	// waypoint at planned speeds.
	TravelTimeToTarget() time.Duration

	// MissionDepartureTime is the time the flight leaves the target area.
	MissionDepartureTime() time.Time
}

// legTime returns the time to fly the polyline at the given speed.
func legTime(speedKts float64, points ...math.Point2) time.Duration {
	if speedKts <= 0 {
		return 0
	}
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += math.Distance2(points[i-1], points[i])
	}
	return time.Duration(total / math.KnotsToMPS(speedKts) * float64(time.Second))
}

///////////////////////////////////////////////////////////////////////////
// CustomFlightPlan

// CustomFlightPlan is a hand-built waypoint list with no structure beyond
// an optional target waypoint.
type CustomFlightPlan struct {
	flight          *Flight
	CustomWaypoints []Waypoint
}

func NewCustomFlightPlan(f *Flight, waypoints []Waypoint) *CustomFlightPlan {
	return &CustomFlightPlan{flight: f, CustomWaypoints: waypoints}
}

func (p *CustomFlightPlan) Waypoints() []Waypoint {
	wps := []Waypoint{takeoffWaypoint(p.flight)}
	return append(wps, p.CustomWaypoints...)
}

func (p *CustomFlightPlan) TOTWaypoint() (Waypoint, bool) {
	for _, wp := range p.CustomWaypoints {
		if wp.Type.IsTargetWaypoint() {
			return wp, true
		}
	}
	return takeoffWaypoint(p.flight), true
}

func (p *CustomFlightPlan) TOTForWaypoint(wp Waypoint) (time.Time, bool) {
	if tot, ok := p.TOTWaypoint(); ok && wp == tot {
		return p.flight.pkg.TimeOverTarget, true
	}
	return time.Time{}, false
}

func (p *CustomFlightPlan) DepartTimeForWaypoint(Waypoint) (time.Time, bool) {
	return time.Time{}, false
}

func (p *CustomFlightPlan) RequestEscortAt() (Waypoint, bool) { return Waypoint{}, false }
func (p *CustomFlightPlan) DismissEscortAt() (Waypoint, bool) { return Waypoint{}, false }

func (p *CustomFlightPlan) TravelTimeToTarget() time.Duration {
	tot, _ := p.TOTWaypoint()
	points := []math.Point2{p.flight.Departure.Position()}
	for _, wp := range p.CustomWaypoints {
		points = append(points, wp.Pos)
		if wp == tot {
			break
		}
	}
	return legTime(p.flight.GroundSpeed(), points...)
}

func (p *CustomFlightPlan) MissionDepartureTime() time.Time {
	return p.flight.pkg.TimeOverTarget
}

///////////////////////////////////////////////////////////////////////////
// FormationFlightPlan

// FormationFlightPlan is flown by strike-like flights and their escorts:
// the package forms up at the join point, pushes through the ingress
// point to the target, and splits up on egress.
type FormationFlightPlan struct {
	flight *Flight

	Takeoff Waypoint
	Join    Waypoint
	Ingress Waypoint
	Target  Waypoint
	Split   Waypoint
	Land    Waypoint

	// Speed the formation holds between join and split, knots.
	FormationSpeedKts float64
}

func (p *FormationFlightPlan) Waypoints() []Waypoint {
	return []Waypoint{p.Takeoff, p.Join, p.Ingress, p.Target, p.Split, p.Land}
}

func (p *FormationFlightPlan) TOTWaypoint() (Waypoint, bool) {
	return p.Target, true
}

// BestFlightFormationSpeed is the fastest speed this flight can hold in
// the package formation.
func (p *FormationFlightPlan) BestFlightFormationSpeed() float64 {
	return p.FormationSpeedKts
}

func (p *FormationFlightPlan) TOTForWaypoint(wp Waypoint) (time.Time, bool) {
	tot := p.flight.pkg.TimeOverTarget
	switch wp {
	case p.Target:
		return tot, true
	case p.Ingress:
		return tot.Add(-legTime(p.FormationSpeedKts, p.Ingress.Pos, p.Target.Pos)), true
	case p.Join:
		return tot.Add(-legTime(p.FormationSpeedKts, p.Join.Pos, p.Ingress.Pos, p.Target.Pos)), true
	default:
		return time.Time{}, false
	}
}

func (p *FormationFlightPlan) DepartTimeForWaypoint(wp Waypoint) (time.Time, bool) {
	if wp == p.Split {
		tot := p.flight.pkg.TimeOverTarget
		return tot.Add(legTime(p.FormationSpeedKts, p.Target.Pos, p.Split.Pos)), true
	}
	return time.Time{}, false
}

func (p *FormationFlightPlan) RequestEscortAt() (Waypoint, bool) { return p.Join, true }
func (p *FormationFlightPlan) DismissEscortAt() (Waypoint, bool) { return p.Split, true }

func (p *FormationFlightPlan) TravelTimeToTarget() time.Duration {
	return legTime(p.flight.GroundSpeed(), p.Takeoff.Pos, p.Join.Pos) +
		legTime(p.FormationSpeedKts, p.Join.Pos, p.Ingress.Pos, p.Target.Pos)
}

func (p *FormationFlightPlan) MissionDepartureTime() time.Time {
	tot := p.flight.pkg.TimeOverTarget
	return tot.Add(legTime(p.flight.GroundSpeed(), p.Target.Pos, p.Split.Pos, p.Land.Pos))
}

///////////////////////////////////////////////////////////////////////////
// PatrollingFlightPlan

// PatrollingFlightPlan is a racetrack orbit: CAP stations, AEW&C orbits,
// and tanker tracks. The package TOT is the on-station time.
type PatrollingFlightPlan struct {
	flight *Flight

	Takeoff     Waypoint
	PatrolStart Waypoint
	PatrolEnd   Waypoint
	Land        Waypoint

	StationTime time.Duration
}

func (p *PatrollingFlightPlan) Waypoints() []Waypoint {
	return []Waypoint{p.Takeoff, p.PatrolStart, p.PatrolEnd, p.Land}
}

func (p *PatrollingFlightPlan) TOTWaypoint() (Waypoint, bool) {
	return p.PatrolStart, true
}

func (p *PatrollingFlightPlan) TOTForWaypoint(wp Waypoint) (time.Time, bool) {
	if wp == p.PatrolStart {
		return p.flight.pkg.TimeOverTarget, true
	}
	return time.Time{}, false
}

func (p *PatrollingFlightPlan) DepartTimeForWaypoint(wp Waypoint) (time.Time, bool) {
	if wp == p.PatrolEnd {
		return p.flight.pkg.TimeOverTarget.Add(p.StationTime), true
	}
	return time.Time{}, false
}

func (p *PatrollingFlightPlan) RequestEscortAt() (Waypoint, bool) { return Waypoint{}, false }
func (p *PatrollingFlightPlan) DismissEscortAt() (Waypoint, bool) { return Waypoint{}, false }

func (p *PatrollingFlightPlan) TravelTimeToTarget() time.Duration {
	return legTime(p.flight.GroundSpeed(), p.Takeoff.Pos, p.PatrolStart.Pos)
}

func (p *PatrollingFlightPlan) MissionDepartureTime() time.Time {
	return p.flight.pkg.TimeOverTarget.Add(p.StationTime)
}

func takeoffWaypoint(f *Flight) Waypoint {
	return Waypoint{
		Name: f.Departure.Name(),
		Pos:  f.Departure.Position(),
		Type: WaypointTakeoff,
	}
}
