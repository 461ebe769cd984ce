// ato/builder.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"fmt"

	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/threatzones"
)

const (
	// Distance from the ingress point to the join point, and the length of
	// patrol racetrack legs.
	joinDistanceNM   = 20
	patrolLegNM      = 40
	racetrackAltFt   = 25000
	tankerTrackAltFt = 21000
	heloCruiseAltFt  = 500
)

// PlanBuilder creates flight plans for the flights of one package.
// Formation flights share the package join, ingress, and split points;
// patrolling flights get racetracks placed outside enemy threat zones.
type PlanBuilder struct {
	pkg      *Package
	doctrine faction.Doctrine
	threats  threatzones.ThreatZones

	// How far behind the supported position refueling tracks are
	// anchored, nautical miles.
	tankerStandoffNM float64

	distances *theater.ObjectiveDistanceCache
}

func NewPlanBuilder(pkg *Package, doctrine faction.Doctrine, threats threatzones.ThreatZones,
	tankerStandoffNM float64, distances *theater.ObjectiveDistanceCache) *PlanBuilder {
	return &PlanBuilder{
		pkg:              pkg,
		doctrine:         doctrine,
		threats:          threats,
		tankerStandoffNM: tankerStandoffNM,
		distances:        distances,
	}
}

// Populate builds a plan for the flight and attaches it.
func (b *PlanBuilder) Populate(f *Flight) error {
	switch {
	case f.Task == Refueling:
		f.Plan = b.tankerPlan(f)
	case f.Task.IsPatrol():
		f.Plan = b.patrolPlan(f)
	case f.Task.IsFormationTask():
		plan, err := b.formationPlan(f)
		if err != nil {
			return err
		}
		f.Plan = plan
	case f.Task == CAS:
		f.Plan = b.casPlan(f)
	case f.Task == Transport || f.Task == Ferry || f.Task == AirAssault:
		f.Plan = b.customPlan(f)
	default:
		return fmt.Errorf("no planner for %s flights", f.Task)
	}
	return nil
}

// packageWaypoints lays out the shared formation geometry, creating it
// on first use. It is anchored on the package departure airfield nearest
// the objective, and the join point is pushed out of enemy threat zones
// so flights can form up unmolested.
func (b *PlanBuilder) packageWaypoints() (*PackageWaypoints, error) {
	if b.pkg.Waypoints != nil {
		return b.pkg.Waypoints, nil
	}

	departure, err := b.pkg.DepartureClosestToTarget(b.distances)
	if err != nil {
		return nil, err
	}
	target := b.pkg.Target.Position()
	home := math.HeadingBetween(target, departure.Position())
	ingress := math.PointFromHeading(target, home, math.NMToMeters(b.doctrine.IngressEgressDistanceNM))
	join := math.PointFromHeading(ingress, home, math.NMToMeters(joinDistanceNM))
	if b.threats.Threatened(join) {
		if safe, ok := b.threats.ClosestBoundary(join); ok {
			join = safe
		}
	}
	// Egress on the offset side of the ingress line so inbound and
	// outbound formations stay clear of each other.
	split := math.PointFromHeading(join, home.Right(), math.NMToMeters(10))

	b.pkg.Waypoints = &PackageWaypoints{Join: join, Ingress: ingress, Split: split}
	return b.pkg.Waypoints, nil
}

func (b *PlanBuilder) cruiseAltitude(f *Flight) float64 {
	if f.IsHelo() {
		return heloCruiseAltFt
	}
	return f.Unit.CruiseAltFt
}

func (b *PlanBuilder) formationPlan(f *Flight) (*FormationFlightPlan, error) {
	pw, err := b.packageWaypoints()
	if err != nil {
		return nil, err
	}
	ingressAlt := b.doctrine.IngressAltitudeFt
	if f.IsHelo() {
		ingressAlt = heloCruiseAltFt
	}

	targetType := WaypointTargetGroupLoc
	if f.Task == Strike || f.Task == OcaRunway {
		targetType = WaypointTargetPoint
	}

	return &FormationFlightPlan{
		flight:  f,
		Takeoff: takeoffWaypoint(f),
		Join:    Waypoint{Name: "JOIN", Pos: pw.Join, AltFt: b.cruiseAltitude(f), Type: WaypointJoin},
		Ingress: Waypoint{Name: "INGRESS", Pos: pw.Ingress, AltFt: ingressAlt, Type: WaypointIngress},
		Target: Waypoint{
			Name:  b.pkg.Target.Name(),
			Pos:   b.pkg.Target.Position(),
			AltFt: ingressAlt,
			Type:  targetType,
		},
		Split:             Waypoint{Name: "SPLIT", Pos: pw.Split, AltFt: b.cruiseAltitude(f), Type: WaypointSplit},
		Land:              landingWaypoint(f),
		FormationSpeedKts: f.GroundSpeed(),
	}, nil
}

// patrolPlan builds a racetrack for CAP and AEW&C flights. The track is
// anchored at the objective, oriented toward the nearest threat, and its
// far end is pulled back outside enemy air defense coverage.
func (b *PlanBuilder) patrolPlan(f *Flight) *PatrollingFlightPlan {
	station := b.pkg.Target.Position()
	toHome := math.HeadingBetween(station, f.Departure.Position())
	start := station
	end := math.PointFromHeading(start, toHome.Opposite(), math.NMToMeters(patrolLegNM))
	if b.threats.ThreatenedByAirDefense(end) {
		if safe, ok := b.threats.ClosestBoundary(end); ok {
			end = safe
		}
	}

	alt := float64(racetrackAltFt)
	if f.IsHelo() {
		alt = heloCruiseAltFt
	}

	return &PatrollingFlightPlan{
		flight:      f,
		Takeoff:     takeoffWaypoint(f),
		PatrolStart: Waypoint{Name: "RACETRACK START", Pos: start, AltFt: alt, Type: WaypointPatrolTrack},
		PatrolEnd:   Waypoint{Name: "RACETRACK END", Pos: end, AltFt: alt, Type: WaypointPatrolEnd},
		Land:        landingWaypoint(f),
		StationTime: b.doctrine.PatrolDuration(),
	}
}

// tankerPlan places a refueling track behind the objective, on the home
// side, and walks it away from the front until it is clear of every
// threat zone. Receivers burn gas flying to the tanker, so the track is
// no further back than it has to be.
func (b *PlanBuilder) tankerPlan(f *Flight) *PatrollingFlightPlan {
	objective := b.pkg.Target.Position()
	toHome := math.HeadingBetween(objective, f.Departure.Position())
	anchor := math.PointFromHeading(objective, toHome, math.NMToMeters(b.tankerStandoffNM))
	for i := 0; i < 8 && b.threats.Threatened(anchor); i++ {
		anchor = math.PointFromHeading(anchor, toHome, math.NMToMeters(b.tankerStandoffNM/2))
	}
	end := math.PointFromHeading(anchor, toHome.Right(), math.NMToMeters(patrolLegNM))

	return &PatrollingFlightPlan{
		flight:      f,
		Takeoff:     takeoffWaypoint(f),
		PatrolStart: Waypoint{Name: "TANKER RACETRACK START", Pos: anchor, AltFt: tankerTrackAltFt, Type: WaypointPatrolTrack},
		PatrolEnd:   Waypoint{Name: "TANKER RACETRACK END", Pos: end, AltFt: tankerTrackAltFt, Type: WaypointPatrolEnd},
		Land:        landingWaypoint(f),
		StationTime: b.doctrine.PatrolDuration(),
	}
}

// casPlan sends the flight to the front line on its own route. CAS works
// the target area directly rather than pushing as part of a formation.
func (b *PlanBuilder) casPlan(f *Flight) *CustomFlightPlan {
	target := b.pkg.Target.Position()
	toHome := math.HeadingBetween(target, f.Departure.Position())
	ip := math.PointFromHeading(target, toHome, math.NMToMeters(5))

	alt := b.cruiseAltitude(f)
	return NewCustomFlightPlan(f, []Waypoint{
		{Name: "IP", Pos: ip, AltFt: alt, Type: WaypointNav},
		{Name: b.pkg.Target.Name(), Pos: target, AltFt: alt, Type: WaypointTargetGroupLoc},
		landingWaypoint(f),
	})
}

func (b *PlanBuilder) customPlan(f *Flight) *CustomFlightPlan {
	alt := b.cruiseAltitude(f)
	return NewCustomFlightPlan(f, []Waypoint{
		{
			Name:  b.pkg.Target.Name(),
			Pos:   b.pkg.Target.Position(),
			AltFt: alt,
			Type:  WaypointTargetPoint,
		},
		landingWaypoint(f),
	})
}

func landingWaypoint(f *Flight) Waypoint {
	return Waypoint{
		Name: f.Arrival.Name(),
		Pos:  f.Arrival.Position(),
		Type: WaypointLanding,
	}
}
