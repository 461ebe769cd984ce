// threatzones/threatzones.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package threatzones computes the area a side's air defenses and
// fighters can contest. The planner consults it both to gate strike
// preconditions and to place support orbits outside harm's way.
package threatzones

import (
	gomath "math"

	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
)

// Zone is one circular threat area.
type Zone struct {
	Center math.Point2
	Radius float64 // meters
}

func (z Zone) Contains(p math.Point2) bool {
	return math.Distance2(p, z.Center) <= z.Radius
}

// ThreatZones is the union of a side's threat circles, with air defenses
// tracked separately so SEAD planning can distinguish them from fighter
// coverage.
type ThreatZones struct {
	All         []Zone
	AirDefenses []Zone
}

// ForThreats builds the threat zones for one side: a circle per barcap
// location (radius capRangeMeters) and a circle per air defense at its
// maximum threat range. Dead or toothless air defenses contribute
// nothing.
func ForThreats(capRangeMeters float64, barcapLocations []math.Point2, airDefenses []theater.AirDefense) ThreatZones {
	var zones ThreatZones
	for _, p := range barcapLocations {
		zones.All = append(zones.All, Zone{Center: p, Radius: capRangeMeters})
	}
	for _, ad := range airDefenses {
		r := ad.MaxThreatRange()
		if r <= 0 {
			continue
		}
		z := Zone{Center: ad.Position(), Radius: r}
		zones.All = append(zones.All, z)
		zones.AirDefenses = append(zones.AirDefenses, z)
	}
	return zones
}

// Threatened reports whether p lies inside any threat circle.
func (tz ThreatZones) Threatened(p math.Point2) bool {
	for _, z := range tz.All {
		if z.Contains(p) {
			return true
		}
	}
	return false
}

// ThreatenedByAirDefense reports whether p lies inside an air defense
// threat circle.
func (tz ThreatZones) ThreatenedByAirDefense(p math.Point2) bool {
	for _, z := range tz.AirDefenses {
		if z.Contains(p) {
			return true
		}
	}
	return false
}

// ClosestBoundary returns the point on the boundary of the threatened
// area nearest to p. Returns false if there are no threat zones.
func (tz ThreatZones) ClosestBoundary(p math.Point2) (math.Point2, bool) {
	if len(tz.All) == 0 {
		return math.Point2{}, false
	}

	best := math.Point2{}
	bestDist := gomath.Inf(1)
	for _, z := range tz.All {
		d := math.Distance2(p, z.Center)
		var edge math.Point2
		if d == 0 {
			// Degenerate: pick an arbitrary direction to the edge.
			edge = math.Add2(z.Center, math.Point2{z.Radius, 0})
		} else {
			edge = math.Add2(z.Center, math.Scale2(math.Sub2(p, z.Center), z.Radius/d))
		}
		if ed := math.Distance2(p, edge); ed < bestDist {
			best, bestDist = edge, ed
		}
	}
	return best, true
}
