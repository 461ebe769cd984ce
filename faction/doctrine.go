// faction/doctrine.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package faction

import "time"

// Doctrine captures era-dependent planning parameters. The ranges gate how
// far fighters are willing to commit from their patrol positions, which in
// turn feeds the threat zones the opposing planner must respect.
type Doctrine struct {
	Name string

	CapEngagementRangeNM float64

	// How far out the escorted package requests escort, and typical
	// ingress distance for strike packages.
	IngressEgressDistanceNM float64
	IngressAltitudeFt       float64

	// Patrol durations drive BARCAP round planning.
	PatrolDurationMinutes int
}

// PatrolDuration is the doctrine's patrol time on station.
func (d Doctrine) PatrolDuration() time.Duration {
	return time.Duration(d.PatrolDurationMinutes) * time.Minute
}

var Modern = Doctrine{
	Name:                    "modern",
	CapEngagementRangeNM:    40,
	IngressEgressDistanceNM: 45,
	IngressAltitudeFt:       20000,
	PatrolDurationMinutes:   60,
}

var ColdWar = Doctrine{
	Name:                    "coldwar",
	CapEngagementRangeNM:    30,
	IngressEgressDistanceNM: 30,
	IngressAltitudeFt:       18000,
	PatrolDurationMinutes:   60,
}

var WWII = Doctrine{
	Name:                    "ww2",
	CapEngagementRangeNM:    15,
	IngressEgressDistanceNM: 15,
	IngressAltitudeFt:       8000,
	PatrolDurationMinutes:   40,
}

var doctrines = map[string]Doctrine{
	Modern.Name:  Modern,
	ColdWar.Name: ColdWar,
	WWII.Name:    WWII,
}

// DoctrineByName returns the named doctrine, defaulting to modern for
// unknown names.
func DoctrineByName(name string) Doctrine {
	if d, ok := doctrines[name]; ok {
		return d
	}
	return Modern
}

// Doctrine resolves the faction's doctrine name.
func (f *Faction) GetDoctrine() Doctrine {
	return DoctrineByName(f.Doctrine)
}
