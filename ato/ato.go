// ato/ato.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package ato holds the air tasking order: the packages, flights, and
// flight plans a coalition has committed aircraft to for the current turn.
package ato

// AirTaskingOrder is the set of all planned packages for one coalition.
type AirTaskingOrder struct {
	Packages []*Package
}

func (a *AirTaskingOrder) AddPackage(p *Package) {
	a.Packages = append(a.Packages, p)
}

// RemovePackage removes a package from the ATO, releasing the aircraft
// of every flight in it.
func (a *AirTaskingOrder) RemovePackage(p *Package) {
	for _, f := range append([]*Flight(nil), p.Flights...) {
		p.RemoveFlight(f)
	}
	for i, o := range a.Packages {
		if o == p {
			a.Packages = append(a.Packages[:i], a.Packages[i+1:]...)
			return
		}
	}
}

// Clear drops all packages. Flights are returned to their squadrons;
// used at the start of a new turn before replanning.
func (a *AirTaskingOrder) Clear() {
	for _, p := range append([]*Package(nil), a.Packages...) {
		a.RemovePackage(p)
	}
}

// HasAWACSPackage reports whether any planned package provides AEW&C
// coverage. The commander plans exactly one per coalition per turn.
func (a *AirTaskingOrder) HasAWACSPackage() bool {
	for _, p := range a.Packages {
		if task, ok := p.PrimaryTask(); ok && task == AEWC {
			return true
		}
	}
	return false
}
