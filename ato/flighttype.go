// ato/flighttype.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

// FlightType is the task assigned to a flight.
type FlightType int

const (
	CAS FlightType = iota
	Strike
	AntiShip
	OcaAircraft
	OcaRunway
	BAI
	DEAD
	Transport
	AirAssault
	ArmedRecon
	SEAD
	SEADSweep
	TARCAP
	BARCAP
	AEWC
	Ferry
	Recovery
	Refueling
	Sweep
	SEADEscort
	Escort
	numFlightTypes
)

var flightTypeNames = [numFlightTypes]string{
	CAS:         "CAS",
	Strike:      "Strike",
	AntiShip:    "Anti-ship",
	OcaAircraft: "OCA/Aircraft",
	OcaRunway:   "OCA/Runway",
	BAI:         "BAI",
	DEAD:        "DEAD",
	Transport:   "Transport",
	AirAssault:  "Air Assault",
	ArmedRecon:  "Armed Recon",
	SEAD:        "SEAD",
	SEADSweep:   "SEAD Sweep",
	TARCAP:      "TARCAP",
	BARCAP:      "BARCAP",
	AEWC:        "AEW&C",
	Ferry:       "Ferry",
	Recovery:    "Recovery",
	Refueling:   "Refueling",
	Sweep:       "Fighter sweep",
	SEADEscort:  "SEAD Escort",
	Escort:      "Escort",
}

// FlightTypeByName maps a task name from the unit database back to its
// flight type.
func FlightTypeByName(name string) (FlightType, bool) {
	for t, n := range flightTypeNames {
		if n == name {
			return FlightType(t), true
		}
	}
	return 0, false
}

func (t FlightType) String() string {
	if t < 0 || t >= numFlightTypes {
		return "unknown"
	}
	return flightTypeNames[t]
}

// IsAirToAir reports whether the task is flown with an air-to-air loadout.
func (t FlightType) IsAirToAir() bool {
	switch t {
	case TARCAP, BARCAP, Sweep, Escort:
		return true
	default:
		return false
	}
}

// IsPatrol reports whether the task is flown as a racetrack orbit rather
// than a there-and-back route.
func (t FlightType) IsPatrol() bool {
	switch t {
	case TARCAP, BARCAP, AEWC, Refueling, Recovery:
		return true
	default:
		return false
	}
}

// IsFormationTask reports whether flights with this task fly to the target
// in a package formation and can be escorted en route. CAP and CAS
// coordinate on target timing but fly their own paths.
func (t FlightType) IsFormationTask() bool {
	switch t {
	case Strike, AntiShip, OcaAircraft, OcaRunway, BAI, DEAD, SEAD, SEADEscort, SEADSweep, ArmedRecon, Escort:
		return true
	default:
		return false
	}
}

// The package will contain a mix of mission types, but in general we can
// determine the goal of the mission because some mission types are more
// likely to be the main task than others. For example, a package with
// only CAP flights is a CAP package, a flight with CAP and strike is a
// strike package, a flight with CAP and DEAD is a DEAD package, and a
// flight with strike and SEAD is an OCA/Strike package. This list defines
// the priority order for package task names.
var tasksByPriority = []FlightType{
	CAS,
	Strike,
	AntiShip,
	OcaAircraft,
	OcaRunway,
	BAI,
	DEAD,
	Transport,
	AirAssault,
	ArmedRecon,
	SEAD,
	SEADSweep,
	TARCAP,
	BARCAP,
	AEWC,
	Ferry,
	Recovery,
	Refueling,
	Sweep,
	SEADEscort,
	Escort,
}
