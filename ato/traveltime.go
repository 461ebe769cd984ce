// ato/traveltime.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"time"
)

// StartupTime is the fixed budget for startup, taxi, and takeoff ahead of
// the first leg of a flight plan.
const StartupTime = 10 * time.Minute

// TotEstimator computes the earliest time over target a package can make
// given the transit times of its flights.
type TotEstimator struct {
	pkg *Package
}

func NewTotEstimator(pkg *Package) *TotEstimator {
	return &TotEstimator{pkg: pkg}
}

// EarliestTot returns the earliest TOT that every flight of the package
// can make, no earlier than now. A flight that has not been planned yet
// does not constrain the estimate.
func (e *TotEstimator) EarliestTot(now time.Time) time.Time {
	var slowest time.Duration
	for _, f := range e.pkg.Flights {
		if d := earliestTotForFlight(f); d > slowest {
			slowest = d
		}
	}
	return now.Add(slowest)
}

// EarliestInFlightTot is the earliest TOT for a package that is already
// airborne: no startup buffer, just the longest remaining transit.
func (e *TotEstimator) EarliestInFlightTot(now time.Time) time.Time {
	var slowest time.Duration
	for _, f := range e.pkg.Flights {
		if f.Plan == nil {
			continue
		}
		if d := f.Plan.TravelTimeToTarget(); d > slowest {
			slowest = d
		}
	}
	return now.Add(slowest)
}

// earliestTotForFlight is the minimum time before TOT that the flight
// must take off: startup plus transit to the TOT waypoint.
func earliestTotForFlight(f *Flight) time.Duration {
	if f.Plan == nil {
		return 0
	}
	return StartupTime + f.Plan.TravelTimeToTarget()
}
