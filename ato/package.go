// ato/package.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"errors"
	"time"

	"github.com/brunoga/deep"

	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
)

// Package is a mission package: a group of flights tasked together
// against one objective, sharing a time over target.
type Package struct {
	Target  theater.MissionTarget
	Flights []*Flight

	// Desired TOT. The zero time is bogus, but it's going to be replaced
	// by whatever is scheduling the package very soon.
	TimeOverTarget time.Time

	// True if the package TOT should be reset to ASAP whenever the
	// planner makes a change.
	AutoASAP bool

	CustomName string

	Waypoints *PackageWaypoints
}

func NewPackage(target theater.MissionTarget) *Package {
	return &Package{Target: target}
}

// AddFlight adds a flight to the package.
func (p *Package) AddFlight(f *Flight) {
	p.Flights = append(p.Flights, f)
	f.pkg = p
}

// RemoveFlight removes a flight from the package, returning its aircraft
// to the squadron. Emptying the package clears the shared waypoints.
func (p *Package) RemoveFlight(f *Flight) {
	p.Flights = util.FilterSlice(p.Flights, func(o *Flight) bool { return o != f })
	f.pkg = nil
	f.ReturnPilotsAndAircraft()
	if len(p.Flights) == 0 {
		p.Waypoints = nil
	}
}

// HasPlayers reports whether any flight has player-controlled slots.
func (p *Package) HasPlayers() bool {
	for _, f := range p.Flights {
		if f.ClientCount > 0 {
			return true
		}
	}
	return false
}

// PrimaryTask determines the goal of the mission from its flight mix.
func (p *Package) PrimaryTask() (FlightType, bool) {
	if len(p.Flights) == 0 {
		return 0, false
	}

	counts := make(map[FlightType]int)
	for _, f := range p.Flights {
		counts[f.Task]++
	}
	for _, task := range tasksByPriority {
		if counts[task] > 0 {
			return task, true
		}
	}
	// tasksByPriority covers every flight type, so this is only reachable
	// if the table falls out of sync with the enum.
	return p.Flights[0].Task, true
}

// PrimaryFlight returns the first flight performing the primary task.
func (p *Package) PrimaryFlight() *Flight {
	task, ok := p.PrimaryTask()
	if !ok {
		return nil
	}
	for _, f := range p.Flights {
		if f.Task == task {
			return f
		}
	}
	return nil
}

// Description generates a package description based on flight composition.
func (p *Package) Description() string {
	task, ok := p.PrimaryTask()
	if !ok {
		return "No mission"
	}
	if task == OcaAircraft || task == OcaRunway {
		return "OCA Strike"
	}
	return task.String()
}

// FormationSpeed is the speed of the package when in formation, in knots.
//
// If none of the flights in the package will join a formation, ok is
// false. This is not uncommon, since only strike-like (strike, DEAD,
// anti-ship, BAI, etc.) flights and their escorts fly in formation.
// Others (CAP and CAS, currently) will coordinate in target timing but
// fly their own path to the target.
func (p *Package) FormationSpeed(isHelo bool) (float64, bool) {
	speed := 0.0
	found := false
	for _, f := range p.Flights {
		fp, ok := f.Plan.(*FormationFlightPlan)
		if !ok || f.IsHelo() != isHelo {
			continue
		}
		if s := fp.BestFlightFormationSpeed(); !found || s < speed {
			speed, found = s, true
		}
	}
	return speed, found
}

// EscortStartTime is the earliest time any flight in the package wants
// escort coverage.
//
// TODO: Should depend on the type of escort. SEAD might be able to leave
// before CAP.
func (p *Package) EscortStartTime() (time.Time, bool) {
	var times []time.Time
	for _, f := range p.Flights {
		if f.Plan == nil {
			continue
		}
		wp, ok := f.Plan.RequestEscortAt()
		if !ok {
			continue
		}
		if tot, ok := f.Plan.TOTForWaypoint(wp); ok {
			times = append(times, tot)
		}
	}
	return minTime(times)
}

// EscortEndTime is the latest time any flight needs escorts around.
func (p *Package) EscortEndTime() (time.Time, bool) {
	var times []time.Time
	for _, f := range p.Flights {
		if f.Plan == nil {
			continue
		}
		wp, ok := f.Plan.DismissEscortAt()
		if !ok {
			continue
		}
		t, ok := f.Plan.TOTForWaypoint(wp)
		if !ok {
			t, ok = f.Plan.DepartTimeForWaypoint(wp)
		}
		if ok {
			times = append(times, t)
		}
	}
	return maxTime(times)
}

// EscortWindow returns the interval over which the package needs escort
// coverage.
func (p *Package) EscortWindow() (util.TimeInterval, bool) {
	start, ok := p.EscortStartTime()
	if !ok {
		return util.TimeInterval{}, false
	}
	end, ok := p.EscortEndTime()
	if !ok {
		return util.TimeInterval{}, false
	}
	return util.TimeInterval{start, end}, true
}

// MissionDepartureTime is the time the last flight leaves the target area.
func (p *Package) MissionDepartureTime() (time.Time, bool) {
	var times []time.Time
	for _, f := range p.Flights {
		if f.Plan != nil {
			times = append(times, f.Plan.MissionDepartureTime())
		}
	}
	return maxTime(times)
}

// SetTotASAP schedules the package at its earliest feasible TOT. A
// package whose flights are already airborne skips the startup buffer;
// only the remaining transit constrains the new TOT.
func (p *Package) SetTotASAP(now time.Time) {
	estimator := NewTotEstimator(p)
	if !p.TimeOverTarget.IsZero() && !p.AllFlightsWaitingForStart(now) {
		p.TimeOverTarget = estimator.EarliestInFlightTot(now)
		return
	}
	p.TimeOverTarget = estimator.EarliestTot(now)
}

var ErrNoFlights = errors.New("package has no flights")
var ErrNoDeparture = errors.New("no airfield assigned to this package")

// DepartureClosestToTarget returns the departure airfield of the package
// that is nearest the objective.
func (p *Package) DepartureClosestToTarget(cache *theater.ObjectiveDistanceCache) (*theater.ControlPoint, error) {
	if len(p.Flights) == 0 {
		return nil, ErrNoFlights
	}

	closest := cache.ClosestAirfields(p.Target)
	for _, airfield := range closest.Airfields {
		for _, f := range p.Flights {
			if f.Departure == airfield {
				return airfield, nil
			}
		}
	}
	return nil, ErrNoDeparture
}

// AllFlightsWaitingForStart reports whether no flight has launched yet.
func (p *Package) AllFlightsWaitingForStart(now time.Time) bool {
	for _, f := range p.Flights {
		if f.Plan == nil {
			continue
		}
		if tot, ok := f.Plan.TOTWaypoint(); ok {
			if t, ok := f.Plan.TOTForWaypoint(tot); ok {
				if t.Add(-f.Plan.TravelTimeToTarget()).Before(now) {
					return false
				}
			}
		}
	}
	return true
}

// Clone returns a speculative copy of the package: flights are duplicated
// with deep-copied waypoint layouts but share squadrons and targets with
// the original.
func (p *Package) Clone() *Package {
	clone := NewPackage(p.Target)
	clone.AutoASAP = p.AutoASAP
	clone.TimeOverTarget = p.TimeOverTarget
	for _, f := range p.Flights {
		cf := *f
		cf.Plan = clonePlanFor(f.Plan, &cf)
		clone.AddFlight(&cf)
	}
	return clone
}

func clonePlanFor(p FlightPlan, f *Flight) FlightPlan {
	switch plan := p.(type) {
	case *CustomFlightPlan:
		return &CustomFlightPlan{flight: f, CustomWaypoints: deep.MustCopy(plan.CustomWaypoints)}
	case *FormationFlightPlan:
		cp := *plan
		cp.flight = f
		return &cp
	case *PatrollingFlightPlan:
		cp := *plan
		cp.flight = f
		return &cp
	default:
		return nil
	}
}

func minTime(times []time.Time) (time.Time, bool) {
	if len(times) == 0 {
		return time.Time{}, false
	}
	t := times[0]
	for _, o := range times[1:] {
		if o.Before(t) {
			t = o
		}
	}
	return t, true
}

func maxTime(times []time.Time) (time.Time, bool) {
	if len(times) == 0 {
		return time.Time{}, false
	}
	t := times[0]
	for _, o := range times[1:] {
		if o.After(t) {
			t = o
		}
	}
	return t, true
}
