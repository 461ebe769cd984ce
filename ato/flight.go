// ato/flight.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package ato

import (
	"fmt"

	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

// Squadron is the roster a flight's aircraft are drawn from. The concrete
// type lives in the airwing package; the ATO only needs to identify the
// squadron and give airframes back when a flight is canceled.
type Squadron interface {
	Name() string
	Aircraft() *units.AircraftType
	Location() *theater.ControlPoint
	ReturnAircraft(n int)
}

// Flight is an assignment of a squadron's aircraft to a task. A flight
// belongs to exactly one package.
type Flight struct {
	Squadron Squadron
	Unit     *units.AircraftType
	Count    int
	Task     FlightType

	Departure *theater.ControlPoint
	Arrival   *theater.ControlPoint
	Divert    *theater.ControlPoint

	Plan FlightPlan

	// Number of player-controlled aircraft in the flight.
	ClientCount int

	pkg *Package
}

func NewFlight(sq Squadron, count int, task FlightType) *Flight {
	return &Flight{
		Squadron:  sq,
		Unit:      sq.Aircraft(),
		Count:     count,
		Task:      task,
		Departure: sq.Location(),
		Arrival:   sq.Location(),
	}
}

func (f *Flight) String() string {
	return fmt.Sprintf("%s %d x %s", f.Task, f.Count, f.Unit.Name)
}

// Package returns the package the flight belongs to, nil until added.
func (f *Flight) Package() *Package { return f.pkg }

func (f *Flight) IsHelo() bool {
	return f.Unit.Helicopter
}

// GroundSpeed returns the cruise ground speed in knots.
func (f *Flight) GroundSpeed() float64 {
	return f.Unit.CruiseSpeedKts
}

// ReturnPilotsAndAircraft gives the flight's airframes back to its
// squadron; called when the flight is removed from its package.
func (f *Flight) ReturnPilotsAndAircraft() {
	f.Squadron.ReturnAircraft(f.Count)
}
