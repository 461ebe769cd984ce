// airwing/squadron.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package airwing tracks the squadrons of one coalition: which airframes
// exist, where they are based, and how many are left to task this turn.
package airwing

import (
	"fmt"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

// Squadron is a group of aircraft of a single type operating from a
// single control point. It satisfies ato.Squadron so flights can return
// their airframes without the ATO importing this package.
type Squadron struct {
	name     string
	nickname string
	aircraft *units.AircraftType
	location *theater.ControlPoint

	// Airframes on the books and the subset not yet claimed by a flight
	// this turn.
	owned    int
	untasked int

	// Tasks the commander may assign to this squadron automatically.
	// Subset of the airframe's capabilities.
	autoAssignable map[ato.FlightType]bool
}

func NewSquadron(name string, ac *units.AircraftType, location *theater.ControlPoint, size int) *Squadron {
	return &Squadron{
		name:           name,
		aircraft:       ac,
		location:       location,
		owned:          size,
		untasked:       size,
		autoAssignable: make(map[ato.FlightType]bool),
	}
}

func (s *Squadron) String() string                  { return s.name }
func (s *Squadron) Name() string                    { return s.name }
func (s *Squadron) Nickname() string                { return s.nickname }
func (s *Squadron) Aircraft() *units.AircraftType   { return s.aircraft }
func (s *Squadron) Location() *theater.ControlPoint { return s.location }
func (s *Squadron) Owned() int                      { return s.owned }
func (s *Squadron) Untasked() int                   { return s.untasked }

// SetNickname gives the squadron its informal name ("Vipers" etc).
func (s *Squadron) SetNickname(nick string) { s.nickname = nick }

// SetAutoAssignable marks a task the commander may plan for this squadron
// without player direction.
func (s *Squadron) SetAutoAssignable(task ato.FlightType, ok bool) {
	s.autoAssignable[task] = ok
}

// CapableOf reports whether the airframe can fly the task at all.
func (s *Squadron) CapableOf(task ato.FlightType) bool {
	return s.aircraft.CapableOf(task.String())
}

// CanAutoAssign reports whether the commander may plan this task for the
// squadron on its own.
func (s *Squadron) CanAutoAssign(task ato.FlightType) bool {
	return s.autoAssignable[task] && s.CapableOf(task)
}

// CanFulfill reports whether the squadron could provide a flight of the
// given size for the task right now.
func (s *Squadron) CanFulfill(task ato.FlightType, count int) bool {
	return s.CanAutoAssign(task) &&
		s.untasked >= count &&
		s.location.CanOperate(s.aircraft)
}

// ClaimAircraft reserves airframes for a flight.
func (s *Squadron) ClaimAircraft(n int) error {
	if n > s.untasked {
		return fmt.Errorf("%s has %d untasked aircraft, need %d", s.name, s.untasked, n)
	}
	s.untasked -= n
	return nil
}

// ReturnAircraft gives claimed airframes back, e.g. when a package is
// canceled before launch.
func (s *Squadron) ReturnAircraft(n int) {
	s.untasked += n
	if s.untasked > s.owned {
		s.untasked = s.owned
	}
}

// AbsorbLosses removes destroyed airframes from the books.
func (s *Squadron) AbsorbLosses(n int) {
	s.owned -= n
	if s.owned < 0 {
		s.owned = 0
	}
	if s.untasked > s.owned {
		s.untasked = s.owned
	}
}

// ReceiveDeliveries adds purchased airframes to the books.
func (s *Squadron) ReceiveDeliveries(n int) {
	s.owned += n
	s.untasked += n
}

// ResetForTurn makes every surviving airframe available again at the
// start of a planning turn.
func (s *Squadron) ResetForTurn() {
	s.untasked = s.owned
}
