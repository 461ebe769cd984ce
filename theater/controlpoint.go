// theater/controlpoint.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/units"
)

type ControlPointType int

const (
	Airbase ControlPointType = iota
	Carrier
	Lha
	Fob
	OffMapSpawn
)

func (t ControlPointType) String() string {
	switch t {
	case Airbase:
		return "airbase"
	case Carrier:
		return "carrier"
	case Lha:
		return "LHA"
	case Fob:
		return "FOB"
	default:
		return "off-map spawn"
	}
}

// ControlPoint is a capturable basing location: an airfield, carrier
// group, or forward operating base.
type ControlPoint struct {
	ID    int
	Name_ string
	Pos   math.Point2
	Side  Side
	Type  ControlPointType

	RunwayOperational bool
	ParkingSlots      int

	// Aircraft parked on the ramp, for OCA targeting.
	ParkedAircraft int
}

func (cp *ControlPoint) Name() string          { return cp.Name_ }
func (cp *ControlPoint) Position() math.Point2 { return cp.Pos }

// IsFleet reports whether the control point is a naval group (carrier or
// LHA); fleets move and launch/recover rather than operate a runway.
func (cp *ControlPoint) IsFleet() bool {
	return cp.Type == Carrier || cp.Type == Lha
}

func (cp *ControlPoint) IsCarrier() bool {
	return cp.Type == Carrier
}

// CanOperate reports whether the given airframe can fly from this control
// point. Helicopters can operate anywhere with parking; fixed wing
// aircraft need an operational runway or a carrier deck.
func (cp *ControlPoint) CanOperate(ac *units.AircraftType) bool {
	if cp.ParkingSlots == 0 {
		return false
	}
	if ac.Helicopter {
		return true
	}
	switch cp.Type {
	case Airbase:
		return cp.RunwayOperational
	case Carrier:
		return ac.Carrier
	case Lha:
		return false
	case OffMapSpawn:
		return true
	default:
		return false
	}
}

// IsFriendlyTo reports whether the control point belongs to the given side.
func (cp *ControlPoint) IsFriendlyTo(side Side) bool {
	return cp.Side == side
}
