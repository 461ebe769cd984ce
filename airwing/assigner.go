// airwing/assigner.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package airwing

import (
	"fmt"

	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/log"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
)

const defaultSquadronSize = 12

// Tasks the assigner tries to cover, most important first. Air defense
// of our own fields comes before anything else; support assets come
// last because one squadron of each is plenty.
var assignmentPriority = []ato.FlightType{
	ato.BARCAP,
	ato.CAS,
	ato.Strike,
	ato.DEAD,
	ato.BAI,
	ato.AntiShip,
	ato.AEWC,
	ato.Refueling,
}

// Nicknames handed to squadrons whose config doesn't name one.
var squadronNicknames = []string{
	"Vipers", "Gamblers", "Bandits", "Werewolves", "Checkmates",
	"Jokers", "Wolfpack", "Black Lions", "Gunfighters", "Vampires",
}

// SquadronConfig is one squadron the campaign file asks for: where it
// is based, what it primarily does, and which airframes it should fly.
type SquadronConfig struct {
	// Optional designation like "494th Fighter Squadron"; generated when
	// empty.
	Name     string
	Nickname string

	ControlPoint *theater.ControlPoint
	PrimaryTask  ato.FlightType

	// Airframe names to try in order. Entries the faction does not
	// operate or that cannot fly the task are skipped.
	PreferredAircraft []string

	Size int
}

// SquadronAssigner populates an air wing at campaign start. Squadrons
// the campaign file configures are placed first, preferring their named
// airframes; remaining uncovered tasks get generated default squadrons
// flying whatever capable airframe the faction has.
type SquadronAssigner struct {
	faction *faction.Faction
	theater *theater.ConflictTheater
	side    theater.Side
	configs []SquadronConfig
	rng     *rand.Rand
	lg      *log.Logger

	parkingUsed map[*theater.ControlPoint]int
	counter     int
}

func NewSquadronAssigner(f *faction.Faction, t *theater.ConflictTheater, side theater.Side,
	configs []SquadronConfig, rng *rand.Rand, lg *log.Logger) *SquadronAssigner {
	return &SquadronAssigner{
		faction:     f,
		theater:     t,
		side:        side,
		configs:     configs,
		rng:         rng,
		lg:          lg,
		parkingUsed: make(map[*theater.ControlPoint]int),
	}
}

// Assign builds the air wing. Configured squadrons and tasks that no
// faction airframe or no base can support are skipped with a log message
// rather than failing the campaign: the commander simply will not plan
// those missions.
func (a *SquadronAssigner) Assign(wing *AirWing) error {
	if len(a.theater.ControlPointsFor(a.side)) == 0 {
		return fmt.Errorf("no friendly control points to base squadrons at")
	}

	covered := make(map[ato.FlightType]bool)
	for _, cfg := range a.configs {
		sq := a.squadronForConfig(cfg)
		if sq == nil {
			a.lg.Infof("%s: cannot raise %s squadron at %s: no compatible airframe or basing",
				a.faction.Name, cfg.PrimaryTask, cfg.ControlPoint.Name())
			continue
		}
		wing.AddSquadron(sq)
		covered[cfg.PrimaryTask] = true
		a.logSquadron(sq, cfg.PrimaryTask)
	}

	for _, task := range assignmentPriority {
		if covered[task] {
			continue
		}
		sq := a.squadronForTask(task)
		if sq == nil {
			a.lg.Infof("no %s squadron for %s: no capable airframe with basing", a.faction.Name, task)
			continue
		}
		wing.AddSquadron(sq)
		a.logSquadron(sq, task)
	}
	return nil
}

func (a *SquadronAssigner) logSquadron(sq *Squadron, task ato.FlightType) {
	a.lg.Infof("%s %q: %d x %s at %s for %s",
		sq.Name(), sq.Nickname(), sq.Owned(), sq.Aircraft().Name, sq.Location().Name(), task)
}

// squadronForConfig raises a configured squadron: the preferred
// airframes are tried in order, then any airframe the faction can fly
// the task with. The configured base is used unless it cannot operate
// the airframe or has no ramp space, in which case the squadron moves to
// the friendliest alternative.
func (a *SquadronAssigner) squadronForConfig(cfg SquadronConfig) *Squadron {
	for _, name := range cfg.PreferredAircraft {
		ac, ok := units.AircraftByName(name)
		if !ok || !a.faction.HasAircraft(ac) || !ac.CapableOf(cfg.PrimaryTask.String()) {
			continue
		}
		if sq := a.raise(cfg, ac); sq != nil {
			return sq
		}
	}
	for _, ac := range a.faction.AircraftForTask(cfg.PrimaryTask.String()) {
		if sq := a.raise(cfg, ac); sq != nil {
			return sq
		}
	}
	return nil
}

func (a *SquadronAssigner) raise(cfg SquadronConfig, ac *units.AircraftType) *Squadron {
	cp := cfg.ControlPoint
	if !cp.CanOperate(ac) || cp.ParkingSlots-a.parkingUsed[cp] <= 0 {
		cp = a.baseFor(ac)
		if cp == nil {
			return nil
		}
	}

	size := cfg.Size
	if size <= 0 {
		size = defaultSquadronSize
	}
	if free := cp.ParkingSlots - a.parkingUsed[cp]; free < size {
		size = free
	}
	a.parkingUsed[cp] += size

	name := cfg.Name
	if name == "" {
		name = a.generatedName(ac)
	}
	sq := NewSquadron(name, ac, cp, size)
	sq.SetNickname(a.nickname(cfg.Nickname))
	a.setAutoAssignable(sq, ac)
	return sq
}

func (a *SquadronAssigner) squadronForTask(task ato.FlightType) *Squadron {
	for _, ac := range a.faction.AircraftForTask(task.String()) {
		cp := a.baseFor(ac)
		if cp == nil {
			continue
		}

		size := defaultSquadronSize
		if free := cp.ParkingSlots - a.parkingUsed[cp]; free < size {
			size = free
		}
		a.parkingUsed[cp] += size

		sq := NewSquadron(a.generatedName(ac), ac, cp, size)
		sq.SetNickname(a.nickname(""))
		a.setAutoAssignable(sq, ac)
		return sq
	}
	return nil
}

func (a *SquadronAssigner) generatedName(ac *units.AircraftType) string {
	a.counter++
	return fmt.Sprintf("%d. Squadron (%s)", a.counter, ac.Name)
}

func (a *SquadronAssigner) nickname(configured string) string {
	if configured != "" {
		return configured
	}
	return rand.SampleSlice(a.rng, squadronNicknames)
}

// The squadron primarily covers the task it was raised for, but the
// commander may retask it within the airframe's capabilities.
func (a *SquadronAssigner) setAutoAssignable(sq *Squadron, ac *units.AircraftType) {
	for _, name := range ac.Tasks {
		if t, ok := ato.FlightTypeByName(name); ok {
			sq.SetAutoAssignable(t, true)
		}
	}
}

// baseFor finds the friendly control point with free ramp space that can
// operate the airframe, preferring bases with the most room.
func (a *SquadronAssigner) baseFor(ac *units.AircraftType) *theater.ControlPoint {
	var best *theater.ControlPoint
	bestFree := 0
	for _, cp := range a.theater.ControlPointsFor(a.side) {
		if !cp.CanOperate(ac) {
			continue
		}
		if free := cp.ParkingSlots - a.parkingUsed[cp]; free > bestFree {
			best, bestFree = cp, free
		}
	}
	return best
}
