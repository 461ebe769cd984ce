// units/db.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package units

import (
	"fmt"

	"github.com/Starfire13/dcs-retribution/util"
)

// The unit-type database replaces the sim's unit catalogue with a
// self-owned one: everything the planner needs to know about an airframe
// or a ground unit lives in resources/units.json.

var DB *StaticDatabase

type StaticDatabase struct {
	Aircraft    map[string]*AircraftType
	GroundUnits map[string]*GroundUnitType

	// Radar classification. TELARs are self-contained launcher/radar
	// vehicles; track radars guide missiles for separate launchers; the
	// pairs table records which trackers each launcher depends on.
	TELARs               map[string]bool
	TrackRadars          map[string]bool
	LauncherTrackerPairs map[string][]string
	UnitsWithRadar       map[string]bool
}

// GroupTask classifies what role a ground group serves in the enemy IADS.
type GroupTask string

const (
	LORAD     GroupTask = "LORAD" // long-range air defense (e.g. SA-5, S-300)
	MERAD     GroupTask = "MERAD" // medium-range air defense (e.g. SA-6, Hawk)
	SHORAD    GroupTask = "SHORAD"
	AAA       GroupTask = "AAA"
	EWR       GroupTask = "EWR"
	Navy      GroupTask = "Navy"
	Vehicle   GroupTask = "Vehicle"
	Logistics GroupTask = "Logistics"
	Building  GroupTask = "Building"
)

type AircraftType struct {
	Name           string   `json:"name"`
	CruiseSpeedKts float64  `json:"cruise_speed"`
	CruiseAltFt    float64  `json:"cruise_altitude"`
	CombatRangeNM  float64  `json:"combat_range"`
	Helicopter     bool     `json:"helicopter"`
	Carrier        bool     `json:"carrier_capable"`
	Price          int      `json:"price"`
	Tasks          []string `json:"tasks"`
	Mod            string   `json:"mod,omitempty"`
}

func (a *AircraftType) String() string { return a.Name }

func (a *AircraftType) CapableOf(task string) bool {
	for _, t := range a.Tasks {
		if t == task {
			return true
		}
	}
	return false
}

type GroundUnitType struct {
	Name             string    `json:"name"`
	Task             GroupTask `json:"task"`
	DetectionRangeNM float64   `json:"detection_range"`
	ThreatRangeNM    float64   `json:"threat_range"`
	Price            int       `json:"price"`
	Mod              string    `json:"mod,omitempty"`
}

func (g *GroundUnitType) String() string { return g.Name }

// HasRadar reports whether the unit emits; detection-range-only units
// (most vehicles) do not.
func (g *GroundUnitType) HasRadar() bool {
	return DB.UnitsWithRadar[g.Name]
}

type unitsFile struct {
	Aircraft             []*AircraftType     `json:"aircraft"`
	GroundUnits          []*GroundUnitType   `json:"ground_units"`
	TELARs               []string            `json:"telars"`
	TrackRadars          []string            `json:"track_radars"`
	LauncherTrackerPairs map[string][]string `json:"launcher_tracker_pairs"`
	UnitsWithRadar       []string            `json:"units_with_radar"`
}

func init() {
	db, err := loadStaticDatabase()
	if err != nil {
		panic(err)
	}
	DB = db
}

func loadStaticDatabase() (*StaticDatabase, error) {
	r := util.LoadResource("units.json")
	defer r.Close()

	var uf unitsFile
	if err := util.UnmarshalJSON(r, &uf); err != nil {
		return nil, fmt.Errorf("units.json: %w", err)
	}

	db := &StaticDatabase{
		Aircraft:             make(map[string]*AircraftType),
		GroundUnits:          make(map[string]*GroundUnitType),
		TELARs:               make(map[string]bool),
		TrackRadars:          make(map[string]bool),
		LauncherTrackerPairs: uf.LauncherTrackerPairs,
		UnitsWithRadar:       make(map[string]bool),
	}
	for _, ac := range uf.Aircraft {
		db.Aircraft[ac.Name] = ac
	}
	for _, gu := range uf.GroundUnits {
		db.GroundUnits[gu.Name] = gu
	}
	for _, name := range uf.TELARs {
		db.TELARs[name] = true
	}
	for _, name := range uf.TrackRadars {
		db.TrackRadars[name] = true
	}
	for _, name := range uf.UnitsWithRadar {
		db.UnitsWithRadar[name] = true
	}
	if db.LauncherTrackerPairs == nil {
		db.LauncherTrackerPairs = make(map[string][]string)
	}
	return db, nil
}

// AircraftByName returns the aircraft type with the given name.
func AircraftByName(name string) (*AircraftType, bool) {
	ac, ok := DB.Aircraft[name]
	return ac, ok
}

// GroundUnitByName returns the ground unit type with the given name.
func GroundUnitByName(name string) (*GroundUnitType, bool) {
	gu, ok := DB.GroundUnits[name]
	return gu, ok
}

// Check validates the database's internal consistency. It is run by the
// -lint CLI flag and by tests. Maps are walked in sorted key order so
// lint output is stable run to run.
func (db *StaticDatabase) Check(e *util.ErrorLogger) {
	e.Push("units database")
	defer e.Pop()

	for _, name := range util.SortedMapKeys(db.Aircraft) {
		e.Push(name)
		ac := db.Aircraft[name]
		if ac.CruiseSpeedKts <= 0 {
			e.ErrorString("cruise speed %v must be positive", ac.CruiseSpeedKts)
		}
		if ac.CombatRangeNM <= 0 {
			e.ErrorString("combat range %v must be positive", ac.CombatRangeNM)
		}
		if len(ac.Tasks) == 0 {
			e.ErrorString("no tasks defined")
		}
		e.Pop()
	}

	for _, name := range util.SortedMapKeys(db.GroundUnits) {
		e.Push(name)
		gu := db.GroundUnits[name]
		if gu.ThreatRangeNM > 0 && gu.DetectionRangeNM < gu.ThreatRangeNM {
			e.ErrorString("detection range %v less than threat range %v",
				gu.DetectionRangeNM, gu.ThreatRangeNM)
		}
		e.Pop()
	}

	checkKnown := func(table string, name string) {
		if _, ok := db.GroundUnits[name]; !ok {
			e.ErrorString("%s: unknown ground unit %q", table, name)
		}
	}
	for _, name := range util.SortedMapKeys(db.TELARs) {
		checkKnown("telars", name)
	}
	for _, name := range util.SortedMapKeys(db.TrackRadars) {
		checkKnown("track_radars", name)
	}
	for _, launcher := range util.SortedMapKeys(db.LauncherTrackerPairs) {
		checkKnown("launcher_tracker_pairs", launcher)
		for _, tracker := range db.LauncherTrackerPairs[launcher] {
			checkKnown("launcher_tracker_pairs", tracker)
			if !db.TrackRadars[tracker] {
				e.ErrorString("launcher_tracker_pairs: %q tracker %q is not a track radar",
					launcher, tracker)
			}
		}
	}
	for _, name := range util.SortedMapKeys(db.UnitsWithRadar) {
		checkKnown("units_with_radar", name)
	}
}
