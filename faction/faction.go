// faction/faction.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package faction holds the static catalog of unit types available to one
// side of the campaign. Factions are loaded from JSON resources and are
// immutable after load, except for mod-setting-driven filtering.
package faction

import (
	"fmt"
	"slices"

	"github.com/Starfire13/dcs-retribution/log"
	"github.com/Starfire13/dcs-retribution/units"
	"github.com/Starfire13/dcs-retribution/util"
)

type Faction struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	Authors     string `json:"authors"`
	Description string `json:"description"`

	// Unit names; resolved against the units database on validation.
	Aircraft        []string `json:"aircrafts"`
	AWACS           []string `json:"awacs"`
	Tankers         []string `json:"tankers"`
	FrontlineUnits  []string `json:"frontline_units"`
	ArtilleryUnits  []string `json:"artillery_units"`
	LogisticsUnits  []string `json:"logistics_units"`
	InfantryUnits   []string `json:"infantry_units"`
	AirDefenseUnits []string `json:"air_defense_units"`
	NavalUnits      []string `json:"naval_units"`

	Carriers map[string][]string `json:"carriers"`

	HasJTAC            bool              `json:"has_jtac"`
	JTACUnit           string            `json:"jtac_unit"`
	Doctrine           string            `json:"doctrine"`
	UnrestrictedSatnav bool              `json:"unrestricted_satnav"`
	Requirements       map[string]string `json:"requirements"`
}

// Load reads the named faction from the embedded faction resources.
func Load(name string) (*Faction, error) {
	path := "factions/" + name + ".json"
	if !util.ResourceExists(path) {
		return nil, fmt.Errorf("%s: unknown faction", name)
	}
	r := util.LoadResource(path)
	defer r.Close()

	var f Faction
	if err := util.UnmarshalJSON(r, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &f, nil
}

// Available returns the names of all defined factions.
func Available() []string {
	var names []string
	for _, fn := range util.ListResources("factions") {
		names = append(names, fn[:len(fn)-len(".json")])
	}
	return names
}

// Validate checks all unit references against the units database.
func (f *Faction) Validate(e *util.ErrorLogger) {
	e.Push("faction " + f.Name)
	defer e.Pop()

	checkAircraft := func(field string, names []string) {
		for _, n := range names {
			if _, ok := units.AircraftByName(n); !ok {
				e.ErrorString("%s: unknown aircraft %q", field, n)
			}
		}
	}
	checkAircraft("aircrafts", f.Aircraft)
	checkAircraft("awacs", f.AWACS)
	checkAircraft("tankers", f.Tankers)

	checkGround := func(field string, names []string) {
		for _, n := range names {
			if _, ok := units.GroundUnitByName(n); !ok {
				e.ErrorString("%s: unknown ground unit %q", field, n)
			}
		}
	}
	checkGround("frontline_units", f.FrontlineUnits)
	checkGround("artillery_units", f.ArtilleryUnits)
	checkGround("logistics_units", f.LogisticsUnits)
	checkGround("infantry_units", f.InfantryUnits)
	checkGround("air_defense_units", f.AirDefenseUnits)
	checkGround("naval_units", f.NavalUnits)

	for carrier := range f.Carriers {
		if _, ok := units.GroundUnitByName(carrier); !ok {
			e.ErrorString("carriers: unknown ship %q", carrier)
		}
	}
	if f.JTACUnit != "" {
		checkAircraft("jtac_unit", []string{f.JTACUnit})
	}
}

// AllAircraft returns the resolved aircraft types of the faction,
// including AWACS and tankers.
func (f *Faction) AllAircraft() []*units.AircraftType {
	var all []*units.AircraftType
	seen := make(map[string]bool)
	for _, name := range slices.Concat(f.Aircraft, f.AWACS, f.Tankers) {
		if seen[name] {
			continue
		}
		seen[name] = true
		if ac, ok := units.AircraftByName(name); ok {
			all = append(all, ac)
		}
	}
	return all
}

// AircraftForTask returns the faction's aircraft capable of the given
// task, cheapest first.
func (f *Faction) AircraftForTask(task string) []*units.AircraftType {
	capable := util.FilterSlice(f.AllAircraft(),
		func(ac *units.AircraftType) bool { return ac.CapableOf(task) })
	slices.SortFunc(capable, func(a, b *units.AircraftType) int { return a.Price - b.Price })
	return capable
}

// HasAircraft reports whether the faction operates the given airframe.
func (f *Faction) HasAircraft(ac *units.AircraftType) bool {
	return slices.Contains(f.Aircraft, ac.Name) ||
		slices.Contains(f.AWACS, ac.Name) ||
		slices.Contains(f.Tankers, ac.Name)
}

// RemoveAircraft removes the named airframe from the faction's rosters.
func (f *Faction) RemoveAircraft(name string) {
	f.Aircraft = util.RemoveSliceElementByValue(f.Aircraft, name)
	f.AWACS = util.RemoveSliceElementByValue(f.AWACS, name)
	f.Tankers = util.RemoveSliceElementByValue(f.Tankers, name)
}

// ApplyModSettings filters out units whose required mod is not enabled.
// enabledMods maps mod names to whether the player has them turned on.
func (f *Faction) ApplyModSettings(enabledMods map[string]bool, lg *log.Logger) {
	keep := func(name string) bool {
		ac, ok := units.AircraftByName(name)
		if !ok {
			return true // reported by Validate, not our problem here
		}
		if ac.Mod == "" || enabledMods[ac.Mod] {
			return true
		}
		lg.Infof("%s: removing %s, mod %q not enabled", f.Name, name, ac.Mod)
		return false
	}
	f.Aircraft = util.FilterSlice(f.Aircraft, keep)
	f.AWACS = util.FilterSlice(f.AWACS, keep)
	f.Tankers = util.FilterSlice(f.Tankers, keep)
}
