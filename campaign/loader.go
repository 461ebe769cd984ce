// campaign/loader.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

// Package campaign assembles and runs the war: theater and factions are
// loaded from embedded resources, coalitions get air wings and ATOs, and
// each turn both commanders plan against the updated state.
package campaign

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Starfire13/dcs-retribution/airwing"
	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/math"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
	"github.com/Starfire13/dcs-retribution/util"
)

// CampaignFile is the on-disk description of a scenario: the map state
// at turn zero plus which factions fight over it.
type CampaignFile struct {
	Name        string `json:"name"`
	Theater     string `json:"theater"`
	BlueFaction string `json:"blue_faction"`
	RedFaction  string `json:"red_faction"`

	ControlPoints []campaignControlPoint `json:"control_points"`
	GroundObjects []campaignGroundObject `json:"ground_objects"`
	FrontLines    []campaignFrontLine    `json:"front_lines"`

	Squadrons struct {
		Blue []campaignSquadron `json:"blue"`
		Red  []campaignSquadron `json:"red"`
	} `json:"squadrons"`
}

type campaignControlPoint struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	X                 float64 `json:"x"`
	Y                 float64 `json:"y"`
	Side              string  `json:"side"`
	Type              string  `json:"type"`
	RunwayOperational bool    `json:"runway_operational"`
	ParkingSlots      int     `json:"parking_slots"`
	ParkedAircraft    int     `json:"parked_aircraft"`
}

type campaignGroundObject struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"` // iads, navy, building, vehicle_group
	Task         string   `json:"task,omitempty"`
	Category     string   `json:"category,omitempty"`
	ControlPoint int      `json:"control_point"`
	X            float64  `json:"x"`
	Y            float64  `json:"y"`
	Units        []string `json:"units"`
}

type campaignFrontLine struct {
	Blue    int     `json:"blue"`
	Red     int     `json:"red"`
	Control float64 `json:"control"`
}

type campaignSquadron struct {
	Name         string   `json:"name,omitempty"`
	Nickname     string   `json:"nickname,omitempty"`
	ControlPoint int      `json:"control_point"`
	Task         string   `json:"task"`
	Aircraft     []string `json:"aircraft,omitempty"`
	Size         int      `json:"size,omitempty"`
}

// AvailableCampaigns lists the campaign scenarios shipped in resources.
func AvailableCampaigns() []string {
	var names []string
	for _, fn := range util.ListResources("campaigns") {
		names = append(names, fn[:len(fn)-len(".json")])
	}
	return names
}

// LoadCampaignFile reads the named scenario from embedded resources.
func LoadCampaignFile(name string) (*CampaignFile, error) {
	path := "campaigns/" + name + ".json"
	if !util.ResourceExists(path) {
		return nil, fmt.Errorf("%s: unknown campaign", name)
	}
	r := util.LoadResource(path)
	defer r.Close()

	var cf CampaignFile
	if err := util.UnmarshalJSON(r, &cf); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cf, nil
}

// LoadFactions fetches both coalition catalogs concurrently.
func (cf *CampaignFile) LoadFactions() (blue, red *faction.Faction, err error) {
	var g errgroup.Group
	g.Go(func() error {
		var err error
		blue, err = faction.Load(cf.BlueFaction)
		return err
	})
	g.Go(func() error {
		var err error
		red, err = faction.Load(cf.RedFaction)
		return err
	})
	err = g.Wait()
	return
}

// BuildTheater turns the scenario description into a live theater,
// reporting reference problems through the error logger.
func (cf *CampaignFile) BuildTheater(e *util.ErrorLogger) *theater.ConflictTheater {
	e.Push("campaign " + cf.Name)
	defer e.Pop()

	t := &theater.ConflictTheater{TheaterName: cf.Theater}

	byID := make(map[int]*theater.ControlPoint)
	for _, ccp := range cf.ControlPoints {
		e.Push(ccp.Name)
		cp := &theater.ControlPoint{
			ID:                ccp.ID,
			Name_:             ccp.Name,
			Pos:               math.Point2{ccp.X, ccp.Y},
			Side:              parseSide(ccp.Side, e),
			Type:              parseControlPointType(ccp.Type, e),
			RunwayOperational: ccp.RunwayOperational,
			ParkingSlots:      ccp.ParkingSlots,
			ParkedAircraft:    ccp.ParkedAircraft,
		}
		if _, dup := byID[cp.ID]; dup {
			e.ErrorString("duplicate control point id %d", cp.ID)
		}
		byID[cp.ID] = cp
		t.ControlPoints = append(t.ControlPoints, cp)
		e.Pop()
	}

	for _, cgo := range cf.GroundObjects {
		e.Push(cgo.Name)
		cp, ok := byID[cgo.ControlPoint]
		if !ok {
			e.ErrorString("unknown control point id %d", cgo.ControlPoint)
			e.Pop()
			continue
		}
		base := theater.GroundObjectBase{
			ObjName: cgo.Name,
			Pos:     math.Point2{cgo.X, cgo.Y},
			CP:      cp,
			Group:   resolveGroup(cgo.Units, e),
		}
		switch cgo.Type {
		case "iads":
			t.GroundObjects = append(t.GroundObjects, &theater.IadsGroundObject{
				GroundObjectBase: base,
				GroupTask:        units.GroupTask(cgo.Task),
			})
		case "navy":
			t.GroundObjects = append(t.GroundObjects, &theater.NavalGroundObject{GroundObjectBase: base})
		case "building":
			t.GroundObjects = append(t.GroundObjects, &theater.BuildingGroundObject{
				GroundObjectBase: base,
				Category:         cgo.Category,
			})
		case "vehicle_group":
			t.GroundObjects = append(t.GroundObjects, &theater.VehicleGroupGroundObject{GroundObjectBase: base})
		default:
			e.ErrorString("unknown ground object type %q", cgo.Type)
		}
		e.Pop()
	}

	for _, cfl := range cf.FrontLines {
		blue, bok := byID[cfl.Blue]
		red, rok := byID[cfl.Red]
		if !bok || !rok {
			e.ErrorString("front line references unknown control points %d/%d", cfl.Blue, cfl.Red)
			continue
		}
		t.FrontLines = append(t.FrontLines, &theater.FrontLine{
			Blue:    blue,
			Red:     red,
			Control: cfl.Control,
		})
	}

	return t
}

// SquadronConfigs resolves one side's configured squadrons against the
// built theater. Entries referencing unknown control points or tasks are
// reported and dropped; the assigner falls back to generated squadrons
// for the tasks they would have covered.
func (cf *CampaignFile) SquadronConfigs(side theater.Side, t *theater.ConflictTheater,
	e *util.ErrorLogger) []airwing.SquadronConfig {
	e.Push("campaign " + cf.Name + " squadrons")
	defer e.Pop()

	entries := cf.Squadrons.Blue
	if side == theater.Red {
		entries = cf.Squadrons.Red
	}

	byID := make(map[int]*theater.ControlPoint)
	for _, cp := range t.ControlPoints {
		byID[cp.ID] = cp
	}

	var configs []airwing.SquadronConfig
	for _, cs := range entries {
		cp, ok := byID[cs.ControlPoint]
		if !ok {
			e.ErrorString("squadron %q references unknown control point id %d", cs.Name, cs.ControlPoint)
			continue
		}
		task, ok := ato.FlightTypeByName(cs.Task)
		if !ok {
			e.ErrorString("squadron %q has unknown task %q", cs.Name, cs.Task)
			continue
		}
		configs = append(configs, airwing.SquadronConfig{
			Name:              cs.Name,
			Nickname:          cs.Nickname,
			ControlPoint:      cp,
			PrimaryTask:       task,
			PreferredAircraft: cs.Aircraft,
			Size:              cs.Size,
		})
	}
	return configs
}

func resolveGroup(names []string, e *util.ErrorLogger) []theater.GroundUnit {
	var group []theater.GroundUnit
	for _, name := range names {
		gu, ok := units.GroundUnitByName(name)
		if !ok {
			e.ErrorString("unknown ground unit %q", name)
			continue
		}
		group = append(group, theater.GroundUnit{Type: gu, Alive: true})
	}
	return group
}

func parseSide(s string, e *util.ErrorLogger) theater.Side {
	switch s {
	case "blue":
		return theater.Blue
	case "red":
		return theater.Red
	case "neutral":
		return theater.Neutral
	default:
		e.ErrorString("unknown side %q", s)
		return theater.Neutral
	}
}

func parseControlPointType(s string, e *util.ErrorLogger) theater.ControlPointType {
	switch s {
	case "airbase":
		return theater.Airbase
	case "carrier":
		return theater.Carrier
	case "lha":
		return theater.Lha
	case "fob":
		return theater.Fob
	case "off_map":
		return theater.OffMapSpawn
	default:
		e.ErrorString("unknown control point type %q", s)
		return theater.Airbase
	}
}
