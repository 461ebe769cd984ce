// campaign/save.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package campaign

import (
	"fmt"
	"time"

	"github.com/Starfire13/dcs-retribution/log"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
	"github.com/Starfire13/dcs-retribution/weather"
)

// Bump whenever the save layout changes; old saves are rejected with an
// error rather than misread.
const saveVersion = 4

// savedGame is the serializable snapshot of a campaign. The live object
// graph is full of interfaces and cross-links, so saves record the
// campaign name plus everything that has diverged from the scenario
// file; Load replays the snapshot onto a freshly built game.
type savedGame struct {
	Version  int
	Campaign string
	Scenario string

	Turn      int
	Date      time.Time
	TimeOfDay int

	Settings Settings

	ControlPoints []savedControlPoint
	GroundUnits   map[string][]bool // object name -> per-unit alive flags
	FrontLines    []float64         // control fraction, scenario order
	Squadrons     map[string]int    // "side/squadron name" -> owned airframes
}

type savedControlPoint struct {
	ID                int
	Side              int
	RunwayOperational bool
	ParkedAircraft    int
}

// Save writes the campaign snapshot to path.
func (g *Game) Save(path string) error {
	sg := savedGame{
		Version:     saveVersion,
		Campaign:    g.CampaignName,
		Scenario:    g.Scenario,
		Turn:        g.Turn,
		Date:        g.Date,
		TimeOfDay:   int(g.TimeOfDay),
		Settings:    g.Settings,
		GroundUnits: make(map[string][]bool),
		Squadrons:   make(map[string]int),
	}
	for _, c := range []*Coalition{g.Blue, g.Red} {
		for _, sq := range c.AirWing.Squadrons {
			sg.Squadrons[squadronKey(c.Side, sq.Name())] = sq.Owned()
		}
	}
	for _, cp := range g.Theater.ControlPoints {
		sg.ControlPoints = append(sg.ControlPoints, savedControlPoint{
			ID:                cp.ID,
			Side:              int(cp.Side),
			RunwayOperational: cp.RunwayOperational,
			ParkedAircraft:    cp.ParkedAircraft,
		})
	}
	for _, obj := range g.Theater.GroundObjects {
		var alive []bool
		for _, u := range obj.Units() {
			alive = append(alive, u.Alive)
		}
		sg.GroundUnits[obj.Name()] = alive
	}
	for _, fl := range g.Theater.FrontLines {
		sg.FrontLines = append(sg.FrontLines, fl.Control)
	}
	return util.StoreObject(path, sg)
}

// Load reads a snapshot, rebuilds the scenario it came from, and replays
// the snapshot's divergences onto it.
func Load(path string, rng *rand.Rand, lg *log.Logger) (*Game, error) {
	var sg savedGame
	if err := util.RetrieveObject(path, &sg); err != nil {
		return nil, err
	}
	if sg.Version != saveVersion {
		return nil, fmt.Errorf("%s: save version %d, want %d; cannot load",
			path, sg.Version, saveVersion)
	}

	g, err := NewGame(sg.Scenario, sg.Date, sg.Settings, rng, lg)
	if err != nil {
		return nil, err
	}
	g.Turn = sg.Turn
	g.Date = sg.Date
	g.TimeOfDay = weather.TimeOfDay(sg.TimeOfDay)

	return g, g.applySnapshot(&sg)
}

func (g *Game) applySnapshot(sg *savedGame) error {
	byID := make(map[int]int)
	for i, cp := range g.Theater.ControlPoints {
		byID[cp.ID] = i
	}
	for _, scp := range sg.ControlPoints {
		i, ok := byID[scp.ID]
		if !ok {
			return fmt.Errorf("save references unknown control point id %d", scp.ID)
		}
		cp := g.Theater.ControlPoints[i]
		cp.Side = theater.Side(scp.Side)
		cp.RunwayOperational = scp.RunwayOperational
		cp.ParkedAircraft = scp.ParkedAircraft
	}
	for _, obj := range g.Theater.GroundObjects {
		alive, ok := sg.GroundUnits[obj.Name()]
		if !ok {
			continue
		}
		group := obj.Units()
		if len(alive) != len(group) {
			return fmt.Errorf("%s: save has %d units, scenario has %d",
				obj.Name(), len(alive), len(group))
		}
		for i := range group {
			group[i].Alive = alive[i]
		}
	}
	if len(sg.FrontLines) != len(g.Theater.FrontLines) {
		return fmt.Errorf("save has %d front lines, scenario has %d",
			len(sg.FrontLines), len(g.Theater.FrontLines))
	}
	for i, control := range sg.FrontLines {
		g.Theater.FrontLines[i].Control = control
	}
	for _, c := range []*Coalition{g.Blue, g.Red} {
		for _, sq := range c.AirWing.Squadrons {
			saved, ok := sg.Squadrons[squadronKey(c.Side, sq.Name())]
			if !ok {
				continue
			}
			// The rebuilt wing starts at scenario strength; walk it to the
			// saved count.
			if diff := sq.Owned() - saved; diff > 0 {
				sq.AbsorbLosses(diff)
			} else if diff < 0 {
				sq.ReceiveDeliveries(-diff)
			}
		}
	}
	g.distances.Purge()
	return nil
}

func squadronKey(side theater.Side, name string) string {
	return side.String() + "/" + name
}
