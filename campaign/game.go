// campaign/game.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package campaign

import (
	"fmt"
	"time"

	"github.com/Starfire13/dcs-retribution/airwing"
	"github.com/Starfire13/dcs-retribution/commander"
	"github.com/Starfire13/dcs-retribution/log"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/units"
	"github.com/Starfire13/dcs-retribution/util"
	"github.com/Starfire13/dcs-retribution/weather"
)

// Game is the campaign aggregate: the theater, both coalitions, and the
// turn clock.
type Game struct {
	CampaignName string
	// Resource name of the scenario the game was built from.
	Scenario  string
	Theater   *theater.ConflictTheater
	Blue, Red *Coalition
	Settings  Settings

	Turn       int
	Date       time.Time
	TimeOfDay  weather.TimeOfDay
	Conditions weather.Conditions

	lg        *log.Logger
	rng       *rand.Rand
	distances *theater.ObjectiveDistanceCache
}

// NewGame assembles a game from a named campaign scenario: factions are
// loaded concurrently, the theater is built and validated, and both air
// wings are stood up by the squadron assigner.
func NewGame(campaignName string, start time.Time, settings Settings, rng *rand.Rand, lg *log.Logger) (*Game, error) {
	cf, err := LoadCampaignFile(campaignName)
	if err != nil {
		return nil, err
	}
	blueFaction, redFaction, err := cf.LoadFactions()
	if err != nil {
		return nil, err
	}
	blueFaction.ApplyModSettings(settings.EnabledMods, lg)
	redFaction.ApplyModSettings(settings.EnabledMods, lg)

	var e util.ErrorLogger
	t := cf.BuildTheater(&e)
	blueFaction.Validate(&e)
	redFaction.Validate(&e)
	configs := map[theater.Side][]airwing.SquadronConfig{
		theater.Blue: cf.SquadronConfigs(theater.Blue, t, &e),
		theater.Red:  cf.SquadronConfigs(theater.Red, t, &e),
	}
	if e.HaveErrors() {
		return nil, fmt.Errorf("%s: %s", campaignName, e.String())
	}

	g := &Game{
		CampaignName: cf.Name,
		Scenario:     campaignName,
		Theater:      t,
		Blue:         NewCoalition(theater.Blue, blueFaction),
		Red:          NewCoalition(theater.Red, redFaction),
		Settings:     settings,
		Date:         start,
		TimeOfDay:    weather.Dawn,
		lg:           lg,
		rng:          rng,
		distances:    theater.NewObjectiveDistanceCache(t),
	}
	PairCoalitions(g.Blue, g.Red)

	for _, c := range []*Coalition{g.Blue, g.Red} {
		assigner := airwing.NewSquadronAssigner(c.Faction, t, c.Side, configs[c.Side], rng, lg)
		if err := assigner.Assign(c.AirWing); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Faction.Name, err)
		}
	}

	g.Conditions = weather.Generate(g.Date, g.TimeOfDay, weather.DefaultDaytimeMap,
		weather.DefaultSeasonalConditions, settings.NightMissions, rng)
	return g, nil
}

func (g *Game) CoalitionFor(side theater.Side) *Coalition {
	if side == theater.Red {
		return g.Red
	}
	return g.Blue
}

// DistanceCache exposes the per-turn airfield distance cache.
func (g *Game) DistanceCache() *theater.ObjectiveDistanceCache {
	return g.distances
}

// AdvanceTurn moves the clock forward one turn, regenerates conditions,
// and replans both sides' ATOs. Planning failures inside the commanders
// skip the affected objective and never abort the turn.
func (g *Game) AdvanceTurn() {
	g.Turn++
	g.TimeOfDay = g.TimeOfDay.Next()
	if g.TimeOfDay == weather.Dawn {
		g.Date = g.Date.AddDate(0, 0, 1)
	}
	g.Conditions = weather.Generate(g.Date, g.TimeOfDay, weather.DefaultDaytimeMap,
		weather.DefaultSeasonalConditions, g.Settings.NightMissions, g.rng)
	g.distances.Purge()

	g.lg.Infof("turn %d: %s %s, %s", g.Turn, g.Conditions.StartTime.Format(time.DateTime),
		g.TimeOfDay, g.Conditions.Weather)

	for _, c := range []*Coalition{g.Blue, g.Red} {
		c.Ato.Clear()
		c.AirWing.ResetForTurn()
		if g.Settings.AutoAto {
			g.planSide(c)
		}
	}
}

func (g *Game) planSide(c *Coalition) {
	ctx := &commander.Context{
		Side:          c.Side,
		Theater:       g.Theater,
		Doctrine:      c.Faction.GetDoctrine(),
		EnemyDoctrine: c.Opponent().Faction.GetDoctrine(),
		Settings:      g.Settings.PlannerSettingsFor(c.Side),
		Now:           g.Conditions.StartTime,
		Rand:          g.rng,
		Distances:     g.distances,
		Lg:            g.lg,
	}
	cmdr := commander.NewTheaterCommander(ctx, c.AirWing, &c.Ato)
	cmdr.PlanMissions()
	for _, order := range cmdr.PurchaseOrders() {
		g.lg.Infof("%s procurement: %s", c.Side, order)
	}
}

// Validate runs the database and scenario checks the -lint flag asks for.
func Validate(e *util.ErrorLogger) {
	units.DB.Check(e)
	for _, name := range AvailableCampaigns() {
		cf, err := LoadCampaignFile(name)
		if err != nil {
			e.Error(err)
			continue
		}
		t := cf.BuildTheater(e)
		cf.SquadronConfigs(theater.Blue, t, e)
		cf.SquadronConfigs(theater.Red, t, e)
	}
}
