// main.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package main

// This file contains the implementation of the main() function, which
// loads (or creates) a campaign, advances it the requested number of
// turns, and prints the resulting air tasking orders.

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/goforj/godump"

	"github.com/Starfire13/dcs-retribution/campaign"
	"github.com/Starfire13/dcs-retribution/log"
	"github.com/Starfire13/dcs-retribution/rand"
	"github.com/Starfire13/dcs-retribution/theater"
	"github.com/Starfire13/dcs-retribution/util"
)

var (
	logLevel      = flag.String("loglevel", "info", "logging level: debug, info, warn, error")
	logDir        = flag.String("logdir", "", "log file directory")
	seed          = flag.Int64("seed", 0, "seed for the campaign RNG (0: time-seeded)")
	campaignName  = flag.String("scenario", "black_sea_2008", "name of the campaign scenario to start")
	savePath      = flag.String("campaign", "", "path of the campaign save file to resume and update")
	turns         = flag.Int("turns", 1, "number of turns to advance")
	lintData      = flag.Bool("lint", false, "check the validity of the built-in unit and campaign data")
	listCampaigns = flag.Bool("listscenarios", false, "list all available campaign scenarios")
	dumpAto       = flag.Bool("dump", false, "dump the full ATO structures after the last turn")
)

func main() {
	flag.Parse()

	lg := log.New(*logLevel, *logDir)
	defer lg.CatchAndReportCrash()

	if *listCampaigns {
		for _, name := range campaign.AvailableCampaigns() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if *lintData {
		var e util.ErrorLogger
		campaign.Validate(&e)
		if e.HaveErrors() {
			e.PrintErrors(lg)
			os.Exit(1)
		}
		fmt.Println("no errors found")
		os.Exit(0)
	}

	rng := rand.Make()
	if *seed != 0 {
		rng.Seed(*seed)
	}

	g, err := loadOrStartGame(rng, lg)
	if err != nil {
		lg.Errorf("%v", err)
		os.Exit(1)
	}

	for i := 0; i < *turns; i++ {
		g.AdvanceTurn()
	}
	printAto(g)

	if *dumpAto {
		for _, c := range []*campaign.Coalition{g.Blue, g.Red} {
			godump.Dump(c.Ato)
		}
	}

	if *savePath != "" {
		if err := g.Save(*savePath); err != nil {
			lg.Errorf("%s: %v", *savePath, err)
			os.Exit(1)
		}
		lg.Infof("saved campaign to %s", *savePath)
	}
}

func loadOrStartGame(rng *rand.Rand, lg *log.Logger) (*campaign.Game, error) {
	if *savePath != "" {
		if _, err := os.Stat(*savePath); err == nil {
			return campaign.Load(*savePath, rng, lg)
		}
	}
	start := time.Date(2008, time.August, 8, 0, 0, 0, 0, time.UTC)
	return campaign.NewGame(*campaignName, start, campaign.DefaultSettings(), rng, lg)
}

func printAto(g *campaign.Game) {
	fmt.Printf("%s: turn %d, %s (%s, %s)\n", g.CampaignName, g.Turn,
		g.Conditions.StartTime.Format(time.DateTime), g.TimeOfDay, g.Conditions.Weather)

	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "SIDE\tPACKAGE\tTARGET\tTOT\tFLIGHTS")
	for _, side := range []theater.Side{theater.Blue, theater.Red} {
		c := g.CoalitionFor(side)
		for _, pkg := range c.Ato.Packages {
			flights := ""
			for i, f := range pkg.Flights {
				if i > 0 {
					flights += ", "
				}
				flights += f.String()
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", side, pkg.Description(),
				pkg.Target.Name(), pkg.TimeOverTarget.Format("15:04"), flights)
		}
	}
}
