// campaign/coalition.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package campaign

import (
	"github.com/Starfire13/dcs-retribution/airwing"
	"github.com/Starfire13/dcs-retribution/ato"
	"github.com/Starfire13/dcs-retribution/faction"
	"github.com/Starfire13/dcs-retribution/theater"
)

// Coalition is one side of the war: its faction catalog, its squadrons,
// and the ATO its commander fills each turn.
type Coalition struct {
	Side    theater.Side
	Faction *faction.Faction
	AirWing *airwing.AirWing
	Ato     ato.AirTaskingOrder

	opponent *Coalition
}

func NewCoalition(side theater.Side, f *faction.Faction) *Coalition {
	return &Coalition{Side: side, Faction: f, AirWing: &airwing.AirWing{}}
}

func (c *Coalition) Opponent() *Coalition { return c.opponent }

// PairCoalitions links two coalitions as opponents.
func PairCoalitions(a, b *Coalition) {
	a.opponent = b
	b.opponent = a
}
