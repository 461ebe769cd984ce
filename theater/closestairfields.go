// theater/closestairfields.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"slices"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/Starfire13/dcs-retribution/math"
)

// ClosestAirfields is the distance-ordered list of operational airfields
// for one objective.
type ClosestAirfields struct {
	Target    MissionTarget
	Airfields []*ControlPoint
}

// OperationalAirfields returns the airfields from which the given side can
// launch fixed-wing aircraft, closest to the objective first.
func (c *ClosestAirfields) OperationalAirfields(side Side) []*ControlPoint {
	var ops []*ControlPoint
	for _, cp := range c.Airfields {
		if cp.Side == side && (cp.RunwayOperational || cp.IsFleet()) {
			ops = append(ops, cp)
		}
	}
	return ops
}

// ObjectiveDistanceCache memoizes distance-sorted airfield lists per
// objective. Sorting every control point for every proposed flight adds
// up during a planning pass, and the theater only changes between turns,
// so entries are kept in an expirable LRU and purged on turn advance.
type ObjectiveDistanceCache struct {
	theater *ConflictTheater
	cache   *expirable.LRU[string, *ClosestAirfields]
}

func NewObjectiveDistanceCache(t *ConflictTheater) *ObjectiveDistanceCache {
	return &ObjectiveDistanceCache{
		theater: t,
		cache:   expirable.NewLRU[string, *ClosestAirfields](128, nil, time.Hour),
	}
}

// ClosestAirfields returns all control points ordered by distance to the
// given objective.
func (c *ObjectiveDistanceCache) ClosestAirfields(target MissionTarget) *ClosestAirfields {
	if cached, ok := c.cache.Get(target.Name()); ok {
		return cached
	}

	sorted := slices.Clone(c.theater.ControlPoints)
	slices.SortFunc(sorted, func(a, b *ControlPoint) int {
		da := math.Distance2(a.Position(), target.Position())
		db := math.Distance2(b.Position(), target.Position())
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})

	ca := &ClosestAirfields{Target: target, Airfields: sorted}
	c.cache.Add(target.Name(), ca)
	return ca
}

// Purge drops all cached orderings; called when the theater changes
// (captures, turn advance).
func (c *ObjectiveDistanceCache) Purge() {
	c.cache.Purge()
}
