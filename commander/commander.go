// commander/commander.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package commander

import (
	"github.com/Starfire13/dcs-retribution/airwing"
	"github.com/Starfire13/dcs-retribution/ato"
)

// TheaterCommander plans one coalition's air war for a turn. It owns
// nothing: the air wing and ATO belong to the coalition, the theater to
// the game; the commander only decides.
type TheaterCommander struct {
	ctx          *Context
	wing         *airwing.AirWing
	taskingOrder *ato.AirTaskingOrder
	fulfiller    *PackageFulfiller
}

func NewTheaterCommander(ctx *Context, wing *airwing.AirWing, taskingOrder *ato.AirTaskingOrder) *TheaterCommander {
	return &TheaterCommander{
		ctx:          ctx,
		wing:         wing,
		taskingOrder: taskingOrder,
		fulfiller:    NewPackageFulfiller(ctx, wing),
	}
}

// PlanMissions runs the full planning pass: support first, then air
// defense, then the offensive tasks, each consuming objectives from a
// working clone of the theater state. Returns the state for inspection.
func (c *TheaterCommander) PlanMissions() *TheaterState {
	state := BuildTheaterState(c.ctx).Clone()
	base := &packagePlanner{ctx: c.ctx, fulfiller: c.fulfiller, taskingOrder: c.taskingOrder}

	planners := []missionPlanner{
		planAewc{base},
		planRefueling{base},
		planBarcap{base},
		planCas{base},
		planDeadSead{base},
		planAntiShip{base},
		planOcaStrike{base},
		planStrike{base},
		planBai{base},
		planRecovery{base},
	}
	for _, p := range planners {
		c.ctx.Lg.Debugf("%s: planning %s", c.ctx.Side, p.Name())
		p.Plan(state)
	}
	return state
}

// PurchaseOrders returns the aircraft the commander failed to source
// this turn, for the campaign procurement pass.
func (c *TheaterCommander) PurchaseOrders() []ProcurementRequest {
	return c.fulfiller.PurchaseOrders
}
