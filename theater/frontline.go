// theater/frontline.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package theater

import (
	"github.com/Starfire13/dcs-retribution/math"
)

// FrontLine is the line of contact between two adjacent control points
// held by opposing sides. Its position slides along the segment between
// the control points as ground forces advance.
type FrontLine struct {
	Blue *ControlPoint
	Red  *ControlPoint

	// Fraction of the way from the blue control point to the red one,
	// in [0, 1].
	Control float64
}

func (f *FrontLine) Name() string {
	return "Front line " + f.Blue.Name() + "/" + f.Red.Name()
}

func (f *FrontLine) Position() math.Point2 {
	return math.Lerp2(f.Control, f.Blue.Position(), f.Red.Position())
}

// Active reports whether the front line still exists: both endpoints must
// be held by opposing sides.
func (f *FrontLine) Active() bool {
	return f.Blue.Side != f.Red.Side && f.Blue.Side != Neutral && f.Red.Side != Neutral
}

// ControlPointFor returns the friendly endpoint for the given side.
func (f *FrontLine) ControlPointFor(side Side) *ControlPoint {
	if f.Blue.Side == side {
		return f.Blue
	}
	return f.Red
}
