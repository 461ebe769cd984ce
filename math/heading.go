// math/heading.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	"fmt"
	gomath "math"
)

// Heading is a compass heading in degrees, normalized to [0, 360).
type Heading float64

func MakeHeading(d float64) Heading {
	return Heading(NormalizeHeading(d))
}

func (h Heading) Degrees() float64 { return float64(h) }

// Opposite returns the reciprocal heading.
func (h Heading) Opposite() Heading {
	return MakeHeading(float64(h) + 180)
}

// Right returns the heading 90 degrees clockwise of h.
func (h Heading) Right() Heading {
	return MakeHeading(float64(h) + 90)
}

// Left returns the heading 90 degrees counterclockwise of h.
func (h Heading) Left() Heading {
	return MakeHeading(float64(h) - 90)
}

func (h Heading) String() string {
	return fmt.Sprintf("%03.0f", float64(h))
}

// NormalizeHeading returns the heading in [0, 360).
func NormalizeHeading(h float64) float64 {
	h = gomath.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func OppositeHeading(h float64) float64 {
	return NormalizeHeading(h + 180)
}

// HeadingDifference returns the minimum angular distance between the two
// headings; the result is always in [0, 180].
func HeadingDifference(a, b float64) float64 {
	d := Abs(NormalizeHeading(a) - NormalizeHeading(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}
