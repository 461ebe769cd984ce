// math/geom.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import (
	gomath "math"

	"golang.org/x/exp/constraints"
)

// Theater positions are in DCS map coordinates: flat-earth meters, with a
// per-theater projection handled by the campaign data. All geometry here is
// therefore plain planar math.

// Point2 is a 2D point/vector in theater coordinates (meters).
type Point2 [2]float64

func (p Point2) X() float64 { return p[0] }
func (p Point2) Y() float64 { return p[1] }

// a+b
func Add2(a, b Point2) Point2 {
	return Point2{a[0] + b[0], a[1] + b[1]}
}

// a-b
func Sub2(a, b Point2) Point2 {
	return Point2{a[0] - b[0], a[1] - b[1]}
}

// a*s
func Scale2(a Point2, s float64) Point2 {
	return Point2{s * a[0], s * a[1]}
}

// midpoint of a and b
func Mid2(a, b Point2) Point2 {
	return Scale2(Add2(a, b), 0.5)
}

// Linearly interpolate x of the way between a and b. x==0 corresponds to
// a, x==1 corresponds to b, etc.
func Lerp2(x float64, a, b Point2) Point2 {
	return Point2{(1-x)*a[0] + x*b[0], (1-x)*a[1] + x*b[1]}
}

// Length of v
func Length2(v Point2) float64 {
	return gomath.Hypot(v[0], v[1])
}

// Distance between two points
func Distance2(a, b Point2) float64 {
	return Length2(Sub2(a, b))
}

func Normalize2(a Point2) Point2 {
	if l := Length2(a); l != 0 {
		return Scale2(a, 1/l)
	}
	return a
}

// PointFromHeading returns the point at the given distance (meters) from p
// along the given compass heading.
func PointFromHeading(p Point2, h Heading, dist float64) Point2 {
	r := Radians(float64(h))
	return Point2{p[0] + dist*gomath.Sin(r), p[1] + dist*gomath.Cos(r)}
}

// HeadingBetween returns the compass heading from p to q.
func HeadingBetween(p, q Point2) Heading {
	v := Sub2(q, p)
	return Heading(NormalizeHeading(Degrees(gomath.Atan2(v[0], v[1]))))
}

func Degrees(r float64) float64 {
	return r * 180 / gomath.Pi
}

func Radians(d float64) float64 {
	return d / 180 * gomath.Pi
}

func Abs[V constraints.Integer | constraints.Float](x V) V {
	if x < 0 {
		return -x
	}
	return x
}

func Sqr[V constraints.Integer | constraints.Float](v V) V { return v * v }

func Clamp[T constraints.Ordered](x T, low T, high T) T {
	if x < low {
		return low
	} else if x > high {
		return high
	}
	return x
}

func Lerp(x, a, b float64) float64 {
	return (1-x)*a + x*b
}
