// math/heading_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package math

import "testing"

func TestHeading(t *testing.T) {
	if h := MakeHeading(370); h.Degrees() != 10 {
		t.Errorf("370 normalized to %v", h)
	}
	if h := MakeHeading(-90); h.Degrees() != 270 {
		t.Errorf("-90 normalized to %v", h)
	}
	if h := MakeHeading(350).Opposite(); h.Degrees() != 170 {
		t.Errorf("opposite of 350: got %v", h)
	}
	if h := MakeHeading(350).Right(); h.Degrees() != 80 {
		t.Errorf("right of 350: got %v", h)
	}
	if h := MakeHeading(45).Left(); h.Degrees() != 315 {
		t.Errorf("left of 45: got %v", h)
	}
	if s := MakeHeading(5).String(); s != "005" {
		t.Errorf("heading string: got %q, want 005", s)
	}
}

func TestHeadingDifference(t *testing.T) {
	for _, tc := range []struct{ a, b, want float64 }{
		{10, 350, 20},
		{350, 10, 20},
		{0, 180, 180},
		{90, 90, 0},
	} {
		if got := HeadingDifference(tc.a, tc.b); got != tc.want {
			t.Errorf("difference(%v, %v): got %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
