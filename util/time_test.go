// util/time_test.go
// Copyright(c) 2024-2026 dcs-retribution contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"testing"
	"time"
)

func hour(h int) time.Time {
	return time.Date(2008, time.August, 8, h, 0, 0, 0, time.UTC)
}

func TestTimeInterval(t *testing.T) {
	ti := TimeInterval{hour(9), hour(11)}
	if !ti.Start().Equal(hour(9)) || !ti.End().Equal(hour(11)) {
		t.Errorf("start/end: got %v-%v", ti.Start(), ti.End())
	}
	if ti.Duration() != 2*time.Hour {
		t.Errorf("duration: got %v, want 2h", ti.Duration())
	}
	if !ti.Contains(hour(10)) || !ti.Contains(hour(9)) || !ti.Contains(hour(11)) {
		t.Errorf("interval does not contain its own span")
	}
	if ti.Contains(hour(12)) {
		t.Errorf("interval contains a time past its end")
	}
}

func TestIntersectIntervals(t *testing.T) {
	a := []TimeInterval{{hour(8), hour(10)}, {hour(12), hour(14)}}
	b := []TimeInterval{{hour(9), hour(13)}}

	got := IntersectIntervals(a, b)
	want := []TimeInterval{{hour(9), hour(10)}, {hour(12), hour(13)}}
	if len(got) != len(want) {
		t.Fatalf("got %d intervals, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Start().Equal(want[i].Start()) || !got[i].End().Equal(want[i].End()) {
			t.Errorf("interval %d: got %v-%v, want %v-%v",
				i, got[i].Start(), got[i].End(), want[i].Start(), want[i].End())
		}
	}

	// Touching endpoints are not an overlap.
	if got := IntersectIntervals(
		[]TimeInterval{{hour(8), hour(9)}},
		[]TimeInterval{{hour(9), hour(10)}}); len(got) != 0 {
		t.Errorf("touching intervals intersect: %v", got)
	}

	if got := IntersectIntervals(nil, b); got != nil {
		t.Errorf("empty set intersects: %v", got)
	}
}
