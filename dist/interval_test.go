// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestInterval(t *testing.T) {
	iv := Interval{-1, 2}
	for x, want := range map[float64]bool{
		-1.5: false, -1: true, 0: true, 2: true, 2.5: false,
	} {
		if got := iv.Contains(x); got != want {
			t.Errorf("want [-1,2].Contains(%v) = %v, got %v", x, want, got)
		}
	}
	if got := iv.Width(); got != 3 {
		t.Errorf("want width 3, got %v", got)
	}
	if !iv.IsFinite() {
		t.Error("want [-1,2] finite")
	}

	unb := Interval{math.Inf(-1), math.Inf(1)}
	if !unb.Contains(1e300) || unb.IsFinite() {
		t.Error("unbounded interval misbehaves")
	}
	half := Interval{0, math.Inf(1)}
	if half.IsFinite() || !half.Contains(1e300) || half.Contains(-1) {
		t.Error("half-bounded interval misbehaves")
	}
}

func TestIntInterval(t *testing.T) {
	iv := IntInterval{2, 5}
	if !iv.Contains(2) || !iv.Contains(5) || iv.Contains(1) || iv.Contains(6) {
		t.Error("containment wrong")
	}
	if got := iv.Width(); got != 4 {
		t.Errorf("want width 4 (endpoints included), got %v", got)
	}
}
