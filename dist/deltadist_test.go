// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestDeltaDist(t *testing.T) {
	d := NewDeltaDist(3)
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		2.999: 0,
		3:     1,
		3.001: 1,
	})
	if got := d.PDF(3); !math.IsInf(got, 1) {
		t.Errorf("want infinite density at the atom, got %v", got)
	}
	if got := d.PDF(2); got != 0 {
		t.Errorf("want zero density off the atom, got %v", got)
	}
	for _, p := range []float64{0, 0.5, 1} {
		if got := d.InvCDF(p); got != 3 {
			t.Errorf("want InvCDF(%v) = 3, got %v", p, got)
		}
	}
	mustPanic(t, "InvCDF(2)", func() { d.InvCDF(2) })

	if d.Mean() != 3 || d.Median() != 3 || d.Mode() != 3 {
		t.Error("want all location measures = 3")
	}
	if d.StdDev() != 0 || d.Variance() != 0 {
		t.Error("want zero spread")
	}
	if got := d.Support(); got != (Interval{3, 3}) {
		t.Errorf("want degenerate support, got %+v", got)
	}

	rng := testRng()
	for i := 0; i < 10; i++ {
		if got := d.Rand(rng); got != 3 {
			t.Fatalf("want constant draw 3, got %v", got)
		}
	}
}

func TestDeltaDistSum(t *testing.T) {
	d := NewDeltaDist(1.5)
	if got := d.Sum(nil, 1); got != RealDist(d) {
		t.Error("want Sum(1) identity")
	}
	s, ok := d.Sum(nil, 4).(DeltaDist)
	if !ok {
		t.Fatalf("want DeltaDist, got %T", d.Sum(nil, 4))
	}
	if got := s.Mean(); got != 6 {
		t.Errorf("want point mass at 6, got %v", got)
	}
	mustPanic(t, "Sum(0)", func() { d.Sum(nil, 0) })
}
