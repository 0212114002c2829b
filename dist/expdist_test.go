// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestExpDist(t *testing.T) {
	d, err := NewExpDist(1)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.Mean(); got != 1 {
		t.Errorf("want mean 1, got %v", got)
	}
	if got := d.Median(); !aeq(math.Ln2, got) {
		t.Errorf("want median ln 2, got %v", got)
	}
	if got := d.Mode(); got != 0 {
		t.Errorf("want mode 0, got %v", got)
	}
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		-1: 0,
		0:  0,
		1:  1 - 1/math.E,
		2:  0.8646647,
	})
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-0.5: 0,
		0:    1,
		1:    1 / math.E,
	})
	testRealDistLaws(t, "Exp(1)", d, []float64{0.01, 0.5, 1, 2, 5}, 1e-6)
	testPDFTotal(t, "Exp(1)", d, 0, 25)
}

func TestExpDistRate(t *testing.T) {
	d, _ := NewExpDist(4)
	if got := d.Mean(); got != 0.25 {
		t.Errorf("want mean 1/4, got %v", got)
	}
	if got := d.StdDev(); got != 0.25 {
		t.Errorf("want sdev 1/4, got %v", got)
	}
	if got := d.Variance(); got != 0.0625 {
		t.Errorf("want variance 1/16, got %v", got)
	}
	if got := d.InvCDF(0.5); !aeq(math.Ln2/4, got) {
		t.Errorf("want quantile ln2/4, got %v", got)
	}
}

func TestExpDistValidation(t *testing.T) {
	for _, lambda := range []float64{0, -2, math.Inf(1), math.NaN()} {
		if _, err := NewExpDist(lambda); err == nil {
			t.Errorf("want error for rate %v", lambda)
		}
	}
}

func TestExpDistRand(t *testing.T) {
	d, _ := NewExpDist(2)
	mean, variance := sampleMoments(testRng(), d.Rand, 200000)
	if !aeqTol(0.5, mean, 0.01) {
		t.Errorf("want empirical mean ≈ 0.5, got %v", mean)
	}
	if !aeqTol(0.25, variance, 0.02) {
		t.Errorf("want empirical variance ≈ 0.25, got %v", variance)
	}
}
