// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestNormalDist(t *testing.T) {
	d := StdNormal
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		-2: 0.0227501,
		-1: 0.1586553,
		0:  0.5,
		1:  0.8413447,
		2:  0.9772499,
	})
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		0: 0.3989423,
		1: 0.2419707,
		2: 0.0539910,
	})
	if got := d.InvCDF(0.5); !aeq(0, got) {
		t.Errorf("want InvCDF(0.5) = 0, got %v", got)
	}
	testRealDistLaws(t, "StdNormal", d, []float64{-3, -1, -0.2, 0, 0.7, 2, 3}, 1e-6)
	testPDFTotal(t, "StdNormal", d, -8, 8)

	if got := d.Median(); got != 0 {
		t.Errorf("want median 0, got %v", got)
	}
	if got := d.Variance(); got != 1 {
		t.Errorf("want variance 1, got %v", got)
	}
}

func TestNormalDistShifted(t *testing.T) {
	d, err := NewNormalDist(10, 2.5)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.CDF(10); !aeq(0.5, got) {
		t.Errorf("want CDF(mean) = 0.5, got %v", got)
	}
	testRealDistLaws(t, "Normal(10,2.5)", d, []float64{4, 8, 10, 12, 16}, 1e-6)
}

func TestNormalDistValidation(t *testing.T) {
	for _, sigma := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if _, err := NewNormalDist(0, sigma); err == nil {
			t.Errorf("want error for sigma %v", sigma)
		}
	}
	if _, err := NewNormalDist(math.NaN(), 1); err == nil {
		t.Error("want error for NaN mean")
	}
}

func TestNormalDistSum(t *testing.T) {
	rng := testRng()
	d := StdNormal
	if got := d.Sum(rng, 1); got != RealDist(d) {
		t.Errorf("want Sum(1) identity, got %v", got)
	}
	s, ok := d.Sum(rng, 4).(NormalDist)
	if !ok {
		t.Fatalf("want exact normal sum, got %T", d.Sum(rng, 4))
	}
	if s.Mu() != 0 || s.Sigma() != 2 {
		t.Errorf("want Normal(0, 2), got Normal(%v, %v)", s.Mu(), s.Sigma())
	}
	mustPanic(t, "Sum(0)", func() { d.Sum(rng, 0) })
}

func TestNormalDistRand(t *testing.T) {
	d, _ := NewNormalDist(3, 2)
	mean, variance := sampleMoments(testRng(), d.Rand, 200000)
	if !aeqTol(3, mean, 0.05) {
		t.Errorf("want empirical mean ≈ 3, got %v", mean)
	}
	if !aeqTol(4, variance, 0.1) {
		t.Errorf("want empirical variance ≈ 4, got %v", variance)
	}
}
