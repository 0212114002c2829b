// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestLaplaceDist(t *testing.T) {
	d, err := NewLaplaceDist(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	testFunc(t, "CDF", d.CDF, map[float64]float64{
		-2: 0.5 * math.Exp(-2),
		-1: 0.5 / math.E,
		0:  0.5,
		1:  1 - 0.5/math.E,
		2:  1 - 0.5*math.Exp(-2),
	})
	testFunc(t, "PDF", d.PDF, map[float64]float64{
		-1: 0.5 / math.E,
		0:  0.5,
		1:  0.5 / math.E,
	})
	if got := d.StdDev(); !aeq(math.Sqrt2, got) {
		t.Errorf("want sdev √2, got %v", got)
	}
	testRealDistLaws(t, "Laplace(0,1)", d, []float64{-4, -1, -0.1, 0, 0.1, 1, 4}, 1e-6)
	testPDFTotal(t, "Laplace(0,1)", d, -20, 20)
}

func TestLaplaceDistFromStdDev(t *testing.T) {
	d, err := NewLaplaceDistFromStdDev(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if got := d.StdDev(); !aeq(3, got) {
		t.Errorf("want sdev 3, got %v", got)
	}
	if got := d.B(); !aeq(3/math.Sqrt2, got) {
		t.Errorf("want scale 3/√2, got %v", got)
	}
	if got := d.Median(); got != 2 {
		t.Errorf("want median 2, got %v", got)
	}
}

func TestLaplaceDistValidation(t *testing.T) {
	for _, b := range []float64{0, -1, math.Inf(1), math.NaN()} {
		if _, err := NewLaplaceDist(0, b); err == nil {
			t.Errorf("want error for scale %v", b)
		}
		if _, err := NewLaplaceDistFromStdDev(0, b); err == nil {
			t.Errorf("want error for sdev %v", b)
		}
	}
}

func TestLaplaceDistRand(t *testing.T) {
	d, _ := NewLaplaceDist(1, 2)
	mean, variance := sampleMoments(testRng(), d.Rand, 200000)
	if !aeqTol(1, mean, 0.03) {
		t.Errorf("want empirical mean ≈ 1, got %v", mean)
	}
	if !aeqTol(8, variance, 0.3) {
		t.Errorf("want empirical variance ≈ 8, got %v", variance)
	}
}
