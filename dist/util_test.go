// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/integrate"
)

func aeq(expect, got float64) bool {
	return math.Abs(expect-got) < 0.00001
}

func aeqTol(expect, got, tol float64) bool {
	return math.Abs(expect-got) < tol
}

func testFunc(t *testing.T, name string, f func(float64) float64, cases map[float64]float64) {
	t.Helper()
	for x, want := range cases {
		if got := f(x); !aeq(want, got) {
			t.Errorf("want %s(%v) = %v, got %v", name, x, want, got)
		}
	}
}

// testRealDistLaws checks the laws every continuous distribution must
// satisfy: a non-decreasing CDF with the right limits at the support
// boundaries, and the quantile round trip InvCDF(CDF(x)) = x at the
// interior points xs.
func testRealDistLaws(t *testing.T, name string, d RealDist, xs []float64, tol float64) {
	t.Helper()

	sup := d.Support()
	if got := d.CDF(sup.Lo); !aeq(0, got) {
		t.Errorf("%s: want CDF(%v) = 0, got %v", name, sup.Lo, got)
	}
	if got := d.CDF(sup.Hi); !aeq(1, got) {
		t.Errorf("%s: want CDF(%v) = 1, got %v", name, sup.Hi, got)
	}

	prev := math.Inf(-1)
	for _, x := range xs {
		f := d.CDF(x)
		if f < prev {
			t.Errorf("%s: CDF not monotone: CDF(%v) = %v < %v", name, x, f, prev)
		}
		prev = f

		if got := d.InvCDF(f); !aeqTol(x, got, tol) {
			t.Errorf("%s: want InvCDF(CDF(%v)) = %v, got %v", name, x, x, got)
		}
	}
}

// testPDFTotal checks that the PDF integrates to 1 over [lo, hi] using
// composite Simpson quadrature on a fine grid.
func testPDFTotal(t *testing.T, name string, d RealDist, lo, hi float64) {
	t.Helper()
	const n = 4001
	xs := make([]float64, n)
	fs := make([]float64, n)
	for i := range xs {
		xs[i] = lo + (hi-lo)*float64(i)/(n-1)
		fs[i] = d.PDF(xs[i])
	}
	if got := integrate.Simpsons(xs, fs); !aeqTol(1, got, 1e-4) {
		t.Errorf("%s: want ∫pdf = 1 over [%v, %v], got %v", name, lo, hi, got)
	}
}

// sampleMoments draws n variates and returns their empirical mean and
// variance.
func sampleMoments(rng *rand.Rand, draw func(*rand.Rand) float64, n int) (mean, variance float64) {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = draw(rng)
	}
	s := Sample{Xs: xs}
	return s.Mean(), s.Variance()
}

func testRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("want %s to panic", name)
		}
	}()
	f()
}
