// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math/rand"

// A DeltaDist is a Dirac delta distribution: all probability mass sits
// at the single point t. Its CDF is the Heaviside step function with
// CDF(t) == 1.
//
// DeltaDist is mostly useful as a degenerate fixture: it is the
// distribution of a constant.
type DeltaDist struct {
	t float64
}

// NewDeltaDist returns the point-mass distribution at t.
func NewDeltaDist(t float64) DeltaDist {
	return DeltaDist{t}
}

func (d DeltaDist) CDF(x float64) float64 {
	if x >= d.t {
		return 1
	}
	return 0
}

func (d DeltaDist) PDF(x float64) float64 {
	if x == d.t {
		return inf
	}
	return 0
}

func (d DeltaDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	return d.t
}

func (d DeltaDist) Mean() float64     { return d.t }
func (d DeltaDist) Median() float64   { return d.t }
func (d DeltaDist) Mode() float64     { return d.t }
func (d DeltaDist) StdDev() float64   { return 0 }
func (d DeltaDist) Variance() float64 { return 0 }

func (d DeltaDist) Rand(rng *rand.Rand) float64 { return d.t }

// Sum returns the exact point mass at n·t. rng is unused.
func (d DeltaDist) Sum(rng *rand.Rand, n int) RealDist {
	checkSumCount(n)
	if n == 1 {
		return d
	}
	return DeltaDist{float64(n) * d.t}
}

func (d DeltaDist) Support() Interval {
	return Interval{d.t, d.t}
}
