// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A UniformDist is a continuous uniform distribution over the closed
// interval [lo, hi].
type UniformDist struct {
	lo, hi float64
}

// NewUniformDist returns the uniform distribution over [lo, hi]. The
// interval must be finite with lo < hi.
func NewUniformDist(lo, hi float64) (UniformDist, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return UniformDist{}, paramError("uniform", "interval [%v, %v] is not finite", lo, hi)
	}
	if lo >= hi {
		return UniformDist{}, paramError("uniform", "interval [%v, %v] is empty", lo, hi)
	}
	return UniformDist{lo, hi}, nil
}

func (d UniformDist) CDF(x float64) float64 {
	switch {
	case x < d.lo:
		return 0
	case x >= d.hi:
		return 1
	}
	return (x - d.lo) / (d.hi - d.lo)
}

func (d UniformDist) PDF(x float64) float64 {
	if x < d.lo || x > d.hi {
		return 0
	}
	return 1 / (d.hi - d.lo)
}

func (d UniformDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	return d.lo + p*(d.hi-d.lo)
}

func (d UniformDist) Mean() float64   { return (d.lo + d.hi) / 2 }
func (d UniformDist) Median() float64 { return (d.lo + d.hi) / 2 }

// Mode returns NaN: every point of the support is equally likely, so
// the distribution has no unique mode.
func (d UniformDist) Mode() float64 { return nan }

func (d UniformDist) StdDev() float64 { return (d.hi - d.lo) / (2 * math.Sqrt(3)) }

func (d UniformDist) Variance() float64 {
	w := d.hi - d.lo
	return w * w / 12
}

func (d UniformDist) Rand(rng *rand.Rand) float64 {
	return d.lo + (d.hi-d.lo)*rng.Float64()
}

func (d UniformDist) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

func (d UniformDist) Support() Interval {
	return Interval{d.lo, d.hi}
}
