// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A TriangleDist is a triangular distribution over [lo, hi] with mode
// c. Its PDF is piecewise linear, rising from lo to a peak of
// 2/(hi-lo) at c and falling back to zero at hi.
type TriangleDist struct {
	lo, hi, c float64
}

// NewTriangleDist returns the triangular distribution over [lo, hi]
// with mode c. The interval must be finite with lo < hi and c must lie
// within it.
func NewTriangleDist(lo, hi, c float64) (TriangleDist, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return TriangleDist{}, paramError("triangle", "interval [%v, %v] is not finite", lo, hi)
	}
	if lo >= hi {
		return TriangleDist{}, paramError("triangle", "interval [%v, %v] is empty", lo, hi)
	}
	if !(lo <= c && c <= hi) {
		return TriangleDist{}, paramError("triangle", "mode %v outside interval [%v, %v]", c, lo, hi)
	}
	return TriangleDist{lo, hi, c}, nil
}

// CDF is piecewise quadratic, split at the mode.
func (d TriangleDist) CDF(x float64) float64 {
	switch {
	case x <= d.lo:
		return 0
	case x >= d.hi:
		return 1
	case x <= d.c:
		return (x - d.lo) * (x - d.lo) / ((d.hi - d.lo) * (d.c - d.lo))
	}
	return 1 - (d.hi-x)*(d.hi-x)/((d.hi-d.lo)*(d.hi-d.c))
}

// PDF is piecewise linear, peaking at 2/(hi-lo) at the mode.
func (d TriangleDist) PDF(x float64) float64 {
	switch {
	case x < d.lo || x > d.hi:
		return 0
	case x == d.c:
		return 2 / (d.hi - d.lo)
	case x < d.c:
		return 2 * (x - d.lo) / ((d.hi - d.lo) * (d.c - d.lo))
	}
	return 2 * (d.hi - x) / ((d.hi - d.lo) * (d.hi - d.c))
}

// InvCDF is closed-form, split at the mode fraction (c-lo)/(hi-lo).
func (d TriangleDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	if p <= (d.c-d.lo)/(d.hi-d.lo) {
		return d.lo + math.Sqrt(p*(d.hi-d.lo)*(d.c-d.lo))
	}
	return d.hi - math.Sqrt((1-p)*(d.hi-d.lo)*(d.hi-d.c))
}

func (d TriangleDist) Mean() float64 {
	return (d.lo + d.hi + d.c) / 3
}

// Median has two cases depending on whether the mode lies left or
// right of the interval midpoint.
func (d TriangleDist) Median() float64 {
	if d.c >= (d.lo+d.hi)/2 {
		return d.lo + math.Sqrt((d.hi-d.lo)*(d.c-d.lo)/2)
	}
	return d.hi - math.Sqrt((d.hi-d.lo)*(d.hi-d.c)/2)
}

func (d TriangleDist) Mode() float64 { return d.c }

func (d TriangleDist) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d TriangleDist) Variance() float64 {
	a, b, c := d.lo, d.hi, d.c
	return (a*a + b*b + c*c - a*b - a*c - b*c) / 18
}

func (d TriangleDist) Rand(rng *rand.Rand) float64 {
	return RandTransform(d, rng)
}

func (d TriangleDist) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

func (d TriangleDist) Support() Interval {
	return Interval{d.lo, d.hi}
}
