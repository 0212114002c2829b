// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A RealDist is a univariate continuous probability distribution.
//
// Implementations are immutable values: all parameters are validated
// when the distribution is constructed and every method is
// side-effect-free (a distribution with a lazily tabulated CDF builds
// its table at most once and only ever reads it afterward).
//
// Stochastic methods take an explicit random source; the package never
// touches global random state, so callers control reproducibility by
// seeding.
type RealDist interface {
	// CDF returns the cumulative probability P(X <= x).
	CDF(x float64) float64

	// PDF returns the probability density at x.
	PDF(x float64) float64

	// InvCDF returns the quantile function at p, the x such that
	// CDF(x) = p. It panics unless p is in [0, 1].
	InvCDF(p float64) float64

	// Mean returns the expectation of the distribution.
	Mean() float64

	// Median returns InvCDF(0.5), possibly by a closed form.
	Median() float64

	// Mode returns the unique mode, or NaN if the distribution is
	// not unimodal.
	Mode() float64

	// StdDev returns the standard deviation.
	StdDev() float64

	// Variance returns the square of the standard deviation.
	Variance() float64

	// Rand returns one random variate drawn from the distribution
	// using rng as the source of uniform randomness.
	Rand(rng *rand.Rand) float64

	// Sum returns the distribution of the sum of n independent
	// draws from this distribution. Sum(rng, 1) is the identity.
	// rng drives the Monte Carlo construction used for small n by
	// families without an exact convolution; exact paths ignore
	// it. Sum panics if n < 1.
	Sum(rng *rand.Rand, n int) RealDist

	// Support returns the interval outside which PDF is zero.
	Support() Interval
}

// An IntDist is a univariate discrete probability distribution over
// the integers. The same immutability and explicit-randomness rules as
// RealDist apply.
type IntDist interface {
	// PMF returns the probability mass P(X = k).
	PMF(k int) float64

	// CDF returns the cumulative probability P(X <= k).
	CDF(k int) float64

	// CDFInterval returns P(iv.Lo <= X <= iv.Hi), that is
	// CDF(iv.Hi) - CDF(iv.Lo - 1). Unlike the continuous
	// IntervalCDF, both endpoints are included.
	CDFInterval(iv IntInterval) float64

	// Mean returns the expectation of the distribution.
	Mean() float64

	// StdDev returns the standard deviation.
	StdDev() float64

	// Variance returns the square of the standard deviation.
	Variance() float64

	// Rand returns one random variate drawn from the
	// distribution.
	Rand(rng *rand.Rand) int

	// RandN returns n random variates drawn from the
	// distribution.
	RandN(rng *rand.Rand, n int) []int

	// Support returns the integer interval outside which PMF is
	// zero.
	Support() IntInterval
}

// IntervalCDF returns the probability mass on the half-open interval
// (iv.Lo, iv.Hi], that is CDF(iv.Hi) - CDF(iv.Lo). For a continuous
// distribution the distinction from the closed interval only matters
// at atoms (see DeltaDist).
func IntervalCDF(d RealDist, iv Interval) float64 {
	return d.CDF(iv.Hi) - d.CDF(iv.Lo)
}

// intIntervalCDF implements the shared inclusive-inclusive discrete
// range convention.
func intIntervalCDF(d IntDist, iv IntInterval) float64 {
	return d.CDF(iv.Hi) - d.CDF(iv.Lo-1)
}

// InvCDFNumeric inverts d's CDF numerically at p. It is the default
// quantile implementation for distributions without a closed-form
// inverse.
//
// The target is first bracketed by walking outward from the mean in
// steps of one standard deviation (necessary when the support is
// unbounded), clamping to the support boundaries, and then the root of
// CDF(x) - p is polished with Brent's method. InvCDFNumeric panics if
// p is outside [0, 1] or, wrapping ErrNoConverge, if the root finder
// fails.
func InvCDFNumeric(d RealDist, p float64) float64 {
	checkQuantile(p)
	sup := d.Support()
	if p == 0 {
		return sup.Lo
	}
	if p == 1 {
		return sup.Hi
	}

	step := d.StdDev()
	if math.IsNaN(step) || math.IsInf(step, 0) || step <= 0 {
		step = 1
	}
	lo, hi := d.Mean(), d.Mean()
	for d.CDF(lo) > p {
		lo -= step
		if lo <= sup.Lo {
			lo = sup.Lo
			break
		}
	}
	for d.CDF(hi) < p {
		hi += step
		if hi >= sup.Hi {
			hi = sup.Hi
			break
		}
	}
	x, err := Brent{}.Solve(func(x float64) float64 {
		return d.CDF(x) - p
	}, lo, hi, (lo+hi)/2)
	if err != nil {
		panic(err)
	}
	return x
}

// RandTransform draws one variate from d by the transformation method:
// the quantile function applied to a uniform variate. It is always
// correct, but requires d's InvCDF.
func RandTransform(d RealDist, rng *rand.Rand) float64 {
	return d.InvCDF(rng.Float64())
}

// checkSumCount validates the count argument of Sum implementations.
func checkSumCount(n int) {
	if n < 1 {
		panic("sum of fewer than 1 variable")
	}
}
