// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A LaplaceDist is a Laplace (double exponential) distribution with
// location mu and scale b:
//
//	PDF(x) = e^(-|x-µ|/b) / 2b
//	CDF(x) = ½ e^((x-µ)/b)      for x < µ
//	         1 - ½ e^(-(x-µ)/b) for x >= µ
type LaplaceDist struct {
	mu, b float64
}

// NewLaplaceDist returns the Laplace distribution with location mu and
// native scale b. b must be positive and finite.
func NewLaplaceDist(mu, b float64) (LaplaceDist, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return LaplaceDist{}, paramError("laplace", "location %v is not finite", mu)
	}
	if !(b > 0) || math.IsInf(b, 0) {
		return LaplaceDist{}, paramError("laplace", "scale %v is not positive and finite", b)
	}
	return LaplaceDist{mu, b}, nil
}

// NewLaplaceDistFromStdDev returns the Laplace distribution with
// location mu and the scale b = sdev/√2 that yields the given standard
// deviation.
func NewLaplaceDistFromStdDev(mu, sdev float64) (LaplaceDist, error) {
	if !(sdev > 0) || math.IsInf(sdev, 0) {
		return LaplaceDist{}, paramError("laplace", "standard deviation %v is not positive and finite", sdev)
	}
	return NewLaplaceDist(mu, sdev/math.Sqrt2)
}

// Mu returns the location parameter.
func (d LaplaceDist) Mu() float64 { return d.mu }

// B returns the native scale parameter.
func (d LaplaceDist) B() float64 { return d.b }

func (d LaplaceDist) CDF(x float64) float64 {
	if x < d.mu {
		return 0.5 * math.Exp((x-d.mu)/d.b)
	}
	return 1 - 0.5*math.Exp(-(x-d.mu)/d.b)
}

func (d LaplaceDist) PDF(x float64) float64 {
	return math.Exp(-math.Abs(x-d.mu)/d.b) / (2 * d.b)
}

func (d LaplaceDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	switch {
	case p == 0:
		return math.Inf(-1)
	case p == 1:
		return inf
	case p < 0.5:
		return d.mu + d.b*math.Log(2*p)
	default:
		return d.mu - d.b*math.Log(2-2*p)
	}
}

func (d LaplaceDist) Mean() float64     { return d.mu }
func (d LaplaceDist) Median() float64   { return d.mu }
func (d LaplaceDist) Mode() float64     { return d.mu }
func (d LaplaceDist) StdDev() float64   { return math.Sqrt2 * d.b }
func (d LaplaceDist) Variance() float64 { return 2 * d.b * d.b }

// Rand draws by inverting the CDF on a uniform variate centered at
// zero, splitting on its sign.
func (d LaplaceDist) Rand(rng *rand.Rand) float64 {
	u := rng.Float64() - 0.5
	if u < 0 {
		return d.mu + d.b*math.Log1p(2*u)
	}
	return d.mu - d.b*math.Log1p(-2*u)
}

// Sum returns the exact distribution of the sum of n draws, using the
// series-expansion density of the n-fold Laplace convolution rather
// than the generic Monte Carlo or CLT path. rng is unused.
func (d LaplaceDist) Sum(rng *rand.Rand, n int) RealDist {
	checkSumCount(n)
	if n == 1 {
		return d
	}
	ls, err := NewLaplaceSumDist(d.mu, d.b, n, NumCDF{})
	if err != nil {
		panic(err)
	}
	return ls
}

func (d LaplaceDist) Support() Interval {
	return Interval{math.Inf(-1), inf}
}
