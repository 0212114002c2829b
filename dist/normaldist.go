// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mathext"
)

// A NormalDist is a normal (Gaussian) distribution with mean mu and
// standard deviation sigma.
type NormalDist struct {
	mu, sigma float64
}

// StdNormal is the standard normal distribution (mean 0, sdev 1).
var StdNormal = NormalDist{0, 1}

// NewNormalDist returns the normal distribution with the given mean
// and standard deviation. sigma must be positive and finite.
func NewNormalDist(mu, sigma float64) (NormalDist, error) {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		return NormalDist{}, paramError("normal", "mean %v is not finite", mu)
	}
	if !(sigma > 0) || math.IsInf(sigma, 0) {
		return NormalDist{}, paramError("normal", "standard deviation %v is not positive and finite", sigma)
	}
	return NormalDist{mu, sigma}, nil
}

// Mu returns the mean parameter.
func (d NormalDist) Mu() float64 { return d.mu }

// Sigma returns the standard deviation parameter.
func (d NormalDist) Sigma() float64 { return d.sigma }

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// CDF returns Φ((x-µ)/σ), computed via the error function.
func (d NormalDist) CDF(x float64) float64 {
	return (1 + math.Erf((x-d.mu)/(d.sigma*math.Sqrt2))) / 2
}

func (d NormalDist) PDF(x float64) float64 {
	z := x - d.mu
	return math.Exp(-z*z/(2*d.sigma*d.sigma)) * invSqrt2Pi / d.sigma
}

// InvCDF returns the quantile function, µ + σ·Φ⁻¹(p).
func (d NormalDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	switch p {
	case 0:
		return math.Inf(-1)
	case 1:
		return inf
	}
	return d.mu + d.sigma*mathext.NormalQuantile(p)
}

func (d NormalDist) Mean() float64     { return d.mu }
func (d NormalDist) Median() float64   { return d.mu }
func (d NormalDist) Mode() float64     { return d.mu }
func (d NormalDist) StdDev() float64   { return d.sigma }
func (d NormalDist) Variance() float64 { return d.sigma * d.sigma }

func (d NormalDist) Rand(rng *rand.Rand) float64 {
	return d.mu + d.sigma*rng.NormFloat64()
}

// Sum returns the exact distribution of the sum of n draws: a normal
// with mean n·µ and standard deviation √n·σ. rng is unused.
func (d NormalDist) Sum(rng *rand.Rand, n int) RealDist {
	checkSumCount(n)
	if n == 1 {
		return d
	}
	return NormalDist{float64(n) * d.mu, math.Sqrt(float64(n)) * d.sigma}
}

func (d NormalDist) Support() Interval {
	return Interval{math.Inf(-1), inf}
}
