// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// An ExpDist is an exponential distribution with rate lambda:
//
//	PDF(x) = λ e^(-λx)   for x >= 0
//	CDF(x) = 1 - e^(-λx) for x >= 0
type ExpDist struct {
	lambda float64
}

// NewExpDist returns the exponential distribution with rate lambda.
// lambda must be positive and finite.
func NewExpDist(lambda float64) (ExpDist, error) {
	if !(lambda > 0) || math.IsInf(lambda, 0) {
		return ExpDist{}, paramError("exponential", "rate %v is not positive and finite", lambda)
	}
	return ExpDist{lambda}, nil
}

// Lambda returns the rate parameter.
func (d ExpDist) Lambda() float64 { return d.lambda }

func (d ExpDist) CDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return 1 - math.Exp(-d.lambda*x)
}

func (d ExpDist) PDF(x float64) float64 {
	if x < 0 {
		return 0
	}
	return d.lambda * math.Exp(-d.lambda*x)
}

// InvCDF returns -ln(1-p)/λ.
func (d ExpDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	return -math.Log1p(-p) / d.lambda
}

func (d ExpDist) Mean() float64     { return 1 / d.lambda }
func (d ExpDist) Median() float64   { return math.Ln2 / d.lambda }
func (d ExpDist) Mode() float64     { return 0 }
func (d ExpDist) StdDev() float64   { return 1 / d.lambda }
func (d ExpDist) Variance() float64 { return 1 / (d.lambda * d.lambda) }

func (d ExpDist) Rand(rng *rand.Rand) float64 {
	return rng.ExpFloat64() / d.lambda
}

func (d ExpDist) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

func (d ExpDist) Support() Interval {
	return Interval{0, inf}
}
