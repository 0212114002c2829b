// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mathext"
)

// A BinomialDist is the distribution of the number of successes in n
// independent Bernoulli trials, each succeeding with probability p.
//
// With n=1 this is the Bernoulli distribution.
type BinomialDist struct {
	n int
	p float64
}

// NewBinomialDist returns the binomial distribution for n trials with
// success probability p. n must be non-negative and p must lie in
// [0, 1].
func NewBinomialDist(n int, p float64) (BinomialDist, error) {
	if n < 0 {
		return BinomialDist{}, paramError("binomial", "trial count %d is negative", n)
	}
	if !(0 <= p && p <= 1) {
		return BinomialDist{}, paramError("binomial", "success probability %v outside [0, 1]", p)
	}
	return BinomialDist{n, p}, nil
}

// N returns the trial count.
func (d BinomialDist) N() int { return d.n }

// P returns the per-trial success probability.
func (d BinomialDist) P() float64 { return d.p }

// PMF returns the probability of exactly k successes.
//
// The mass is computed in log space, exp(ln C(n,k) + k ln p +
// (n-k) ln(1-p)) with the binomial coefficient via log-gamma, so it
// does not overflow for large n the way a direct factorial formula
// would.
func (d BinomialDist) PMF(k int) float64 {
	if k < 0 || k > d.n {
		return 0
	}
	switch d.p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == d.n {
			return 1
		}
		return 0
	}
	lchoose := lgamma(float64(d.n)+1) - lgamma(float64(k)+1) - lgamma(float64(d.n-k)+1)
	return math.Exp(lchoose + float64(k)*math.Log(d.p) + float64(d.n-k)*math.Log1p(-d.p))
}

// CDF returns the probability of k or fewer successes, computed via
// the regularized incomplete beta function:
//
//	P(X <= k) = I_{1-p}(n-k, k+1)
func (d BinomialDist) CDF(k int) float64 {
	if k < 0 {
		return 0
	}
	if k >= d.n {
		return 1
	}
	return mathext.RegIncBeta(float64(d.n-k), float64(k)+1, 1-d.p)
}

// CDFInterval returns the probability that the success count lies in
// iv, both endpoints included.
func (d BinomialDist) CDFInterval(iv IntInterval) float64 {
	return intIntervalCDF(d, iv)
}

func (d BinomialDist) Mean() float64 { return float64(d.n) * d.p }

func (d BinomialDist) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (d BinomialDist) Variance() float64 {
	return float64(d.n) * d.p * (1 - d.p)
}

// Rand returns a success count drawn by running the n Bernoulli
// trials directly.
func (d BinomialDist) Rand(rng *rand.Rand) int {
	k := 0
	for i := 0; i < d.n; i++ {
		if rng.Float64() < d.p {
			k++
		}
	}
	return k
}

// RandN returns n success counts drawn from the distribution.
func (d BinomialDist) RandN(rng *rand.Rand, n int) []int {
	ks := make([]int, n)
	for i := range ks {
		ks[i] = d.Rand(rng)
	}
	return ks
}

func (d BinomialDist) Support() IntInterval {
	return IntInterval{0, d.n}
}

// NormalApprox returns the normal approximation of d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation: b.PMF(k) maps to
// n.CDF(k+0.5) - n.CDF(k-0.5) and b.CDF(k) to n.CDF(k+0.5).
func (d BinomialDist) NormalApprox() NormalDist {
	return NormalDist{d.Mean(), math.Sqrt(d.Variance())}
}

// Test returns the two-sided rejection probability (the exact p-value)
// of observing actual successes under d: the total mass of all
// outcomes no more probable than the observation.
func (d BinomialDist) Test(actual int) float64 {
	// Relative slack absorbs floating-point noise when masses are
	// exactly tied with the observed one.
	cutoff := d.PMF(actual) * (1 + 1e-7)
	pv := 0.0
	for k := 0; k <= d.n; k++ {
		if m := d.PMF(k); m <= cutoff {
			pv += m
		}
	}
	return math.Min(pv, 1)
}

func lgamma(x float64) float64 {
	v, _ := math.Lgamma(x)
	return v
}
