// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// QuantileCIResult is the confidence interval for a quantile of a
// sample, expressed in order statistics.
type QuantileCIResult struct {
	// Quantile is the quantile of this confidence interval. This
	// is simply a copy of the argument to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the actual confidence level of this interval.
	// This will be >= the requested confidence.
	Confidence float64

	// LoOrder and HiOrder are the order statistics that bound the
	// confidence interval. By convention, these are 1-based, so
	// given an ordered sample Xs, the CI is Xs[LoOrder-1] to
	// Xs[HiOrder-1].
	//
	// These may be outside the range of the sample, which
	// indicates that the corresponding bound is negative or
	// positive infinity. This can happen, for example, if the
	// sample is too small for a high confidence level, or the
	// quantile is close to 0 or 1.
	LoOrder, HiOrder int

	// Ambiguous indicates that the given confidence interval is
	// ambiguous. In this case, the interval LoOrder+1 to
	// HiOrder+1 has equivalent confidence.
	Ambiguous bool
}

// FromSample returns the confidence interval of q in terms of values
// from the sample. It may return negative or positive infinity if the
// interval lies outside the sample.
func (q QuantileCIResult) FromSample(s Sample) (lo, hi float64) {
	if len(s.Xs) != q.N {
		panic(fmt.Sprintf("sample size %d differs from computed quantile CI size %d", len(s.Xs), q.N))
	}
	s = s.Sort()

	if q.LoOrder < 1 {
		// The sample is too small or the confidence too high.
		lo = math.Inf(-1)
	} else {
		lo = s.Xs[q.LoOrder-1]
	}
	if q.HiOrder-1 >= len(s.Xs) {
		hi = inf
	} else {
		hi = s.Xs[q.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which a normal
// approximation is used. This is a variable for testing.
//
// Performance-wise, these cross over at about n=5, but the
// approximation isn't very good at low n.
var quantileCIApproxThreshold = 30

// QuantileCI returns the bounds of the confidence interval of the
// q'th quantile in a sample of size n.
//
// The sampling distribution of an order statistic is binomial: the
// number of observations below the population quantile counts
// Bernoulli trials with success probability q. Below
// quantileCIApproxThreshold the binomial masses are accumulated
// exactly outward from the mode; above it, the continuity-corrected
// normal approximation is used.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	checkQuantile(q)

	var res QuantileCIResult
	res.N = n
	res.Quantile = q

	if confidence >= 1 {
		res.Confidence = 1
		res.LoOrder = 0
		res.HiOrder = n + 1
		return res
	}

	// PMF(k) of the sampling distribution gives the probability
	// that the population quantile falls in interval k, that is,
	// between order statistics k and k+1.
	samp := BinomialDist{n, q}

	// l and r are the left and right order statistics of the
	// confidence interval.
	var l, r int
	if samp.n <= quantileCIApproxThreshold {
		// Start with the mode and accumulate probabilities in
		// decreasing order until we pass the confidence
		// level. This uses the fact that the probabilities
		// decrease monotonically as you move out from the
		// mode.
		//
		// The binomial distribution can have equal modes.
		// Since we want to left-bias our result, we start
		// with the lower of the two.
		x := int(math.Ceil(float64(samp.n+1)*samp.p) - 1)
		if samp.p == 0 { // Special case of the mode
			x = 0
		}
		accum := samp.PMF(x)

		// Compute the neighboring probabilities so we can
		// incrementally add and update them. [l, r) is the
		// interval we've summed.
		l, r = x, x+1
		lp, rp := samp.PMF(l-1), samp.PMF(r)
		// If the binomial distribution has two modes, then
		// our initial selection is ambiguous.
		res.Ambiguous = rp == accum

		// Accumulate probabilities to reach the desired
		// confidence level. We defend against accumulation
		// errors by stopping if there's no more to
		// accumulate.
		for accum < confidence && (lp > 0 || rp > 0) {
			res.Ambiguous = lp == rp
			if lp >= rp { // Left-bias
				accum += lp
				l--
				lp = samp.PMF(l - 1)
			} else {
				accum += rp
				r++
				rp = samp.PMF(r)
			}
		}
		res.Confidence = accum
	} else {
		// Use the normal approximation.
		norm := samp.NormalApprox()
		alpha := (1 - confidence) / 2

		// Find the center "confidence" weight of the
		// distribution.
		l1 := norm.InvCDF(alpha)
		r1 := 2*norm.Mu() - l1 // Symmetric around mean.

		// Find the band of the discrete binomial distribution
		// containing [l1, r1]. Because of the continuity
		// correction, point k in the binomial distribution
		// corresponds to band [k-0.5, k+0.5] in the normal
		// distribution. Hence, round out to ℕ + 0.5
		// boundaries and then recover k.
		floorInt := func(x float64) int {
			// int(x) truncates toward 0, so floor first.
			return int(math.Floor(x))
		}
		l = floorInt(math.Floor(l1-0.5)+0.5) + 1
		r = floorInt(math.Ceil(r1-0.5)+0.5) + 1

		// The actual confidence on the binomial distribution
		// is
		//
		//   Pr[l <= X < r] = Pr[X <= r - 1] - Pr[X <= l - 1]
		//
		// To translate this into the normal approximation,
		// add 0.5 to each bound for the continuity
		// correction.
		cdf := func(l, r int) float64 {
			return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
		}
		res.Confidence = cdf(l, r)
		// The computed interval is always symmetric. Try
		// left-biasing it and see if we can do better while
		// still satisfying the confidence level.
		rBiased := r - 1
		if aBiased := cdf(l, rBiased); aBiased >= confidence && aBiased < res.Confidence {
			res.Confidence, res.Ambiguous = aBiased, true
			r = rBiased
		}
		if l <= 0 && r >= n+1 {
			// The CI covers everything, but because the
			// normal distribution has infinite support,
			// the confidence computed by CDF won't be
			// quite 1. Certainly the quantile falls
			// between -inf and +inf. This can happen even
			// in the biasing case, so check it in any
			// case.
			res.Confidence = 1
			res.Ambiguous = false
		}
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}
