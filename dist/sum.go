// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

const (
	// cltThreshold is the count at and above which sumOfIID takes
	// the Central Limit Theorem shortcut. This is a fixed design
	// constant; changing it breaks test reproducibility.
	cltThreshold = 30

	// sumTrials is the number of Monte Carlo trials used to build
	// the kernel density estimate of a small-count sum.
	sumTrials = 100000
)

// sumOfIID is the generic sum algebra behind RealDist.Sum for families
// without an exact convolution.
//
// For n == 1 it returns d itself. For 2 <= n < 30 it draws sumTrials
// sums of n independent variates and fits a default-kernel density
// estimate over them. For n >= 30 it returns the exact Central Limit
// Theorem normal with mean n·µ and standard deviation √n·σ.
func sumOfIID(d RealDist, rng *rand.Rand, n int) RealDist {
	checkSumCount(n)
	if n == 1 {
		return d
	}
	if n >= cltThreshold {
		nd, err := NewNormalDist(float64(n)*d.Mean(), math.Sqrt(float64(n))*d.StdDev())
		if err != nil {
			panic(err)
		}
		return nd
	}

	sums := make([]float64, sumTrials)
	for i := range sums {
		var total float64
		for j := 0; j < n; j++ {
			total += d.Rand(rng)
		}
		sums[i] = total
	}
	kde, err := NewKDE(sums, EpanechnikovKernel, 0)
	if err != nil {
		panic(err)
	}
	return kde
}
