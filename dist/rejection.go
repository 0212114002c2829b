// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
	"math/rand"
)

// RandRejection draws one variate from d by von Neumann rejection
// sampling against a uniform trial distribution over d's support.
//
// d must be unimodal with finite support; RandRejection returns an
// error otherwise. The likelihood-ratio bound is M = width ×
// PDF(mode), and the expected number of trials to acceptance is M. The
// loop is capped at 1000×M iterations as a safety valve; exhausting it
// returns an error wrapping ErrNoConverge, which indicates the
// distribution violates the sampler's assumptions rather than bad
// luck.
func RandRejection(d RealDist, rng *rand.Rand) (float64, error) {
	sup := d.Support()
	if !sup.IsFinite() {
		return nan, fmt.Errorf("rejection sampling requires finite support, have [%v, %v]", sup.Lo, sup.Hi)
	}
	mode := d.Mode()
	if math.IsNaN(mode) {
		return nan, fmt.Errorf("rejection sampling requires a unimodal distribution")
	}

	width := sup.Width()
	peak := d.PDF(mode)
	m := width * peak
	maxIter := int(math.Ceil(1000 * m))
	for i := 0; i < maxIter; i++ {
		trial := sup.Lo + width*rng.Float64()
		// The trial density is 1/width, so u·M·g(trial) < f(trial)
		// reduces to u·peak < PDF(trial).
		if rng.Float64()*peak < d.PDF(trial) {
			return trial, nil
		}
	}
	return nan, fmt.Errorf("rejection sampling gave up after %d iterations: %w", maxIter, ErrNoConverge)
}
