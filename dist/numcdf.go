// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"
)

// NumCDF configures numerical CDF tabulation for a distribution whose
// PDF is known analytically but whose CDF has no closed form.
//
// The zero value selects the defaults.
type NumCDF struct {
	// UnitStep is the integration step size in units of the
	// distribution's standard deviation. It must lie in
	// [1e-4, 0.1]. If zero, it defaults to 0.01.
	UnitStep float64

	// Threshold is the tail probability at which integration
	// stops: the table extends outward from the median until the
	// cumulative probability is within Threshold of 0 and 1 (or
	// the support boundary is reached). It must lie in
	// [1e-8, 0.01]. If zero, it defaults to 1e-6.
	Threshold float64
}

func (c NumCDF) withDefaults() NumCDF {
	if c.UnitStep == 0 {
		c.UnitStep = 0.01
	}
	if c.Threshold == 0 {
		c.Threshold = 1e-6
	}
	return c
}

func (c NumCDF) validate() error {
	c = c.withDefaults()
	if !(1e-4 <= c.UnitStep && c.UnitStep <= 0.1) {
		return paramError("numcdf", "unit step %v outside [1e-4, 0.1]", c.UnitStep)
	}
	if !(1e-8 <= c.Threshold && c.Threshold <= 0.01) {
		return paramError("numcdf", "tail threshold %v outside [1e-8, 0.01]", c.Threshold)
	}
	return nil
}

// A cdfTable is a tabulated CDF: (x, F(x)) grid points produced by
// stepwise Simpson quadrature, interpolated with a monotone
// (Fritsch-Butland) cubic spline. It is built once and read-only
// afterward.
type cdfTable struct {
	spline interp.FritschButland
	lo, hi float64
}

// buildCDFTable integrates pdf outward from the median (cumulative
// probability 0.5) in steps of cfg.UnitStep standard deviations,
// applying Simpson's rule per step, until the remaining tail mass
// drops below cfg.Threshold on each side or the support boundary is
// reached. cfg must already be validated.
func buildCDFTable(pdf func(float64) float64, median, sdev float64, sup Interval, cfg NumCDF) *cdfTable {
	cfg = cfg.withDefaults()
	h := cfg.UnitStep * sdev

	step := func(a, b float64) float64 {
		m := (a + b) / 2
		return integrate.Simpsons(
			[]float64{a, m, b},
			[]float64{pdf(a), pdf(m), pdf(b)})
	}

	// Forward sweep from the median.
	fwdXs, fwdFs := []float64{}, []float64{}
	x, cum := median, 0.5
	for 1-cum > cfg.Threshold && x < sup.Hi {
		next := math.Min(x+h, sup.Hi)
		area := step(x, next)
		if cum+area == cum {
			// The density has underflowed; no further step
			// can move the cumulative probability.
			break
		}
		cum += area
		fwdXs = append(fwdXs, next)
		fwdFs = append(fwdFs, cum)
		x = next
	}

	// Backward sweep, collected in descending order.
	bwdXs, bwdFs := []float64{}, []float64{}
	x, cum = median, 0.5
	for cum > cfg.Threshold && x > sup.Lo {
		next := math.Max(x-h, sup.Lo)
		area := step(next, x)
		if cum-area == cum {
			break
		}
		cum -= area
		bwdXs = append(bwdXs, next)
		bwdFs = append(bwdFs, cum)
		x = next
	}

	// Assemble the grid in ascending x order.
	n := len(bwdXs) + 1 + len(fwdXs)
	xs := make([]float64, 0, n)
	fs := make([]float64, 0, n)
	for i := len(bwdXs) - 1; i >= 0; i-- {
		xs = append(xs, bwdXs[i])
		fs = append(fs, bwdFs[i])
	}
	xs = append(xs, median)
	fs = append(fs, 0.5)
	xs = append(xs, fwdXs...)
	fs = append(fs, fwdFs...)

	// Quadrature error can leave tiny non-monotonicities or mass
	// outside [0, 1]; clamp before fitting so the monotone spline
	// sees monotone data.
	prev := 0.0
	for i, f := range fs {
		f = math.Max(prev, math.Min(f, 1))
		fs[i] = f
		prev = f
	}

	t := &cdfTable{lo: xs[0], hi: xs[len(xs)-1]}
	if err := t.spline.Fit(xs, fs); err != nil {
		panic(err)
	}
	return t
}

// cdf evaluates the table: 0 below the lowest tabulated x, 1 above
// the highest, and the spline in between.
func (t *cdfTable) cdf(x float64) float64 {
	switch {
	case x < t.lo:
		return 0
	case x > t.hi:
		return 1
	}
	return t.spline.Predict(x)
}
