// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A Sample is a collection of possibly duplicated, possibly unordered
// float64 observations. It supplies the summary statistics consumed by
// bandwidth estimation and quantile confidence intervals.
type Sample struct {
	// Xs is the slice of observations.
	Xs []float64

	// Sorted indicates that Xs is already in ascending order.
	Sorted bool
}

// Sort returns s with Xs sorted in ascending order. If s is already
// sorted, this returns s unchanged; otherwise it sorts a copy, leaving
// the original observations untouched.
func (s Sample) Sort() Sample {
	if s.Sorted || sort.Float64sAreSorted(s.Xs) {
		return Sample{s.Xs, true}
	}
	xs := make([]float64, len(s.Xs))
	copy(xs, s.Xs)
	sort.Float64s(xs)
	return Sample{xs, true}
}

// Sum returns the sum of the observations.
func (s Sample) Sum() float64 {
	return floats.Sum(s.Xs)
}

// Mean returns the arithmetic mean of the observations, or NaN if the
// sample is empty.
func (s Sample) Mean() float64 {
	if len(s.Xs) == 0 {
		return nan
	}
	return stat.Mean(s.Xs, nil)
}

// StdDev returns the sample (Bessel-corrected) standard deviation, or
// NaN if the sample has fewer than two observations.
func (s Sample) StdDev() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.StdDev(s.Xs, nil)
}

// Variance returns the sample variance, or NaN if the sample has fewer
// than two observations.
func (s Sample) Variance() float64 {
	if len(s.Xs) < 2 {
		return nan
	}
	return stat.Variance(s.Xs, nil)
}

// Quantile returns the pth linearly-interpolated empirical quantile of
// the sample, where p is in [0, 1]. It returns NaN if the sample is
// empty.
func (s Sample) Quantile(p float64) float64 {
	checkQuantile(p)
	if len(s.Xs) == 0 {
		return nan
	}
	s = s.Sort()
	return stat.Quantile(p, stat.LinInterp, s.Xs, nil)
}

// IQR returns the interquartile range of the sample.
func (s Sample) IQR() float64 {
	s = s.Sort()
	return s.Quantile(0.75) - s.Quantile(0.25)
}

// Bounds returns the minimum and maximum observations, or NaNs if the
// sample is empty.
func (s Sample) Bounds() (min, max float64) {
	if len(s.Xs) == 0 {
		return nan, nan
	}
	if s.Sorted {
		return s.Xs[0], s.Xs[len(s.Xs)-1]
	}
	return floats.Min(s.Xs), floats.Max(s.Xs)
}
