// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
	"sort"
)

// A KDE is a kernel density estimate: a smooth distribution
// constructed from a finite sample by centering a scaled kernel at
// every observation.
//
// CDF and PDF evaluation sum over the whole sample, so each query is
// O(n) in the sample size.
type KDE struct {
	xs    []float64 // sorted private copy of the sample
	kern  Kernel
	kdist RealDist // kern.Dist(), cached
	h     float64  // bandwidth
}

// NewKDE returns a kernel density estimate over the observations xs
// using the given kernel. xs must contain at least two observations;
// it is copied and sorted, so the caller's slice is not retained.
//
// If bandwidth is zero, Silverman's rule (BandwidthSilverman) is
// applied; this fails for a degenerate (zero-spread) sample. An
// explicit bandwidth must be positive and finite.
func NewKDE(xs []float64, kernel Kernel, bandwidth float64) (*KDE, error) {
	if len(xs) < 2 {
		return nil, paramError("kde", "need at least 2 observations, have %d", len(xs))
	}
	if kernel < EpanechnikovKernel || kernel > GaussianKernel {
		return nil, paramError("kde", "unknown kernel %d", int(kernel))
	}
	cp := make([]float64, len(xs))
	copy(cp, xs)
	sort.Float64s(cp)

	h := bandwidth
	if h == 0 {
		h = BandwidthSilverman(Sample{Xs: cp, Sorted: true})
	}
	if !(h > 0) || math.IsInf(h, 0) || math.IsNaN(h) {
		return nil, paramError("kde", "bandwidth %v is not positive and finite", h)
	}
	return &KDE{cp, kernel, kernel.Dist(), h}, nil
}

// Bandwidth returns the bandwidth in use, whether explicit or
// estimated.
func (d *KDE) Bandwidth() float64 { return d.h }

// Kernel returns the kernel shape in use.
func (d *KDE) Kernel() Kernel { return d.kern }

// CDF averages the kernel CDF shifted to every observation:
// (1/n) Σᵢ K((x-xᵢ)/h).
func (d *KDE) CDF(x float64) float64 {
	var sum float64
	for _, xi := range d.xs {
		sum += d.kdist.CDF((x - xi) / d.h)
	}
	return sum / float64(len(d.xs))
}

// PDF averages the kernel density shifted to every observation:
// (1/nh) Σᵢ k((x-xᵢ)/h).
func (d *KDE) PDF(x float64) float64 {
	var sum float64
	for _, xi := range d.xs {
		sum += d.kdist.PDF((x - xi) / d.h)
	}
	return sum / (float64(len(d.xs)) * d.h)
}

func (d *KDE) InvCDF(p float64) float64 {
	return InvCDFNumeric(d, p)
}

func (d *KDE) Mean() float64 {
	return Sample{Xs: d.xs, Sorted: true}.Mean()
}

func (d *KDE) Median() float64 {
	return d.InvCDF(0.5)
}

// Mode returns NaN: a density estimate has no guarantee of
// unimodality.
func (d *KDE) Mode() float64 { return nan }

func (d *KDE) StdDev() float64 { return math.Sqrt(d.Variance()) }

// Variance is the exact variance of the estimate as a distribution:
// the population variance of the sample plus the squared kernel
// spread h²·σₖ².
func (d *KDE) Variance() float64 {
	mean := d.Mean()
	var ss float64
	for _, xi := range d.xs {
		dev := xi - mean
		ss += dev * dev
	}
	ksd := d.h * d.kdist.StdDev()
	return ss/float64(len(d.xs)) + ksd*ksd
}

// Rand picks one observation uniformly at random and perturbs it by a
// bandwidth-scaled kernel draw.
func (d *KDE) Rand(rng *rand.Rand) float64 {
	xi := d.xs[rng.Intn(len(d.xs))]
	return xi + d.h*d.kdist.StdDev()*d.kdist.Rand(rng)
}

func (d *KDE) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

// Support is the sample range padded on each side by half the
// kernel's own support width scaled by the bandwidth. With the
// Gaussian kernel the support is unbounded.
func (d *KDE) Support() Interval {
	pad := d.h * d.kdist.Support().Width() / 2
	return Interval{d.xs[0] - pad, d.xs[len(d.xs)-1] + pad}
}
