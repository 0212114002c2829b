// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"math/rand"
)

// A Kernel identifies one of the standardized zero-mean kernel shapes
// used for kernel density estimation. The zero value is the
// Epanechnikov kernel.
type Kernel int

const (
	// EpanechnikovKernel is the mean-squared-error-optimal
	// parabolic kernel on [-1, 1].
	EpanechnikovKernel Kernel = iota

	// UniformKernel is the rectangular kernel on [-1, 1].
	UniformKernel

	// TriangleKernel is the triangular kernel on [-1, 1] with
	// mode 0.
	TriangleKernel

	// BiweightKernel is the quartic kernel on [-1, 1].
	BiweightKernel

	// CosineKernel is the raised-cosine kernel on [-1, 1].
	CosineKernel

	// GaussianKernel is the standard normal kernel.
	GaussianKernel
)

// Dist returns the kernel's unit-scale distribution. Every kernel is
// itself a full RealDist.
func (k Kernel) Dist() RealDist {
	switch k {
	case EpanechnikovKernel:
		return EpanechnikovDist{}
	case UniformKernel:
		return UniformDist{-1, 1}
	case TriangleKernel:
		return TriangleDist{-1, 1, 0}
	case BiweightKernel:
		return BiweightDist{}
	case CosineKernel:
		return CosineDist{}
	case GaussianKernel:
		return StdNormal
	}
	panic("unknown kernel")
}

func (k Kernel) String() string {
	switch k {
	case EpanechnikovKernel:
		return "epanechnikov"
	case UniformKernel:
		return "uniform"
	case TriangleKernel:
		return "triangle"
	case BiweightKernel:
		return "biweight"
	case CosineKernel:
		return "cosine"
	case GaussianKernel:
		return "gaussian"
	}
	return "unknown"
}

// BandwidthSilverman is the default bandwidth estimator implementing
// Silverman's Rule of Thumb,
//
//	h = 0.9 · min(sd, IQR/1.34) · n^(-1/5)
//
// It is fast but assumes the data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation for Statistics and Data
// Analysis.
func BandwidthSilverman(s Sample) float64 {
	spread := s.StdDev()
	if iqr := s.IQR() / 1.34; iqr < spread {
		spread = iqr
	}
	return 0.9 * spread * math.Pow(float64(len(s.Xs)), -1.0/5)
}

// An EpanechnikovDist is the Epanechnikov kernel distribution,
//
//	PDF(x) = ¾ (1 - x²) on [-1, 1]
type EpanechnikovDist struct{}

func (EpanechnikovDist) CDF(x float64) float64 {
	switch {
	case x <= -1:
		return 0
	case x >= 1:
		return 1
	}
	return (2 + 3*x - x*x*x) / 4
}

func (EpanechnikovDist) PDF(x float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	return 0.75 * (1 - x*x)
}

func (d EpanechnikovDist) InvCDF(p float64) float64 {
	return InvCDFNumeric(d, p)
}

func (EpanechnikovDist) Mean() float64     { return 0 }
func (EpanechnikovDist) Median() float64   { return 0 }
func (EpanechnikovDist) Mode() float64     { return 0 }
func (EpanechnikovDist) StdDev() float64   { return math.Sqrt(0.2) }
func (EpanechnikovDist) Variance() float64 { return 0.2 }

// Rand uses the order-statistic method of Devroye & Győrfi: the median
// of three uniform variates on [-1, 1] has the Epanechnikov density,
// and it can be selected without sorting.
func (EpanechnikovDist) Rand(rng *rand.Rand) float64 {
	u1 := 2*rng.Float64() - 1
	u2 := 2*rng.Float64() - 1
	u3 := 2*rng.Float64() - 1
	if math.Abs(u3) >= math.Abs(u2) && math.Abs(u3) >= math.Abs(u1) {
		return u2
	}
	return u3
}

func (d EpanechnikovDist) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

func (EpanechnikovDist) Support() Interval { return Interval{-1, 1} }

// A BiweightDist is the biweight (quartic) kernel distribution,
//
//	PDF(x) = 15/16 (1 - x²)² on [-1, 1]
type BiweightDist struct{}

func (BiweightDist) CDF(x float64) float64 {
	switch {
	case x <= -1:
		return 0
	case x >= 1:
		return 1
	}
	return 0.5 + (15*x-10*x*x*x+3*x*x*x*x*x)/16
}

func (BiweightDist) PDF(x float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	u := 1 - x*x
	return 15.0 / 16 * u * u
}

func (d BiweightDist) InvCDF(p float64) float64 {
	return InvCDFNumeric(d, p)
}

func (BiweightDist) Mean() float64     { return 0 }
func (BiweightDist) Median() float64   { return 0 }
func (BiweightDist) Mode() float64     { return 0 }
func (BiweightDist) StdDev() float64   { return math.Sqrt(1.0 / 7) }
func (BiweightDist) Variance() float64 { return 1.0 / 7 }

// Rand draws by rejection against the uniform trial over [-1, 1]; the
// likelihood-ratio bound is 2·PDF(0) = 15/8, so acceptance is fast.
func (d BiweightDist) Rand(rng *rand.Rand) float64 {
	x, err := RandRejection(d, rng)
	if err != nil {
		panic(err)
	}
	return x
}

func (d BiweightDist) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

func (BiweightDist) Support() Interval { return Interval{-1, 1} }

// A CosineDist is the raised-cosine kernel distribution,
//
//	PDF(x) = π/4 cos(πx/2) on [-1, 1]
//
// Unlike the other bounded kernels its quantile is closed-form.
type CosineDist struct{}

func (CosineDist) CDF(x float64) float64 {
	switch {
	case x <= -1:
		return 0
	case x >= 1:
		return 1
	}
	return (1 + math.Sin(math.Pi*x/2)) / 2
}

func (CosineDist) PDF(x float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	return math.Pi / 4 * math.Cos(math.Pi*x/2)
}

func (CosineDist) InvCDF(p float64) float64 {
	checkQuantile(p)
	return 2 / math.Pi * math.Asin(2*p-1)
}

func (CosineDist) Mean() float64   { return 0 }
func (CosineDist) Median() float64 { return 0 }
func (CosineDist) Mode() float64   { return 0 }

func (d CosineDist) StdDev() float64 { return math.Sqrt(d.Variance()) }

func (CosineDist) Variance() float64 {
	return 1 - 8/(math.Pi*math.Pi)
}

func (d CosineDist) Rand(rng *rand.Rand) float64 {
	return RandTransform(d, rng)
}

func (d CosineDist) Sum(rng *rand.Rand, n int) RealDist {
	return sumOfIID(d, rng, n)
}

func (CosineDist) Support() Interval { return Interval{-1, 1} }
