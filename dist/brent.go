// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"fmt"
	"math"
)

// A Brent is a univariate root finder implementing Brent's method,
// which combines bisection, the secant method, and inverse quadratic
// interpolation. Given a bracketing interval it is guaranteed to
// converge.
//
// The zero value of Brent is a valid configuration.
//
// See Brent, R. P. (1973) Algorithms for Minimization without
// Derivatives, chapter 4, and Press et al., Numerical Recipes §9.3.
type Brent struct {
	// Tol is the absolute tolerance on the root. If zero, it
	// defaults to 1e-9.
	Tol float64

	// MaxIter bounds the number of iterations. If zero, it
	// defaults to 1000.
	MaxIter int
}

// Solve returns x in [lo, hi] such that f(x) ≈ 0.
//
// guess must lie within [lo, hi]; Solve uses it to narrow the initial
// bracket when f changes sign between an endpoint and the guess. f
// must change sign somewhere on [lo, hi]. Solve returns an error
// wrapping ErrNoConverge if no sign change is found or the iteration
// budget is exhausted before reaching tolerance.
func (s Brent) Solve(f func(float64) float64, lo, hi, guess float64) (float64, error) {
	tol := s.Tol
	if tol == 0 {
		tol = 1e-9
	}
	maxIter := s.MaxIter
	if maxIter == 0 {
		maxIter = 1000
	}

	if lo > hi {
		return nan, fmt.Errorf("brent: interval [%v, %v] is empty", lo, hi)
	}
	if guess < lo || guess > hi {
		return nan, fmt.Errorf("brent: initial guess %v outside interval [%v, %v]", guess, lo, hi)
	}

	fg := f(guess)
	if fg == 0 {
		return guess, nil
	}
	flo := f(lo)
	if flo == 0 {
		return lo, nil
	}

	// Narrow the bracket around the guess if possible.
	var a, b, fa, fb float64
	if signDiffers(flo, fg) {
		a, b, fa, fb = lo, guess, flo, fg
	} else {
		fhi := f(hi)
		if fhi == 0 {
			return hi, nil
		}
		if signDiffers(fg, fhi) {
			a, b, fa, fb = guess, hi, fg, fhi
		} else if signDiffers(flo, fhi) {
			a, b, fa, fb = lo, hi, flo, fhi
		} else {
			return nan, fmt.Errorf("brent: f does not change sign on [%v, %v]: %w", lo, hi, ErrNoConverge)
		}
	}

	// Brent iteration, after Numerical Recipes zbrent.
	c, fc := a, fa
	d := b - a
	e := d
	const eps = 2.220446049250313e-16
	for i := 0; i < maxIter; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*eps*math.Abs(b) + 0.5*tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			// Attempt inverse quadratic interpolation
			// (secant if only two points are distinct).
			var p, q float64
			t := fb / fa
			if a == c {
				p = 2 * xm * t
				q = 1 - t
			} else {
				q = fa / fc
				r := fb / fc
				p = t * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (t - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				// Interpolation step accepted.
				e = d
				d = p / q
			} else {
				// Fall back to bisection.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return b, fmt.Errorf("brent: %d iterations exhausted: %w", maxIter, ErrNoConverge)
}

func signDiffers(a, b float64) bool {
	return (a > 0) != (b > 0)
}
