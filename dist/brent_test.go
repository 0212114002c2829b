// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"math"
	"testing"
)

func TestBrent(t *testing.T) {
	sqrt2, err := Brent{}.Solve(func(x float64) float64 {
		return x*x - 2
	}, 0, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !aeqTol(math.Sqrt2, sqrt2, 1e-8) {
		t.Errorf("want %v, got %v", math.Sqrt2, sqrt2)
	}

	// Dottie number: the fixed point of cosine.
	dottie, err := Brent{}.Solve(func(x float64) float64 {
		return math.Cos(x) - x
	}, 0, 1, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if !aeqTol(0.7390851332151607, dottie, 1e-8) {
		t.Errorf("want 0.7390851332151607, got %v", dottie)
	}

	// An endpoint or the guess may already be the root.
	x, err := Brent{}.Solve(func(x float64) float64 { return x }, -1, 1, 0)
	if err != nil || x != 0 {
		t.Errorf("want 0, got %v (err %v)", x, err)
	}
}

func TestBrentGuessOutsideInterval(t *testing.T) {
	_, err := Brent{}.Solve(func(x float64) float64 { return x }, 0, 1, 2)
	if err == nil {
		t.Error("want error for guess outside interval")
	}
}

func TestBrentNoBracket(t *testing.T) {
	_, err := Brent{}.Solve(func(x float64) float64 {
		return x*x + 1
	}, -1, 1, 0)
	if !errors.Is(err, ErrNoConverge) {
		t.Errorf("want ErrNoConverge, got %v", err)
	}
}

func TestBrentBudgetExhausted(t *testing.T) {
	_, err := Brent{MaxIter: 1}.Solve(func(x float64) float64 {
		return x*x - 2
	}, 0, 2, 0.1)
	if !errors.Is(err, ErrNoConverge) {
		t.Errorf("want ErrNoConverge, got %v", err)
	}
}
