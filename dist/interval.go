// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "math"

// An Interval is a closed real interval [Lo, Hi]. Either endpoint may
// be infinite, which makes the interval unbounded on that side.
//
// Intervals describe distribution supports, but are also plain value
// types usable for range queries (see IntervalCDF).
type Interval struct {
	Lo, Hi float64
}

// Contains reports whether x lies in iv.
func (iv Interval) Contains(x float64) bool {
	return iv.Lo <= x && x <= iv.Hi
}

// Width returns Hi - Lo. It is +Inf for unbounded intervals.
func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

// IsFinite reports whether both endpoints are finite.
func (iv Interval) IsFinite() bool {
	return !math.IsInf(iv.Lo, 0) && !math.IsInf(iv.Hi, 0)
}

// An IntInterval is a closed integer interval [Lo, Hi].
type IntInterval struct {
	Lo, Hi int
}

// Contains reports whether k lies in iv.
func (iv IntInterval) Contains(k int) bool {
	return iv.Lo <= k && k <= iv.Hi
}

// Width returns the number of integers in iv.
func (iv IntInterval) Width() int {
	return iv.Hi - iv.Lo + 1
}
