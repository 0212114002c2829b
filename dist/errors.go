// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"errors"
	"fmt"
)

// ErrNoConverge indicates that an iterative numerical method exhausted
// its iteration budget without reaching the requested tolerance. This
// is distinct from an invalid-parameter error: it means the method's
// assumptions were violated (for example, the function handed to the
// root finder does not actually bracket a root), not that the caller
// passed a malformed value.
var ErrNoConverge = errors.New("did not converge")

// paramError reports an invalid distribution parameter. All
// constructors validate eagerly and return one of these rather than
// ever producing a distribution in an invalid state.
func paramError(dist, detail string, args ...interface{}) error {
	return fmt.Errorf(dist+": "+detail, args...)
}

// checkQuantile panics if p is not a valid cumulative probability.
// Every quantile-consuming entry point calls this.
func checkQuantile(p float64) {
	if !(0 <= p && p <= 1) {
		panic(fmt.Sprintf("quantile %v out of range [0, 1]", p))
	}
}
