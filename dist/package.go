// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// dist implements univariate continuous and discrete probability
// distributions: closed-form families, kernel density estimates,
// numerically-integrated CDFs, and sum-of-IID distribution algebra.
package dist // import "github.com/aclements/go-dist/dist"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
