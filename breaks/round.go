// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import "math"

// Round rounds x to two significant figures for display. Values with
// magnitude below 1 keep their fraction (0.456 becomes 0.46); larger
// values are truncated toward zero after rounding (45.6 becomes 46,
// 1.56 becomes 1).
func Round(x float64) float64 {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	e := int(math.Floor(math.Log10(math.Abs(x))))
	var r float64
	if e >= 1 {
		p := math.Pow(10, float64(e-1))
		r = math.Round(x/p) * p
	} else {
		p := math.Pow(10, float64(1-e))
		r = math.Round(x*p) / p
	}
	if math.Abs(r) < 1 {
		return r
	}
	return math.Trunc(r)
}
