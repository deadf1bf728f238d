// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "github.com/aclements/go-moremath/stats"

// extent returns the minimum and maximum over all of samples. ok is
// false if every sample is empty.
func extent(samples ...[]float64) (min, max float64, ok bool) {
	for _, xs := range samples {
		if len(xs) == 0 {
			continue
		}
		lo, hi := stats.Bounds(xs)
		if !ok || lo < min {
			min = lo
		}
		if !ok || hi > max {
			max = hi
		}
		ok = true
	}
	return
}
