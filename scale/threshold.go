// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"sort"

	"github.com/aclements/go-chartscale/errdefs"
)

// Threshold assigns values to the classes delimited by a break set.
// Values below Breaks[0] are in class 0; values v with
// Breaks[i-1] <= v < Breaks[i] are in class i; values at or above the
// last break are in class len(Breaks).
type Threshold struct {
	Breaks []float64
}

// NewThreshold returns a threshold scale over breaks, which must be
// non-decreasing.
func NewThreshold(breaks []float64) (Threshold, error) {
	if !sort.Float64sAreSorted(breaks) {
		return Threshold{}, errdefs.InvalidArgumentf("breaks %v are not non-decreasing", breaks)
	}
	return Threshold{breaks}, nil
}

// Classes returns the number of classes.
func (s Threshold) Classes() int {
	return len(s.Breaks) + 1
}

// Class returns the class index of v.
func (s Threshold) Class(v float64) int {
	return sort.Search(len(s.Breaks), func(i int) bool { return s.Breaks[i] > v })
}

// Of returns the center of v's class on [0, 1].
func (s Threshold) Of(v float64) float64 {
	return (float64(s.Class(v)) + 0.5) / float64(s.Classes())
}

// Ticks returns the breaks as major ticks. A threshold scale has no
// minor ticks.
func (s Threshold) Ticks(n int) (major, minor []float64) {
	major = append([]float64(nil), s.Breaks...)
	if n > 0 && len(major) > n {
		// Keep every k'th break so at most n remain.
		k := (len(major) + n - 1) / n
		thin := major[:0]
		for i := 0; i < len(major); i += k {
			thin = append(thin, major[i])
		}
		major = thin
	}
	return major, []float64{}
}
