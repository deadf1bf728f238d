// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Linear maps a Domain linearly onto [0, 1].
type Linear struct {
	min, width float64
}

// NewLinear returns a new linear scale over d. A reversed domain maps
// d.Lo to 0 and d.Hi to 1 all the same.
func NewLinear(d Domain) Linear {
	return Linear{d.Lo, d.Hi - d.Lo}
}

// NewLinearOf returns a linear scale over the extent of input.
func NewLinearOf(input []float64) Linear {
	min, max, _ := extent(input)
	return Linear{min, max - min}
}

func (s Linear) Of(x float64) float64 {
	if s.width == 0 {
		return 0.5
	}
	return (x - s.min) / s.width
}

// Ticks returns at most n major ticks at round numbers within the
// domain, spaced 1, 2 or 5 times a power of ten, plus the minor ticks
// one level below them. Both are in ascending order. If at most n ticks
// would leave fewer than two, the next finer spacing is used instead.
//
// A domain that is not finite, or whose width overflows, has no ticks.
func (s Linear) Ticks(n int) (major, minor []float64) {
	lo, hi := s.min, s.min+s.width
	if lo > hi {
		lo, hi = hi, lo
	}
	if !finite(lo, hi, hi-lo) {
		return []float64{}, []float64{}
	}
	if lo == hi || n < 1 {
		return []float64{lo}, []float64{}
	}

	t := newTicker(lo, hi)
	level := t.level(n, func(ticks []float64) bool { return len(ticks) >= 2 })
	return t.ticks(level), t.minor(level)
}

func finite(xs ...float64) bool {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
