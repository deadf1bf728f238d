// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	mscale "github.com/aclements/go-moremath/scale"
)

// A ticker places ticks on [lo, hi] at levels of increasing spacing.
// Level l has spacing {1, 2, 5}[l mod 3] * 10^floor(l/3), so each level
// has no more ticks than the one below it.
type ticker struct {
	lo, hi float64
	guess  int
}

// levelRange bounds the search around the guess: 20 decades either way.
const levelRange = 60

// maxIndex is the largest tick index that float64 counts exactly.
const maxIndex = 1 << 52

func newTicker(lo, hi float64) *ticker {
	// The level whose spacing is about the width of the domain.
	guess := 3 * int(math.Floor(math.Log10(hi-lo)))
	return &ticker{lo, hi, guess}
}

func mantissa(level int) (m float64, exp int) {
	exp = level / 3
	r := level % 3
	if r < 0 {
		r += 3
		exp--
	}
	return []float64{1, 2, 5}[r], exp
}

// span returns the first and last tick index at level and a function
// from index to tick. Negative exponents divide by an integer so ticks
// such as 0.3 come out as the nearest float64 to the decimal. The
// indexes are rounded with a small tolerance, then any tick that lands
// outside [lo, hi] is dropped. A level too fine to index has no ticks.
func (t *ticker) span(level int) (first, last float64, at func(i float64) float64) {
	m, exp := mantissa(level)
	const eps = 1e-9
	if exp >= 0 {
		step := m * math.Pow(10, float64(exp))
		first = math.Ceil(t.lo/step - eps)
		last = math.Floor(t.hi/step + eps)
		at = func(i float64) float64 { return i * step }
	} else {
		inv := math.Pow(10, float64(-exp)) / m
		first = math.Ceil(t.lo*inv - eps)
		last = math.Floor(t.hi*inv + eps)
		at = func(i float64) float64 { return i / inv }
	}
	if math.Abs(first) > maxIndex || math.Abs(last) > maxIndex {
		// Spacing below the resolution of lo and hi.
		return 1, 0, at
	}
	if at(first) < t.lo {
		first++
	}
	if at(last) > t.hi {
		last--
	}
	return first, last, at
}

func (t *ticker) count(level int) int {
	first, last, _ := t.span(level)
	n := last - first + 1
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

func (t *ticker) ticks(level int) []float64 {
	first, last, at := t.span(level)
	out := make([]float64, 0, t.count(level))
	for i := first; i <= last; i++ {
		x := at(i)
		if x == 0 {
			// Normalize -0.
			x = 0
		}
		out = append(out, x)
	}
	return out
}

// minor returns the ticks one level below level that are not also
// ticks at level.
func (t *ticker) minor(level int) []float64 {
	major := make(map[float64]bool)
	for _, x := range t.ticks(level) {
		major[x] = true
	}
	out := []float64{}
	for _, x := range t.ticks(level - 1) {
		if !major[x] {
			out = append(out, x)
		}
	}
	return out
}

// level returns the lowest level with at most max ticks, then steps
// down while enough reports the ticks as too sparse.
func (t *ticker) level(max int, enough func(ticks []float64) bool) int {
	o := mscale.TickOptions{
		Max:      max,
		MinLevel: t.guess - levelRange,
		MaxLevel: t.guess + levelRange,
	}
	level, ok := o.FindLevel(t, t.guess)
	if !ok {
		level = o.MaxLevel
	}
	for level > o.MinLevel && !enough(t.ticks(level)) {
		level--
	}
	return level
}

// CountTicks and TicksAtLevel implement mscale.Ticker.
func (t *ticker) CountTicks(level int) int { return t.count(level) }

func (t *ticker) TicksAtLevel(level int) interface{} { return t.ticks(level) }
