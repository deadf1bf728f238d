// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"fmt"

	"github.com/aclements/go-chartscale/errdefs"
)

// A Domain is the closed interval of data values a scale maps.
type Domain struct {
	Lo, Hi float64
}

func (d Domain) String() string {
	return fmt.Sprintf("[%g, %g]", d.Lo, d.Hi)
}

// DomainOptions are explicit bounds that override the ones derived from
// the data. A nil bound is derived.
type DomainOptions struct {
	Min, Max *float64
}

// Float returns a pointer to x, for filling in DomainOptions.
func Float(x float64) *float64 { return &x }

// ResolveDomain returns the domain of a chart over samples.
//
// An explicit bound in opts is used as given. Otherwise the bound comes
// from the extent of all samples, anchored at zero: the lower bound is 0
// when no value is negative, and the upper bound is 0 when every value
// is negative. Bars and areas drawn from the baseline then always fit.
//
// Several samples share a single extent, as for charts that plot two
// series against one axis.
func ResolveDomain(opts DomainOptions, samples ...[]float64) (Domain, error) {
	var d Domain
	if opts.Min != nil && opts.Max != nil {
		d.Lo, d.Hi = *opts.Min, *opts.Max
		return d, d.check()
	}

	min, max, ok := extent(samples...)
	if !ok {
		return d, errdefs.EmptySamplef("no values to derive a domain from")
	}

	if opts.Min != nil {
		d.Lo = *opts.Min
	} else if min < 0 {
		d.Lo = min
	}
	if opts.Max != nil {
		d.Hi = *opts.Max
	} else if max >= 0 {
		d.Hi = max
	}
	return d, d.check()
}

// check rejects a domain whose bounds or width are not finite numbers.
// No scale can place anything on it.
func (d Domain) check() error {
	if !finite(d.Lo, d.Hi, d.Hi-d.Lo) {
		return errdefs.InvalidArgumentf("domain %v is not finite", d)
	}
	return nil
}

// Ticks returns at most count round-numbered positions within d, in
// ascending order. If omitZero is set, a tick at exactly 0 is dropped
// because the baseline is drawn as a separate axis line.
//
// Ticks are spaced 1, 2 or 5 times a power of ten, as finely as count
// allows. When that would leave fewer than two ticks, finer spacings
// are tried until there are two, so a chart always has at least two
// labeled ticks even if that exceeds count. A degenerate domain has the single
// tick d.Lo.
func (d Domain) Ticks(count int, omitZero bool) ([]float64, error) {
	if count < 1 {
		return nil, errdefs.InvalidArgumentf("tick count must be >= 1, got %d", count)
	}
	if err := d.check(); err != nil {
		return nil, err
	}
	lo, hi := d.Lo, d.Hi
	if lo > hi {
		lo, hi = hi, lo
	}
	keep := func(ticks []float64) []float64 {
		if !omitZero {
			return ticks
		}
		out := ticks[:0]
		for _, t := range ticks {
			if t != 0 {
				out = append(out, t)
			}
		}
		return out
	}
	if lo == hi {
		// lo + 0 turns -0 into 0.
		return keep([]float64{lo + 0}), nil
	}

	t := newTicker(lo, hi)
	level := t.level(count, func(ticks []float64) bool {
		return len(keep(ticks)) >= 2
	})
	return keep(t.ticks(level)), nil
}
