// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bars lays out the data of grouped and stacked bar charts and
// of bar chart races that step through dates.
package bars

import (
	"math"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/sanitize"
	"github.com/cockroachdb/errors"
)

// A Segment is the extent of one series' piece of a stacked bar.
type Segment struct {
	Lo, Hi float64
}

// Stack stacks series[s][c], the value of series s in category c, into
// one bar per category. Positive values stack upward from 0 and
// negative values downward, in series order. A NaN value occupies an
// empty segment at the current top of its side.
//
// The result is indexed like series. Every series must have the same
// number of categories.
func Stack(series [][]float64) ([][]Segment, error) {
	if len(series) == 0 {
		return nil, nil
	}
	n := len(series[0])
	for i, s := range series {
		if len(s) != n {
			return nil, errdefs.InvalidArgumentf("series %d has %d values, want %d", i, len(s), n)
		}
	}

	pos := make([]float64, n)
	neg := make([]float64, n)
	out := make([][]Segment, len(series))
	for i, s := range series {
		out[i] = make([]Segment, n)
		for c, v := range s {
			switch {
			case math.IsNaN(v):
				out[i][c] = Segment{pos[c], pos[c]}
			case v >= 0:
				out[i][c] = Segment{pos[c], pos[c] + v}
				pos[c] += v
			default:
				out[i][c] = Segment{neg[c] + v, neg[c]}
				neg[c] += v
			}
		}
	}
	return out, nil
}

// Extents returns the lower and upper ends of every segment, the pair
// of samples a stacked chart's value domain is resolved over.
func Extents(stacked [][]Segment) (lows, highs []float64) {
	for _, s := range stacked {
		for _, seg := range s {
			lows = append(lows, seg.Lo)
			highs = append(highs, seg.Hi)
		}
	}
	return
}

// Series reads one series per key from rows, in the layout Stack
// takes. Missing values become NaN so that categories stay aligned.
func Series(rows []sanitize.Row, keys []string) ([][]float64, error) {
	out := make([][]float64, len(keys))
	for s, key := range keys {
		out[s] = make([]float64, len(rows))
		for c, r := range rows {
			v := r[key]
			if sanitize.IsMissing(v) {
				out[s][c] = math.NaN()
				continue
			}
			xs, err := sanitize.Floats([]any{v})
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %q", c, key)
			}
			out[s][c] = xs[0]
		}
	}
	return out, nil
}
