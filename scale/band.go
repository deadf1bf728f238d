// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	"github.com/aclements/go-chartscale/errdefs"
)

// Categories returns the distinct labels in order of first appearance.
func Categories(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			out = append(out, l)
		}
	}
	return out
}

// Band divides [0, 1] into equal bands, one per category, for bar
// charts. PaddingInner is the fraction of a step left empty between
// bands; PaddingOuter is the gap before the first and after the last
// band, in steps.
type Band struct {
	categories   []string
	index        map[string]int
	paddingInner float64
	paddingOuter float64
}

// NewBand returns a band scale over the distinct categories. Both
// paddings must be in [0, 1].
func NewBand(categories []string, paddingInner, paddingOuter float64) (*Band, error) {
	if paddingInner < 0 || paddingInner > 1 || paddingOuter < 0 || paddingOuter > 1 {
		return nil, errdefs.InvalidArgumentf("band padding (%g, %g) outside [0, 1]", paddingInner, paddingOuter)
	}
	cats := Categories(categories)
	b := &Band{
		categories:   cats,
		index:        make(map[string]int, len(cats)),
		paddingInner: paddingInner,
		paddingOuter: paddingOuter,
	}
	for i, c := range cats {
		b.index[c] = i
	}
	return b, nil
}

// Categories returns the domain of b.
func (b *Band) Categories() []string {
	return b.categories
}

func (b *Band) step() float64 {
	n := float64(len(b.categories))
	if n == 0 {
		return 0
	}
	return 1 / math.Max(1, n-b.paddingInner+2*b.paddingOuter)
}

// Bandwidth returns the width of each band on [0, 1].
func (b *Band) Bandwidth() float64 {
	return b.step() * (1 - b.paddingInner)
}

// Of returns the start of category c's band on [0, 1]. ok is false if c
// is not in the domain.
func (b *Band) Of(c string) (start float64, ok bool) {
	i, ok := b.index[c]
	if !ok {
		return 0, false
	}
	step := b.step()
	return step*b.paddingOuter + step*float64(i), true
}
