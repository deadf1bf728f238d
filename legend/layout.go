// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/scale"
	"github.com/aclements/go-moremath/vec"
	"github.com/cockroachdb/errors"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// A Swatch is the horizontal placement of one legend class.
type Swatch struct {
	Entry
	X, Width float64
	// LabelX is where the centered label starts and LabelWidth is its
	// measured advance.
	LabelX, LabelWidth float64
	// LabelOverlap is set if the label runs into the label to its
	// left. The renderer may stagger, rotate or drop such labels.
	LabelOverlap bool
}

// DefaultFace returns Go Regular at size points and 72 DPI.
func DefaultFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parsing Go Regular")
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}), nil
}

// Layout places the legend's swatches side by side across width,
// lowest class on the left, and centers each label under its swatch.
// Labels measured with face that collide with their left neighbor are
// flagged with LabelOverlap; the swatches are laid out regardless.
func (l *Legend) Layout(width float64, face font.Face) ([]Swatch, error) {
	if width <= 0 {
		return nil, errdefs.InvalidArgumentf("legend width must be > 0, got %g", width)
	}
	entries := l.Entries()
	n := len(entries)
	rng := scale.NewRange(0, width)
	edges := vec.Map(func(x float64) float64 {
		y, _ := rng.Of(x)
		return y
	}, vec.Linspace(0, 1, n+1))

	out := make([]Swatch, n)
	prevEnd := 0.0
	for i, e := range entries {
		x, w := edges[i], edges[i+1]-edges[i]
		lw := float64(font.MeasureString(face, e.Label)) / 64
		lx := x + (w-lw)/2
		out[i] = Swatch{Entry: e, X: x, Width: w, LabelX: lx, LabelWidth: lw}
		out[i].LabelOverlap = i > 0 && lx < prevEnd
		prevEnd = lx + lw
	}
	return out, nil
}
