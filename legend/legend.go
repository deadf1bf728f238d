// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend builds the color legend of a classified map or chart:
// one swatch per class of a break set, colored from a palette.
package legend

import (
	"fmt"
	"image/color"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/scale"
	"github.com/aclements/go-gg/palette/brewer"
)

// Brewer returns the colors of the named ColorBrewer palette with the
// given number of classes. Palettes come in 3 or more levels; fewer
// classes take a prefix of the 3-level variant.
func Brewer(name string, classes int) ([]color.Color, error) {
	if classes < 1 {
		return nil, errdefs.InvalidArgumentf("classes must be >= 1, got %d", classes)
	}
	pal, ok := brewer.ByName[name]
	if !ok {
		return nil, errdefs.InvalidArgumentf("unknown palette %q", name)
	}
	levels := classes
	if levels < 3 {
		levels = 3
	}
	cs, ok := pal[levels]
	if !ok {
		return nil, errdefs.InvalidArgumentf("palette %q has no %d-class variant", name, classes)
	}
	out := make([]color.Color, 0, classes)
	for _, c := range cs[:classes] {
		out = append(out, c)
	}
	return out, nil
}

// A Legend pairs each class of a break set with a color.
type Legend struct {
	scale  scale.Threshold
	colors []color.Color
	format string
}

// An Entry describes one class. Lo and Hi are the bounding breaks; the
// first class has no Lo and the last no Hi.
type Entry struct {
	Label        string
	Color        color.Color
	Lo, Hi       float64
	HasLo, HasHi bool
}

// New returns a legend for breaks. There must be one more color than
// breaks.
func New(breaks []float64, colors []color.Color) (*Legend, error) {
	th, err := scale.NewThreshold(breaks)
	if err != nil {
		return nil, err
	}
	if len(colors) != th.Classes() {
		return nil, errdefs.InvalidArgumentf("%d breaks need %d colors, got %d", len(breaks), th.Classes(), len(colors))
	}
	return &Legend{scale: th, colors: colors, format: "%g"}, nil
}

// SetFormat sets the fmt verb used to print breaks in labels. The
// default is "%g".
func (l *Legend) SetFormat(format string) {
	l.format = format
}

// ColorOf returns the color of the class v falls in.
func (l *Legend) ColorOf(v float64) color.Color {
	return l.colors[l.scale.Class(v)]
}

// Entries returns one entry per class, lowest first.
func (l *Legend) Entries() []Entry {
	br := l.scale.Breaks
	out := make([]Entry, l.scale.Classes())
	for i := range out {
		e := Entry{Color: l.colors[i]}
		if i > 0 {
			e.Lo, e.HasLo = br[i-1], true
		}
		if i < len(br) {
			e.Hi, e.HasHi = br[i], true
		}
		switch {
		case e.HasLo && e.HasHi:
			e.Label = l.sprint(e.Lo) + "–" + l.sprint(e.Hi)
		case e.HasHi:
			e.Label = "< " + l.sprint(e.Hi)
		case e.HasLo:
			e.Label = "≥ " + l.sprint(e.Lo)
		default:
			e.Label = "all"
		}
		out[i] = e
	}
	return out
}

func (l *Legend) sprint(x float64) string {
	return fmt.Sprintf(l.format, x)
}

// Hex returns c as a CSS hex color, ignoring alpha.
func Hex(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
