// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// A Range maps the unit interval produced by a scale onto an output
// interval, such as pixel positions along an axis. Min may be greater
// than Max for axes that grow downward.
type Range struct {
	Min, Max float64
	clamp    int
}

const (
	clampCrop = iota
	clampNone
	clampClamp
)

// NewRange returns a cropping range from min to max.
func NewRange(min, max float64) Range {
	return Range{min, max, clampCrop}
}

// Crop makes Of reject inputs outside [0, 1].
func (r *Range) Crop() {
	r.clamp = clampCrop
}

// Unclamp makes Of extrapolate inputs outside [0, 1].
func (r *Range) Unclamp() {
	r.clamp = clampNone
}

// Clamp makes Of pin inputs outside [0, 1] to the nearest end.
func (r *Range) Clamp() {
	r.clamp = clampClamp
}

// Of returns the output position of x in [0, 1]. ok is false if the
// range crops and x lies outside [0, 1].
func (r Range) Of(x float64) (float64, bool) {
	switch r.clamp {
	case clampCrop:
		if x < 0 || x > 1 {
			return 0, false
		}
	case clampClamp:
		if x < 0 {
			x = 0
		} else if x > 1 {
			x = 1
		}
	}
	return x*(r.Max-r.Min) + r.Min, true
}

// Map places data value v through s onto r.
func (r Range) Map(s Interface, v float64) (float64, bool) {
	return r.Of(s.Of(v))
}

// Len returns the signed length of the range.
func (r Range) Len() float64 {
	return r.Max - r.Min
}
