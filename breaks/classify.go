// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package breaks classifies numeric samples into ordered classes using
// Jenks natural breaks.
//
// The classification result is a break set: the interior boundaries
// between adjacent classes, rounded for display. A sample with too few
// distinct values for the requested number of classes is padded with
// its maximum instead, so a break set always has one entry fewer than
// the number of classes.
package breaks

import (
	"math"
	"slices"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/sanitize"
	"github.com/aclements/go-moremath/stats"
	"github.com/cockroachdb/errors"
)

// Classify returns the noOfSteps-1 interior breakpoints of sample.
//
// sample is not modified. noOfSteps must be at least 2 and sample must
// be a non-empty set of finite values; NaN has no place in an ordering.
func Classify(sample []float64, noOfSteps int) ([]float64, error) {
	if noOfSteps < 2 {
		return nil, errdefs.InvalidArgumentf("noOfSteps must be >= 2, got %d", noOfSteps)
	}
	if len(sample) == 0 {
		return nil, errdefs.EmptySamplef("no values to classify")
	}
	if err := checkFinite(sample); err != nil {
		return nil, err
	}

	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	var bounds []float64
	if distinct := slices.Compact(slices.Clone(sorted)); len(distinct) < noOfSteps {
		bounds = pad(distinct, noOfSteps+1)
	} else {
		var err error
		bounds, err = Jenks(sorted, noOfSteps)
		if err != nil {
			return nil, err
		}
	}

	out := bounds[1 : len(bounds)-1]
	for i, x := range out {
		out[i] = Round(x)
	}
	return out, nil
}

// ClassifyValues drops missing values from vs and classifies the rest.
func ClassifyValues(vs []any, noOfSteps int) ([]float64, error) {
	sample, err := sanitize.Floats(vs)
	if err != nil {
		return nil, errors.Wrap(err, "classify")
	}
	return Classify(sample, noOfSteps)
}

func checkFinite(sample []float64) error {
	for i, x := range sample {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return errdefs.InvalidArgumentf("sample value %d is %v", i, x)
		}
	}
	return nil
}

// pad extends xs to n entries by repeating its last value.
func pad(xs []float64, n int) []float64 {
	out := make([]float64, n)
	copy(out, xs)
	for i := len(xs); i < n; i++ {
		out[i] = xs[len(xs)-1]
	}
	return out
}

// GVF returns the goodness of variance fit of breaks over sample: one
// minus the ratio of the within-class squared deviations to the squared
// deviations from the sample mean. Class i holds the values x with
// breaks[i-1] < x <= breaks[i].
//
// A sample with no spread fits perfectly.
func GVF(sample, breaks []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, errdefs.EmptySamplef("no values to fit")
	}
	if err := checkFinite(sample); err != nil {
		return 0, err
	}
	if !slices.IsSorted(breaks) {
		return 0, errdefs.InvalidArgumentf("breaks must be non-decreasing")
	}

	sdam := sumSquares(sample)
	if sdam == 0 {
		return 1, nil
	}

	classes := make([][]float64, len(breaks)+1)
	for _, x := range sample {
		i, _ := slices.BinarySearch(breaks, x)
		classes[i] = append(classes[i], x)
	}
	var sdcm float64
	for _, c := range classes {
		if len(c) > 0 {
			sdcm += sumSquares(c)
		}
	}
	return 1 - sdcm/sdam, nil
}

func sumSquares(xs []float64) float64 {
	mean := stats.Mean(xs)
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return ss
}
