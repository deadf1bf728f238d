// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bars

import (
	"sort"
	"time"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/sanitize"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// An Entry is one bar in an animation frame.
type Entry struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	// Rank is the 0-based position of the bar, largest value first.
	Rank int `json:"rank"`
}

// A Frame is the set of bars shown for one date.
type Frame struct {
	Date    time.Time
	Entries []Entry
}

// Frames groups rows by the date in dateKey into animation frames,
// ordered by date. Within a frame bars are ordered by descending value,
// ties broken by label. Rows whose value is missing are left out.
//
// Dates are parsed with cast.ToTimeE, so RFC 3339 strings, plain dates
// such as "2006-01-02", time.Time values and Unix seconds are accepted.
func Frames(rows []sanitize.Row, dateKey, labelKey, valueKey string) ([]Frame, error) {
	byDate := make(map[time.Time]*Frame)
	for i, r := range rows {
		v := r[valueKey]
		if sanitize.IsMissing(v) {
			continue
		}
		xs, err := sanitize.Floats([]any{v})
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		rawDate := r[dateKey]
		if sanitize.IsMissing(rawDate) {
			return nil, errdefs.InvalidArgumentf("row %d: missing %q", i, dateKey)
		}
		date, err := cast.ToTimeE(rawDate)
		if err != nil {
			return nil, errdefs.InvalidArgumentf("row %d: %q: %v", i, dateKey, err)
		}
		date = date.UTC()
		f := byDate[date]
		if f == nil {
			f = &Frame{Date: date}
			byDate[date] = f
		}
		f.Entries = append(f.Entries, Entry{Label: cast.ToString(r[labelKey]), Value: xs[0]})
	}

	frames := make([]Frame, 0, len(byDate))
	for _, f := range byDate {
		sort.Slice(f.Entries, func(i, j int) bool {
			a, b := f.Entries[i], f.Entries[j]
			if a.Value != b.Value {
				return a.Value > b.Value
			}
			return a.Label < b.Label
		})
		for i := range f.Entries {
			f.Entries[i].Rank = i
		}
		frames = append(frames, *f)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Date.Before(frames[j].Date) })
	return frames, nil
}

// Values returns the values of every entry in frames, the sample a bar
// chart race's fixed value axis is resolved over.
func Values(frames []Frame) []float64 {
	var xs []float64
	for _, f := range frames {
		for _, e := range f.Entries {
			xs = append(xs, e.Value)
		}
	}
	return xs
}
