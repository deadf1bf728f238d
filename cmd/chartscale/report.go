// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"time"

	"github.com/aclements/go-chartscale/bars"
	"github.com/aclements/go-chartscale/breaks"
	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/internal/config"
	"github.com/aclements/go-chartscale/internal/dataset"
	"github.com/aclements/go-chartscale/legend"
	"github.com/aclements/go-chartscale/sanitize"
	"github.com/aclements/go-chartscale/scale"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

type report struct {
	Kind       dataset.Kind  `json:"kind"`
	Breaks     []float64     `json:"breaks,omitempty"`
	GVF        *float64      `json:"gvf,omitempty"`
	Domain     [2]float64    `json:"domain"`
	Ticks      []float64     `json:"ticks"`
	Categories []string      `json:"categories,omitempty"`
	Legend     []legendEntry `json:"legend,omitempty"`
	Frames     []frame       `json:"frames,omitempty"`
}

type legendEntry struct {
	Label        string   `json:"label"`
	Color        string   `json:"color"`
	Lo           *float64 `json:"lo,omitempty"`
	Hi           *float64 `json:"hi,omitempty"`
	X            float64  `json:"x"`
	Width        float64  `json:"width"`
	LabelOverlap bool     `json:"labelOverlap,omitempty"`
}

type frame struct {
	Date    time.Time    `json:"date"`
	Entries []bars.Entry `json:"entries"`
}

type builder struct {
	cfg   *config.Config
	cache *breaks.Cache
}

func newBuilder(cfg *config.Config, cache *breaks.Cache) *builder {
	return &builder{cfg, cache}
}

func (b *builder) build(ds dataset.Dataset) (*report, error) {
	rep := &report{Kind: ds.Kind()}
	var err error
	switch ds := ds.(type) {
	case *dataset.Choropleth:
		err = b.choropleth(rep, ds)
	case *dataset.Bar:
		err = b.bar(rep, ds)
	case *dataset.Slope:
		err = b.slope(rep, ds)
	default:
		err = errdefs.InvalidArgumentf("unsupported dataset %T", ds)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s chart", ds.Kind())
	}
	return rep, nil
}

// axis resolves the value domain over samples and fills in the ticks.
func (b *builder) axis(rep *report, samples ...[]float64) error {
	d, err := scale.ResolveDomain(b.cfg.DomainOptions(), samples...)
	if err != nil {
		return err
	}
	ticks, err := d.Ticks(b.cfg.Ticks, b.cfg.OmitZeroTick)
	if err != nil {
		return err
	}
	rep.Domain = [2]float64{d.Lo, d.Hi}
	rep.Ticks = ticks
	return nil
}

func (b *builder) choropleth(rep *report, ds *dataset.Choropleth) error {
	sample, err := sanitize.Column(ds.Rows, ds.ValueKey)
	if err != nil {
		return err
	}
	br, err := b.cache.Classify(sample, b.cfg.Steps)
	if err != nil {
		return err
	}
	gvf, err := breaks.GVF(sample, br)
	if err != nil {
		return err
	}
	rep.Breaks, rep.GVF = br, &gvf
	if err := b.axis(rep, sample); err != nil {
		return err
	}

	colors, err := legend.Brewer(b.cfg.Palette, b.cfg.Steps)
	if err != nil {
		return err
	}
	l, err := legend.New(br, colors)
	if err != nil {
		return err
	}
	face, err := legend.DefaultFace(b.cfg.FontSize)
	if err != nil {
		return err
	}
	swatches, err := l.Layout(b.cfg.LegendWidth, face)
	if err != nil {
		return err
	}
	for _, s := range swatches {
		e := legendEntry{
			Label:        s.Label,
			Color:        legend.Hex(s.Color),
			X:            s.X,
			Width:        s.Width,
			LabelOverlap: s.LabelOverlap,
		}
		if s.HasLo {
			lo := s.Lo
			e.Lo = &lo
		}
		if s.HasHi {
			hi := s.Hi
			e.Hi = &hi
		}
		rep.Legend = append(rep.Legend, e)
	}
	return nil
}

func (b *builder) bar(rep *report, ds *dataset.Bar) error {
	labels := make([]string, len(ds.Rows))
	for i, r := range ds.Rows {
		labels[i] = cast.ToString(r[ds.LabelKey])
	}
	rep.Categories = scale.Categories(labels)

	if ds.DateKey != "" {
		if len(ds.ValueKeys) != 1 {
			return errdefs.InvalidArgumentf("bar race over %q needs one value key, got %d", ds.DateKey, len(ds.ValueKeys))
		}
		frames, err := bars.Frames(ds.Rows, ds.DateKey, ds.LabelKey, ds.ValueKeys[0])
		if err != nil {
			return err
		}
		for _, f := range frames {
			rep.Frames = append(rep.Frames, frame{f.Date, f.Entries})
		}
		return b.axis(rep, bars.Values(frames))
	}

	series, err := bars.Series(ds.Rows, ds.ValueKeys)
	if err != nil {
		return err
	}
	stacked, err := bars.Stack(series)
	if err != nil {
		return err
	}
	lows, highs := bars.Extents(stacked)
	return b.axis(rep, lows, highs)
}

func (b *builder) slope(rep *report, ds *dataset.Slope) error {
	start, err := sanitize.Column(ds.Rows, ds.StartKey)
	if err != nil {
		return err
	}
	end, err := sanitize.Column(ds.Rows, ds.EndKey)
	if err != nil {
		return err
	}
	return b.axis(rep, start, end)
}
