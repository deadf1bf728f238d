// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset decodes chart datasets. A dataset is a JSON object
// whose "kind" selects the chart type and the columns it reads; it is
// checked against an embedded JSON Schema before it is decoded, so the
// rest of the program only sees well-formed, typed datasets.
package dataset

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/sanitize"
	"github.com/cockroachdb/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "https://github.com/aclements/go-chartscale/dataset.schema.json"

var schema = mustCompile()

func mustCompile() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return c.MustCompile(schemaURL)
}

// Kind names a chart type.
type Kind string

const (
	KindChoropleth Kind = "choropleth"
	KindBar        Kind = "bar"
	KindSlope      Kind = "slope"
)

// A Dataset is one of *Choropleth, *Bar or *Slope.
type Dataset interface {
	Kind() Kind
	// Data returns the dataset's rows.
	Data() []sanitize.Row
}

// Choropleth colors regions by the classes of one value column.
type Choropleth struct {
	ValueKey string         `json:"valueKey"`
	Rows     []sanitize.Row `json:"rows"`
}

// Bar draws one bar per label, stacking one segment per value column.
// If DateKey is set, the rows are animation frames over that column
// instead; frames rank a single value per label, so ValueKeys must then
// hold exactly one key.
type Bar struct {
	LabelKey  string         `json:"labelKey"`
	ValueKeys []string       `json:"valueKeys"`
	DateKey   string         `json:"dateKey,omitempty"`
	Rows      []sanitize.Row `json:"rows"`
}

// Slope connects each row's start value to its end value on a shared
// axis.
type Slope struct {
	LabelKey string         `json:"labelKey,omitempty"`
	StartKey string         `json:"startKey"`
	EndKey   string         `json:"endKey"`
	Rows     []sanitize.Row `json:"rows"`
}

func (*Choropleth) Kind() Kind { return KindChoropleth }
func (*Bar) Kind() Kind        { return KindBar }
func (*Slope) Kind() Kind      { return KindSlope }

func (d *Choropleth) Data() []sanitize.Row { return d.Rows }
func (d *Bar) Data() []sanitize.Row        { return d.Rows }
func (d *Slope) Data() []sanitize.Row      { return d.Rows }

// Decode reads, validates and decodes one dataset from r.
func Decode(r io.Reader) (Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading dataset")
	}

	var doc interface{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.WithHint(errdefs.InvalidArgumentf("dataset is not JSON: %v", err), "datasets are JSON objects with a \"kind\" field")
	}
	if err := schema.Validate(doc); err != nil {
		return nil, errors.WithHint(errdefs.InvalidArgumentf("invalid dataset: %v", err), "kind must be one of choropleth, bar or slope, with that kind's key fields")
	}

	var head struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, errors.Wrap(err, "decoding dataset kind")
	}
	var ds Dataset
	switch head.Kind {
	case KindChoropleth:
		ds = new(Choropleth)
	case KindBar:
		ds = new(Bar)
	case KindSlope:
		ds = new(Slope)
	default:
		return nil, errdefs.InvalidArgumentf("unknown dataset kind %q", head.Kind)
	}

	dec = json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(ds); err != nil {
		return nil, errors.Wrapf(err, "decoding %s dataset", head.Kind)
	}
	return ds, nil
}
