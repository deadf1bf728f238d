// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"strings"
	"testing"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/aclements/go-chartscale/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChoropleth(t *testing.T) {
	ds, err := Decode(strings.NewReader(`{
		"kind": "choropleth",
		"valueKey": "gdp",
		"rows": [{"iso3": "AAA", "gdp": 1.5}, {"iso3": "BBB", "gdp": null}, {"iso3": "CCC", "gdp": 7}]
	}`))
	require.NoError(t, err)
	c, ok := ds.(*Choropleth)
	require.True(t, ok, "got %T", ds)
	assert.Equal(t, KindChoropleth, c.Kind())
	assert.Equal(t, "gdp", c.ValueKey)
	require.Len(t, c.Data(), 3)

	xs, err := sanitize.Column(c.Rows, c.ValueKey)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 7}, xs)
}

func TestDecodeBar(t *testing.T) {
	ds, err := Decode(strings.NewReader(`{
		"kind": "bar",
		"labelKey": "country",
		"valueKeys": ["male", "female"],
		"rows": [{"country": "A", "male": 1, "female": 2}]
	}`))
	require.NoError(t, err)
	b, ok := ds.(*Bar)
	require.True(t, ok, "got %T", ds)
	assert.Equal(t, []string{"male", "female"}, b.ValueKeys)
	assert.Empty(t, b.DateKey)

	ds, err = Decode(strings.NewReader(`{
		"kind": "bar",
		"labelKey": "country",
		"valueKeys": ["gdp"],
		"dateKey": "year",
		"rows": [{"country": "A", "gdp": 1, "year": "2020-01-01"}]
	}`))
	require.NoError(t, err)
	b, ok = ds.(*Bar)
	require.True(t, ok, "got %T", ds)
	assert.Equal(t, []string{"gdp"}, b.ValueKeys)
	assert.Equal(t, "year", b.DateKey)
}

func TestDecodeSlope(t *testing.T) {
	ds, err := Decode(strings.NewReader(`{"kind": "slope", "startKey": "y2000", "endKey": "y2020", "rows": []}`))
	require.NoError(t, err)
	s, ok := ds.(*Slope)
	require.True(t, ok, "got %T", ds)
	assert.Equal(t, KindSlope, s.Kind())
	assert.Equal(t, "y2020", s.EndKey)
}

func TestDecodeInvalid(t *testing.T) {
	for _, in := range []string{
		`not json`,
		`{"kind": "pie", "rows": []}`,
		`{"kind": "choropleth", "rows": []}`,
		`{"kind": "bar", "labelKey": "c", "valueKeys": [], "rows": []}`,
		`{"kind": "bar", "labelKey": "c", "valueKeys": ["a", "b"], "dateKey": "d", "rows": []}`,
		`{"kind": "slope", "startKey": "a", "rows": []}`,
		`{"kind": "choropleth", "valueKey": "v", "rows": [1, 2]}`,
		`[]`,
	} {
		_, err := Decode(strings.NewReader(in))
		assert.True(t, errdefs.IsInvalidArgument(err), "Decode(%s): %v", in, err)
	}
}
