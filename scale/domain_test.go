// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDomain(t *testing.T) {
	for _, tc := range []struct {
		name    string
		opts    DomainOptions
		samples [][]float64
		want    Domain
	}{
		{"positive", DomainOptions{}, [][]float64{{5, 10, 20}}, Domain{0, 20}},
		{"negative", DomainOptions{}, [][]float64{{-20, -10, -5}}, Domain{-20, 0}},
		{"mixed", DomainOptions{}, [][]float64{{-3, 4, 8}}, Domain{-3, 8}},
		{"zeros", DomainOptions{}, [][]float64{{0, 0}}, Domain{0, 0}},
		{"min override", DomainOptions{Min: Float(-100)}, [][]float64{{5, 10, 20}}, Domain{-100, 20}},
		{"max override", DomainOptions{Max: Float(50)}, [][]float64{{5, 10, 20}}, Domain{0, 50}},
		{"both overrides", DomainOptions{Min: Float(1), Max: Float(2)}, nil, Domain{1, 2}},
		{"dual extent", DomainOptions{}, [][]float64{{3, 7}, {-2, 12}}, Domain{-2, 12}},
		{"empty sample skipped", DomainOptions{}, [][]float64{{}, {4}}, Domain{0, 4}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveDomain(tc.opts, tc.samples...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolveDomainEmpty(t *testing.T) {
	_, err := ResolveDomain(DomainOptions{})
	assert.True(t, errdefs.IsEmptySample(err))
	_, err = ResolveDomain(DomainOptions{Min: Float(0)}, []float64{})
	assert.True(t, errdefs.IsEmptySample(err))
}

func TestDomainTicks(t *testing.T) {
	d := Domain{0, 20}
	ticks, err := d.Ticks(5, false)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(ticks), 5)
	assert.True(t, slices.IsSorted(ticks), "ticks %v not sorted", ticks)
	assert.Contains(t, ticks, 0.0)
	assert.Contains(t, ticks, 10.0)
	assert.Contains(t, ticks, 20.0)
	for _, x := range ticks {
		assert.True(t, x >= 0 && x <= 20, "tick %v outside %v", x, d)
	}

	noZero, err := d.Ticks(5, true)
	require.NoError(t, err)
	assert.NotContains(t, noZero, 0.0)
	assert.Len(t, noZero, len(ticks)-1)

	neg, err := Domain{-20, 0}.Ticks(5, true)
	require.NoError(t, err)
	assert.Contains(t, neg, -10.0)
	assert.NotContains(t, neg, 0.0)
}

func TestDomainTicksDegenerate(t *testing.T) {
	ticks, err := Domain{3, 3}.Ticks(5, false)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, ticks)

	ticks, err = Domain{0, 0}.Ticks(5, true)
	require.NoError(t, err)
	assert.Empty(t, ticks)
}

func TestDomainTicksInvalid(t *testing.T) {
	_, err := Domain{0, 1}.Ticks(0, false)
	assert.True(t, errdefs.IsInvalidArgument(err))
}

func TestDomainTicksTable(t *testing.T) {
	for _, tc := range []struct {
		d        Domain
		count    int
		omitZero bool
		want     []float64
	}{
		{Domain{0, 20}, 5, false, []float64{0, 5, 10, 15, 20}},
		{Domain{0, 20}, 3, false, []float64{0, 10, 20}},
		{Domain{0, 20}, 1, false, []float64{0, 20}},
		{Domain{0, 20}, 1, true, []float64{10, 20}},
		{Domain{0, 20}, 2, true, []float64{10, 20}},
		{Domain{-3, 7}, 3, false, []float64{0, 5}},
		{Domain{-3, 7}, 3, true, []float64{-2, 2, 4, 6}},
		{Domain{-3, 7}, 5, true, []float64{-2, 2, 4, 6}},
		{Domain{-20, 0}, 3, true, []float64{-20, -10}},
		{Domain{-1, 1}, 2, true, []float64{-1, 1}},
		{Domain{-1, 1}, 1, true, []float64{-1, 1}},
		{Domain{0, 0.062}, 5, false, []float64{0, 0.02, 0.04, 0.06}},
		{Domain{0, 0.3}, 4, true, []float64{0.1, 0.2, 0.3}},
		{Domain{0, 3456789}, 5, true, []float64{1e6, 2e6, 3e6}},
		{Domain{7, 3}, 3, false, []float64{4, 6}},
	} {
		got, err := tc.d.Ticks(tc.count, tc.omitZero)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v.Ticks(%d, %v)", tc.d, tc.count, tc.omitZero)
	}
}

func TestDomainTicksNegativeZero(t *testing.T) {
	ticks, err := Domain{-10, 0}.Ticks(2, false)
	require.NoError(t, err)
	require.Equal(t, []float64{-10, 0}, ticks)
	assert.False(t, math.Signbit(ticks[1]), "tick 0 has a sign bit")

	ticks, err = Domain{math.Copysign(0, -1), math.Copysign(0, -1)}.Ticks(5, false)
	require.NoError(t, err)
	require.Len(t, ticks, 1)
	assert.False(t, math.Signbit(ticks[0]), "tick 0 has a sign bit")
}

func TestDomainTicksAtLeastTwo(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 500; i++ {
		lo := (r.Float64() - 0.5) * math.Pow(10, float64(r.Intn(12)-6))
		hi := lo + (0.01+r.Float64())*math.Pow(10, float64(r.Intn(12)-6))
		d := Domain{lo, hi}
		for _, omitZero := range []bool{false, true} {
			count := 1 + r.Intn(7)
			ticks, err := d.Ticks(count, omitZero)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(ticks), 2, "%v.Ticks(%d, %v) = %v", d, count, omitZero, ticks)
			assert.True(t, slices.IsSorted(ticks), "%v.Ticks(%d, %v) = %v", d, count, omitZero, ticks)
			for _, x := range ticks {
				assert.True(t, x >= lo && x <= hi, "tick %v outside %v", x, d)
			}
		}
	}
}

func TestDomainNotFinite(t *testing.T) {
	for _, d := range []Domain{
		{-1.7e308, 1.7e308},
		{0, math.Inf(1)},
		{math.Inf(-1), 0},
		{math.NaN(), 1},
	} {
		_, err := d.Ticks(5, false)
		assert.True(t, errdefs.IsInvalidArgument(err), "%v: %v", d, err)

		_, err = ResolveDomain(DomainOptions{Min: Float(d.Lo), Max: Float(d.Hi)})
		assert.True(t, errdefs.IsInvalidArgument(err), "%v: %v", d, err)
	}

	_, err := ResolveDomain(DomainOptions{}, []float64{-1.7e308, 1.7e308})
	assert.True(t, errdefs.IsInvalidArgument(err))

	major, minor := NewLinear(Domain{-1.7e308, 1.7e308}).Ticks(5)
	assert.Empty(t, major)
	assert.Empty(t, minor)
}
