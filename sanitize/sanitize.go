// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sanitize turns loosely typed tabular values into numeric
// samples, dropping missing values before any aggregation sees them.
package sanitize

import (
	"encoding/json"
	"math"
	"reflect"

	"github.com/aclements/go-chartscale/errdefs"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
)

// A Row is one record of tabular data, keyed by column name.
type Row map[string]any

// IsMissing reports whether v is absent: a nil interface or a nil
// pointer, map, slice, interface, func or chan.
//
// NaN, the empty string and zero are present values.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Floats drops the missing values in vs and converts the rest to
// float64. Pointers are dereferenced. A value that has no numeric
// interpretation, or that is infinite, is an invalid argument. NaN is
// kept; consumers that cannot order it reject it themselves.
func Floats(vs []any) ([]float64, error) {
	out := make([]float64, 0, len(vs))
	for i, v := range vs {
		if IsMissing(v) {
			continue
		}
		x, err := toFloat(deref(v))
		if err != nil {
			return nil, errdefs.InvalidArgumentf("value %d (%v): %v", i, v, err)
		}
		if math.IsInf(x, 0) {
			return nil, errdefs.InvalidArgumentf("value %d (%v) is infinite", i, v)
		}
		out = append(out, x)
	}
	return out, nil
}

// Column extracts the key column of rows as a sample. Rows that lack
// the key are treated like rows holding nil.
func Column(rows []Row, key string) ([]float64, error) {
	vs := make([]any, len(rows))
	for i, r := range rows {
		vs[i] = r[key]
	}
	xs, err := Floats(vs)
	if err != nil {
		return nil, errors.Wrapf(err, "column %q", key)
	}
	return xs, nil
}

func toFloat(v any) (float64, error) {
	if n, ok := v.(json.Number); ok {
		return n.Float64()
	}
	return cast.ToFloat64E(v)
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	return rv.Interface()
}
