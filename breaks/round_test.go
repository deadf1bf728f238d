// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"math"
	"testing"
)

func TestRound(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{0, 0},
		{0.456, 0.46},
		{-0.456, -0.46},
		{0.05, 0.05},
		{0.0123, 0.012},
		{0.999, 1},
		{45.6, 46},
		{-45.6, -46},
		{1.56, 1},
		{9.96, 10},
		{1234, 1200},
		{1250, 1300},
		{987654, 990000},
	} {
		if got := Round(tc.in); got != tc.want {
			t.Errorf("Round(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if got := Round(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Round(NaN) = %v, want NaN", got)
	}
}
