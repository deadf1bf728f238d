// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"math"

	"github.com/aclements/go-chartscale/errdefs"
)

// Jenks partitions sorted into k contiguous classes minimizing the sum
// of squared deviations from the class means. It returns k+1 bounds:
// the minimum, the upper value of each of the first k-1 classes, and the
// maximum.
//
// sorted must be in ascending order and hold at least k values.
func Jenks(sorted []float64, k int) ([]float64, error) {
	if k < 1 {
		return nil, errdefs.InvalidArgumentf("k must be >= 1, got %d", k)
	}
	n := len(sorted)
	if n == 0 {
		return nil, errdefs.EmptySamplef("no values to classify")
	}
	if k > n {
		return nil, errdefs.InvalidArgumentf("%d classes requested for %d values", k, n)
	}

	lower := jenksMatrices(sorted, k)

	bounds := make([]float64, k+1)
	bounds[0], bounds[k] = sorted[0], sorted[n-1]
	// Walk back from the last class. lower[l][j] is the 1-based index
	// of the first value of class j when the first l values are split
	// into j classes, so the value just before it closes class j-1.
	l := n
	for j := k; j > 1; j-- {
		first := lower[l][j]
		if first < 2 {
			// More classes left than leading values.
			for ; j > 1; j-- {
				bounds[j-1] = sorted[0]
			}
			break
		}
		bounds[j-1] = sorted[first-2]
		l = first - 1
	}
	return bounds, nil
}

// jenksMatrices fills the lower class limit matrix. Rows are indexed by
// the number of leading values considered (1..n), columns by the number
// of classes (1..k).
func jenksMatrices(data []float64, k int) [][]int {
	n := len(data)
	lower := make([][]int, n+1)
	variance := make([][]float64, n+1)
	for i := range lower {
		lower[i] = make([]int, k+1)
		variance[i] = make([]float64, k+1)
	}
	for j := 1; j <= k; j++ {
		lower[1][j] = 1
		for i := 2; i <= n; i++ {
			variance[i][j] = math.Inf(1)
		}
	}

	for l := 2; l <= n; l++ {
		var sum, sumSq, w, v float64
		for m := 1; m <= l; m++ {
			first := l - m + 1
			x := data[first-1]
			w++
			sum += x
			sumSq += x * x
			v = sumSq - sum*sum/w
			prev := first - 1
			if prev == 0 {
				continue
			}
			for j := 2; j <= k; j++ {
				if c := v + variance[prev][j-1]; variance[l][j] >= c {
					lower[l][j] = first
					variance[l][j] = c
				}
			}
		}
		lower[l][1] = 1
		variance[l][1] = v
	}
	return lower
}
