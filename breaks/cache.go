// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package breaks

import (
	"encoding/binary"
	"math"
	"slices"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/patrickmn/go-cache"
)

// A Cache memoizes Classify results keyed on the sample values and the
// number of classes. It is safe for concurrent use.
type Cache struct {
	c *cache.Cache
}

type cacheEntry struct {
	sample []float64
	breaks []float64
}

// NewCache returns a cache whose entries expire after ttl. A ttl <= 0
// keeps entries until the cache is discarded.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{cache.New(cache.NoExpiration, 0)}
	}
	return &Cache{cache.New(ttl, 2*ttl)}
}

// Classify is like the package-level Classify, but returns a stored
// result for a sample it has seen before. Errors are not cached.
func (c *Cache) Classify(sample []float64, noOfSteps int) ([]float64, error) {
	key := cacheKey(sample, noOfSteps)
	if v, ok := c.c.Get(key); ok {
		// Hash collisions fall through and replace the entry.
		if e := v.(cacheEntry); slices.Equal(e.sample, sample) {
			return slices.Clone(e.breaks), nil
		}
	}
	out, err := Classify(sample, noOfSteps)
	if err != nil {
		return nil, err
	}
	c.c.Set(key, cacheEntry{slices.Clone(sample), slices.Clone(out)}, cache.DefaultExpiration)
	return out, nil
}

// Len returns the number of cached break sets, including expired ones
// that have not been cleaned up yet.
func (c *Cache) Len() int {
	return c.c.ItemCount()
}

func cacheKey(sample []float64, noOfSteps int) string {
	buf := make([]byte, 0, 8*(len(sample)+1))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(noOfSteps))
	for _, x := range sample {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(x))
	}
	var key [8]byte
	binary.LittleEndian.PutUint64(key[:], xxhash.Sum64(buf))
	return string(key[:])
}
