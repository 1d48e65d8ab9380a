package metrics

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/reveng-lab/decompeval/internal/compare"
)

// DefaultCacheSize bounds the selection cache when the caller does not
// choose a size. A metrics pass touches at most a handful of keys per
// comparison (two orientations times two granularities), so a small
// bound is plenty.
const DefaultCacheSize = 64

type recordKey struct {
	cmp         compare.Key
	granularity Granularity
}

// Cache memoizes the expensive selections of a metrics session: the
// comparable-record sets per granularity and the array comparison set.
// Keys combine the comparison identity with its orientation, so flipped
// views never alias. The cache is safe for concurrent use; recomputing
// a key is idempotent, so duplicated work under contention is wasteful
// but never wrong.
type Cache struct {
	records *lru.Cache[recordKey, []*compare.VarnodeCompareRecord]
	arrays  *lru.Cache[compare.Key, []*compare.VarnodeCompare2]
}

// NewCache builds a cache bounded to size entries per selection kind.
// Non-positive sizes fall back to DefaultCacheSize.
func NewCache(size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	records, _ := lru.New[recordKey, []*compare.VarnodeCompareRecord](size)
	arrays, _ := lru.New[compare.Key, []*compare.VarnodeCompare2](size)
	return &Cache{records: records, arrays: arrays}
}

func (c *Cache) comparableRecords(key recordKey, build func() []*compare.VarnodeCompareRecord) []*compare.VarnodeCompareRecord {
	if cached, ok := c.records.Get(key); ok {
		return cached
	}
	result := build()
	c.records.Add(key, result)
	return result
}

func (c *Cache) arrayComparisons(key compare.Key, build func() []*compare.VarnodeCompare2) []*compare.VarnodeCompare2 {
	if cached, ok := c.arrays.Get(key); ok {
		return cached
	}
	result := build()
	c.arrays.Add(key, result)
	return result
}
