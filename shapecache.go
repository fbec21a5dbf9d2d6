package rangehighlight

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

// ShapeCache memoizes generated shapes. Shapes are immutable, so a cached
// value can be handed to any number of highlighters.
type ShapeCache struct {
	cache *ristretto.Cache[uint64, Shape]
}

// NewShapeCache creates a cache bounded by the total number of grid cells it
// may hold.
func NewShapeCache(maxCells int64) (*ShapeCache, error) {
	if maxCells <= 0 {
		maxCells = 1 << 16
	}
	c, err := ristretto.NewCache(&ristretto.Config[uint64, Shape]{
		NumCounters: 10000,
		MaxCost:     maxCells,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("new shape cache: %w", err)
	}
	return &ShapeCache{cache: c}, nil
}

func shapeKey(m Metric, radius int, excludeCenter bool) uint64 {
	k := uint64(uint32(radius))<<16 | uint64(m)<<1
	if excludeCenter {
		k |= 1
	}
	return k
}

// Get returns the shape for (m, radius, excludeCenter), generating and storing
// it on a miss. The cache may decline to admit an entry; the result is
// identical either way.
func (c *ShapeCache) Get(m Metric, radius int, excludeCenter bool) Shape {
	radius = max(radius, 0)
	key := shapeKey(m, radius, excludeCenter)
	if s, ok := c.cache.Get(key); ok {
		return s
	}
	s := GenerateShape(radius, excludeCenter, m)
	c.cache.Set(key, s, int64(len(s.cells)))
	c.cache.Wait()
	return s
}

// Close stops the cache's background goroutines.
func (c *ShapeCache) Close() {
	c.cache.Close()
}
