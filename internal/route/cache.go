package route

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/samdwyer/officenav/internal/geom"
	"github.com/samdwyer/officenav/internal/navgrid"
)

// gridCache holds built grids keyed by a hash of everything that feeds
// navgrid.Build. Grids are never mutated after Build, so a cached grid may
// back several concurrent searches.
type gridCache struct {
	mu    sync.Mutex
	limit int
	grids map[uint64]*navgrid.Grid
	order []uint64 // insertion order, oldest first
}

func newGridCache(limit int) *gridCache {
	return &gridCache{
		limit: limit,
		grids: make(map[uint64]*navgrid.Grid, limit),
	}
}

func (c *gridCache) get(key uint64) (*navgrid.Grid, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.grids[key]
	return g, ok
}

func (c *gridCache) put(key uint64, g *navgrid.Grid) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.grids[key]; ok {
		return
	}
	if len(c.order) >= c.limit {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.grids, oldest)
	}
	c.grids[key] = g
	c.order = append(c.order, key)
}

func (c *gridCache) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.grids)
}

// gridKey hashes the floor dimensions, cell size, buffer and obstacles in
// order.
func gridKey(obstacles []geom.Rect, width, height, size, buffer float64) uint64 {
	buf := make([]byte, 0, 8*(4+4*len(obstacles)))
	for _, v := range [...]float64{width, height, size, buffer} {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
	}
	for _, o := range obstacles {
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(o.X))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(o.Y))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(o.Width))
		buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(o.Height))
	}
	return xxhash.Sum64(buf)
}
