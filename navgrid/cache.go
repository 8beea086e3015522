package navgrid

import (
	"sync"

	"github.com/katalvlaran/levelforge/level"
)

// Cache keeps the most recent Grid per layer, keyed by snapshot document and
// revision. A snapshot from another document or at another revision forces a
// rebuild on the next Get.
// Cache is safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	cellSize float64
	opts     []BuildOption
	entries  map[int]cacheEntry
	builds   int
}

type cacheEntry struct {
	doc      uint64
	revision uint64
	grid     *Grid
	err      error
}

// NewCache returns an empty cache building grids with cellSize and opts.
func NewCache(cellSize float64, opts ...BuildOption) *Cache {
	return &Cache{
		cellSize: cellSize,
		opts:     opts,
		entries:  make(map[int]cacheEntry),
	}
}

// Get returns the grid for layer at s.Revision, building it if needed.
// Build failures (e.g. ErrNoFloors) are cached for the same revision too.
func (c *Cache) Get(s level.Snapshot, layer int) (*Grid, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[layer]; ok && e.doc == s.Doc && e.revision == s.Revision {
		return e.grid, e.err
	}
	g, err := BuildSnapshot(s, layer, c.cellSize, c.opts...)
	c.builds++
	c.entries[layer] = cacheEntry{doc: s.Doc, revision: s.Revision, grid: g, err: err}
	return g, err
}

// Invalidate drops every cached grid.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[int]cacheEntry)
}

// Builds reports how many grids the cache has built.
func (c *Cache) Builds() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.builds
}
