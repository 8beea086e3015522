package navgrid

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// neighborOffsets8 lists N, NE, E, SE, S, SW, W, NW.
var neighborOffsets8 = [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

// neighborOffsets4 lists N, E, S, W.
var neighborOffsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// BuildSnapshot indexes the floor-bearing objects of layer in s and builds a
// Grid stamped with the snapshot revision.
func BuildSnapshot(s level.Snapshot, layer int, cellSize float64, opts ...BuildOption) (*Grid, error) {
	idx, err := level.NewFloorIndex(s, layer)
	if err != nil {
		return nil, err
	}
	g, err := Build(idx, cellSize, opts...)
	if err != nil {
		return nil, err
	}
	g.Revision = s.Revision
	return g, nil
}

// Build rasterizes idx into a Grid. The bounding box of all floors is padded
// by Padding cells; each cell is walkable when its center satisfies
// idx.Contains. Returns ErrNoFloors for an empty index.
// Complexity: O(W×H×F) time, O(W×H) memory.
func Build(idx *level.FloorIndex, cellSize float64, opts ...BuildOption) (*Grid, error) {
	o := DefaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if cellSize <= 0 || math.IsNaN(cellSize) {
		return nil, fmt.Errorf("%w: %v", ErrBadCellSize, cellSize)
	}
	bounds, ok := idx.Bounds()
	if !ok {
		return nil, fmt.Errorf("%w: layer %d", ErrNoFloors, idx.Layer())
	}
	bounds = bounds.Expand(float64(o.Padding) * cellSize)

	w := int(math.Ceil(bounds.Width() / cellSize))
	h := int(math.Ceil(bounds.Height() / cellSize))
	w, h = max(w, 1), max(h, 1)

	g := &Grid{
		Width:    w,
		Height:   h,
		CellSize: cellSize,
		Origin:   geom.Pt(bounds.MinX, bounds.MinY),
		Layer:    idx.Layer(),
		walkable: make([]bool, w*h),
		cost:     make([]float64, w*h),
		floors:   idx,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.walkable[g.index(x, y)] = idx.Contains(g.CenterOf(x, y))
		}
	}
	g.fillCosts(o.NearWallCost, o.MidWallCost)
	g.labelRegions()

	return g, nil
}

// fillCosts assigns 1 to open cells and raises cells near blocked ones.
// Cells outside the grid count as blocked.
func (g *Grid) fillCosts(near, mid float64) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			i := g.index(x, y)
			if !g.walkable[i] {
				g.cost[i] = math.Inf(1)
				continue
			}
			c := 1.0
			switch g.wallDistance(x, y, 2) {
			case 1:
				c = math.Max(c, near)
			case 2:
				c = math.Max(c, mid)
			}
			g.cost[i] = c
		}
	}
}

// wallDistance returns the Chebyshev distance to the closest blocked cell,
// or 0 when none lies within limit.
func (g *Grid) wallDistance(x, y, limit int) int {
	for d := 1; d <= limit; d++ {
		for dy := -d; dy <= d; dy++ {
			for dx := -d; dx <= d; dx++ {
				if max(abs(dx), abs(dy)) != d {
					continue
				}
				if !g.Walkable(x+dx, y+dy) {
					return d
				}
			}
		}
	}
	return 0
}

// InBounds reports whether (x,y) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Walkable reports whether (x,y) is inside the grid and on a floor.
func (g *Grid) Walkable(x, y int) bool {
	return g.InBounds(x, y) && g.walkable[g.index(x, y)]
}

// Cost returns the movement multiplier of (x,y); +Inf when blocked or out of bounds.
func (g *Grid) Cost(x, y int) float64 {
	if !g.InBounds(x, y) {
		return math.Inf(1)
	}
	return g.cost[g.index(x, y)]
}

// CellOf maps a world point to its cell. ok is false outside the grid.
func (g *Grid) CellOf(p geom.Point) (c Cell, ok bool) {
	x := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	y := int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	return Cell{x, y}, g.InBounds(x, y)
}

// CenterOf returns the world coordinates of the center of (x,y).
func (g *Grid) CenterOf(x, y int) geom.Point {
	return geom.Pt(
		g.Origin.X+(float64(x)+0.5)*g.CellSize,
		g.Origin.Y+(float64(y)+0.5)*g.CellSize,
	)
}

// WalkableCount returns the number of walkable cells.
func (g *Grid) WalkableCount() int {
	n := 0
	for _, w := range g.walkable {
		if w {
			n++
		}
	}
	return n
}

// Floors returns the predicate the grid was rasterized from.
func (g *Grid) Floors() Walkable {
	return g.floors
}

// index maps (x,y) to a row-major index: y*Width + x.
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
