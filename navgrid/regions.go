package navgrid

// labelRegions assigns each walkable cell the index of its 4-connected
// component. Because diagonal moves require both orthogonal neighbors to be
// walkable, 4-connectivity matches what A* can reach.
//
// Time:   O(W·H).
// Memory: O(W·H) for the label slice and queue.
func (g *Grid) labelRegions() {
	total := g.Width * g.Height
	g.region = make([]int, total)
	for i := range g.region {
		g.region[i] = -1
	}
	label := 0
	for i0 := 0; i0 < total; i0++ {
		if !g.walkable[i0] || g.region[i0] >= 0 {
			continue
		}
		// BFS to flood the component
		queue := []int{i0}
		g.region[i0] = label
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range neighborOffsets4 {
				vx, vy := ux+d[0], uy+d[1]
				if !g.Walkable(vx, vy) {
					continue
				}
				vi := g.index(vx, vy)
				if g.region[vi] < 0 {
					g.region[vi] = label
					queue = append(queue, vi)
				}
			}
		}
		label++
	}
	g.regions = label
}

// RegionCount returns the number of disjoint walkable regions.
func (g *Grid) RegionCount() int {
	return g.regions
}

// Region returns the component label of (x,y), or -1 when blocked.
func (g *Grid) Region(x, y int) int {
	if !g.InBounds(x, y) {
		return -1
	}
	return g.region[g.index(x, y)]
}

// Regions returns every walkable component as a slice of cells, ordered by
// label; cells inside a component are in row-major order.
func (g *Grid) Regions() [][]Cell {
	comps := make([][]Cell, g.regions)
	for i, r := range g.region {
		if r < 0 {
			continue
		}
		x, y := g.Coordinate(i)
		comps[r] = append(comps[r], Cell{x, y})
	}
	return comps
}

// SameRegion reports whether two cells are mutually reachable.
func (g *Grid) SameRegion(a, b Cell) bool {
	ra := g.Region(a.X, a.Y)
	return ra >= 0 && ra == g.Region(b.X, b.Y)
}
