package navgrid

import (
	"fmt"
	"math"
	"math/rand"

	astar "github.com/beefsack/go-astar"

	"github.com/katalvlaran/levelforge/geom"
)

// defaultJitterSeed keeps jittered routes reproducible when no source is given.
const defaultJitterSeed int64 = 1

// FindPath returns the lowest-cost route from start to end as cell centers,
// start cell excluded and end cell included. Blocked endpoints are moved to
// the nearest walkable cell within SearchRadius rings; if both resolve to
// the same cell the result is that single center.
//
// Edge weight is step (1 or √2) × destination cost × (1 + U[0, Randomness)).
// The Manhattan heuristic overestimates diagonal-heavy routes, so results
// are close to but not guaranteed optimal.
func (g *Grid) FindPath(start, end geom.Point, opts ...SearchOption) ([]geom.Point, error) {
	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	from, err := g.resolve(start, o.SearchRadius)
	if err != nil {
		return nil, fmt.Errorf("start %v: %w", start, err)
	}
	to, err := g.resolve(end, o.SearchRadius)
	if err != nil {
		return nil, fmt.Errorf("end %v: %w", end, err)
	}
	if from == to {
		return []geom.Point{g.CenterOf(to.X, to.Y)}, nil
	}
	if !g.SameRegion(from, to) {
		return nil, ErrNoPath
	}

	s := &search{
		g:          g,
		nodes:      make([]*node, g.Width*g.Height),
		randomness: o.Randomness,
		rng:        o.Rand,
	}
	if s.randomness > 0 && s.rng == nil {
		s.rng = rand.New(rand.NewSource(defaultJitterSeed))
	}

	steps, _, found := astar.Path(s.node(from), s.node(to))
	if !found {
		return nil, ErrNoPath
	}
	// go-astar returns goal first and start last.
	path := make([]geom.Point, 0, len(steps)-1)
	for i := len(steps) - 2; i >= 0; i-- {
		n := steps[i].(*node)
		path = append(path, g.CenterOf(n.x, n.y))
	}
	return path, nil
}

// resolve maps p to a walkable cell, searching outward when p's cell is blocked.
func (g *Grid) resolve(p geom.Point, radius int) (Cell, error) {
	c, ok := g.CellOf(p)
	if !ok {
		return Cell{}, ErrOutOfBounds
	}
	if w, ok := g.NearestWalkable(c, radius); ok {
		return w, nil
	}
	return Cell{}, ErrNoWalkableCell
}

// NearestWalkable returns c when walkable, otherwise the walkable cell on the
// smallest square ring around c (up to radius) that is closest to c.
func (g *Grid) NearestWalkable(c Cell, radius int) (Cell, bool) {
	if g.Walkable(c.X, c.Y) {
		return c, true
	}
	for r := 1; r <= radius; r++ {
		best, bestD, found := Cell{}, math.Inf(1), false
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r || !g.Walkable(c.X+dx, c.Y+dy) {
					continue
				}
				if d := math.Hypot(float64(dx), float64(dy)); d < bestD {
					best, bestD, found = Cell{c.X + dx, c.Y + dy}, d, true
				}
			}
		}
		if found {
			return best, true
		}
	}
	return Cell{}, false
}

// search holds per-query A* state. nodes interns one *node per cell so that
// go-astar can key its bookkeeping on pointer identity.
type search struct {
	g          *Grid
	nodes      []*node
	randomness float64
	rng        *rand.Rand
}

func (s *search) node(c Cell) *node {
	i := s.g.index(c.X, c.Y)
	if s.nodes[i] == nil {
		s.nodes[i] = &node{x: c.X, y: c.Y, s: s}
	}
	return s.nodes[i]
}

// node is one grid cell as an astar.Pather.
type node struct {
	x, y int
	s    *search
}

// PathNeighbors returns walkable 8-neighbors; a diagonal is only offered
// when both orthogonal cells beside it are walkable.
func (n *node) PathNeighbors() []astar.Pather {
	g := n.s.g
	out := make([]astar.Pather, 0, 8)
	for _, d := range neighborOffsets8 {
		nx, ny := n.x+d[0], n.y+d[1]
		if !g.Walkable(nx, ny) {
			continue
		}
		if d[0] != 0 && d[1] != 0 && (!g.Walkable(n.x+d[0], n.y) || !g.Walkable(n.x, n.y+d[1])) {
			continue
		}
		out = append(out, n.s.node(Cell{nx, ny}))
	}
	return out
}

// PathNeighborCost weights a step by the destination's wall-proximity cost.
func (n *node) PathNeighborCost(to astar.Pather) float64 {
	t := to.(*node)
	step := 1.0
	if t.x != n.x && t.y != n.y {
		step = math.Sqrt2
	}
	w := step * n.s.g.cost[n.s.g.index(t.x, t.y)]
	if n.s.randomness > 0 {
		w *= 1 + n.s.rng.Float64()*n.s.randomness
	}
	return w
}

// PathEstimatedCost is the Manhattan distance in cells.
func (n *node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*node)
	return float64(abs(t.x-n.x) + abs(t.y-n.y))
}
