package floorgraph

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/levelforge/level"
)

// Graph is an undirected floor adjacency graph keyed by object id.
// It is immutable once built.
type Graph struct {
	ids    []int // insertion order
	floors map[int]level.Floor
	adj    map[int]mapset.Set[int]
}

// Build links every pair of floors that share a vertex within the tolerance,
// plus any WithLink pairs. Floors with duplicate ids keep the first occurrence.
func Build(floors []level.Floor, opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &Graph{
		ids:    make([]int, 0, len(floors)),
		floors: make(map[int]level.Floor, len(floors)),
		adj:    make(map[int]mapset.Set[int], len(floors)),
	}
	for _, f := range floors {
		if _, dup := g.floors[f.ID]; dup {
			continue
		}
		g.ids = append(g.ids, f.ID)
		g.floors[f.ID] = f
		g.adj[f.ID] = mapset.New[int]()
	}
	for i := 0; i < len(g.ids); i++ {
		for j := i + 1; j < len(g.ids); j++ {
			a, b := g.floors[g.ids[i]], g.floors[g.ids[j]]
			if touches(a, b, o.Tolerance) || (o.EdgeContact && (onEdge(a, b, o.Tolerance) || onEdge(b, a, o.Tolerance))) {
				g.adj[a.ID].Put(b.ID)
				g.adj[b.ID].Put(a.ID)
			}
		}
	}
	for _, l := range o.Links {
		if l[0] != l[1] && g.Has(l[0]) && g.Has(l[1]) {
			g.adj[l[0]].Put(l[1])
			g.adj[l[1]].Put(l[0])
		}
	}
	return g, nil
}

// BuildIndex builds the graph over every floor of idx.
func BuildIndex(idx *level.FloorIndex, opts ...Option) (*Graph, error) {
	return Build(idx.Floors(), opts...)
}

// touches reports whether some vertex pair across a and b is within tol.
func touches(a, b level.Floor, tol float64) bool {
	for _, p := range a.Polygon {
		for _, q := range b.Polygon {
			if p.Distance(q) <= tol {
				return true
			}
		}
	}
	return false
}

// onEdge reports whether some vertex of a lies within tol of an edge of b.
func onEdge(a, b level.Floor, tol float64) bool {
	edges := b.Polygon.Edges()
	for _, p := range a.Polygon {
		for _, e := range edges {
			if e.DistanceTo(p) <= tol {
				return true
			}
		}
	}
	return false
}

// Len returns the number of floors.
func (g *Graph) Len() int { return len(g.ids) }

// IDs returns floor ids in the order they were given to Build.
func (g *Graph) IDs() []int {
	return append([]int(nil), g.ids...)
}

// Has reports whether id is a vertex.
func (g *Graph) Has(id int) bool {
	_, ok := g.floors[id]
	return ok
}

// Floor returns the outline behind id.
func (g *Graph) Floor(id int) (level.Floor, bool) {
	f, ok := g.floors[id]
	return f, ok
}

// Neighbors returns the ids adjacent to id in ascending order, or nil when
// id is unknown.
func (g *Graph) Neighbors(id int) []int {
	set, ok := g.adj[id]
	if !ok {
		return nil
	}
	out := make([]int, 0, set.Size())
	set.Each(func(n int) { out = append(out, n) })
	slices.Sort(out)
	return out
}

// Degree returns the number of floors adjacent to id.
func (g *Graph) Degree(id int) int {
	set, ok := g.adj[id]
	if !ok {
		return 0
	}
	return set.Size()
}

// HasEdge reports whether a and b are adjacent.
func (g *Graph) HasEdge(a, b int) bool {
	set, ok := g.adj[a]
	return ok && set.Has(b)
}

// Floors returns the floors whose ids are in set, in graph order.
func (g *Graph) Floors(set mapset.Set[int]) []level.Floor {
	out := make([]level.Floor, 0, set.Size())
	for _, id := range g.ids {
		if set.Has(id) {
			out = append(out, g.floors[id])
		}
	}
	return out
}
