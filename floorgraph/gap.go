package floorgraph

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/levelforge/level"
)

// ClosestEdges returns the boundary-edge pair of a and b whose midpoints are
// closest. ok is false when either floor has no edge.
func ClosestEdges(a, b level.Floor) (gap Gap, ok bool) {
	best := math.Inf(1)
	for _, ea := range a.Polygon.Edges() {
		ma := ea.Mid()
		for _, eb := range b.Polygon.Edges() {
			if d := ma.Distance(eb.Mid()); d < best {
				best = d
				gap = Gap{FloorA: a, FloorB: b, EdgeA: NewEdge(ea), EdgeB: NewEdge(eb), Distance: d}
				ok = true
			}
		}
	}
	return gap, ok
}

// FindGap keeps the globally closest ClosestEdges result over every pair in
// floorsA × floorsB. Ties keep the first pair found.
func FindGap(floorsA, floorsB []level.Floor) (*Gap, error) {
	var (
		best  Gap
		found bool
	)
	for _, fa := range floorsA {
		for _, fb := range floorsB {
			g, ok := ClosestEdges(fa, fb)
			if ok && (!found || g.Distance < best.Distance) {
				best, found = g, true
			}
		}
	}
	if !found {
		return nil, ErrNoGap
	}
	return &best, nil
}

// GapBetween runs FindGap over the floors of g whose ids are in setA and setB.
func GapBetween(g *Graph, setA, setB mapset.Set[int]) (*Gap, error) {
	return FindGap(g.Floors(setA), g.Floors(setB))
}
