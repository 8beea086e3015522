package navgrid

import (
	"math"

	"github.com/katalvlaran/levelforge/geom"
)

// Simplify keeps a subset of path (order preserved, both endpoints kept)
// such that each retained point jumps to the farthest later point reachable
// in a straight line. A segment is clear when every sample taken every step
// pixels lies on a floor according to walk. When no farther point is clear
// the next point is kept as-is.
//
// Complexity: O(n² × L/step) predicate calls in the worst case.
func Simplify(path []geom.Point, walk Walkable, step float64) []geom.Point {
	if len(path) <= 2 || walk == nil || step <= 0 {
		return append([]geom.Point(nil), path...)
	}
	out := []geom.Point{path[0]}
	for i := 0; i < len(path)-1; {
		next := i + 1
		for j := len(path) - 1; j > i+1; j-- {
			if LineOfSight(path[i], path[j], walk, step) {
				next = j
				break
			}
		}
		out = append(out, path[next])
		i = next
	}
	return out
}

// Simplify runs Simplify against the floors g was built from, sampling every
// half cell.
func (g *Grid) Simplify(path []geom.Point) []geom.Point {
	return Simplify(path, g.floors, g.CellSize/2)
}

// LineOfSight reports whether every interior sample of a→b, spaced at most
// step apart, satisfies walk.
func LineOfSight(a, b geom.Point, walk Walkable, step float64) bool {
	n := int(math.Ceil(a.Distance(b) / step))
	for i := 1; i < n; i++ {
		if !walk.Contains(a.Lerp(b, float64(i)/float64(n))) {
			return false
		}
	}
	return true
}

// PathLength returns the polyline length of points.
func PathLength(points []geom.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += points[i-1].Distance(points[i])
	}
	return total
}
