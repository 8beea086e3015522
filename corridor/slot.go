package corridor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// FindSlot returns the attachment slot on floor that best faces target.
// Each edge at least width long is scored by the dot product of its outward
// normal with the unit direction from the edge midpoint to target's
// centroid; the highest score wins, ties keep the earlier edge.
func FindSlot(floor, target level.Floor, width float64) (*Slot, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadWidth, width)
	}
	goal := target.Centroid()
	var (
		best  *Slot
		score = math.Inf(-1)
	)
	for i, e := range floor.Polygon.Edges() {
		if e.Length() < width {
			continue
		}
		mid := e.Mid()
		n := floor.Polygon.OutwardNormal(i)
		dot := n.Dot(goal.Sub(mid).Normalize())
		if dot <= score {
			continue
		}
		half := e.Direction().Scale(width / 2)
		score = dot
		best = &Slot{
			Floor:     floor,
			Edge:      e,
			Span:      geom.Segment{A: mid.Sub(half), B: mid.Add(half)},
			Mid:       mid,
			Normal:    n,
			Direction: directionOf(n),
			Alignment: dot,
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: floor %s, width %.0f px", ErrNoSlot, floor.Name(), width)
	}
	return best, nil
}
