package corridor

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levelforge/floorgraph"
	"github.com/katalvlaran/levelforge/geom"
)

const eps = 1e-9

// Extrude builds the corridor pieces that close gap: one rectangle when the
// two slots face along the same axis, an L of up to three rectangles
// otherwise.
func Extrude(gap *floorgraph.Gap, width float64) ([]geom.Polygon, error) {
	a, err := FindSlot(gap.FloorA, gap.FloorB, width)
	if err != nil {
		return nil, err
	}
	b, err := FindSlot(gap.FloorB, gap.FloorA, width)
	if err != nil {
		return nil, err
	}
	if a.Direction.Horizontal() != b.Direction.Horizontal() {
		return WithBends(a, b, width)
	}
	p, err := Straight(a, b, width)
	if err != nil {
		return nil, err
	}
	return []geom.Polygon{p}, nil
}

// Straight returns a width-wide rectangle between two slots facing along the
// same axis. Its two short sides lie on the slots' edge lines.
func Straight(a, b *Slot, width float64) (geom.Polygon, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadWidth, width)
	}
	if a.Direction.Horizontal() != b.Direction.Horizontal() {
		return nil, fmt.Errorf("%w: %s and %s slots need a bend", ErrDegenerate, a.Direction, b.Direction)
	}
	half := width / 2
	if a.Direction.Horizontal() {
		if math.Abs(a.Mid.X-b.Mid.X) < eps {
			return nil, fmt.Errorf("%w: both slots at x=%v", ErrDegenerate, a.Mid.X)
		}
		aLo, aHi := span(a.Edge.A.Y, a.Edge.B.Y)
		bLo, bHi := span(b.Edge.A.Y, b.Edge.B.Y)
		cy := crossCenter(aLo, aHi, bLo, bHi, (a.Mid.Y+b.Mid.Y)/2, width)
		return geom.NewRect(a.Mid.X, cy-half, b.Mid.X, cy+half).Polygon(), nil
	}
	if math.Abs(a.Mid.Y-b.Mid.Y) < eps {
		return nil, fmt.Errorf("%w: both slots at y=%v", ErrDegenerate, a.Mid.Y)
	}
	aLo, aHi := span(a.Edge.A.X, a.Edge.B.X)
	bLo, bHi := span(b.Edge.A.X, b.Edge.B.X)
	cx := crossCenter(aLo, aHi, bLo, bHi, (a.Mid.X+b.Mid.X)/2, width)
	return geom.NewRect(cx-half, a.Mid.Y, cx+half, b.Mid.Y).Polygon(), nil
}

// crossCenter places a width-wide corridor across two ranges: inside their
// overlap, nearest to pref, when it fits; otherwise on the union midpoint.
func crossCenter(aLo, aHi, bLo, bHi, pref, width float64) float64 {
	lo, hi := max(aLo, bLo), min(aHi, bHi)
	if hi-lo >= width {
		half := width / 2
		return min(max(pref, lo+half), hi-half)
	}
	return (min(aLo, bLo) + max(aHi, bHi)) / 2
}

func span(p, q float64) (lo, hi float64) {
	return min(p, q), max(p, q)
}

// WithBends joins a horizontal-facing slot and a vertical-facing slot with an
// L: a leg out of a, a width×width bend square, a leg into b. The bend sits
// on the horizontal slot's centre line and the vertical slot's centre
// column. Legs share exact edges with the bend; a leg of zero length is
// left out.
func WithBends(a, b *Slot, width float64) ([]geom.Polygon, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrBadWidth, width)
	}
	if a.Direction.Horizontal() == b.Direction.Horizontal() {
		return nil, fmt.Errorf("%w: %s and %s slots need a straight corridor", ErrDegenerate, a.Direction, b.Direction)
	}
	h, v := a, b
	if !h.Direction.Horizontal() {
		h, v = b, a
	}
	half := width / 2
	bx, by := v.Mid.X, h.Mid.Y
	bend := geom.NewRect(bx-half, by-half, bx+half, by+half)

	var legH, legV geom.Polygon
	switch {
	case h.Mid.X < bend.MinX:
		legH = geom.NewRect(h.Mid.X, bend.MinY, bend.MinX, bend.MaxY).Polygon()
	case h.Mid.X > bend.MaxX:
		legH = geom.NewRect(bend.MaxX, bend.MinY, h.Mid.X, bend.MaxY).Polygon()
	}
	switch {
	case v.Mid.Y < bend.MinY:
		legV = geom.NewRect(bend.MinX, v.Mid.Y, bend.MaxX, bend.MinY).Polygon()
	case v.Mid.Y > bend.MaxY:
		legV = geom.NewRect(bend.MinX, bend.MaxY, bend.MaxX, v.Mid.Y).Polygon()
	}

	first, last := legH, legV
	if h != a {
		first, last = legV, legH
	}
	out := make([]geom.Polygon, 0, 3)
	if first != nil {
		out = append(out, first)
	}
	out = append(out, bend.Polygon())
	if last != nil {
		out = append(out, last)
	}
	return out, nil
}
