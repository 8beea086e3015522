package corridor

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// Between lays an orthogonal corridor from start to end, as drawn with the
// drag tool. The longer axis is walked first, so the route is one leg when
// the drag is axis-aligned and an L otherwise. An L gets a bend room of
// 1.5×width centred on the corner; with rng set its sides vary between 0.9
// and 1.2 of that size.
//
// Each leg is width wide and reaches width/2 past both of its endpoints.
// Pieces are returned in walking order: first leg, bend room, second leg.
// Returns ErrShortDrag when start and end are closer than MinDragPx.
func Between(start, end geom.Point, width float64, rng *rand.Rand) ([]geom.Polygon, error) {
	if width <= 0 || math.IsNaN(width) {
		return nil, fmt.Errorf("%w: %v", ErrBadWidth, width)
	}
	if d := start.Distance(end); d < MinDragPx {
		return nil, fmt.Errorf("%w: %.0f px", ErrShortDrag, d)
	}

	corner := geom.Pt(start.X, end.Y)
	if math.Abs(end.X-start.X) > math.Abs(end.Y-start.Y) {
		corner = geom.Pt(end.X, start.Y)
	}

	pieces := []geom.Polygon{leg(start, corner, width)}
	if corner.Distance(end) < eps {
		return pieces, nil
	}
	return append(pieces, bendRoom(corner, width*bendScale, rng), leg(corner, end, width)), nil
}

// bendScale sizes the bend room relative to the corridor width.
const bendScale = 1.5

// leg is the axis-aligned width-wide rectangle from p to q, capped half a
// width past each end.
func leg(p, q geom.Point, width float64) geom.Polygon {
	half := width / 2
	if math.Abs(q.X-p.X) > math.Abs(q.Y-p.Y) {
		lo, hi := span(p.X, q.X)
		return geom.NewRect(lo-half, p.Y-half, hi+half, p.Y+half).Polygon()
	}
	lo, hi := span(p.Y, q.Y)
	return geom.NewRect(p.X-half, lo-half, p.X+half, hi+half).Polygon()
}

func bendRoom(c geom.Point, size float64, rng *rand.Rand) geom.Polygon {
	w, h := size, size
	if rng != nil {
		w = size * (0.9 + 0.3*rng.Float64())
		h = size * (0.9 + 0.3*rng.Float64())
	}
	return geom.RectFromXYWH(c.X-w/2, c.Y-h/2, w, h).Polygon()
}

// ConnectPoints lays a Between corridor on the connector's layer and turns
// the pieces into polyfloor objects: legs labelled DefaultLabel, the bend
// room BendLabel. Like Connect it reports failures in Result.Message.
func (c *Connector) ConnectPoints(s level.Snapshot, start, end geom.Point, widthMeters float64) Result {
	if widthMeters <= 0 {
		return Result{Message: fmt.Sprintf("corridor width must be positive (%v m)", widthMeters)}
	}
	pieces, err := Between(start, end, s.Px(widthMeters), c.opts.Rand)
	if err != nil {
		return Result{Message: err.Error()}
	}

	next := c.allocator(s)
	objs := make([]level.Object, 0, len(pieces))
	for i, p := range pieces {
		o := c.corridorObject(next(), p)
		if i == 1 {
			o.Label = BendLabel
		}
		objs = append(objs, o)
	}
	res := Result{
		Success:   true,
		Message:   fmt.Sprintf("corridor laid (%.0fm, %d piece(s))", s.Meters(start.Distance(end)), len(objs)),
		Corridors: objs,
	}
	c.log.Info("points connected", "from", start, "to", end, "pieces", len(objs))
	return res
}
