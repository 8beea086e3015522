package level

import (
	"fmt"

	"github.com/katalvlaran/levelforge/geom"
)

// Floor is the normalized walkable outline of one floor-bearing object.
// Rect is set when the source was an axis-aligned rectangle; Polygon is
// always populated.
type Floor struct {
	ID      int
	Kind    Kind
	Label   string
	Polygon geom.Polygon
	Rect    *geom.Rect
}

// Contains reports whether p is on this floor.
func (f Floor) Contains(p geom.Point) bool {
	if f.Rect != nil {
		return f.Rect.Contains(p)
	}
	return f.Polygon.Contains(p)
}

// Centroid returns the floor centroid.
func (f Floor) Centroid() geom.Point {
	return f.Polygon.Centroid()
}

// Name returns the label, or a kind/id fallback for unlabelled floors.
func (f Floor) Name() string {
	if f.Label != "" {
		return f.Label
	}
	return fmt.Sprintf("%s#%d", f.Kind, f.ID)
}

// IndexOption configures NewFloorIndex.
type IndexOption func(*indexOptions)

type indexOptions struct {
	explicitOnly bool
}

// WithExplicitFloorsOnly limits the index to floor-area and polyfloor objects,
// leaving spawn and objective zones out.
func WithExplicitFloorsOnly() IndexOption {
	return func(o *indexOptions) { o.explicitOnly = true }
}

// FloorIndex holds every floor outline on one vertical level of a snapshot.
// It is immutable once built.
type FloorIndex struct {
	layer     int
	floors    []Floor
	bounds    geom.Rect
	hasBounds bool
}

// NewFloorIndex extracts the floors of layer from s. Polygon objects need at
// least three vertices to count as a floor.
func NewFloorIndex(s Snapshot, layer int, opts ...IndexOption) (*FloorIndex, error) {
	var o indexOptions
	for _, opt := range opts {
		opt(&o)
	}
	idx := &FloorIndex{layer: layer}
	for _, obj := range s.Objects {
		if obj.Floor != layer {
			continue
		}
		if o.explicitOnly && !obj.Kind.IsFloor() {
			continue
		}
		if !obj.Kind.IsFloorBearing() {
			continue
		}
		f := Floor{ID: obj.ID, Kind: obj.Kind, Label: obj.Label}
		switch sh := obj.Shape.(type) {
		case RectShape:
			r := sh.Rect
			f.Rect = &r
			f.Polygon = r.Polygon()
		case PolyShape:
			if len(sh.Points) < 3 {
				continue
			}
			f.Polygon = append(geom.Polygon(nil), sh.Points...)
		case LineShape:
			continue
		default:
			return nil, fmt.Errorf("%w: object %d", ErrUnknownShape, obj.ID)
		}
		idx.add(f)
	}
	return idx, nil
}

func (idx *FloorIndex) add(f Floor) {
	b := f.Polygon.Bounds()
	if idx.hasBounds {
		idx.bounds = idx.bounds.Union(b)
	} else {
		idx.bounds, idx.hasBounds = b, true
	}
	idx.floors = append(idx.floors, f)
}

// Layer returns the vertical level this index was built for.
func (idx *FloorIndex) Layer() int { return idx.layer }

// Len returns the number of floors.
func (idx *FloorIndex) Len() int { return len(idx.floors) }

// Floors returns the floors in snapshot order.
func (idx *FloorIndex) Floors() []Floor {
	return append([]Floor(nil), idx.floors...)
}

// Bounds returns the union bounding box; ok is false for an empty index.
func (idx *FloorIndex) Bounds() (geom.Rect, bool) {
	return idx.bounds, idx.hasBounds
}

// Contains is the walkability predicate: p is inside any floor polygon
// (even-odd rule) or any axis-aligned floor rectangle.
func (idx *FloorIndex) Contains(p geom.Point) bool {
	for _, f := range idx.floors {
		if f.Contains(p) {
			return true
		}
	}
	return false
}

// FloorAt returns the first floor containing p.
func (idx *FloorIndex) FloorAt(p geom.Point) (Floor, bool) {
	for _, f := range idx.floors {
		if f.Contains(p) {
			return f, true
		}
	}
	return Floor{}, false
}

// NearestFloor returns the floor whose centroid is closest to p and strictly
// closer than maxDist.
func (idx *FloorIndex) NearestFloor(p geom.Point, maxDist float64) (Floor, bool) {
	var (
		best  Floor
		found bool
		bestD = maxDist
	)
	for _, f := range idx.floors {
		if d := f.Centroid().Distance(p); d < bestD {
			bestD, best, found = d, f, true
		}
	}
	return best, found
}

// Locate returns the floor containing p, falling back to NearestFloor.
func (idx *FloorIndex) Locate(p geom.Point, maxDist float64) (Floor, bool) {
	if f, ok := idx.FloorAt(p); ok {
		return f, true
	}
	return idx.NearestFloor(p, maxDist)
}

// ByID looks a floor up by object id.
func (idx *FloorIndex) ByID(id int) (Floor, bool) {
	for _, f := range idx.floors {
		if f.ID == id {
			return f, true
		}
	}
	return Floor{}, false
}
