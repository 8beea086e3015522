// Package level defines the level object model consumed by the route engine:
// object kinds, the closed Shape sum type, immutable snapshots with a revision
// counter, the editor's JSON file format and the spatial floor index.
//
// Errors:
//
//   - ErrUnknownKind:  the type tag is not one the editor produces.
//   - ErrUnknownShape: a Shape variant outside RectShape/PolyShape/LineShape.
//   - ErrNoGeometry:   a raw object carries no usable geometry fields.
//   - ErrObjectNotFound: Document lookup by id failed.
package level

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/levelforge/geom"
)

// Sentinel errors for level operations.
var (
	// ErrUnknownKind indicates an unrecognized object type tag.
	ErrUnknownKind = errors.New("level: unknown object kind")

	// ErrUnknownShape indicates a Shape value of an unexpected variant.
	ErrUnknownShape = errors.New("level: unknown shape variant")

	// ErrNoGeometry indicates an object with no rect, polygon or line fields.
	ErrNoGeometry = errors.New("level: object has no geometry")

	// ErrObjectNotFound indicates a Document lookup for a missing id.
	ErrObjectNotFound = errors.New("level: object not found")
)

// Kind tags what an object represents in the level.
type Kind int

const (
	KindFloorArea Kind = iota
	KindPolyFloor
	KindWall
	KindWallDiag
	KindPolyWall
	KindCoverFull
	KindCoverHalf
	KindSpawnDef
	KindSpawnOff
	KindObjective
	KindItem
	KindZone
	KindRamp
	KindDoor
	KindWindow
	KindDeadZone
	KindSightline
)

var kindTags = [...]string{
	KindFloorArea: "floor-area",
	KindPolyFloor: "polyfloor",
	KindWall:      "wall",
	KindWallDiag:  "wall-diag",
	KindPolyWall:  "polywall",
	KindCoverFull: "cover-full",
	KindCoverHalf: "cover-half",
	KindSpawnDef:  "spawn-def",
	KindSpawnOff:  "spawn-off",
	KindObjective: "objective",
	KindItem:      "item",
	KindZone:      "zone",
	KindRamp:      "ramp",
	KindDoor:      "door",
	KindWindow:    "window",
	KindDeadZone:  "dead-zone",
	KindSightline: "sightline",
}

// String returns the editor type tag.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindTags) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTags[k]
}

// ParseKind maps an editor type tag to a Kind. "path" is accepted as an
// alias of "sightline".
func ParseKind(tag string) (Kind, error) {
	if tag == "path" {
		return KindSightline, nil
	}
	for k, s := range kindTags {
		if s == tag {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}

// IsFloor reports whether k is an explicit floor (floor-area or polyfloor).
func (k Kind) IsFloor() bool {
	return k == KindFloorArea || k == KindPolyFloor
}

// IsSpawn reports whether k is one of the two spawn zones.
func (k Kind) IsSpawn() bool {
	return k == KindSpawnDef || k == KindSpawnOff
}

// IsFloorBearing reports whether k contributes walkable surface:
// explicit floors plus spawn and objective zones.
func (k Kind) IsFloorBearing() bool {
	return k.IsFloor() || k.IsSpawn() || k == KindObjective
}

// Shape is the geometry of an object. It is a closed sum type: the only
// variants are RectShape, PolyShape and LineShape.
type Shape interface {
	isShape()
}

// RectShape is an axis-aligned rectangle (floor-area, spawn, objective, wall, ...).
type RectShape struct {
	geom.Rect
}

// PolyShape is an ordered vertex list with optional per-vertex height in meters.
type PolyShape struct {
	Points []geom.Point
	Z      []float64
	Closed bool
}

// LineShape is a two-endpoint segment (wall-diag, sightline).
type LineShape struct {
	A, B geom.Point
}

func (RectShape) isShape() {}
func (PolyShape) isShape() {}
func (LineShape) isShape() {}

// Polygon returns the vertices as a geom.Polygon.
func (s PolyShape) Polygon() geom.Polygon {
	return geom.Polygon(s.Points)
}

// Object is one entry of the editor's object list.
type Object struct {
	ID          int
	Kind        Kind
	Floor       int // vertical level index
	Label       string
	Shape       Shape
	FloorHeight float64 // meters
	Color       string
}

// Center returns the geometric center of the object's shape.
func (o Object) Center() (geom.Point, error) {
	switch s := o.Shape.(type) {
	case RectShape:
		return s.Center(), nil
	case PolyShape:
		return s.Polygon().Centroid(), nil
	case LineShape:
		return geom.Mid(s.A, s.B), nil
	default:
		return geom.Point{}, fmt.Errorf("%w: object %d", ErrUnknownShape, o.ID)
	}
}

// Bounds returns the bounding box of the object's shape.
func (o Object) Bounds() (geom.Rect, error) {
	switch s := o.Shape.(type) {
	case RectShape:
		return s.Rect, nil
	case PolyShape:
		return s.Polygon().Bounds(), nil
	case LineShape:
		return geom.NewRect(s.A.X, s.A.Y, s.B.X, s.B.Y), nil
	default:
		return geom.Rect{}, fmt.Errorf("%w: object %d", ErrUnknownShape, o.ID)
	}
}

// RectObject builds an object of kind k on layer 0 with a rectangle shape.
func RectObject(id int, k Kind, r geom.Rect) Object {
	return Object{ID: id, Kind: k, Shape: RectShape{r}}
}

// PolyFloor builds a closed polyfloor on layer 0 from pts.
func PolyFloor(id int, pts ...geom.Point) Object {
	return Object{
		ID:    id,
		Kind:  KindPolyFloor,
		Shape: PolyShape{Points: pts, Z: make([]float64, len(pts)), Closed: true},
	}
}
