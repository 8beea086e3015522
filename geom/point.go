// Package geom provides the planar primitives shared by every levelforge
// package: points, segments, axis-aligned rectangles and simple polygons.
//
// Coordinates are editor pixels with the y axis pointing down, so a
// rectangle's "top" edge has the smaller y.
package geom

import "math"

// eps is the tolerance used for degenerate-length and zero-area checks.
const eps = 1e-9

// Point is a position (or vector) in editor pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p * s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z-component of the 3D cross product.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the Euclidean length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance from p to q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Normalize returns the unit vector in the same direction.
// Returns the zero vector if the length is zero.
func (p Point) Normalize() Point {
	l := p.Length()
	if l < eps {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Perp returns p rotated by 90 degrees.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Lerp returns the linear interpolation between p and q at t in [0,1].
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Mid returns the midpoint between p and q.
func Mid(p, q Point) Point {
	return p.Lerp(q, 0.5)
}

// Segment is a directed line segment from A to B.
type Segment struct {
	A, B Point
}

// Mid returns the segment midpoint.
func (s Segment) Mid() Point { return Mid(s.A, s.B) }

// Length returns the segment length.
func (s Segment) Length() float64 { return s.A.Distance(s.B) }

// Direction returns the unit vector from A to B.
func (s Segment) Direction() Point { return s.B.Sub(s.A).Normalize() }

// Vertical reports whether the segment runs closer to the y axis than the x axis.
func (s Segment) Vertical() bool {
	return math.Abs(s.B.X-s.A.X) < math.Abs(s.B.Y-s.A.Y)
}

// DistanceTo returns the distance from p to the closest point of s.
func (s Segment) DistanceTo(p Point) float64 {
	d := s.B.Sub(s.A)
	l2 := d.Dot(d)
	if l2 < eps {
		return p.Distance(s.A)
	}
	t := math.Max(0, math.Min(1, p.Sub(s.A).Dot(d)/l2))
	return p.Distance(s.A.Lerp(s.B, t))
}
