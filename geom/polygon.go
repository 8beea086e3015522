package geom

import "math"

// Rect is an axis-aligned rectangle. Min is the top-left corner in y-down space.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// RectFromXYWH builds a Rect from the editor's x, y, width, height fields.
// Negative sizes are normalized.
func RectFromXYWH(x, y, w, h float64) Rect {
	return NewRect(x, y, x+w, y+h)
}

// NewRect returns the rectangle spanning the two corner coordinates in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		MinX: math.Min(x0, x1),
		MinY: math.Min(y0, y1),
		MaxX: math.Max(x0, x1),
		MaxY: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Center returns the rectangle center.
func (r Rect) Center() Point {
	return Point{(r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2}
}

// Contains reports whether p lies inside r or on its boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Union returns the smallest rectangle covering r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Expand grows r by d on every side.
func (r Rect) Expand(d float64) Rect {
	return Rect{r.MinX - d, r.MinY - d, r.MaxX + d, r.MaxY + d}
}

// Polygon returns the four corners clockwise on screen: TL, TR, BR, BL.
func (r Rect) Polygon() Polygon {
	return Polygon{
		{r.MinX, r.MinY},
		{r.MaxX, r.MinY},
		{r.MaxX, r.MaxY},
		{r.MinX, r.MaxY},
	}
}

// Polygon is a simple polygon; the closing edge from the last vertex back to
// the first is implicit.
type Polygon []Point

// Len returns the number of vertices.
func (p Polygon) Len() int { return len(p) }

// IsEmpty reports whether p has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool { return len(p) < 3 }

// Edge returns the i-th edge. Wraps around.
func (p Polygon) Edge(i int) Segment {
	n := len(p)
	return Segment{A: p[i%n], B: p[(i+1)%n]}
}

// Edges returns every boundary edge in vertex order.
func (p Polygon) Edges() []Segment {
	out := make([]Segment, 0, len(p))
	for i := range p {
		out = append(out, p.Edge(i))
	}
	return out
}

// SignedArea returns the shoelace area. Positive for clockwise winding on
// screen (y down), negative for counter-clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return area / 2
}

// Area returns the unsigned area.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// Centroid returns the area centroid, or the vertex average when p is degenerate.
func (p Polygon) Centroid() Point {
	n := len(p)
	if n == 0 {
		return Point{}
	}
	a := p.SignedArea()
	if n < 3 || math.Abs(a) < eps {
		sum := Point{}
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Scale(1.0 / float64(n))
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point{cx * f, cy * f}
}

// Bounds returns the axis-aligned bounding box.
func (p Polygon) Bounds() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{p[0].X, p[0].Y, p[0].X, p[0].Y}
	for _, v := range p[1:] {
		r.MinX = math.Min(r.MinX, v.X)
		r.MinY = math.Min(r.MinY, v.Y)
		r.MaxX = math.Max(r.MaxX, v.X)
		r.MaxY = math.Max(r.MaxY, v.Y)
	}
	return r
}

// Contains reports whether pt is inside p by ray casting with the even-odd rule.
// Points exactly on the boundary may fall either way.
func (p Polygon) Contains(pt Point) bool {
	n := len(p)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		xi, yi := p[i].X, p[i].Y
		xj, yj := p[j].X, p[j].Y
		if (yi > pt.Y) != (yj > pt.Y) &&
			pt.X < (xj-xi)*(pt.Y-yi)/(yj-yi)+xi {
			inside = !inside
		}
	}
	return inside
}

// OutwardNormal returns the unit normal of edge i pointing away from the interior.
// The winding is taken from the sign of the area, so both orders work.
func (p Polygon) OutwardNormal(i int) Point {
	d := p.Edge(i).Direction()
	if p.SignedArea() >= 0 {
		return Point{d.Y, -d.X}
	}
	return d.Perp()
}
