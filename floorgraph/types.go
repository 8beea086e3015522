package floorgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// Sentinel errors for floorgraph operations.
var (
	// ErrFloorNotFound is returned when an id is not a vertex of the graph.
	ErrFloorNotFound = errors.New("floorgraph: floor not found")

	// ErrNoPath is returned when BFS exhausts the graph before the goal.
	ErrNoPath = errors.New("floorgraph: no path between floors")

	// ErrNoGap is returned when no boundary-edge pair exists between two sets.
	ErrNoGap = errors.New("floorgraph: no gap between floor sets")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floorgraph: invalid option supplied")
)

// DefaultTolerance is the vertex snapping distance in pixels (0.5 m at 32 px/m).
const DefaultTolerance = 16.0

// Option configures Build.
type Option func(*Options)

// Options holds graph construction parameters.
type Options struct {
	// Tolerance is the maximum vertex-to-vertex distance, in pixels, at which
	// two floors count as connected.
	Tolerance float64
	// Links are extra adjacencies added regardless of geometry, e.g. a
	// generated corridor and the floors it was extruded from.
	Links [][2]int
	// EdgeContact also links floors when a vertex of one lies within
	// Tolerance of an edge of the other.
	EdgeContact bool

	err error
}

// DefaultOptions returns a 16 px tolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTolerance sets the adjacency tolerance in pixels.
func WithTolerance(px float64) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: tolerance cannot be negative (%v)", ErrOptionViolation, px)
			return
		}
		o.Tolerance = px
	}
}

// WithLink forces a and b to be adjacent when both are present.
func WithLink(a, b int) Option {
	return func(o *Options) {
		o.Links = append(o.Links, [2]int{a, b})
	}
}

// WithEdgeContact counts vertex-on-edge contact as adjacency, so a floor
// butting against the middle of another's side is linked.
func WithEdgeContact() Option {
	return func(o *Options) {
		o.EdgeContact = true
	}
}

// Edge is one boundary edge of a floor outline.
type Edge struct {
	P1, P2 geom.Point
	Mid    geom.Point
}

// NewEdge builds an Edge and its midpoint from a segment.
func NewEdge(s geom.Segment) Edge {
	return Edge{P1: s.A, P2: s.B, Mid: s.Mid()}
}

// Segment returns the edge as a geom.Segment.
func (e Edge) Segment() geom.Segment {
	return geom.Segment{A: e.P1, B: e.P2}
}

// Vertical reports whether the edge runs more along y than along x.
func (e Edge) Vertical() bool {
	return e.Segment().Vertical()
}

// Gap is the closest boundary-edge pair between two floors that are not
// connected. Distance is measured between the edge midpoints, in pixels.
type Gap struct {
	FloorA, FloorB level.Floor
	EdgeA, EdgeB   Edge
	Distance       float64
}
