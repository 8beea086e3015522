package corridor

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// Sentinel errors for corridor operations.
var (
	// ErrNoSlot indicates no boundary edge can host the corridor width.
	ErrNoSlot = errors.New("corridor: no edge long enough for corridor")

	// ErrDegenerate indicates the two slots produce a zero-length corridor.
	ErrDegenerate = errors.New("corridor: slots are collinear")

	// ErrBadWidth indicates a non-positive corridor width.
	ErrBadWidth = errors.New("corridor: width must be positive")

	// ErrShortDrag indicates a Between drag shorter than MinDragPx.
	ErrShortDrag = errors.New("corridor: drag too short")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("corridor: invalid option supplied")
)

// Defaults for generated corridors.
const (
	DefaultColor        = "hsla(200, 55%, 50%, 0.6)"
	DefaultLabel        = "Corridor"
	BendLabel           = "Bend"
	DefaultWidthMeters  = 5.0
	DefaultMaxGapMeters = 100.0
	DefaultNearestDist  = 500.0 // px, centroid search radius for off-floor zones
	DefaultTolerance    = 16.0  // px, floor adjacency
	MinDragPx           = 50.0  // shortest drag Between accepts
)

// Direction is the cardinal side of a floor a slot faces. North is -y.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

var directionNames = [...]string{"north", "east", "south", "west"}

// String returns the lower-case direction name.
func (d Direction) String() string {
	if d < North || d > West {
		return fmt.Sprintf("direction(%d)", int(d))
	}
	return directionNames[d]
}

// Horizontal reports whether d faces along the x axis.
func (d Direction) Horizontal() bool {
	return d == East || d == West
}

// directionOf maps a normal to the cardinal direction of its dominant axis.
func directionOf(n geom.Point) Direction {
	if math.Abs(n.X) >= math.Abs(n.Y) {
		if n.X >= 0 {
			return East
		}
		return West
	}
	if n.Y > 0 {
		return South
	}
	return North
}

// Slot is the part of a floor boundary a corridor attaches to.
type Slot struct {
	Floor     level.Floor
	Edge      geom.Segment // whole source edge
	Span      geom.Segment // width-long sub-segment centred on Edge.Mid()
	Mid       geom.Point
	Normal    geom.Point // unit, pointing out of the floor
	Direction Direction
	Alignment float64 // dot(Normal, direction to target centroid)
}

// Result is the outcome of Connect.
type Result struct {
	Success   bool
	Message   string
	Corridors []level.Object
}

// Option configures a Connector.
type Option func(*Options)

// Options holds Connector parameters.
type Options struct {
	Logger *slog.Logger
	// Layer is the vertical level searched and stamped on new corridors.
	Layer int
	// Tolerance is the floor adjacency distance in pixels.
	Tolerance float64
	// MaxGapMeters is the ceiling above which a gap is not auto-connected.
	MaxGapMeters float64
	// NearestDist bounds the centroid fallback when a zone centre is on no floor, in pixels.
	NearestDist float64
	// NextID allocates corridor ids; nil means "after the largest id in the snapshot".
	NextID func() int
	Color  string
	// Rand varies the bend room size of ConnectPoints; nil keeps it square.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns layer 0, 16 px tolerance, a 100 m ceiling and a
// discard logger.
func DefaultOptions() Options {
	return Options{
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tolerance:    DefaultTolerance,
		MaxGapMeters: DefaultMaxGapMeters,
		NearestDist:  DefaultNearestDist,
		Color:        DefaultColor,
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithLayer selects the vertical level.
func WithLayer(layer int) Option {
	return func(o *Options) { o.Layer = layer }
}

// WithTolerance sets the floor adjacency distance in pixels (≥ 0).
func WithTolerance(px float64) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: tolerance cannot be negative (%v)", ErrOptionViolation, px)
			return
		}
		o.Tolerance = px
	}
}

// WithMaxGap sets the auto-connect ceiling in meters (> 0).
func WithMaxGap(meters float64) Option {
	return func(o *Options) {
		if meters <= 0 {
			o.err = fmt.Errorf("%w: max gap must be positive (%v)", ErrOptionViolation, meters)
			return
		}
		o.MaxGapMeters = meters
	}
}

// WithNearestDist bounds the nearest-floor fallback, in pixels (> 0).
func WithNearestDist(px float64) Option {
	return func(o *Options) {
		if px <= 0 {
			o.err = fmt.Errorf("%w: nearest distance must be positive (%v)", ErrOptionViolation, px)
			return
		}
		o.NearestDist = px
	}
}

// WithIDAllocator makes corridors take ids from next, e.g. level.Document.NextID.
func WithIDAllocator(next func() int) Option {
	return func(o *Options) {
		if next != nil {
			o.NextID = next
		}
	}
}

// WithColor overrides the corridor fill color.
func WithColor(c string) Option {
	return func(o *Options) {
		if c != "" {
			o.Color = c
		}
	}
}

// WithRand sets the source that varies ConnectPoints bend rooms. The
// *rand.Rand is not safe for concurrent use; give each Connector its own.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}
