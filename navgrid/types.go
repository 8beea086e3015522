package navgrid

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/levelforge/geom"
)

// Sentinel errors for navgrid operations.
var (
	// ErrNoFloors indicates the layer has no floor-bearing object to rasterize.
	ErrNoFloors = errors.New("navgrid: no floors on layer")

	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("navgrid: cell size must be positive")

	// ErrOutOfBounds indicates a query endpoint outside the grid.
	ErrOutOfBounds = errors.New("navgrid: point outside grid bounds")

	// ErrNoWalkableCell indicates no walkable cell near a blocked endpoint.
	ErrNoWalkableCell = errors.New("navgrid: no walkable cell within search radius")

	// ErrNoPath indicates the goal is unreachable from the start.
	ErrNoPath = errors.New("navgrid: no path between points")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("navgrid: invalid option supplied")
)

// Defaults used by Build and FindPath.
const (
	DefaultPadding      = 2
	DefaultNearWallCost = 5.0
	DefaultMidWallCost  = 2.0
	DefaultSearchRadius = 20
)

// Walkable is the floor predicate shared by grid building and path
// simplification. *level.FloorIndex implements it.
type Walkable interface {
	Contains(p geom.Point) bool
}

// Cell is a grid coordinate.
type Cell struct {
	X, Y int
}

// BuildOption configures Build.
type BuildOption func(*BuildOptions)

// BuildOptions holds grid construction parameters.
type BuildOptions struct {
	// Padding is the number of extra cells around the floor bounding box.
	Padding int
	// NearWallCost applies to walkable cells within Chebyshev distance 1 of a
	// blocked cell.
	NearWallCost float64
	// MidWallCost applies at Chebyshev distance 2.
	MidWallCost float64

	err error
}

// DefaultBuildOptions returns padding 2 and wall costs 5 and 2.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Padding:      DefaultPadding,
		NearWallCost: DefaultNearWallCost,
		MidWallCost:  DefaultMidWallCost,
	}
}

// WithPadding sets the bounding-box padding in cells (≥ 0).
func WithPadding(cells int) BuildOption {
	return func(o *BuildOptions) {
		if cells < 0 {
			o.err = fmt.Errorf("%w: padding cannot be negative (%d)", ErrOptionViolation, cells)
			return
		}
		o.Padding = cells
	}
}

// WithWallCosts sets the wall-proximity multipliers (each ≥ 1).
func WithWallCosts(near, mid float64) BuildOption {
	return func(o *BuildOptions) {
		if near < 1 || mid < 1 {
			o.err = fmt.Errorf("%w: wall costs must be >= 1 (%v, %v)", ErrOptionViolation, near, mid)
			return
		}
		o.NearWallCost, o.MidWallCost = near, mid
	}
}

// SearchOption configures FindPath.
type SearchOption func(*SearchOptions)

// SearchOptions holds path query parameters.
type SearchOptions struct {
	// Randomness scales the per-edge jitter factor 1+U[0,Randomness).
	// Zero disables jitter.
	Randomness float64
	// Rand supplies jitter; nil means a fixed-seed source.
	Rand *rand.Rand
	// SearchRadius bounds the nearest-walkable ring search, in cells.
	SearchRadius int

	err error
}

// DefaultSearchOptions returns no jitter and a 20-cell search radius.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{SearchRadius: DefaultSearchRadius}
}

// WithRandomness enables edge-weight jitter for varied simulated routes.
func WithRandomness(r float64) SearchOption {
	return func(o *SearchOptions) {
		if r < 0 {
			o.err = fmt.Errorf("%w: randomness cannot be negative (%v)", ErrOptionViolation, r)
			return
		}
		o.Randomness = r
	}
}

// WithRand sets the jitter source. The *rand.Rand is not shared-safe; give
// each concurrent query its own.
func WithRand(rng *rand.Rand) SearchOption {
	return func(o *SearchOptions) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithSearchRadius bounds the nearest-walkable search (≥ 0 cells).
func WithSearchRadius(cells int) SearchOption {
	return func(o *SearchOptions) {
		if cells < 0 {
			o.err = fmt.Errorf("%w: search radius cannot be negative (%d)", ErrOptionViolation, cells)
			return
		}
		o.SearchRadius = cells
	}
}

// Grid is a walkability and cost raster over one layer. It is immutable
// once built. Cell (0,0) has its top-left corner at Origin.
type Grid struct {
	Width, Height int
	CellSize      float64
	Origin        geom.Point
	Layer         int
	Revision      uint64

	walkable []bool
	cost     []float64
	region   []int // 4-connected component label, -1 when blocked
	regions  int
	floors   Walkable
}
