package rules

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/levelforge/floorgraph"
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("rules: invalid option supplied")

// Check names.
const (
	NameSpawn         = "spawn"
	NameObjective     = "objective"
	NameDistance      = "distance"
	NamePath          = "path"
	NameThreeSecond   = "three-second"
	NameThreeRoute    = "three-route"
	NameCorridorWidth = "corridor-width"
)

// Labels the checks look for in floor labels.
const (
	JunctionLabel = "Junction"
	CorridorLabel = "Corridor"
)

// OK is the message of a passing check.
const OK = "OK"

// Result is the outcome of one check. Details carries the measured values
// (counts, meters) keyed by short snake_case names.
type Result struct {
	Name    string
	Valid   bool
	Message string
	Details map[string]float64
}

// Report aggregates the results of CheckAll.
type Report struct {
	Valid   bool
	Results []Result
}

// Result returns the result named name.
func (r Report) Result(name string) (Result, bool) {
	for _, res := range r.Results {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

// Failed returns the results that did not pass.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}

// Option configures a Checker.
type Option func(*Options)

// Options holds the rule thresholds. Distances and widths are meters.
type Options struct {
	Layer                int
	PlayerSpeed          float64 // m/s
	StraightRunSeconds   float64
	MinRoutes            int
	MinCorridorWidth     float64
	MaxCorridorWidth     float64
	DefenceObjectiveDist float64
	OffenceObjectiveDist float64
	MinOffencePaths      int
	Tolerance            float64 // px, floor contact

	err error
}

// DefaultOptions returns the stock level-design thresholds.
func DefaultOptions() Options {
	return Options{
		PlayerSpeed:          4.5,
		StraightRunSeconds:   3,
		MinRoutes:            3,
		MinCorridorWidth:     4,
		MaxCorridorWidth:     6,
		DefenceObjectiveDist: 25,
		OffenceObjectiveDist: 50,
		MinOffencePaths:      2,
		Tolerance:            floorgraph.DefaultTolerance,
	}
}

// MaxStraightRun returns the longest allowed straight run in meters.
func (o Options) MaxStraightRun() float64 {
	return o.PlayerSpeed * o.StraightRunSeconds
}

// WithLayer selects the vertical level for the per-floor checks.
func WithLayer(layer int) Option {
	return func(o *Options) {
		o.Layer = layer
	}
}

// WithPlayerSpeed sets the running speed in m/s (> 0).
func WithPlayerSpeed(mps float64) Option {
	return func(o *Options) {
		if mps <= 0 {
			o.err = fmt.Errorf("%w: player speed must be positive (%v)", ErrOptionViolation, mps)
			return
		}
		o.PlayerSpeed = mps
	}
}

// WithStraightRun sets how many seconds a player may run straight (> 0).
func WithStraightRun(seconds float64) Option {
	return func(o *Options) {
		if seconds <= 0 {
			o.err = fmt.Errorf("%w: straight run must be positive (%v)", ErrOptionViolation, seconds)
			return
		}
		o.StraightRunSeconds = seconds
	}
}

// WithMinRoutes sets the connections a junction needs (≥ 1).
func WithMinRoutes(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: min routes must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MinRoutes = n
	}
}

// WithCorridorWidth sets the accepted corridor width range in meters.
func WithCorridorWidth(minM, maxM float64) Option {
	return func(o *Options) {
		if minM <= 0 || minM > maxM {
			o.err = fmt.Errorf("%w: corridor width range [%v, %v]", ErrOptionViolation, minM, maxM)
			return
		}
		o.MinCorridorWidth, o.MaxCorridorWidth = minM, maxM
	}
}

// WithObjectiveDistance sets the minimum spawn-to-objective distances in meters.
func WithObjectiveDistance(defence, offence float64) Option {
	return func(o *Options) {
		if defence < 0 || offence < 0 {
			o.err = fmt.Errorf("%w: objective distance cannot be negative", ErrOptionViolation)
			return
		}
		o.DefenceObjectiveDist, o.OffenceObjectiveDist = defence, offence
	}
}

// WithMinOffencePaths sets how many approaches offence needs (≥ 1).
func WithMinOffencePaths(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: min offence paths must be at least 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MinOffencePaths = n
	}
}

// WithTolerance sets the floor contact tolerance in pixels.
func WithTolerance(px float64) Option {
	return func(o *Options) {
		if px < 0 {
			o.err = fmt.Errorf("%w: tolerance cannot be negative (%v)", ErrOptionViolation, px)
			return
		}
		o.Tolerance = px
	}
}
