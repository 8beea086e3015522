package analysis

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/navgrid"
)

var (
	// ErrNoObjective indicates the snapshot has no objective zone.
	ErrNoObjective = errors.New("analysis: no objective placed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("analysis: invalid option supplied")
)

// Defaults.
const (
	DefaultCooldown    = 100 * time.Millisecond
	DefaultPlayerSpeed = 4.5 // m/s
)

// Route is one spawn → objective walk.
type Route struct {
	Name       string // "Defence" or "Offence"
	From, To   geom.Point
	Points     []geom.Point // From, grid cell centres, To
	Simplified []geom.Point // line-of-sight reduction of Points

	LengthMeters    float64 // along Simplified
	StraightMeters  float64 // From to To as the crow flies
	LongestStraight float64 // longest Simplified segment, meters
	TimeSeconds     float64 // LengthMeters at player speed

	// Verified is false when the route is the straight-line fallback;
	// Reason then says why.
	Verified bool
	Reason   string
}

// Report is the analysis of one layer at one revision.
type Report struct {
	Layer    int
	Doc      uint64
	Revision uint64
	Routes   []Route
	At       time.Time
}

// Route returns the route named name.
func (r *Report) Route(name string) (Route, bool) {
	for _, rt := range r.Routes {
		if rt.Name == name {
			return rt, true
		}
	}
	return Route{}, false
}

// LongestStraight returns the longest straight leg over all routes, meters.
func (r *Report) LongestStraight() float64 {
	longest := 0.0
	for _, rt := range r.Routes {
		longest = max(longest, rt.LongestStraight)
	}
	return longest
}

// Option configures an Analyzer.
type Option func(*Options)

// Options holds Analyzer parameters.
type Options struct {
	Logger      *slog.Logger
	Cooldown    time.Duration
	PlayerSpeed float64
	// Now is the clock used for the cooldown.
	Now    func() time.Time
	Search []navgrid.SearchOption

	err error
}

// DefaultOptions returns a 100 ms cooldown, 4.5 m/s and the wall clock.
func DefaultOptions() Options {
	return Options{
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Cooldown:    DefaultCooldown,
		PlayerSpeed: DefaultPlayerSpeed,
		Now:         time.Now,
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

// WithCooldown sets the minimum time between recomputations (≥ 0).
func WithCooldown(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: cooldown cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.Cooldown = d
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

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// WithSearchOptions passes opts to every FindPath call.
func WithSearchOptions(opts ...navgrid.SearchOption) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}
