package analysis

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
	"github.com/katalvlaran/levelforge/navgrid"
)

// Analyzer computes and throttles route reports. It is safe for concurrent use.
type Analyzer struct {
	grids *navgrid.Cache
	opts  Options
	log   *slog.Logger

	mu   sync.Mutex
	last map[int]*Report
}

// New returns an Analyzer that takes grids from cache.
func New(cache *navgrid.Cache, opts ...Option) (*Analyzer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Analyzer{
		grids: cache,
		opts:  o,
		log:   o.Logger,
		last:  make(map[int]*Report),
	}, nil
}

// Routes returns the defence and offence routes to the objective on layer.
// A missing spawn just leaves its route out.
func (a *Analyzer) Routes(s level.Snapshot, layer int) (*Report, error) {
	now := a.opts.Now()

	a.mu.Lock()
	defer a.mu.Unlock()

	if prev, ok := a.last[layer]; ok {
		if now.Sub(prev.At) < a.opts.Cooldown || (prev.Doc == s.Doc && prev.Revision == s.Revision) {
			return prev, nil
		}
	}

	objective, ok := s.FirstOn(level.KindObjective, layer)
	if !ok {
		return nil, ErrNoObjective
	}
	to, err := objective.Center()
	if err != nil {
		return nil, fmt.Errorf("analysis: objective: %w", err)
	}

	grid, gridErr := a.grids.Get(s, layer)
	if gridErr != nil {
		a.log.Warn("no nav grid, using straight lines", "layer", layer, "err", gridErr)
	}

	rep := &Report{Layer: layer, Doc: s.Doc, Revision: s.Revision, At: now}
	for _, sp := range []struct {
		name string
		kind level.Kind
	}{{"Defence", level.KindSpawnDef}, {"Offence", level.KindSpawnOff}} {
		spawn, ok := s.FirstOn(sp.kind, layer)
		if !ok {
			continue
		}
		from, err := spawn.Center()
		if err != nil {
			return nil, fmt.Errorf("analysis: %s spawn: %w", sp.name, err)
		}
		var rt Route
		if gridErr != nil {
			rt = straightRoute(from, to, gridErr)
		} else {
			rt = a.route(grid, from, to)
		}
		rt.Name = sp.name
		a.measure(s, &rt)
		rep.Routes = append(rep.Routes, rt)
	}

	a.log.Debug("routes computed", "layer", layer, "revision", s.Revision, "routes", len(rep.Routes))
	a.last[layer] = rep
	return rep, nil
}

// route walks from → to on g, falling back to a straight line.
func (a *Analyzer) route(g *navgrid.Grid, from, to geom.Point) Route {
	path, err := g.FindPath(from, to, a.opts.Search...)
	if err != nil {
		a.log.Debug("route unverified", "from", from, "to", to, "err", err)
		return straightRoute(from, to, err)
	}
	// The last cell holds To unless To was snapped off a wall; end on the
	// exact point when it does.
	last := len(path) - 1
	if endCell, ok := g.CellOf(to); ok {
		if c, _ := g.CellOf(path[last]); c == endCell {
			path[last] = to
		}
	}
	points := append([]geom.Point{from}, path...)
	return Route{
		From:       from,
		To:         to,
		Points:     points,
		Simplified: g.Simplify(points),
		Verified:   true,
	}
}

func straightRoute(from, to geom.Point, reason error) Route {
	line := []geom.Point{from, to}
	return Route{
		From:       from,
		To:         to,
		Points:     line,
		Simplified: line,
		Reason:     reason.Error(),
	}
}

// measure fills the metric fields of rt.
func (a *Analyzer) measure(s level.Snapshot, rt *Route) {
	rt.LengthMeters = s.Meters(navgrid.PathLength(rt.Simplified))
	rt.StraightMeters = s.Meters(rt.From.Distance(rt.To))
	rt.TimeSeconds = rt.LengthMeters / a.opts.PlayerSpeed
	for i := 1; i < len(rt.Simplified); i++ {
		rt.LongestStraight = max(rt.LongestStraight, s.Meters(rt.Simplified[i-1].Distance(rt.Simplified[i])))
	}
}

// Invalidate forgets every cached report.
func (a *Analyzer) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.last = make(map[int]*Report)
}
