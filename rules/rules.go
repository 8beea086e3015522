package rules

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/levelforge/analysis"
	"github.com/katalvlaran/levelforge/floorgraph"
	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// Checker evaluates the level-design rules with a fixed set of thresholds.
type Checker struct {
	opts Options
}

// New returns a Checker configured by opts.
func New(opts ...Option) (*Checker, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Checker{opts: o}, nil
}

// Options returns the thresholds in use.
func (c *Checker) Options() Options { return c.opts }

// CheckAll runs every check. The three-second rule needs route geometry and
// is skipped when rep is nil.
func (c *Checker) CheckAll(s level.Snapshot, rep *analysis.Report) (Report, error) {
	results := []Result{
		c.Spawns(s),
		c.Objective(s),
		c.Distance(s),
		c.Paths(s),
	}
	if rep != nil {
		results = append(results, c.StraightRun(rep.LongestStraight()))
	}
	tr, err := c.Junctions(s)
	if err != nil {
		return Report{}, err
	}
	cw, err := c.Corridors(s)
	if err != nil {
		return Report{}, err
	}
	results = append(results, tr, cw)

	out := Report{Valid: true, Results: results}
	for _, r := range results {
		out.Valid = out.Valid && r.Valid
	}
	return out, nil
}

// Spawns checks there is exactly one spawn of each side on the layer.
func (c *Checker) Spawns(s level.Snapshot) Result {
	def, off := s.CountOn(level.KindSpawnDef, c.opts.Layer), s.CountOn(level.KindSpawnOff, c.opts.Layer)
	var issues []string
	if def != 1 {
		issues = append(issues, fmt.Sprintf("defence spawns: %d (need 1)", def))
	}
	if off != 1 {
		issues = append(issues, fmt.Sprintf("offence spawns: %d (need 1)", off))
	}
	return result(NameSpawn, issues, map[string]float64{
		"defence_count": float64(def),
		"offence_count": float64(off),
	})
}

// Objective checks there is exactly one objective on the layer.
func (c *Checker) Objective(s level.Snapshot) Result {
	n := s.CountOn(level.KindObjective, c.opts.Layer)
	var issues []string
	if n != 1 {
		issues = append(issues, fmt.Sprintf("objectives: %d (need 1)", n))
	}
	return result(NameObjective, issues, map[string]float64{"count": float64(n)})
}

// Distance checks both spawns keep their minimum distance to the objective.
func (c *Checker) Distance(s level.Snapshot) Result {
	objective, okObj := center(s, level.KindObjective, c.opts.Layer)
	def, okDef := center(s, level.KindSpawnDef, c.opts.Layer)
	off, okOff := center(s, level.KindSpawnOff, c.opts.Layer)
	if !okObj || !okDef || !okOff {
		return Result{Name: NameDistance, Message: "spawn or objective missing"}
	}

	defM := s.Meters(def.Distance(objective))
	offM := s.Meters(off.Distance(objective))
	var issues []string
	if defM < c.opts.DefenceObjectiveDist {
		issues = append(issues, fmt.Sprintf("Defence→Objective %.0fm < min %.0fm", defM, c.opts.DefenceObjectiveDist))
	}
	if offM < c.opts.OffenceObjectiveDist {
		issues = append(issues, fmt.Sprintf("Offence→Objective %.0fm < min %.0fm", offM, c.opts.OffenceObjectiveDist))
	}
	return result(NameDistance, issues, map[string]float64{
		"defence_m": defM,
		"offence_m": offM,
	})
}

// Paths estimates the offence approaches from the count of floor areas
// labelled as junctions.
func (c *Checker) Paths(s level.Snapshot) Result {
	junctions := 0
	for _, o := range s.Objects {
		if o.Kind == level.KindFloorArea && o.Floor == c.opts.Layer && strings.Contains(o.Label, JunctionLabel) {
			junctions++
		}
	}
	paths := 1
	if junctions > 0 {
		paths = junctions + 1
	}
	var issues []string
	if paths < c.opts.MinOffencePaths {
		issues = append(issues, fmt.Sprintf("%d path(s) < min %d (flank route needed)", paths, c.opts.MinOffencePaths))
	}
	return result(NamePath, issues, map[string]float64{
		"junctions":       float64(junctions),
		"estimated_paths": float64(paths),
	})
}

// StraightRun checks a straight run of meters against the three-second rule.
func (c *Checker) StraightRun(meters float64) Result {
	limit := c.opts.MaxStraightRun()
	var issues []string
	if meters > limit {
		issues = append(issues, fmt.Sprintf("straight %.1fm > max %.1fm (three-second rule)", meters, limit))
	}
	return result(NameThreeSecond, issues, map[string]float64{
		"straight_m": meters,
		"max_m":      limit,
	})
}

// Connections checks one point offers at least MinRoutes ways on.
func (c *Checker) Connections(count int) Result {
	var issues []string
	if count < c.opts.MinRoutes {
		issues = append(issues, fmt.Sprintf("%d connections < min %d (three-route rule)", count, c.opts.MinRoutes))
	}
	return result(NameThreeRoute, issues, map[string]float64{"connections": float64(count)})
}

// CorridorWidth checks one corridor width in meters.
func (c *Checker) CorridorWidth(meters float64) Result {
	var issues []string
	if meters < c.opts.MinCorridorWidth {
		issues = append(issues, fmt.Sprintf("corridor width %.1fm < min %.0fm", meters, c.opts.MinCorridorWidth))
	}
	if meters > c.opts.MaxCorridorWidth {
		issues = append(issues, fmt.Sprintf("corridor width %.1fm > max %.0fm (counts as a room)", meters, c.opts.MaxCorridorWidth))
	}
	return result(NameCorridorWidth, issues, map[string]float64{"width_m": meters})
}

// Junctions applies the three-route rule to every junction floor on the
// layer. Contact is counted against every floor-bearing object, spawns and
// objective included.
func (c *Checker) Junctions(s level.Snapshot) (Result, error) {
	idx, err := level.NewFloorIndex(s, c.opts.Layer)
	if err != nil {
		return Result{}, fmt.Errorf("rules: %w", err)
	}
	g, err := floorgraph.BuildIndex(idx,
		floorgraph.WithTolerance(c.opts.Tolerance),
		floorgraph.WithEdgeContact(),
	)
	if err != nil {
		return Result{}, fmt.Errorf("rules: %w", err)
	}

	var (
		issues    []string
		junctions int
		fewest    = -1
	)
	for _, f := range idx.Floors() {
		if !f.Kind.IsFloor() || !strings.Contains(f.Label, JunctionLabel) {
			continue
		}
		junctions++
		n := g.Degree(f.ID)
		if fewest < 0 || n < fewest {
			fewest = n
		}
		if r := c.Connections(n); !r.Valid {
			issues = append(issues, f.Name()+": "+r.Message)
		}
	}
	details := map[string]float64{"junctions": float64(junctions)}
	if fewest >= 0 {
		details["min_connections"] = float64(fewest)
	}
	return result(NameThreeRoute, issues, details), nil
}

// Corridors checks the width of every floor labelled as a corridor on the
// layer. The width of a piece is the short side of its bounding box.
func (c *Checker) Corridors(s level.Snapshot) (Result, error) {
	idx, err := level.NewFloorIndex(s, c.opts.Layer, level.WithExplicitFloorsOnly())
	if err != nil {
		return Result{}, fmt.Errorf("rules: %w", err)
	}

	var (
		issues            []string
		count             int
		narrowest, widest float64
	)
	for _, f := range idx.Floors() {
		if !strings.Contains(f.Label, CorridorLabel) {
			continue
		}
		b := f.Polygon.Bounds()
		w := s.Meters(min(b.Width(), b.Height()))
		if count == 0 || w < narrowest {
			narrowest = w
		}
		if count == 0 || w > widest {
			widest = w
		}
		count++
		if r := c.CorridorWidth(w); !r.Valid {
			issues = append(issues, fmt.Sprintf("%s #%d: %s", f.Label, f.ID, r.Message))
		}
	}
	details := map[string]float64{"corridors": float64(count)}
	if count > 0 {
		details["narrowest_m"] = narrowest
		details["widest_m"] = widest
	}
	return result(NameCorridorWidth, issues, details), nil
}

func center(s level.Snapshot, k level.Kind, layer int) (p geom.Point, ok bool) {
	o, found := s.FirstOn(k, layer)
	if !found {
		return p, false
	}
	p, err := o.Center()
	return p, err == nil
}

func result(name string, issues []string, details map[string]float64) Result {
	r := Result{Name: name, Valid: len(issues) == 0, Message: OK, Details: details}
	if !r.Valid {
		r.Message = strings.Join(issues, ", ")
	}
	return r
}
