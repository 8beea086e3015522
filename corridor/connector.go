package corridor

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/levelforge/floorgraph"
	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// Connector links spawn floors to the objective floor with generated
// corridors. A Connector is immutable and safe for concurrent use as long as
// its id allocator is.
type Connector struct {
	opts Options
	log  *slog.Logger
}

// NewConnector applies opts over DefaultOptions.
func NewConnector(opts ...Option) (*Connector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Connector{opts: o, log: o.Logger}, nil
}

// pass is one spawn → objective connection attempt.
type pass struct {
	name string // "Defence" or "Offence"
	kind level.Kind
}

// Connect finds the defence and offence spawns and the objective on the
// connector layer of s and, for each spawn whose floor cannot already reach
// the objective floor, extrudes a corridor across the closest gap. The offence pass sees the
// corridors made by the defence pass. Failures never abort: they are
// reported in Result.Message and Success is true only when at least one
// corridor was made.
func (c *Connector) Connect(s level.Snapshot, widthMeters float64) Result {
	if widthMeters <= 0 {
		return Result{Message: fmt.Sprintf("corridor width must be positive (%v m)", widthMeters)}
	}
	width := s.Px(widthMeters)

	objective, ok := s.FirstOn(level.KindObjective, c.opts.Layer)
	if !ok {
		return Result{Message: "no objective placed"}
	}
	idx, err := level.NewFloorIndex(s, c.opts.Layer, level.WithExplicitFloorsOnly())
	if err != nil {
		return Result{Message: err.Error()}
	}
	c.log.Debug("connect start", "floors", idx.Len(), "width_m", widthMeters, "revision", s.Revision)

	objFloor, ok := c.locate(idx, objective)
	if !ok {
		return Result{Message: "Objective floor missing"}
	}

	w := &workset{floors: idx.Floors()}
	next := c.allocator(s)
	var (
		corridors []level.Object
		messages  []string
	)
	for _, p := range []pass{{name: "Defence", kind: level.KindSpawnDef}, {name: "Offence", kind: level.KindSpawnOff}} {
		spawn, ok := s.FirstOn(p.kind, c.opts.Layer)
		if !ok {
			if p.kind == level.KindSpawnDef {
				messages = append(messages, "Defence spawn missing")
			}
			continue
		}
		from, ok := c.locate(idx, spawn)
		if !ok {
			messages = append(messages, p.name+" floor missing")
			continue
		}
		made, msg := c.connectPass(s, p.name, w, from, objFloor, width, next)
		messages = append(messages, msg)
		corridors = append(corridors, made...)
	}

	res := Result{
		Success:   len(corridors) > 0,
		Message:   strings.Join(messages, ", "),
		Corridors: corridors,
	}
	c.log.Info("connect done", "success", res.Success, "corridors", len(corridors), "message", res.Message)
	return res
}

// connectPass handles one spawn floor. It returns the corridor objects made
// and a one-line report.
func (c *Connector) connectPass(s level.Snapshot, name string, w *workset, from, to level.Floor, width float64, next func() int) ([]level.Object, string) {
	pair := name + "→Objective"
	g, err := floorgraph.Build(w.floors, w.graphOptions(c.opts.Tolerance)...)
	if err != nil {
		return nil, fmt.Sprintf("%s failed: %v", pair, err)
	}
	if path, err := floorgraph.Path(g, from.ID, to.ID); err == nil {
		c.log.Debug("already connected", "pair", pair, "hops", len(path)-1)
		return nil, pair + " already connected"
	}

	fromSet, err := floorgraph.Reachable(g, from.ID)
	if err != nil {
		return nil, fmt.Sprintf("%s failed: %v", pair, err)
	}
	toSet, err := floorgraph.Reachable(g, to.ID)
	if err != nil {
		return nil, fmt.Sprintf("%s failed: %v", pair, err)
	}
	gap, err := floorgraph.GapBetween(g, fromSet, toSet)
	if errors.Is(err, floorgraph.ErrNoGap) {
		return nil, pair + " no gap found"
	}
	if err != nil {
		return nil, fmt.Sprintf("%s failed: %v", pair, err)
	}
	meters := s.Meters(gap.Distance)
	c.log.Debug("gap", "pair", pair, "from", gap.FloorA.Name(), "to", gap.FloorB.Name(), "meters", meters)
	if meters >= c.opts.MaxGapMeters {
		return nil, fmt.Sprintf("%s too far (%.0fm)", pair, meters)
	}

	pieces, err := Extrude(gap, width)
	if err != nil {
		c.log.Warn("extrude failed", "pair", pair, "err", err)
		return nil, fmt.Sprintf("%s could not connect: %v", pair, err)
	}
	objs := make([]level.Object, 0, len(pieces))
	prev := gap.FloorA.ID
	for _, poly := range pieces {
		obj := c.corridorObject(next(), poly)
		objs = append(objs, obj)
		w.add(level.Floor{ID: obj.ID, Kind: obj.Kind, Label: obj.Label, Polygon: poly}, prev)
		prev = obj.ID
	}
	w.link(prev, gap.FloorB.ID)
	c.log.Info("corridor created", "pair", pair, "pieces", len(pieces), "meters", meters)
	return objs, fmt.Sprintf("%s connected (%.0fm)", pair, meters)
}

// workset is the floor list a Connect call works on. Corridors it creates
// are added with explicit links to the floors they join, since a slot-centred
// corridor shares no vertex with its source edge.
type workset struct {
	floors []level.Floor
	links  [][2]int
}

func (w *workset) add(f level.Floor, linkTo int) {
	w.floors = append(w.floors, f)
	w.link(linkTo, f.ID)
}

func (w *workset) link(a, b int) {
	w.links = append(w.links, [2]int{a, b})
}

func (w *workset) graphOptions(tolerance float64) []floorgraph.Option {
	opts := []floorgraph.Option{floorgraph.WithTolerance(tolerance)}
	for _, l := range w.links {
		opts = append(opts, floorgraph.WithLink(l[0], l[1]))
	}
	return opts
}

// locate resolves the floor under a zone's centre, falling back to the floor
// with the nearest centroid.
func (c *Connector) locate(idx *level.FloorIndex, zone level.Object) (level.Floor, bool) {
	center, err := zone.Center()
	if err != nil {
		return level.Floor{}, false
	}
	return idx.Locate(center, c.opts.NearestDist)
}

// allocator returns the configured id source or a counter past the largest
// id in s.
func (c *Connector) allocator(s level.Snapshot) func() int {
	if c.opts.NextID != nil {
		return c.opts.NextID
	}
	id := 0
	for _, o := range s.Objects {
		id = max(id, o.ID)
	}
	return func() int {
		id++
		return id
	}
}

func (c *Connector) corridorObject(id int, poly geom.Polygon) level.Object {
	return level.Object{
		ID:    id,
		Kind:  level.KindPolyFloor,
		Floor: c.opts.Layer,
		Label: DefaultLabel,
		Shape: level.PolyShape{
			Points: append([]geom.Point(nil), poly...),
			Z:      make([]float64, len(poly)),
			Closed: true,
		},
		Color: c.opts.Color,
	}
}

// Apply appends the corridors of res to doc and returns the new revision.
// A result without corridors leaves doc untouched.
func (c *Connector) Apply(doc *level.Document, res Result) uint64 {
	if len(res.Corridors) == 0 {
		return doc.Revision()
	}
	return doc.Append(res.Corridors...)
}
