package level

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/levelforge/geom"
)

// Default zone sizes in meters for spawn/objective objects saved without
// width and height.
const (
	DefaultSpawnSize     = 10.0
	DefaultObjectiveSize = 16.0
)

// File is a decoded editor save file.
type File struct {
	GridSize float64
	NextID   int
	Objects  []Object
}

// Document wraps the file's objects in a Document.
func (f *File) Document() *Document {
	d := NewDocument(f.Objects, f.GridSize)
	if f.NextID > d.nextID {
		d.nextID = f.NextID
	}
	return d
}

// File returns the document's current objects as a save file.
func (d *Document) File() *File {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return &File{
		GridSize: d.gridSize,
		NextID:   d.nextID,
		Objects:  append([]Object(nil), d.objects...),
	}
}

type rawPoint struct {
	X float64  `json:"x"`
	Y float64  `json:"y"`
	Z *float64 `json:"z,omitempty"`
}

type rawObject struct {
	ID          int        `json:"id"`
	Type        string     `json:"type"`
	Category    string     `json:"category,omitempty"`
	Floor       int        `json:"floor"`
	Label       string     `json:"label,omitempty"`
	X           *float64   `json:"x,omitempty"`
	Y           *float64   `json:"y,omitempty"`
	Width       *float64   `json:"width,omitempty"`
	Height      *float64   `json:"height,omitempty"`
	Points      []rawPoint `json:"points,omitempty"`
	Closed      *bool      `json:"closed,omitempty"`
	X1          *float64   `json:"x1,omitempty"`
	Y1          *float64   `json:"y1,omitempty"`
	X2          *float64   `json:"x2,omitempty"`
	Y2          *float64   `json:"y2,omitempty"`
	FloorHeight float64    `json:"floorHeight,omitempty"`
	Color       string     `json:"color,omitempty"`
}

type rawFile struct {
	GridSize float64     `json:"gridSize,omitempty"`
	NextID   int         `json:"nextId,omitempty"`
	Objects  []rawObject `json:"objects"`
}

// Decode reads an editor save file. Each raw object is mapped onto exactly
// one Shape variant: points (≥2) win over line endpoints, which win over
// x/y rectangle fields.
func Decode(r io.Reader) (*File, error) {
	var raw rawFile
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("level: decoding file: %w", err)
	}
	f := &File{GridSize: raw.GridSize, NextID: raw.NextID}
	if f.GridSize <= 0 {
		f.GridSize = DefaultGridSize
	}
	f.Objects = make([]Object, 0, len(raw.Objects))
	for i, ro := range raw.Objects {
		o, err := ro.object(f.GridSize)
		if err != nil {
			return nil, fmt.Errorf("level: object #%d (id %d): %w", i, ro.ID, err)
		}
		f.Objects = append(f.Objects, o)
	}
	return f, nil
}

func (ro rawObject) object(gridSize float64) (Object, error) {
	kind, err := ParseKind(ro.Type)
	if err != nil {
		return Object{}, err
	}
	o := Object{
		ID:          ro.ID,
		Kind:        kind,
		Floor:       ro.Floor,
		Label:       ro.Label,
		FloorHeight: ro.FloorHeight,
		Color:       ro.Color,
	}
	switch {
	case len(ro.Points) >= 2:
		ps := PolyShape{
			Points: make([]geom.Point, len(ro.Points)),
			Z:      make([]float64, len(ro.Points)),
			Closed: kind == KindPolyFloor,
		}
		if ro.Closed != nil {
			ps.Closed = *ro.Closed
		}
		for i, p := range ro.Points {
			ps.Points[i] = geom.Pt(p.X, p.Y)
			if p.Z != nil {
				ps.Z[i] = *p.Z
			}
		}
		o.Shape = ps
	case ro.X1 != nil && ro.Y1 != nil && ro.X2 != nil && ro.Y2 != nil:
		o.Shape = LineShape{A: geom.Pt(*ro.X1, *ro.Y1), B: geom.Pt(*ro.X2, *ro.Y2)}
	case ro.X != nil && ro.Y != nil:
		w, h := deref(ro.Width), deref(ro.Height)
		if def := defaultZoneSize(kind) * gridSize; def > 0 {
			if ro.Width == nil {
				w = def
			}
			if ro.Height == nil {
				h = def
			}
		}
		o.Shape = RectShape{geom.RectFromXYWH(*ro.X, *ro.Y, w, h)}
	default:
		return Object{}, ErrNoGeometry
	}
	return o, nil
}

func defaultZoneSize(k Kind) float64 {
	switch {
	case k.IsSpawn():
		return DefaultSpawnSize
	case k == KindObjective:
		return DefaultObjectiveSize
	}
	return 0
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

// Encode writes f in the editor's save format.
func Encode(w io.Writer, f *File) error {
	raw := rawFile{GridSize: f.GridSize, NextID: f.NextID, Objects: make([]rawObject, 0, len(f.Objects))}
	for _, o := range f.Objects {
		ro, err := fromObject(o)
		if err != nil {
			return err
		}
		raw.Objects = append(raw.Objects, ro)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return fmt.Errorf("level: encoding file: %w", err)
	}
	return nil
}

func fromObject(o Object) (rawObject, error) {
	ro := rawObject{
		ID:          o.ID,
		Type:        o.Kind.String(),
		Floor:       o.Floor,
		Label:       o.Label,
		FloorHeight: o.FloorHeight,
		Color:       o.Color,
	}
	if o.Kind.IsFloor() {
		ro.Category = "floors"
	}
	switch s := o.Shape.(type) {
	case RectShape:
		x, y, w, h := s.MinX, s.MinY, s.Width(), s.Height()
		ro.X, ro.Y, ro.Width, ro.Height = &x, &y, &w, &h
	case PolyShape:
		closed := s.Closed
		ro.Closed = &closed
		ro.Points = make([]rawPoint, len(s.Points))
		for i, p := range s.Points {
			rp := rawPoint{X: p.X, Y: p.Y}
			if i < len(s.Z) {
				z := s.Z[i]
				rp.Z = &z
			}
			ro.Points[i] = rp
		}
	case LineShape:
		x1, y1, x2, y2 := s.A.X, s.A.Y, s.B.X, s.B.Y
		ro.X1, ro.Y1, ro.X2, ro.Y2 = &x1, &y1, &x2, &y2
	default:
		return rawObject{}, fmt.Errorf("%w: object %d", ErrUnknownShape, o.ID)
	}
	return ro, nil
}
