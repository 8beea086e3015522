package level

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// DefaultGridSize is the editor's pixels-per-meter ratio.
const DefaultGridSize = 32.0

// Snapshot is an immutable view of the object list at one revision.
// Algorithms receive a Snapshot explicitly instead of reading editor state.
// Doc names the Document it came from; (Doc, Revision) identifies the
// object list across every document in the process.
type Snapshot struct {
	Objects  []Object
	Doc      uint64
	Revision uint64
	GridSize float64 // pixels per meter
}

// Px converts meters to pixels using the snapshot grid size.
func (s Snapshot) Px(meters float64) float64 {
	return meters * s.gridSize()
}

// Meters converts pixels to meters using the snapshot grid size.
func (s Snapshot) Meters(px float64) float64 {
	return px / s.gridSize()
}

func (s Snapshot) gridSize() float64 {
	if s.GridSize <= 0 {
		return DefaultGridSize
	}
	return s.GridSize
}

// FirstOn returns the first object of kind k on layer, if any.
func (s Snapshot) FirstOn(k Kind, layer int) (Object, bool) {
	for _, o := range s.Objects {
		if o.Kind == k && o.Floor == layer {
			return o, true
		}
	}
	return Object{}, false
}

// CountOn returns how many objects of kind k sit on layer.
func (s Snapshot) CountOn(k Kind, layer int) int {
	n := 0
	for _, o := range s.Objects {
		if o.Kind == k && o.Floor == layer {
			n++
		}
	}
	return n
}

// docSeq hands out Document ids.
var docSeq atomic.Uint64

// Document is the editor-owned, mutable object list. Every mutation bumps
// Revision so caches keyed by revision know to rebuild.
// All methods are safe for concurrent use.
type Document struct {
	mu       sync.RWMutex
	id       uint64
	objects  []Object
	revision uint64
	nextID   int
	gridSize float64
}

// NewDocument wraps objs in a Document at revision 1. nextID starts after
// the largest id present. Each Document gets an id no other Document in the
// process shares.
func NewDocument(objs []Object, gridSize float64) *Document {
	d := &Document{
		id:       docSeq.Add(1),
		objects:  append([]Object(nil), objs...),
		revision: 1,
		gridSize: gridSize,
		nextID:   1,
	}
	for _, o := range objs {
		if o.ID >= d.nextID {
			d.nextID = o.ID + 1
		}
	}
	return d
}

// Snapshot copies out the current objects and revision.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return Snapshot{
		Objects:  append([]Object(nil), d.objects...),
		Doc:      d.id,
		Revision: d.revision,
		GridSize: d.gridSize,
	}
}

// ID returns the process-unique document id carried by its snapshots.
func (d *Document) ID() uint64 {
	return d.id
}

// Revision returns the current revision.
func (d *Document) Revision() uint64 {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.revision
}

// NextID allocates a fresh object id.
func (d *Document) NextID() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := d.nextID
	d.nextID++
	return id
}

// Append adds objects and bumps the revision.
func (d *Document) Append(objs ...Object) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, o := range objs {
		if o.ID >= d.nextID {
			d.nextID = o.ID + 1
		}
	}
	d.objects = append(d.objects, objs...)
	d.revision++
	return d.revision
}

// Replace swaps the object with o.ID for o and bumps the revision.
func (d *Document) Replace(o Object) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.objects {
		if d.objects[i].ID == o.ID {
			d.objects[i] = o
			d.revision++
			return d.revision, nil
		}
	}
	return d.revision, fmt.Errorf("%w: id %d", ErrObjectNotFound, o.ID)
}

// Remove deletes the object with the given id and bumps the revision.
func (d *Document) Remove(id int) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i := range d.objects {
		if d.objects[i].ID == id {
			d.objects = append(d.objects[:i], d.objects[i+1:]...)
			d.revision++
			return d.revision, nil
		}
	}
	return d.revision, fmt.Errorf("%w: id %d", ErrObjectNotFound, id)
}
