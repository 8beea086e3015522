package level_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

const sampleFile = `{
  "gridSize": 32,
  "nextId": 9,
  "objects": [
    {"id": 1, "type": "polyfloor", "floor": 0, "label": "Mid",
     "points": [{"x":0,"y":0,"z":0},{"x":320,"y":0,"z":0},{"x":320,"y":320,"z":1.5},{"x":0,"y":320,"z":0}],
     "closed": true, "floorHeight": 0},
    {"id": 2, "type": "floor-area", "floor": 0, "x": 400, "y": 0, "width": 128, "height": 64},
    {"id": 3, "type": "spawn-def", "floor": 0, "x": 10, "y": 20},
    {"id": 4, "type": "objective", "floor": 1, "x": 0, "y": 0},
    {"id": 5, "type": "wall-diag", "floor": 0, "x1": 0, "y1": 0, "x2": 64, "y2": 64},
    {"id": 6, "type": "path", "floor": 0, "x1": 0, "y1": 0, "x2": 10, "y2": 0}
  ]
}`

func TestDecode(t *testing.T) {
	f, err := level.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)
	require.Len(t, f.Objects, 6)
	assert.Equal(t, 32.0, f.GridSize)
	assert.Equal(t, 9, f.NextID)

	poly, ok := f.Objects[0].Shape.(level.PolyShape)
	require.True(t, ok, "points decode to a PolyShape")
	assert.True(t, poly.Closed)
	assert.Equal(t, 1.5, poly.Z[2])
	assert.Equal(t, "Mid", f.Objects[0].Label)

	rect, ok := f.Objects[1].Shape.(level.RectShape)
	require.True(t, ok)
	assert.Equal(t, geom.NewRect(400, 0, 528, 64), rect.Rect)

	spawn := f.Objects[2].Shape.(level.RectShape)
	assert.Equal(t, 320.0, spawn.Width(), "spawn without size gets the 10m default")
	obj := f.Objects[3].Shape.(level.RectShape)
	assert.Equal(t, 512.0, obj.Height(), "objective without size gets the 16m default")
	assert.Equal(t, 1, f.Objects[3].Floor)

	_, ok = f.Objects[4].Shape.(level.LineShape)
	assert.True(t, ok)
	assert.Equal(t, level.KindSightline, f.Objects[5].Kind)
}

func TestDecode_Errors(t *testing.T) {
	cases := []struct {
		name string
		body string
		err  error
	}{
		{"UnknownKind", `{"objects":[{"id":1,"type":"teleporter","x":0,"y":0}]}`, level.ErrUnknownKind},
		{"NoGeometry", `{"objects":[{"id":1,"type":"polyfloor","points":[{"x":1,"y":1}]}]}`, level.ErrNoGeometry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := level.Decode(strings.NewReader(tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}

	_, err := level.Decode(strings.NewReader(`{"objects":`))
	assert.Error(t, err)
}

func TestEncode_RoundTripKeepsShapes(t *testing.T) {
	f, err := level.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, level.Encode(&buf, f))
	again, err := level.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.Objects, again.Objects)
}

func TestKind(t *testing.T) {
	for k := level.KindFloorArea; k <= level.KindSightline; k++ {
		got, err := level.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	assert.True(t, level.KindPolyFloor.IsFloor())
	assert.False(t, level.KindSpawnDef.IsFloor())
	assert.True(t, level.KindSpawnOff.IsFloorBearing())
	assert.True(t, level.KindObjective.IsFloorBearing())
	assert.False(t, level.KindWall.IsFloorBearing())
	assert.Equal(t, "kind(99)", level.Kind(99).String())
}

func TestDocument_RevisionAdvancesOnMutation(t *testing.T) {
	doc := level.NewDocument([]level.Object{
		level.RectObject(4, level.KindFloorArea, geom.NewRect(0, 0, 10, 10)),
	}, 32)
	r0 := doc.Revision()
	assert.Equal(t, 5, doc.NextID())

	r1 := doc.Append(level.PolyFloor(doc.NextID(), geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1)))
	assert.Greater(t, r1, r0)

	r2, err := doc.Replace(level.RectObject(4, level.KindFloorArea, geom.NewRect(0, 0, 20, 20)))
	require.NoError(t, err)
	assert.Greater(t, r2, r1)

	r3, err := doc.Remove(6)
	require.NoError(t, err)
	assert.Greater(t, r3, r2)

	_, err = doc.Remove(6)
	assert.ErrorIs(t, err, level.ErrObjectNotFound)
	assert.Equal(t, r3, doc.Revision(), "failed mutation keeps the revision")

	snap := doc.Snapshot()
	assert.Equal(t, r3, snap.Revision)
	require.Len(t, snap.Objects, 1)
	assert.Equal(t, 20.0, snap.Meters(640))
	assert.Equal(t, 64.0, snap.Px(2))
}

func TestDocument_IDsAreUnique(t *testing.T) {
	a := level.NewDocument(nil, 32)
	b := level.NewDocument(nil, 32)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, a.Revision(), b.Revision())
	assert.Equal(t, a.ID(), a.Snapshot().Doc)
	assert.Equal(t, b.ID(), b.Snapshot().Doc)
}

func TestSnapshot_LayerLookups(t *testing.T) {
	lower := level.RectObject(1, level.KindSpawnDef, geom.NewRect(0, 0, 10, 10))
	upper := level.RectObject(2, level.KindSpawnDef, geom.NewRect(100, 0, 110, 10))
	upper.Floor = 1
	extra := level.RectObject(3, level.KindSpawnDef, geom.NewRect(200, 0, 210, 10))
	extra.Floor = 1
	s := level.Snapshot{Objects: []level.Object{lower, upper, extra}}

	o, ok := s.FirstOn(level.KindSpawnDef, 1)
	require.True(t, ok)
	assert.Equal(t, 2, o.ID)
	o, ok = s.FirstOn(level.KindSpawnDef, 0)
	require.True(t, ok)
	assert.Equal(t, 1, o.ID)
	_, ok = s.FirstOn(level.KindObjective, 0)
	assert.False(t, ok)
	_, ok = s.FirstOn(level.KindSpawnDef, 2)
	assert.False(t, ok)

	assert.Equal(t, 1, s.CountOn(level.KindSpawnDef, 0))
	assert.Equal(t, 2, s.CountOn(level.KindSpawnDef, 1))
	assert.Equal(t, 0, s.CountOn(level.KindSpawnOff, 1))
}

func TestObject_CenterAndBounds(t *testing.T) {
	o := level.PolyFloor(1, geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10))
	c, err := o.Center()
	require.NoError(t, err)
	assert.InDelta(t, 5.0, c.X, 1e-9)

	_, err = level.Object{ID: 3}.Center()
	assert.ErrorIs(t, err, level.ErrUnknownShape)
	_, err = level.Object{ID: 3}.Bounds()
	assert.ErrorIs(t, err, level.ErrUnknownShape)
}

func TestDocument_FileKeepsNextID(t *testing.T) {
	f, err := level.Decode(strings.NewReader(sampleFile))
	require.NoError(t, err)

	doc := f.Document()
	doc.Append(level.RectObject(doc.NextID(), level.KindFloorArea, geom.NewRect(0, 0, 64, 64)))

	out := doc.File()
	assert.Equal(t, 32.0, out.GridSize)
	assert.Equal(t, 10, out.NextID)
	require.Len(t, out.Objects, 7)
	assert.Equal(t, 9, out.Objects[6].ID)
}
