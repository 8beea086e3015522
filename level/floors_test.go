package level_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

func indexFixture(t *testing.T, opts ...level.IndexOption) *level.FloorIndex {
	t.Helper()
	upper := level.RectObject(9, level.KindFloorArea, geom.NewRect(0, 0, 1000, 1000))
	upper.Floor = 1
	snap := level.Snapshot{
		GridSize: 32,
		Objects: []level.Object{
			level.PolyFloor(1, geom.Pt(0, 0), geom.Pt(320, 0), geom.Pt(320, 320), geom.Pt(0, 320)),
			level.RectObject(2, level.KindFloorArea, geom.NewRect(400, 0, 528, 64)),
			level.RectObject(3, level.KindSpawnDef, geom.RectFromXYWH(-400, 0, 320, 320)),
			level.RectObject(4, level.KindWall, geom.NewRect(320, 0, 400, 320)),
			level.PolyFloor(5, geom.Pt(0, 0), geom.Pt(1, 1)), // too few vertices
			upper,
		},
	}
	idx, err := level.NewFloorIndex(snap, 0, opts...)
	require.NoError(t, err)
	return idx
}

func TestFloorIndex_Extraction(t *testing.T) {
	idx := indexFixture(t)
	require.Equal(t, 3, idx.Len(), "polyfloor, floor-area and spawn zone on layer 0")
	b, ok := idx.Bounds()
	require.True(t, ok)
	assert.Equal(t, geom.NewRect(-400, 0, 528, 320), b)

	explicit := indexFixture(t, level.WithExplicitFloorsOnly())
	assert.Equal(t, 2, explicit.Len())
	_, ok = explicit.ByID(3)
	assert.False(t, ok, "spawn zone excluded from explicit floors")
}

// TestFloorIndex_Contains checks the walkability predicate: strictly inside
// any floor is walkable, strictly outside all floors is not.
func TestFloorIndex_Contains(t *testing.T) {
	idx := indexFixture(t)
	inside := []geom.Point{{X: 160, Y: 160}, {X: 450, Y: 30}, {X: -200, Y: 100}, {X: 1, Y: 319}}
	for _, p := range inside {
		assert.True(t, idx.Contains(p), "inside %v", p)
	}
	outside := []geom.Point{{X: 360, Y: 160}, {X: 450, Y: 100}, {X: -500, Y: 0}, {X: 600, Y: 600}}
	for _, p := range outside {
		assert.False(t, idx.Contains(p), "outside %v", p)
	}
}

func TestFloorIndex_Locate(t *testing.T) {
	idx := indexFixture(t)

	f, ok := idx.FloorAt(geom.Pt(100, 100))
	require.True(t, ok)
	assert.Equal(t, 1, f.ID)

	f, ok = idx.Locate(geom.Pt(470, 100), 500)
	require.True(t, ok, "falls back to the nearest centroid")
	assert.Equal(t, 2, f.ID)

	_, ok = idx.NearestFloor(geom.Pt(5000, 5000), 500)
	assert.False(t, ok)

	assert.Equal(t, "floor-area#2", f.Name())
}

func TestFloorIndex_Empty(t *testing.T) {
	idx, err := level.NewFloorIndex(level.Snapshot{}, 0)
	require.NoError(t, err)
	_, ok := idx.Bounds()
	assert.False(t, ok)
	assert.False(t, idx.Contains(geom.Pt(0, 0)))
}
