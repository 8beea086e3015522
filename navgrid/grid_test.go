package navgrid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
	"github.com/katalvlaran/levelforge/navgrid"
)

const cell = 32.0

// snapshotOf wraps objs in a revision-1 snapshot at 32 px per meter.
func snapshotOf(objs ...level.Object) level.Snapshot {
	return level.NewDocument(objs, level.DefaultGridSize).Snapshot()
}

// roomGrid rasterizes a single 10×10 m room at the origin.
func roomGrid(t *testing.T, opts ...navgrid.BuildOption) *navgrid.Grid {
	t.Helper()
	s := snapshotOf(level.RectObject(1, level.KindFloorArea, geom.RectFromXYWH(0, 0, 320, 320)))
	g, err := navgrid.BuildSnapshot(s, 0, cell, opts...)
	require.NoError(t, err)
	return g
}

func TestBuild_Dimensions(t *testing.T) {
	g := roomGrid(t)

	// 10 cells of floor plus 2 cells of padding on each side.
	assert.Equal(t, 14, g.Width)
	assert.Equal(t, 14, g.Height)
	assert.Equal(t, geom.Pt(-64, -64), g.Origin)
	assert.Equal(t, uint64(1), g.Revision)
	assert.Equal(t, 100, g.WalkableCount())

	assert.False(t, g.Walkable(1, 1), "padding is blocked")
	assert.True(t, g.Walkable(2, 2))
	assert.True(t, g.Walkable(11, 11))
	assert.False(t, g.Walkable(12, 12))
	assert.False(t, g.Walkable(-1, 0), "out of bounds is blocked")
}

func TestBuild_WallProximityCosts(t *testing.T) {
	g := roomGrid(t)

	assert.True(t, math.IsInf(g.Cost(0, 0), 1))
	assert.Equal(t, navgrid.DefaultNearWallCost, g.Cost(2, 2))
	assert.Equal(t, navgrid.DefaultMidWallCost, g.Cost(3, 3))
	assert.Equal(t, 1.0, g.Cost(4, 4))
	assert.Equal(t, 1.0, g.Cost(7, 7))
	assert.Equal(t, navgrid.DefaultMidWallCost, g.Cost(3, 7))

	custom := roomGrid(t, navgrid.WithWallCosts(9, 3))
	assert.Equal(t, 9.0, custom.Cost(2, 5))
	assert.Equal(t, 3.0, custom.Cost(3, 5))
}

func TestBuild_Errors(t *testing.T) {
	s := snapshotOf(level.RectObject(1, level.KindWall, geom.RectFromXYWH(0, 0, 32, 320)))
	_, err := navgrid.BuildSnapshot(s, 0, cell)
	assert.ErrorIs(t, err, navgrid.ErrNoFloors)

	floor := snapshotOf(level.RectObject(1, level.KindFloorArea, geom.RectFromXYWH(0, 0, 320, 320)))
	_, err = navgrid.BuildSnapshot(floor, 1, cell)
	assert.ErrorIs(t, err, navgrid.ErrNoFloors, "other layers are ignored")

	_, err = navgrid.BuildSnapshot(floor, 0, 0)
	assert.ErrorIs(t, err, navgrid.ErrBadCellSize)

	_, err = navgrid.BuildSnapshot(floor, 0, cell, navgrid.WithPadding(-1))
	assert.ErrorIs(t, err, navgrid.ErrOptionViolation)

	_, err = navgrid.BuildSnapshot(floor, 0, cell, navgrid.WithWallCosts(0.5, 2))
	assert.ErrorIs(t, err, navgrid.ErrOptionViolation)
}

func TestBuild_PolygonFloor(t *testing.T) {
	// Right triangle: only cells below the diagonal are walkable.
	s := snapshotOf(level.PolyFloor(1, geom.Pt(0, 0), geom.Pt(320, 320), geom.Pt(0, 320)))
	g, err := navgrid.BuildSnapshot(s, 0, cell, navgrid.WithPadding(0))
	require.NoError(t, err)

	assert.True(t, g.Walkable(0, 9))
	assert.True(t, g.Walkable(2, 5))
	assert.False(t, g.Walkable(9, 0))
	assert.False(t, g.Walkable(6, 2))
}

func TestCellOfAndCenterOf(t *testing.T) {
	g := roomGrid(t)

	c, ok := g.CellOf(geom.Pt(0, 0))
	require.True(t, ok)
	assert.Equal(t, navgrid.Cell{X: 2, Y: 2}, c)
	assert.Equal(t, geom.Pt(16, 16), g.CenterOf(c.X, c.Y))

	c, ok = g.CellOf(geom.Pt(-0.5, 31.9))
	require.True(t, ok)
	assert.Equal(t, navgrid.Cell{X: 1, Y: 2}, c)

	_, ok = g.CellOf(geom.Pt(-100, 0))
	assert.False(t, ok)
}

func TestRegions(t *testing.T) {
	s := snapshotOf(
		level.RectObject(1, level.KindFloorArea, geom.RectFromXYWH(0, 0, 320, 320)),
		level.RectObject(2, level.KindFloorArea, geom.RectFromXYWH(640, 0, 320, 320)),
	)
	g, err := navgrid.BuildSnapshot(s, 0, cell)
	require.NoError(t, err)

	assert.Equal(t, 2, g.RegionCount())
	regions := g.Regions()
	require.Len(t, regions, 2)
	assert.Len(t, regions[0], 100)
	assert.Len(t, regions[1], 100)

	a, _ := g.CellOf(geom.Pt(100, 100))
	b, _ := g.CellOf(geom.Pt(700, 100))
	c, _ := g.CellOf(geom.Pt(200, 200))
	assert.False(t, g.SameRegion(a, b))
	assert.True(t, g.SameRegion(a, c))
	assert.Equal(t, -1, g.Region(0, 0))
}

func TestRegions_DiagonalTouchIsSeparate(t *testing.T) {
	// Two rooms meeting only at a corner cannot be crossed without cutting it.
	s := snapshotOf(
		level.RectObject(1, level.KindFloorArea, geom.RectFromXYWH(0, 0, 64, 64)),
		level.RectObject(2, level.KindFloorArea, geom.RectFromXYWH(80, 80, 64, 64)),
	)
	g, err := navgrid.BuildSnapshot(s, 0, cell, navgrid.WithPadding(0))
	require.NoError(t, err)

	assert.Equal(t, 2, g.RegionCount())
}
