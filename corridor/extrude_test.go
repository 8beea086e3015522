package corridor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levelforge/corridor"
	"github.com/katalvlaran/levelforge/floorgraph"
	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// rectFloor returns an explicit floor for [x0,x1]×[y0,y1].
func rectFloor(id int, x0, y0, x1, y1 float64) level.Floor {
	return level.Floor{ID: id, Kind: level.KindPolyFloor, Polygon: geom.NewRect(x0, y0, x1, y1).Polygon()}
}

// Two 10 m squares at x∈[0,10] and x∈[30,40] meters, y∈[-5,5].
var (
	westSquare = rectFloor(1, 0, -160, 320, 160)
	eastSquare = rectFloor(2, 960, -160, 1280, 160)
)

func TestDirection(t *testing.T) {
	assert.Equal(t, "east", corridor.East.String())
	assert.Equal(t, "direction(9)", corridor.Direction(9).String())
	assert.True(t, corridor.West.Horizontal())
	assert.False(t, corridor.North.Horizontal())
}

func TestFindSlot_FacesTarget(t *testing.T) {
	s, err := corridor.FindSlot(westSquare, eastSquare, 160)
	require.NoError(t, err)
	assert.Equal(t, corridor.East, s.Direction)
	assert.Equal(t, geom.Pt(320, 0), s.Mid)
	assert.InDelta(t, 1.0, s.Alignment, 1e-9)
	assert.InDelta(t, 160, s.Span.Length(), 1e-9)
	assert.InDelta(t, 320, s.Span.A.X, 1e-9)

	s, err = corridor.FindSlot(eastSquare, westSquare, 160)
	require.NoError(t, err)
	assert.Equal(t, corridor.West, s.Direction)
	assert.Equal(t, geom.Pt(960, 0), s.Mid)

	below := rectFloor(3, 0, 640, 320, 960)
	s, err = corridor.FindSlot(westSquare, below, 160)
	require.NoError(t, err)
	assert.Equal(t, corridor.South, s.Direction, "+y is south")
}

func TestFindSlot_WindingIndependent(t *testing.T) {
	ccw := westSquare
	ccw.Polygon = geom.Polygon{ccw.Polygon[3], ccw.Polygon[2], ccw.Polygon[1], ccw.Polygon[0]}

	s, err := corridor.FindSlot(ccw, eastSquare, 160)
	require.NoError(t, err)
	assert.Equal(t, corridor.East, s.Direction)
	assert.Equal(t, geom.Pt(320, 0), s.Mid)
}

func TestFindSlot_SkipsShortEdges(t *testing.T) {
	// 4 m tall strip: the east edge is too short for a 5 m corridor, so the
	// long top or bottom edge is used instead.
	strip := rectFloor(3, 0, -64, 320, 64)
	s, err := corridor.FindSlot(strip, eastSquare, 160)
	require.NoError(t, err)
	assert.False(t, s.Direction.Horizontal())

	_, err = corridor.FindSlot(westSquare, eastSquare, 400)
	assert.ErrorIs(t, err, corridor.ErrNoSlot)

	_, err = corridor.FindSlot(westSquare, eastSquare, 0)
	assert.ErrorIs(t, err, corridor.ErrBadWidth)
}

func TestStraight_TouchesBothSlots(t *testing.T) {
	a, err := corridor.FindSlot(westSquare, eastSquare, 160)
	require.NoError(t, err)
	b, err := corridor.FindSlot(eastSquare, westSquare, 160)
	require.NoError(t, err)

	poly, err := corridor.Straight(a, b, 160)
	require.NoError(t, err)
	require.Len(t, poly, 4)
	assert.Equal(t, geom.NewRect(320, -80, 960, 80), poly.Bounds())
	assert.InDelta(t, 640*160, poly.Area(), 1e-6)

	// Short sides lie exactly on the two source edges.
	for _, p := range poly {
		assert.True(t, p.X == 320 || p.X == 960, "vertex %v off the slot lines", p)
	}
}

func TestStraight_OverlapAndFallback(t *testing.T) {
	// Overlap of the source edges is y∈[0,160]: wide enough, so the
	// corridor stays inside it.
	high := rectFloor(1, 0, -320, 320, 160)
	low := rectFloor(2, 960, 0, 1280, 480)
	a, err := corridor.FindSlot(high, low, 160)
	require.NoError(t, err)
	b, err := corridor.FindSlot(low, high, 160)
	require.NoError(t, err)
	poly, err := corridor.Straight(a, b, 160)
	require.NoError(t, err)
	assert.Equal(t, geom.NewRect(320, 0, 960, 160), poly.Bounds())

	// No overlap: centred on the union midpoint.
	far := rectFloor(3, 960, 320, 1280, 640)
	b, err = corridor.FindSlot(far, high, 160)
	require.NoError(t, err)
	poly, err = corridor.Straight(a, b, 160)
	require.NoError(t, err)
	assert.Equal(t, geom.NewRect(320, 80, 960, 240), poly.Bounds())
}

func TestStraight_Errors(t *testing.T) {
	a, err := corridor.FindSlot(westSquare, eastSquare, 160)
	require.NoError(t, err)

	_, err = corridor.Straight(a, a, 160)
	assert.ErrorIs(t, err, corridor.ErrDegenerate)

	below := rectFloor(3, 0, 640, 320, 960)
	v, err := corridor.FindSlot(below, westSquare, 160)
	require.NoError(t, err)
	_, err = corridor.Straight(a, v, 160)
	assert.ErrorIs(t, err, corridor.ErrDegenerate)
}

// tallAndWide: a tall room whose east side faces a wide, short room up and
// to the right; the short room's ends are too narrow for a 5 m corridor.
func tallAndWide() (level.Floor, level.Floor) {
	return rectFloor(1, 0, 0, 320, 960), rectFloor(2, 640, -128, 1600, 0)
}

func TestWithBends_SharesEdges(t *testing.T) {
	tall, wide := tallAndWide()
	a, err := corridor.FindSlot(tall, wide, 160)
	require.NoError(t, err)
	b, err := corridor.FindSlot(wide, tall, 160)
	require.NoError(t, err)
	require.Equal(t, corridor.East, a.Direction)
	require.Equal(t, corridor.South, b.Direction)

	pieces, err := corridor.WithBends(a, b, 160)
	require.NoError(t, err)
	require.Len(t, pieces, 3)

	legA, bend, legB := pieces[0].Bounds(), pieces[1].Bounds(), pieces[2].Bounds()
	assert.Equal(t, geom.NewRect(320, 400, 1040, 560), legA)
	assert.Equal(t, geom.NewRect(1040, 400, 1200, 560), bend)
	assert.Equal(t, geom.NewRect(1040, 0, 1200, 400), legB)

	// Joints: shared edges, zero overlap.
	assert.Equal(t, legA.MaxX, bend.MinX)
	assert.Equal(t, legB.MaxY, bend.MinY)

	// Reversed order starts from the wide room.
	pieces, err = corridor.WithBends(b, a, 160)
	require.NoError(t, err)
	require.Len(t, pieces, 3)
	assert.Equal(t, geom.NewRect(1040, 0, 1200, 400), pieces[0].Bounds())
	assert.Equal(t, geom.NewRect(320, 400, 1040, 560), pieces[2].Bounds())
}

func TestWithBends_DropsEmptyLeg(t *testing.T) {
	h := &corridor.Slot{Mid: geom.Pt(100, 0), Direction: corridor.East}
	v := &corridor.Slot{Mid: geom.Pt(120, -400), Direction: corridor.South}

	pieces, err := corridor.WithBends(h, v, 160)
	require.NoError(t, err)
	require.Len(t, pieces, 2, "the horizontal slot already lies inside the bend")
	assert.Equal(t, geom.NewRect(40, -80, 200, 80), pieces[0].Bounds())
	assert.Equal(t, geom.NewRect(40, -400, 200, -80), pieces[1].Bounds())

	_, err = corridor.WithBends(h, h, 160)
	assert.ErrorIs(t, err, corridor.ErrDegenerate)
}

func TestExtrude(t *testing.T) {
	gap, err := floorgraph.FindGap([]level.Floor{westSquare}, []level.Floor{eastSquare})
	require.NoError(t, err)
	pieces, err := corridor.Extrude(gap, 160)
	require.NoError(t, err)
	require.Len(t, pieces, 1)

	tall, wide := tallAndWide()
	gap, err = floorgraph.FindGap([]level.Floor{tall}, []level.Floor{wide})
	require.NoError(t, err)
	pieces, err = corridor.Extrude(gap, 160)
	require.NoError(t, err)
	assert.Len(t, pieces, 3)

	_, err = corridor.Extrude(gap, 2000)
	assert.ErrorIs(t, err, corridor.ErrNoSlot)
}
