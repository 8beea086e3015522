package floorgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/levelforge/floorgraph"
	"github.com/katalvlaran/levelforge/geom"
	"github.com/katalvlaran/levelforge/level"
)

// square returns a floor for the axis-aligned square [x,x+size]×[y,y+size].
func square(id int, x, y, size float64) level.Floor {
	r := geom.RectFromXYWH(x, y, size, size)
	return level.Floor{ID: id, Kind: level.KindPolyFloor, Polygon: r.Polygon()}
}

// chain: 1–2–3 touch edge to edge, 4 is 10 px off 3 (within tolerance),
// 5 stands alone.
func chain() []level.Floor {
	return []level.Floor{
		square(1, 0, 0, 320),
		square(2, 320, 0, 320),
		square(3, 640, 0, 320),
		square(4, 970, 0, 320),
		square(5, 2000, 2000, 320),
	}
}

func TestBuild_Adjacency(t *testing.T) {
	g, err := floorgraph.Build(chain())
	require.NoError(t, err)

	assert.Equal(t, 5, g.Len())
	assert.Equal(t, []int{1, 2, 3, 4, 5}, g.IDs())
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
	assert.Equal(t, []int{2, 4}, g.Neighbors(3))
	assert.Empty(t, g.Neighbors(5))
	assert.Nil(t, g.Neighbors(99))
	assert.Equal(t, 2, g.Degree(2))
	assert.Zero(t, g.Degree(99))
	assert.False(t, g.HasEdge(1, 3))
}

func TestBuild_Symmetric(t *testing.T) {
	floors := append(chain(),
		square(6, 330, 330, 100),
		square(7, 100, 330, 240),
	)
	g, err := floorgraph.Build(floors)
	require.NoError(t, err)

	for _, a := range g.IDs() {
		for _, b := range g.Neighbors(a) {
			assert.True(t, g.HasEdge(b, a), "%d→%d has no reverse edge", a, b)
		}
	}
}

func TestBuild_Tolerance(t *testing.T) {
	g, err := floorgraph.Build(chain(), floorgraph.WithTolerance(5))
	require.NoError(t, err)
	assert.False(t, g.HasEdge(3, 4), "10 px apart is beyond 5 px")

	g, err = floorgraph.Build(chain(), floorgraph.WithTolerance(0))
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 2), "shared vertices still touch at zero tolerance")

	_, err = floorgraph.Build(chain(), floorgraph.WithTolerance(-1))
	assert.ErrorIs(t, err, floorgraph.ErrOptionViolation)
}

func TestBuild_DuplicateIDsKeepFirst(t *testing.T) {
	g, err := floorgraph.Build([]level.Floor{square(1, 0, 0, 10), square(1, 500, 500, 10)})
	require.NoError(t, err)

	assert.Equal(t, 1, g.Len())
	f, ok := g.Floor(1)
	require.True(t, ok)
	assert.Equal(t, 0.0, f.Polygon[0].X)
}

func TestPath(t *testing.T) {
	g, err := floorgraph.Build(chain())
	require.NoError(t, err)

	cases := []struct {
		name     string
		from, to int
		want     []int
		err      error
	}{
		{"same floor", 2, 2, []int{2}, nil},
		{"neighbors", 1, 2, []int{1, 2}, nil},
		{"across chain", 1, 4, []int{1, 2, 3, 4}, nil},
		{"reverse", 4, 1, []int{4, 3, 2, 1}, nil},
		{"isolated", 1, 5, nil, floorgraph.ErrNoPath},
		{"unknown start", 42, 1, nil, floorgraph.ErrFloorNotFound},
		{"unknown goal", 1, 42, nil, floorgraph.ErrFloorNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := floorgraph.Path(g, tc.from, tc.to)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPath_CornerContactCounts(t *testing.T) {
	// 2×2 block of squares: 1 and 3 meet only at (100,100).
	floors := []level.Floor{
		square(1, 0, 0, 100),
		square(2, 100, 0, 100),
		square(3, 100, 100, 100),
		square(4, 0, 100, 100),
	}
	g, err := floorgraph.Build(floors, floorgraph.WithTolerance(0))
	require.NoError(t, err)

	got, err := floorgraph.Path(g, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

func TestReachableAndComponents(t *testing.T) {
	g, err := floorgraph.Build(chain())
	require.NoError(t, err)

	r, err := floorgraph.Reachable(g, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Size())
	for _, id := range []int{1, 2, 3, 4} {
		assert.True(t, r.Has(id))
	}
	assert.False(t, r.Has(5))

	_, err = floorgraph.Reachable(g, 42)
	assert.ErrorIs(t, err, floorgraph.ErrFloorNotFound)

	assert.Equal(t, [][]int{{1, 2, 3, 4}, {5}}, floorgraph.Components(g))
}

func TestClosestEdges(t *testing.T) {
	// 10 m squares at x∈[0,10] and x∈[30,40] meters.
	a := square(1, 0, -160, 320)
	b := square(2, 960, -160, 320)

	gap, ok := floorgraph.ClosestEdges(a, b)
	require.True(t, ok)
	assert.InDelta(t, 640, gap.Distance, 1e-9)
	assert.Equal(t, geom.Pt(320, 0), gap.EdgeA.Mid)
	assert.Equal(t, geom.Pt(960, 0), gap.EdgeB.Mid)
	assert.True(t, gap.EdgeA.Vertical())
	assert.True(t, gap.EdgeB.Vertical())

	_, ok = floorgraph.ClosestEdges(a, level.Floor{ID: 3})
	assert.False(t, ok)
}

func TestFindGap(t *testing.T) {
	g, err := floorgraph.Build(chain())
	require.NoError(t, err)

	main, err := floorgraph.Reachable(g, 1)
	require.NoError(t, err)
	lone, err := floorgraph.Reachable(g, 5)
	require.NoError(t, err)

	gap, err := floorgraph.GapBetween(g, main, lone)
	require.NoError(t, err)
	assert.Equal(t, 4, gap.FloorA.ID, "floor 4 is the closest of the chain")
	assert.Equal(t, 5, gap.FloorB.ID)

	_, err = floorgraph.FindGap(nil, []level.Floor{square(9, 0, 0, 1)})
	assert.ErrorIs(t, err, floorgraph.ErrNoGap)
}

func TestBuild_Links(t *testing.T) {
	g, err := floorgraph.Build(chain(),
		floorgraph.WithLink(1, 5),
		floorgraph.WithLink(2, 2),
		floorgraph.WithLink(1, 99),
	)
	require.NoError(t, err)

	assert.True(t, g.HasEdge(1, 5))
	assert.True(t, g.HasEdge(5, 1))
	assert.False(t, g.HasEdge(2, 2), "self links are ignored")
	assert.Nil(t, g.Neighbors(99), "links to unknown floors are ignored")

	path, err := floorgraph.Path(g, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 5}, path)
}

func TestBuild_EdgeContact(t *testing.T) {
	// A 5 m corridor meets the middle of room 1's east side.
	room := square(1, 0, 0, 320)
	hall := level.Floor{ID: 2, Kind: level.KindFloorArea, Polygon: geom.NewRect(320, 80, 960, 240).Polygon()}

	g, err := floorgraph.Build([]level.Floor{room, hall})
	require.NoError(t, err)
	assert.False(t, g.HasEdge(1, 2), "no vertex pair is within tolerance")

	g, err = floorgraph.Build([]level.Floor{room, hall}, floorgraph.WithEdgeContact())
	require.NoError(t, err)
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 1))
	assert.Equal(t, 1, g.Degree(1))
}
