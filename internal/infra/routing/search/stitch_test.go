package search

import (
	"context"
	"testing"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments(0))
	assert.Nil(t, Segments(1))
	assert.Equal(t, []Segment{{From: 0, To: 1}}, Segments(2))
	assert.Equal(t, []Segment{{0, 1}, {1, 2}, {2, 3}}, Segments(4))
}

func TestStitch_SingleSegment(t *testing.T) {
	points := []orb.Point{{0, 0}, {1, 0}}
	g, indexToNode, err := graph.FromPoints(points)
	require.NoError(t, err)

	route, err := Stitch(context.Background(), g, indexToNode, len(points), Dijkstra{})
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{0, 1}, route.Path)
	assert.Equal(t, 111194, route.Cost)
	assert.Equal(t, 2, route.NodesVisited)
	assert.Equal(t, 1, route.Segments)
}

func TestStitch_WaypointJunction(t *testing.T) {
	// start (0,0), waypoint (0,1), end (0,2) as lat,lng
	points := []orb.Point{{0, 0}, {1, 0}, {2, 0}}
	g, indexToNode, err := graph.FromPoints(points)
	require.NoError(t, err)

	for name, finder := range finders() {
		t.Run(name, func(t *testing.T) {
			route, err := Stitch(context.Background(), g, indexToNode, len(points), finder)
			require.NoError(t, err)

			assert.Equal(t, []graph.NodeID{0, 1, 2}, route.Path)
			for i := 1; i < len(route.Path); i++ {
				assert.NotEqual(t, route.Path[i-1], route.Path[i])
			}

			first, err := finder.ShortestPath(g, 0, 1)
			require.NoError(t, err)
			second, err := finder.ShortestPath(g, 1, 2)
			require.NoError(t, err)

			assert.Equal(t, first.Cost+second.Cost, route.Cost)
			assert.Equal(t, 222388, route.Cost)
			assert.Equal(t, 4, route.NodesVisited)
			assert.Equal(t, 2, route.Segments)
		})
	}
}

func TestStitch_MultiHopSegments(t *testing.T) {
	// 0 -> 3 must pass through 1 and 2
	g := weightedGraph(t, 4, [][3]int{
		{0, 1, 2},
		{1, 2, 2},
		{2, 3, 2},
		{3, 0, 1},
	})
	indexToNode := graph.IndexMap{0: 0, 1: 2, 2: 0}

	route, err := Stitch(context.Background(), g, indexToNode, 3, Dijkstra{})
	require.NoError(t, err)

	// 0 -> 1 -> 2, then 2 -> 3 -> 0
	assert.Equal(t, []graph.NodeID{0, 1, 2, 3, 0}, route.Path)
	assert.Equal(t, 7, route.Cost)
	assert.Equal(t, 6, route.NodesVisited)
}

func TestStitch_SameStartAndEnd(t *testing.T) {
	points := []orb.Point{{121.5, 25.0}, {121.5, 25.0}}
	g, indexToNode, err := graph.FromPoints(points)
	require.NoError(t, err)
	require.Equal(t, 1, g.Len())

	for name, finder := range finders() {
		t.Run(name, func(t *testing.T) {
			route, err := Stitch(context.Background(), g, indexToNode, len(points), finder)
			require.NoError(t, err)

			assert.Equal(t, []graph.NodeID{0}, route.Path)
			assert.Zero(t, route.Cost)
			assert.Equal(t, 1, route.NodesVisited)
		})
	}
}

func TestStitch_RepeatedWaypoint(t *testing.T) {
	points := []orb.Point{{0, 0}, {1, 0}, {1, 0}, {2, 0}}
	g, indexToNode, err := graph.FromPoints(points)
	require.NoError(t, err)

	route, err := Stitch(context.Background(), g, indexToNode, len(points), Dijkstra{})
	require.NoError(t, err)

	assert.Equal(t, []graph.NodeID{0, 1, 2}, route.Path)
	assert.Equal(t, 222388, route.Cost)
	assert.Equal(t, 5, route.NodesVisited)
	assert.Equal(t, 3, route.Segments)
}

func TestStitch_NoPathReportsSegment(t *testing.T) {
	points := []orb.Point{{0, 0}, {1, 0}, {2, 0}}
	g, indexToNode, err := graph.FromPoints(points, graph.WithoutEdges())
	require.NoError(t, err)

	// Only the first leg is connected
	require.NoError(t, g.AddEdge(0, 1))

	route, err := Stitch(context.Background(), g, indexToNode, len(points), Dijkstra{})
	assert.Nil(t, route)
	require.ErrorIs(t, err, ErrNoPath)

	var segErr *SegmentError
	require.True(t, errors.As(err, &segErr))
	assert.Equal(t, Segment{From: 1, To: 2}, segErr.Segment)
	assert.Contains(t, err.Error(), "segment 1 -> 2")
}

func TestStitch_TooFewPoints(t *testing.T) {
	g, indexToNode, err := graph.FromPoints([]orb.Point{{0, 0}})
	require.NoError(t, err)

	_, err = Stitch(context.Background(), g, indexToNode, 1, Dijkstra{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPath)
}

func TestStitch_MissingIndex(t *testing.T) {
	g, _, err := graph.FromPoints([]orb.Point{{0, 0}, {1, 0}})
	require.NoError(t, err)

	_, err = Stitch(context.Background(), g, graph.IndexMap{0: 0}, 2, Dijkstra{})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestStitch_Canceled(t *testing.T) {
	g, indexToNode, err := graph.FromPoints([]orb.Point{{0, 0}, {1, 0}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Stitch(ctx, g, indexToNode, 2, Dijkstra{})
	assert.ErrorIs(t, err, context.Canceled)
}
