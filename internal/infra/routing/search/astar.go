package search

import (
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/geo"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"
)

// AStar orders the frontier by cost plus the heuristic distance to the goal.
// The returned cost is always the accumulated edge weight.
//
// With HeuristicManhattan the estimate may exceed the remaining geodesic
// cost, in which case the result is not guaranteed to be optimal.
type AStar struct {
	Heuristic geo.Heuristic
}

// ShortestPath returns ErrNoPath when goal is unreachable from start
func (a AStar) ShortestPath(g *graph.Graph, start, goal graph.NodeID) (*Result, error) {
	goalPoint, ok := g.Position(goal)
	if !ok {
		return nil, errors.Wrapf(graph.ErrNodeNotFound, "search %d -> %d", start, goal)
	}

	estimator := a.Heuristic.Estimator()

	return bestFirst(g, start, goal, func(node graph.NodeID) float64 {
		point, _ := g.Position(node)

		return estimator(point, goalPoint)
	})
}
