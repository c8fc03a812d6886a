package search

import "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"

// Dijkstra is a uniform-cost search: the frontier is ordered by accumulated cost only
type Dijkstra struct{}

// ShortestPath returns ErrNoPath when goal is unreachable from start
func (Dijkstra) ShortestPath(g *graph.Graph, start, goal graph.NodeID) (*Result, error) {
	return bestFirst(g, start, goal, func(graph.NodeID) float64 { return 0 })
}
