// Package search implements shortest path searches over a graph.Graph and
// the stitching of multi-segment routes.
package search

import (
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/geo"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"
)

var (
	// ErrNoPath is returned when the goal cannot be reached from the start
	ErrNoPath = errors.New("no path found")

	// ErrUnsupportedAlgorithm is returned for an unknown algorithm name
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)

// Result is a path from start to goal inclusive and its accumulated weight.
// A search from a node to itself yields a single node path with cost 0.
type Result struct {
	Path []graph.NodeID
	Cost int
}

// Finder finds the shortest path between two nodes of a graph
type Finder interface {
	ShortestPath(g *graph.Graph, start, goal graph.NodeID) (*Result, error)
}

// Algorithm names a search strategy
type Algorithm string

const (
	AlgorithmDijkstra Algorithm = "dijkstra"
	AlgorithmAStar    Algorithm = "astar"
)

// DefaultAlgorithm is used when no algorithm is requested
const DefaultAlgorithm = AlgorithmDijkstra

// ParseAlgorithm resolves an algorithm name, matched exactly. Empty selects DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch Algorithm(name) {
	case "":
		return DefaultAlgorithm, nil
	case AlgorithmDijkstra:
		return AlgorithmDijkstra, nil
	case AlgorithmAStar:
		return AlgorithmAStar, nil
	default:
		return "", errors.Wrapf(ErrUnsupportedAlgorithm, "%q", name)
	}
}

// NewFinder returns the Finder for algorithm. The heuristic is only used by A*.
func NewFinder(algorithm Algorithm, heuristic geo.Heuristic) (Finder, error) {
	switch algorithm {
	case AlgorithmDijkstra:
		return Dijkstra{}, nil
	case AlgorithmAStar:
		return AStar{Heuristic: heuristic}, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "%q", algorithm)
	}
}

func (a Algorithm) String() string {
	return string(a)
}

// bestFirst is the shared settle loop of Dijkstra and A*. estimate returns
// the remaining-cost guess added to a node's cost to form its priority.
func bestFirst(g *graph.Graph, start, goal graph.NodeID, estimate func(graph.NodeID) float64) (*Result, error) {
	if !g.Has(start) || !g.Has(goal) {
		return nil, errors.Wrapf(graph.ErrNodeNotFound, "search %d -> %d", start, goal)
	}

	costs := map[graph.NodeID]int{start: 0}
	previous := make(map[graph.NodeID]graph.NodeID)
	settled := make(map[graph.NodeID]bool)

	open := newFrontier()
	open.push(start, estimate(start), 0)

	for open.len() > 0 {
		current := open.pop()

		// Stale entry superseded by a cheaper push
		if settled[current.node] {
			continue
		}
		settled[current.node] = true

		if current.node == goal {
			return &Result{
				Path: reconstructPath(previous, start, goal),
				Cost: current.cost,
			}, nil
		}

		for _, edge := range g.Neighbors(current.node) {
			if settled[edge.To] {
				continue
			}

			candidate := current.cost + edge.Weight
			if known, ok := costs[edge.To]; ok && candidate >= known {
				continue
			}

			costs[edge.To] = candidate
			previous[edge.To] = current.node
			open.push(edge.To, float64(candidate)+estimate(edge.To), candidate)
		}
	}

	return nil, errors.Wrapf(ErrNoPath, "from node %d to node %d", start, goal)
}

func reconstructPath(previous map[graph.NodeID]graph.NodeID, start, goal graph.NodeID) []graph.NodeID {
	path := []graph.NodeID{goal}
	for node := goal; node != start; {
		node = previous[node]
		path = append(path, node)
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
