package graph

import (
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"

	"github.com/paulmach/orb"
)

// IndexMap maps the position of a point in the builder input to its node
type IndexMap map[int]NodeID

// BuildOption configures FromPoints
type BuildOption func(*buildOptions)

type buildOptions struct {
	connectAll bool
}

// WithoutEdges adds the nodes but leaves them unconnected
func WithoutEdges() BuildOption {
	return func(o *buildOptions) {
		o.connectAll = false
	}
}

// FromPoints builds a graph from an ordered list of points. Identical
// points share one node, so several input positions may map to the same
// NodeID. By default every pair of distinct nodes is joined by a
// bidirectional edge.
func FromPoints(points []orb.Point, opts ...BuildOption) (*Graph, IndexMap, error) {
	options := buildOptions{connectAll: true}
	for _, opt := range opts {
		opt(&options)
	}

	g := New()
	indexToNode := make(IndexMap, len(points))
	pointMap := make(map[orb.Point]NodeID, len(points))

	for idx, point := range points {
		id, exists := pointMap[point]
		if !exists {
			id = g.AddNode(point)
			pointMap[point] = id
		}
		indexToNode[idx] = id
	}

	if !options.connectAll {
		return g, indexToNode, nil
	}

	for i := 0; i < g.Len(); i++ {
		for j := i + 1; j < g.Len(); j++ {
			if err := g.AddBidirectionalEdge(NodeID(i), NodeID(j)); err != nil {
				return nil, nil, errors.Wrap(err, "connect nodes")
			}
		}
	}

	return g, indexToNode, nil
}
