// Package graph holds the small, request-scoped weighted graph that path
// searches run over.
package graph

import (
	"math"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/geo"

	"github.com/paulmach/orb"
)

// ErrNodeNotFound is returned when an edge references a node the graph does not hold
var ErrNodeNotFound = errors.New("node not found")

// NodeID identifies a node within one Graph. IDs are assigned from 0 in creation order.
type NodeID int

// Edge is an outgoing edge from the node that owns it
type Edge struct {
	To     NodeID
	Weight int // Distance in meters, truncated
}

// Graph is a directed graph of geographic nodes. It is not safe for
// concurrent mutation and is meant to live for a single request.
type Graph struct {
	nodes []orb.Point
	edges [][]Edge
}

// New creates an empty graph
func New() *Graph {
	return &Graph{}
}

// AddNode stores the point and returns its newly assigned ID
func (g *Graph) AddNode(point orb.Point) NodeID {
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, point)
	g.edges = append(g.edges, []Edge{})

	return id
}

// AddEdge adds a directed edge weighted by the Haversine distance between
// the two nodes.
func (g *Graph) AddEdge(from, to NodeID) error {
	if !g.Has(from) || !g.Has(to) {
		return errors.Wrapf(ErrNodeNotFound, "edge %d -> %d", from, to)
	}

	weight := geo.Haversine(g.nodes[from], g.nodes[to])

	return g.AddWeightedEdge(from, to, int(math.Trunc(weight)))
}

// AddWeightedEdge adds a directed edge with an explicit weight. Adding an
// edge that already exists is a no-op, the first weight wins.
func (g *Graph) AddWeightedEdge(from, to NodeID, weight int) error {
	if !g.Has(from) || !g.Has(to) {
		return errors.Wrapf(ErrNodeNotFound, "edge %d -> %d", from, to)
	}

	for _, edge := range g.edges[from] {
		if edge.To == to {
			return nil
		}
	}

	g.edges[from] = append(g.edges[from], Edge{To: to, Weight: weight})

	return nil
}

// AddBidirectionalEdge adds a -> b and then b -> a
func (g *Graph) AddBidirectionalEdge(a, b NodeID) error {
	if err := g.AddEdge(a, b); err != nil {
		return err
	}

	return g.AddEdge(b, a)
}

// AddBidirectionalWeightedEdge adds a -> b and then b -> a with the same weight
func (g *Graph) AddBidirectionalWeightedEdge(a, b NodeID, weight int) error {
	if err := g.AddWeightedEdge(a, b, weight); err != nil {
		return err
	}

	return g.AddWeightedEdge(b, a, weight)
}

// Has reports whether id belongs to the graph
func (g *Graph) Has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Position returns the point of a node
func (g *Graph) Position(id NodeID) (orb.Point, bool) {
	if !g.Has(id) {
		return orb.Point{}, false
	}

	return g.nodes[id], true
}

// Neighbors returns the outgoing edges of a node in insertion order.
// The returned slice must not be modified.
func (g *Graph) Neighbors(id NodeID) []Edge {
	if !g.Has(id) {
		return nil
	}

	return g.edges[id]
}

// Positions returns a copy of the node to point mapping
func (g *Graph) Positions() map[NodeID]orb.Point {
	positions := make(map[NodeID]orb.Point, len(g.nodes))
	for id, point := range g.nodes {
		positions[NodeID(id)] = point
	}

	return positions
}

// Adjacency returns a copy of every node's outgoing edges
func (g *Graph) Adjacency() map[NodeID][]Edge {
	adjacency := make(map[NodeID][]Edge, len(g.edges))
	for id, edges := range g.edges {
		adjacency[NodeID(id)] = append([]Edge(nil), edges...)
	}

	return adjacency
}

// NearestNode scans every node for the one closest to point.
// Ties go to the lowest ID. Returns false on an empty graph.
func (g *Graph) NearestNode(point orb.Point) (NodeID, bool) {
	if len(g.nodes) == 0 {
		return 0, false
	}

	var nearestID NodeID
	nearestDist := math.MaxFloat64

	for id, nodePoint := range g.nodes {
		dist := geo.Haversine(point, nodePoint)
		if dist < nearestDist {
			nearestDist = dist
			nearestID = NodeID(id)
		}
	}

	return nearestID, true
}
