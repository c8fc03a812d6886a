package search

import (
	"context"
	"fmt"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"
)

// Segment is a pair of consecutive positions in the caller's point list
type Segment struct {
	From int
	To   int
}

// Segments splits a list of count points into consecutive pairs.
// Fewer than two points yield no segments.
func Segments(count int) []Segment {
	if count < 2 {
		return nil
	}

	segments := make([]Segment, 0, count-1)
	for i := 0; i < count-1; i++ {
		segments = append(segments, Segment{From: i, To: i + 1})
	}

	return segments
}

// SegmentError reports the segment whose search failed
type SegmentError struct {
	Segment
	Err error
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("segment %d -> %d: %v", e.From, e.To, e.Err)
}

func (e *SegmentError) Unwrap() error {
	return e.Err
}

// Route is the concatenation of every segment's path
type Route struct {
	Path     []graph.NodeID
	Cost     int
	Segments int

	// NodesVisited sums the length of each segment path, junction nodes counted twice
	NodesVisited int
}

// Stitch runs finder once per segment, in order, over the shared graph and
// joins the paths. The first failing segment aborts the whole route.
func Stitch(ctx context.Context, g *graph.Graph, indexToNode graph.IndexMap, count int, finder Finder) (*Route, error) {
	segments := Segments(count)
	if len(segments) == 0 {
		return nil, errors.Errorf("at least 2 points are required, got %d", count)
	}

	route := &Route{Segments: len(segments)}

	for _, segment := range segments {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "path search canceled")
		}

		start, ok := indexToNode[segment.From]
		if !ok {
			return nil, errors.Wrapf(graph.ErrNodeNotFound, "no node for point %d", segment.From)
		}
		goal, ok := indexToNode[segment.To]
		if !ok {
			return nil, errors.Wrapf(graph.ErrNodeNotFound, "no node for point %d", segment.To)
		}

		result, err := finder.ShortestPath(g, start, goal)
		if err != nil {
			return nil, &SegmentError{Segment: segment, Err: err}
		}

		route.NodesVisited += len(result.Path)

		path := result.Path
		if len(route.Path) > 0 {
			// First node repeats the previous segment's last node
			path = path[1:]
		}

		route.Path = append(route.Path, path...)
		route.Cost += result.Cost
	}

	return route, nil
}
