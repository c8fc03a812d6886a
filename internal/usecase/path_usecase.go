package usecase

import (
	"context"
)

// Mode selects how a path is computed
type Mode string

const (
	// ModeGraph runs the in-process graph search over the supplied coordinates
	ModeGraph Mode = "graph"
	// ModeOSRM delegates routing to the external OSRM service
	ModeOSRM Mode = "osrm"
)

// Coordinate represents a geographic coordinate
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PathInput holds everything needed for one path request
type PathInput struct {
	Start     Coordinate
	End       Coordinate
	Waypoints []Coordinate
	Algorithm string // "dijkstra" or "astar"; empty uses the configured default
	Heuristic string // "euclidean" or "manhattan"; only used by astar
	Mode      Mode
}

// PathOutput is the stitched path with its summary figures
type PathOutput struct {
	Path          []Coordinate `json:"path"`
	Distance      float64      `json:"distance"`       // Meters
	Duration      float64      `json:"duration"`       // Seconds
	NodesVisited  int          `json:"nodes_visited"`  // Sum of per-segment path lengths
	ExecutionTime float64      `json:"execution_time"` // Milliseconds for the whole request
	DistanceText  string       `json:"distance_text"`  // e.g. "12.3 km"
	DurationText  string       `json:"duration_text"`  // e.g. "1h30m"
}

// PathUsecase defines the interface for shortest path use cases
type PathUsecase interface {
	// FindPath computes a path from start through the waypoints in order to end
	FindPath(ctx context.Context, input *PathInput) (*PathOutput, error)
}
