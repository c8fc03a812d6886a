package service

import (
	"context"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"

	"github.com/paulmach/orb"
)

var (
	// ErrProviderNoRoute is returned when the external service finds no route
	ErrProviderNoRoute = errors.New("no route found by routing provider")

	// ErrProviderDisabled is returned when external routing is not configured
	ErrProviderDisabled = errors.New("routing provider is disabled")
)

// ProviderRoute is a road-network route computed by an external service
type ProviderRoute struct {
	Geometry        orb.LineString // [lng, lat] points in travel order
	DistanceMeters  float64
	DurationSeconds float64
}

// RoutingProvider delegates route computation to an external road-network service
type RoutingProvider interface {
	// Route returns a route visiting points in order
	Route(ctx context.Context, points []orb.Point) (*ProviderRoute, error)
}
