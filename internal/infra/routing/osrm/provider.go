package osrm

import (
	"context"
	"log/slog"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/config"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/domain/service"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// disabledProvider is used when OSRM is not configured
type disabledProvider struct {
	logger *slog.Logger
}

func (p *disabledProvider) Route(ctx context.Context, points []orb.Point) (*service.ProviderRoute, error) {
	p.logger.Debug("OSRM routing disabled, rejecting request", slog.Int("points", len(points)))

	return nil, errors.WithStack(service.ErrProviderDisabled)
}

// ProviderParams holds dependencies for RoutingProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewRoutingProvider creates the OSRM-backed RoutingProvider based on configuration
func NewRoutingProvider(params ProviderParams) service.RoutingProvider {
	cfg := params.Config.OSRM
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("OSRM not configured, external routing disabled")

		return &disabledProvider{logger: params.Logger}
	}

	params.Logger.Info("OSRM routing enabled",
		slog.String("base_url", cfg.BaseURL),
		slog.String("profile", cfg.Profile),
	)

	return NewClient(Config{
		BaseURL:           cfg.BaseURL,
		Profile:           cfg.Profile,
		Timeout:           cfg.Timeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}, params.Logger)
}
