package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/config"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/router/handler"
	logs "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/log"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/metrics"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/osrm"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		metrics.New,
		context.Background,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			osrm.NewRoutingProvider,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPathService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPathHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
