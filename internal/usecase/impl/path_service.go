package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/config"
	deliverycontext "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/context"
	domainerrors "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/domain/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/domain/service"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/metrics"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/geo"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/graph"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/routing/search"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/usecase"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/util"

	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

// fallback defaults to keep path finding functional when config is missing/invalid
const (
	defaultSpeedKmh = 30.0

	// Algorithm label used for metrics in external routing mode
	providerAlgorithm = "osrm"
)

// PathServiceParams holds dependencies for the path service, injected by Fx.
type PathServiceParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Provider service.RoutingProvider
	Metrics  *metrics.Metrics
}

type pathService struct {
	provider service.RoutingProvider
	metrics  *metrics.Metrics
	logger   *slog.Logger

	defaultAlgorithm search.Algorithm
	defaultHeuristic geo.Heuristic
	speedKmh         float64
	maxWaypoints     int

	buildOptions []graph.BuildOption
}

// NewPathService creates a new path service instance
func NewPathService(params PathServiceParams) (usecase.PathUsecase, error) {
	routingCfg := &config.RoutingConfig{}
	if params.Config != nil && params.Config.Routing != nil {
		routingCfg = params.Config.Routing
	}

	algorithm, err := search.ParseAlgorithm(routingCfg.DefaultAlgorithm)
	if err != nil {
		return nil, errors.Wrap(err, "invalid routing.defaultAlgorithm")
	}

	speedKmh := routingCfg.AverageSpeedKmh
	if speedKmh <= 0 {
		speedKmh = defaultSpeedKmh
	}

	return &pathService{
		provider:         params.Provider,
		metrics:          params.Metrics,
		logger:           params.Logger,
		defaultAlgorithm: algorithm,
		defaultHeuristic: geo.ParseHeuristic(routingCfg.DefaultHeuristic),
		speedKmh:         speedKmh,
		maxWaypoints:     routingCfg.MaxWaypoints,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *pathService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// FindPath computes the path for one request, in graph or external routing mode
func (s *pathService) FindPath(ctx context.Context, input *usecase.PathInput) (*usecase.PathOutput, error) {
	startTime := time.Now()

	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "path input is required")
	}

	if s.maxWaypoints > 0 && len(input.Waypoints) > s.maxWaypoints {
		return nil, domainerrors.ErrTooManyWaypoints.WithDetails(
			fmt.Sprintf("got %d waypoints, at most %d are allowed", len(input.Waypoints), s.maxWaypoints),
		)
	}

	var (
		output *usecase.PathOutput
		label  string
		err    error
	)

	switch input.Mode {
	case usecase.ModeGraph, "":
		output, label, err = s.findGraphPath(ctx, input)
	case usecase.ModeOSRM:
		label = providerAlgorithm
		output, err = s.findProviderPath(ctx, input)
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unsupported mode %q", input.Mode))
	}

	mode := string(input.Mode)
	if mode == "" {
		mode = string(usecase.ModeGraph)
	}
	s.recordSearch(mode, label, err, time.Since(startTime))

	if err != nil {
		return nil, err
	}

	output.DistanceText = util.FormatDistance(output.Distance)
	output.DurationText = util.FormatDuration(util.SecondsToDuration(output.Duration))
	output.ExecutionTime = float64(time.Since(startTime).Microseconds()) / 1000

	return output, nil
}

// findGraphPath builds a fully connected graph over all points and stitches one search per segment
func (s *pathService) findGraphPath(ctx context.Context, input *usecase.PathInput) (*usecase.PathOutput, string, error) {
	algorithm := s.defaultAlgorithm
	if input.Algorithm != "" {
		parsed, err := search.ParseAlgorithm(input.Algorithm)
		if err != nil {
			s.log(ctx).Warn("Unsupported algorithm", slog.String("algorithm", input.Algorithm))

			return nil, input.Algorithm, domainerrors.ErrUnsupportedAlgorithm.WithDetails(
				fmt.Sprintf("algorithm %q is not supported", input.Algorithm),
			)
		}
		algorithm = parsed
	}

	heuristic := s.defaultHeuristic
	if input.Heuristic != "" {
		heuristic = geo.ParseHeuristic(input.Heuristic)
	}

	points := toPoints(input)

	g, indexToNode, err := graph.FromPoints(points, s.buildOptions...)
	if err != nil {
		return nil, algorithm.String(), domainerrors.NewPathSearchError(err)
	}

	finder, err := search.NewFinder(algorithm, heuristic)
	if err != nil {
		return nil, algorithm.String(), domainerrors.NewPathSearchError(err)
	}

	s.log(ctx).Debug("Searching path",
		slog.String("algorithm", algorithm.String()),
		slog.String("heuristic", heuristic.String()),
		slog.Int("points", len(points)),
		slog.Int("nodes", g.Len()),
	)

	route, err := search.Stitch(ctx, g, indexToNode, len(points), finder)
	if err != nil {
		if segmentErr, ok := errors.AsType[*search.SegmentError](err); ok && errors.Is(err, search.ErrNoPath) {
			s.log(ctx).Warn("No path found",
				slog.String("algorithm", algorithm.String()),
				slog.Int("from", segmentErr.From),
				slog.Int("to", segmentErr.To),
			)

			return nil, algorithm.String(), domainerrors.ErrPathNotFound.WithDetails(
				fmt.Sprintf("no path found for segment %d -> %d", segmentErr.From, segmentErr.To),
			)
		}

		s.log(ctx).Error("Path search failed", slog.Any("error", err))

		return nil, algorithm.String(), domainerrors.NewPathSearchError(err)
	}

	path := make([]usecase.Coordinate, 0, len(route.Path))
	for _, id := range route.Path {
		point, ok := g.Position(id)
		if !ok {
			return nil, algorithm.String(), domainerrors.NewPathSearchError(
				errors.Wrapf(graph.ErrNodeNotFound, "path node %d", id),
			)
		}
		path = append(path, fromPoint(point))
	}

	if s.metrics != nil {
		s.metrics.RecordPath(route.NodesVisited, route.Segments)
	}

	distance := float64(route.Cost)

	return &usecase.PathOutput{
		Path:         path,
		Distance:     distance,
		Duration:     s.estimateDuration(distance),
		NodesVisited: route.NodesVisited,
	}, algorithm.String(), nil
}

// findProviderPath delegates the whole request to the external routing service
func (s *pathService) findProviderPath(ctx context.Context, input *usecase.PathInput) (*usecase.PathOutput, error) {
	if s.provider == nil {
		return nil, errors.WithStack(domainerrors.ErrRoutingModeDisabled)
	}

	route, err := s.provider.Route(ctx, toPoints(input))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderDisabled):
			return nil, errors.Wrap(domainerrors.ErrRoutingModeDisabled, err.Error())
		case errors.Is(err, service.ErrProviderNoRoute):
			return nil, domainerrors.ErrPathNotFound.WithDetails(err.Error())
		}

		s.log(ctx).Warn("External routing failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrRoutingServiceUnavailable, err.Error())
	}

	path := make([]usecase.Coordinate, 0, len(route.Geometry))
	for _, point := range route.Geometry {
		path = append(path, fromPoint(point))
	}

	if s.metrics != nil {
		s.metrics.RecordPath(len(path), 0)
	}

	return &usecase.PathOutput{
		Path:         path,
		Distance:     route.DistanceMeters,
		Duration:     route.DurationSeconds,
		NodesVisited: len(path),
	}, nil
}

// estimateDuration converts meters into seconds at the configured average speed
func (s *pathService) estimateDuration(distanceMeters float64) float64 {
	return (distanceMeters / 1000) / s.speedKmh * 3600
}

func (s *pathService) recordSearch(mode, algorithm string, err error, duration time.Duration) {
	if s.metrics == nil {
		return
	}

	s.metrics.RecordSearch(mode, algorithm, outcomeOf(err), duration)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrPathNotFound):
		return metrics.OutcomeNoPath
	case errors.IsAny(err,
		domainerrors.ErrUnsupportedAlgorithm,
		domainerrors.ErrValidationFailed,
		domainerrors.ErrTooManyWaypoints,
		domainerrors.ErrRoutingModeDisabled):
		return metrics.OutcomeInvalid
	case errors.Is(err, domainerrors.ErrRoutingServiceUnavailable):
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}

// toPoints orders start, waypoints and end as [lng, lat] points
func toPoints(input *usecase.PathInput) []orb.Point {
	points := make([]orb.Point, 0, len(input.Waypoints)+2)
	points = append(points, toPoint(input.Start))
	for _, waypoint := range input.Waypoints {
		points = append(points, toPoint(waypoint))
	}

	return append(points, toPoint(input.End))
}

func toPoint(c usecase.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

func fromPoint(p orb.Point) usecase.Coordinate {
	return usecase.Coordinate{Lat: p.Lat(), Lng: p.Lon()}
}
