package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/response"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/validator"
	domainerrors "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/domain/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	formatJSON    = "json"
	formatGeoJSON = "geojson"

	mimeGeoJSON = "application/geo+json"
)

// PathHandlerParams holds dependencies for PathHandler, injected by Fx.
type PathHandlerParams struct {
	fx.In

	PathUC usecase.PathUsecase
	Logger *slog.Logger
}

// PathHandler holds dependencies for path-related handlers
type PathHandler struct {
	pathUC usecase.PathUsecase
	logger *slog.Logger
}

// NewPathHandler is the constructor for PathHandler
func NewPathHandler(params PathHandlerParams) *PathHandler {
	return &PathHandler{
		pathUC: params.PathUC,
		logger: params.Logger,
	}
}

// CoordinateRequest is a point in degrees; pointers tell a missing value from zero.
// Values outside the usual lat/lng ranges are passed through unchanged.
type CoordinateRequest struct {
	Lat *float64 `json:"lat" validate:"required"`
	Lng *float64 `json:"lng" validate:"required"`
}

// PathRequest represents the request body for finding a path
type PathRequest struct {
	Start     CoordinateRequest   `json:"start"`
	End       CoordinateRequest   `json:"end"`
	Algorithm string              `json:"algorithm"`
	Waypoints []CoordinateRequest `json:"waypoints" validate:"omitempty,dive"`
	Heuristic string              `json:"heuristic"`
	Mode      string              `json:"mode" validate:"omitempty,oneof=graph osrm"`
}

// FindPath handles shortest path requests
func (h *PathHandler) FindPath(c echo.Context) error {
	format := strings.ToLower(c.QueryParam("format"))
	if format != "" && format != formatJSON && format != formatGeoJSON {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), "format must be one of [json geojson]")
	}

	var req PathRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid path request")
	}

	if err := c.Validate(&req); err != nil {
		var validationErr *validator.ValidationError
		if errors.As(err, &validationErr) {
			return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), validationErr.Fields)
		}

		return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
	}

	output, err := h.pathUC.FindPath(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if format == formatGeoJSON {
		return h.renderGeoJSON(c, output)
	}

	return response.Success(c, http.StatusOK, output)
}

func (h *PathHandler) renderGeoJSON(c echo.Context, output *usecase.PathOutput) error {
	feature := geojson.NewFeature(pathGeometry(output.Path))
	feature.Properties["distance"] = output.Distance
	feature.Properties["duration"] = output.Duration
	feature.Properties["nodes_visited"] = output.NodesVisited
	feature.Properties["execution_time"] = output.ExecutionTime

	body, err := feature.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal geojson feature")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

// pathGeometry is a LineString, or a Point when start and end coincide
func pathGeometry(path []usecase.Coordinate) orb.Geometry {
	if len(path) == 1 {
		return orb.Point{path[0].Lng, path[0].Lat}
	}

	line := make(orb.LineString, 0, len(path))
	for _, c := range path {
		line = append(line, orb.Point{c.Lng, c.Lat})
	}

	return line
}

func (r *PathRequest) toInput() *usecase.PathInput {
	input := &usecase.PathInput{
		Start:     r.Start.toCoordinate(),
		End:       r.End.toCoordinate(),
		Algorithm: r.Algorithm,
		Heuristic: r.Heuristic,
		Mode:      usecase.Mode(r.Mode),
	}

	if len(r.Waypoints) > 0 {
		input.Waypoints = make([]usecase.Coordinate, 0, len(r.Waypoints))
		for _, waypoint := range r.Waypoints {
			input.Waypoints = append(input.Waypoints, waypoint.toCoordinate())
		}
	}

	return input
}

func (c CoordinateRequest) toCoordinate() usecase.Coordinate {
	var coord usecase.Coordinate
	if c.Lat != nil {
		coord.Lat = *c.Lat
	}
	if c.Lng != nil {
		coord.Lng = *c.Lng
	}

	return coord
}
