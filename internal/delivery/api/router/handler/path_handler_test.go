package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/response"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/delivery/api/validator"
	domainerrors "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/domain/errors"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"
	mockUsecase "github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/mocks/usecase"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pathHandlerFixtures struct {
	echo    *echo.Echo
	handler *PathHandler
	pathUC  *mockUsecase.MockPathUsecase
}

func createTestPathHandler(t *testing.T) pathHandlerFixtures {
	pathUC := mockUsecase.NewMockPathUsecase(t)

	e := echo.New()
	e.Validator = validator.New()

	return pathHandlerFixtures{
		echo: e,
		handler: NewPathHandler(PathHandlerParams{
			PathUC: pathUC,
			Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		pathUC: pathUC,
	}
}

func (fx pathHandlerFixtures) post(t *testing.T, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := fx.handler.FindPath(fx.echo.NewContext(req, rec))
	require.NoError(t, err)

	return rec
}

type pathSuccessBody struct {
	Data usecase.PathOutput `json:"data"`
	Meta response.MetaInfo  `json:"meta"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body
}

func samplePathOutput() *usecase.PathOutput {
	return &usecase.PathOutput{
		Path:          []usecase.Coordinate{{Lat: 0, Lng: 0}, {Lat: 0, Lng: 1}},
		Distance:      111194,
		Duration:      13343.28,
		NodesVisited:  2,
		ExecutionTime: 0.42,
	}
}

func TestPathHandler_FindPath_Success(t *testing.T) {
	fx := createTestPathHandler(t)

	fx.pathUC.EXPECT().
		FindPath(mock.Anything, &usecase.PathInput{
			Start:     usecase.Coordinate{Lat: 0, Lng: 0},
			End:       usecase.Coordinate{Lat: 0, Lng: 1},
			Waypoints: []usecase.Coordinate{{Lat: 0, Lng: 0.5}},
			Algorithm: "astar",
			Heuristic: "manhattan",
		}).
		Return(samplePathOutput(), nil)

	rec := fx.post(t, "/api/path", `{
		"start": {"lat": 0, "lng": 0},
		"end": {"lat": 0, "lng": 1},
		"waypoints": [{"lat": 0, "lng": 0.5}],
		"algorithm": " AStar ",
		"heuristic": "manhattan"
	}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body pathSuccessBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, *samplePathOutput(), body.Data)
	assert.NotEmpty(t, body.Meta.RequestID)
}

func TestPathHandler_FindPath_UsecaseErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "no path",
			err:         domainerrors.ErrPathNotFound.WithDetails("no path found for segment 1 -> 2"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "PATH_NOT_FOUND",
			wantMessage: "No path found",
			wantDetails: "no path found for segment 1 -> 2",
		},
		{
			name:        "unsupported algorithm",
			err:         domainerrors.ErrUnsupportedAlgorithm.WithDetails(`algorithm "bellman-ford" is not supported`),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "UNSUPPORTED_ALGORITHM",
			wantMessage: "Algorithm is not supported, use 'dijkstra' or 'astar'",
			wantDetails: `algorithm "bellman-ford" is not supported`,
		},
		{
			name:        "search failure hides details",
			err:         domainerrors.NewPathSearchError(errors.New("node not found")),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "PATH_SEARCH_FAILED",
			wantMessage: "Error while finding path: node not found",
		},
		{
			name:        "upstream failure",
			err:         errors.Wrap(domainerrors.ErrRoutingServiceUnavailable, "osrm returned status 503"),
			wantStatus:  http.StatusBadGateway,
			wantCode:    "ROUTING_SERVICE_UNAVAILABLE",
			wantMessage: "External routing service failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPathHandler(t)

			fx.pathUC.EXPECT().
				FindPath(mock.Anything, mock.AnythingOfType("*usecase.PathInput")).
				Return(nil, tt.err)

			rec := fx.post(t, "/api/path", `{"start": {"lat": 0, "lng": 0}, "end": {"lat": 0, "lng": 1}}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
		})
	}
}

func TestPathHandler_FindPath_ValidationFailed(t *testing.T) {
	fx := createTestPathHandler(t)

	rec := fx.post(t, "/api/path", `{"start": {"lat": 95, "lng": 0}, "mode": "teleport"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)

	details, ok := body.Error.Details.([]any)
	require.True(t, ok)

	fields := make([]string, 0, len(details))
	for _, detail := range details {
		field, ok := detail.(map[string]any)
		require.True(t, ok)
		fields = append(fields, field["field"].(string))
	}
	assert.ElementsMatch(t, []string{"start.lng", "end.lat", "end.lng", "mode"}, fields)

	fx.pathUC.AssertNotCalled(t, "FindPath", mock.Anything, mock.Anything)
}

func TestPathHandler_FindPath_PassesOutOfRangeCoordinates(t *testing.T) {
	fx := createTestPathHandler(t)

	fx.pathUC.EXPECT().
		FindPath(mock.Anything, &usecase.PathInput{
			Start: usecase.Coordinate{Lat: 95, Lng: 190},
			End:   usecase.Coordinate{Lat: -120, Lng: -200},
		}).
		Return(samplePathOutput(), nil)

	rec := fx.post(t, "/api/path", `{"start": {"lat": 95, "lng": 190}, "end": {"lat": -120, "lng": -200}}`)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPathHandler_FindPath_MalformedBody(t *testing.T) {
	fx := createTestPathHandler(t)

	rec := fx.post(t, "/api/path", `{"start": {"lat": "north"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeError(t, rec).Error.Code)
}

func TestPathHandler_FindPath_UnknownFormat(t *testing.T) {
	fx := createTestPathHandler(t)

	rec := fx.post(t, "/api/path?format=kml", `{"start": {"lat": 0, "lng": 0}, "end": {"lat": 0, "lng": 1}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Error.Code)
}

func TestPathHandler_FindPath_GeoJSON(t *testing.T) {
	fx := createTestPathHandler(t)

	fx.pathUC.EXPECT().
		FindPath(mock.Anything, mock.AnythingOfType("*usecase.PathInput")).
		Return(samplePathOutput(), nil)

	rec := fx.post(t, "/api/path?format=geojson", `{"start": {"lat": 0, "lng": 0}, "end": {"lat": 0, "lng": 1}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/geo+json", rec.Header().Get(echo.HeaderContentType))

	feature, err := geojson.UnmarshalFeature(rec.Body.Bytes())
	require.NoError(t, err)

	line, ok := feature.Geometry.(orb.LineString)
	require.True(t, ok)
	assert.Equal(t, orb.LineString{{0, 0}, {1, 0}}, line)
	assert.InDelta(t, 111194, feature.Properties.MustFloat64("distance"), 0)
	assert.InDelta(t, 2, feature.Properties.MustFloat64("nodes_visited"), 0)
}

func TestPathHandler_FindPath_GeoJSONSinglePoint(t *testing.T) {
	fx := createTestPathHandler(t)

	fx.pathUC.EXPECT().
		FindPath(mock.Anything, mock.AnythingOfType("*usecase.PathInput")).
		Return(&usecase.PathOutput{
			Path:         []usecase.Coordinate{{Lat: 25.03, Lng: 121.56}},
			NodesVisited: 1,
		}, nil)

	rec := fx.post(t, "/api/path?format=GeoJSON", `{"start": {"lat": 25.03, "lng": 121.56}, "end": {"lat": 25.03, "lng": 121.56}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	feature, err := geojson.UnmarshalFeature(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, orb.Point{121.56, 25.03}, feature.Geometry)
}
