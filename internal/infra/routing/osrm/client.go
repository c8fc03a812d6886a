// Package osrm talks to an OSRM HTTP route service.
package osrm

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/domain/service"
	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://router.project-osrm.org"
	DefaultProfile = "driving"
	DefaultTimeout = 10 * time.Second

	codeOK      = "Ok"
	codeNoRoute = "NoRoute"

	// Upper bound on a route response body
	maxResponseBytes = 32 << 20
)

// Config holds the client settings
type Config struct {
	BaseURL           string
	Profile           string
	Timeout           time.Duration
	RequestsPerSecond float64 // 0 disables throttling
	Burst             int
}

// Client calls the OSRM route service. It is safe for concurrent use.
type Client struct {
	baseURL    string
	profile    string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a client, filling zero config values with defaults
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	profile := cfg.Profile
	if profile == "" {
		profile = DefaultProfile
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := max(cfg.Burst, 1)
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &Client{
		baseURL: baseURL,
		profile: profile,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: limiter,
		logger:  logger,
	}
}

type routeResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Routes  []route `json:"routes"`
}

type route struct {
	Geometry *geojson.Geometry `json:"geometry"`
	Distance float64           `json:"distance"`
	Duration float64           `json:"duration"`
}

// Route implements service.RoutingProvider
func (c *Client) Route(ctx context.Context, points []orb.Point) (*service.ProviderRoute, error) {
	if len(points) < 2 {
		return nil, errors.Errorf("at least 2 points are required, got %d", len(points))
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "wait for osrm rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.routeURL(points), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "osrm request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Wrap(err, "read osrm response")
	}

	c.logger.Debug("OSRM route response",
		slog.Int("status", resp.StatusCode),
		slog.Int("points", len(points)),
		slog.Duration("latency", time.Since(started)),
	)

	var payload routeResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.Wrapf(err, "decode osrm response (status %d)", resp.StatusCode)
	}

	if payload.Code == codeNoRoute {
		return nil, errors.Wrapf(service.ErrProviderNoRoute, "osrm: %s", payload.Message)
	}

	if resp.StatusCode != http.StatusOK || payload.Code != codeOK {
		return nil, errors.Errorf("osrm returned status %d, code %q: %s", resp.StatusCode, payload.Code, payload.Message)
	}

	if len(payload.Routes) == 0 {
		return nil, errors.WithStack(service.ErrProviderNoRoute)
	}

	return toProviderRoute(payload.Routes[0])
}

func (c *Client) routeURL(points []orb.Point) string {
	coords := make([]string, 0, len(points))
	for _, point := range points {
		coords = append(coords, formatCoord(point.Lon())+","+formatCoord(point.Lat()))
	}

	query := url.Values{}
	query.Set("overview", "full")
	query.Set("geometries", "geojson")

	return c.baseURL + "/route/v1/" + url.PathEscape(c.profile) + "/" + strings.Join(coords, ";") + "?" + query.Encode()
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func toProviderRoute(r route) (*service.ProviderRoute, error) {
	if r.Geometry == nil {
		return nil, errors.New("osrm route has no geometry")
	}

	lineString, ok := r.Geometry.Geometry().(orb.LineString)
	if !ok {
		return nil, errors.Errorf("unexpected osrm geometry type %s", r.Geometry.Type)
	}

	return &service.ProviderRoute{
		Geometry:        lineString,
		DistanceMeters:  r.Distance,
		DurationSeconds: r.Duration,
	}, nil
}
