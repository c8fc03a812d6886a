package middleware

import (
	"net/http"
	"time"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MetricsMiddleware records request counts and latencies per route
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{
		metrics: m,
	}
}

// Handle records the request once the handler chain has returned
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.metrics == nil {
			return next(c)
		}

		start := time.Now()

		err := next(c)

		status := c.Response().Status
		if err != nil {
			// The error handler has not written the response yet
			status = statusOf(err)
		}

		// Route pattern keeps label cardinality bounded
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		m.metrics.RecordRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

type httpCoder interface {
	HTTPCode() int
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var coder httpCoder
	if errors.As(err, &coder) {
		return coder.HTTPCode()
	}

	return http.StatusInternalServerError
}
