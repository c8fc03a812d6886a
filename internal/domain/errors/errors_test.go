package errors

import (
	"net/http"
	"testing"

	"github.com/NestiaDev-id/Exploring-Heuristic-Enhanced-Shortest-Path-Algorithms/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails(t *testing.T) {
	err := ErrPathNotFound.WithDetails("no path found for segment 1 -> 2")

	assert.Equal(t, http.StatusNotFound, err.HTTPCode())
	assert.Equal(t, "PATH_NOT_FOUND", err.ErrorCode())
	assert.Equal(t, "No path found", err.Message())
	assert.Equal(t, "no path found for segment 1 -> 2", err.Details())
	assert.Equal(t, "No path found: no path found for segment 1 -> 2", err.Error())

	// Original is untouched
	assert.Empty(t, ErrPathNotFound.Details())
}

func TestBaseError_IsMatchesErrorCode(t *testing.T) {
	wrapped := ErrPathNotFound.WithDetails("segment 0 -> 1").WrapMessage("find path")

	assert.True(t, errors.Is(wrapped, ErrPathNotFound))
	assert.False(t, errors.Is(wrapped, ErrUnsupportedAlgorithm))

	var appErr AppError
	require.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
}

func TestPathSearchError(t *testing.T) {
	cause := errors.New("node not found")
	err := NewPathSearchError(errors.Wrap(cause, "edge 0 -> 5"))

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "PATH_SEARCH_FAILED", err.ErrorCode())
	assert.Equal(t, "Error while finding path: edge 0 -> 5: node not found", err.Message())
	assert.Equal(t, "path search failed: edge 0 -> 5: node not found", err.Error())
	assert.True(t, errors.Is(err, cause))
}
