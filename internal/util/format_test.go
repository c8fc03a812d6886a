package util

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSecondsToDuration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1500*time.Millisecond, SecondsToDuration(1.5))
	assert.Equal(t, time.Duration(0), SecondsToDuration(-3))
	assert.Equal(t, time.Duration(0), SecondsToDuration(math.NaN()))
	assert.Equal(t, time.Duration(math.MaxInt64), SecondsToDuration(math.Inf(1)))
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "zero", duration: 0, expected: "0s"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
		{name: "one degree at 30 km/h", duration: SecondsToDuration(13343.28), expected: "3h42m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, FormatDuration(tt.duration))
		})
	}
}

func TestFormatDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		meters   float64
		expected string
	}{
		{meters: 0, expected: "0 m"},
		{meters: 850.4, expected: "850 m"},
		{meters: 1000, expected: "1.0 km"},
		{meters: 111194, expected: "111.2 km"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatDistance(tt.meters))
	}
}
