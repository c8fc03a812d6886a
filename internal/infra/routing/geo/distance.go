// Package geo provides the distance estimators used as edge weights and
// search heuristics. Points are orb.Point values, i.e. [lng, lat] in degrees.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const (
	// EarthRadiusMeters is the sphere radius used by Haversine.
	EarthRadiusMeters = 6371000.0

	// MetersPerDegree is the flat-projection scale used by Rectilinear.
	MetersPerDegree = 111000.0
)

// Estimator maps two points to a non-negative distance estimate in meters.
type Estimator func(a, b orb.Point) float64

// Haversine returns the great-circle distance between two points in meters.
func Haversine(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusMeters * c
}

// Rectilinear returns the Manhattan distance between two points after
// flattening degrees to meters around their mean latitude.
//
// It can overestimate the Haversine edge weights, so A* guided by it is
// not guaranteed to return an optimal path.
func Rectilinear(a, b orb.Point) float64 {
	meanLatRad := (a.Lat() + b.Lat()) / 2 * math.Pi / 180

	latMeters := math.Abs(b.Lat()-a.Lat()) * MetersPerDegree
	lngMeters := math.Abs(b.Lon()-a.Lon()) * MetersPerDegree * math.Cos(meanLatRad)

	return latMeters + lngMeters
}
