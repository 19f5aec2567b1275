package utils

import (
	"errors"
	"math"

	"waste-pickup-server/models"
)

// ErrNoCenters is returned when a nearest-center lookup runs against an
// empty center set
var ErrNoCenters = errors.New("no centers found")

// Location represents a geographical coordinate
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HaversineDistance calculates the distance between two points on Earth using the Haversine formula
// Returns distance in kilometers
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth's radius in kilometers

	// Convert degrees to radians
	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLon := lon2Rad - lon1Rad

	// Haversine formula
	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return R * c
}

// NearestCenter scans the full center set and returns the one closest to the
// target point along with the distance in kilometers. The comparison is a
// strict less-than, so when two centers are equidistant the first one in
// iteration order wins. Returns ErrNoCenters when the set is empty.
func NearestCenter(latitude, longitude float64, centers []models.Center) (*models.Center, float64, error) {
	var nearest *models.Center
	minDistance := math.Inf(1)

	for i := range centers {
		distance := HaversineDistance(latitude, longitude, centers[i].Latitude, centers[i].Longitude)
		if distance < minDistance {
			minDistance = distance
			nearest = &centers[i]
		}
	}

	if nearest == nil {
		return nil, 0, ErrNoCenters
	}

	return nearest, RoundTo2(minDistance), nil
}

// RoundTo2 rounds a value to 2 decimal places
func RoundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}

// IsLocationValid checks if the provided coordinates are valid
func IsLocationValid(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
