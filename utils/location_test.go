package utils

import (
	"errors"
	"math"
	"testing"

	"waste-pickup-server/models"
)

func TestHaversineDistanceZeroForSamePoint(t *testing.T) {
	if d := HaversineDistance(12.9716, 77.5946, 12.9716, 77.5946); d != 0 {
		t.Fatalf("distance between identical points should be 0, got %f", d)
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	d1 := HaversineDistance(12.9716, 77.5946, 28.7041, 77.1025)
	d2 := HaversineDistance(28.7041, 77.1025, 12.9716, 77.5946)
	if math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("haversine should be symmetric, got %f and %f", d1, d2)
	}
}

func TestHaversineDistanceKnownValue(t *testing.T) {
	// One degree of longitude along the equator
	d := HaversineDistance(0, 0, 0, 1)
	if RoundTo2(d) != 111.19 {
		t.Fatalf("expected 111.19 km, got %f", RoundTo2(d))
	}
}

func TestNearestCenterPicksMinimum(t *testing.T) {
	centers := []models.Center{
		{ID: 1, Name: "Far", Latitude: 0, Longitude: 2},
		{ID: 2, Name: "Near", Latitude: 0, Longitude: 1},
	}

	nearest, distance, err := NearestCenter(0, 0, centers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if nearest.ID != 2 {
		t.Fatalf("expected center 2 to be nearest, got %d", nearest.ID)
	}
	if distance != 111.19 {
		t.Fatalf("expected distance 111.19, got %f", distance)
	}
}

func TestNearestCenterTieBreakKeepsFirst(t *testing.T) {
	// Both centers are exactly one degree of longitude away
	centers := []models.Center{
		{ID: 1, Name: "West", Latitude: 0, Longitude: -1},
		{ID: 2, Name: "East", Latitude: 0, Longitude: 1},
	}

	nearest, _, err := NearestCenter(0, 0, centers)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if nearest.ID != 1 {
		t.Fatalf("tie should keep the first center in iteration order, got %d", nearest.ID)
	}
}

func TestNearestCenterEmptySet(t *testing.T) {
	_, _, err := NearestCenter(0, 0, nil)
	if !errors.Is(err, ErrNoCenters) {
		t.Fatalf("expected ErrNoCenters, got %v", err)
	}
}

func TestIsLocationValid(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     bool
	}{
		{0, 0, true},
		{90, 180, true},
		{-90, -180, true},
		{90.01, 0, false},
		{0, -180.5, false},
	}
	for _, tc := range cases {
		if got := IsLocationValid(tc.lat, tc.lng); got != tc.want {
			t.Fatalf("IsLocationValid(%f, %f) = %v, want %v", tc.lat, tc.lng, got, tc.want)
		}
	}
}

func TestRoundTo2(t *testing.T) {
	if got := RoundTo2(111.19492664455873); got != 111.19 {
		t.Fatalf("expected 111.19, got %f", got)
	}
	if got := RoundTo2(25.0); got != 25.0 {
		t.Fatalf("expected 25.0, got %f", got)
	}
}
