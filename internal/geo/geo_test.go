package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	t.Parallel()

	// Same point.
	assert.InDelta(t, 0, DistanceMeters(48.85, 2.35, 48.85, 2.35), 0.001)

	// Paris -> London is roughly 344 km.
	d := DistanceMeters(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344000, d, 5000)

	// One degree of latitude is about 111 km anywhere.
	d = DistanceMeters(10, 20, 11, 20)
	assert.InDelta(t, 111195, d, 200)
}

func TestBoundingBox_ContainsCircle(t *testing.T) {
	t.Parallel()

	const lat, lon, radius = 52.52, 13.405, 10000.0
	b := BoundingBox(lat, lon, radius)

	assert.Less(t, b.MinLat, lat)
	assert.Greater(t, b.MaxLat, lat)
	assert.Less(t, b.MinLon, lon)
	assert.Greater(t, b.MaxLon, lon)

	// Points on the box edge at the cardinal directions must be at least the
	// radius away, otherwise the prefilter would cut valid results.
	assert.GreaterOrEqual(t, DistanceMeters(lat, lon, b.MaxLat, lon), radius-1)
	assert.GreaterOrEqual(t, DistanceMeters(lat, lon, b.MinLat, lon), radius-1)
	assert.GreaterOrEqual(t, DistanceMeters(lat, lon, lat, b.MaxLon), radius-1)
	assert.GreaterOrEqual(t, DistanceMeters(lat, lon, lat, b.MinLon), radius-1)
}

func TestBoundingBox_Clamped(t *testing.T) {
	t.Parallel()

	b := BoundingBox(89.9, 0, 50000)
	assert.LessOrEqual(t, b.MaxLat, 90.0)

	b = BoundingBox(0, 179.99, 50000)
	assert.LessOrEqual(t, b.MaxLon, 180.0)
}
