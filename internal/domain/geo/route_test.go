package geo

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func TestSyntheticRouteSpacingAndEndpoints(t *testing.T) {
	points := SyntheticRoute(40.0, -74.0, 41.0, -73.0, 5)
	require.Len(t, points, 5)

	assert.Equal(t, 40.0, points[0].Latitude)
	assert.Equal(t, -74.0, points[0].Longitude)
	assert.Equal(t, 41.0, points[4].Latitude)
	assert.Equal(t, -73.0, points[4].Longitude)

	// equal spacing along both axes
	for i := 1; i < len(points); i++ {
		assert.InDelta(t, 0.25, points[i].Latitude-points[i-1].Latitude, 1e-9)
		assert.InDelta(t, 0.25, points[i].Longitude-points[i-1].Longitude, 1e-9)
	}
}

func TestSyntheticRouteMinimumTwoPoints(t *testing.T) {
	points := SyntheticRoute(40.0, -74.0, 41.0, -73.0, 0)
	require.Len(t, points, 2)
	assert.Equal(t, 40.0, points[0].Latitude)
	assert.Equal(t, 41.0, points[1].Latitude)
}

func TestStreetGridRoutePinsExactEndpoints(t *testing.T) {
	start := Location{Latitude: 40.7128, Longitude: -74.0060, Name: "origin"}
	end := Location{Latitude: 40.7484, Longitude: -73.9857, Name: "target"}

	path := StreetGridRoute(start, end, seededRand())
	require.GreaterOrEqual(t, len(path), 2)

	assert.Equal(t, start.Latitude, path[0].Latitude)
	assert.Equal(t, start.Longitude, path[0].Longitude)
	assert.Equal(t, end.Latitude, path[len(path)-1].Latitude)
	assert.Equal(t, end.Longitude, path[len(path)-1].Longitude)
}

func TestStreetGridRoutePointCountGrowsWithDistance(t *testing.T) {
	start := Location{Latitude: 40.70, Longitude: -74.00}

	short := StreetGridRoute(start, Location{Latitude: 40.705, Longitude: -74.005}, seededRand())
	long := StreetGridRoute(start, Location{Latitude: 40.80, Longitude: -74.10}, seededRand())

	// both axis spans of the short trip sit under the subdivide threshold, so
	// the walk is one step per axis plus the pinned start
	assert.LessOrEqual(t, len(short), 4)
	assert.Greater(t, len(long), len(short))

	// 0.1 deg per axis at 0.005 deg steps is 20 steps per axis; detours may
	// add up to half again
	assert.GreaterOrEqual(t, len(long), 40)
	assert.LessOrEqual(t, len(long), 62)
}

func TestStreetGridRoutePointsStayNearCorridor(t *testing.T) {
	start := Location{Latitude: 40.70, Longitude: -74.00}
	end := Location{Latitude: 40.75, Longitude: -73.95}

	path := StreetGridRoute(start, end, seededRand())
	for _, p := range path {
		assert.LessOrEqual(t, p.Latitude, math.Max(start.Latitude, end.Latitude)+detourDeg+jitterDeg)
		assert.GreaterOrEqual(t, p.Latitude, math.Min(start.Latitude, end.Latitude)-detourDeg-jitterDeg)
		assert.LessOrEqual(t, p.Longitude, math.Max(start.Longitude, end.Longitude)+detourDeg+jitterDeg)
		assert.GreaterOrEqual(t, p.Longitude, math.Min(start.Longitude, end.Longitude)-detourDeg-jitterDeg)
	}
}

func TestStreetGridRouteDeterministicWithSeed(t *testing.T) {
	start := Location{Latitude: 40.70, Longitude: -74.00}
	end := Location{Latitude: 40.75, Longitude: -73.95}

	a := StreetGridRoute(start, end, rand.New(rand.NewPCG(7, 7)))
	b := StreetGridRoute(start, end, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, a, b)
}

func TestStreetGridRouteNilRngFallsBack(t *testing.T) {
	start := Location{Latitude: 40.70, Longitude: -74.00}
	end := Location{Latitude: 40.71, Longitude: -74.01}

	path := StreetGridRoute(start, end, nil)
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, end.Latitude, path[len(path)-1].Latitude)
}

func TestAxisSteps(t *testing.T) {
	assert.Equal(t, 1, axisSteps(0))
	assert.Equal(t, 1, axisSteps(0.01))
	assert.Equal(t, 1, axisSteps(-0.005))
	assert.Equal(t, 4, axisSteps(0.02))
	assert.Equal(t, 20, axisSteps(0.1))
	assert.Equal(t, 20, axisSteps(-0.1))
}
