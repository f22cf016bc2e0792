package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBearingCardinalDirections(t *testing.T) {
	// due north along a meridian
	assert.InDelta(t, 0, Bearing(40.0, -74.0, 41.0, -74.0), 0.01)
	// due south
	assert.InDelta(t, 180, Bearing(41.0, -74.0, 40.0, -74.0), 0.01)
	// due east on the equator
	assert.InDelta(t, 90, Bearing(0, 0, 0, 1), 0.01)
	// due west on the equator
	assert.InDelta(t, 270, Bearing(0, 1, 0, 0), 0.01)
}

func TestBearingCoincidentPointsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Bearing(40.7128, -74.0060, 40.7128, -74.0060))
}

func TestBearingAlwaysInRange(t *testing.T) {
	cases := [][4]float64{
		{40.7128, -74.0060, 51.5074, -0.1278},
		{51.5074, -0.1278, 40.7128, -74.0060},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{10, 170, -10, -170}, // crosses the antimeridian
	}
	for _, c := range cases {
		b := Bearing(c[0], c[1], c[2], c[3])
		assert.GreaterOrEqual(t, b, 0.0)
		assert.Less(t, b, 360.0)
	}
}

func TestDistanceKMKnownPair(t *testing.T) {
	// New York to London is roughly 5570 km
	d := DistanceKM(40.7128, -74.0060, 51.5074, -0.1278)
	require.InDelta(t, 5570, d, 5570*0.02)
}

func TestDistanceKMProperties(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKM(40.0, -74.0, 40.0, -74.0))

	// symmetry
	ab := DistanceKM(40.0, -74.0, 41.0, -73.0)
	ba := DistanceKM(41.0, -73.0, 40.0, -74.0)
	assert.InDelta(t, ab, ba, 1e-9)

	// one degree of latitude is about 111 km
	assert.InDelta(t, 111.19, DistanceKM(40.0, -74.0, 41.0, -74.0), 0.5)
}

func TestDirectionName(t *testing.T) {
	cases := []struct {
		bearing float64
		want    string
	}{
		{0, "North"},
		{22, "North"},
		{23, "Northeast"},
		{45, "Northeast"},
		{90, "East"},
		{135, "Southeast"},
		{180, "South"},
		{225, "Southwest"},
		{270, "West"},
		{315, "Northwest"},
		{338, "North"}, // rounds up into the North sector
		{359.9, "North"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, DirectionName(c.bearing), "bearing %v", c.bearing)
	}
}

func TestClassifyTurn(t *testing.T) {
	cases := []struct {
		change float64
		want   string
	}{
		{0, "continue"},
		{19.9, "continue"},
		{341, "continue"},
		{20, "slight right"},
		{45, "slight right"},
		{60, "right"},
		{90, "right"},
		{120, "sharp right"},
		{150, "u-turn"},
		{180, "u-turn"},
		{210, "u-turn"},
		{211, "sharp left"},
		{240, "sharp left"},
		{270, "left"},
		{300, "left"},
		{301, "slight left"},
		{340, "slight left"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ClassifyTurn(c.change), "change %v", c.change)
	}
}

func TestClassifyTurnNormalizesInput(t *testing.T) {
	assert.Equal(t, "right", ClassifyTurn(-270))  // -270 == +90
	assert.Equal(t, "left", ClassifyTurn(-90))    // -90 == +270
	assert.Equal(t, "continue", ClassifyTurn(360))
	assert.Equal(t, "right", ClassifyTurn(450))
}
