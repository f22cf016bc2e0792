package service

import (
	"testing"

	"navsim/internal/domain/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveTurnsShortPaths(t *testing.T) {
	assert.Nil(t, deriveTurns(nil))
	assert.Nil(t, deriveTurns([]geo.Location{{Latitude: 40, Longitude: -74}}))
	assert.Nil(t, deriveTurns([]geo.Location{
		{Latitude: 40, Longitude: -74},
		{Latitude: 41, Longitude: -74},
	}))
}

func TestDeriveTurnsRightAngle(t *testing.T) {
	// north, then east
	path := []geo.Location{
		{Latitude: 40.00, Longitude: -74.00},
		{Latitude: 40.01, Longitude: -74.00},
		{Latitude: 40.01, Longitude: -73.99},
	}

	turns := deriveTurns(path)
	require.Len(t, turns, 3)

	assert.Equal(t, "Start navigation", turns[0].Instruction)
	assert.Equal(t, 0.0, turns[0].DistanceKM)
	assert.InDelta(t, 0, turns[0].FromBearing, 0.5)
	assert.Equal(t, turns[0].FromBearing, turns[0].ToBearing)
	assert.Equal(t, path[0], turns[0].Location)

	assert.Equal(t, "Turn right", turns[1].Instruction)
	assert.InDelta(t, 0, turns[1].FromBearing, 0.5)
	assert.InDelta(t, 90, turns[1].ToBearing, 0.5)
	assert.Greater(t, turns[1].DistanceKM, 0.0)
	assert.Equal(t, path[1], turns[1].Location)

	assert.Equal(t, "Arrive at destination", turns[2].Instruction)
	assert.Equal(t, turns[2].FromBearing, turns[2].ToBearing)
	assert.Equal(t, path[2], turns[2].Location)
}

func TestDeriveTurnsLeftTurn(t *testing.T) {
	// north, then west
	path := []geo.Location{
		{Latitude: 40.00, Longitude: -74.00},
		{Latitude: 40.01, Longitude: -74.00},
		{Latitude: 40.01, Longitude: -74.01},
	}

	turns := deriveTurns(path)
	require.Len(t, turns, 3)
	assert.Equal(t, "Turn left", turns[1].Instruction)
}

func TestDeriveTurnsStraightPointsAreEmitted(t *testing.T) {
	// collinear path: the interior point has a bearing change of 0, which
	// passes the emission filter and reads as straight-ahead guidance
	path := []geo.Location{
		{Latitude: 40.00, Longitude: -74.00},
		{Latitude: 40.01, Longitude: -74.00},
		{Latitude: 40.02, Longitude: -74.00},
	}

	turns := deriveTurns(path)
	require.Len(t, turns, 3)
	assert.Equal(t, "Continue straight", turns[1].Instruction)
}

func TestDeriveTurnsFiltersNearReversals(t *testing.T) {
	// north then straight back south: bearing change 180, filtered out
	path := []geo.Location{
		{Latitude: 40.00, Longitude: -74.00},
		{Latitude: 40.01, Longitude: -74.00},
		{Latitude: 40.00, Longitude: -74.00},
	}

	turns := deriveTurns(path)
	require.Len(t, turns, 2)
	assert.Equal(t, "Start navigation", turns[0].Instruction)
	assert.Equal(t, "Arrive at destination", turns[1].Instruction)
}

func TestTurnInstructionBuckets(t *testing.T) {
	cases := []struct {
		change float64
		want   string
	}{
		{0, "Continue straight"},
		{30, "Continue straight"},
		{31, "Turn right"},
		{90, "Turn right"},
		{149, "Turn right"},
		{150, "Make a U-turn"},
		{180, "Make a U-turn"},
		{210, "Make a U-turn"},
		{211, "Turn left"},
		{270, "Turn left"},
		{329, "Turn left"},
		{330, "Continue straight"},
		{359, "Continue straight"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, turnInstruction(c.change), "change %v", c.change)
	}
}
