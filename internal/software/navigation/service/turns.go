package service

import (
	"math"

	"navsim/internal/domain/geo"
)

const (
	startInstruction  = "Start navigation"
	arriveInstruction = "Arrive at destination"
)

// deriveTurns rebuilds the turn list for a route path. The list always
// starts with a synthetic start marker and ends with a synthetic arrival
// marker; interior points appear only when they pass the emission filter
// below. Paths shorter than 3 points have no interior and yield no turns at
// all.
func deriveTurns(path []geo.Location) []geo.TurnDirection {
	if len(path) < 3 {
		return nil
	}

	turns := make([]geo.TurnDirection, 0, len(path))

	startBearing := geo.Bearing(
		path[0].Latitude, path[0].Longitude,
		path[1].Latitude, path[1].Longitude,
	)
	turns = append(turns, geo.TurnDirection{
		FromBearing: startBearing,
		ToBearing:   startBearing,
		Instruction: startInstruction,
		DistanceKM:  0,
		Location:    path[0],
	})

	for i := 1; i <= len(path)-2; i++ {
		prevBearing := geo.Bearing(
			path[i-1].Latitude, path[i-1].Longitude,
			path[i].Latitude, path[i].Longitude,
		)
		nextBearing := geo.Bearing(
			path[i].Latitude, path[i].Longitude,
			path[i+1].Latitude, path[i+1].Longitude,
		)
		bearingChange := math.Mod(nextBearing-prevBearing+360, 360)

		// Emission filter: points whose bearing change falls within 20
		// degrees of 180 are omitted from the turn list entirely. This
		// filter is load-bearing; consumers rely on filtered points not
		// appearing at all, not on their instruction text.
		if math.Abs(bearingChange-180) <= 20 {
			continue
		}

		turns = append(turns, geo.TurnDirection{
			FromBearing: prevBearing,
			ToBearing:   nextBearing,
			Instruction: turnInstruction(bearingChange),
			DistanceKM: geo.DistanceKM(
				path[i-1].Latitude, path[i-1].Longitude,
				path[i].Latitude, path[i].Longitude,
			),
			Location: path[i],
		})
	}

	last := len(path) - 1
	arriveBearing := geo.Bearing(
		path[last-1].Latitude, path[last-1].Longitude,
		path[last].Latitude, path[last].Longitude,
	)
	turns = append(turns, geo.TurnDirection{
		FromBearing: arriveBearing,
		ToBearing:   arriveBearing,
		Instruction: arriveInstruction,
		DistanceKM: geo.DistanceKM(
			path[last-1].Latitude, path[last-1].Longitude,
			path[last].Latitude, path[last].Longitude,
		),
		Location: path[last],
	})

	return turns
}

// turnInstruction maps a normalized bearing change in [0, 360) to the
// instruction shown for an emitted turn.
func turnInstruction(bearingChange float64) string {
	switch {
	case bearingChange > 30 && bearingChange < 150:
		return "Turn right"
	case bearingChange >= 150 && bearingChange <= 210:
		return "Make a U-turn"
	case bearingChange > 210 && bearingChange < 330:
		return "Turn left"
	default:
		return "Continue straight"
	}
}
