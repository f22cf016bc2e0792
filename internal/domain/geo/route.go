package geo

import (
	"math"
	"math/rand/v2"
)

// Route synthesis constants. The street grid walks axis-aligned segments of
// roughly half a city block (~0.005 deg) once the axis span is large enough
// to subdivide, and perturbs every generated point so the line never looks
// ruler-straight.
const (
	gridSubdivideDeg = 0.01    // axis span above which the axis is subdivided
	gridStepDeg      = 0.005   // target segment size along a subdivided axis
	jitterDeg        = 0.00025 // max cross-axis perturbation per point
	detourDeg        = 0.002   // max diagonal offset of an inserted detour
)

// globalRand backs synthesis when the caller does not inject a source.
var globalRand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))

// SyntheticRoute returns pointCount equally spaced locations on the straight
// line from start to end, endpoints included. Counts below 2 are raised to 2.
func SyntheticRoute(startLat, startLng, endLat, endLng float64, pointCount int) []Location {
	if pointCount < 2 {
		pointCount = 2
	}
	points := make([]Location, pointCount)
	for i := range points {
		t := float64(i) / float64(pointCount-1)
		points[i] = Location{
			Latitude:  startLat + (endLat-startLat)*t,
			Longitude: startLng + (endLng-startLng)*t,
		}
	}
	return points
}

// StreetGridRoute synthesizes a dense path from start to end that
// approximates travel along city streets: it walks the axis with the larger
// span first, then the cross axis, jittering every generated point and
// inserting occasional mid-block detours.
//
// The function is intentionally stochastic. Identical inputs may yield
// different paths unless the caller injects a seeded rng; tests should assert
// structural properties, not exact coordinates. A nil rng falls back to a
// shared unseeded source.
//
// The returned path always begins with the exact start point and ends with
// the exact end point.
func StreetGridRoute(start, end Location, rng *rand.Rand) []Location {
	if rng == nil {
		rng = globalRand
	}

	latDiff := end.Latitude - start.Latitude
	lngDiff := end.Longitude - start.Longitude
	latSteps := axisSteps(latDiff)
	lngSteps := axisSteps(lngDiff)

	var walked []Location
	if math.Abs(latDiff) >= math.Abs(lngDiff) {
		// north-south street first, then the cross street
		for i := 1; i <= latSteps; i++ {
			walked = append(walked, Location{
				Latitude:  start.Latitude + latDiff*float64(i)/float64(latSteps),
				Longitude: start.Longitude + jitter(rng),
			})
		}
		for i := 1; i <= lngSteps; i++ {
			walked = append(walked, Location{
				Latitude:  end.Latitude + jitter(rng),
				Longitude: start.Longitude + lngDiff*float64(i)/float64(lngSteps),
			})
		}
	} else {
		// east-west street first, then the cross street
		for i := 1; i <= lngSteps; i++ {
			walked = append(walked, Location{
				Latitude:  start.Latitude + jitter(rng),
				Longitude: start.Longitude + lngDiff*float64(i)/float64(lngSteps),
			})
		}
		for i := 1; i <= latSteps; i++ {
			walked = append(walked, Location{
				Latitude:  start.Latitude + latDiff*float64(i)/float64(latSteps),
				Longitude: end.Longitude + jitter(rng),
			})
		}
	}

	walked = insertDetours(walked, rng)

	// The last walked point is the destination plus jitter; drop it and pin
	// the exact endpoints.
	path := make([]Location, 0, len(walked)+1)
	path = append(path, start)
	if len(walked) > 0 {
		path = append(path, walked[:len(walked)-1]...)
	}
	path = append(path, end)
	return path
}

// axisSteps subdivides an axis span into ~gridStepDeg segments; spans at or
// below the subdivide threshold get exactly one step.
func axisSteps(diff float64) int {
	if math.Abs(diff) <= gridSubdivideDeg {
		return 1
	}
	return int(math.Ceil(math.Abs(diff) / gridStepDeg))
}

// insertDetours walks the points pairwise and, with 50% probability per
// pair, inserts a midpoint pushed diagonally off the line to simulate a
// block-by-block deviation.
func insertDetours(points []Location, rng *rand.Rand) []Location {
	out := make([]Location, 0, len(points)+len(points)/2)
	for i, point := range points {
		out = append(out, point)
		if i%2 == 1 && i < len(points)-1 && rng.Float64() < 0.5 {
			out = append(out, Location{
				Latitude:  (point.Latitude+points[i+1].Latitude)/2 + detour(rng),
				Longitude: (point.Longitude+points[i+1].Longitude)/2 + detour(rng),
			})
		}
	}
	return out
}

func jitter(rng *rand.Rand) float64 { return (rng.Float64() - 0.5) * 2 * jitterDeg }

func detour(rng *rand.Rand) float64 { return (rng.Float64() - 0.5) * 2 * detourDeg }
