package geo

import "math"

// EarthRadiusKM is the Earth mean radius used for haversine distances.
const EarthRadiusKM = 6371.0

// Bearing returns the initial great-circle bearing in degrees [0, 360) from
// the start point to the end point. Coincident points yield 0.
func Bearing(startLat, startLng, endLat, endLng float64) float64 {
	if startLat == endLat && startLng == endLng {
		return 0
	}

	lat1 := radians(startLat)
	lat2 := radians(endLat)
	deltaLng := radians(endLng - startLng)

	y := math.Sin(deltaLng) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLng)

	bearing := degrees(math.Atan2(y, x))
	if bearing < 0 {
		bearing += 360
	}
	return bearing
}

// DistanceKM returns the haversine great-circle distance in kilometers
// between two lat/lng points.
func DistanceKM(startLat, startLng, endLat, endLng float64) float64 {
	deltaLat := radians(endLat - startLat)
	deltaLng := radians(endLng - startLng)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(radians(startLat))*math.Cos(radians(endLat))*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKM * c
}

// compassNames are the 8 compass sectors, clockwise from North.
var compassNames = [8]string{
	"North", "Northeast", "East", "Southeast",
	"South", "Southwest", "West", "Northwest",
}

// DirectionName buckets a bearing into one of 8 compass sector names.
func DirectionName(bearing float64) string {
	sector := int(math.Round(bearing/45)) % 8
	if sector < 0 {
		sector += 8
	}
	return compassNames[sector]
}

// ClassifyTurn names the maneuver implied by a bearing change in degrees.
// The change is normalized into [0, 360) before bucketing; positive changes
// are clockwise (right-hand) turns.
func ClassifyTurn(bearingChange float64) string {
	change := math.Mod(bearingChange, 360)
	if change < 0 {
		change += 360
	}

	switch {
	case change < 20 || change > 340:
		return "continue"
	case change < 60:
		return "slight right"
	case change < 120:
		return "right"
	case change < 150:
		return "sharp right"
	case change <= 210:
		return "u-turn"
	case change <= 240:
		return "sharp left"
	case change <= 300:
		return "left"
	default:
		return "slight left"
	}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
