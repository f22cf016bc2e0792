package geo

// TurnDirection is one decision point along a route path. Turn lists are
// derived in full from the current route path and are read-only: the first
// entry is always a synthetic start marker, the last a synthetic arrival
// marker.
type TurnDirection struct {
	FromBearing float64  `json:"from_bearing"`
	ToBearing   float64  `json:"to_bearing"`
	Instruction string   `json:"instruction"`
	DistanceKM  float64  `json:"distance_km"`
	Location    Location `json:"location"`
}
