package place

import "strings"

// Place is a named point in the location directory.
type Place struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Description string  `json:"description,omitempty"`
}

// Matches reports whether the place's name, category, address fields, or
// description contain the already-lowercased query substring.
func (place Place) Matches(loweredQuery string) bool {
	for _, field := range []string{place.Name, place.Category, place.Address, place.City, place.Description} {
		if strings.Contains(strings.ToLower(field), loweredQuery) {
			return true
		}
	}
	return false
}
