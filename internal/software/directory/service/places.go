package service

import "navsim/internal/domain/place"

// defaultPlaces is the built-in directory. Coordinates cluster around lower
// Manhattan so that simulated routes between any two entries stay at a
// city-trip scale.
var defaultPlaces = []place.Place{
	{
		ID: "pl-001", Name: "Harbor View Hotel", Category: "hotel",
		Address: "12 Battery Pl", City: "New York",
		Latitude: 40.7033, Longitude: -74.0170,
		Description: "Waterfront hotel overlooking the harbor",
	},
	{
		ID: "pl-002", Name: "Federal Hall", Category: "landmark",
		Address: "26 Wall St", City: "New York",
		Latitude: 40.7074, Longitude: -74.0102,
		Description: "Historic landmark on Wall Street",
	},
	{
		ID: "pl-003", Name: "City Hall Park", Category: "park",
		Address: "Broadway & Chambers St", City: "New York",
		Latitude: 40.7128, Longitude: -74.0060,
		Description: "Park surrounding City Hall",
	},
	{
		ID: "pl-004", Name: "Brooklyn Bridge Promenade", Category: "landmark",
		Address: "Park Row", City: "New York",
		Latitude: 40.7061, Longitude: -73.9969,
		Description: "Pedestrian entrance to the Brooklyn Bridge",
	},
	{
		ID: "pl-005", Name: "Washington Square Arch", Category: "landmark",
		Address: "Washington Square N", City: "New York",
		Latitude: 40.7318, Longitude: -73.9973,
		Description: "Marble arch at the north end of the square",
	},
	{
		ID: "pl-006", Name: "Chelsea Market", Category: "shopping",
		Address: "75 9th Ave", City: "New York",
		Latitude: 40.7424, Longitude: -74.0061,
		Description: "Indoor food hall and market",
	},
	{
		ID: "pl-007", Name: "Union Square Greenmarket", Category: "market",
		Address: "E 17th St & Union Square W", City: "New York",
		Latitude: 40.7359, Longitude: -73.9911,
		Description: "Open-air farmers market",
	},
	{
		ID: "pl-008", Name: "Flatiron Building", Category: "landmark",
		Address: "175 5th Ave", City: "New York",
		Latitude: 40.7411, Longitude: -73.9897,
		Description: "Triangular landmark office tower",
	},
	{
		ID: "pl-009", Name: "Grand Central Terminal", Category: "transit",
		Address: "89 E 42nd St", City: "New York",
		Latitude: 40.7527, Longitude: -73.9772,
		Description: "Historic rail terminal with the celestial ceiling",
	},
	{
		ID: "pl-010", Name: "Bryant Park", Category: "park",
		Address: "42nd St & 6th Ave", City: "New York",
		Latitude: 40.7536, Longitude: -73.9832,
		Description: "Midtown lawn behind the public library",
	},
	{
		ID: "pl-011", Name: "Times Square", Category: "landmark",
		Address: "Broadway & 7th Ave", City: "New York",
		Latitude: 40.7580, Longitude: -73.9855,
		Description: "Theater district crossroads",
	},
	{
		ID: "pl-012", Name: "Columbus Circle", Category: "transit",
		Address: "848 Columbus Cir", City: "New York",
		Latitude: 40.7681, Longitude: -73.9819,
		Description: "Roundabout at the southwest corner of Central Park",
	},
	{
		ID: "pl-013", Name: "Pier 17 Rooftop", Category: "entertainment",
		Address: "89 South St", City: "New York",
		Latitude: 40.7056, Longitude: -74.0017,
		Description: "Rooftop venue at the Seaport",
	},
	{
		ID: "pl-014", Name: "Little Island", Category: "park",
		Address: "Pier 55, Hudson River Park", City: "New York",
		Latitude: 40.7420, Longitude: -74.0100,
		Description: "Elevated park on the Hudson",
	},
	{
		ID: "pl-015", Name: "Tenement Museum", Category: "museum",
		Address: "103 Orchard St", City: "New York",
		Latitude: 40.7185, Longitude: -73.9901,
		Description: "Immigration history museum on the Lower East Side",
	},
}
