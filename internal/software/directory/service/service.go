package service

import (
	"context"
	"strings"

	"navsim/internal/domain/place"
	"navsim/internal/general/logger"
)

// directoryService serves location search over a fixed in-memory place list.
// There is no persistence layer on purpose: the directory is seed data for a
// simulated map, not a dataset.
type directoryService struct {
	logger *logger.Logger
	places []place.Place
}

// NewDirectoryService builds the directory over the built-in place list.
func NewDirectoryService(log *logger.Logger) *directoryService {
	return &directoryService{logger: log, places: defaultPlaces}
}

// Search returns the places whose name, category, address fields, or
// description contain the case-insensitive query substring, in list order.
// An empty query returns the whole directory (search bars use this to
// prefill suggestions). No ranking, no pagination.
func (service *directoryService) Search(ctx context.Context, query string) []place.Place {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]place.Place, len(service.places))
		copy(results, service.places)
		return results
	}

	var results []place.Place
	for _, candidate := range service.places {
		if candidate.Matches(query) {
			results = append(results, candidate)
		}
	}

	service.logger.Debug(ctx, "directory_search", "Directory search executed",
		map[string]any{"query": query, "results": len(results)})
	return results
}

// FindFirst returns the first place matching the query, or false when the
// query matches nothing.
func (service *directoryService) FindFirst(ctx context.Context, query string) (place.Place, bool) {
	results := service.Search(ctx, query)
	if len(results) == 0 {
		return place.Place{}, false
	}
	return results[0], true
}
