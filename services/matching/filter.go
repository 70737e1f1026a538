package matching

import (
	"strings"

	"snabbit/models"
)

// FilterServices returns the services matching the search query, price range
// and emergency flag. The query is a case-insensitive substring match against
// name or description; an empty query matches everything. Input order is
// preserved.
func FilterServices(services []models.Service, query string, priceRange models.PriceRange, emergencyOnly bool) []models.Service {
	q := strings.ToLower(query)
	out := make([]models.Service, 0)
	for _, svc := range services {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(svc.Name), q) ||
			strings.Contains(strings.ToLower(svc.Description), q)
		if !matchesSearch {
			continue
		}
		if !priceRange.Contains(svc.BasePrice) {
			continue
		}
		if emergencyOnly && !svc.EmergencyEligible {
			continue
		}
		out = append(out, svc)
	}
	return out
}
