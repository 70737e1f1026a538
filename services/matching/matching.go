// Package matching implements the pure filter and ranking functions of the
// marketplace: helper selection for a service, service catalog filtering, and
// booking history filtering/sorting. All functions take plain data and return
// new slices; they never mutate their inputs and are safe to call on every
// state change without synchronization.
package matching

import (
	"sort"

	"snabbit/models"
)

// MatchRadiusMiles is the fixed eligibility radius for helper matching.
const MatchRadiusMiles = 5.0

// SortKey selects the comparator used to order matched helpers.
type SortKey string

const (
	SortByTime     SortKey = "time"     // ascending arrival minutes
	SortByPrice    SortKey = "price"    // ascending hourly price
	SortByRating   SortKey = "rating"   // descending rating
	SortByDistance SortKey = "distance" // ascending distance
)

// SelectHelpers returns the helpers eligible for the selected service, ordered
// by the given sort key. A helper is eligible when it is available, lists the
// service name among its skills and sits within MatchRadiusMiles. A nil
// service yields an empty result. Sorting is stable: helpers with equal keys
// keep their original relative order, and an unknown sort key leaves the
// filtered order untouched.
func SelectHelpers(helpers []models.HelperProfile, service *models.Service, sortKey SortKey) []models.HelperProfile {
	eligible := make([]models.HelperProfile, 0)
	if service == nil {
		return eligible
	}
	for _, h := range helpers {
		if h.IsAvailable && h.HasSkill(service.Name) && h.DistanceMiles <= MatchRadiusMiles {
			eligible = append(eligible, h)
		}
	}

	switch sortKey {
	case SortByTime:
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].ArrivalMinutes < eligible[j].ArrivalMinutes
		})
	case SortByPrice:
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].HourlyPrice < eligible[j].HourlyPrice
		})
	case SortByRating:
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].Rating > eligible[j].Rating
		})
	case SortByDistance:
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].DistanceMiles < eligible[j].DistanceMiles
		})
	}

	return eligible
}
