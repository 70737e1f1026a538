package matching

import (
	"sort"
	"strings"

	"snabbit/models"
)

// ViewerRole determines which side of a booking counts as the counterparty
// when searching and sorting history: a customer sees helper names, a helper
// sees customer names.
type ViewerRole string

const (
	ViewerCustomer ViewerRole = "customer"
	ViewerHelper   ViewerRole = "helper"
)

// HistorySortKey selects the comparator for booking history.
type HistorySortKey string

const (
	HistoryByDate         HistorySortKey = "date"    // newest first
	HistoryByService      HistorySortKey = "service" // service name ascending
	HistoryByCounterparty HistorySortKey = "helper"  // counterparty name ascending
	HistoryByPrice        HistorySortKey = "price"   // service base price descending
)

// StatusFilterAll and ServiceFilterAll disable the respective exact-match filters.
const (
	StatusFilterAll  = "all"
	ServiceFilterAll = "all"
)

// ParseHistorySortKey normalizes a client-supplied sort key. "helper" and
// "counterpartyName" are synonyms; anything unrecognized falls back to date.
func ParseHistorySortKey(s string) HistorySortKey {
	switch s {
	case "date", "":
		return HistoryByDate
	case "service":
		return HistoryByService
	case "helper", "counterpartyName":
		return HistoryByCounterparty
	case "price":
		return HistoryByPrice
	}
	return HistoryByDate
}

func counterpartyName(rec models.BookingRecord, role ViewerRole) string {
	if role == ViewerHelper {
		return rec.Customer.Name()
	}
	return rec.Helper.Name
}

// FilterSortHistory filters booking records by search query, status and
// service, then orders them by the given sort key. The search matches
// case-insensitively against the service name, the counterparty name and the
// booking address; filters are conjunctive. Sorting is stable and the input
// slice is left untouched.
func FilterSortHistory(records []models.BookingRecord, query, statusFilter, serviceFilter string, sortKey HistorySortKey, role ViewerRole) []models.BookingRecord {
	q := strings.ToLower(query)
	out := make([]models.BookingRecord, 0)
	for _, rec := range records {
		matchesSearch := q == "" ||
			strings.Contains(strings.ToLower(rec.Service.Name), q) ||
			strings.Contains(strings.ToLower(counterpartyName(rec, role)), q) ||
			strings.Contains(strings.ToLower(rec.CustomerLocation.Address), q)
		if !matchesSearch {
			continue
		}
		if statusFilter != StatusFilterAll && string(rec.Status) != statusFilter {
			continue
		}
		if serviceFilter != ServiceFilterAll && rec.Service.Name != serviceFilter {
			continue
		}
		out = append(out, rec)
	}

	switch sortKey {
	case HistoryByDate:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		})
	case HistoryByService:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Service.Name < out[j].Service.Name
		})
	case HistoryByCounterparty:
		sort.SliceStable(out, func(i, j int) bool {
			return counterpartyName(out[i], role) < counterpartyName(out[j], role)
		})
	case HistoryByPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Service.BasePrice > out[j].Service.BasePrice
		})
	}

	return out
}
