package matching

import (
	"reflect"
	"testing"
	"time"

	"snabbit/models"
)

func historyFixture() []models.BookingRecord {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return []models.BookingRecord{
		{
			ID:               "b3",
			Service:          models.Service{Name: "Tech Support", BasePrice: 40},
			Helper:           models.HelperProfile{Name: "Sarah Johnson"},
			Customer:         models.UserDetails{FirstName: "Alice", LastName: "Smith"},
			CustomerLocation: models.Location{Address: "350 5th Ave"},
			CreatedAt:        base.Add(48 * time.Hour),
			Status:           models.BookingCompleted,
		},
		{
			ID:               "b2",
			Service:          models.Service{Name: "House Cleaning", BasePrice: 35},
			Helper:           models.HelperProfile{Name: "Lisa Rodriguez"},
			Customer:         models.UserDetails{FirstName: "Bob", LastName: "Jones"},
			CustomerLocation: models.Location{Address: "10 Main St"},
			CreatedAt:        base.Add(24 * time.Hour),
			Status:           models.BookingCancelled,
		},
		{
			ID:               "b1",
			Service:          models.Service{Name: "Plumbing", BasePrice: 60},
			Helper:           models.HelperProfile{Name: "David Kim"},
			Customer:         models.UserDetails{FirstName: "Alice", LastName: "Smith"},
			CustomerLocation: models.Location{Address: "350 5th Ave"},
			CreatedAt:        base,
			Status:           models.BookingCompleted,
		},
	}
}

func recordIDs(records []models.BookingRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestFilterSortHistoryStatusFilter(t *testing.T) {
	got := FilterSortHistory(historyFixture(), "", "completed", ServiceFilterAll, HistoryByDate, ViewerCustomer)
	for _, rec := range got {
		if rec.Status != models.BookingCompleted {
			t.Errorf("record %s has status %s, want completed", rec.ID, rec.Status)
		}
	}
	if len(got) != 2 {
		t.Fatalf("got %d completed records, want 2", len(got))
	}
}

func TestFilterSortHistoryServiceFilter(t *testing.T) {
	got := FilterSortHistory(historyFixture(), "", StatusFilterAll, "Plumbing", HistoryByDate, ViewerCustomer)
	if want := []string{"b1"}; !reflect.DeepEqual(recordIDs(got), want) {
		t.Fatalf("service filter = %v, want %v", recordIDs(got), want)
	}
}

func TestFilterSortHistorySearchByRole(t *testing.T) {
	// Customers search helper names; helpers search customer names.
	records := historyFixture()

	got := FilterSortHistory(records, "sarah", StatusFilterAll, ServiceFilterAll, HistoryByDate, ViewerCustomer)
	if want := []string{"b3"}; !reflect.DeepEqual(recordIDs(got), want) {
		t.Fatalf("customer search = %v, want %v", recordIDs(got), want)
	}

	got = FilterSortHistory(records, "sarah", StatusFilterAll, ServiceFilterAll, HistoryByDate, ViewerHelper)
	if len(got) != 0 {
		t.Fatalf("helper search for a helper name matched %v", recordIDs(got))
	}

	got = FilterSortHistory(records, "alice", StatusFilterAll, ServiceFilterAll, HistoryByDate, ViewerHelper)
	if want := []string{"b3", "b1"}; !reflect.DeepEqual(recordIDs(got), want) {
		t.Fatalf("helper search = %v, want %v", recordIDs(got), want)
	}
}

func TestFilterSortHistorySearchByAddress(t *testing.T) {
	got := FilterSortHistory(historyFixture(), "main st", StatusFilterAll, ServiceFilterAll, HistoryByDate, ViewerCustomer)
	if want := []string{"b2"}; !reflect.DeepEqual(recordIDs(got), want) {
		t.Fatalf("address search = %v, want %v", recordIDs(got), want)
	}
}

func TestFilterSortHistorySortKeys(t *testing.T) {
	tests := []struct {
		key  HistorySortKey
		role ViewerRole
		want []string
	}{
		{HistoryByDate, ViewerCustomer, []string{"b3", "b2", "b1"}},
		{HistoryByService, ViewerCustomer, []string{"b2", "b1", "b3"}},
		{HistoryByCounterparty, ViewerCustomer, []string{"b1", "b2", "b3"}}, // David, Lisa, Sarah
		{HistoryByCounterparty, ViewerHelper, []string{"b3", "b1", "b2"}},  // Alice, Alice, Bob
		{HistoryByPrice, ViewerCustomer, []string{"b1", "b3", "b2"}},       // 60, 40, 35
	}
	for _, tt := range tests {
		got := FilterSortHistory(historyFixture(), "", StatusFilterAll, ServiceFilterAll, tt.key, tt.role)
		if !reflect.DeepEqual(recordIDs(got), tt.want) {
			t.Errorf("sort %q (%s) = %v, want %v", tt.key, tt.role, recordIDs(got), tt.want)
		}
	}
}

func TestFilterSortHistoryStableForEqualKeys(t *testing.T) {
	// b3 and b1 share the customer "Alice Smith": counterparty sort for a
	// helper viewer must keep their input order.
	got := FilterSortHistory(historyFixture(), "", StatusFilterAll, ServiceFilterAll, HistoryByCounterparty, ViewerHelper)
	if want := []string{"b3", "b1", "b2"}; !reflect.DeepEqual(recordIDs(got), want) {
		t.Fatalf("stable sort = %v, want %v", recordIDs(got), want)
	}
}

func TestParseHistorySortKey(t *testing.T) {
	tests := []struct {
		in   string
		want HistorySortKey
	}{
		{"date", HistoryByDate},
		{"", HistoryByDate},
		{"service", HistoryByService},
		{"helper", HistoryByCounterparty},
		{"counterpartyName", HistoryByCounterparty},
		{"price", HistoryByPrice},
		{"bogus", HistoryByDate},
	}
	for _, tt := range tests {
		if got := ParseHistorySortKey(tt.in); got != tt.want {
			t.Errorf("ParseHistorySortKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFilterSortHistoryDoesNotMutateInput(t *testing.T) {
	records := historyFixture()
	FilterSortHistory(records, "", StatusFilterAll, ServiceFilterAll, HistoryByService, ViewerCustomer)
	if want := []string{"b3", "b2", "b1"}; !reflect.DeepEqual(recordIDs(records), want) {
		t.Fatalf("input slice was reordered: %v", recordIDs(records))
	}
}
