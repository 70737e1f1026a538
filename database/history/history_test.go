package history

import (
	"testing"
	"time"

	"snabbit/models"
)

func record(id, customerID string, helperID int) models.BookingRecord {
	return models.BookingRecord{
		ID:        id,
		Service:   models.Service{ID: 1, Name: "Tech Support"},
		Helper:    models.HelperProfile{ID: helperID, Name: "Sarah Johnson"},
		Customer:  models.UserDetails{ID: customerID, FirstName: "Alice"},
		CreatedAt: time.Now(),
		Status:    models.BookingConfirmed,
	}
}

func TestAppendKeepsNewestFirst(t *testing.T) {
	repo := NewMemoryRepository()
	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Append(record(id, "cust", 1)); err != nil {
			t.Fatalf("Append(%s): %v", id, err)
		}
	}

	all := repo.GetAll()
	if len(all) != 3 {
		t.Fatalf("got %d records, want 3", len(all))
	}
	if all[0].ID != "c" || all[1].ID != "b" || all[2].ID != "a" {
		t.Fatalf("order = %s,%s,%s; want c,b,a", all[0].ID, all[1].ID, all[2].ID)
	}
}

func TestAppendRejectsDuplicateID(t *testing.T) {
	repo := NewMemoryRepository()
	if err := repo.Append(record("a", "cust", 1)); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := repo.Append(record("a", "cust", 1)); err == nil {
		t.Fatal("expected error for duplicate booking ID")
	}
}

func TestGetByIDAfterMultipleAppends(t *testing.T) {
	repo := NewMemoryRepository()
	for _, id := range []string{"a", "b", "c"} {
		if err := repo.Append(record(id, "cust", 1)); err != nil {
			t.Fatalf("Append(%s): %v", id, err)
		}
	}

	// The index must survive the prepend reshuffling.
	for _, id := range []string{"a", "b", "c"} {
		got, err := repo.GetByID(id)
		if err != nil {
			t.Fatalf("GetByID(%s): %v", id, err)
		}
		if got.ID != id {
			t.Errorf("GetByID(%s) returned %s", id, got.ID)
		}
	}
	if _, err := repo.GetByID("missing"); err == nil {
		t.Fatal("expected error for unknown booking")
	}
}

func TestGetByCustomerAndHelper(t *testing.T) {
	repo := NewMemoryRepository()
	repo.Append(record("a", "cust1", 1))
	repo.Append(record("b", "cust2", 2))
	repo.Append(record("c", "cust1", 1))

	if got := repo.GetByCustomer("cust1"); len(got) != 2 || got[0].ID != "c" {
		t.Fatalf("GetByCustomer = %v", got)
	}
	if got := repo.GetByHelper(2); len(got) != 1 || got[0].ID != "b" {
		t.Fatalf("GetByHelper = %v", got)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	tests := []struct {
		from   models.BookingStatus
		to     models.BookingStatus
		wantOK bool
	}{
		{models.BookingConfirmed, models.BookingActive, true},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingActive, models.BookingCompleted, true},
		{models.BookingActive, models.BookingCancelled, true},
		{models.BookingActive, models.BookingConfirmed, false},
		{models.BookingCompleted, models.BookingActive, false},
		{models.BookingCancelled, models.BookingActive, false},
	}

	for _, tt := range tests {
		repo := NewMemoryRepository()
		rec := record("a", "cust", 1)
		rec.Status = tt.from
		repo.Append(rec)

		updated, err := repo.UpdateStatus("a", tt.to)
		if tt.wantOK {
			if err != nil {
				t.Errorf("%s -> %s: unexpected error %v", tt.from, tt.to, err)
				continue
			}
			if updated.Status != tt.to {
				t.Errorf("%s -> %s: status is %s", tt.from, tt.to, updated.Status)
			}
		} else if err == nil {
			t.Errorf("%s -> %s: expected error", tt.from, tt.to)
		}
	}
}

func TestUpdateStatusUnknownBooking(t *testing.T) {
	repo := NewMemoryRepository()
	if _, err := repo.UpdateStatus("missing", models.BookingActive); err == nil {
		t.Fatal("expected error for unknown booking")
	}
}
