// Package history stores confirmed booking records for the lifetime of the
// process. Records are kept newest first and are never deleted; only status
// transitions mutate a record.
package history

import (
	"fmt"
	"sync"

	"snabbit/models"
)

// Repository is the booking history store.
type Repository interface {
	Append(record models.BookingRecord) error
	GetAll() []models.BookingRecord
	GetByID(id string) (*models.BookingRecord, error)
	GetByCustomer(customerID string) []models.BookingRecord
	GetByHelper(helperID int) []models.BookingRecord
	UpdateStatus(id string, status models.BookingStatus) (*models.BookingRecord, error)
}

// MemoryRepository is the in-memory implementation of Repository.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []models.BookingRecord
	byID    map[string]int
}

// NewMemoryRepository returns an empty history store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]int)}
}

// Append prepends the record, keeping the sequence newest first.
func (r *MemoryRepository) Append(record models.BookingRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[record.ID]; exists {
		return fmt.Errorf("booking %s already recorded", record.ID)
	}
	r.records = append([]models.BookingRecord{record}, r.records...)
	// Reindex: every existing record shifted by one.
	for id, idx := range r.byID {
		r.byID[id] = idx + 1
	}
	r.byID[record.ID] = 0
	return nil
}

// GetAll returns a copy of the full history, newest first.
func (r *MemoryRepository) GetAll() []models.BookingRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.BookingRecord, len(r.records))
	copy(out, r.records)
	return out
}

// GetByID returns the record with the given booking ID.
func (r *MemoryRepository) GetByID(id string) (*models.BookingRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	rec := r.records[idx]
	return &rec, nil
}

// GetByCustomer returns the customer's bookings, newest first.
func (r *MemoryRepository) GetByCustomer(customerID string) []models.BookingRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.BookingRecord
	for _, rec := range r.records {
		if rec.Customer.ID == customerID {
			out = append(out, rec)
		}
	}
	return out
}

// GetByHelper returns the bookings assigned to the given helper, newest first.
func (r *MemoryRepository) GetByHelper(helperID int) []models.BookingRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.BookingRecord
	for _, rec := range r.records {
		if rec.Helper.ID == helperID {
			out = append(out, rec)
		}
	}
	return out
}

// UpdateStatus applies a status transition and returns the updated record.
// Terminal statuses (completed, cancelled) admit no further transitions.
func (r *MemoryRepository) UpdateStatus(id string, status models.BookingStatus) (*models.BookingRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	current := r.records[idx].Status
	if current.IsTerminal() {
		return nil, fmt.Errorf("booking %s is already %s", id, current)
	}
	if !validTransition(current, status) {
		return nil, fmt.Errorf("invalid status transition %s -> %s", current, status)
	}
	r.records[idx].Status = status
	rec := r.records[idx]
	return &rec, nil
}

func validTransition(from, to models.BookingStatus) bool {
	switch from {
	case models.BookingConfirmed:
		return to == models.BookingActive || to == models.BookingCompleted || to == models.BookingCancelled
	case models.BookingActive:
		return to == models.BookingCompleted || to == models.BookingCancelled
	}
	return false
}
