package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"snabbit/database/catalog"
	"snabbit/database/history"
	"snabbit/models"
	"snabbit/services/matching"
)

const sessionPrefix = "bookingSession:"
const sessionTTL = 10 * time.Minute

// HistoryQuery carries the filter and sort parameters for booking history.
type HistoryQuery struct {
	Search        string
	StatusFilter  string
	ServiceFilter string
	SortKey       matching.HistorySortKey
	Role          matching.ViewerRole
}

// ChatSeeder seeds a booking's chat thread once the booking is confirmed.
type ChatSeeder interface {
	SeedThread(bookingID string, helper models.HelperProfile)
}

// BookingSessionService drives the three-phase booking flow and the history
// queries built on top of it.
type BookingSessionService interface {
	InitiateSession(customerID string, serviceID int, sortKey matching.SortKey, location models.Location) (*models.BookingSession, error)
	UpdateSession(sessionID string, helperID int, paymentMethod string) (*models.BookingSession, error)
	ConfirmBooking(sessionID string, customer models.UserDetails) (*models.BookingRecord, error)
	CancelSession(sessionID string) error

	GetHistory(viewer models.UserDetails, q HistoryQuery) ([]models.BookingRecord, error)
	GetBooking(id string) (*models.BookingRecord, error)
	UpdateStatus(id string, status models.BookingStatus) (*models.BookingRecord, error)
	Earnings(helperID int, now time.Time) models.EarningsSummary
}

// DefaultBookingSessionService implements BookingSessionService. Sessions are
// cached in Redis with a TTL; confirmed bookings land in the in-memory
// history store.
type DefaultBookingSessionService struct {
	Services    catalog.ServiceRepository
	Helpers     catalog.HelperRepository
	MatchingSvc matching.MatchingService
	History     history.Repository
	CacheClient *redis.Client
	ChatSvc     ChatSeeder

	// Now is overridable for deterministic tests.
	Now func() time.Time
}

func (s *DefaultBookingSessionService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// InitiateSession matches helpers for the selected service and caches a new
// booking session.
func (s *DefaultBookingSessionService) InitiateSession(customerID string, serviceID int, sortKey matching.SortKey, location models.Location) (*models.BookingSession, error) {
	service, err := s.Services.GetByID(serviceID)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("unknown service %d", serviceID))
	}

	matched, err := s.MatchingSvc.MatchHelpers(serviceID, sortKey)
	if err != nil {
		return nil, fmt.Errorf("failed to match helpers: %w", err)
	}

	session := models.BookingSession{
		SessionID:        uuid.New().String(),
		CustomerID:       customerID,
		Service:          *service,
		MatchedHelpers:   matched,
		CustomerLocation: location,
		CreatedAt:        s.now(),
	}
	if err := s.saveSession(&session); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSession records the helper selection and payment method.
func (s *DefaultBookingSessionService) UpdateSession(sessionID string, helperID int, paymentMethod string) (*models.BookingSession, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	if helperID != 0 {
		if _, err := s.Helpers.GetByID(helperID); err != nil {
			return nil, NewValidationError(fmt.Sprintf("unknown helper %d", helperID))
		}
		session.SelectedHelperID = helperID
	}
	if paymentMethod != "" {
		session.PaymentMethod = paymentMethod
	}

	if err := s.saveSession(session); err != nil {
		return nil, err
	}
	return session, nil
}

// ConfirmBooking validates that the session's service and helper still resolve
// in the catalog, simulates the payment capture, appends the booking record
// and seeds its chat thread. The session is dropped afterwards.
func (s *DefaultBookingSessionService) ConfirmBooking(sessionID string, customer models.UserDetails) (*models.BookingRecord, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.SelectedHelperID == 0 {
		return nil, NewValidationError("no helper selected")
	}

	service, err := s.Services.GetByID(session.Service.ID)
	if err != nil {
		return nil, NewValidationError("service no longer in catalog")
	}
	helper, err := s.Helpers.GetByID(session.SelectedHelperID)
	if err != nil {
		return nil, NewValidationError("helper no longer in catalog")
	}

	method := session.PaymentMethod
	if method == "" {
		method = "card"
	}

	record := models.BookingRecord{
		ID:               uuid.New().String(),
		Service:          *service,
		Helper:           *helper,
		CustomerLocation: session.CustomerLocation,
		CreatedAt:        s.now(),
		Status:           models.BookingConfirmed,
		PaymentMethod:    method,
		Customer:         customer,
		Payment: &models.Payment{
			Amount:   Quote(*service, *helper),
			Method:   method,
			Paid:     true,
			PaidAt:   s.now(),
			Currency: "USD",
		},
	}

	if err := s.History.Append(record); err != nil {
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}
	if s.ChatSvc != nil {
		s.ChatSvc.SeedThread(record.ID, *helper)
	}
	s.dropSession(sessionID)
	return &record, nil
}

// CancelSession discards an in-flight booking session.
func (s *DefaultBookingSessionService) CancelSession(sessionID string) error {
	if _, err := s.loadSession(sessionID); err != nil {
		return err
	}
	s.dropSession(sessionID)
	return nil
}

// GetHistory returns the viewer's bookings after applying the history filters.
func (s *DefaultBookingSessionService) GetHistory(viewer models.UserDetails, q HistoryQuery) ([]models.BookingRecord, error) {
	var records []models.BookingRecord
	if q.Role == matching.ViewerHelper {
		records = s.History.GetAll()
	} else {
		records = s.History.GetByCustomer(viewer.ID)
	}

	statusFilter := q.StatusFilter
	if statusFilter == "" {
		statusFilter = matching.StatusFilterAll
	}
	serviceFilter := q.ServiceFilter
	if serviceFilter == "" {
		serviceFilter = matching.ServiceFilterAll
	}
	sortKey := q.SortKey
	if sortKey == "" {
		sortKey = matching.HistoryByDate
	}

	return matching.FilterSortHistory(records, q.Search, statusFilter, serviceFilter, sortKey, q.Role), nil
}

// GetBooking returns a single booking by ID.
func (s *DefaultBookingSessionService) GetBooking(id string) (*models.BookingRecord, error) {
	return s.History.GetByID(id)
}

// UpdateStatus applies a booking status transition.
func (s *DefaultBookingSessionService) UpdateStatus(id string, status models.BookingStatus) (*models.BookingRecord, error) {
	return s.History.UpdateStatus(id, status)
}

// Earnings aggregates the helper's completed bookings into daily, weekly and
// monthly buckets relative to now.
func (s *DefaultBookingSessionService) Earnings(helperID int, now time.Time) models.EarningsSummary {
	var summary models.EarningsSummary
	for _, rec := range s.History.GetByHelper(helperID) {
		if rec.Status != models.BookingCompleted || rec.Payment == nil {
			continue
		}
		amount := rec.Payment.Amount
		summary.Total += amount
		summary.Jobs++
		age := now.Sub(rec.CreatedAt)
		if age <= 24*time.Hour {
			summary.Daily += amount
		}
		if age <= 7*24*time.Hour {
			summary.Weekly += amount
		}
		if age <= 30*24*time.Hour {
			summary.Monthly += amount
		}
	}
	return summary
}

func (s *DefaultBookingSessionService) saveSession(session *models.BookingSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	ctx := context.Background()
	if err := s.CacheClient.Set(ctx, sessionPrefix+session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.CacheClient.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		return nil, NewSessionError("booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) dropSession(sessionID string) {
	ctx := context.Background()
	s.CacheClient.Del(ctx, sessionPrefix+sessionID)
}
