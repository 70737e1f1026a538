// Package chat keeps mock, append-only chat threads per booking. There is no
// real transport; threads are seeded with canned helper messages when a
// booking is confirmed.
package chat

import (
	"fmt"
	"sync"
	"time"

	"snabbit/models"
)

// Service exposes the chat threads.
type Service interface {
	SeedThread(bookingID string, helper models.HelperProfile)
	GetThread(bookingID string) ([]models.ChatMessage, error)
	Append(bookingID, sender, text string) (*models.ChatMessage, error)
}

// MemoryService is the in-memory implementation of Service.
type MemoryService struct {
	mu      sync.RWMutex
	threads map[string][]models.ChatMessage

	// Now is overridable for deterministic tests.
	Now func() time.Time
}

// NewMemoryService returns an empty chat store.
func NewMemoryService() *MemoryService {
	return &MemoryService{threads: make(map[string][]models.ChatMessage)}
}

func (s *MemoryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SeedThread creates the booking's thread with the canned opening exchange.
// Seeding an existing thread is a no-op.
func (s *MemoryService) SeedThread(bookingID string, helper models.HelperProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.threads[bookingID]; exists {
		return
	}
	now := s.now()
	s.threads[bookingID] = []models.ChatMessage{
		{ID: 1, Sender: "helper", Text: "Hi! I can help you with your request. What seems to be the issue?", SentAt: now, BookingID: bookingID},
		{ID: 2, Sender: "customer", Text: "I need help with my laptop running slowly.", SentAt: now.Add(2 * time.Minute), BookingID: bookingID},
		{ID: 3, Sender: "helper", Text: fmt.Sprintf("No problem! I can be there in %d minutes with my toolkit.", helper.ArrivalMinutes), SentAt: now.Add(3 * time.Minute), BookingID: bookingID},
	}
}

// GetThread returns a copy of the booking's messages in send order.
func (s *MemoryService) GetThread(bookingID string) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread, ok := s.threads[bookingID]
	if !ok {
		return nil, fmt.Errorf("no chat thread for booking %s", bookingID)
	}
	out := make([]models.ChatMessage, len(thread))
	copy(out, thread)
	return out, nil
}

// Append adds a message to the booking's thread.
func (s *MemoryService) Append(bookingID, sender, text string) (*models.ChatMessage, error) {
	if text == "" {
		return nil, fmt.Errorf("empty message")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	thread, ok := s.threads[bookingID]
	if !ok {
		return nil, fmt.Errorf("no chat thread for booking %s", bookingID)
	}
	msg := models.ChatMessage{
		ID:        len(thread) + 1,
		Sender:    sender,
		Text:      text,
		SentAt:    s.now(),
		BookingID: bookingID,
	}
	s.threads[bookingID] = append(thread, msg)
	return &msg, nil
}
