package models

import "time"

// ChatMessage is a single message in a booking's chat thread. Threads are
// mock, append-only and in-memory; there is no real transport.
type ChatMessage struct {
	ID        int       `json:"id"`
	Sender    string    `json:"sender"` // "customer" or "helper"
	Text      string    `json:"text"`
	SentAt    time.Time `json:"sentAt"`
	BookingID string    `json:"bookingId,omitempty"`
}
