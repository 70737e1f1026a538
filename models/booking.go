package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingActive    BookingStatus = "active"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether the status admits no further transitions.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Location is a customer-facing location: an address plus optional coordinates
// and the source that produced them ("manual", "geolocation", "geocoded").
type Location struct {
	Address        string  `json:"address"`
	Coordinates    *LatLng `json:"coordinates,omitempty"`
	AccuracySource string  `json:"accuracySource,omitempty"`
}

// UserDetails holds the mock account details attached to a booking.
type UserDetails struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

// Name returns the display name for search and sorting.
func (u UserDetails) Name() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// BookingRecord represents a confirmed booking. Records are appended newest
// first and never mutated except for status transitions; they live for the
// duration of the process only.
type BookingRecord struct {
	ID               string        `json:"id"` // UUID assigned at confirmation
	Service          Service       `json:"service"`
	Helper           HelperProfile `json:"helper"`
	CustomerLocation Location      `json:"customerLocation"`
	CreatedAt        time.Time     `json:"createdAt"`
	Status           BookingStatus `json:"status"`
	PaymentMethod    string        `json:"paymentMethod"`
	Customer         UserDetails   `json:"customer"`
	Payment          *Payment      `json:"payment,omitempty"`
}

// Payment is a simulated capture record. No gateway is involved; the amount
// is the quoted total at confirmation time.
type Payment struct {
	Amount   float64   `json:"amount"`
	Method   string    `json:"method"`
	Paid     bool      `json:"paid"`
	PaidAt   time.Time `json:"paidAt"`
	Currency string    `json:"currency"`
}

// BookingSession is the in-flight state of a booking flow, cached between the
// initiate, update and confirm phases.
type BookingSession struct {
	SessionID        string          `json:"sessionId"`
	CustomerID       string          `json:"customerId"`
	Service          Service         `json:"service"`
	MatchedHelpers   []HelperProfile `json:"matchedHelpers"`
	SelectedHelperID int             `json:"selectedHelperId,omitempty"`
	PaymentMethod    string          `json:"paymentMethod,omitempty"`
	CustomerLocation Location        `json:"customerLocation"`
	CreatedAt        time.Time       `json:"createdAt"`
}
