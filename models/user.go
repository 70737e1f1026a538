package models

import "time"

// Account is a mock user account. Accounts live in memory for the lifetime of
// the process; there is no real identity backend.
type Account struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"` // "customer" or "helper"
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`

	// HelperProfile is the helper's own submitted profile (set via helper
	// registration). It does not enter the matchable catalog.
	HelperProfile *HelperRegistration `json:"helperProfile,omitempty"`
}

// Details projects the account into the booking-facing view.
func (a Account) Details() UserDetails {
	return UserDetails{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Email:     a.Email,
		Phone:     a.Phone,
	}
}

// HelperRegistration is the profile a helper submits when onboarding.
type HelperRegistration struct {
	Name             string   `json:"name"`
	Skills           []string `json:"skills"`
	HourlyPrice      float64  `json:"hourlyPrice"`
	Languages        []string `json:"languages,omitempty"`
	WorkingHours     string   `json:"workingHours,omitempty"` // e.g., "09:00-18:00"
	EmergencyCapable bool     `json:"emergencyCapable"`
	ResponseMinutes  int      `json:"responseMinutes"`
	Location         string   `json:"location,omitempty"`
}

// EarningsSummary aggregates a helper's earnings from completed bookings.
type EarningsSummary struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
	Total   float64 `json:"total"`
	Jobs    int     `json:"jobs"`
}
