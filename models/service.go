package models

// Service represents a category of on-demand task offered on the platform.
// Services are immutable reference data seeded at startup.
type Service struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`              // e.g., "Tech Support"
	Icon              string  `json:"icon"`              // display glyph
	BasePrice         float64 `json:"basePrice"`         // starting price in USD
	DurationRange     string  `json:"durationRange"`     // e.g., "30-60 min"
	Category          string  `json:"category"`          // e.g., "Home", "Technology"
	EmergencyEligible bool    `json:"emergencyEligible"` // service can be requested in emergency mode
	Description       string  `json:"description"`
}

// PriceRange is an inclusive [Min, Max] filter over service base prices.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether p falls inside the range (inclusive on both ends).
func (r PriceRange) Contains(p float64) bool {
	return p >= r.Min && p <= r.Max
}
