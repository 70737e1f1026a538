package models

// HelperProfile represents a service-provider profile in the marketplace
// catalog. Profiles are immutable reference data; there are no live updates.
type HelperProfile struct {
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	Rating           float64  `json:"rating"`        // expected value between 0 and 5
	DistanceMiles    float64  `json:"distanceMiles"` // distance from the customer area
	HourlyPrice      float64  `json:"hourlyPrice"`
	ArrivalMinutes   int      `json:"arrivalMinutes"` // estimated time to arrive
	Avatar           string   `json:"avatar"`
	Skills           []string `json:"skills"` // service names the helper covers
	ReviewCount      int      `json:"reviewCount"`
	Coordinates      *LatLng  `json:"coordinates,omitempty"`
	IsAvailable      bool     `json:"isAvailable"`
	Phone            string   `json:"phone,omitempty"`
	Verified         bool     `json:"verified"`
	Badges           []string `json:"badges,omitempty"`
	Languages        []string `json:"languages,omitempty"`
	ResponseMinutes  int      `json:"responseMinutes"` // typical time to respond to a request
	EmergencyCapable bool     `json:"emergencyCapable"`
	CompletedJobs    int      `json:"completedJobs"`
	JoinedDate       string   `json:"joinedDate,omitempty"` // "YYYY-MM-DD"
}

// HasSkill reports whether the helper lists the given service name as a skill.
func (h HelperProfile) HasSkill(serviceName string) bool {
	for _, s := range h.Skills {
		if s == serviceName {
			return true
		}
	}
	return false
}
