// Package location abstracts geolocation lookups behind a small interface so
// the rest of the application can be tested with a deterministic fake.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"snabbit/models"
)

// Result is the outcome of a lookup. Failed lookups carry an error message
// instead of returning a Go error, mirroring the fire-and-forget callbacks
// they replace: callers degrade to a manual address rather than failing.
type Result struct {
	Location models.Location `json:"location"`
	OK       bool            `json:"ok"`
	Err      string          `json:"error,omitempty"`
}

// Provider resolves a client hint (an IP address, or empty for the caller's
// own position) into a Location.
type Provider interface {
	Resolve(ctx context.Context, hint string) Result
}

// StaticProvider always returns a fixed location. It is the default wiring
// and the test fake.
type StaticProvider struct {
	Fixed models.Location
}

// NewStaticProvider returns a provider pinned to the seeded midtown address.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		Fixed: models.Location{
			Address:        "350 5th Ave, New York, NY 10118",
			Coordinates:    &models.LatLng{Lat: 40.7484, Lng: -73.9857},
			AccuracySource: "static",
		},
	}
}

func (p *StaticProvider) Resolve(ctx context.Context, hint string) Result {
	return Result{Location: p.Fixed, OK: true}
}

// IPAPIProvider resolves an IP address via ipapi.co.
type IPAPIProvider struct {
	Client *http.Client
}

// NewIPAPIProvider returns a provider with a 5 second request timeout.
func NewIPAPIProvider() *IPAPIProvider {
	return &IPAPIProvider{Client: &http.Client{Timeout: 5 * time.Second}}
}

func (p *IPAPIProvider) Resolve(ctx context.Context, hint string) Result {
	if hint == "" {
		return Result{OK: false, Err: "no IP address to resolve"}
	}

	url := fmt.Sprintf("https://ipapi.co/%s/json/", hint)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{OK: false, Err: err.Error()}
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return Result{OK: false, Err: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{OK: false, Err: fmt.Sprintf("geolocation API returned status %d", resp.StatusCode)}
	}

	var body struct {
		City      string  `json:"city"`
		Region    string  `json:"region"`
		Country   string  `json:"country_name"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{OK: false, Err: err.Error()}
	}

	return Result{
		OK: true,
		Location: models.Location{
			Address:        fmt.Sprintf("%s, %s, %s", body.City, body.Region, body.Country),
			Coordinates:    &models.LatLng{Lat: body.Latitude, Lng: body.Longitude},
			AccuracySource: "geolocation",
		},
	}
}
