package booking

import (
	"math"
	"testing"
	"time"

	"snabbit/models"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimateHours(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30-60 min", 0.75},
		{"60-120 min", 1.5},
		{"15-30 min", 0.375},
		{"120-240 min", 3},
		{"garbage", 1},
		{"", 1},
		{"60-30 min", 1}, // inverted range
	}
	for _, tt := range tests {
		if got := EstimateHours(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("EstimateHours(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	service := models.Service{Name: "Tech Support", BasePrice: 40, DurationRange: "30-60 min"}
	helper := models.HelperProfile{Name: "Sarah Johnson", HourlyPrice: 45}

	// 40 + 45 * 0.75
	if got := Quote(service, helper); !almostEqual(got, 73.75) {
		t.Fatalf("Quote = %v, want 73.75", got)
	}
}

func TestBuildInvoice(t *testing.T) {
	rec := models.BookingRecord{
		ID:      "0123456789abcdef",
		Service: models.Service{Name: "Tech Support", BasePrice: 40, DurationRange: "30-60 min"},
		Helper:  models.HelperProfile{Name: "Sarah Johnson", HourlyPrice: 45},
		Customer: models.UserDetails{
			FirstName: "Alice", LastName: "Smith", Email: "alice@example.com",
		},
		CustomerLocation: models.Location{Address: "350 5th Ave"},
		CreatedAt:        time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Status:           models.BookingConfirmed,
		PaymentMethod:    "card",
	}

	inv := BuildInvoice(rec)
	if inv.InvoiceNumber != "INV-01234567" {
		t.Errorf("InvoiceNumber = %s", inv.InvoiceNumber)
	}
	if inv.Date != "2026-08-01" || inv.DueDate != "2026-08-15" {
		t.Errorf("dates = %s / %s", inv.Date, inv.DueDate)
	}
	if !almostEqual(inv.Subtotal, 73.75) {
		t.Errorf("Subtotal = %v, want 73.75", inv.Subtotal)
	}
	if !almostEqual(inv.Tax, 73.75*TaxRate) {
		t.Errorf("Tax = %v", inv.Tax)
	}
	if !almostEqual(inv.Total, inv.Subtotal+inv.Tax) {
		t.Errorf("Total = %v, want subtotal+tax", inv.Total)
	}
	if inv.CustomerName != "Alice Smith" {
		t.Errorf("CustomerName = %s", inv.CustomerName)
	}
}
