package booking

import (
	"strconv"
	"strings"

	"snabbit/models"
)

// TaxRate applied to simulated invoices.
const TaxRate = 0.08

// EstimateHours derives a job length estimate from a service duration range
// such as "30-60 min", taking the midpoint. Unparseable ranges fall back to
// one hour.
func EstimateHours(durationRange string) float64 {
	s := strings.TrimSuffix(strings.TrimSpace(durationRange), " min")
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 1
	}
	lo, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	hi, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil || lo <= 0 || hi < lo {
		return 1
	}
	return float64(lo+hi) / 2 / 60
}

// Quote computes the simulated total for a service/helper pairing: the
// service base price plus the helper's hourly rate over the estimated hours.
func Quote(service models.Service, helper models.HelperProfile) float64 {
	hours := EstimateHours(service.DurationRange)
	return service.BasePrice + helper.HourlyPrice*hours
}

// BuildInvoice assembles the printable invoice view for a booking.
func BuildInvoice(rec models.BookingRecord) models.Invoice {
	hours := EstimateHours(rec.Service.DurationRange)
	amount := rec.Helper.HourlyPrice * hours
	subtotal := rec.Service.BasePrice + amount
	tax := subtotal * TaxRate
	return models.Invoice{
		InvoiceNumber:   "INV-" + rec.ID[:8],
		Date:            rec.CreatedAt.Format("2006-01-02"),
		DueDate:         rec.CreatedAt.AddDate(0, 0, 14).Format("2006-01-02"),
		CustomerName:    rec.Customer.Name(),
		CustomerEmail:   rec.Customer.Email,
		CustomerPhone:   rec.Customer.Phone,
		CustomerAddress: rec.CustomerLocation.Address,
		ServiceName:     rec.Service.Name,
		Hours:           hours,
		Rate:            rec.Helper.HourlyPrice,
		Amount:          amount,
		Subtotal:        subtotal,
		Tax:             tax,
		Total:           subtotal + tax,
		PaymentMethod:   rec.PaymentMethod,
		Status:          string(rec.Status),
	}
}
