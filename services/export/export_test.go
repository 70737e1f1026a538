package export

import (
	"bytes"
	"testing"
	"time"

	"snabbit/models"
)

func TestInvoicePDF(t *testing.T) {
	svc := NewPDFService()

	data, err := svc.InvoicePDF(models.Invoice{
		InvoiceNumber: "INV-01234567",
		Date:          "2026-08-01",
		DueDate:       "2026-08-15",
		CustomerName:  "Alice Smith",
		ServiceName:   "Tech Support",
		Hours:         0.75,
		Rate:          45,
		Amount:        33.75,
		Subtotal:      73.75,
		Tax:           5.9,
		Total:         79.65,
		PaymentMethod: "card",
		Status:        "confirmed",
	})
	if err != nil {
		t.Fatalf("InvoicePDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF (%d bytes)", len(data))
	}
}

func TestTransactionReportPDF(t *testing.T) {
	svc := NewPDFService()

	rows := []models.TransactionRow{
		{Date: "2026-08-01", Service: "Tech Support", Counterparty: "Sarah Johnson", Amount: 73.75, Status: "completed"},
		{Date: "2026-08-02", Service: "Plumbing", Counterparty: "David Kim", Amount: 120, Status: "cancelled"},
	}
	data, err := svc.TransactionReportPDF(rows, "all", time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("TransactionReportPDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF (%d bytes)", len(data))
	}
}

func TestTransactionReportPDFEmpty(t *testing.T) {
	svc := NewPDFService()
	data, err := svc.TransactionReportPDF(nil, "all", time.Now())
	if err != nil {
		t.Fatalf("TransactionReportPDF: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty report produced no document")
	}
}
