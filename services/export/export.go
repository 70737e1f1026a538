// Package export builds printable PDF documents (invoices, transaction
// reports) from booking data.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"snabbit/models"
)

// Service renders PDF documents.
type Service interface {
	InvoicePDF(inv models.Invoice) ([]byte, error)
	TransactionReportPDF(rows []models.TransactionRow, reportType string, generatedAt time.Time) ([]byte, error)
}

// PDFService is the gofpdf-backed implementation of Service.
type PDFService struct{}

// NewPDFService returns a PDF exporter.
func NewPDFService() *PDFService {
	return &PDFService{}
}

// InvoicePDF renders a single-booking invoice.
func (s *PDFService) InvoicePDF(inv models.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 20, "Snabbit Helper")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Text(20, 30, "Invoice")

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 42, fmt.Sprintf("Invoice #: %s", inv.InvoiceNumber))
	pdf.Text(20, 48, fmt.Sprintf("Date: %s", inv.Date))
	pdf.Text(20, 54, fmt.Sprintf("Due Date: %s", inv.DueDate))

	pdf.Text(20, 66, "Bill To:")
	pdf.Text(20, 72, inv.CustomerName)
	pdf.Text(20, 78, inv.CustomerEmail)
	pdf.Text(20, 84, inv.CustomerPhone)
	pdf.Text(20, 90, inv.CustomerAddress)

	// Line-item table.
	pdf.SetXY(20, 100)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(66, 139, 202)
	pdf.SetTextColor(255, 255, 255)
	widths := []float64{80, 25, 30, 35}
	headers := []string{"Description", "Hours", "Rate", "Amount"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetX(20)
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(0, 0, 0)
	row := []string{
		inv.ServiceName,
		fmt.Sprintf("%.1f", inv.Hours),
		fmt.Sprintf("$%.2f", inv.Rate),
		fmt.Sprintf("$%.2f", inv.Amount),
	}
	for i, cell := range row {
		pdf.CellFormat(widths[i], 8, cell, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.Text(140, 130, fmt.Sprintf("Subtotal: $%.2f", inv.Subtotal))
	pdf.Text(140, 136, fmt.Sprintf("Tax: $%.2f", inv.Tax))
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(140, 142, fmt.Sprintf("Total: $%.2f", inv.Total))

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 156, fmt.Sprintf("Payment Method: %s", inv.PaymentMethod))
	pdf.Text(20, 162, fmt.Sprintf("Status: %s", inv.Status))

	pdf.SetFont("Helvetica", "", 8)
	pdf.Text(20, 280, "Thank you for using Snabbit Helper!")

	return output(pdf)
}

// TransactionReportPDF renders a table of transactions for the given report
// type ("all", "completed", ...).
func (s *PDFService) TransactionReportPDF(rows []models.TransactionRow, reportType string, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 20, "Snabbit Helper")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(20, 30, "Transaction Report")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(20, 38, fmt.Sprintf("Type: %s", reportType))
	pdf.Text(20, 44, fmt.Sprintf("Generated: %s", generatedAt.Format("2006-01-02 15:04")))

	pdf.SetXY(20, 54)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(66, 139, 202)
	pdf.SetTextColor(255, 255, 255)
	widths := []float64{28, 45, 45, 27, 25}
	headers := []string{"Date", "Service", "Counterparty", "Amount", "Status"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	var total float64
	for _, r := range rows {
		pdf.SetX(20)
		cells := []string{
			r.Date,
			r.Service,
			r.Counterparty,
			fmt.Sprintf("$%.2f", r.Amount),
			r.Status,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
		total += r.Amount
	}

	pdf.SetX(20)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(118, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(27, 8, fmt.Sprintf("$%.2f", total), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 8, "", "1", 0, "L", false, 0, "")

	return output(pdf)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
