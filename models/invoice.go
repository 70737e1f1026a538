package models

// Invoice is the printable view of a booking, fed to the PDF exporter.
type Invoice struct {
	InvoiceNumber   string  `json:"invoiceNumber"`
	Date            string  `json:"date"`
	DueDate         string  `json:"dueDate"`
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	CustomerAddress string  `json:"customerAddress"`
	ServiceName     string  `json:"serviceName"`
	Hours           float64 `json:"hours"`
	Rate            float64 `json:"rate"`
	Amount          float64 `json:"amount"`
	Subtotal        float64 `json:"subtotal"`
	Tax             float64 `json:"tax"`
	Total           float64 `json:"total"`
	PaymentMethod   string  `json:"paymentMethod"`
	Status          string  `json:"status"`
}

// TransactionRow is a single line of the transaction report.
type TransactionRow struct {
	Date         string  `json:"date"`
	Service      string  `json:"service"`
	Counterparty string  `json:"counterparty"`
	Amount       float64 `json:"amount"`
	Status       string  `json:"status"`
}
