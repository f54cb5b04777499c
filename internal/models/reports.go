package models

import "time"

// Row shapes of the reporting SQL views. The views are computed in the
// database; this code only reads the columns below and never re-derives
// the aggregated amounts.

type ClientTotalPayments struct {
	ClientID          int64   `json:"client_id"`
	ClientCode        string  `json:"client_code"`
	ClientName        string  `json:"client_name"`
	TotalPaid         float64 `json:"total_paid"`
	TotalTransactions int64   `json:"total_transactions"`
}

type PendingInvoice struct {
	InvoiceID     int64   `json:"invoice_id"`
	InvoiceNumber string  `json:"invoice_number"`
	ClientCode    string  `json:"client_code"`
	ClientName    string  `json:"client_name"`
	BillingPeriod string  `json:"billing_period"`
	TotalAmount   float64 `json:"total_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	PendingAmount float64 `json:"pending_amount"`
	Status        string  `json:"status"` // PENDING, PARTIAL, PAID, OVERDUE
	Description   string  `json:"description"`
}

type PlatformTransaction struct {
	PlatformName         string    `json:"platform_name"`
	TransactionReference string    `json:"transaction_reference"`
	ClientCode           string    `json:"client_code"`
	ClientName           string    `json:"client_name"`
	InvoiceNumber        string    `json:"invoice_number"`
	TransactionDate      time.Time `json:"transaction_date"`
	Amount               float64   `json:"amount"`
	TransactionType      string    `json:"transaction_type"`
	Status               string    `json:"status"` // COMPLETED, PENDING, FAILED, CANCELLED
}
