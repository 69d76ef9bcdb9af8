package entity

import "strings"

type Invoice struct {
	Id            string  `json:"id" bson:"id"`
	ClientId      string  `json:"client_id" bson:"client_id" validate:"required"`
	InvoiceNumber string  `json:"invoice_number" bson:"invoice_number" validate:"required"`
	Amount        float64 `json:"amount" bson:"amount" validate:"gte=0"`
	Status        string  `json:"status" bson:"status"`
	InvoiceUrl    string  `json:"invoice_url" bson:"invoice_url" validate:"omitempty,url"`
	IssuedAt      string  `json:"issued_at" bson:"issued_at"`
}

// Invoice statuses observed in production data. The store does not enforce
// the set: legacy rows carry lowercase values such as "completed" or "paid".
// Outstanding-amount reporting intentionally recognizes only the canonical
// "Paid" (product decision pending on the legacy casings, see DESIGN.md);
// NormalizeInvoiceStatus exists for display purposes only.
const (
	InvoicePending = "Pending"
	InvoicePaid    = "Paid"
	InvoiceOverdue = "Overdue"
)

// NormalizeInvoiceStatus maps known legacy spellings onto the canonical
// set for display. It never rewrites stored data.
func NormalizeInvoiceStatus(status string) string {
	switch strings.ToLower(status) {
	case "paid", "completed":
		return InvoicePaid
	case "pending":
		return InvoicePending
	case "overdue":
		return InvoiceOverdue
	default:
		return status
	}
}
