package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft     InvoiceStatus = "draft"
	InvoiceSent      InvoiceStatus = "sent"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether the status is one of the permitted values.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status may move to next. Draft invoices
// can be sent or cancelled; sent invoices can be paid or cancelled; paid and
// cancelled are terminal.
func (s InvoiceStatus) CanTransitionTo(next InvoiceStatus) bool {
	switch s {
	case InvoiceDraft:
		return next == InvoiceSent || next == InvoiceCancelled
	case InvoiceSent:
		return next == InvoicePaid || next == InvoiceCancelled
	}
	return false
}

// Invoice is a billing document issued to a contact. Invoices track their own
// lifecycle; they do not post to the ledger by themselves.
type Invoice struct {
	InvoiceID      string          `json:"invoiceID"` // Primary key (UUID)
	OrganizationID string          `json:"organizationID"`
	InvoiceNumber  string          `json:"invoiceNumber"` // System-assigned, e.g. "INV-01H..."
	ContactID      string          `json:"contactID"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         InvoiceStatus   `json:"status"`
	AuditFields
}
