package dto

import (
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest is the payload for issuing an invoice. The invoice
// number is assigned by the system; the total must equal subtotal plus tax.
type CreateInvoiceRequest struct {
	ContactID   string          `json:"contactId" binding:"required"`
	IssueDate   time.Time       `json:"issueDate" binding:"required"`
	DueDate     *time.Time      `json:"dueDate,omitempty"`
	Subtotal    decimal.Decimal `json:"subtotal" binding:"required"`
	TaxAmount   decimal.Decimal `json:"taxAmount"`
	TotalAmount decimal.Decimal `json:"totalAmount" binding:"required"`
}

// UpdateInvoiceStatusRequest moves an invoice through its lifecycle.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=sent paid cancelled"`
}

// InvoiceResponse is the API shape of an invoice.
type InvoiceResponse struct {
	InvoiceID      string          `json:"invoiceId"`
	OrganizationID string          `json:"organizationId"`
	InvoiceNumber  string          `json:"invoiceNumber"`
	ContactID      string          `json:"contactId"`
	IssueDate      time.Time       `json:"issueDate"`
	DueDate        *time.Time      `json:"dueDate,omitempty"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	TaxAmount      decimal.Decimal `json:"taxAmount"`
	TotalAmount    decimal.Decimal `json:"totalAmount"`
	Status         string          `json:"status"`
	CreatedAt      time.Time       `json:"createdAt"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
}

func ToInvoiceResponse(invoice domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:      invoice.InvoiceID,
		OrganizationID: invoice.OrganizationID,
		InvoiceNumber:  invoice.InvoiceNumber,
		ContactID:      invoice.ContactID,
		IssueDate:      invoice.IssueDate,
		DueDate:        invoice.DueDate,
		Subtotal:       invoice.Subtotal,
		TaxAmount:      invoice.TaxAmount,
		TotalAmount:    invoice.TotalAmount,
		Status:         string(invoice.Status),
		CreatedAt:      invoice.CreatedAt,
		LastUpdatedAt:  invoice.LastUpdatedAt,
	}
}

func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, invoice := range invoices {
		responses = append(responses, ToInvoiceResponse(invoice))
	}
	return responses
}
