package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

// InvoiceSvcFacade manages an organization's invoices. Invoices reference a
// contact of the same organization and move through
// draft -> sent -> paid/cancelled.
type InvoiceSvcFacade interface {
	CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error)
	GetInvoiceByID(ctx context.Context, organizationID, invoiceID, userID string) (*domain.Invoice, error)
	ListInvoices(ctx context.Context, organizationID, userID string) ([]domain.Invoice, error)
	// UpdateInvoiceStatus advances an invoice's lifecycle. Illegal transitions
	// return ErrValidation.
	UpdateInvoiceStatus(ctx context.Context, organizationID, invoiceID string, req dto.UpdateInvoiceStatusRequest, userID string) (*domain.Invoice, error)
}
