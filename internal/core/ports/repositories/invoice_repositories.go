package repositories

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// InvoiceRepositoryFacade is the storage capability for invoices.
type InvoiceRepositoryFacade interface {
	// SaveInvoice inserts a new invoice. Returns ErrDuplicate when the
	// invoice number is already taken.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error
	// FindInvoiceByID retrieves an invoice by its ID, ErrNotFound if absent.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)
	// ListInvoices returns the organization's invoices in insertion order.
	ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error)
	UpdateInvoice(ctx context.Context, invoice domain.Invoice) error
}
