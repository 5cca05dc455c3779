package memory

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

func (s *Store) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoices[invoice.InvoiceID]; exists {
		return apperrors.ErrDuplicate
	}
	for _, other := range s.invoices {
		if other.InvoiceNumber == invoice.InvoiceNumber {
			return fmt.Errorf("%w: invoice number %s", apperrors.ErrDuplicate, invoice.InvoiceNumber)
		}
	}
	s.invoices[invoice.InvoiceID] = invoice
	s.invoiceOrder[invoice.OrganizationID] = append(s.invoiceOrder[invoice.OrganizationID], invoice.InvoiceID)
	return nil
}

func (s *Store) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	invoice, ok := s.invoices[invoiceID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &invoice, nil
}

func (s *Store) ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.invoiceOrder[organizationID]
	invoices := make([]domain.Invoice, 0, len(order))
	for _, id := range order {
		invoices = append(invoices, s.invoices[id])
	}
	return invoices, nil
}

func (s *Store) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.invoices[invoice.InvoiceID]
	if !ok {
		return apperrors.ErrNotFound
	}
	// Number, contact and organization are immutable through this path.
	invoice.InvoiceNumber = existing.InvoiceNumber
	invoice.ContactID = existing.ContactID
	invoice.OrganizationID = existing.OrganizationID
	s.invoices[invoice.InvoiceID] = invoice
	return nil
}
