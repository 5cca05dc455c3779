package repositories

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// ContactRepositoryFacade is the storage capability for contacts.
type ContactRepositoryFacade interface {
	SaveContact(ctx context.Context, contact domain.Contact) error
	// FindContactByID retrieves a contact by its ID, ErrNotFound if absent.
	FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error)
	// ListContacts returns the organization's contacts in insertion order.
	ListContacts(ctx context.Context, organizationID string) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, contact domain.Contact) error
}
