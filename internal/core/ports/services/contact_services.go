package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

// ContactSvcFacade manages an organization's customers, suppliers and
// employees. All operations check the caller's membership first.
type ContactSvcFacade interface {
	CreateContact(ctx context.Context, organizationID string, req dto.CreateContactRequest, userID string) (*domain.Contact, error)
	GetContactByID(ctx context.Context, organizationID, contactID, userID string) (*domain.Contact, error)
	ListContacts(ctx context.Context, organizationID, userID string) ([]domain.Contact, error)
	UpdateContact(ctx context.Context, organizationID, contactID string, req dto.UpdateContactRequest, userID string) (*domain.Contact, error)
}
