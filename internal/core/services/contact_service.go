package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
}

// NewContactService creates a contact service.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.ContactSvcFacade {
	return &contactService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		contactRepo: contactRepo,
	}
}

func (s *contactService) CreateContact(ctx context.Context, organizationID string, req dto.CreateContactRequest, userID string) (*domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	contactType := domain.ContactType(req.Type)
	if !contactType.IsValid() {
		return nil, fmt.Errorf("%w: invalid contact type %q", apperrors.ErrValidation, req.Type)
	}

	now := time.Now()
	contact := domain.Contact{
		ContactID:      uuid.NewString(),
		OrganizationID: organizationID,
		Name:           req.Name,
		Type:           contactType,
		Email:          req.Email,
		Phone:          req.Phone,
		Address:        req.Address,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.contactRepo.SaveContact(ctx, contact); err != nil {
		s.LogError(ctx, err, "Failed to save contact",
			slog.String("organization_id", organizationID),
			slog.String("name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Contact created",
		slog.String("contact_id", contact.ContactID),
		slog.String("type", string(contact.Type)))
	return &contact, nil
}

// findInOrganization fetches a contact and verifies it belongs to the
// organization. Contacts of other organizations are reported as not found.
func (s *contactService) findInOrganization(ctx context.Context, organizationID, contactID string) (*domain.Contact, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if contact.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return contact, nil
}

func (s *contactService) GetContactByID(ctx context.Context, organizationID, contactID, userID string) (*domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findInOrganization(ctx, organizationID, contactID)
}

func (s *contactService) ListContacts(ctx context.Context, organizationID, userID string) ([]domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.contactRepo.ListContacts(ctx, organizationID)
}

func (s *contactService) UpdateContact(ctx context.Context, organizationID, contactID string, req dto.UpdateContactRequest, userID string) (*domain.Contact, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	contact, err := s.findInOrganization(ctx, organizationID, contactID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Address != nil {
		contact.Address = *req.Address
	}
	if req.IsActive != nil {
		contact.IsActive = *req.IsActive
	}
	contact.LastUpdatedAt = time.Now()
	contact.LastUpdatedBy = userID

	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogError(ctx, err, "Failed to update contact", slog.String("contact_id", contactID))
		return nil, err
	}
	return contact, nil
}
