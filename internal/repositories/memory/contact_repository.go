package memory

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

func (s *Store) SaveContact(ctx context.Context, contact domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.contacts[contact.ContactID]; exists {
		return apperrors.ErrDuplicate
	}
	s.contacts[contact.ContactID] = contact
	s.contactOrder[contact.OrganizationID] = append(s.contactOrder[contact.OrganizationID], contact.ContactID)
	return nil
}

func (s *Store) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	contact, ok := s.contacts[contactID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &contact, nil
}

func (s *Store) ListContacts(ctx context.Context, organizationID string) ([]domain.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.contactOrder[organizationID]
	contacts := make([]domain.Contact, 0, len(order))
	for _, id := range order {
		contacts = append(contacts, s.contacts[id])
	}
	return contacts, nil
}

func (s *Store) UpdateContact(ctx context.Context, contact domain.Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.contacts[contact.ContactID]
	if !ok {
		return apperrors.ErrNotFound
	}
	// Type and organization are immutable through this path.
	contact.Type = existing.Type
	contact.OrganizationID = existing.OrganizationID
	s.contacts[contact.ContactID] = contact
	return nil
}
