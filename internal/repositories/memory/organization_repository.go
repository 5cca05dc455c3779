package memory

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// SaveOrganizationWithSetup persists the organization, its owner membership
// and the seed chart as one atomic operation. Everything is verified before
// any map is touched, so a failure leaves no partial organization behind.
func (s *Store) SaveOrganizationWithSetup(ctx context.Context, org domain.Organization, owner domain.Membership, chart []domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.organizations[org.OrganizationID]; exists {
		return apperrors.ErrDuplicate
	}
	seen := make(map[string]bool, len(chart))
	for _, account := range chart {
		if _, exists := s.accounts[account.AccountID]; exists {
			return apperrors.ErrDuplicate
		}
		if seen[account.Code] {
			return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
		}
		seen[account.Code] = true
	}

	s.organizations[org.OrganizationID] = org
	s.memberships[org.OrganizationID] = map[string]domain.Membership{owner.UserID: owner}

	codes := make(map[string]string, len(chart))
	s.accountIDByCode[org.OrganizationID] = codes
	for _, account := range chart {
		codes[account.Code] = account.AccountID
		s.accounts[account.AccountID] = account
		s.accountOrder[org.OrganizationID] = append(s.accountOrder[org.OrganizationID], account.AccountID)
	}
	return nil
}

func (s *Store) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	org, ok := s.organizations[organizationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &org, nil
}

func (s *Store) SaveMembership(ctx context.Context, membership domain.Membership) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members, ok := s.memberships[membership.OrganizationID]
	if !ok {
		members = make(map[string]domain.Membership)
		s.memberships[membership.OrganizationID] = members
	}
	if _, exists := members[membership.UserID]; exists {
		return apperrors.ErrDuplicate
	}
	members[membership.UserID] = membership
	return nil
}

func (s *Store) FindMembership(ctx context.Context, userID, organizationID string) (*domain.Membership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	membership, ok := s.memberships[organizationID][userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &membership, nil
}

func (s *Store) ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	orgs := make([]domain.Organization, 0)
	for orgID, members := range s.memberships {
		if _, ok := members[userID]; ok {
			if org, found := s.organizations[orgID]; found {
				orgs = append(orgs, org)
			}
		}
	}
	return orgs, nil
}
