package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

func (s *Store) SaveAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[account.AccountID]; exists {
		return apperrors.ErrDuplicate
	}

	codes, ok := s.accountIDByCode[account.OrganizationID]
	if !ok {
		codes = make(map[string]string)
		s.accountIDByCode[account.OrganizationID] = codes
	}
	if _, taken := codes[account.Code]; taken {
		return fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, account.Code)
	}

	codes[account.Code] = account.AccountID
	s.accounts[account.AccountID] = account
	s.accountOrder[account.OrganizationID] = append(s.accountOrder[account.OrganizationID], account.AccountID)
	return nil
}

func (s *Store) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &account, nil
}

func (s *Store) FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string]domain.Account, len(accountIDs))
	for _, id := range accountIDs {
		if account, ok := s.accounts[id]; ok {
			found[id] = account
		}
	}
	return found, nil
}

func (s *Store) ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.accountOrder[organizationID]
	accounts := make([]domain.Account, 0, len(order))
	for _, id := range order {
		accounts = append(accounts, s.accounts[id])
	}
	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.AccountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	// Code, class, organization and balance are immutable through this path.
	account.Code = existing.Code
	account.Class = existing.Class
	account.OrganizationID = existing.OrganizationID
	account.Balance = existing.Balance
	s.accounts[account.AccountID] = account
	return nil
}

func (s *Store) DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if !account.IsActive {
		return fmt.Errorf("%w: account %s is already inactive", apperrors.ErrValidation, account.Code)
	}
	account.IsActive = false
	account.LastUpdatedAt = now
	account.LastUpdatedBy = userID
	s.accounts[accountID] = account
	return nil
}
