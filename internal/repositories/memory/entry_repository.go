package memory

import (
	"context"
	"fmt"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s *Store) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, balanceChanges map[string]decimal.Decimal) error {
	// Serialize commits within the organization; commits in other
	// organizations are unaffected.
	commitLock := s.orgCommitLock(entry.OrganizationID)
	commitLock.Lock()
	defer commitLock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[entry.EntryID]; exists {
		return apperrors.ErrDuplicate
	}
	// Verify every touched account before mutating anything, so a failed
	// commit leaves no partial state behind.
	for accountID := range balanceChanges {
		account, ok := s.accounts[accountID]
		if !ok || account.OrganizationID != entry.OrganizationID {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
	}

	for accountID, change := range balanceChanges {
		account := s.accounts[accountID]
		account.Balance = account.Balance.Add(change)
		account.LastUpdatedAt = entry.CreatedAt
		account.LastUpdatedBy = entry.CreatedBy
		s.accounts[accountID] = account
	}

	entry.Lines = nil // lines are stored separately
	s.entries[entry.EntryID] = entry
	s.entryOrder[entry.OrganizationID] = append(s.entryOrder[entry.OrganizationID], entry.EntryID)
	s.lines[entry.EntryID] = append([]domain.EntryLine(nil), lines...)
	return nil
}

func (s *Store) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[entryID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (s *Store) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]domain.EntryLine(nil), s.lines[entryID]...), nil
}

func (s *Store) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := make(map[string][]domain.EntryLine, len(entryIDs))
	for _, entryID := range entryIDs {
		found[entryID] = append([]domain.EntryLine(nil), s.lines[entryID]...)
	}
	return found, nil
}

func (s *Store) ListEntriesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.entryOrder[organizationID]
	entries := make([]domain.JournalEntry, 0, len(order))
	for _, entryID := range order {
		entries = append(entries, s.entries[entryID])
	}
	return entries, nil
}
