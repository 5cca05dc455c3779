package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

// LedgerSvcFacade commits and reads journal entries. Committed entries are
// immutable: the facade deliberately has no update or delete operation.
type LedgerSvcFacade interface {
	// CommitEntry validates and atomically commits a journal entry, applying
	// its balance effects to the referenced accounts. Returns the committed
	// entry with its lines and system-assigned entry number.
	CommitEntry(ctx context.Context, organizationID string, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error)

	// GetEntryByID returns the entry with its lines populated.
	GetEntryByID(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error)

	// ListEntries returns the organization's entries in commit order, each
	// with its lines populated.
	ListEntries(ctx context.Context, organizationID, userID string) ([]domain.JournalEntry, error)
}
