package repositories

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryRepositoryFacade is the storage capability for journal entries and
// their lines. SaveEntry is the single channel through which account balances
// change after account creation.
type EntryRepositoryFacade interface {
	// SaveEntry atomically persists the entry, its lines, and applies the
	// signed balance changes to the referenced accounts. Either every step is
	// visible or none are. Implementations must serialize concurrent commits
	// touching the same organization (per-organization lock or DB transaction
	// with row locks on the affected accounts).
	SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, balanceChanges map[string]decimal.Decimal) error

	// FindEntryByID retrieves an entry by its ID, ErrNotFound if absent.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of one entry in insertion order.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error)

	// FindLinesByEntryIDs retrieves lines for several entries, keyed by entry
	// ID. Entries with no lines map to an empty slice.
	FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error)

	// ListEntriesByOrganization returns all committed entries of the
	// organization in commit order. Unknown organizations yield an empty slice.
	ListEntriesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error)
}
