package repositories

import (
	"context"
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// AccountRepositoryFacade is the storage capability for the chart of accounts.
// Balances are mutated only through EntryRepositoryFacade.SaveEntry; this
// interface has no direct balance setter.
type AccountRepositoryFacade interface {
	// SaveAccount inserts a new account. Returns ErrDuplicate when the
	// organization already has an account with the same code.
	SaveAccount(ctx context.Context, account domain.Account) error

	// FindAccountByID retrieves an account by its ID, ErrNotFound if absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts keyed by ID. Missing IDs
	// are simply absent from the map; the caller decides whether that is fatal.
	FindAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)

	// ListAccounts returns the organization's accounts in insertion order.
	// Unknown organizations yield an empty slice, not an error.
	ListAccounts(ctx context.Context, organizationID string) ([]domain.Account, error)

	// UpdateAccount persists name/description/active changes. Class, code and
	// balance are immutable through this path.
	UpdateAccount(ctx context.Context, account domain.Account) error

	// DeactivateAccount marks an account inactive; ErrNotFound if absent,
	// ErrValidation if already inactive.
	DeactivateAccount(ctx context.Context, accountID string, userID string, now time.Time) error
}
