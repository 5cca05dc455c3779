package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository onto one pgx pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(pool)
	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		EntryRepo:        newPgxEntryRepository(pool, accountRepo),
		OrganizationRepo: newPgxOrganizationRepository(pool),
		UserRepo:         newPgxUserRepository(pool),
		ContactRepo:      newPgxContactRepository(pool),
		InvoiceRepo:      newPgxInvoiceRepository(pool),
		NotificationRepo: newPgxNotificationRepository(pool),
	}
}
