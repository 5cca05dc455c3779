package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

const organizationColumns = `organization_id, name, currency, created_at, created_by, last_updated_at, last_updated_by`

const membershipColumns = `membership_id, user_id, organization_id, role, created_at, created_by, last_updated_at, last_updated_by`

type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organization data.
func newPgxOrganizationRepository(pool *pgxpool.Pool) *PgxOrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func scanOrganization(row pgx.Row) (domain.Organization, error) {
	var org domain.Organization
	err := row.Scan(
		&org.OrganizationID,
		&org.Name,
		&org.Currency,
		&org.CreatedAt,
		&org.CreatedBy,
		&org.LastUpdatedAt,
		&org.LastUpdatedBy,
	)
	return org, err
}

// SaveOrganizationWithSetup inserts the organization, its owner membership
// and the seed chart of accounts within one database transaction.
func (r *PgxOrganizationRepository) SaveOrganizationWithSetup(ctx context.Context, org domain.Organization, owner domain.Membership, chart []domain.Account) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	orgQuery := `
		INSERT INTO organizations (` + organizationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err = tx.Exec(ctx, orgQuery,
		org.OrganizationID,
		org.Name,
		org.Currency,
		org.CreatedAt,
		org.CreatedBy,
		org.LastUpdatedAt,
		org.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert organization", err)
	}

	membershipQuery := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, membershipQuery,
		owner.MembershipID,
		owner.UserID,
		owner.OrganizationID,
		owner.Role,
		owner.CreatedAt,
		owner.CreatedBy,
		owner.LastUpdatedAt,
		owner.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert owner membership", err)
	}

	accountQuery := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	batch := &pgx.Batch{}
	for _, account := range chart {
		var parentID sql.NullString
		if account.ParentAccountID != "" {
			parentID = sql.NullString{String: account.ParentAccountID, Valid: true}
		}
		batch.Queue(accountQuery,
			account.AccountID,
			account.OrganizationID,
			account.Code,
			account.Name,
			account.Class,
			parentID,
			account.IsActive,
			account.Balance,
			account.CreatedAt,
			account.CreatedBy,
			account.LastUpdatedAt,
			account.LastUpdatedBy,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range chart {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert seed account", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close seed account batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE organization_id = $1;`
	org, err := scanOrganization(r.Pool.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find organization", err)
	}
	return &org, nil
}

func (r *PgxOrganizationRepository) SaveMembership(ctx context.Context, membership domain.Membership) error {
	query := `
		INSERT INTO memberships (` + membershipColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		membership.MembershipID,
		membership.UserID,
		membership.OrganizationID,
		membership.Role,
		membership.CreatedAt,
		membership.CreatedBy,
		membership.LastUpdatedAt,
		membership.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert membership", err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindMembership(ctx context.Context, userID, organizationID string) (*domain.Membership, error) {
	query := `SELECT ` + membershipColumns + ` FROM memberships WHERE user_id = $1 AND organization_id = $2;`
	var membership domain.Membership
	err := r.Pool.QueryRow(ctx, query, userID, organizationID).Scan(
		&membership.MembershipID,
		&membership.UserID,
		&membership.OrganizationID,
		&membership.Role,
		&membership.CreatedAt,
		&membership.CreatedBy,
		&membership.LastUpdatedAt,
		&membership.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find membership", err)
	}
	return &membership, nil
}

func (r *PgxOrganizationRepository) ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error) {
	query := `
		SELECT o.organization_id, o.name, o.currency, o.created_at, o.created_by, o.last_updated_at, o.last_updated_by
		FROM organizations o
		JOIN memberships m ON m.organization_id = o.organization_id
		WHERE m.user_id = $1
		ORDER BY o.created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list organizations", err)
	}
	defer rows.Close()

	orgs := make([]domain.Organization, 0)
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan organization", err)
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}
