package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

const entryColumns = `entry_id, organization_id, entry_number, description, entry_date, reference, total_amount, created_at, created_by, last_updated_at, last_updated_by`

const lineColumns = `line_id, entry_id, account_id, debit, credit, description`

type PgxEntryRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxEntryRepository creates a new repository for journal entry data.
func newPgxEntryRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxEntryRepository {
	return &PgxEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

func scanEntry(row pgx.Row) (domain.JournalEntry, error) {
	var entry domain.JournalEntry
	var reference sql.NullString
	err := row.Scan(
		&entry.EntryID,
		&entry.OrganizationID,
		&entry.EntryNumber,
		&entry.Description,
		&entry.EntryDate,
		&reference,
		&entry.TotalAmount,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	if err != nil {
		return domain.JournalEntry{}, err
	}
	entry.Reference = reference.String
	return entry, nil
}

func scanLine(row pgx.Row) (domain.EntryLine, error) {
	var line domain.EntryLine
	var description sql.NullString
	err := row.Scan(
		&line.LineID,
		&line.EntryID,
		&line.AccountID,
		&line.Debit,
		&line.Credit,
		&description,
	)
	if err != nil {
		return domain.EntryLine{}, err
	}
	line.Description = description.String
	return line, nil
}

// SaveEntry inserts the entry and its lines and applies the balance changes,
// all within one database transaction. Account rows are locked FOR UPDATE
// first so concurrent commits against the same accounts serialize.
func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.EntryLine, balanceChanges map[string]decimal.Decimal) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	var reference sql.NullString
	if entry.Reference != "" {
		reference = sql.NullString{String: entry.Reference, Valid: true}
	}
	_, err = tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.OrganizationID,
		entry.EntryNumber,
		entry.Description,
		entry.EntryDate,
		reference,
		entry.TotalAmount,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert journal entry "+entry.EntryID, err)
	}

	accountIDs := make([]string, 0, len(balanceChanges))
	for accountID := range balanceChanges {
		accountIDs = append(accountIDs, accountID)
	}
	if _, err := r.accountRepo.findAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
		return err
	}
	if err := r.accountRepo.updateAccountBalancesInTx(ctx, tx, balanceChanges, entry.CreatedBy, entry.CreatedAt); err != nil {
		return err
	}

	lineQuery := `
		INSERT INTO entry_lines (` + lineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	batch := &pgx.Batch{}
	for _, line := range lines {
		var lineDescription sql.NullString
		if line.Description != "" {
			lineDescription = sql.NullString{String: line.Description, Valid: true}
		}
		batch.Queue(lineQuery,
			line.LineID,
			line.EntryID,
			line.AccountID,
			line.Debit,
			line.Credit,
			lineDescription,
		)
	}
	results := tx.SendBatch(ctx, batch)
	for range lines {
		if _, err := results.Exec(); err != nil {
			results.Close()
			return apperrors.NewAppError(500, "failed to insert entry line", err)
		}
	}
	if err := results.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close entry line batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry", err)
	}
	return &entry, nil
}

func (r *PgxEntryRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.EntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM entry_lines WHERE entry_id = $1 ORDER BY line_id;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry lines", err)
	}
	defer rows.Close()

	lines := make([]domain.EntryLine, 0)
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry line", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *PgxEntryRepository) FindLinesByEntryIDs(ctx context.Context, entryIDs []string) (map[string][]domain.EntryLine, error) {
	query := `SELECT ` + lineColumns + ` FROM entry_lines WHERE entry_id = ANY($1) ORDER BY line_id;`
	rows, err := r.Pool.Query(ctx, query, entryIDs)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entry lines", err)
	}
	defer rows.Close()

	found := make(map[string][]domain.EntryLine, len(entryIDs))
	for _, entryID := range entryIDs {
		found[entryID] = make([]domain.EntryLine, 0)
	}
	for rows.Next() {
		line, err := scanLine(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan entry line", err)
		}
		found[line.EntryID] = append(found[line.EntryID], line)
	}
	return found, rows.Err()
}

func (r *PgxEntryRepository) ListEntriesByOrganization(ctx context.Context, organizationID string) ([]domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE organization_id = $1 ORDER BY created_at, entry_number;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list journal entries", err)
	}
	defer rows.Close()

	entries := make([]domain.JournalEntry, 0)
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal entry", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
