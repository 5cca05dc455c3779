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

const invoiceColumns = `invoice_id, organization_id, invoice_number, contact_id, issue_date, due_date, subtotal, tax_amount, total_amount, status, created_at, created_by, last_updated_at, last_updated_by`

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoice data.
func newPgxInvoiceRepository(pool *pgxpool.Pool) *PgxInvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func scanInvoice(row pgx.Row) (domain.Invoice, error) {
	var invoice domain.Invoice
	var dueDate sql.NullTime
	err := row.Scan(
		&invoice.InvoiceID,
		&invoice.OrganizationID,
		&invoice.InvoiceNumber,
		&invoice.ContactID,
		&invoice.IssueDate,
		&dueDate,
		&invoice.Subtotal,
		&invoice.TaxAmount,
		&invoice.TotalAmount,
		&invoice.Status,
		&invoice.CreatedAt,
		&invoice.CreatedBy,
		&invoice.LastUpdatedAt,
		&invoice.LastUpdatedBy,
	)
	if err != nil {
		return domain.Invoice{}, err
	}
	if dueDate.Valid {
		due := dueDate.Time
		invoice.DueDate = &due
	}
	return invoice, nil
}

func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	var dueDate sql.NullTime
	if invoice.DueDate != nil {
		dueDate = sql.NullTime{Time: *invoice.DueDate, Valid: true}
	}
	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.OrganizationID,
		invoice.InvoiceNumber,
		invoice.ContactID,
		invoice.IssueDate,
		dueDate,
		invoice.Subtotal,
		invoice.TaxAmount,
		invoice.TotalAmount,
		invoice.Status,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrDuplicate
		}
		return apperrors.NewAppError(500, "failed to insert invoice", err)
	}
	return nil
}

func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE invoice_id = $1;`
	invoice, err := scanInvoice(r.Pool.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find invoice", err)
	}
	return &invoice, nil
}

func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, organizationID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE organization_id = $1 ORDER BY created_at, invoice_number;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list invoices", err)
	}
	defer rows.Close()

	invoices := make([]domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan invoice", err)
		}
		invoices = append(invoices, invoice)
	}
	return invoices, rows.Err()
}

func (r *PgxInvoiceRepository) UpdateInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		UPDATE invoices
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE invoice_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.Status,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update invoice", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
