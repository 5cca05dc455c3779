package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

const contactColumns = `contact_id, organization_id, name, type, email, phone, address, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxContactRepository struct {
	BaseRepository
}

// newPgxContactRepository creates a new repository for contact data.
func newPgxContactRepository(pool *pgxpool.Pool) *PgxContactRepository {
	return &PgxContactRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func scanContact(row pgx.Row) (domain.Contact, error) {
	var contact domain.Contact
	var email, phone, address sql.NullString
	err := row.Scan(
		&contact.ContactID,
		&contact.OrganizationID,
		&contact.Name,
		&contact.Type,
		&email,
		&phone,
		&address,
		&contact.IsActive,
		&contact.CreatedAt,
		&contact.CreatedBy,
		&contact.LastUpdatedAt,
		&contact.LastUpdatedBy,
	)
	if err != nil {
		return domain.Contact{}, err
	}
	contact.Email = email.String
	contact.Phone = phone.String
	contact.Address = address.String
	return contact, nil
}

func (r *PgxContactRepository) SaveContact(ctx context.Context, contact domain.Contact) error {
	query := `
		INSERT INTO contacts (` + contactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		contact.ContactID,
		contact.OrganizationID,
		contact.Name,
		contact.Type,
		nullable(contact.Email),
		nullable(contact.Phone),
		nullable(contact.Address),
		contact.IsActive,
		contact.CreatedAt,
		contact.CreatedBy,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert contact", err)
	}
	return nil
}

func (r *PgxContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = $1;`
	contact, err := scanContact(r.Pool.QueryRow(ctx, query, contactID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find contact", err)
	}
	return &contact, nil
}

func (r *PgxContactRepository) ListContacts(ctx context.Context, organizationID string) ([]domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE organization_id = $1 ORDER BY created_at;`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list contacts", err)
	}
	defer rows.Close()

	contacts := make([]domain.Contact, 0)
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan contact", err)
		}
		contacts = append(contacts, contact)
	}
	return contacts, rows.Err()
}

func (r *PgxContactRepository) UpdateContact(ctx context.Context, contact domain.Contact) error {
	query := `
		UPDATE contacts
		SET name = $2, email = $3, phone = $4, address = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE contact_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		contact.ContactID,
		contact.Name,
		nullable(contact.Email),
		nullable(contact.Phone),
		nullable(contact.Address),
		contact.IsActive,
		contact.LastUpdatedAt,
		contact.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update contact", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
