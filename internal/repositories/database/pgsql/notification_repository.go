package pgsql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

const notificationColumns = `notification_id, user_id, title, message, type, is_read, created_at`

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notification data.
func newPgxNotificationRepository(pool *pgxpool.Pool) *PgxNotificationRepository {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func scanNotification(row pgx.Row) (domain.Notification, error) {
	var notification domain.Notification
	err := row.Scan(
		&notification.NotificationID,
		&notification.UserID,
		&notification.Title,
		&notification.Message,
		&notification.Type,
		&notification.IsRead,
		&notification.CreatedAt,
	)
	return notification, err
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		notification.NotificationID,
		notification.UserID,
		notification.Title,
		notification.Message,
		notification.Type,
		notification.IsRead,
		notification.CreatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert notification", err)
	}
	return nil
}

func (r *PgxNotificationRepository) ListNotificationsByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list notifications", err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		notification, err := scanNotification(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan notification", err)
		}
		notifications = append(notifications, notification)
	}
	return notifications, rows.Err()
}

func (r *PgxNotificationRepository) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND user_id = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, userID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark notification read", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
