package repositories

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// NotificationRepositoryFacade is the storage capability for user
// notifications.
type NotificationRepositoryFacade interface {
	SaveNotification(ctx context.Context, notification domain.Notification) error
	// ListNotificationsByUserID returns the user's notifications, newest
	// first.
	ListNotificationsByUserID(ctx context.Context, userID string) ([]domain.Notification, error)
	// MarkNotificationRead flags a notification as read. ErrNotFound when the
	// notification does not exist or belongs to another user.
	MarkNotificationRead(ctx context.Context, notificationID, userID string) error
}
