package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// NotificationSvcFacade delivers and lists per-user notifications.
type NotificationSvcFacade interface {
	// Notify stores a notification for the user. Failures are returned but
	// callers on best-effort paths may log and continue.
	Notify(ctx context.Context, userID, title, message string, notificationType domain.NotificationType) error
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID string) error
}
