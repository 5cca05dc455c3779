package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
)

type notificationService struct {
	BaseService
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a notification service. Notifications are
// user-scoped, so no organization authorizer is involved.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) Notify(ctx context.Context, userID, title, message string, notificationType domain.NotificationType) error {
	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Title:          title,
		Message:        message,
		Type:           notificationType,
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
		s.LogError(ctx, err, "Failed to save notification", slog.String("user_id", userID))
		return err
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notificationRepo.ListNotificationsByUserID(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID string) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, notificationID, userID); err != nil {
		s.LogError(ctx, err, "Failed to mark notification read",
			slog.String("notification_id", notificationID),
			slog.String("user_id", userID))
		return err
	}
	return nil
}
