package memory

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

func (s *Store) SaveNotification(ctx context.Context, notification domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notifications[notification.NotificationID]; exists {
		return apperrors.ErrDuplicate
	}
	s.notifications[notification.NotificationID] = notification
	s.notifOrder[notification.UserID] = append(s.notifOrder[notification.UserID], notification.NotificationID)
	return nil
}

func (s *Store) ListNotificationsByUserID(ctx context.Context, userID string) ([]domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := s.notifOrder[userID]
	// Newest first.
	notifications := make([]domain.Notification, 0, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		notifications = append(notifications, s.notifications[order[i]])
	}
	return notifications, nil
}

func (s *Store) MarkNotificationRead(ctx context.Context, notificationID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[notificationID]
	if !ok || notification.UserID != userID {
		return apperrors.ErrNotFound
	}
	notification.IsRead = true
	s.notifications[notificationID] = notification
	return nil
}
