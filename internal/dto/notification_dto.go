package dto

import (
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// NotificationResponse is the API shape of a notification.
type NotificationResponse struct {
	NotificationID string    `json:"notificationId"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToNotificationResponse(notification domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: notification.NotificationID,
		Title:          notification.Title,
		Message:        notification.Message,
		Type:           string(notification.Type),
		IsRead:         notification.IsRead,
		CreatedAt:      notification.CreatedAt,
	}
}

func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		responses = append(responses, ToNotificationResponse(notification))
	}
	return responses
}
