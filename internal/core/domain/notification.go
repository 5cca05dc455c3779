package domain

import "time"

// NotificationType is the severity class of a notification.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a message addressed to one user, e.g. about an invoice
// changing state.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary key (UUID)
	UserID         string           `json:"userID"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	Type           NotificationType `json:"type"`
	IsRead         bool             `json:"isRead"`
	CreatedAt      time.Time        `json:"createdAt"`
}
