package domain

// User represents an application user.
type User struct {
	UserID       string `json:"userID"` // Primary key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	TelegramID   string `json:"telegramID"` // Chat ID for the Telegram bot link, empty if unlinked
	IsActive     bool   `json:"isActive"`
	AuditFields
}
