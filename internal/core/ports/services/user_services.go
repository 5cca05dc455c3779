package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

// UserSvcFacade manages user accounts.
type UserSvcFacade interface {
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByTelegramID(ctx context.Context, telegramID string) (*domain.User, error)
	// LinkTelegram associates a Telegram chat ID with the user so bot
	// messages can be attributed.
	LinkTelegram(ctx context.Context, userID, telegramID string) error
}
