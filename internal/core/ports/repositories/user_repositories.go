package repositories

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// UserRepositoryFacade is the storage capability for users.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user. Returns ErrDuplicate when the username or
	// email is already taken.
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByTelegramID(ctx context.Context, telegramID string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
}
