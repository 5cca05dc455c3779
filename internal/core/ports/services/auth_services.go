package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/dto"
)

// AuthSvcFacade authenticates users and issues access tokens.
type AuthSvcFacade interface {
	// Login verifies the username/password pair and returns a signed JWT.
	// Returns ErrUnauthorized on bad credentials or an inactive user.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)

	// ValidateToken parses and verifies a token, returning the user ID it
	// was issued for. Returns ErrUnauthorized on any failure.
	ValidateToken(ctx context.Context, token string) (string, error)
}
