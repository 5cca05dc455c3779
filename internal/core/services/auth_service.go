package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/utils"
)

type authService struct {
	BaseService
	userRepo      portsrepo.UserRepositoryFacade
	jwtSecret     string
	tokenDuration time.Duration
}

// NewAuthService creates an auth service issuing HMAC-signed JWTs.
func NewAuthService(userRepo portsrepo.UserRepositoryFacade, jwtSecret string, tokenDuration time.Duration) portssvc.AuthSvcFacade {
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
	}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// Same error for unknown user and bad password.
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("username", req.Username))
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, apperrors.ErrUnauthorized
	}

	now := time.Now()
	expiresAt := now.Add(s.tokenDuration)
	claims := jwt.RegisteredClaims{
		Subject:   user.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return nil, err
	}

	s.LogInfo(ctx, "User logged in", slog.String("user_id", user.UserID))
	return &dto.LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(*user),
	}, nil
}

func (s *authService) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", apperrors.ErrUnauthorized
	}
	return claims.Subject, nil
}
