package services

import (
	"context"
	"log/slog"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	OrganizationAuthorizer portssvc.OrganizationAuthorizerSvc
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// AuthorizeUser checks if a user has the required role in an organization
func (s *BaseService) AuthorizeUser(ctx context.Context, userID, organizationID string, requiredRole domain.MembershipRole) error {
	if s.OrganizationAuthorizer != nil {
		return s.OrganizationAuthorizer.AuthorizeUserAction(ctx, userID, organizationID, requiredRole)
	}
	// Without an authorizer wired, access is granted. This only occurs in
	// tests that construct services directly.
	s.LogDebug(ctx, "No organization authorizer provided, access granted by default",
		slog.String("user_id", userID),
		slog.String("organization_id", organizationID),
		slog.String("required_role", string(requiredRole)))
	return nil
}
