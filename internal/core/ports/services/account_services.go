package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

// AccountSvcFacade manages the chart of accounts. All operations check the
// caller's membership in the organization before touching data.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, organizationID, accountID, userID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, organizationID, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, organizationID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, organizationID, accountID, userID string) error
}
