package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates an account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		accountRepo: accountRepo,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, organizationID string, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	class := domain.AccountClass(req.Class)
	if !class.IsValid() {
		return nil, fmt.Errorf("%w: invalid account class %q", apperrors.ErrValidation, req.Class)
	}

	if req.ParentAccountID != "" {
		parent, err := s.accountRepo.FindAccountByID(ctx, req.ParentAccountID)
		if err != nil {
			return nil, fmt.Errorf("%w: parent account not found", apperrors.ErrValidation)
		}
		if parent.OrganizationID != organizationID {
			return nil, fmt.Errorf("%w: parent account belongs to a different organization", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		OrganizationID:  organizationID,
		Code:            req.Code,
		Name:            req.Name,
		Class:           class,
		ParentAccountID: req.ParentAccountID,
		IsActive:        true,
		Balance:         req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account",
			slog.String("organization_id", organizationID),
			slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account created",
		slog.String("account_id", account.AccountID),
		slog.String("code", account.Code),
		slog.String("class", string(account.Class)))
	return &account, nil
}

// findInOrganization fetches an account and verifies it belongs to the
// organization. Accounts of other organizations are reported as not found to
// avoid leaking their existence.
func (s *accountService) findInOrganization(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, organizationID, accountID, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findInOrganization(ctx, organizationID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, organizationID, userID string) ([]domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.ListAccounts(ctx, organizationID)
}

func (s *accountService) UpdateAccount(ctx context.Context, organizationID, accountID string, req dto.UpdateAccountRequest, userID string) (*domain.Account, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	account, err := s.findInOrganization(ctx, organizationID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IsActive != nil {
		account.IsActive = *req.IsActive
	}
	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}
	return account, nil
}

func (s *accountService) DeactivateAccount(ctx context.Context, organizationID, accountID, userID string) error {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	if _, err := s.findInOrganization(ctx, organizationID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeactivateAccount(ctx, accountID, userID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to deactivate account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deactivated", slog.String("account_id", accountID))
	return nil
}
