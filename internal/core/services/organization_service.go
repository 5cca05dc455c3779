package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/shopspring/decimal"
)

const defaultCurrency = "SAR"

// seedAccount describes one account of the default chart seeded into every
// new organization.
type seedAccount struct {
	code  string
	name  string
	class domain.AccountClass
}

// defaultChart mirrors the standard Arabic chart of accounts the product
// ships with. All accounts start at zero balance.
var defaultChart = []seedAccount{
	{"1000", "الأصول", domain.Asset},
	{"1100", "الأصول المتداولة", domain.Asset},
	{"1110", "النقدية وما في حكمها", domain.Asset},
	{"1111", "الخزنة الرئيسية", domain.Asset},
	{"1112", "البنك الأهلي", domain.Asset},
	{"1200", "العملاء", domain.Asset},
	{"2000", "الخصوم", domain.Liability},
	{"2100", "الموردين", domain.Liability},
	{"3000", "حقوق الملكية", domain.Equity},
	{"4000", "الإيرادات", domain.Revenue},
	{"4100", "إيرادات المبيعات", domain.Revenue},
	{"5000", "المصروفات", domain.Expense},
	{"5100", "مصروفات إدارية", domain.Expense},
}

type organizationService struct {
	BaseService
	orgRepo portsrepo.OrganizationRepositoryFacade
}

// NewOrganizationService creates an organization service. It is its own
// authorizer; other services receive it through their BaseService.
func NewOrganizationService(orgRepo portsrepo.OrganizationRepositoryFacade) portssvc.OrganizationSvcFacade {
	svc := &organizationService{orgRepo: orgRepo}
	svc.OrganizationAuthorizer = svc
	return svc
}

func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MembershipRole) error {
	membership, err := s.orgRepo.FindMembership(ctx, userID, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		return err
	}
	if !membership.Role.HasAtLeast(requiredRole) {
		s.LogDebug(ctx, "Authorization denied",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return apperrors.ErrForbidden
	}
	return nil
}

func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	now := time.Now()
	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	org := domain.Organization{
		OrganizationID: uuid.NewString(),
		Name:           req.Name,
		Currency:       currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	membership := domain.Membership{
		MembershipID:   uuid.NewString(),
		UserID:         userID,
		OrganizationID: org.OrganizationID,
		Role:           domain.RoleOwner,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// One atomic setup: a failure anywhere leaves no half-created
	// organization behind.
	chart := buildDefaultChart(org.OrganizationID, userID, now)
	if err := s.orgRepo.SaveOrganizationWithSetup(ctx, org, membership, chart); err != nil {
		s.LogError(ctx, err, "Failed to save organization with setup", slog.String("organization_id", org.OrganizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization created",
		slog.String("organization_id", org.OrganizationID),
		slog.String("name", org.Name))
	return &org, nil
}

// buildDefaultChart materializes the seed chart for a new organization.
func buildDefaultChart(organizationID, userID string, now time.Time) []domain.Account {
	chart := make([]domain.Account, 0, len(defaultChart))
	for _, seed := range defaultChart {
		chart = append(chart, domain.Account{
			AccountID:      uuid.NewString(),
			OrganizationID: organizationID,
			Code:           seed.code,
			Name:           seed.name,
			Class:          seed.class,
			IsActive:       true,
			Balance:        decimal.Zero,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
			},
		})
	}
	return chart
}

func (s *organizationService) GetOrganizationByID(ctx context.Context, organizationID, userID string) (*domain.Organization, error) {
	if err := s.AuthorizeUserAction(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.orgRepo.FindOrganizationByID(ctx, organizationID)
}

func (s *organizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	return s.orgRepo.ListOrganizationsByUserID(ctx, userID)
}

func (s *organizationService) AddMember(ctx context.Context, organizationID string, req dto.AddMemberRequest, userID string) error {
	if err := s.AuthorizeUserAction(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return err
	}

	role := domain.MembershipRole(req.Role)
	if !role.HasAtLeast(domain.RoleViewer) {
		return apperrors.ErrValidation
	}
	// Only owners may grant ownership.
	if role == domain.RoleOwner {
		if err := s.AuthorizeUserAction(ctx, userID, organizationID, domain.RoleOwner); err != nil {
			return err
		}
	}

	now := time.Now()
	membership := domain.Membership{
		MembershipID:   uuid.NewString(),
		UserID:         req.UserID,
		OrganizationID: organizationID,
		Role:           role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.orgRepo.SaveMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to add member",
			slog.String("organization_id", organizationID),
			slog.String("member_user_id", req.UserID))
		return err
	}

	s.LogInfo(ctx, "Member added",
		slog.String("organization_id", organizationID),
		slog.String("member_user_id", req.UserID),
		slog.String("role", req.Role))
	return nil
}
