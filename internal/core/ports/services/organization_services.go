package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
)

// OrganizationAuthorizerSvc is the narrow capability other services depend on
// to gate operations by membership role.
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction verifies userID holds at least requiredRole in the
	// organization. Returns ErrForbidden on insufficient role, ErrNotFound
	// when the user is not a member at all.
	AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.MembershipRole) error
}

// OrganizationSvcFacade manages organizations and memberships.
type OrganizationSvcFacade interface {
	OrganizationAuthorizerSvc

	// CreateOrganization creates the organization, makes the creator its
	// owner, and seeds the default chart of accounts.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)
	GetOrganizationByID(ctx context.Context, organizationID, userID string) (*domain.Organization, error)
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error)
	AddMember(ctx context.Context, organizationID string, req dto.AddMemberRequest, userID string) error
}
