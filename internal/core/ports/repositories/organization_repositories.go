package repositories

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// OrganizationRepositoryFacade is the storage capability for organizations
// and user memberships.
type OrganizationRepositoryFacade interface {
	// SaveOrganizationWithSetup persists a new organization together with its
	// owner membership and seed chart of accounts atomically. Either all of it
	// lands or none of it does.
	SaveOrganizationWithSetup(ctx context.Context, org domain.Organization, owner domain.Membership, chart []domain.Account) error
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	SaveMembership(ctx context.Context, membership domain.Membership) error
	// FindMembership returns the membership of userID in organizationID,
	// ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, userID, organizationID string) (*domain.Membership, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]domain.Organization, error)
}
