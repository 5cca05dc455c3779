package dto

import (
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// CreateOrganizationRequest is the payload for creating an organization.
// The creator becomes its owner and a default chart of accounts is seeded.
type CreateOrganizationRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

// AddMemberRequest grants a user a role in the organization.
type AddMemberRequest struct {
	UserID string `json:"userId" binding:"required"`
	Role   string `json:"role" binding:"required,oneof=owner admin accountant viewer"`
}

// OrganizationResponse is the API shape of an organization.
type OrganizationResponse struct {
	OrganizationID string    `json:"organizationId"`
	Name           string    `json:"name"`
	Currency       string    `json:"currency"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToOrganizationResponse(org domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID: org.OrganizationID,
		Name:           org.Name,
		Currency:       org.Currency,
		CreatedAt:      org.CreatedAt,
	}
}

func ToOrganizationResponses(orgs []domain.Organization) []OrganizationResponse {
	responses := make([]OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, ToOrganizationResponse(org))
	}
	return responses
}
