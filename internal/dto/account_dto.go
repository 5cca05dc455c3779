package dto

import (
	"time"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest is the payload for creating an account in the chart.
// OpeningBalance defaults to zero; after creation the balance is only ever
// mutated by journal entry commits.
type CreateAccountRequest struct {
	Code            string          `json:"code" binding:"required,max=20"`
	Name            string          `json:"name" binding:"required,max=255"`
	Class           string          `json:"class" binding:"required,oneof=asset liability equity revenue expense"`
	ParentAccountID string          `json:"parentAccountId,omitempty"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
}

// UpdateAccountRequest carries the mutable account attributes. Code, class and
// balance cannot be changed after creation.
type UpdateAccountRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=255"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// AccountResponse is the API shape of an account.
type AccountResponse struct {
	AccountID       string          `json:"accountId"`
	OrganizationID  string          `json:"organizationId"`
	Code            string          `json:"code"`
	Name            string          `json:"name"`
	Class           string          `json:"class"`
	ParentAccountID string          `json:"parentAccountId,omitempty"`
	IsActive        bool            `json:"isActive"`
	Balance         decimal.Decimal `json:"balance"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

func ToAccountResponse(account domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       account.AccountID,
		OrganizationID:  account.OrganizationID,
		Code:            account.Code,
		Name:            account.Name,
		Class:           string(account.Class),
		ParentAccountID: account.ParentAccountID,
		IsActive:        account.IsActive,
		Balance:         account.Balance,
		CreatedAt:       account.CreatedAt,
		LastUpdatedAt:   account.LastUpdatedAt,
	}
}

func ToAccountResponses(accounts []domain.Account) []AccountResponse {
	responses := make([]AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, ToAccountResponse(account))
	}
	return responses
}
