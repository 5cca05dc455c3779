package services

import (
	"context"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
)

// ReportingSvcFacade derives read-only reports from current account balances.
// Reports never mutate state; generating the same report twice in a row with
// no intervening commits yields identical results.
type ReportingSvcFacade interface {
	TrialBalance(ctx context.Context, organizationID string, mode domain.TrialBalanceMode, userID string) ([]domain.TrialBalanceRow, error)
	IncomeStatement(ctx context.Context, organizationID, userID string) (*domain.IncomeStatement, error)
	DashboardStats(ctx context.Context, organizationID, userID string) (*domain.DashboardStats, error)
}
