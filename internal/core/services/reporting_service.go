package services

import (
	"context"
	"strings"

	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// cashCodePrefix identifies the cash-and-equivalents subtree of the chart.
// Account 1100 and its children (1110, 1111, 1112, ...) share this prefix.
const cashCodePrefix = "11"

type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewReportingService creates a reporting service. Reports are derived purely
// from current account balances and never touch entry storage.
func NewReportingService(accountRepo portsrepo.AccountRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.ReportingSvcFacade {
	return &reportingService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		accountRepo: accountRepo,
	}
}

// trialBalanceColumns maps one balance onto the debit/credit columns
// according to the selected mode.
func trialBalanceColumns(mode domain.TrialBalanceMode, class domain.AccountClass, balance decimal.Decimal) (debit, credit decimal.Decimal) {
	switch mode {
	case domain.TrialBalanceNormal:
		debitSide := class.IsDebitNormal()
		if balance.IsNegative() {
			// Abnormal balance flips to the opposite column.
			debitSide = !debitSide
		}
		if debitSide {
			return balance.Abs(), decimal.Zero
		}
		return decimal.Zero, balance.Abs()
	default:
		// Signed mode: positive balances in the debit column, negative in
		// the credit column, regardless of class.
		if balance.IsNegative() {
			return decimal.Zero, balance.Neg()
		}
		return balance, decimal.Zero
	}
}

func (s *reportingService) TrialBalance(ctx context.Context, organizationID string, mode domain.TrialBalanceMode, userID string) ([]domain.TrialBalanceRow, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	for _, account := range accounts {
		debit, credit := trialBalanceColumns(mode, account.Class, account.Balance)
		rows = append(rows, domain.TrialBalanceRow{
			AccountID: account.AccountID,
			Code:      account.Code,
			Name:      account.Name,
			Class:     account.Class,
			Debit:     debit,
			Credit:    credit,
		})
	}
	return rows, nil
}

func (s *reportingService) IncomeStatement(ctx context.Context, organizationID, userID string) (*domain.IncomeStatement, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	statement := &domain.IncomeStatement{
		Revenues:      make([]domain.AccountAmount, 0),
		Expenses:      make([]domain.AccountAmount, 0),
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	for _, account := range accounts {
		switch account.Class {
		case domain.Revenue:
			// Revenue balances are reported as magnitudes.
			amount := account.Balance.Abs()
			statement.Revenues = append(statement.Revenues, domain.AccountAmount{
				AccountID: account.AccountID,
				Code:      account.Code,
				Name:      account.Name,
				Amount:    amount,
			})
			statement.TotalRevenue = statement.TotalRevenue.Add(amount)
		case domain.Expense:
			statement.Expenses = append(statement.Expenses, domain.AccountAmount{
				AccountID: account.AccountID,
				Code:      account.Code,
				Name:      account.Name,
				Amount:    account.Balance,
			})
			statement.TotalExpenses = statement.TotalExpenses.Add(account.Balance)
		}
	}

	statement.NetIncome = statement.TotalRevenue.Sub(statement.TotalExpenses)
	return statement, nil
}

func (s *reportingService) DashboardStats(ctx context.Context, organizationID, userID string) (*domain.DashboardStats, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListAccounts(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	totalRevenue := decimal.Zero
	totalExpenses := decimal.Zero
	cashBalance := decimal.Zero
	for _, account := range accounts {
		switch account.Class {
		case domain.Revenue:
			totalRevenue = totalRevenue.Add(account.Balance)
		case domain.Expense:
			totalExpenses = totalExpenses.Add(account.Balance)
		case domain.Asset:
			if strings.HasPrefix(account.Code, cashCodePrefix) {
				cashBalance = cashBalance.Add(account.Balance)
			}
		}
	}

	return &domain.DashboardStats{
		TotalRevenue:  totalRevenue.Abs(),
		TotalExpenses: totalExpenses.Abs(),
		NetProfit:     totalRevenue.Sub(totalExpenses),
		CashBalance:   cashBalance,
	}, nil
}
