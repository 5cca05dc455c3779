package services_test

import (
	"context"
	"testing"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ReportingServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *ReportingServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

// commitSaleAndExpense posts a 100.00 cash sale and a 40.00 cash expense,
// leaving cash at 60.00, sales at 100.00 and admin expenses at 40.00.
func (s *ReportingServiceTestSuite) commitSaleAndExpense() {
	ctx := context.Background()
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")
	expenses := s.fixture.accountByCode(s.T(), "5100")

	_, err := s.fixture.container.LedgerSvc.CommitEntry(ctx, s.fixture.orgID, dto.CreateEntryRequest{
		Description: "cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	_, err = s.fixture.container.LedgerSvc.CommitEntry(ctx, s.fixture.orgID, dto.CreateEntryRequest{
		Description: "office supplies",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: expenses.AccountID, Debit: dec("40.00")},
			{AccountID: cash.AccountID, Credit: dec("40.00")},
		},
	}, s.fixture.ownerID)
	s.Require().NoError(err)
}

func rowByCode(rows []domain.TrialBalanceRow, code string) (domain.TrialBalanceRow, bool) {
	for _, row := range rows {
		if row.Code == code {
			return row, true
		}
	}
	return domain.TrialBalanceRow{}, false
}

func (s *ReportingServiceTestSuite) TestTrialBalance_SignedMode() {
	s.commitSaleAndExpense()

	rows, err := s.fixture.container.ReportingSvc.TrialBalance(
		context.Background(), s.fixture.orgID, domain.TrialBalanceSigned, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Len(rows, len(s.mustListAccounts()))

	// Signed mode puts every positive balance in the debit column, so the
	// credit-normal sales balance lands on the debit side too.
	cashRow, ok := rowByCode(rows, "1111")
	s.Require().True(ok)
	s.True(dec("60.00").Equal(cashRow.Debit))
	s.True(cashRow.Credit.IsZero())

	salesRow, ok := rowByCode(rows, "4100")
	s.Require().True(ok)
	s.True(dec("100.00").Equal(salesRow.Debit))
	s.True(salesRow.Credit.IsZero())

	expenseRow, ok := rowByCode(rows, "5100")
	s.Require().True(ok)
	s.True(dec("40.00").Equal(expenseRow.Debit))
	s.True(expenseRow.Credit.IsZero())
}

func (s *ReportingServiceTestSuite) TestTrialBalance_NormalMode_ColumnsBalance() {
	s.commitSaleAndExpense()

	rows, err := s.fixture.container.ReportingSvc.TrialBalance(
		context.Background(), s.fixture.orgID, domain.TrialBalanceNormal, s.fixture.ownerID)
	s.Require().NoError(err)

	salesRow, ok := rowByCode(rows, "4100")
	s.Require().True(ok)
	s.True(salesRow.Debit.IsZero())
	s.True(dec("100.00").Equal(salesRow.Credit))

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, row := range rows {
		totalDebit = totalDebit.Add(row.Debit)
		totalCredit = totalCredit.Add(row.Credit)
	}
	s.True(totalDebit.Equal(totalCredit), "debit %s, credit %s", totalDebit, totalCredit)
	s.True(dec("100.00").Equal(totalDebit))
}

func (s *ReportingServiceTestSuite) TestTrialBalance_IncludesZeroBalanceAccounts() {
	rows, err := s.fixture.container.ReportingSvc.TrialBalance(
		context.Background(), s.fixture.orgID, domain.TrialBalanceSigned, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Len(rows, len(s.mustListAccounts()))
	for _, row := range rows {
		s.True(row.Debit.IsZero())
		s.True(row.Credit.IsZero())
	}
}

func (s *ReportingServiceTestSuite) TestTrialBalance_Idempotent() {
	s.commitSaleAndExpense()
	ctx := context.Background()

	first, err := s.fixture.container.ReportingSvc.TrialBalance(ctx, s.fixture.orgID, domain.TrialBalanceNormal, s.fixture.ownerID)
	s.Require().NoError(err)
	second, err := s.fixture.container.ReportingSvc.TrialBalance(ctx, s.fixture.orgID, domain.TrialBalanceNormal, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *ReportingServiceTestSuite) TestIncomeStatement() {
	s.commitSaleAndExpense()

	statement, err := s.fixture.container.ReportingSvc.IncomeStatement(
		context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)

	s.True(dec("100.00").Equal(statement.TotalRevenue))
	s.True(dec("40.00").Equal(statement.TotalExpenses))
	s.True(dec("60.00").Equal(statement.NetIncome))

	// Every revenue and expense account appears, including zero-balance ones.
	s.Len(statement.Revenues, 2)
	s.Len(statement.Expenses, 2)
}

func (s *ReportingServiceTestSuite) TestDashboardStats() {
	s.commitSaleAndExpense()

	stats, err := s.fixture.container.ReportingSvc.DashboardStats(
		context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)

	s.True(dec("100.00").Equal(stats.TotalRevenue))
	s.True(dec("40.00").Equal(stats.TotalExpenses))
	s.True(dec("60.00").Equal(stats.NetProfit))
	s.True(dec("60.00").Equal(stats.CashBalance), "cash %s", stats.CashBalance)
}

func (s *ReportingServiceTestSuite) TestReports_NonMemberHidden() {
	ctx := context.Background()
	stranger, err := s.fixture.container.UserSvc.Register(ctx, dto.RegisterUserRequest{
		Username: "outsider",
		Password: "correct-horse-battery",
		Email:    "outsider@example.com",
	})
	s.Require().NoError(err)

	_, err = s.fixture.container.ReportingSvc.TrialBalance(ctx, s.fixture.orgID, domain.TrialBalanceSigned, stranger.UserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *ReportingServiceTestSuite) mustListAccounts() []domain.Account {
	accounts, err := s.fixture.container.AccountSvc.ListAccounts(context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)
	return accounts
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}
