package services_test

import (
	"context"
	"testing"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/services"
	"github.com/stretchr/testify/suite"
)

type CommandServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *CommandServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

func (s *CommandServiceTestSuite) process(text string) (kind string, err error) {
	resp, err := s.fixture.container.CommandSvc.Process(context.Background(), s.fixture.orgID, s.fixture.ownerID, text)
	if err != nil {
		return "", err
	}
	return resp.Kind, nil
}

func (s *CommandServiceTestSuite) TestProcess_ArabicSale() {
	resp, err := s.fixture.container.CommandSvc.Process(
		context.Background(), s.fixture.orgID, s.fixture.ownerID, "مبيعات 500")
	s.Require().NoError(err)

	s.Equal(services.CommandSales, resp.Kind)
	s.Require().NotNil(resp.Entry)
	s.Len(resp.Entry.Lines, 2)
	s.Contains(resp.Message, "500")

	// Debits the main cash box, credits sales revenue.
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")
	s.True(dec("500").Equal(cash.Balance), "cash %s", cash.Balance)
	s.True(dec("500").Equal(sales.Balance), "sales %s", sales.Balance)
}

func (s *CommandServiceTestSuite) TestProcess_EnglishSaleWithDecimalAmount() {
	resp, err := s.fixture.container.CommandSvc.Process(
		context.Background(), s.fixture.orgID, s.fixture.ownerID, "sales 249.99 cash")
	s.Require().NoError(err)

	s.Equal(services.CommandSales, resp.Kind)
	cash := s.fixture.accountByCode(s.T(), "1111")
	s.True(dec("249.99").Equal(cash.Balance))
}

func (s *CommandServiceTestSuite) TestProcess_ArabicExpense() {
	resp, err := s.fixture.container.CommandSvc.Process(
		context.Background(), s.fixture.orgID, s.fixture.ownerID, "مصروف 120.50")
	s.Require().NoError(err)

	s.Equal(services.CommandExpense, resp.Kind)
	s.Require().NotNil(resp.Entry)

	// Debits the first expense account, credits the cash box.
	expense := s.fixture.accountByCode(s.T(), "5000")
	cash := s.fixture.accountByCode(s.T(), "1111")
	s.True(dec("120.50").Equal(expense.Balance), "expense %s", expense.Balance)
	s.True(dec("-120.50").Equal(cash.Balance), "cash %s", cash.Balance)
}

func (s *CommandServiceTestSuite) TestProcess_BalanceInquiry() {
	ctx := context.Background()
	_, err := s.fixture.container.CommandSvc.Process(ctx, s.fixture.orgID, s.fixture.ownerID, "بيع 300")
	s.Require().NoError(err)

	resp, err := s.fixture.container.CommandSvc.Process(ctx, s.fixture.orgID, s.fixture.ownerID, "رصيد")
	s.Require().NoError(err)

	s.Equal(services.CommandBalance, resp.Kind)
	s.Nil(resp.Entry)
	s.Require().Len(resp.Balances, 3) // 1110, 1111, 1112

	var found bool
	for _, balance := range resp.Balances {
		if balance.Code == "1111" {
			found = true
			s.True(dec("300").Equal(balance.Balance))
		}
	}
	s.True(found)
}

func (s *CommandServiceTestSuite) TestProcess_Summary() {
	ctx := context.Background()
	_, err := s.fixture.container.CommandSvc.Process(ctx, s.fixture.orgID, s.fixture.ownerID, "مبيعات 500")
	s.Require().NoError(err)
	_, err = s.fixture.container.CommandSvc.Process(ctx, s.fixture.orgID, s.fixture.ownerID, "مصروف 200")
	s.Require().NoError(err)

	resp, err := s.fixture.container.CommandSvc.Process(ctx, s.fixture.orgID, s.fixture.ownerID, "ملخص")
	s.Require().NoError(err)

	s.Equal(services.CommandSummary, resp.Kind)
	s.Require().NotNil(resp.Stats)
	s.True(dec("500").Equal(resp.Stats.TotalRevenue))
	s.True(dec("200").Equal(resp.Stats.TotalExpenses))
	s.True(dec("300").Equal(resp.Stats.NetProfit))
	s.True(dec("300").Equal(resp.Stats.CashBalance))
}

func (s *CommandServiceTestSuite) TestProcess_UnknownCommand() {
	kind, err := s.process("ما هو الطقس اليوم؟")
	s.Require().NoError(err)
	s.Equal(services.CommandUnknown, kind)

	// Nothing was committed.
	entries, err := s.fixture.container.LedgerSvc.ListEntries(context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *CommandServiceTestSuite) TestProcess_SaleWithoutAmount() {
	_, err := s.process("مبيعات اليوم")
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *CommandServiceTestSuite) TestProcess_ViewerCannotRecord() {
	viewerID := s.fixture.addMember(s.T(), "cmdviewer", "viewer")
	_, err := s.fixture.container.CommandSvc.Process(
		context.Background(), s.fixture.orgID, viewerID, "مبيعات 100")
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestCommandServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CommandServiceTestSuite))
}
