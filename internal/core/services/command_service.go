package services

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// Command kinds returned in CommandResponse.Kind.
const (
	CommandSales   = "sales"
	CommandExpense = "expense"
	CommandBalance = "balance"
	CommandSummary = "summary"
	CommandUnknown = "unknown"
)

var amountPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// salesKeywords and expenseKeywords match Arabic and English phrasings of the
// two supported transaction commands.
var (
	salesKeywords   = []string{"مبيعات", "بيع", "sales", "sale"}
	expenseKeywords = []string{"مصروف", "صرف", "expense", "spent"}
	balanceKeywords = []string{"رصيد", "كشف حساب", "balance"}
	summaryKeywords = []string{"ملخص", "تقرير", "summary", "report"}
)

type commandService struct {
	BaseService
	ledgerSvc    portssvc.LedgerSvcFacade
	accountSvc   portssvc.AccountSvcFacade
	reportingSvc portssvc.ReportingSvcFacade
}

// NewCommandService creates the free-text command service. It composes the
// ledger, account and reporting services rather than touching repositories,
// so every command passes the same validation and authorization as the API.
func NewCommandService(ledgerSvc portssvc.LedgerSvcFacade, accountSvc portssvc.AccountSvcFacade, reportingSvc portssvc.ReportingSvcFacade) portssvc.CommandSvcFacade {
	return &commandService{
		ledgerSvc:    ledgerSvc,
		accountSvc:   accountSvc,
		reportingSvc: reportingSvc,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func parseAmount(text string) (decimal.Decimal, error) {
	match := amountPattern.FindString(text)
	if match == "" {
		return decimal.Zero, fmt.Errorf("%w: no amount found in command", apperrors.ErrValidation)
	}
	amount, err := decimal.NewFromString(match)
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", apperrors.ErrValidation, match)
	}
	return amount, nil
}

func (s *commandService) Process(ctx context.Context, organizationID, userID, text string) (*dto.CommandResponse, error) {
	normalized := strings.ToLower(strings.TrimSpace(text))

	switch {
	case containsAny(normalized, salesKeywords):
		return s.recordSale(ctx, organizationID, userID, text, normalized)
	case containsAny(normalized, expenseKeywords):
		return s.recordExpense(ctx, organizationID, userID, text, normalized)
	case containsAny(normalized, balanceKeywords):
		return s.balanceInquiry(ctx, organizationID, userID)
	case containsAny(normalized, summaryKeywords):
		return s.summary(ctx, organizationID, userID)
	default:
		s.LogDebug(ctx, "Unrecognized command", slog.String("organization_id", organizationID))
		return &dto.CommandResponse{
			Kind:    CommandUnknown,
			Message: "عذراً، لم أتمكن من فهم الأمر. يرجى المحاولة مرة أخرى بصيغة أوضح.",
		}, nil
	}
}

// pickAccounts selects the cash, sales and expense accounts used by the
// two-line entries commands generate. Cash comes from the cash-and-equivalents
// subtree (codes 111x), preferring the main cash box over the subtree header.
func (s *commandService) pickAccounts(ctx context.Context, organizationID, userID string) (cash, sales, expense *domain.Account, err error) {
	accounts, err := s.accountSvc.ListAccounts(ctx, organizationID, userID)
	if err != nil {
		return nil, nil, nil, err
	}
	for i := range accounts {
		account := &accounts[i]
		if !account.IsActive {
			continue
		}
		switch account.Class {
		case domain.Asset:
			if strings.HasPrefix(account.Code, "111") {
				if cash == nil || (strings.Contains(account.Name, "خزنة") && !strings.Contains(cash.Name, "خزنة")) {
					cash = account
				}
			}
		case domain.Revenue:
			// Prefer the dedicated sales revenue account over headers.
			if sales == nil || (strings.Contains(account.Name, "مبيعات") && !strings.Contains(sales.Name, "مبيعات")) {
				sales = account
			}
		case domain.Expense:
			if expense == nil {
				expense = account
			}
		}
	}
	return cash, sales, expense, nil
}

func (s *commandService) recordSale(ctx context.Context, organizationID, userID, text, normalized string) (*dto.CommandResponse, error) {
	amount, err := parseAmount(normalized)
	if err != nil {
		return nil, err
	}

	cash, sales, _, err := s.pickAccounts(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	if cash == nil || sales == nil {
		return nil, fmt.Errorf("%w: no cash or sales account available", apperrors.ErrValidation)
	}

	entry, err := s.ledgerSvc.CommitEntry(ctx, organizationID, dto.CreateEntryRequest{
		Description: text,
		Reference:   "command",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: amount, Description: "نقدية من المبيعات"},
			{AccountID: sales.AccountID, Credit: amount, Description: "إيرادات مبيعات"},
		},
	}, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToEntryResponse(*entry)
	return &dto.CommandResponse{
		Kind:    CommandSales,
		Message: fmt.Sprintf("تم إنشاء قيد مبيعات بقيمة %s", amount),
		Entry:   &resp,
	}, nil
}

func (s *commandService) recordExpense(ctx context.Context, organizationID, userID, text, normalized string) (*dto.CommandResponse, error) {
	amount, err := parseAmount(normalized)
	if err != nil {
		return nil, err
	}

	cash, _, expense, err := s.pickAccounts(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}
	if cash == nil || expense == nil {
		return nil, fmt.Errorf("%w: no cash or expense account available", apperrors.ErrValidation)
	}

	entry, err := s.ledgerSvc.CommitEntry(ctx, organizationID, dto.CreateEntryRequest{
		Description: text,
		Reference:   "command",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: expense.AccountID, Debit: amount, Description: "مصروفات"},
			{AccountID: cash.AccountID, Credit: amount, Description: "نقدية مدفوعة"},
		},
	}, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToEntryResponse(*entry)
	return &dto.CommandResponse{
		Kind:    CommandExpense,
		Message: fmt.Sprintf("تم إنشاء قيد مصروفات بقيمة %s", amount),
		Entry:   &resp,
	}, nil
}

func (s *commandService) balanceInquiry(ctx context.Context, organizationID, userID string) (*dto.CommandResponse, error) {
	accounts, err := s.accountSvc.ListAccounts(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}

	balances := make([]dto.CommandBalanceResponse, 0)
	for _, account := range accounts {
		if account.Class == domain.Asset && strings.HasPrefix(account.Code, "111") && account.IsActive {
			balances = append(balances, dto.CommandBalanceResponse{
				Code:    account.Code,
				Name:    account.Name,
				Balance: account.Balance,
			})
		}
	}

	return &dto.CommandResponse{
		Kind:     CommandBalance,
		Message:  "أرصدة الحسابات النقدية",
		Balances: balances,
	}, nil
}

func (s *commandService) summary(ctx context.Context, organizationID, userID string) (*dto.CommandResponse, error) {
	stats, err := s.reportingSvc.DashboardStats(ctx, organizationID, userID)
	if err != nil {
		return nil, err
	}

	resp := dto.ToDashboardStatsResponse(*stats)
	return &dto.CommandResponse{
		Kind: CommandSummary,
		Message: fmt.Sprintf("الإيرادات: %s | المصروفات: %s | صافي الربح: %s | الرصيد النقدي: %s",
			stats.TotalRevenue, stats.TotalExpenses, stats.NetProfit, stats.CashBalance),
		Stats: &resp,
	}, nil
}
