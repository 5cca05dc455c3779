package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/utils"
	"github.com/mizanapp/mizan_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type ledgerService struct {
	BaseService
	entryRepo   portsrepo.EntryRepositoryFacade
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewLedgerService creates a ledger service.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, accountRepo portsrepo.AccountRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.LedgerSvcFacade {
	return &ledgerService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		entryRepo:   entryRepo,
		accountRepo: accountRepo,
	}
}

// validateLineAmounts checks the amount rules for a single line: both amounts
// non-negative, exactly one of them positive.
func validateLineAmounts(line dto.CreateEntryLineRequest) error {
	if line.Debit.IsNegative() || line.Credit.IsNegative() {
		return fmt.Errorf("%w: line amounts must not be negative", apperrors.ErrValidation)
	}
	if line.Debit.IsPositive() && line.Credit.IsPositive() {
		return fmt.Errorf("%w: a line cannot carry both a debit and a credit", apperrors.ErrValidation)
	}
	if line.Debit.IsZero() && line.Credit.IsZero() {
		return fmt.Errorf("%w: a line must carry a debit or a credit amount", apperrors.ErrValidation)
	}
	return nil
}

func (s *ledgerService) CommitEntry(ctx context.Context, organizationID string, req dto.CreateEntryRequest, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	if len(req.Lines) < 2 {
		return nil, fmt.Errorf("%w: at least one debit and one credit line required", apperrors.ErrValidation)
	}
	for _, line := range req.Lines {
		if err := validateLineAmounts(line); err != nil {
			return nil, err
		}
	}

	// Resolve every referenced account before checking the balance, so a bad
	// account reference is reported as not-found rather than unbalanced.
	accountIDs := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		accountIDs = append(accountIDs, line.AccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, accountIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch accounts for entry", slog.String("organization_id", organizationID))
		return nil, err
	}
	for _, line := range req.Lines {
		account, ok := accounts[line.AccountID]
		if !ok || account.OrganizationID != organizationID {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, line.AccountID)
		}
		if !account.IsActive {
			return nil, fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.Code)
		}
	}

	totalDebits := decimal.Zero
	totalCredits := decimal.Zero
	for _, line := range req.Lines {
		totalDebits = totalDebits.Add(line.Debit)
		totalCredits = totalCredits.Add(line.Credit)
	}
	// Exact comparison. decimal arithmetic is lossless, so any tolerance
	// would only mask caller bugs.
	if !totalDebits.Equal(totalCredits) {
		return nil, fmt.Errorf("%w: debits %s != credits %s", apperrors.ErrUnbalancedEntry, totalDebits, totalCredits)
	}

	now := time.Now()
	entryDate := now
	if req.EntryDate != nil {
		entryDate = *req.EntryDate
	}

	entry := domain.JournalEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: organizationID,
		EntryNumber:    utils.NewEntryNumber(),
		Description:    req.Description,
		EntryDate:      entryDate,
		Reference:      req.Reference,
		TotalAmount:    totalDebits,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	lines := make([]domain.EntryLine, 0, len(req.Lines))
	balanceChanges := make(map[string]decimal.Decimal)
	for _, lineReq := range req.Lines {
		lines = append(lines, domain.EntryLine{
			LineID:      uuid.NewString(),
			EntryID:     entry.EntryID,
			AccountID:   lineReq.AccountID,
			Debit:       lineReq.Debit,
			Credit:      lineReq.Credit,
			Description: lineReq.Description,
		})

		account := accounts[lineReq.AccountID]
		effect, err := accounting.EntryEffect(account.Class, lineReq.Debit, lineReq.Credit)
		if err != nil {
			return nil, err
		}
		balanceChanges[lineReq.AccountID] = balanceChanges[lineReq.AccountID].Add(effect)
	}

	if err := s.entryRepo.SaveEntry(ctx, entry, lines, balanceChanges); err != nil {
		s.LogError(ctx, err, "Failed to commit entry",
			slog.String("organization_id", organizationID),
			slog.String("entry_number", entry.EntryNumber))
		return nil, err
	}

	entry.Lines = lines
	s.LogInfo(ctx, "Entry committed",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_number", entry.EntryNumber),
		slog.String("total_amount", entry.TotalAmount.String()),
		slog.Int("line_count", len(lines)))
	return &entry, nil
}

func (s *ledgerService) GetEntryByID(ctx context.Context, organizationID, entryID, userID string) (*domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}

	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}

	lines, err := s.entryRepo.FindLinesByEntryID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

func (s *ledgerService) ListEntries(ctx context.Context, organizationID, userID string) ([]domain.JournalEntry, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}

	entries, err := s.entryRepo.ListEntriesByOrganization(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return entries, nil
	}

	entryIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		entryIDs = append(entryIDs, entry.EntryID)
	}
	linesByEntry, err := s.entryRepo.FindLinesByEntryIDs(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Lines = linesByEntry[entries[i].EntryID]
	}
	return entries, nil
}
