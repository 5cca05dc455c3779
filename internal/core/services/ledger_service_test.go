package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
	"github.com/mizanapp/mizan_backend/internal/core/services"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/mizanapp/mizan_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// testFixture wires the full service container onto a fresh in-memory store
// with one registered owner and one organization (with the seeded chart).
type testFixture struct {
	container *portssvc.ServiceContainer
	ownerID   string
	orgID     string
}

func newTestFixture(t *testing.T) *testFixture {
	t.Helper()
	ctx := context.Background()

	container := services.NewServiceContainer(
		memory.NewRepositoryProvider(memory.NewStore()),
		"test-secret",
		time.Hour,
	)

	owner, err := container.UserSvc.Register(ctx, dto.RegisterUserRequest{
		Username: "owner",
		Password: "correct-horse-battery",
		Email:    "owner@example.com",
	})
	require.NoError(t, err)

	org, err := container.OrganizationSvc.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Test Org",
	}, owner.UserID)
	require.NoError(t, err)

	return &testFixture{
		container: container,
		ownerID:   owner.UserID,
		orgID:     org.OrganizationID,
	}
}

// accountByCode finds a seeded account by its code.
func (f *testFixture) accountByCode(t *testing.T, code string) domain.Account {
	t.Helper()
	accounts, err := f.container.AccountSvc.ListAccounts(context.Background(), f.orgID, f.ownerID)
	require.NoError(t, err)
	for _, account := range accounts {
		if account.Code == code {
			return account
		}
	}
	t.Fatalf("account with code %s not found", code)
	return domain.Account{}
}

// addMember registers a new user and adds them to the fixture organization.
func (f *testFixture) addMember(t *testing.T, username string, role string) string {
	t.Helper()
	ctx := context.Background()
	user, err := f.container.UserSvc.Register(ctx, dto.RegisterUserRequest{
		Username: username,
		Password: "correct-horse-battery",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)

	err = f.container.OrganizationSvc.AddMember(ctx, f.orgID, dto.AddMemberRequest{
		UserID: user.UserID,
		Role:   role,
	}, f.ownerID)
	require.NoError(t, err)
	return user.UserID
}

type LedgerServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *LedgerServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

func (s *LedgerServiceTestSuite) commit(req dto.CreateEntryRequest) (*domain.JournalEntry, error) {
	return s.fixture.container.LedgerSvc.CommitEntry(context.Background(), s.fixture.orgID, req, s.fixture.ownerID)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_Success() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	entry, err := s.commit(dto.CreateEntryRequest{
		Description: "cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	})
	s.Require().NoError(err)

	s.True(strings.HasPrefix(entry.EntryNumber, "JE-"))
	s.True(dec("100.00").Equal(entry.TotalAmount))
	s.Len(entry.Lines, 2)

	// Asset increases on debit, revenue increases on credit.
	cashAfter := s.fixture.accountByCode(s.T(), "1111")
	salesAfter := s.fixture.accountByCode(s.T(), "4100")
	s.True(dec("100.00").Equal(cashAfter.Balance), "cash balance: %s", cashAfter.Balance)
	s.True(dec("100.00").Equal(salesAfter.Balance), "sales balance: %s", salesAfter.Balance)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_MultiLine() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	receivables := s.fixture.accountByCode(s.T(), "1200")
	sales := s.fixture.accountByCode(s.T(), "4100")

	_, err := s.commit(dto.CreateEntryRequest{
		Description: "partial cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("60.00")},
			{AccountID: receivables.AccountID, Debit: dec("40.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	})
	s.Require().NoError(err)

	s.True(dec("60.00").Equal(s.fixture.accountByCode(s.T(), "1111").Balance))
	s.True(dec("40.00").Equal(s.fixture.accountByCode(s.T(), "1200").Balance))
	s.True(dec("100.00").Equal(s.fixture.accountByCode(s.T(), "4100").Balance))
}

func (s *LedgerServiceTestSuite) TestCommitEntry_TooFewLines() {
	cash := s.fixture.accountByCode(s.T(), "1111")

	_, err := s.commit(dto.CreateEntryRequest{
		Description: "one-legged",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_Unbalanced_NoStateChange() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	_, err := s.commit(dto.CreateEntryRequest{
		Description: "lopsided",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("99.99")},
		},
	})
	s.ErrorIs(err, apperrors.ErrUnbalancedEntry)

	// No balance moved and nothing was recorded.
	s.True(s.fixture.accountByCode(s.T(), "1111").Balance.IsZero())
	s.True(s.fixture.accountByCode(s.T(), "4100").Balance.IsZero())
	entries, err := s.fixture.container.LedgerSvc.ListEntries(context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Empty(entries)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_LineWithBothAmounts() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	_, err := s.commit(dto.CreateEntryRequest{
		Description: "both sides",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00"), Credit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("0")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_NegativeAmount() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	_, err := s.commit(dto.CreateEntryRequest{
		Description: "negative",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("-100.00")},
			{AccountID: sales.AccountID, Credit: dec("-100.00")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_UnknownAccount() {
	cash := s.fixture.accountByCode(s.T(), "1111")

	_, err := s.commit(dto.CreateEntryRequest{
		Description: "ghost account",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: "no-such-account", Credit: dec("100.00")},
		},
	})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_InactiveAccount() {
	ctx := context.Background()
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	err := s.fixture.container.AccountSvc.DeactivateAccount(ctx, s.fixture.orgID, sales.AccountID, s.fixture.ownerID)
	s.Require().NoError(err)

	_, err = s.commit(dto.CreateEntryRequest{
		Description: "to inactive",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_ViewerForbidden() {
	viewerID := s.fixture.addMember(s.T(), "viewer", "viewer")
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	_, err := s.fixture.container.LedgerSvc.CommitEntry(context.Background(), s.fixture.orgID, dto.CreateEntryRequest{
		Description: "viewer attempt",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	}, viewerID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *LedgerServiceTestSuite) TestCommitEntry_NonMember() {
	ctx := context.Background()
	stranger, err := s.fixture.container.UserSvc.Register(ctx, dto.RegisterUserRequest{
		Username: "stranger",
		Password: "correct-horse-battery",
		Email:    "stranger@example.com",
	})
	s.Require().NoError(err)

	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	_, err = s.fixture.container.LedgerSvc.CommitEntry(ctx, s.fixture.orgID, dto.CreateEntryRequest{
		Description: "outsider attempt",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	}, stranger.UserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestGetEntryByID_WithLines() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	committed, err := s.commit(dto.CreateEntryRequest{
		Description: "cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	})
	s.Require().NoError(err)

	entry, err := s.fixture.container.LedgerSvc.GetEntryByID(context.Background(), s.fixture.orgID, committed.EntryID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal(committed.EntryNumber, entry.EntryNumber)
	s.Len(entry.Lines, 2)
}

func (s *LedgerServiceTestSuite) TestGetEntryByID_OtherOrganizationHidden() {
	ctx := context.Background()
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	committed, err := s.commit(dto.CreateEntryRequest{
		Description: "cash sale",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("100.00")},
			{AccountID: sales.AccountID, Credit: dec("100.00")},
		},
	})
	s.Require().NoError(err)

	otherOrg, err := s.fixture.container.OrganizationSvc.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Other Org",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	_, err = s.fixture.container.LedgerSvc.GetEntryByID(ctx, otherOrg.OrganizationID, committed.EntryID, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestListEntries_CommitOrder() {
	cash := s.fixture.accountByCode(s.T(), "1111")
	sales := s.fixture.accountByCode(s.T(), "4100")

	first, err := s.commit(dto.CreateEntryRequest{
		Description: "first",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("10.00")},
			{AccountID: sales.AccountID, Credit: dec("10.00")},
		},
	})
	s.Require().NoError(err)
	second, err := s.commit(dto.CreateEntryRequest{
		Description: "second",
		Lines: []dto.CreateEntryLineRequest{
			{AccountID: cash.AccountID, Debit: dec("20.00")},
			{AccountID: sales.AccountID, Credit: dec("20.00")},
		},
	})
	s.Require().NoError(err)

	entries, err := s.fixture.container.LedgerSvc.ListEntries(context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Require().Len(entries, 2)
	s.Equal(first.EntryID, entries[0].EntryID)
	s.Equal(second.EntryID, entries[1].EntryID)
	s.Len(entries[0].Lines, 2)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
