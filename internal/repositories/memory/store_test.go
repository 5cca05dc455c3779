package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newAccount(orgID, code string, class domain.AccountClass) domain.Account {
	return domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: orgID,
		Code:           code,
		Name:           "account " + code,
		Class:          class,
		IsActive:       true,
		Balance:        decimal.Zero,
	}
}

func TestSaveAccount_DuplicateCodeWithinOrganization(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, store.SaveAccount(ctx, newAccount("org-1", "1000", domain.Asset)))

	err := store.SaveAccount(ctx, newAccount("org-1", "1000", domain.Asset))
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// The same code in another organization is fine.
	assert.NoError(t, store.SaveAccount(ctx, newAccount("org-2", "1000", domain.Asset)))
}

func TestListAccounts_InsertionOrder(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	codes := []string{"3000", "1000", "2000"}
	for _, code := range codes {
		require.NoError(t, store.SaveAccount(ctx, newAccount("org-1", code, domain.Asset)))
	}

	accounts, err := store.ListAccounts(ctx, "org-1")
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	for i, code := range codes {
		assert.Equal(t, code, accounts[i].Code)
	}
}

func TestSaveEntry_AppliesBalanceChanges(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	cash := newAccount("org-1", "1111", domain.Asset)
	sales := newAccount("org-1", "4100", domain.Revenue)
	require.NoError(t, store.SaveAccount(ctx, cash))
	require.NoError(t, store.SaveAccount(ctx, sales))

	entry := domain.JournalEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: "org-1",
		EntryNumber:    "JE-TEST1",
		TotalAmount:    dec("100.00"),
	}
	lines := []domain.EntryLine{
		{LineID: uuid.NewString(), EntryID: entry.EntryID, AccountID: cash.AccountID, Debit: dec("100.00")},
		{LineID: uuid.NewString(), EntryID: entry.EntryID, AccountID: sales.AccountID, Credit: dec("100.00")},
	}
	changes := map[string]decimal.Decimal{
		cash.AccountID:  dec("100.00"),
		sales.AccountID: dec("100.00"),
	}

	require.NoError(t, store.SaveEntry(ctx, entry, lines, changes))

	updatedCash, err := store.FindAccountByID(ctx, cash.AccountID)
	require.NoError(t, err)
	assert.True(t, dec("100.00").Equal(updatedCash.Balance))

	storedLines, err := store.FindLinesByEntryID(ctx, entry.EntryID)
	require.NoError(t, err)
	assert.Len(t, storedLines, 2)
}

func TestSaveEntry_MissingAccountLeavesNoPartialState(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	cash := newAccount("org-1", "1111", domain.Asset)
	require.NoError(t, store.SaveAccount(ctx, cash))

	entry := domain.JournalEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: "org-1",
		EntryNumber:    "JE-TEST2",
		TotalAmount:    dec("100.00"),
	}
	changes := map[string]decimal.Decimal{
		cash.AccountID: dec("100.00"),
		"missing":      dec("100.00"),
	}

	err := store.SaveEntry(ctx, entry, nil, changes)
	require.ErrorIs(t, err, apperrors.ErrNotFound)

	// Balance untouched, entry not recorded.
	unchanged, err := store.FindAccountByID(ctx, cash.AccountID)
	require.NoError(t, err)
	assert.True(t, unchanged.Balance.IsZero())

	_, err = store.FindEntryByID(ctx, entry.EntryID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	entries, err := store.ListEntriesByOrganization(ctx, "org-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveEntry_CrossOrganizationAccountRejected(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	foreign := newAccount("org-2", "1111", domain.Asset)
	require.NoError(t, store.SaveAccount(ctx, foreign))

	entry := domain.JournalEntry{
		EntryID:        uuid.NewString(),
		OrganizationID: "org-1",
		EntryNumber:    "JE-TEST3",
	}
	err := store.SaveEntry(ctx, entry, nil, map[string]decimal.Decimal{
		foreign.AccountID: dec("50.00"),
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestUpdateAccount_ImmutableFields(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	account := newAccount("org-1", "1111", domain.Asset)
	require.NoError(t, store.SaveAccount(ctx, account))

	tampered := account
	tampered.Code = "9999"
	tampered.Class = domain.Revenue
	tampered.Balance = dec("1000000")
	tampered.Name = "renamed"
	require.NoError(t, store.UpdateAccount(ctx, tampered))

	stored, err := store.FindAccountByID(ctx, account.AccountID)
	require.NoError(t, err)
	assert.Equal(t, "1111", stored.Code)
	assert.Equal(t, domain.Asset, stored.Class)
	assert.True(t, stored.Balance.IsZero())
	assert.Equal(t, "renamed", stored.Name)
}

func TestSaveUser_DuplicateUsername(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	first := domain.User{UserID: uuid.NewString(), Username: "sami", IsActive: true}
	require.NoError(t, store.SaveUser(ctx, first))

	second := domain.User{UserID: uuid.NewString(), Username: "sami", IsActive: true}
	assert.ErrorIs(t, store.SaveUser(ctx, second), apperrors.ErrDuplicate)
}

func TestUpdateUser_TelegramIndexMoves(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	user := domain.User{UserID: uuid.NewString(), Username: "sami", TelegramID: "111", IsActive: true}
	require.NoError(t, store.SaveUser(ctx, user))

	user.TelegramID = "222"
	require.NoError(t, store.UpdateUser(ctx, user))

	_, err := store.FindUserByTelegramID(ctx, "111")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	found, err := store.FindUserByTelegramID(ctx, "222")
	require.NoError(t, err)
	assert.Equal(t, user.UserID, found.UserID)
}

func TestSaveUser_DuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	first := domain.User{UserID: uuid.NewString(), Username: "sami", Email: "sami@example.com", IsActive: true}
	require.NoError(t, store.SaveUser(ctx, first))

	second := domain.User{UserID: uuid.NewString(), Username: "nour", Email: "sami@example.com", IsActive: true}
	assert.ErrorIs(t, store.SaveUser(ctx, second), apperrors.ErrDuplicate)

	// A different email is fine.
	second.Email = "nour@example.com"
	assert.NoError(t, store.SaveUser(ctx, second))
}

func TestSaveOrganizationWithSetup_PersistsEverything(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	org := domain.Organization{OrganizationID: uuid.NewString(), Name: "Org", Currency: "SAR"}
	owner := domain.Membership{
		MembershipID:   uuid.NewString(),
		UserID:         uuid.NewString(),
		OrganizationID: org.OrganizationID,
		Role:           domain.RoleOwner,
	}
	chart := []domain.Account{
		newAccount(org.OrganizationID, "1000", domain.Asset),
		newAccount(org.OrganizationID, "4000", domain.Revenue),
	}

	require.NoError(t, store.SaveOrganizationWithSetup(ctx, org, owner, chart))

	stored, err := store.FindOrganizationByID(ctx, org.OrganizationID)
	require.NoError(t, err)
	assert.Equal(t, "Org", stored.Name)

	membership, err := store.FindMembership(ctx, owner.UserID, org.OrganizationID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, membership.Role)

	accounts, err := store.ListAccounts(ctx, org.OrganizationID)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}

func TestSaveOrganizationWithSetup_DuplicateCodeLeavesNoPartialState(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	org := domain.Organization{OrganizationID: uuid.NewString(), Name: "Org", Currency: "SAR"}
	owner := domain.Membership{
		MembershipID:   uuid.NewString(),
		UserID:         uuid.NewString(),
		OrganizationID: org.OrganizationID,
		Role:           domain.RoleOwner,
	}
	chart := []domain.Account{
		newAccount(org.OrganizationID, "1000", domain.Asset),
		newAccount(org.OrganizationID, "1000", domain.Asset),
	}

	err := store.SaveOrganizationWithSetup(ctx, org, owner, chart)
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Neither the organization, nor the membership, nor any account landed.
	_, err = store.FindOrganizationByID(ctx, org.OrganizationID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = store.FindMembership(ctx, owner.UserID, org.OrganizationID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	accounts, err := store.ListAccounts(ctx, org.OrganizationID)
	require.NoError(t, err)
	assert.Empty(t, accounts)
}

func TestMarkNotificationRead_WrongUser(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	notification := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         "user-1",
		Title:          "hello",
		Type:           domain.NotificationInfo,
	}
	require.NoError(t, store.SaveNotification(ctx, notification))

	assert.ErrorIs(t, store.MarkNotificationRead(ctx, notification.NotificationID, "user-2"), apperrors.ErrNotFound)
	require.NoError(t, store.MarkNotificationRead(ctx, notification.NotificationID, "user-1"))

	listed, err := store.ListNotificationsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.True(t, listed[0].IsRead)
}
