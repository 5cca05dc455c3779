package services_test

import (
	"context"
	"testing"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

func (s *AccountServiceTestSuite) create(req dto.CreateAccountRequest) (*domain.Account, error) {
	return s.fixture.container.AccountSvc.CreateAccount(context.Background(), s.fixture.orgID, req, s.fixture.ownerID)
}

func (s *AccountServiceTestSuite) TestCreateAccount() {
	account, err := s.create(dto.CreateAccountRequest{
		Code:  "1300",
		Name:  "المخزون",
		Class: "asset",
	})
	s.Require().NoError(err)

	s.NotEmpty(account.AccountID)
	s.Equal(s.fixture.orgID, account.OrganizationID)
	s.Equal(domain.Asset, account.Class)
	s.True(account.IsActive)
	s.True(account.Balance.IsZero())
}

func (s *AccountServiceTestSuite) TestCreateAccount_WithOpeningBalance() {
	account, err := s.create(dto.CreateAccountRequest{
		Code:           "1113",
		Name:           "بنك الراجحي",
		Class:          "asset",
		OpeningBalance: dec("2500.00"),
	})
	s.Require().NoError(err)
	s.True(dec("2500.00").Equal(account.Balance))
}

func (s *AccountServiceTestSuite) TestCreateAccount_WithParent() {
	parent := s.fixture.accountByCode(s.T(), "1110")
	account, err := s.create(dto.CreateAccountRequest{
		Code:            "1113",
		Name:            "خزنة الفرع",
		Class:           "asset",
		ParentAccountID: parent.AccountID,
	})
	s.Require().NoError(err)
	s.Equal(parent.AccountID, account.ParentAccountID)
}

func (s *AccountServiceTestSuite) TestCreateAccount_DuplicateCode() {
	// 1111 is seeded with the default chart.
	_, err := s.create(dto.CreateAccountRequest{
		Code:  "1111",
		Name:  "خزنة مكررة",
		Class: "asset",
	})
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *AccountServiceTestSuite) TestCreateAccount_InvalidClass() {
	_, err := s.create(dto.CreateAccountRequest{
		Code:  "9999",
		Name:  "غير معروف",
		Class: "contra-asset",
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateAccount_ParentFromOtherOrganization() {
	ctx := context.Background()
	otherOrg, err := s.fixture.container.OrganizationSvc.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Other Org",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	foreignAccounts, err := s.fixture.container.AccountSvc.ListAccounts(ctx, otherOrg.OrganizationID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Require().NotEmpty(foreignAccounts)

	_, err = s.create(dto.CreateAccountRequest{
		Code:            "1400",
		Name:            "حساب دخيل",
		Class:           "asset",
		ParentAccountID: foreignAccounts[0].AccountID,
	})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestCreateAccount_AccountantForbidden() {
	accountantID := s.fixture.addMember(s.T(), "bookkeeper", "accountant")
	_, err := s.fixture.container.AccountSvc.CreateAccount(context.Background(), s.fixture.orgID, dto.CreateAccountRequest{
		Code:  "1300",
		Name:  "المخزون",
		Class: "asset",
	}, accountantID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func (s *AccountServiceTestSuite) TestUpdateAccount_Rename() {
	ctx := context.Background()
	account := s.fixture.accountByCode(s.T(), "1112")

	newName := "بنك الرياض"
	updated, err := s.fixture.container.AccountSvc.UpdateAccount(ctx, s.fixture.orgID, account.AccountID, dto.UpdateAccountRequest{
		Name: &newName,
	}, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal(newName, updated.Name)
	s.True(updated.IsActive)

	fetched, err := s.fixture.container.AccountSvc.GetAccountByID(ctx, s.fixture.orgID, account.AccountID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal(newName, fetched.Name)
}

func (s *AccountServiceTestSuite) TestDeactivateAccount() {
	ctx := context.Background()
	account := s.fixture.accountByCode(s.T(), "1112")

	err := s.fixture.container.AccountSvc.DeactivateAccount(ctx, s.fixture.orgID, account.AccountID, s.fixture.ownerID)
	s.Require().NoError(err)

	fetched, err := s.fixture.container.AccountSvc.GetAccountByID(ctx, s.fixture.orgID, account.AccountID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.False(fetched.IsActive)

	// Deactivating twice is rejected.
	err = s.fixture.container.AccountSvc.DeactivateAccount(ctx, s.fixture.orgID, account.AccountID, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestGetAccountByID_OtherOrganizationHidden() {
	ctx := context.Background()
	account := s.fixture.accountByCode(s.T(), "1111")

	otherOrg, err := s.fixture.container.OrganizationSvc.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Other Org",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	_, err = s.fixture.container.AccountSvc.GetAccountByID(ctx, otherOrg.OrganizationID, account.AccountID, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestListAccounts_SeededChart() {
	accounts, err := s.fixture.container.AccountSvc.ListAccounts(context.Background(), s.fixture.orgID, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Len(accounts, 13)
	s.Equal("1000", accounts[0].Code)
	for _, account := range accounts {
		s.True(account.IsActive)
		s.True(account.Balance.IsZero())
	}
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
