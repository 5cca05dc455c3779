package services_test

import (
	"context"
	"testing"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

type ContactServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *ContactServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

func (s *ContactServiceTestSuite) TestCreateContact_Success() {
	contact, err := s.fixture.container.ContactSvc.CreateContact(context.Background(), s.fixture.orgID, dto.CreateContactRequest{
		Name:  "مؤسسة الفجر",
		Type:  "supplier",
		Email: "fajr@example.com",
		Phone: "+966500000000",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	s.Equal(domain.ContactSupplier, contact.Type)
	s.True(contact.IsActive)
	s.Equal(s.fixture.orgID, contact.OrganizationID)
}

func (s *ContactServiceTestSuite) TestCreateContact_InvalidType() {
	_, err := s.fixture.container.ContactSvc.CreateContact(context.Background(), s.fixture.orgID, dto.CreateContactRequest{
		Name: "مؤسسة الفجر",
		Type: "partner",
	}, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *ContactServiceTestSuite) TestUpdateContact_TypeImmutable() {
	ctx := context.Background()
	contact, err := s.fixture.container.ContactSvc.CreateContact(ctx, s.fixture.orgID, dto.CreateContactRequest{
		Name: "أحمد",
		Type: "employee",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	name := "أحمد السالم"
	updated, err := s.fixture.container.ContactSvc.UpdateContact(ctx, s.fixture.orgID, contact.ContactID, dto.UpdateContactRequest{
		Name: &name,
	}, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal("أحمد السالم", updated.Name)
	s.Equal(domain.ContactEmployee, updated.Type)
}

func (s *ContactServiceTestSuite) TestListContacts_ScopedToOrganization() {
	ctx := context.Background()
	_, err := s.fixture.container.ContactSvc.CreateContact(ctx, s.fixture.orgID, dto.CreateContactRequest{
		Name: "عميل أول",
		Type: "customer",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	other, err := s.fixture.container.UserSvc.Register(ctx, dto.RegisterUserRequest{
		Username: "other-owner",
		Password: "correct-horse-battery",
		Email:    "other-owner@example.com",
	})
	s.Require().NoError(err)
	otherOrg, err := s.fixture.container.OrganizationSvc.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Other Org",
	}, other.UserID)
	s.Require().NoError(err)

	contacts, err := s.fixture.container.ContactSvc.ListContacts(ctx, otherOrg.OrganizationID, other.UserID)
	s.Require().NoError(err)
	s.Empty(contacts)
}

func (s *ContactServiceTestSuite) TestViewerCannotCreateContact() {
	viewerID := s.fixture.addMember(s.T(), "viewer-contact", "viewer")

	_, err := s.fixture.container.ContactSvc.CreateContact(context.Background(), s.fixture.orgID, dto.CreateContactRequest{
		Name: "عميل",
		Type: "customer",
	}, viewerID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
