package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mizanapp/mizan_backend/internal/apperrors"
	"github.com/mizanapp/mizan_backend/internal/core/domain"
	"github.com/mizanapp/mizan_backend/internal/dto"
	"github.com/stretchr/testify/suite"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	fixture *testFixture
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.fixture = newTestFixture(s.T())
}

func (s *InvoiceServiceTestSuite) createContact(name string) *domain.Contact {
	contact, err := s.fixture.container.ContactSvc.CreateContact(context.Background(), s.fixture.orgID, dto.CreateContactRequest{
		Name: name,
		Type: "customer",
	}, s.fixture.ownerID)
	s.Require().NoError(err)
	return contact
}

func (s *InvoiceServiceTestSuite) createInvoice(contactID string) *domain.Invoice {
	invoice, err := s.fixture.container.InvoiceSvc.CreateInvoice(context.Background(), s.fixture.orgID, dto.CreateInvoiceRequest{
		ContactID:   contactID,
		IssueDate:   time.Now(),
		Subtotal:    dec("100.00"),
		TaxAmount:   dec("15.00"),
		TotalAmount: dec("115.00"),
	}, s.fixture.ownerID)
	s.Require().NoError(err)
	return invoice
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	contact := s.createContact("شركة النور")
	invoice := s.createInvoice(contact.ContactID)

	s.True(strings.HasPrefix(invoice.InvoiceNumber, "INV-"))
	s.Equal(domain.InvoiceDraft, invoice.Status)
	s.True(dec("115.00").Equal(invoice.TotalAmount))
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_TotalMustEqualSubtotalPlusTax() {
	contact := s.createContact("شركة النور")

	_, err := s.fixture.container.InvoiceSvc.CreateInvoice(context.Background(), s.fixture.orgID, dto.CreateInvoiceRequest{
		ContactID:   contact.ContactID,
		IssueDate:   time.Now(),
		Subtotal:    dec("100.00"),
		TaxAmount:   dec("15.00"),
		TotalAmount: dec("120.00"),
	}, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_UnknownContactRejected() {
	_, err := s.fixture.container.InvoiceSvc.CreateInvoice(context.Background(), s.fixture.orgID, dto.CreateInvoiceRequest{
		ContactID:   "no-such-contact",
		IssueDate:   time.Now(),
		Subtotal:    dec("100.00"),
		TotalAmount: dec("100.00"),
	}, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestCreateInvoice_InactiveContactRejected() {
	contact := s.createContact("شركة النور")
	inactive := false
	_, err := s.fixture.container.ContactSvc.UpdateContact(context.Background(), s.fixture.orgID, contact.ContactID, dto.UpdateContactRequest{
		IsActive: &inactive,
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	_, err = s.fixture.container.InvoiceSvc.CreateInvoice(context.Background(), s.fixture.orgID, dto.CreateInvoiceRequest{
		ContactID:   contact.ContactID,
		IssueDate:   time.Now(),
		Subtotal:    dec("100.00"),
		TotalAmount: dec("100.00"),
	}, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestUpdateStatus_LifecycleAndNotification() {
	ctx := context.Background()
	contact := s.createContact("شركة النور")
	invoice := s.createInvoice(contact.ContactID)

	sent, err := s.fixture.container.InvoiceSvc.UpdateInvoiceStatus(ctx, s.fixture.orgID, invoice.InvoiceID, dto.UpdateInvoiceStatusRequest{
		Status: "sent",
	}, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal(domain.InvoiceSent, sent.Status)

	paid, err := s.fixture.container.InvoiceSvc.UpdateInvoiceStatus(ctx, s.fixture.orgID, invoice.InvoiceID, dto.UpdateInvoiceStatusRequest{
		Status: "paid",
	}, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Equal(domain.InvoicePaid, paid.Status)

	// The creator was notified for each transition, newest first.
	notifications, err := s.fixture.container.NotificationSvc.ListNotifications(ctx, s.fixture.ownerID)
	s.Require().NoError(err)
	s.Require().Len(notifications, 2)
	s.Equal(domain.NotificationSuccess, notifications[0].Type)
	s.Contains(notifications[0].Message, invoice.InvoiceNumber)
	s.Equal(domain.NotificationInfo, notifications[1].Type)
}

func (s *InvoiceServiceTestSuite) TestUpdateStatus_IllegalTransitions() {
	ctx := context.Background()
	contact := s.createContact("شركة النور")
	invoice := s.createInvoice(contact.ContactID)

	// Draft invoices cannot be paid directly.
	_, err := s.fixture.container.InvoiceSvc.UpdateInvoiceStatus(ctx, s.fixture.orgID, invoice.InvoiceID, dto.UpdateInvoiceStatusRequest{
		Status: "paid",
	}, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.fixture.container.InvoiceSvc.UpdateInvoiceStatus(ctx, s.fixture.orgID, invoice.InvoiceID, dto.UpdateInvoiceStatusRequest{
		Status: "cancelled",
	}, s.fixture.ownerID)
	s.Require().NoError(err)

	// Cancelled is terminal.
	_, err = s.fixture.container.InvoiceSvc.UpdateInvoiceStatus(ctx, s.fixture.orgID, invoice.InvoiceID, dto.UpdateInvoiceStatusRequest{
		Status: "sent",
	}, s.fixture.ownerID)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *InvoiceServiceTestSuite) TestGetInvoice_OtherOrganizationHidden() {
	ctx := context.Background()
	contact := s.createContact("شركة النور")
	invoice := s.createInvoice(contact.ContactID)

	// A second organization owned by another user cannot see the invoice.
	outsider, err := s.fixture.container.UserSvc.Register(ctx, dto.RegisterUserRequest{
		Username: "outsider",
		Password: "correct-horse-battery",
		Email:    "outsider@example.com",
	})
	s.Require().NoError(err)
	otherOrg, err := s.fixture.container.OrganizationSvc.CreateOrganization(ctx, dto.CreateOrganizationRequest{
		Name: "Other Org",
	}, outsider.UserID)
	s.Require().NoError(err)

	_, err = s.fixture.container.InvoiceSvc.GetInvoiceByID(ctx, otherOrg.OrganizationID, invoice.InvoiceID, outsider.UserID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *InvoiceServiceTestSuite) TestViewerCannotCreateInvoice() {
	contact := s.createContact("شركة النور")
	viewerID := s.fixture.addMember(s.T(), "viewer-inv", "viewer")

	_, err := s.fixture.container.InvoiceSvc.CreateInvoice(context.Background(), s.fixture.orgID, dto.CreateInvoiceRequest{
		ContactID:   contact.ContactID,
		IssueDate:   time.Now(),
		Subtotal:    dec("100.00"),
		TotalAmount: dec("100.00"),
	}, viewerID)
	s.ErrorIs(err, apperrors.ErrForbidden)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
