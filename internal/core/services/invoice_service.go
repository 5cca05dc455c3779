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
)

type invoiceService struct {
	BaseService
	invoiceRepo     portsrepo.InvoiceRepositoryFacade
	contactRepo     portsrepo.ContactRepositoryFacade
	notificationSvc portssvc.NotificationSvcFacade
}

// NewInvoiceService creates an invoice service. Status changes notify the
// invoice's creator through the notification service.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	contactRepo portsrepo.ContactRepositoryFacade,
	notificationSvc portssvc.NotificationSvcFacade,
	authorizer portssvc.OrganizationAuthorizerSvc,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		BaseService:     BaseService{OrganizationAuthorizer: authorizer},
		invoiceRepo:     invoiceRepo,
		contactRepo:     contactRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *invoiceService) CreateInvoice(ctx context.Context, organizationID string, req dto.CreateInvoiceRequest, userID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	if req.Subtotal.IsNegative() || req.TaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: invoice amounts cannot be negative", apperrors.ErrValidation)
	}
	if !req.Subtotal.Add(req.TaxAmount).Equal(req.TotalAmount) {
		return nil, fmt.Errorf("%w: total %s does not equal subtotal plus tax", apperrors.ErrValidation, req.TotalAmount)
	}

	contact, err := s.contactRepo.FindContactByID(ctx, req.ContactID)
	if err != nil || contact.OrganizationID != organizationID {
		return nil, fmt.Errorf("%w: contact not found", apperrors.ErrValidation)
	}
	if !contact.IsActive {
		return nil, fmt.Errorf("%w: contact %s is inactive", apperrors.ErrValidation, contact.Name)
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		OrganizationID: organizationID,
		InvoiceNumber:  utils.NewInvoiceNumber(),
		ContactID:      req.ContactID,
		IssueDate:      req.IssueDate,
		DueDate:        req.DueDate,
		Subtotal:       req.Subtotal,
		TaxAmount:      req.TaxAmount,
		TotalAmount:    req.TotalAmount,
		Status:         domain.InvoiceDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogError(ctx, err, "Failed to save invoice",
			slog.String("organization_id", organizationID),
			slog.String("contact_id", req.ContactID))
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("invoice_number", invoice.InvoiceNumber),
		slog.String("total", invoice.TotalAmount.String()))
	return &invoice, nil
}

// findInOrganization fetches an invoice and verifies it belongs to the
// organization. Invoices of other organizations are reported as not found.
func (s *invoiceService) findInOrganization(ctx context.Context, organizationID, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.OrganizationID != organizationID {
		return nil, apperrors.ErrNotFound
	}
	return invoice, nil
}

func (s *invoiceService) GetInvoiceByID(ctx context.Context, organizationID, invoiceID, userID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.findInOrganization(ctx, organizationID, invoiceID)
}

func (s *invoiceService) ListInvoices(ctx context.Context, organizationID, userID string) ([]domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.invoiceRepo.ListInvoices(ctx, organizationID)
}

func (s *invoiceService) UpdateInvoiceStatus(ctx context.Context, organizationID, invoiceID string, req dto.UpdateInvoiceStatusRequest, userID string) (*domain.Invoice, error) {
	if err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	invoice, err := s.findInOrganization(ctx, organizationID, invoiceID)
	if err != nil {
		return nil, err
	}

	next := domain.InvoiceStatus(req.Status)
	if !next.IsValid() {
		return nil, fmt.Errorf("%w: invalid invoice status %q", apperrors.ErrValidation, req.Status)
	}
	if !invoice.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: invoice %s cannot move from %s to %s", apperrors.ErrValidation, invoice.InvoiceNumber, invoice.Status, next)
	}

	invoice.Status = next
	invoice.LastUpdatedAt = time.Now()
	invoice.LastUpdatedBy = userID

	if err := s.invoiceRepo.UpdateInvoice(ctx, *invoice); err != nil {
		s.LogError(ctx, err, "Failed to update invoice status", slog.String("invoice_id", invoiceID))
		return nil, err
	}

	s.notifyStatusChange(ctx, *invoice)

	s.LogInfo(ctx, "Invoice status updated",
		slog.String("invoice_id", invoice.InvoiceID),
		slog.String("status", string(invoice.Status)))
	return invoice, nil
}

// notifyStatusChange tells the invoice's creator about the new status.
// Notification delivery is best effort; a failure never fails the status
// change itself.
func (s *invoiceService) notifyStatusChange(ctx context.Context, invoice domain.Invoice) {
	var notificationType domain.NotificationType
	var message string
	switch invoice.Status {
	case domain.InvoicePaid:
		notificationType = domain.NotificationSuccess
		message = fmt.Sprintf("تم سداد الفاتورة %s بمبلغ %s", invoice.InvoiceNumber, invoice.TotalAmount)
	case domain.InvoiceCancelled:
		notificationType = domain.NotificationWarning
		message = fmt.Sprintf("تم إلغاء الفاتورة %s", invoice.InvoiceNumber)
	default:
		notificationType = domain.NotificationInfo
		message = fmt.Sprintf("تم إرسال الفاتورة %s", invoice.InvoiceNumber)
	}

	if err := s.notificationSvc.Notify(ctx, invoice.CreatedBy, "تحديث فاتورة", message, notificationType); err != nil {
		s.LogError(ctx, err, "Failed to notify invoice status change",
			slog.String("invoice_id", invoice.InvoiceID))
	}
}
