package services

import (
	"time"

	portsrepo "github.com/mizanapp/mizan_backend/internal/core/ports/repositories"
	portssvc "github.com/mizanapp/mizan_backend/internal/core/ports/services"
)

// NewServiceContainer wires every service with its dependencies. The
// organization service doubles as the authorizer for all other services.
func NewServiceContainer(repos portsrepo.RepositoryProvider, jwtSecret string, tokenDuration time.Duration) *portssvc.ServiceContainer {
	organizationSvc := NewOrganizationService(repos.OrganizationRepo)
	accountSvc := NewAccountService(repos.AccountRepo, organizationSvc)
	ledgerSvc := NewLedgerService(repos.EntryRepo, repos.AccountRepo, organizationSvc)
	reportingSvc := NewReportingService(repos.AccountRepo, organizationSvc)
	commandSvc := NewCommandService(ledgerSvc, accountSvc, reportingSvc)
	contactSvc := NewContactService(repos.ContactRepo, organizationSvc)
	notificationSvc := NewNotificationService(repos.NotificationRepo)
	invoiceSvc := NewInvoiceService(repos.InvoiceRepo, repos.ContactRepo, notificationSvc, organizationSvc)

	return &portssvc.ServiceContainer{
		AuthSvc:         NewAuthService(repos.UserRepo, jwtSecret, tokenDuration),
		UserSvc:         NewUserService(repos.UserRepo),
		OrganizationSvc: organizationSvc,
		AccountSvc:      accountSvc,
		LedgerSvc:       ledgerSvc,
		ReportingSvc:    reportingSvc,
		CommandSvc:      commandSvc,
		ContactSvc:      contactSvc,
		InvoiceSvc:      invoiceSvc,
		NotificationSvc: notificationSvc,
	}
}
