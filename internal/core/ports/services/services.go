package services

// ServiceContainer bundles every service facade for handler registration.
type ServiceContainer struct {
	AuthSvc         AuthSvcFacade
	UserSvc         UserSvcFacade
	OrganizationSvc OrganizationSvcFacade
	AccountSvc      AccountSvcFacade
	LedgerSvc       LedgerSvcFacade
	ReportingSvc    ReportingSvcFacade
	CommandSvc      CommandSvcFacade
	ContactSvc      ContactSvcFacade
	InvoiceSvc      InvoiceSvcFacade
	NotificationSvc NotificationSvcFacade
}
