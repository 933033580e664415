package services

import (
	portsrepo "github.com/sarafcore/sarafcore_backend/internal/core/ports/repositories"
	portssvc "github.com/sarafcore/sarafcore_backend/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the given
// repositories and risk oracle. Wiring order matters only in that audit and
// config are dependencies of most other services.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, oracle portssvc.RiskOracle) *portssvc.ServiceContainer {
	auditSvc := NewAuditService(repos.AuditRepo)
	configSvc := NewConfigService(repos.ConfigRepo, auditSvc)
	customerSvc := NewCustomerService(repos.CustomerRepo, auditSvc)
	journalSvc := NewJournalService(repos.JournalRepo, repos.CustomerRepo, configSvc, auditSvc)
	summarySvc := NewSummaryService(repos.JournalRepo)
	userSvc := NewUserService(repos.UserRepo, auditSvc)
	amlSvc := NewAMLService(oracle)
	reportingSvc := NewReportingService(repos.JournalRepo, repos.CustomerRepo, repos.ReportRepo, configSvc, auditSvc)
	ratesSvc := NewRatesService()

	return &portssvc.ServiceContainer{
		Journal:   journalSvc,
		Summary:   summarySvc,
		Customer:  customerSvc,
		Config:    configSvc,
		Audit:     auditSvc,
		User:      userSvc,
		AML:       amlSvc,
		Reporting: reportingSvc,
		Rates:     ratesSvc,
	}
}
