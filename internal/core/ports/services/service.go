package services

import "github.com/SscSPs/tax_compliance_app/internal/core/domain"

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Auth            AuthSvcFacade
	Compliance      LedgerSvc[domain.ComplianceRecord]
	TaxReturn       LedgerSvc[domain.TaxReturn]
	TransferPricing LedgerSvc[domain.TransferPricingAnalysis]
	Risk            LedgerSvc[domain.RiskAssessment]
	Tax             TaxSvcFacade
	Export          ExportSvc
}
