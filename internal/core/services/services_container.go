package services

import (
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
)

// Infrastructure carries the collaborators that are not ledgers.
type Infrastructure struct {
	Sessions portsrepo.SessionStore
	Locker   portsrepo.Locker
	// Uploader is optional.
	Uploader Uploader
	// AuthOptions are applied to the auth service, mostly by tests.
	AuthOptions []AuthOption
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, infra Infrastructure) *portssvc.ServiceContainer {
	exportOpts := []ExportOption{WithLocker(infra.Locker)}
	if infra.Uploader != nil {
		exportOpts = append(exportOpts, WithUploader(infra.Uploader))
	}

	return &portssvc.ServiceContainer{
		Auth:            NewAuthService(cfg, repos.UserRepo, infra.Sessions, infra.AuthOptions...),
		Compliance:      NewComplianceService(repos.ComplianceRepo),
		TaxReturn:       NewTaxReturnService(repos.TaxReturnRepo),
		TransferPricing: NewTransferPricingService(repos.TransferPricingRepo),
		Risk:            NewRiskService(repos.RiskRepo),
		Tax:             NewTaxService(repos.GSTCalculationRepo),
		Export:          NewExportService(cfg.ExportDir, repos, exportOpts...),
	}
}
