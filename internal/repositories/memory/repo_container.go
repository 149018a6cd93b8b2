package memory

import (
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires in-memory repositories. When seed is true the
// specialist ledgers start with the same sample records as a fresh database.
func NewRepositoryProvider(seed bool) portsrepo.RepositoryProvider {
	provider := portsrepo.RepositoryProvider{
		UserRepo:            NewUserRepository(),
		ComplianceRepo:      NewComplianceRepository(),
		TaxReturnRepo:       NewTaxReturnRepository(),
		TransferPricingRepo: NewTransferPricingRepository(),
		RiskRepo:            NewRiskRepository(),
		GSTCalculationRepo:  NewGSTCalculationRepository(),
	}
	if seed {
		provider.TaxReturnRepo = NewTaxReturnRepository(SampleTaxReturns()...)
		provider.TransferPricingRepo = NewTransferPricingRepository(SampleTransferPricing()...)
		provider.RiskRepo = NewRiskRepository(SampleRiskAssessments()...)
	}
	return provider
}
