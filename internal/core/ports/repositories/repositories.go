package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo            UserRepositoryFacade
	ComplianceRepo      ComplianceRepository
	TaxReturnRepo       TaxReturnRepository
	TransferPricingRepo TransferPricingRepository
	RiskRepo            RiskRepository
	GSTCalculationRepo  GSTCalculationRepository
}
