package pgsql

import (
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:            newPgxUserRepository(dbPool),
		ComplianceRepo:      newPgxComplianceRepository(dbPool),
		TaxReturnRepo:       newPgxTaxReturnRepository(dbPool),
		TransferPricingRepo: newPgxTransferPricingRepository(dbPool),
		RiskRepo:            newPgxRiskRepository(dbPool),
		GSTCalculationRepo:  newPgxGSTCalculationRepository(dbPool),
	}
}
