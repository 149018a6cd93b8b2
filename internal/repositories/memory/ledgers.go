package memory

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
)

// NewComplianceRepository returns an empty compliance ledger.
func NewComplianceRepository(seed ...domain.ComplianceRecord) *Ledger[domain.ComplianceRecord] {
	return NewLedger(
		func(r domain.ComplianceRecord) int64 { return r.ID },
		func(r *domain.ComplianceRecord, id int64) { r.ID = id },
		seed...,
	)
}

// NewTaxReturnRepository returns a tax return ledger holding seed.
func NewTaxReturnRepository(seed ...domain.TaxReturn) *Ledger[domain.TaxReturn] {
	return NewLedger(
		func(r domain.TaxReturn) int64 { return r.ID },
		func(r *domain.TaxReturn, id int64) { r.ID = id },
		seed...,
	)
}

// NewTransferPricingRepository returns a transfer pricing ledger holding seed.
func NewTransferPricingRepository(seed ...domain.TransferPricingAnalysis) *Ledger[domain.TransferPricingAnalysis] {
	return NewLedger(
		func(a domain.TransferPricingAnalysis) int64 { return a.ID },
		func(a *domain.TransferPricingAnalysis, id int64) { a.ID = id },
		seed...,
	)
}

// NewRiskRepository returns a risk assessment ledger holding seed.
func NewRiskRepository(seed ...domain.RiskAssessment) *Ledger[domain.RiskAssessment] {
	return NewLedger(
		func(r domain.RiskAssessment) int64 { return r.ID },
		func(r *domain.RiskAssessment, id int64) { r.ID = id },
		seed...,
	)
}

// GSTCalculationRepository is the in-memory GST audit trail.
type GSTCalculationRepository struct {
	*Ledger[domain.GSTCalculation]
}

var _ portsrepo.GSTCalculationRepository = (*GSTCalculationRepository)(nil)

// NewGSTCalculationRepository returns an empty GST ledger.
func NewGSTCalculationRepository() *GSTCalculationRepository {
	return &GSTCalculationRepository{
		Ledger: NewLedger(
			func(g domain.GSTCalculation) int64 { return g.ID },
			func(g *domain.GSTCalculation, id int64) { g.ID = id },
		),
	}
}

// AppendBatch implements portsrepo.GSTCalculationRepository.
func (r *GSTCalculationRepository) AppendBatch(ctx context.Context, records []domain.GSTCalculation) ([]domain.GSTCalculation, error) {
	return r.AppendAll(ctx, records)
}

// ListPage implements portsrepo.GSTCalculationRepository.
func (r *GSTCalculationRepository) ListPage(ctx context.Context, beforeID int64, limit int) ([]domain.GSTCalculation, error) {
	return r.ListBefore(ctx, beforeID, limit)
}
