package repositories

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// LedgerReader reads an append-only ledger of T.
type LedgerReader[T any] interface {
	// FindByID returns apperrors.ErrNotFound for an unknown id.
	FindByID(ctx context.Context, id int64) (T, error)

	// List returns every record, newest first.
	List(ctx context.Context) ([]T, error)
}

// LedgerWriter appends to a ledger of T.
type LedgerWriter[T any] interface {
	// Append assigns a fresh id, stores the record and returns it as stored.
	Append(ctx context.Context, record T) (T, error)
}

// LedgerRepository combines ledger reads and writes.
type LedgerRepository[T any] interface {
	LedgerReader[T]
	LedgerWriter[T]
}

// ComplianceRepository stores compliance checks.
type ComplianceRepository = LedgerRepository[domain.ComplianceRecord]

// TaxReturnRepository stores filed tax returns.
type TaxReturnRepository = LedgerRepository[domain.TaxReturn]

// TransferPricingRepository stores transfer pricing analyses.
type TransferPricingRepository = LedgerRepository[domain.TransferPricingAnalysis]

// RiskRepository stores risk assessments.
type RiskRepository = LedgerRepository[domain.RiskAssessment]

// GSTCalculationRepository stores the GST audit trail.
type GSTCalculationRepository interface {
	LedgerRepository[domain.GSTCalculation]

	// AppendBatch stores all records or none.
	AppendBatch(ctx context.Context, records []domain.GSTCalculation) ([]domain.GSTCalculation, error)

	// ListPage returns up to limit records with id below beforeID, newest
	// first. beforeID 0 starts from the newest record.
	ListPage(ctx context.Context, beforeID int64, limit int) ([]domain.GSTCalculation, error)
}
