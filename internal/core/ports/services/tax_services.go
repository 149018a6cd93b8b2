package services

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/SscSPs/tax_compliance_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
)

// VATCalculator computes per-country VAT.
type VATCalculator interface {
	CalculateVAT(ctx context.Context, country string, amount decimal.Decimal) (taxcalc.VATResult, error)
}

// GSTCalculator computes GST and records every computation.
type GSTCalculator interface {
	CalculateGST(ctx context.Context, actor domain.User, req domain.GSTRequest) (domain.GSTCalculation, error)

	// BulkCalculateGST computes every request or none; results keep input order.
	BulkCalculateGST(ctx context.Context, actor domain.User, reqs []domain.GSTRequest) ([]domain.GSTCalculation, error)

	GSTRates() map[string]decimal.Decimal
}

// GSTHistoryReader reads the GST audit trail.
type GSTHistoryReader interface {
	ListCalculations(ctx context.Context) ([]domain.GSTCalculation, error)
	// ListCalculationsPage pages newest first. An empty pageToken starts at
	// the newest record; the returned token is empty on the last page.
	ListCalculationsPage(ctx context.Context, limit int, pageToken string) ([]domain.GSTCalculation, string, error)
	GetCalculation(ctx context.Context, id int64) (domain.GSTCalculation, error)
}

// TaxSvcFacade combines all tax calculation interfaces.
type TaxSvcFacade interface {
	VATCalculator
	GSTCalculator
	GSTHistoryReader
}
