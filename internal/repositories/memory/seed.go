package memory

import (
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleTaxReturns mirrors the TR001 row inserted by the seed migration.
func SampleTaxReturns() []domain.TaxReturn {
	return []domain.TaxReturn{{
		Company:    "Liberia Mining Co.",
		TaxPeriod:  "2025-Q1",
		RevenueUSD: decimal.NewFromInt(5000000),
		RevenueLRD: decimal.NewFromInt(950000000),
		TaxDueUSD:  decimal.NewFromInt(500000),
		TaxDueLRD:  decimal.NewFromInt(95000000),
		FiledDate:  day(2025, time.April, 15),
		FiledBy:    "tax_auditor_user",
	}}
}

// SampleTransferPricing mirrors the TP001 row inserted by the seed migration.
func SampleTransferPricing() []domain.TransferPricingAnalysis {
	return []domain.TransferPricingAnalysis{{
		Company:             "Liberia Mining Co.",
		TransactionType:     "Sale of Iron Ore",
		RelatedParty:        "Parent Company",
		TransactionValueUSD: decimal.NewFromInt(25000000),
		ArmLengthPriceUSD:   decimal.NewFromInt(26000000),
		AdjustmentRequired:  true,
		AnalysisMethod:      "Comparable Uncontrolled Price",
		Analyst:             "analyst_user",
		SubmittedDate:       day(2025, time.April, 20),
	}}
}

// SampleRiskAssessments mirrors the RISK001 row inserted by the seed migration.
func SampleRiskAssessments() []domain.RiskAssessment {
	return []domain.RiskAssessment{{
		Company:        "Liberia Mining Co.",
		RiskType:       "Tax Compliance Risk",
		RiskLevel:      "High",
		Description:    "Significant decline in reported revenue",
		MitigationPlan: "Conduct detailed audit within 30 days",
		AssessedBy:     "risk_analyst_user",
		AssessedDate:   day(2025, time.April, 10),
	}}
}
