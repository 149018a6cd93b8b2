package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// TransferPricingRefPrefix prefixes analysis display references (TP001).
const TransferPricingRefPrefix = "TP"

// TransferPricingAnalysis compares a related-party price with its arm's-length benchmark.
type TransferPricingAnalysis struct {
	ID                  int64           `json:"-"`
	Company             string          `json:"company" validate:"required,max=100"`
	TransactionType     string          `json:"transaction_type" validate:"required,max=100"`
	RelatedParty        string          `json:"related_party" validate:"required,max=100"`
	TransactionValueUSD decimal.Decimal `json:"transaction_value_usd"`
	ArmLengthPriceUSD   decimal.Decimal `json:"arm_length_price_usd"`
	AdjustmentRequired  bool            `json:"adjustment_required"`
	AnalysisMethod      string          `json:"analysis_method" validate:"required,max=100"`
	Analyst             string          `json:"analyst" validate:"required"`
	SubmittedDate       time.Time       `json:"submitted_date"`
}

// Ref is the public reference, e.g. TP001.
func (a TransferPricingAnalysis) Ref() string { return FormatRef(TransferPricingRefPrefix, a.ID) }

// PriceGap is the arm's-length price minus the transaction value.
func (a TransferPricingAnalysis) PriceGap() decimal.Decimal {
	return a.ArmLengthPriceUSD.Sub(a.TransactionValueUSD)
}

func (TransferPricingAnalysis) ExportHeader() []string {
	return []string{"analysis_id", "company", "transaction_type", "related_party", "transaction_value_usd", "arm_length_price_usd", "adjustment_required", "analysis_method", "analyst", "submitted_date"}
}

func (a TransferPricingAnalysis) ExportRow() []string {
	return []string{
		a.Ref(),
		a.Company,
		a.TransactionType,
		a.RelatedParty,
		formatMoney(a.TransactionValueUSD),
		formatMoney(a.ArmLengthPriceUSD),
		strconv.FormatBool(a.AdjustmentRequired),
		a.AnalysisMethod,
		a.Analyst,
		formatDate(a.SubmittedDate),
	}
}
