package dto

import (
	"encoding/json"
	"strings"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

type TransferPricingRequest struct {
	Company             string      `form:"company" json:"company"`
	TransactionType     string      `form:"transaction_type" json:"transaction_type"`
	RelatedParty        string      `form:"related_party" json:"related_party"`
	TransactionValueUSD json.Number `form:"transaction_value_usd" json:"transaction_value_usd"`
	ArmLengthPriceUSD   json.Number `form:"arm_length_price_usd" json:"arm_length_price_usd"`
	AdjustmentRequired  string      `form:"adjustment_required" json:"adjustment_required"`
	AnalysisMethod      string      `form:"analysis_method" json:"analysis_method"`
}

func (r TransferPricingRequest) ToDomain() (domain.TransferPricingAnalysis, error) {
	out := domain.TransferPricingAnalysis{
		Company:            strings.TrimSpace(r.Company),
		TransactionType:    strings.TrimSpace(r.TransactionType),
		RelatedParty:       strings.TrimSpace(r.RelatedParty),
		AdjustmentRequired: parseFlag(r.AdjustmentRequired),
		AnalysisMethod:     strings.TrimSpace(r.AnalysisMethod),
	}
	var err error
	if out.TransactionValueUSD, err = parseMoney("transaction_value_usd", r.TransactionValueUSD); err != nil {
		return domain.TransferPricingAnalysis{}, err
	}
	if out.ArmLengthPriceUSD, err = parseMoney("arm_length_price_usd", r.ArmLengthPriceUSD); err != nil {
		return domain.TransferPricingAnalysis{}, err
	}
	return out, nil
}

type TransferPricingResponse struct {
	AnalysisID          string `json:"analysis_id"`
	Company             string `json:"company"`
	TransactionType     string `json:"transaction_type"`
	RelatedParty        string `json:"related_party"`
	TransactionValueUSD string `json:"transaction_value_usd"`
	ArmLengthPriceUSD   string `json:"arm_length_price_usd"`
	PriceGapUSD         string `json:"price_gap_usd"`
	AdjustmentRequired  bool   `json:"adjustment_required"`
	AnalysisMethod      string `json:"analysis_method"`
	Analyst             string `json:"analyst"`
	SubmittedDate       string `json:"submitted_date"`
}

func ToTransferPricingResponse(a domain.TransferPricingAnalysis) TransferPricingResponse {
	return TransferPricingResponse{
		AnalysisID:          a.Ref(),
		Company:             a.Company,
		TransactionType:     a.TransactionType,
		RelatedParty:        a.RelatedParty,
		TransactionValueUSD: money(a.TransactionValueUSD),
		ArmLengthPriceUSD:   money(a.ArmLengthPriceUSD),
		PriceGapUSD:         money(a.PriceGap()),
		AdjustmentRequired:  a.AdjustmentRequired,
		AnalysisMethod:      a.AnalysisMethod,
		Analyst:             a.Analyst,
		SubmittedDate:       date(a.SubmittedDate),
	}
}

func TransferPricingForm() FormResponse {
	return FormResponse{
		Title:  "Submit Transfer Pricing Analysis",
		Action: "/transfer_pricing/submit",
		Method: "POST",
		Fields: []FormField{
			{Name: "company", Label: "Company", Type: "text", Required: true},
			{Name: "transaction_type", Label: "Transaction Type", Type: "text", Required: true},
			{Name: "related_party", Label: "Related Party", Type: "text", Required: true},
			{Name: "transaction_value_usd", Label: "Transaction Value (USD)", Type: "number", Required: true},
			{Name: "arm_length_price_usd", Label: "Arm's Length Price (USD)", Type: "number", Required: true},
			{Name: "adjustment_required", Label: "Adjustment Required", Type: "select", Options: []string{"True", "False"}},
			{Name: "analysis_method", Label: "Analysis Method", Type: "text", Required: true},
		},
	}
}
