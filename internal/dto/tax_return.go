package dto

import (
	"encoding/json"
	"strings"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

type TaxReturnRequest struct {
	Company    string      `form:"company" json:"company"`
	TaxPeriod  string      `form:"tax_period" json:"tax_period"`
	RevenueUSD json.Number `form:"revenue_usd" json:"revenue_usd"`
	RevenueLRD json.Number `form:"revenue_lrd" json:"revenue_lrd"`
	TaxDueUSD  json.Number `form:"tax_due_usd" json:"tax_due_usd"`
	TaxDueLRD  json.Number `form:"tax_due_lrd" json:"tax_due_lrd"`
}

func (r TaxReturnRequest) ToDomain() (domain.TaxReturn, error) {
	out := domain.TaxReturn{
		Company:   strings.TrimSpace(r.Company),
		TaxPeriod: strings.TrimSpace(r.TaxPeriod),
	}
	var err error
	if out.RevenueUSD, err = parseMoney("revenue_usd", r.RevenueUSD); err != nil {
		return domain.TaxReturn{}, err
	}
	if out.RevenueLRD, err = parseMoney("revenue_lrd", r.RevenueLRD); err != nil {
		return domain.TaxReturn{}, err
	}
	if out.TaxDueUSD, err = parseMoney("tax_due_usd", r.TaxDueUSD); err != nil {
		return domain.TaxReturn{}, err
	}
	if out.TaxDueLRD, err = parseMoney("tax_due_lrd", r.TaxDueLRD); err != nil {
		return domain.TaxReturn{}, err
	}
	return out, nil
}

type TaxReturnResponse struct {
	ReturnID   string `json:"return_id"`
	Company    string `json:"company"`
	TaxPeriod  string `json:"tax_period"`
	RevenueUSD string `json:"revenue_usd"`
	RevenueLRD string `json:"revenue_lrd"`
	TaxDueUSD  string `json:"tax_due_usd"`
	TaxDueLRD  string `json:"tax_due_lrd"`
	FiledDate  string `json:"filed_date"`
	FiledBy    string `json:"filed_by"`
}

func ToTaxReturnResponse(r domain.TaxReturn) TaxReturnResponse {
	return TaxReturnResponse{
		ReturnID:   r.Ref(),
		Company:    r.Company,
		TaxPeriod:  r.TaxPeriod,
		RevenueUSD: money(r.RevenueUSD),
		RevenueLRD: money(r.RevenueLRD),
		TaxDueUSD:  money(r.TaxDueUSD),
		TaxDueLRD:  money(r.TaxDueLRD),
		FiledDate:  date(r.FiledDate),
		FiledBy:    r.FiledBy,
	}
}

func TaxReturnForm() FormResponse {
	return FormResponse{
		Title:  "Submit Tax Return",
		Action: "/tax_audit/submit",
		Method: "POST",
		Fields: []FormField{
			{Name: "company", Label: "Company", Type: "text", Required: true},
			{Name: "tax_period", Label: "Tax Period", Type: "text", Required: true},
			{Name: "revenue_usd", Label: "Revenue (USD)", Type: "number", Required: true},
			{Name: "revenue_lrd", Label: "Revenue (LRD)", Type: "number", Required: true},
			{Name: "tax_due_usd", Label: "Tax Due (USD)", Type: "number", Required: true},
			{Name: "tax_due_lrd", Label: "Tax Due (LRD)", Type: "number", Required: true},
		},
	}
}
