package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/SscSPs/tax_compliance_app/internal/utils/taxcalc"
	"github.com/shopspring/decimal"
)

// VATRequest is accepted from the form, the query string or JSON.
type VATRequest struct {
	Country string      `form:"country" json:"country"`
	Amount  json.Number `form:"amount" json:"amount"`
}

func (r VATRequest) Parse() (string, decimal.Decimal, error) {
	amount, err := parseMoney("amount", r.Amount)
	if err != nil {
		return "", decimal.Zero, err
	}
	return strings.TrimSpace(r.Country), amount, nil
}

type VATResponse struct {
	Country string `json:"country"`
	Amount  string `json:"amount"`
	Rate    string `json:"rate"`
	Tax     string `json:"tax"`
	Total   string `json:"total"`
}

func ToVATResponse(v taxcalc.VATResult) VATResponse {
	return VATResponse{
		Country: v.Country,
		Amount:  money(v.Amount),
		Rate:    v.Rate.String(),
		Tax:     money(v.Tax),
		Total:   money(v.Total),
	}
}

type GSTCalculationRequest struct {
	CompanyName     string      `form:"company_name" json:"company_name"`
	TransactionType string      `form:"transaction_type" json:"transaction_type"`
	ResourceType    string      `form:"resource_type" json:"resource_type"`
	ItemCategory    string      `form:"item_category" json:"item_category"`
	Amount          json.Number `form:"amount" json:"amount"`
	Notes           string      `form:"notes" json:"notes"`
}

func (r GSTCalculationRequest) ToDomain() (domain.GSTRequest, error) {
	amount, err := parseMoney("amount", r.Amount)
	if err != nil {
		return domain.GSTRequest{}, err
	}
	mode := domain.GSTMode(strings.TrimSpace(r.TransactionType))
	if parsed, ok := domain.ParseGSTMode(r.TransactionType); ok {
		mode = parsed
	}
	return domain.GSTRequest{
		CompanyName:     strings.TrimSpace(r.CompanyName),
		TransactionType: mode,
		ResourceType:    strings.TrimSpace(r.ResourceType),
		ItemCategory:    strings.TrimSpace(r.ItemCategory),
		Amount:          amount,
		Notes:           r.Notes,
	}, nil
}

// BulkGSTRequest holds a batch of calculations that succeed or fail together.
type BulkGSTRequest struct {
	Transactions []GSTCalculationRequest `json:"transactions"`
}

// ToDomain converts every item, naming the first bad index.
func (r BulkGSTRequest) ToDomain() ([]domain.GSTRequest, error) {
	out := make([]domain.GSTRequest, 0, len(r.Transactions))
	for i, item := range r.Transactions {
		req, err := item.ToDomain()
		if err != nil {
			return nil, apperrors.NewValidationError(fmt.Sprintf("transactions[%d]", i), err.Error())
		}
		out = append(out, req)
	}
	return out, nil
}

type GSTCalculationResponse struct {
	ID              int64     `json:"id"`
	CompanyName     string    `json:"company_name"`
	TransactionType string    `json:"transaction_type"`
	ResourceType    string    `json:"resource_type"`
	ItemCategory    string    `json:"item_category"`
	GrossAmount     string    `json:"gross_amount"`
	GSTRate         string    `json:"gst_rate"`
	GSTAmount       string    `json:"gst_amount"`
	NetAmount       string    `json:"net_amount"`
	TotalAmount     string    `json:"total_amount"`
	CalculationDate time.Time `json:"calculation_date"`
	CalculatedBy    string    `json:"calculated_by"`
	Notes           string    `json:"notes,omitempty"`
}

func ToGSTCalculationResponse(g domain.GSTCalculation) GSTCalculationResponse {
	return GSTCalculationResponse{
		ID:              g.ID,
		CompanyName:     g.CompanyName,
		TransactionType: string(g.TransactionType),
		ResourceType:    g.ResourceType,
		ItemCategory:    g.ItemCategory,
		GrossAmount:     money(g.GrossAmount),
		GSTRate:         g.GSTRate.String(),
		GSTAmount:       money(g.GSTAmount),
		NetAmount:       money(g.NetAmount),
		TotalAmount:     money(g.TotalAmount),
		CalculationDate: g.CalculationDate,
		CalculatedBy:    g.CalculatedBy,
		Notes:           g.Notes,
	}
}

func ToListGSTCalculationResponse(calcs []domain.GSTCalculation) []GSTCalculationResponse {
	res := make([]GSTCalculationResponse, len(calcs))
	for i, c := range calcs {
		res[i] = ToGSTCalculationResponse(c)
	}
	return res
}

// BulkGSTResponse reports a batch outcome.
type BulkGSTResponse struct {
	Success bool                     `json:"success"`
	Results []GSTCalculationResponse `json:"results,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

// ToGSTRatesResponse renders the rate table for clients.
func ToGSTRatesResponse(rates map[string]decimal.Decimal) map[string]string {
	out := make(map[string]string, len(rates))
	for k, v := range rates {
		out[k] = v.String()
	}
	return out
}
