package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GSTMode says whether an entered amount already contains GST.
type GSTMode string

const (
	GSTInclusive GSTMode = "inclusive"
	GSTExclusive GSTMode = "exclusive"
)

// ParseGSTMode accepts the mode case-insensitively.
func ParseGSTMode(s string) (GSTMode, bool) {
	switch GSTMode(strings.ToLower(strings.TrimSpace(s))) {
	case GSTInclusive:
		return GSTInclusive, true
	case GSTExclusive:
		return GSTExclusive, true
	}
	return "", false
}

// GSTRequest is one calculation to perform.
type GSTRequest struct {
	CompanyName     string          `json:"company_name" validate:"required,max=200"`
	TransactionType GSTMode         `json:"transaction_type" validate:"required,oneof=inclusive exclusive"`
	ResourceType    string          `json:"resource_type" validate:"max=50"`
	ItemCategory    string          `json:"item_category" validate:"max=50"`
	Amount          decimal.Decimal `json:"amount"`
	Notes           string          `json:"notes"`
}

// GSTCalculation is the persisted audit trail of a GST computation.
// GrossAmount is the amount as entered.
type GSTCalculation struct {
	ID              int64           `json:"id"`
	CompanyName     string          `json:"company_name"`
	TransactionType GSTMode         `json:"transaction_type"`
	ResourceType    string          `json:"resource_type"`
	ItemCategory    string          `json:"item_category"`
	GrossAmount     decimal.Decimal `json:"gross_amount"`
	GSTRate         decimal.Decimal `json:"gst_rate"`
	GSTAmount       decimal.Decimal `json:"gst_amount"`
	NetAmount       decimal.Decimal `json:"net_amount"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	CalculationDate time.Time       `json:"calculation_date"`
	CalculatedBy    string          `json:"calculated_by"`
	Notes           string          `json:"notes"`
}

func (GSTCalculation) ExportHeader() []string {
	return []string{"id", "company_name", "transaction_type", "resource_type", "item_category", "gross_amount", "gst_rate", "gst_amount", "net_amount", "total_amount", "calculation_date", "calculated_by", "notes"}
}

func (g GSTCalculation) ExportRow() []string {
	return []string{
		strconv.FormatInt(g.ID, 10),
		g.CompanyName,
		string(g.TransactionType),
		g.ResourceType,
		g.ItemCategory,
		formatMoney(g.GrossAmount),
		g.GSTRate.String(),
		formatMoney(g.GSTAmount),
		formatMoney(g.NetAmount),
		formatMoney(g.TotalAmount),
		g.CalculationDate.UTC().Format(time.RFC3339),
		g.CalculatedBy,
		g.Notes,
	}
}
