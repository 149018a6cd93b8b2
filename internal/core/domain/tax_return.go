package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxReturnRefPrefix prefixes tax return display references (TR001).
const TaxReturnRefPrefix = "TR"

// TaxReturn is a filed return for one company and period, in USD and LRD.
type TaxReturn struct {
	ID         int64           `json:"-"`
	Company    string          `json:"company" validate:"required,max=100"`
	TaxPeriod  string          `json:"tax_period" validate:"required,max=20"`
	RevenueUSD decimal.Decimal `json:"revenue_usd"`
	RevenueLRD decimal.Decimal `json:"revenue_lrd"`
	TaxDueUSD  decimal.Decimal `json:"tax_due_usd"`
	TaxDueLRD  decimal.Decimal `json:"tax_due_lrd"`
	FiledDate  time.Time       `json:"filed_date"`
	FiledBy    string          `json:"filed_by" validate:"required"`
}

// Ref is the public reference, e.g. TR001.
func (r TaxReturn) Ref() string { return FormatRef(TaxReturnRefPrefix, r.ID) }

func (TaxReturn) ExportHeader() []string {
	return []string{"return_id", "company", "tax_period", "revenue_usd", "revenue_lrd", "tax_due_usd", "tax_due_lrd", "filed_date", "filed_by"}
}

func (r TaxReturn) ExportRow() []string {
	return []string{
		r.Ref(),
		r.Company,
		r.TaxPeriod,
		formatMoney(r.RevenueUSD),
		formatMoney(r.RevenueLRD),
		formatMoney(r.TaxDueUSD),
		formatMoney(r.TaxDueLRD),
		formatDate(r.FiledDate),
		r.FiledBy,
	}
}
