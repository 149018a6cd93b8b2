// Package taxcalc holds the pure GST and VAT arithmetic.
//
// Monetary results are rounded to 2 decimal places, half away from zero
// (decimal.Round), which is ordinary half-up for the non-negative amounts
// accepted here.
package taxcalc

import (
	"strings"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

// Breakdown is the net/GST/total split of one amount. Net+GST always equals Total.
type Breakdown struct {
	Net   decimal.Decimal `json:"net"`
	GST   decimal.Decimal `json:"gst"`
	Total decimal.Decimal `json:"total"`
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}

func checkInputs(amount, rate decimal.Decimal) error {
	if amount.IsNegative() {
		return apperrors.NewDomainError("amount_non_negative", "amount must not be negative")
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return apperrors.NewDomainError("rate_range", "rate must be between 0 and 1")
	}
	return nil
}

// Exclusive adds GST on top of a net amount.
func Exclusive(net, rate decimal.Decimal) (Breakdown, error) {
	if err := checkInputs(net, rate); err != nil {
		return Breakdown{}, err
	}
	n := round(net)
	gst := round(n.Mul(rate))
	return Breakdown{Net: n, GST: gst, Total: n.Add(gst)}, nil
}

// Inclusive extracts the GST contained in a gross amount.
func Inclusive(gross, rate decimal.Decimal) (Breakdown, error) {
	if err := checkInputs(gross, rate); err != nil {
		return Breakdown{}, err
	}
	g := round(gross)
	net := round(g.DivRound(decimal.NewFromInt(1).Add(rate), 8))
	return Breakdown{Net: net, GST: g.Sub(net), Total: g}, nil
}

// DefaultResourceType is used when a resource type is empty or unknown.
const DefaultResourceType = "standard"

var gstRates = map[string]decimal.Decimal{
	DefaultResourceType:  decimal.RequireFromString("0.10"),
	"mining":             decimal.RequireFromString("0.10"),
	"forestry":           decimal.RequireFromString("0.10"),
	"petroleum":          decimal.RequireFromString("0.10"),
	"agriculture":        decimal.RequireFromString("0.10"),
	"manufacturing":      decimal.RequireFromString("0.10"),
	"telecommunications": decimal.RequireFromString("0.15"),
	"hospitality":        decimal.RequireFromString("0.15"),
	"luxury":             decimal.RequireFromString("0.15"),
}

var exemptCategories = map[string]struct{}{
	"basic_food":         {},
	"medical":            {},
	"education":          {},
	"financial_services": {},
}

var zeroRatedCategories = map[string]struct{}{
	"export":     {},
	"diplomatic": {},
}

func normalize(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// IsExempt reports whether a category carries no GST at all.
func IsExempt(category string) bool {
	_, ok := exemptCategories[normalize(category)]
	return ok
}

// IsZeroRated reports whether a category is taxable at 0%.
func IsZeroRated(category string) bool {
	_, ok := zeroRatedCategories[normalize(category)]
	return ok
}

// ResolveRate picks the GST rate for a resource type and item category.
// Exempt and zero-rated categories win over the resource type.
func ResolveRate(resourceType, category string) decimal.Decimal {
	if IsExempt(category) || IsZeroRated(category) {
		return decimal.Zero
	}
	if rate, ok := gstRates[normalize(resourceType)]; ok {
		return rate
	}
	return gstRates[DefaultResourceType]
}

// GSTRates returns a copy of the resource type rate table.
func GSTRates() map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(gstRates))
	for k, v := range gstRates {
		out[k] = v
	}
	return out
}

var vatRates = map[string]decimal.Decimal{
	"US": decimal.RequireFromString("0.07"),
	"UK": decimal.RequireFromString("0.20"),
	"DE": decimal.RequireFromString("0.19"),
	"FR": decimal.RequireFromString("0.20"),
	"IN": decimal.RequireFromString("0.18"),
	"CA": decimal.RequireFromString("0.05"),
}

// VATRate looks up a country's VAT rate. Unknown countries are untaxed.
func VATRate(country string) decimal.Decimal {
	if rate, ok := vatRates[strings.ToUpper(strings.TrimSpace(country))]; ok {
		return rate
	}
	return decimal.Zero
}

// VATResult is the outcome of a per-country VAT calculation.
type VATResult struct {
	Country string          `json:"country"`
	Amount  decimal.Decimal `json:"amount"`
	Rate    decimal.Decimal `json:"rate"`
	Tax     decimal.Decimal `json:"tax"`
	Total   decimal.Decimal `json:"total"`
}

// CalculateVAT applies the country's VAT rate to amount.
func CalculateVAT(country string, amount decimal.Decimal) (VATResult, error) {
	code := strings.ToUpper(strings.TrimSpace(country))
	if code == "" {
		return VATResult{}, apperrors.NewValidationError("country", "country is required")
	}
	if amount.IsNegative() {
		return VATResult{}, apperrors.NewDomainError("amount_non_negative", "amount must not be negative")
	}
	rate := VATRate(code)
	tax := round(amount.Mul(rate))
	return VATResult{
		Country: code,
		Amount:  amount,
		Rate:    rate,
		Tax:     tax,
		Total:   round(amount.Add(tax)),
	}, nil
}
