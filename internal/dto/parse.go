package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Amounts are stored as NUMERIC(20,2).
const (
	maxMoneyLen      = 64
	maxMoneyScale    = 8
	maxIntegerDigits = 18
)

var moneyCeiling = decimal.New(1, maxIntegerDigits)

func parseMoney(field string, raw json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return decimal.Zero, apperrors.NewValidationError(field, field+" is required")
	}
	if len(s) > maxMoneyLen {
		return decimal.Zero, apperrors.NewValidationError(field, field+" is out of range")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError(field, field+" must be a number")
	}
	// Exponent first: comparing a huge exponent would expand the coefficient.
	if exp := d.Exponent(); exp < -maxMoneyScale || exp > maxIntegerDigits {
		return decimal.Zero, apperrors.NewValidationError(field, field+" is out of range")
	}
	if d.Abs().GreaterThanOrEqual(moneyCeiling) {
		return decimal.Zero, apperrors.NewValidationError(field, field+" is out of range")
	}
	return d, nil
}

func parseOptionalDate(field, raw string) (*time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return nil, apperrors.NewValidationError(field, field+" must be a date in YYYY-MM-DD format")
	}
	return &t, nil
}

// parseFlag accepts the checkbox and select spellings browsers send.
func parseFlag(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "on", "yes", "1":
		return true
	}
	return false
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
