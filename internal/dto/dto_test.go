package dto

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxReturnRequestRejectsBadNumber(t *testing.T) {
	req := TaxReturnRequest{
		Company: "Acme", TaxPeriod: "2025-Q2",
		RevenueUSD: "1000", RevenueLRD: "abc", TaxDueUSD: "10", TaxDueLRD: "20",
	}

	_, err := req.ToDomain()

	require.ErrorIs(t, err, apperrors.ErrValidation)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "revenue_lrd", ve.Field)
}

func TestTaxReturnRequestMissingAmount(t *testing.T) {
	req := TaxReturnRequest{Company: "Acme", TaxPeriod: "2025-Q2", RevenueUSD: "1"}

	_, err := req.ToDomain()

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestComplianceRequestDate(t *testing.T) {
	rec, err := ComplianceRequest{Company: " Acme ", NextReviewDate: "2026-01-31"}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, "Acme", rec.Company)
	require.NotNil(t, rec.NextReviewDate)
	assert.Equal(t, "2026-01-31", rec.NextReviewDate.Format(domain.DateLayout))

	_, err = ComplianceRequest{NextReviewDate: "31/01/2026"}.ToDomain()
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestTransferPricingFlag(t *testing.T) {
	req := TransferPricingRequest{TransactionValueUSD: "1", ArmLengthPriceUSD: "2", AdjustmentRequired: "True"}
	a, err := req.ToDomain()
	require.NoError(t, err)
	assert.True(t, a.AdjustmentRequired)

	req.AdjustmentRequired = "False"
	a, err = req.ToDomain()
	require.NoError(t, err)
	assert.False(t, a.AdjustmentRequired)
}

func TestBulkGSTRequestNamesIndex(t *testing.T) {
	var req BulkGSTRequest
	require.NoError(t, json.Unmarshal([]byte(`{"transactions":[
		{"company_name":"A","transaction_type":"Exclusive","amount":100},
		{"company_name":"B","transaction_type":"inclusive"}
	]}`), &req))

	_, err := req.ToDomain()

	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "transactions[1]", ve.Field)
}

func TestGSTCalculationRequestNormalizesMode(t *testing.T) {
	got, err := GSTCalculationRequest{CompanyName: "A", TransactionType: " Inclusive ", Amount: "1150"}.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, domain.GSTInclusive, got.TransactionType)
	assert.Equal(t, "1150", got.Amount.String())
}

func TestParseMoneyRange(t *testing.T) {
	for _, raw := range []string{"1e3000000", "1000000000000000000", "-1000000000000000000", "1e-3000000", "0.000000001"} {
		_, err := parseMoney("amount", json.Number(raw))
		assert.ErrorIsf(t, err, apperrors.ErrValidation, "input %s", raw)
	}

	d, err := parseMoney("amount", json.Number("999999999999999999.99"))
	require.NoError(t, err)
	assert.Equal(t, "999999999999999999.99", d.String())

	d, err = parseMoney("amount", json.Number("1.5e2"))
	require.NoError(t, err)
	assert.Equal(t, "150", d.String())
}
