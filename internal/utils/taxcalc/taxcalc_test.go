package taxcalc

import (
	"testing"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "want %s, got %s", want, got)
}

func TestExclusive(t *testing.T) {
	b, err := Exclusive(d("1000"), d("0.15"))
	require.NoError(t, err)
	assertMoney(t, "1000.00", b.Net)
	assertMoney(t, "150.00", b.GST)
	assertMoney(t, "1150.00", b.Total)
}

func TestInclusive(t *testing.T) {
	b, err := Inclusive(d("1150"), d("0.15"))
	require.NoError(t, err)
	assertMoney(t, "1000.00", b.Net)
	assertMoney(t, "150.00", b.GST)
	assertMoney(t, "1150.00", b.Total)
}

func TestRoundingIsHalfUp(t *testing.T) {
	b, err := Exclusive(d("0.05"), d("0.10"))
	require.NoError(t, err)
	assertMoney(t, "0.01", b.GST)

	b, err = Exclusive(d("10.005"), d("0"))
	require.NoError(t, err)
	assertMoney(t, "10.01", b.Net)
}

func TestBreakdownAlwaysBalances(t *testing.T) {
	amounts := []string{"0", "0.01", "0.99", "1", "9.99", "33.33", "100", "123.45", "999.995", "1150", "250000.37", "25000000"}
	rates := []string{"0", "0.05", "0.07", "0.10", "0.15", "0.18", "0.19", "0.2", "0.333", "1"}

	for _, a := range amounts {
		for _, r := range rates {
			ex, err := Exclusive(d(a), d(r))
			require.NoError(t, err)
			assert.Truef(t, ex.Net.Add(ex.GST).Equal(ex.Total), "exclusive(%s,%s) unbalanced", a, r)

			in, err := Inclusive(d(a), d(r))
			require.NoError(t, err)
			assert.Truef(t, in.Net.Add(in.GST).Equal(in.Total), "inclusive(%s,%s) unbalanced", a, r)

			back, err := Exclusive(in.Net, d(r))
			require.NoError(t, err)
			diff := back.Total.Sub(round(d(a))).Abs()
			assert.Truef(t, diff.LessThanOrEqual(d("0.01")),
				"round trip of %s at %s drifted to %s", a, r, back.Total)
		}
	}
}

func TestCalculationRejectsOutOfRangeInputs(t *testing.T) {
	_, err := Exclusive(d("-1"), d("0.1"))
	assert.ErrorIs(t, err, apperrors.ErrDomain)

	_, err = Inclusive(d("10"), d("1.5"))
	assert.ErrorIs(t, err, apperrors.ErrDomain)

	_, err = Inclusive(d("10"), d("-0.1"))
	assert.ErrorIs(t, err, apperrors.ErrDomain)
}

func TestResolveRate(t *testing.T) {
	tests := []struct {
		resource string
		category string
		want     string
	}{
		{"mining", "", "0.10"},
		{"Telecommunications", "", "0.15"},
		{"hospitality", "general", "0.15"},
		{"unobtainium", "", "0.10"},
		{"", "", "0.10"},
		{"hospitality", "medical", "0"},
		{"luxury", "EXPORT", "0"},
		{"mining", " diplomatic ", "0"},
		{"petroleum", "financial_services", "0"},
	}
	for _, tt := range tests {
		got := ResolveRate(tt.resource, tt.category)
		assert.Truef(t, d(tt.want).Equal(got), "ResolveRate(%q,%q) = %s, want %s", tt.resource, tt.category, got, tt.want)
	}
}

func TestGSTRatesReturnsCopy(t *testing.T) {
	rates := GSTRates()
	rates[DefaultResourceType] = d("0.99")
	assertMoney(t, "0.10", ResolveRate("", ""))
}

func TestVATRate(t *testing.T) {
	assertMoney(t, "0.07", VATRate("us"))
	assertMoney(t, "0.20", VATRate("UK"))
	assertMoney(t, "0", VATRate("ZZ"))
	assertMoney(t, "0", VATRate(""))
}

func TestCalculateVAT(t *testing.T) {
	res, err := CalculateVAT("us", d("100"))
	require.NoError(t, err)
	assert.Equal(t, "US", res.Country)
	assertMoney(t, "7.00", res.Tax)
	assertMoney(t, "107.00", res.Total)

	res, err = CalculateVAT("xx", d("55.5"))
	require.NoError(t, err)
	assertMoney(t, "0", res.Tax)
	assertMoney(t, "55.50", res.Total)

	_, err = CalculateVAT(" ", d("1"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = CalculateVAT("DE", d("-1"))
	assert.ErrorIs(t, err, apperrors.ErrDomain)
}
