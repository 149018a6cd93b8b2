package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/SscSPs/tax_compliance_app/internal/core/services"
	"github.com/SscSPs/tax_compliance_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

var gstActor = domain.User{Email: "clerk@example.com", Role: domain.RoleUser}

func TestCalculateVAT(t *testing.T) {
	svc := services.NewTaxService(memory.NewGSTCalculationRepository())

	res, err := svc.CalculateVAT(context.Background(), "us", dec("100"))
	require.NoError(t, err)
	assert.Equal(t, "US", res.Country)
	assertDecimal(t, "7.00", res.Tax)
	assertDecimal(t, "107.00", res.Total)

	res, err = svc.CalculateVAT(context.Background(), "Narnia", dec("100"))
	require.NoError(t, err)
	assertDecimal(t, "0", res.Tax)
	assertDecimal(t, "100", res.Total)

	_, err = svc.CalculateVAT(context.Background(), "UK", dec("-1"))
	assert.ErrorIs(t, err, apperrors.ErrDomain)
}

func TestCalculateGSTModes(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGSTCalculationRepository()
	svc := services.NewTaxService(repo)

	excl, err := svc.CalculateGST(ctx, gstActor, domain.GSTRequest{
		CompanyName: "Lone Star Cell", TransactionType: domain.GSTExclusive,
		ResourceType: "telecommunications", Amount: dec("1000"),
	})
	require.NoError(t, err)
	assertDecimal(t, "0.15", excl.GSTRate)
	assertDecimal(t, "1000.00", excl.NetAmount)
	assertDecimal(t, "150.00", excl.GSTAmount)
	assertDecimal(t, "1150.00", excl.TotalAmount)
	assert.Equal(t, gstActor.Email, excl.CalculatedBy)

	incl, err := svc.CalculateGST(ctx, gstActor, domain.GSTRequest{
		CompanyName: "Mamba Point Hotel", TransactionType: domain.GSTInclusive,
		ResourceType: "Hospitality", Amount: dec("1150"),
	})
	require.NoError(t, err)
	assertDecimal(t, "1000.00", incl.NetAmount)
	assertDecimal(t, "150.00", incl.GSTAmount)
	assertDecimal(t, "1150.00", incl.TotalAmount)
	assert.Equal(t, "hospitality", incl.ResourceType)

	assert.Equal(t, 2, repo.Len())
	history, err := svc.ListCalculations(ctx)
	require.NoError(t, err)
	assert.Equal(t, incl.ID, history[0].ID)

	got, err := svc.GetCalculation(ctx, excl.ID)
	require.NoError(t, err)
	assert.Equal(t, "Lone Star Cell", got.CompanyName)
}

func TestCalculateGSTExemptAndDefaults(t *testing.T) {
	svc := services.NewTaxService(memory.NewGSTCalculationRepository())

	exempt, err := svc.CalculateGST(context.Background(), gstActor, domain.GSTRequest{
		CompanyName: "JFK Hospital", TransactionType: domain.GSTExclusive,
		ResourceType: "luxury", ItemCategory: "MEDICAL", Amount: dec("200"),
	})
	require.NoError(t, err)
	assertDecimal(t, "0", exempt.GSTAmount)
	assertDecimal(t, "200.00", exempt.TotalAmount)

	unknown, err := svc.CalculateGST(context.Background(), gstActor, domain.GSTRequest{
		CompanyName: "Acme", TransactionType: domain.GSTExclusive, Amount: dec("100"),
	})
	require.NoError(t, err)
	assert.Equal(t, "standard", unknown.ResourceType)
	assertDecimal(t, "10.00", unknown.GSTAmount)
}

func TestCalculateGSTRejectsBadInput(t *testing.T) {
	repo := memory.NewGSTCalculationRepository()
	svc := services.NewTaxService(repo)

	_, err := svc.CalculateGST(context.Background(), gstActor, domain.GSTRequest{
		CompanyName: "Acme", TransactionType: domain.GSTExclusive, Amount: dec("-5"),
	})
	assert.ErrorIs(t, err, apperrors.ErrDomain)

	_, err = svc.CalculateGST(context.Background(), gstActor, domain.GSTRequest{
		TransactionType: domain.GSTExclusive, Amount: dec("5"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.CalculateGST(context.Background(), gstActor, domain.GSTRequest{
		CompanyName: "Acme", TransactionType: "gross", Amount: dec("5"),
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	assert.Equal(t, 0, repo.Len())
}

func TestBulkCalculateGST(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewGSTCalculationRepository()
	svc := services.NewTaxService(repo)

	_, err := svc.BulkCalculateGST(ctx, gstActor, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	bad := []domain.GSTRequest{
		{CompanyName: "A", TransactionType: domain.GSTExclusive, Amount: dec("10")},
		{CompanyName: "B", TransactionType: domain.GSTExclusive, Amount: dec("-10")},
	}
	_, err = svc.BulkCalculateGST(ctx, gstActor, bad)
	assert.ErrorIs(t, err, apperrors.ErrDomain, "a rule violation stays a domain error")
	assert.NotErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "transactions[1]")
	assert.Equal(t, 0, repo.Len(), "a failed batch stores nothing")

	unnamed := []domain.GSTRequest{
		{CompanyName: "A", TransactionType: domain.GSTExclusive, Amount: dec("10")},
		{TransactionType: domain.GSTExclusive, Amount: dec("10")},
	}
	_, err = svc.BulkCalculateGST(ctx, gstActor, unnamed)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "transactions[1]", ve.Field)
	assert.Equal(t, 0, repo.Len())

	good := []domain.GSTRequest{
		{CompanyName: "A", TransactionType: domain.GSTExclusive, ResourceType: "mining", Amount: dec("10")},
		{CompanyName: "B", TransactionType: domain.GSTInclusive, ResourceType: "luxury", Amount: dec("115")},
	}
	results, err := svc.BulkCalculateGST(ctx, gstActor, good)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].CompanyName)
	assert.Equal(t, "B", results[1].CompanyName)
	assert.Less(t, results[0].ID, results[1].ID)
	assertDecimal(t, "15.00", results[1].GSTAmount)
	assert.Equal(t, 2, repo.Len())
}

func TestBulkCalculateGSTCap(t *testing.T) {
	svc := services.NewTaxService(memory.NewGSTCalculationRepository())
	reqs := make([]domain.GSTRequest, services.MaxBulkGSTItems+1)

	_, err := svc.BulkCalculateGST(context.Background(), gstActor, reqs)

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestGSTRatesIsACopy(t *testing.T) {
	svc := services.NewTaxService(memory.NewGSTCalculationRepository())

	rates := svc.GSTRates()
	rates["standard"] = dec("0.99")

	assertDecimal(t, "0.10", svc.GSTRates()["standard"])
}

func TestListCalculationsPage(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTaxService(memory.NewGSTCalculationRepository())
	reqs := make([]domain.GSTRequest, 5)
	for i := range reqs {
		reqs[i] = domain.GSTRequest{CompanyName: "Acme", TransactionType: domain.GSTExclusive, Amount: dec("10")}
	}
	_, err := svc.BulkCalculateGST(ctx, gstActor, reqs)
	require.NoError(t, err)

	var seen []int64
	token := ""
	for pages := 0; pages < 5; pages++ {
		calcs, next, err := svc.ListCalculationsPage(ctx, 2, token)
		require.NoError(t, err)
		for _, c := range calcs {
			seen = append(seen, c.ID)
		}
		if next == "" {
			break
		}
		token = next
	}
	assert.Equal(t, []int64{5, 4, 3, 2, 1}, seen)

	_, _, err = svc.ListCalculationsPage(ctx, 2, "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestListCalculationsPageExactFit(t *testing.T) {
	ctx := context.Background()
	svc := services.NewTaxService(memory.NewGSTCalculationRepository())
	_, err := svc.CalculateGST(ctx, gstActor, domain.GSTRequest{CompanyName: "Acme", TransactionType: domain.GSTExclusive, Amount: dec("10")})
	require.NoError(t, err)

	calcs, next, err := svc.ListCalculationsPage(ctx, 1, "")
	require.NoError(t, err)
	assert.Len(t, calcs, 1)
	assert.Empty(t, next, "no token when the page holds the last record")
}

