package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/core/services"
	"github.com/SscSPs/tax_compliance_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository[T any] struct {
	mock.Mock
}

func (m *MockLedgerRepository[T]) Append(ctx context.Context, record T) (T, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockLedgerRepository[T]) FindByID(ctx context.Context, id int64) (T, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(T), args.Error(1)
}

func (m *MockLedgerRepository[T]) List(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

// --- Test Suite ---
type TaxReturnServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository[domain.TaxReturn]
	service  portssvc.LedgerSvc[domain.TaxReturn]
	actor    domain.User
}

func (suite *TaxReturnServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository[domain.TaxReturn])
	suite.service = services.NewTaxReturnService(suite.mockRepo)
	suite.actor = domain.User{UserID: "u-1", Email: "auditor@example.com", Role: domain.RoleTaxAuditor}
}

func validTaxReturn() domain.TaxReturn {
	return domain.TaxReturn{
		Company:    "Acme Mining",
		TaxPeriod:  "2025-Q2",
		RevenueUSD: decimal.NewFromInt(1000),
		RevenueLRD: decimal.NewFromInt(190000),
		TaxDueUSD:  decimal.NewFromInt(100),
		TaxDueLRD:  decimal.NewFromInt(19000),
	}
}

func (suite *TaxReturnServiceTestSuite) TestSubmit_StampsActorAndDate() {
	ctx := context.Background()
	stamped := mock.MatchedBy(func(r domain.TaxReturn) bool {
		return r.FiledBy == suite.actor.Email &&
			r.FiledDate.Equal(domain.TruncateDay(time.Now())) &&
			r.ID == 0
	})
	stored := validTaxReturn()
	stored.ID = 7
	stored.FiledBy = suite.actor.Email
	suite.mockRepo.On("Append", ctx, stamped).Return(stored, nil).Once()

	got, err := suite.service.Submit(ctx, suite.actor, validTaxReturn())

	suite.Require().NoError(err)
	suite.Equal("TR007", got.Ref())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaxReturnServiceTestSuite) TestSubmit_MissingCompanyStoresNothing() {
	rec := validTaxReturn()
	rec.Company = ""

	_, err := suite.service.Submit(context.Background(), suite.actor, rec)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	var ve *apperrors.ValidationError
	suite.Require().ErrorAs(err, &ve)
	suite.Equal("company", ve.Field)
	suite.mockRepo.AssertNotCalled(suite.T(), "Append", mock.Anything, mock.Anything)
}

func (suite *TaxReturnServiceTestSuite) TestGet_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindByID", ctx, int64(42)).
		Return(domain.TaxReturn{}, fmt.Errorf("record 42: %w", apperrors.ErrNotFound)).Once()

	_, err := suite.service.Get(ctx, 42)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TaxReturnServiceTestSuite) TestList_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("List", ctx).Return(nil, nil).Once()

	got, err := suite.service.List(ctx)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func TestTaxReturnServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaxReturnServiceTestSuite))
}

func TestComplianceSubmitEmptyCompanyStoresNothing(t *testing.T) {
	repo := memory.NewComplianceRepository()
	svc := services.NewComplianceService(repo)
	actor := domain.User{Email: "auditor@example.com", Role: domain.RoleAuditor}

	_, err := svc.Submit(context.Background(), actor, domain.ComplianceRecord{
		Regulation: "Revenue Code 2000",
		Status:     domain.ComplianceCompliant,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, 0, repo.Len())
}

func TestComplianceSubmitThenList(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewComplianceRepository()
	svc := services.NewComplianceService(repo)
	actor := domain.User{Email: "auditor@example.com", Role: domain.RoleAuditor}

	first, err := svc.Submit(ctx, actor, domain.ComplianceRecord{
		Company: "Acme", Regulation: "VAT Act", Status: domain.ComplianceCompliant,
	})
	require.NoError(t, err)
	second, err := svc.Submit(ctx, actor, domain.ComplianceRecord{
		Company: "Beta", Regulation: "GST Act", Status: domain.ComplianceNonCompliant, CheckedBy: "field team",
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, actor.Email, first.CheckedBy, "checked_by defaults to the submitter")
	assert.Equal(t, "field team", second.CheckedBy)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Company)
}

func TestComplianceRejectsUnknownStatus(t *testing.T) {
	svc := services.NewComplianceService(memory.NewComplianceRepository())

	_, err := svc.Submit(context.Background(), domain.User{Email: "a@example.com"}, domain.ComplianceRecord{
		Company: "Acme", Regulation: "VAT Act", Status: "Pending",
	})

	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRiskSubmitRequiresKnownLevel(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewRiskRepository(memory.SampleRiskAssessments()...)
	svc := services.NewRiskService(repo)
	actor := domain.User{Email: "risk@example.com", Role: domain.RoleRiskAnalyst}
	rec := domain.RiskAssessment{
		Company: "Acme", RiskType: "Transfer mispricing", RiskLevel: "Severe",
		Description: "d", MitigationPlan: "m",
	}

	_, err := svc.Submit(ctx, actor, rec)
	require.ErrorIs(t, err, apperrors.ErrValidation)

	rec.RiskLevel = "Critical"
	stored, err := svc.Submit(ctx, actor, rec)
	require.NoError(t, err)
	assert.Equal(t, "RISK002", stored.Ref())
	assert.Equal(t, actor.Email, stored.AssessedBy)
}

func TestTransferPricingSubmitStampsAnalyst(t *testing.T) {
	svc := services.NewTransferPricingService(memory.NewTransferPricingRepository())
	actor := domain.User{Email: "tp@example.com", Role: domain.RoleTransferPricingSpecialist}

	stored, err := svc.Submit(context.Background(), actor, domain.TransferPricingAnalysis{
		Company: "Acme", TransactionType: "Services", RelatedParty: "Parent",
		TransactionValueUSD: decimal.NewFromInt(100), ArmLengthPriceUSD: decimal.NewFromInt(120),
		AnalysisMethod: "TNMM",
	})

	require.NoError(t, err)
	assert.Equal(t, "TP001", stored.Ref())
	assert.Equal(t, actor.Email, stored.Analyst)
	assert.False(t, stored.SubmittedDate.IsZero())
}
