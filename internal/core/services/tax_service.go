package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/metrics"
	"github.com/SscSPs/tax_compliance_app/internal/utils/pagination"
	"github.com/SscSPs/tax_compliance_app/internal/utils/taxcalc"
	"github.com/SscSPs/tax_compliance_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// MaxBulkGSTItems caps a bulk GST batch.
const MaxBulkGSTItems = 500

type taxService struct {
	BaseService
	gstRepo portsrepo.GSTCalculationRepository
	now     func() time.Time
}

func NewTaxService(gstRepo portsrepo.GSTCalculationRepository) portssvc.TaxSvcFacade {
	return &taxService{gstRepo: gstRepo, now: time.Now}
}

var _ portssvc.TaxSvcFacade = (*taxService)(nil)

func (s *taxService) CalculateVAT(ctx context.Context, country string, amount decimal.Decimal) (taxcalc.VATResult, error) {
	res, err := taxcalc.CalculateVAT(country, amount)
	if err != nil {
		metrics.TaxCalculations.WithLabelValues("vat", "rejected").Inc()
		return taxcalc.VATResult{}, err
	}
	metrics.TaxCalculations.WithLabelValues("vat", "ok").Inc()
	s.LogDebug(ctx, "VAT calculated", slog.String("country", res.Country), slog.String("tax", res.Tax.String()))
	return res, nil
}

func (s *taxService) GSTRates() map[string]decimal.Decimal {
	return taxcalc.GSTRates()
}

// compute validates and prices one request without storing it.
func (s *taxService) compute(req domain.GSTRequest, actor domain.User, at time.Time) (domain.GSTCalculation, error) {
	if err := validation.Struct(req); err != nil {
		return domain.GSTCalculation{}, err
	}

	resourceType := strings.ToLower(strings.TrimSpace(req.ResourceType))
	if resourceType == "" {
		resourceType = taxcalc.DefaultResourceType
	}
	category := strings.ToLower(strings.TrimSpace(req.ItemCategory))
	rate := taxcalc.ResolveRate(resourceType, category)

	var (
		b   taxcalc.Breakdown
		err error
	)
	switch req.TransactionType {
	case domain.GSTInclusive:
		b, err = taxcalc.Inclusive(req.Amount, rate)
	default:
		b, err = taxcalc.Exclusive(req.Amount, rate)
	}
	if err != nil {
		return domain.GSTCalculation{}, err
	}

	return domain.GSTCalculation{
		CompanyName:     req.CompanyName,
		TransactionType: req.TransactionType,
		ResourceType:    resourceType,
		ItemCategory:    category,
		GrossAmount:     req.Amount,
		GSTRate:         rate,
		GSTAmount:       b.GST,
		NetAmount:       b.Net,
		TotalAmount:     b.Total,
		CalculationDate: at.UTC(),
		CalculatedBy:    actor.Email,
		Notes:           req.Notes,
	}, nil
}

func (s *taxService) CalculateGST(ctx context.Context, actor domain.User, req domain.GSTRequest) (domain.GSTCalculation, error) {
	calc, err := s.compute(req, actor, s.now())
	if err != nil {
		metrics.TaxCalculations.WithLabelValues("gst", "rejected").Inc()
		return domain.GSTCalculation{}, err
	}
	stored, err := s.gstRepo.Append(ctx, calc)
	if err != nil {
		s.LogError(ctx, err, "Failed to store GST calculation")
		return domain.GSTCalculation{}, fmt.Errorf("failed to store gst calculation: %w", err)
	}
	metrics.TaxCalculations.WithLabelValues("gst", "ok").Inc()
	s.Audit(ctx, "CALCULATE_GST", fmt.Sprintf("id=%d company=%s", stored.ID, stored.CompanyName), actor.Email)
	return stored, nil
}

func (s *taxService) BulkCalculateGST(ctx context.Context, actor domain.User, reqs []domain.GSTRequest) ([]domain.GSTCalculation, error) {
	if len(reqs) == 0 {
		return nil, apperrors.NewValidationError("transactions", "at least one transaction is required")
	}
	if len(reqs) > MaxBulkGSTItems {
		return nil, apperrors.NewValidationError("transactions", fmt.Sprintf("at most %d transactions per batch", MaxBulkGSTItems))
	}

	now := s.now()
	calcs := make([]domain.GSTCalculation, 0, len(reqs))
	for i, req := range reqs {
		calc, err := s.compute(req, actor, now)
		if err != nil {
			metrics.TaxCalculations.WithLabelValues("gst_bulk", "rejected").Inc()
			return nil, itemError(i, err)
		}
		calcs = append(calcs, calc)
	}

	stored, err := s.gstRepo.AppendBatch(ctx, calcs)
	if err != nil {
		s.LogError(ctx, err, "Failed to store GST batch", slog.Int("items", len(calcs)))
		return nil, fmt.Errorf("failed to store gst batch: %w", err)
	}
	metrics.TaxCalculations.WithLabelValues("gst_bulk", "ok").Inc()
	s.Audit(ctx, "BULK_CALCULATE_GST", fmt.Sprintf("%d calculations", len(stored)), actor.Email)
	return stored, nil
}

// itemError prefixes err with the batch position and keeps its kind.
func itemError(i int, err error) error {
	at := fmt.Sprintf("transactions[%d]", i)
	var de *apperrors.DomainError
	if errors.As(err, &de) {
		return apperrors.NewDomainError(de.Rule, at+": "+de.Message)
	}
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		return apperrors.NewValidationError(at, ve.Message)
	}
	return fmt.Errorf("%s: %w", at, err)
}

func (s *taxService) ListCalculations(ctx context.Context) ([]domain.GSTCalculation, error) {
	calcs, err := s.gstRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gst calculations: %w", err)
	}
	if calcs == nil {
		calcs = []domain.GSTCalculation{}
	}
	s.Audit(ctx, "VIEW_GST_CALCULATIONS", fmt.Sprintf("%d records", len(calcs)), actorEmail(ctx))
	return calcs, nil
}

// ListCalculationsPage returns one newest-first page of the audit trail and
// the token for the next page, empty on the last page.
func (s *taxService) ListCalculationsPage(ctx context.Context, limit int, pageToken string) ([]domain.GSTCalculation, string, error) {
	beforeID, err := pagination.DecodeCursor(pageToken)
	if err != nil {
		return nil, "", apperrors.NewValidationError("next_token", "next_token is invalid")
	}
	limit = pagination.ClampLimit(limit)

	// One extra row tells us whether another page exists.
	calcs, err := s.gstRepo.ListPage(ctx, beforeID, limit+1)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list gst calculations: %w", err)
	}
	var next string
	if len(calcs) > limit {
		calcs = calcs[:limit]
		next = pagination.EncodeCursor(calcs[limit-1].ID)
	}
	if calcs == nil {
		calcs = []domain.GSTCalculation{}
	}
	s.Audit(ctx, "VIEW_GST_CALCULATIONS", fmt.Sprintf("%d records, page size %d", len(calcs), limit), actorEmail(ctx))
	return calcs, next, nil
}

func (s *taxService) GetCalculation(ctx context.Context, id int64) (domain.GSTCalculation, error) {
	calc, err := s.gstRepo.FindByID(ctx, id)
	if err != nil {
		return domain.GSTCalculation{}, fmt.Errorf("failed to get gst calculation: %w", err)
	}
	return calc, nil
}
