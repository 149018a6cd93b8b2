package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/metrics"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/SscSPs/tax_compliance_app/internal/utils/validation"
)

// ledgerKind tells the generic ledger service how one record type is
// stamped, referenced and audited.
type ledgerKind[T any] struct {
	name         domain.LedgerName
	viewAction   string
	submitAction string
	detailAction string
	stamp        func(rec *T, actor domain.User, now time.Time)
	ref          func(rec T) string
}

// ledgerService implements submit/list/get for any record ledger.
type ledgerService[T any] struct {
	BaseService
	repo portsrepo.LedgerRepository[T]
	kind ledgerKind[T]
	now  func() time.Time
}

func newLedgerService[T any](repo portsrepo.LedgerRepository[T], kind ledgerKind[T]) *ledgerService[T] {
	return &ledgerService[T]{repo: repo, kind: kind, now: time.Now}
}

func (s *ledgerService[T]) Submit(ctx context.Context, actor domain.User, record T) (T, error) {
	var zero T
	s.kind.stamp(&record, actor, s.now())
	if err := validation.Struct(record); err != nil {
		s.LogInfo(ctx, "Rejected ledger submission",
			slog.String("ledger", string(s.kind.name)),
			slog.String("error", err.Error()))
		return zero, err
	}

	stored, err := s.repo.Append(ctx, record)
	if err != nil {
		s.LogError(ctx, err, "Failed to append ledger record", slog.String("ledger", string(s.kind.name)))
		return zero, fmt.Errorf("failed to store %s record: %w", s.kind.name, err)
	}

	metrics.LedgerRecordsSubmitted.WithLabelValues(string(s.kind.name)).Inc()
	s.Audit(ctx, s.kind.submitAction, s.kind.ref(stored), actor.Email)
	return stored, nil
}

func (s *ledgerService[T]) List(ctx context.Context) ([]T, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", s.kind.name, err)
	}
	if records == nil {
		records = []T{}
	}
	s.Audit(ctx, s.kind.viewAction, fmt.Sprintf("%d records", len(records)), actorEmail(ctx))
	return records, nil
}

func (s *ledgerService[T]) Get(ctx context.Context, id int64) (T, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to get %s record: %w", s.kind.name, err)
	}
	s.Audit(ctx, s.kind.detailAction, s.kind.ref(record), actorEmail(ctx))
	return record, nil
}

func actorEmail(ctx context.Context) string {
	if session, ok := middleware.SessionFromCtx(ctx); ok {
		return session.User.Email
	}
	return ""
}

// NewComplianceService stores compliance checks. checked_by defaults to the submitter.
func NewComplianceService(repo portsrepo.ComplianceRepository) portssvc.LedgerSvc[domain.ComplianceRecord] {
	return newLedgerService(repo, ledgerKind[domain.ComplianceRecord]{
		name:         domain.LedgerCompliance,
		viewAction:   "VIEW_COMPLIANCE_RECORDS",
		submitAction: "SUBMIT_COMPLIANCE_CHECK",
		detailAction: "VIEW_COMPLIANCE_DETAIL",
		stamp: func(rec *domain.ComplianceRecord, actor domain.User, now time.Time) {
			if rec.CheckedBy == "" {
				rec.CheckedBy = actor.Email
			}
			rec.CreatedAt = now.UTC()
		},
		ref: func(rec domain.ComplianceRecord) string { return strconv.FormatInt(rec.ID, 10) },
	})
}

func NewTaxReturnService(repo portsrepo.TaxReturnRepository) portssvc.LedgerSvc[domain.TaxReturn] {
	return newLedgerService(repo, ledgerKind[domain.TaxReturn]{
		name:         domain.LedgerTaxReturns,
		viewAction:   "VIEW_TAX_RETURNS",
		submitAction: "SUBMIT_TAX_RETURN",
		detailAction: "VIEW_TAX_RETURN_DETAIL",
		stamp: func(rec *domain.TaxReturn, actor domain.User, now time.Time) {
			rec.FiledBy = actor.Email
			rec.FiledDate = domain.TruncateDay(now)
		},
		ref: domain.TaxReturn.Ref,
	})
}

func NewTransferPricingService(repo portsrepo.TransferPricingRepository) portssvc.LedgerSvc[domain.TransferPricingAnalysis] {
	return newLedgerService(repo, ledgerKind[domain.TransferPricingAnalysis]{
		name:         domain.LedgerTransferPricing,
		viewAction:   "VIEW_TP_ANALYSES",
		submitAction: "SUBMIT_TP_ANALYSIS",
		detailAction: "VIEW_TP_ANALYSIS_DETAIL",
		stamp: func(rec *domain.TransferPricingAnalysis, actor domain.User, now time.Time) {
			rec.Analyst = actor.Email
			rec.SubmittedDate = domain.TruncateDay(now)
		},
		ref: domain.TransferPricingAnalysis.Ref,
	})
}

func NewRiskService(repo portsrepo.RiskRepository) portssvc.LedgerSvc[domain.RiskAssessment] {
	return newLedgerService(repo, ledgerKind[domain.RiskAssessment]{
		name:         domain.LedgerRisk,
		viewAction:   "VIEW_RISK_ASSESSMENTS",
		submitAction: "SUBMIT_RISK_ASSESSMENT",
		detailAction: "VIEW_RISK_DETAIL",
		stamp: func(rec *domain.RiskAssessment, actor domain.User, now time.Time) {
			rec.AssessedBy = actor.Email
			rec.AssessedDate = domain.TruncateDay(now)
		},
		ref: domain.RiskAssessment.Ref,
	})
}
