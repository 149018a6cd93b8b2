package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/export"
	"github.com/SscSPs/tax_compliance_app/internal/metrics"
)

// exportLockTTL bounds how long a crashed exporter can block a ledger.
const exportLockTTL = 2 * time.Minute

// Uploader copies a finished export somewhere durable and returns its URI.
type Uploader interface {
	Upload(ctx context.Context, path, contentType string) (string, error)
}

type tableSource func(ctx context.Context) (export.Table, error)

// ledgerTable snapshots a ledger in ascending id order.
func ledgerTable[T domain.Exportable](r portsrepo.LedgerReader[T]) tableSource {
	return func(ctx context.Context) (export.Table, error) {
		records, err := r.List(ctx)
		if err != nil {
			return export.Table{}, err
		}
		records = slices.Clone(records)
		slices.Reverse(records)
		return export.TableOf(records), nil
	}
}

type exportService struct {
	BaseService
	dir      string
	sources  map[domain.LedgerName]tableSource
	locker   portsrepo.Locker
	uploader Uploader
	now      func() time.Time
}

// ExportOption configures the export service.
type ExportOption func(*exportService)

// WithLocker serializes exports of the same ledger.
func WithLocker(l portsrepo.Locker) ExportOption {
	return func(s *exportService) {
		s.locker = l
	}
}

// WithUploader copies every export after it is written.
func WithUploader(u Uploader) ExportOption {
	return func(s *exportService) {
		s.uploader = u
	}
}

// WithExportClock replaces the time source used in file names.
func WithExportClock(now func() time.Time) ExportOption {
	return func(s *exportService) {
		s.now = now
	}
}

func NewExportService(dir string, repos portsrepo.RepositoryProvider, options ...ExportOption) portssvc.ExportSvc {
	svc := &exportService{
		dir: dir,
		sources: map[domain.LedgerName]tableSource{
			domain.LedgerCompliance:      ledgerTable[domain.ComplianceRecord](repos.ComplianceRepo),
			domain.LedgerTaxReturns:      ledgerTable[domain.TaxReturn](repos.TaxReturnRepo),
			domain.LedgerTransferPricing: ledgerTable[domain.TransferPricingAnalysis](repos.TransferPricingRepo),
			domain.LedgerRisk:            ledgerTable[domain.RiskAssessment](repos.RiskRepo),
			domain.LedgerGSTCalculations: ledgerTable[domain.GSTCalculation](repos.GSTCalculationRepo),
		},
		now: time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExportSvc = (*exportService)(nil)

func (s *exportService) Export(ctx context.Context, ledger domain.LedgerName, format domain.ExportFormat) (string, error) {
	source, ok := s.sources[ledger]
	if !ok {
		return "", fmt.Errorf("ledger %q: %w", ledger, apperrors.ErrNotFound)
	}
	if format != domain.ExportCSV && format != domain.ExportXLSX {
		return "", apperrors.NewValidationError("format", fmt.Sprintf("unsupported export format %q", format))
	}

	if s.locker != nil {
		release, err := s.locker.Obtain(ctx, "export:"+string(ledger), exportLockTTL)
		if err != nil {
			if errors.Is(err, portsrepo.ErrLockNotObtained) {
				return "", fmt.Errorf("export of %s already running: %w", ledger, err)
			}
			return "", fmt.Errorf("failed to lock export: %w", err)
		}
		defer func() {
			if rerr := release(context.WithoutCancel(ctx)); rerr != nil {
				s.LogError(ctx, rerr, "Failed to release export lock", slog.String("ledger", string(ledger)))
			}
		}()
	}

	started := time.Now()
	table, err := source(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to snapshot %s: %w", ledger, err)
	}

	path := filepath.Join(s.dir, export.FileName(ledger, format, s.now()))
	if err := export.WriteFile(path, format, table); err != nil {
		s.LogError(ctx, err, "Failed to write export", slog.String("path", path))
		return "", err
	}

	if s.uploader != nil {
		// The local file is the result; a failed upload is reported, not fatal.
		uri, err := s.uploader.Upload(ctx, path, export.ContentType(format))
		if err != nil {
			s.LogError(ctx, err, "Failed to upload export", slog.String("path", path))
		} else {
			s.LogInfo(ctx, "Export uploaded", slog.String("uri", uri))
		}
	}

	metrics.Exports.WithLabelValues(string(ledger), string(format)).Inc()
	metrics.ExportDuration.WithLabelValues(string(ledger)).Observe(time.Since(started).Seconds())
	s.Audit(ctx, "EXPORT_LEDGER", fmt.Sprintf("ledger=%s rows=%d file=%s", ledger, len(table.Rows), filepath.Base(path)), actorEmail(ctx))
	return path, nil
}
