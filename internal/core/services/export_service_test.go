package services_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_compliance_app/internal/core/ports/repositories"
	"github.com/SscSPs/tax_compliance_app/internal/core/services"
	"github.com/SscSPs/tax_compliance_app/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, path, contentType string) (string, error) {
	args := m.Called(ctx, path, contentType)
	return args.String(0), args.Error(1)
}

var exportClock = func() time.Time { return time.Date(2025, time.May, 1, 9, 30, 0, 0, time.UTC) }

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportTaxReturnsCSV(t *testing.T) {
	dir := t.TempDir()
	repos := memory.NewRepositoryProvider(true)
	svc := services.NewExportService(dir, repos, services.WithExportClock(exportClock))

	path, err := svc.Export(context.Background(), domain.LedgerTaxReturns, domain.ExportCSV)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tax_returns_export_20250501_093000.csv"), path)
	rows := readCSV(t, path)
	require.Len(t, rows, 2)
	assert.Equal(t, domain.TaxReturn{}.ExportHeader(), rows[0])
	assert.Equal(t, "TR001", rows[1][0])
	assert.Equal(t, "Liberia Mining Co.", rows[1][1])
	assert.Equal(t, "5000000.00", rows[1][3])
}

func TestExportComplianceKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	repos := memory.NewRepositoryProvider(false)
	for _, company := range []string{"First, Inc.", "Second"} {
		_, err := repos.ComplianceRepo.Append(ctx, domain.ComplianceRecord{
			Company: company, Regulation: "VAT Act", Status: domain.ComplianceCompliant, CheckedBy: "x",
		})
		require.NoError(t, err)
	}
	svc := services.NewExportService(dir, repos, services.WithExportClock(exportClock))

	path, err := svc.Export(ctx, domain.LedgerCompliance, domain.ExportCSV)

	require.NoError(t, err)
	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, "First, Inc.", rows[1][1], "commas survive quoting")
	assert.Equal(t, "Second", rows[2][1])
}

func TestExportEmptyLedgerWritesHeaderOnly(t *testing.T) {
	svc := services.NewExportService(t.TempDir(), memory.NewRepositoryProvider(false), services.WithExportClock(exportClock))

	path, err := svc.Export(context.Background(), domain.LedgerGSTCalculations, domain.ExportCSV)

	require.NoError(t, err)
	rows := readCSV(t, path)
	require.Len(t, rows, 1)
	assert.Equal(t, "company_name", rows[0][1])
}

func TestExportXLSX(t *testing.T) {
	svc := services.NewExportService(t.TempDir(), memory.NewRepositoryProvider(true), services.WithExportClock(exportClock))

	path, err := svc.Export(context.Background(), domain.LedgerRisk, domain.ExportXLSX)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "risk_assessments_export_20250501_093000.xlsx"))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestExportRejectsUnknownLedgerAndFormat(t *testing.T) {
	svc := services.NewExportService(t.TempDir(), memory.NewRepositoryProvider(false))

	_, err := svc.Export(context.Background(), domain.LedgerName("payroll"), domain.ExportCSV)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Export(context.Background(), domain.LedgerCompliance, domain.ExportFormat("pdf"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestExportIsSerializedPerLedger(t *testing.T) {
	ctx := context.Background()
	locker := memory.NewLocker(0)
	svc := services.NewExportService(t.TempDir(), memory.NewRepositoryProvider(false), services.WithLocker(locker))

	release, err := locker.Obtain(ctx, "export:compliance", time.Minute)
	require.NoError(t, err)

	_, err = svc.Export(ctx, domain.LedgerCompliance, domain.ExportCSV)
	assert.ErrorIs(t, err, portsrepo.ErrLockNotObtained)

	_, err = svc.Export(ctx, domain.LedgerRisk, domain.ExportCSV)
	assert.NoError(t, err, "other ledgers are not blocked")

	require.NoError(t, release(ctx))
	_, err = svc.Export(ctx, domain.LedgerCompliance, domain.ExportCSV)
	assert.NoError(t, err)
}

func TestExportUploadsWhenConfigured(t *testing.T) {
	ctx := context.Background()
	uploader := new(MockUploader)
	uploader.On("Upload", ctx, mock.MatchedBy(func(p string) bool {
		return strings.HasSuffix(p, ".csv")
	}), "text/csv").Return("gs://bucket/exports/x.csv", nil).Once()
	svc := services.NewExportService(t.TempDir(), memory.NewRepositoryProvider(true), services.WithUploader(uploader))

	_, err := svc.Export(ctx, domain.LedgerTransferPricing, domain.ExportCSV)

	require.NoError(t, err)
	uploader.AssertExpectations(t)
}
