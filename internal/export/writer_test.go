package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleTable() Table {
	next := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	return TableOf([]domain.ComplianceRecord{
		{ID: 1, Company: "Acme, Inc.", Regulation: "Tax Act s.12", Status: domain.ComplianceCompliant, CheckedBy: "a@example.com", NextReviewDate: &next, CreatedAt: time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)},
		{ID: 2, Company: "Beta", Regulation: "GST Rules", Status: domain.ComplianceNonCompliant, Findings: "line one\nline two", CreatedAt: time.Date(2025, 2, 2, 3, 4, 5, 0, time.UTC)},
	})
}

func TestFileName(t *testing.T) {
	at := time.Date(2025, 4, 15, 9, 8, 7, 0, time.UTC)
	assert.Equal(t, "compliance_export_20250415_090807.csv", FileName(domain.LedgerCompliance, domain.ExportCSV, at))
	assert.Equal(t, "gst_calculations_export_20250415_090807.xlsx", FileName(domain.LedgerGSTCalculations, domain.ExportXLSX, at))
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	require.NoError(t, WriteFile(path, domain.ExportCSV, sampleTable()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.ComplianceRecord{}.ExportHeader(), rows[0])
	assert.Equal(t, []string{"1", "Acme, Inc.", "Tax Act s.12", "Compliant", "", "", "a@example.com", "2025-07-01", "2025-01-02T03:04:05Z"}, rows[1])
	assert.Equal(t, "line one\nline two", rows[2][4])
	assert.Equal(t, "", rows[2][7])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no partial file left behind")
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, WriteFile(path, domain.ExportXLSX, sampleTable()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "company", rows[0][1])
	assert.Equal(t, "Acme, Inc.", rows[1][1])
	assert.Equal(t, "Non-Compliant", rows[2][3])
}

func TestWriteEmptyLedgerHasHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, WriteFile(path, domain.ExportCSV, TableOf([]domain.RiskAssessment{})))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "risk_id,company,risk_type,risk_level,description,mitigation_plan,assessed_by,assessed_date\n", string(data))
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.pdf")
	assert.Error(t, WriteFile(path, domain.ExportFormat("pdf"), sampleTable()))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
