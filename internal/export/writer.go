// Package export writes tabular ledger snapshots to disk and optionally
// copies them to Google Cloud Storage.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// TimestampLayout is used in export file names.
const TimestampLayout = "20060102_150405"

// Table is a header row plus data rows.
type Table struct {
	Header []string
	Rows   [][]string
}

// TableOf renders records in the given order.
func TableOf[T domain.Exportable](records []T) Table {
	var zero T
	t := Table{Header: zero.ExportHeader(), Rows: make([][]string, 0, len(records))}
	for _, rec := range records {
		t.Rows = append(t.Rows, rec.ExportRow())
	}
	return t
}

// FileName builds <ledger>_export_<timestamp>.<ext>.
func FileName(ledger domain.LedgerName, format domain.ExportFormat, at time.Time) string {
	return fmt.Sprintf("%s_export_%s.%s", ledger, at.Format(TimestampLayout), format)
}

// ContentType is the MIME type served for format.
func ContentType(format domain.ExportFormat) string {
	if format == domain.ExportXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv"
}

// WriteFile writes table to path in format, creating the directory if needed.
// The file appears under its final name only once fully written.
func WriteFile(path string, format domain.ExportFormat, table Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	// Keep the extension; excelize refuses to save unknown ones.
	tmp := filepath.Join(filepath.Dir(path), ".partial-"+filepath.Base(path))
	var err error
	switch format {
	case domain.ExportCSV:
		err = writeCSV(tmp, table)
	case domain.ExportXLSX:
		err = writeXLSX(tmp, table)
	default:
		err = fmt.Errorf("unsupported export format %q", format)
	}
	if err != nil {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("finalize export file: %w", err)
	}
	return nil
}
