package domain

import "strings"

// LedgerName identifies an exportable ledger.
type LedgerName string

const (
	LedgerCompliance      LedgerName = "compliance"
	LedgerTaxReturns      LedgerName = "tax_returns"
	LedgerTransferPricing LedgerName = "transfer_pricing"
	LedgerRisk            LedgerName = "risk_assessments"
	LedgerGSTCalculations LedgerName = "gst_calculations"
)

// Ledgers lists every ledger in a stable order.
func Ledgers() []LedgerName {
	return []LedgerName{LedgerCompliance, LedgerTaxReturns, LedgerTransferPricing, LedgerRisk, LedgerGSTCalculations}
}

// ParseLedgerName accepts a ledger name case-insensitively.
func ParseLedgerName(s string) (LedgerName, bool) {
	want := LedgerName(strings.ToLower(strings.TrimSpace(s)))
	for _, l := range Ledgers() {
		if l == want {
			return l, true
		}
	}
	return "", false
}

// Exportable records render themselves as a header and one row per record,
// columns in storage schema order.
type Exportable interface {
	ExportHeader() []string
	ExportRow() []string
}

// ExportFormat is the file format of a ledger export.
type ExportFormat string

const (
	ExportCSV  ExportFormat = "csv"
	ExportXLSX ExportFormat = "xlsx"
)

// ParseExportFormat defaults to CSV for an empty string.
func ParseExportFormat(s string) (ExportFormat, bool) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", ExportCSV:
		return ExportCSV, true
	case ExportXLSX:
		return ExportXLSX, true
	}
	return "", false
}
