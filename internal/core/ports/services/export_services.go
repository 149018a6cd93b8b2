package services

import (
	"context"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// ExportSvc writes full ledger snapshots to files.
type ExportSvc interface {
	// Export writes ledger in format and returns the file path.
	Export(ctx context.Context, ledger domain.LedgerName, format domain.ExportFormat) (string, error)
}
