// Command export-ledger writes a ledger snapshot to EXPORT_DIR without the HTTP server.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	"github.com/SscSPs/tax_compliance_app/internal/platform/bootstrap"
	"github.com/SscSPs/tax_compliance_app/internal/platform/config"
)

func main() {
	ledgerFlag := flag.String("ledger", string(domain.LedgerCompliance), "ledger to export")
	formatFlag := flag.String("format", string(domain.ExportCSV), "csv or xlsx")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ledger, ok := domain.ParseLedgerName(*ledgerFlag)
	if !ok {
		names := make([]string, 0, len(domain.Ledgers()))
		for _, l := range domain.Ledgers() {
			names = append(names, string(l))
		}
		fmt.Fprintf(os.Stderr, "unknown ledger %q, want one of: %s\n", *ledgerFlag, strings.Join(names, ", "))
		os.Exit(2)
	}
	format, ok := domain.ParseExportFormat(*formatFlag)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown format %q, want csv or xlsx\n", *formatFlag)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	app, err := bootstrap.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize stores", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	path, err := app.Services.Export.Export(ctx, ledger, format)
	if err != nil {
		logger.Error("Export failed", slog.String("error", err.Error()))
		app.Close()
		os.Exit(1)
	}
	fmt.Println(path)
}
