package handlers

import (
	"net/http"
	"path/filepath"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/export"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type exportHandler struct {
	exportService portssvc.ExportSvc
}

// registerExportRoutes mounts the ledger downloads for supervisors.
func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc) {
	h := &exportHandler{exportService: exportService}
	gate := middleware.RequireRole(domain.RoleSupervisor)

	rg.GET("/export_compliance_csv", gate, h.fixed(domain.LedgerCompliance))
	rg.GET("/export_gst_calculations_csv", gate, h.fixed(domain.LedgerGSTCalculations))
	rg.GET("/export/:ledger", gate, h.exportLedger)
}

func (h *exportHandler) fixed(ledger domain.LedgerName) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.serve(c, ledger)
	}
}

// exportLedger godoc
// @Summary Export a ledger
// @Description Writes a full snapshot of the ledger and returns it as a download.
// @Tags export
// @Produce text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param ledger path string true "compliance, tax_returns, transfer_pricing, risk_assessments or gst_calculations"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Export already running"
// @Security BearerAuth
// @Router /export/{ledger} [get]
func (h *exportHandler) exportLedger(c *gin.Context) {
	ledger, ok := domain.ParseLedgerName(c.Param("ledger"))
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Unknown ledger"})
		return
	}
	h.serve(c, ledger)
}

func (h *exportHandler) serve(c *gin.Context, ledger domain.LedgerName) {
	format, ok := domain.ParseExportFormat(c.Query("format"))
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "format must be csv or xlsx", Field: "format"})
		return
	}

	path, err := h.exportService.Export(c.Request.Context(), ledger, format)
	if err != nil {
		respondError(c, err, "Export failed")
		return
	}

	c.Header("Content-Type", export.ContentType(format))
	c.FileAttachment(path, filepath.Base(path))
}
