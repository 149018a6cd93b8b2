package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/tax_compliance_app/internal/apperrors"
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// taxHandler serves the VAT and GST calculators.
type taxHandler struct {
	taxService portssvc.TaxSvcFacade
}

func registerTaxRoutes(rg *gin.RouterGroup, taxService portssvc.TaxSvcFacade) {
	h := &taxHandler{taxService: taxService}

	rg.GET("/calculate_tax", h.calculateVAT)
	rg.POST("/calculate_tax", h.calculateVAT)
	rg.GET("/api/gst_rates", h.gstRates)

	user := middleware.RequireRole(domain.RoleUser)
	rg.POST("/calculate_gst", user, h.calculateGST)
	rg.POST("/bulk_gst_calculate", user, h.bulkCalculateGST)
	rg.GET("/gst_calculations", user, h.listCalculations)
	rg.GET("/gst_calculations/:id", user, h.getCalculation)
}

// calculateVAT godoc
// @Summary Calculate VAT
// @Description Computes VAT for a country. Unknown countries are taxed at 0.
// @Tags tax
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param country query string true "Country code, e.g. US"
// @Param amount query number true "Amount"
// @Success 200 {object} dto.VATResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /calculate_tax [post]
func (h *taxHandler) calculateVAT(c *gin.Context) {
	var req dto.VATRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	country, amount, err := req.Parse()
	if err != nil {
		respondError(c, err, "Tax calculation failed")
		return
	}
	res, err := h.taxService.CalculateVAT(c.Request.Context(), country, amount)
	if err != nil {
		respondError(c, err, "Tax calculation failed")
		return
	}
	c.JSON(http.StatusOK, dto.ToVATResponse(res))
}

// gstRates godoc
// @Summary GST rate table
// @Tags tax
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/gst_rates [get]
func (h *taxHandler) gstRates(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToGSTRatesResponse(h.taxService.GSTRates()))
}

// calculateGST godoc
// @Summary Calculate GST
// @Description Computes GST inclusive or exclusive of the amount and records the calculation.
// @Tags tax
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param calculation body dto.GSTCalculationRequest true "Calculation input"
// @Success 201 {object} dto.GSTCalculationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /calculate_gst [post]
func (h *taxHandler) calculateGST(c *gin.Context) {
	actor, _ := middleware.GetUserFromContext(c)
	var req dto.GSTCalculationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		respondError(c, err, "GST calculation failed")
		return
	}
	calc, err := h.taxService.CalculateGST(c.Request.Context(), actor, in)
	if err != nil {
		respondError(c, err, "GST calculation failed")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGSTCalculationResponse(calc))
}

// bulkCalculateGST godoc
// @Summary Bulk GST calculation
// @Description Calculates and records a batch. Any invalid item rejects the whole batch.
// @Tags tax
// @Accept json
// @Produce json
// @Param batch body dto.BulkGSTRequest true "Transactions"
// @Success 200 {object} dto.BulkGSTResponse
// @Failure 400 {object} dto.BulkGSTResponse
// @Failure 500 {object} dto.BulkGSTResponse
// @Security BearerAuth
// @Router /bulk_gst_calculate [post]
func (h *taxHandler) bulkCalculateGST(c *gin.Context) {
	actor, _ := middleware.GetUserFromContext(c)
	var req dto.BulkGSTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.BulkGSTResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	ins, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.BulkGSTResponse{Error: err.Error()})
		return
	}
	calcs, err := h.taxService.BulkCalculateGST(c.Request.Context(), actor, ins)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrDomain) {
			c.JSON(http.StatusBadRequest, dto.BulkGSTResponse{Error: err.Error()})
			return
		}
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Bulk GST calculation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.BulkGSTResponse{Error: "Bulk GST calculation failed"})
		return
	}
	c.JSON(http.StatusOK, dto.BulkGSTResponse{Success: true, Results: dto.ToListGSTCalculationResponse(calcs)})
}

// listCalculations godoc
// @Summary GST audit trail
// @Description Lists calculations newest first. Passing limit or next_token switches to paged output.
// @Tags tax
// @Produce json
// @Param limit query int false "Page size, at most 200"
// @Param next_token query string false "Token from the previous page"
// @Success 200 {object} dto.ListResponse[dto.GSTCalculationResponse]
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /gst_calculations [get]
func (h *taxHandler) listCalculations(c *gin.Context) {
	limitStr, token := c.Query("limit"), c.Query("next_token")
	if limitStr == "" && token == "" {
		calcs, err := h.taxService.ListCalculations(c.Request.Context())
		if err != nil {
			respondError(c, err, "Failed to list GST calculations")
			return
		}
		c.JSON(http.StatusOK, dto.ListResponse[dto.GSTCalculationResponse]{
			Records: dto.ToListGSTCalculationResponse(calcs),
			Flashes: middleware.PopFlashes(c),
		})
		return
	}

	var limit int
	if limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer", Field: "limit"})
			return
		}
		limit = n
	}
	calcs, next, err := h.taxService.ListCalculationsPage(c.Request.Context(), limit, token)
	if err != nil {
		respondError(c, err, "Failed to list GST calculations")
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse[dto.GSTCalculationResponse]{
		Records:   dto.ToListGSTCalculationResponse(calcs),
		NextToken: next,
		Flashes:   middleware.PopFlashes(c),
	})
}

func (h *taxHandler) getCalculation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "GST calculation not found"})
		return
	}
	calc, err := h.taxService.GetCalculation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load GST calculation")
		return
	}
	c.JSON(http.StatusOK, dto.ToGSTCalculationResponse(calc))
}
