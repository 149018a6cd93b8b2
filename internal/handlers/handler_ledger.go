package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/SscSPs/tax_compliance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerRequest is a bound form or JSON body that converts into a record.
type ledgerRequest[T any] interface {
	ToDomain() (T, error)
}

// ledgerHandler serves the submit/list/detail routes of one record ledger.
type ledgerHandler[T any, Req ledgerRequest[T], Resp any] struct {
	service    portssvc.LedgerSvc[T]
	form       func() dto.FormResponse
	toResponse func(T) Resp
	refPrefix  string
	noun       string
}

// ledgerGates names the roles needed to read and to submit.
type ledgerGates struct {
	read   domain.Role
	submit domain.Role
}

func (h *ledgerHandler[T, Req, Resp]) register(rg *gin.RouterGroup, path string, gates ledgerGates) {
	g := rg.Group(path)
	{
		g.GET("/submit", middleware.RequireRole(gates.submit), h.showForm)
		g.POST("/submit", middleware.RequireRole(gates.submit), h.submit)
		g.GET("", middleware.RequireRole(gates.read), h.list)
		g.GET("/:id", middleware.RequireRole(gates.read), h.detail)
	}
}

func (h *ledgerHandler[T, Req, Resp]) showForm(c *gin.Context) {
	form := h.form()
	form.Flashes = middleware.PopFlashes(c)
	c.JSON(http.StatusOK, form)
}

func (h *ledgerHandler[T, Req, Resp]) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, _ := middleware.GetUserFromContext(c)

	var req Req
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind ledger submission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	record, err := req.ToDomain()
	if err != nil {
		respondError(c, err, "Failed to submit "+h.noun)
		return
	}

	stored, err := h.service.Submit(c.Request.Context(), actor, record)
	if err != nil {
		respondError(c, err, "Failed to submit "+h.noun)
		return
	}

	if !middleware.WantsJSON(c) {
		middleware.AddFlash(c, "success", h.noun+" submitted successfully!")
	}
	c.JSON(http.StatusCreated, h.toResponse(stored))
}

func (h *ledgerHandler[T, Req, Resp]) list(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list records")
		return
	}
	resp := dto.ListResponse[Resp]{Records: make([]Resp, len(records)), Flashes: middleware.PopFlashes(c)}
	for i, r := range records {
		resp.Records[i] = h.toResponse(r)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ledgerHandler[T, Req, Resp]) detail(c *gin.Context) {
	id, err := domain.ParseRef(h.refPrefix, c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: h.noun + " not found"})
		return
	}
	record, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to load "+h.noun)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(record))
}
