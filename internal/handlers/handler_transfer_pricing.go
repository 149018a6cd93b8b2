package handlers

import (
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

func registerTransferPricingRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc[domain.TransferPricingAnalysis]) {
	h := &ledgerHandler[domain.TransferPricingAnalysis, dto.TransferPricingRequest, dto.TransferPricingResponse]{
		service:    svc,
		form:       dto.TransferPricingForm,
		toResponse: dto.ToTransferPricingResponse,
		refPrefix:  domain.TransferPricingRefPrefix,
		noun:       "Transfer pricing analysis",
	}
	role := domain.RoleTransferPricingSpecialist
	h.register(rg, "/transfer_pricing", ledgerGates{read: role, submit: role})
}
