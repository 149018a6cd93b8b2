package handlers

import (
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

func registerRiskRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc[domain.RiskAssessment]) {
	h := &ledgerHandler[domain.RiskAssessment, dto.RiskAssessmentRequest, dto.RiskAssessmentResponse]{
		service:    svc,
		form:       dto.RiskAssessmentForm,
		toResponse: dto.ToRiskAssessmentResponse,
		refPrefix:  domain.RiskRefPrefix,
		noun:       "Risk assessment",
	}
	h.register(rg, "/risk", ledgerGates{read: domain.RoleRiskAnalyst, submit: domain.RoleRiskAnalyst})
}
