package handlers

import (
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerComplianceRoutes mounts /compliance. Any signed-in user may read;
// auditors and above may submit.
func registerComplianceRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc[domain.ComplianceRecord]) {
	h := &ledgerHandler[domain.ComplianceRecord, dto.ComplianceRequest, dto.ComplianceResponse]{
		service:    svc,
		form:       dto.ComplianceForm,
		toResponse: dto.ToComplianceResponse,
		noun:       "Compliance check",
	}
	h.register(rg, "/compliance", ledgerGates{read: domain.RoleUser, submit: domain.RoleAuditor})
}
