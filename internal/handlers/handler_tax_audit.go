package handlers

import (
	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_compliance_app/internal/core/ports/services"
	"github.com/SscSPs/tax_compliance_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// registerTaxAuditRoutes mounts /tax_audit for tax auditors.
// Returns are addressed by reference, e.g. /tax_audit/TR001.
func registerTaxAuditRoutes(rg *gin.RouterGroup, svc portssvc.LedgerSvc[domain.TaxReturn]) {
	h := &ledgerHandler[domain.TaxReturn, dto.TaxReturnRequest, dto.TaxReturnResponse]{
		service:    svc,
		form:       dto.TaxReturnForm,
		toResponse: dto.ToTaxReturnResponse,
		refPrefix:  domain.TaxReturnRefPrefix,
		noun:       "Tax return",
	}
	h.register(rg, "/tax_audit", ledgerGates{read: domain.RoleTaxAuditor, submit: domain.RoleTaxAuditor})
}
