package dto

import (
	"strings"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

type RiskAssessmentRequest struct {
	Company        string `form:"company" json:"company"`
	RiskType       string `form:"risk_type" json:"risk_type"`
	RiskLevel      string `form:"risk_level" json:"risk_level"`
	Description    string `form:"description" json:"description"`
	MitigationPlan string `form:"mitigation_plan" json:"mitigation_plan"`
}

func (r RiskAssessmentRequest) ToDomain() (domain.RiskAssessment, error) {
	return domain.RiskAssessment{
		Company:        strings.TrimSpace(r.Company),
		RiskType:       strings.TrimSpace(r.RiskType),
		RiskLevel:      strings.TrimSpace(r.RiskLevel),
		Description:    strings.TrimSpace(r.Description),
		MitigationPlan: strings.TrimSpace(r.MitigationPlan),
	}, nil
}

type RiskAssessmentResponse struct {
	RiskID         string `json:"risk_id"`
	Company        string `json:"company"`
	RiskType       string `json:"risk_type"`
	RiskLevel      string `json:"risk_level"`
	Description    string `json:"description"`
	MitigationPlan string `json:"mitigation_plan"`
	AssessedBy     string `json:"assessed_by"`
	AssessedDate   string `json:"assessed_date"`
}

func ToRiskAssessmentResponse(r domain.RiskAssessment) RiskAssessmentResponse {
	return RiskAssessmentResponse{
		RiskID:         r.Ref(),
		Company:        r.Company,
		RiskType:       r.RiskType,
		RiskLevel:      r.RiskLevel,
		Description:    r.Description,
		MitigationPlan: r.MitigationPlan,
		AssessedBy:     r.AssessedBy,
		AssessedDate:   date(r.AssessedDate),
	}
}

func RiskAssessmentForm() FormResponse {
	return FormResponse{
		Title:  "Submit Risk Assessment",
		Action: "/risk/submit",
		Method: "POST",
		Fields: []FormField{
			{Name: "company", Label: "Company", Type: "text", Required: true},
			{Name: "risk_type", Label: "Risk Type", Type: "text", Required: true},
			{Name: "risk_level", Label: "Risk Level", Type: "select", Required: true, Options: []string{"Low", "Medium", "High", "Critical"}},
			{Name: "description", Label: "Description", Type: "textarea", Required: true},
			{Name: "mitigation_plan", Label: "Mitigation Plan", Type: "textarea", Required: true},
		},
	}
}
