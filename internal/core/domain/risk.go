package domain

import "time"

// RiskRefPrefix prefixes risk assessment display references (RISK001).
const RiskRefPrefix = "RISK"

// RiskAssessment records an identified taxpayer risk and its mitigation.
type RiskAssessment struct {
	ID             int64     `json:"-"`
	Company        string    `json:"company" validate:"required,max=100"`
	RiskType       string    `json:"risk_type" validate:"required,max=100"`
	RiskLevel      string    `json:"risk_level" validate:"required,oneof=Low Medium High Critical"`
	Description    string    `json:"description" validate:"required"`
	MitigationPlan string    `json:"mitigation_plan" validate:"required"`
	AssessedBy     string    `json:"assessed_by" validate:"required"`
	AssessedDate   time.Time `json:"assessed_date"`
}

// Ref is the public reference, e.g. RISK001.
func (r RiskAssessment) Ref() string { return FormatRef(RiskRefPrefix, r.ID) }

func (RiskAssessment) ExportHeader() []string {
	return []string{"risk_id", "company", "risk_type", "risk_level", "description", "mitigation_plan", "assessed_by", "assessed_date"}
}

func (r RiskAssessment) ExportRow() []string {
	return []string{
		r.Ref(),
		r.Company,
		r.RiskType,
		r.RiskLevel,
		r.Description,
		r.MitigationPlan,
		r.AssessedBy,
		formatDate(r.AssessedDate),
	}
}
