package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/tax_compliance_app/internal/core/domain"
)

// ComplianceRequest mirrors the compliance check form.
type ComplianceRequest struct {
	Company         string `form:"company" json:"company"`
	Regulation      string `form:"regulation" json:"regulation"`
	Status          string `form:"status" json:"status"`
	Findings        string `form:"findings" json:"findings"`
	Recommendations string `form:"recommendations" json:"recommendations"`
	CheckedBy       string `form:"checked_by" json:"checked_by"`
	NextReviewDate  string `form:"next_review_date" json:"next_review_date"`
}

func (r ComplianceRequest) ToDomain() (domain.ComplianceRecord, error) {
	next, err := parseOptionalDate("next_review_date", r.NextReviewDate)
	if err != nil {
		return domain.ComplianceRecord{}, err
	}
	return domain.ComplianceRecord{
		Company:         strings.TrimSpace(r.Company),
		Regulation:      strings.TrimSpace(r.Regulation),
		Status:          domain.ComplianceStatus(strings.TrimSpace(r.Status)),
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		CheckedBy:       strings.TrimSpace(r.CheckedBy),
		NextReviewDate:  next,
	}, nil
}

type ComplianceResponse struct {
	ID              int64     `json:"id"`
	Company         string    `json:"company"`
	Regulation      string    `json:"regulation"`
	Status          string    `json:"status"`
	Findings        string    `json:"findings"`
	Recommendations string    `json:"recommendations"`
	CheckedBy       string    `json:"checked_by"`
	NextReviewDate  string    `json:"next_review_date,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func ToComplianceResponse(r domain.ComplianceRecord) ComplianceResponse {
	resp := ComplianceResponse{
		ID:              r.ID,
		Company:         r.Company,
		Regulation:      r.Regulation,
		Status:          string(r.Status),
		Findings:        r.Findings,
		Recommendations: r.Recommendations,
		CheckedBy:       r.CheckedBy,
		CreatedAt:       r.CreatedAt,
	}
	if r.NextReviewDate != nil {
		resp.NextReviewDate = date(*r.NextReviewDate)
	}
	return resp
}

// ComplianceForm describes the compliance check form.
func ComplianceForm() FormResponse {
	return FormResponse{
		Title:  "Submit Compliance Check",
		Action: "/compliance/submit",
		Method: "POST",
		Fields: []FormField{
			{Name: "company", Label: "Company", Type: "text", Required: true},
			{Name: "regulation", Label: "Regulation", Type: "text", Required: true},
			{Name: "status", Label: "Status", Type: "select", Required: true, Options: []string{string(domain.ComplianceCompliant), string(domain.ComplianceNonCompliant)}},
			{Name: "findings", Label: "Findings", Type: "textarea"},
			{Name: "recommendations", Label: "Recommendations", Type: "textarea"},
			{Name: "checked_by", Label: "Checked By", Type: "text"},
			{Name: "next_review_date", Label: "Next Review Date", Type: "date"},
		},
	}
}
