package domain

import (
	"strconv"
	"time"
)

// ComplianceStatus is the outcome of a compliance check.
type ComplianceStatus string

const (
	ComplianceCompliant    ComplianceStatus = "Compliant"
	ComplianceNonCompliant ComplianceStatus = "Non-Compliant"
)

// ComplianceRecord is one regulatory check against a company.
type ComplianceRecord struct {
	ID              int64            `json:"id"`
	Company         string           `json:"company" validate:"required,max=100"`
	Regulation      string           `json:"regulation" validate:"required,max=100"`
	Status          ComplianceStatus `json:"status" validate:"required,oneof=Compliant Non-Compliant"`
	Findings        string           `json:"findings"`
	Recommendations string           `json:"recommendations"`
	CheckedBy       string           `json:"checked_by" validate:"required,max=100"`
	NextReviewDate  *time.Time       `json:"next_review_date,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

func (ComplianceRecord) ExportHeader() []string {
	return []string{"id", "company", "regulation", "status", "findings", "recommendations", "checked_by", "next_review_date", "created_at"}
}

func (r ComplianceRecord) ExportRow() []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		r.Company,
		r.Regulation,
		string(r.Status),
		r.Findings,
		r.Recommendations,
		r.CheckedBy,
		formatDatePtr(r.NextReviewDate),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
