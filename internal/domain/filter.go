package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProofPresence filters records by whether they carry at least one proof.
type ProofPresence string

const (
	ProofWith    ProofPresence = "with"
	ProofWithout ProofPresence = "without"
)

func (p ProofPresence) IsValid() bool {
	return p == ProofWith || p == ProofWithout
}

// EvaluationFilter is the combinable set of list filters. It is also the
// serialized body of a saved view, hence the JSON tags.
type EvaluationFilter struct {
	DomainCode        *string              `json:"domainCode,omitempty"`
	SubDomainCode     *string              `json:"subDomainCode,omitempty"`
	Applicability     *Applicability       `json:"applicability,omitempty"`
	Reason            *NonApplicableReason `json:"motif,omitempty"`
	State             *ConformityState     `json:"state,omitempty"`
	Proof             *ProofPresence       `json:"hasProof,omitempty"`
	SourceType        *string              `json:"sourceType,omitempty"`
	UpdatedWithinDays *int                 `json:"updatedWithinDays,omitempty"`
	ImpactLevel       *ImpactLevel         `json:"impactLevel,omitempty"`
}

// Validate checks enum values and dependent filters.
func (f EvaluationFilter) Validate() error {
	var errs []FieldError

	if f.SubDomainCode != nil && f.DomainCode == nil {
		errs = append(errs, FieldError{Field: "subDomainCode", Message: "requires domainCode"})
	}
	if f.Applicability != nil && !f.Applicability.IsValid() {
		errs = append(errs, FieldError{Field: "applicability", Message: "invalid value"})
	}
	if f.Reason != nil && !f.Reason.IsValid() {
		errs = append(errs, FieldError{Field: "motif", Message: "invalid value"})
	}
	if f.State != nil && !f.State.IsValid() {
		errs = append(errs, FieldError{Field: "state", Message: "invalid value"})
	}
	if f.Proof != nil && !f.Proof.IsValid() {
		errs = append(errs, FieldError{Field: "hasProof", Message: "invalid value"})
	}
	if f.UpdatedWithinDays != nil && *f.UpdatedWithinDays <= 0 {
		errs = append(errs, FieldError{Field: "updatedWithinDays", Message: "must be positive"})
	}
	if f.ImpactLevel != nil && !f.ImpactLevel.IsValid() {
		errs = append(errs, FieldError{Field: "impactLevel", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// EvaluationQuery is a fully scoped list request.
type EvaluationQuery struct {
	TenantID uuid.UUID
	SiteID   uuid.UUID
	Filter   EvaluationFilter
	Search   string
	Page     int
	PageSize int
	// Now anchors the "updated within N days" window.
	Now time.Time
}

// NormalizedSearch returns the trimmed search text.
func (q EvaluationQuery) NormalizedSearch() string {
	return strings.TrimSpace(q.Search)
}

// EvaluationPage is one page of a list result.
type EvaluationPage struct {
	Records    []EvaluationRecord
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}

// TotalPagesFor computes ceil(total/pageSize), at least 1.
func TotalPagesFor(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}
