package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EvaluationRecord is the evaluation of one regulatory article for one site.
// Records are never deleted, only transitioned.
type EvaluationRecord struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	SiteID        uuid.UUID
	ArticleID     uuid.UUID
	Applicability Applicability
	Reason        *NonApplicableReason
	ReasonComment *string
	State         ConformityState
	Comment       *string
	ImpactLevel   *ImpactLevel
	Suggestions   SuggestionPayload
	LockedBy      *uuid.UUID
	LockedAt      *time.Time
	UpdatedBy     *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Read-side projections, populated by list queries only.
	Article *ArticleSummary
	Proofs  []Proof
	Actions []CorrectiveAction
}

// ArticleSummary is the article metadata joined onto an evaluation row.
type ArticleSummary struct {
	ID            uuid.UUID
	Number        string
	Title         string
	Reference     *string
	DomainCode    *string
	SubDomainCode *string
	TextTitle     *string
	TextReference *string
	SourceType    *string
}

// Locked reports whether any actor currently holds the record.
func (r EvaluationRecord) Locked() bool {
	return r.LockedBy != nil
}

// CheckLock fails when the record is held by someone other than actor.
func (r EvaluationRecord) CheckLock(actor uuid.UUID) error {
	if r.LockedBy != nil && *r.LockedBy != actor {
		return &LockedError{RecordID: r.ID, HolderID: *r.LockedBy}
	}
	return nil
}

// Validate checks the motif invariant on the record's current values.
func (r EvaluationRecord) Validate() error {
	var errs []FieldError

	if !r.Applicability.IsValid() {
		errs = append(errs, FieldError{Field: "applicability", Message: "invalid value"})
	}
	if !r.State.IsValid() {
		errs = append(errs, FieldError{Field: "state", Message: "invalid value"})
	}

	if r.Applicability == ApplicabilityNonApplicable {
		if r.Reason == nil {
			errs = append(errs, FieldError{Field: "reason", Message: "required when applicability is NON_APPLICABLE"})
		} else if *r.Reason == ReasonOther && strings.TrimSpace(deref(r.ReasonComment)) == "" {
			errs = append(errs, FieldError{Field: "reason_comment", Message: "required when reason is AUTRE"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// ChangeSet is a partial update of an evaluation record. Nil fields are left untouched.
type ChangeSet struct {
	Applicability *Applicability
	Reason        *NonApplicableReason
	ReasonComment *string
	State         *ConformityState
	Comment       *string
	ImpactLevel   *ImpactLevel
}

// IsEmpty reports whether the change set carries no field at all.
func (c ChangeSet) IsEmpty() bool {
	return c.Applicability == nil && c.Reason == nil && c.ReasonComment == nil &&
		c.State == nil && c.Comment == nil && c.ImpactLevel == nil
}

// Validate checks the shape of the change set independently of any record.
func (c ChangeSet) Validate() error {
	var errs []FieldError

	if c.IsEmpty() {
		errs = append(errs, FieldError{Field: "changes", Message: "at least one field must be provided"})
	}
	if c.Applicability != nil && !c.Applicability.IsValid() {
		errs = append(errs, FieldError{Field: "applicability", Message: "invalid value"})
	}
	if c.Reason != nil && !c.Reason.IsValid() {
		errs = append(errs, FieldError{Field: "reason", Message: "invalid value"})
	}
	if c.State != nil && !c.State.IsValid() {
		errs = append(errs, FieldError{Field: "state", Message: "invalid value"})
	}
	if c.ImpactLevel != nil && !c.ImpactLevel.IsValid() {
		errs = append(errs, FieldError{Field: "impact_level", Message: "invalid value"})
	}
	if c.ReasonComment != nil && len(*c.ReasonComment) > 2000 {
		errs = append(errs, FieldError{Field: "reason_comment", Message: "max 2000 characters"})
	}
	if c.Comment != nil && len(*c.Comment) > 5000 {
		errs = append(errs, FieldError{Field: "comment", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// Apply merges the change set into a copy of r and validates the result.
// Moving to APPLICABLE clears the reason and its comment. The conformity
// state is never reset implicitly. On error r is returned unchanged.
func (r EvaluationRecord) Apply(c ChangeSet) (EvaluationRecord, error) {
	if err := c.Validate(); err != nil {
		return r, err
	}

	next := r

	if c.Applicability != nil {
		next.Applicability = *c.Applicability
	}

	switch next.Applicability {
	case ApplicabilityApplicable:
		if c.Reason != nil {
			return r, NewValidationError("reason", "only allowed when applicability is NON_APPLICABLE")
		}
		if c.ReasonComment != nil && strings.TrimSpace(*c.ReasonComment) != "" {
			return r, NewValidationError("reason_comment", "only allowed when applicability is NON_APPLICABLE")
		}
		next.Reason = nil
		next.ReasonComment = nil
	case ApplicabilityNonApplicable:
		if c.Reason != nil {
			reason := *c.Reason
			next.Reason = &reason
		}
		if c.ReasonComment != nil {
			next.ReasonComment = trimOrNil(c.ReasonComment)
		}
	}

	if c.State != nil {
		next.State = *c.State
	}
	if c.Comment != nil {
		next.Comment = trimOrNil(c.Comment)
	}
	if c.ImpactLevel != nil {
		level := *c.ImpactLevel
		next.ImpactLevel = &level
	}

	if err := next.Validate(); err != nil {
		return r, err
	}
	return next, nil
}

// Diff returns the audit change map between two versions of a record.
func Diff(old, updated EvaluationRecord) map[string]any {
	changes := make(map[string]any)
	if old.Applicability != updated.Applicability {
		changes["applicability"] = map[string]any{"old": old.Applicability, "new": updated.Applicability}
	}
	if deref(old.Reason) != deref(updated.Reason) {
		changes["reason"] = map[string]any{"old": old.Reason, "new": updated.Reason}
	}
	if deref(old.ReasonComment) != deref(updated.ReasonComment) {
		changes["reason_comment"] = map[string]any{"old": old.ReasonComment, "new": updated.ReasonComment}
	}
	if old.State != updated.State {
		changes["state"] = map[string]any{"old": old.State, "new": updated.State}
	}
	if deref(old.Comment) != deref(updated.Comment) {
		changes["comment"] = map[string]any{"old": old.Comment, "new": updated.Comment}
	}
	if deref(old.ImpactLevel) != deref(updated.ImpactLevel) {
		changes["impact_level"] = map[string]any{"old": old.ImpactLevel, "new": updated.ImpactLevel}
	}
	return changes
}

func deref[T ~string](p *T) T {
	if p == nil {
		return ""
	}
	return *p
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
