package lineage

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// RestoreInput identifies the version to bring back into force.
type RestoreInput struct {
	ArticleID uuid.UUID
	VersionID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RestoreInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if i.VersionID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "version_id", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateVersionInput describes a new in-force version. PreviousVigor is the
// status given to the version it replaces; it defaults to superseded.
type CreateVersionInput struct {
	ArticleID     uuid.UUID
	Content       string
	EffectiveDate time.Time
	Notes         *string
	PreviousVigor domain.VigorStatus
}

// Validate checks all fields and collects all errors.
func (i CreateVersionInput) Validate() error {
	var errs []domain.FieldError

	if i.ArticleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "article_id", Message: "required"})
	}
	if strings.TrimSpace(i.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if i.EffectiveDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "effective_date", Message: "required"})
	}
	switch i.PreviousVigor {
	case "", domain.VigorSuperseded, domain.VigorAbrogated:
	default:
		errs = append(errs, domain.FieldError{Field: "previous_vigor", Message: "must be superseded or abrogated"})
	}
	if i.Notes != nil && len(*i.Notes) > 2000 {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
