package query

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// MaxPage bounds the requested page so the row offset stays far from
// integer overflow.
const MaxPage = 100_000

// ListInput selects one page of a site's records.
type ListInput struct {
	SiteID uuid.UUID
	Filter domain.EvaluationFilter
	Search string
	Page   int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.SiteID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "site_id", Message: "required"})
	}
	switch {
	case i.Page < 0:
		errs = append(errs, domain.FieldError{Field: "page", Message: "must not be negative"})
	case i.Page > MaxPage:
		errs = append(errs, domain.FieldError{Field: "page", Message: fmt.Sprintf("max %d", MaxPage)})
	}
	if len(i.Search) > 200 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if err := i.Filter.Validate(); err != nil {
		if ve, ok := err.(*domain.ValidationError); ok {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ExportInput selects the records of an export. It has no page: the export
// walks every page up to the configured bound.
type ExportInput struct {
	SiteID uuid.UUID
	Filter domain.EvaluationFilter
	Search string
}

// CreateViewInput describes a new saved view. Team views are bound to the
// caller's team.
type CreateViewInput struct {
	Name    string
	Scope   domain.ViewScope
	Filters domain.EvaluationFilter
	Search  string
}

// Validate checks all fields and collects all errors.
func (i CreateViewInput) Validate() error {
	return validateView(i.Name, i.Scope, i.Filters, i.Search)
}

// UpdateViewInput replaces the content of a saved view.
type UpdateViewInput struct {
	ID      uuid.UUID
	Name    string
	Scope   domain.ViewScope
	Filters domain.EvaluationFilter
	Search  string
}

// Validate checks all fields and collects all errors.
func (i UpdateViewInput) Validate() error {
	err := validateView(i.Name, i.Scope, i.Filters, i.Search)
	if i.ID != uuid.Nil {
		return err
	}

	errs := []domain.FieldError{{Field: "id", Message: "required"}}
	if ve, ok := err.(*domain.ValidationError); ok {
		errs = append(errs, ve.Errors...)
	}
	return &domain.ValidationError{Errors: errs}
}

func validateView(name string, scope domain.ViewScope, filters domain.EvaluationFilter, search string) error {
	var errs []domain.FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 120 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 120 characters"})
	}
	if !scope.IsValid() {
		errs = append(errs, domain.FieldError{Field: "scope", Message: "invalid value"})
	}
	if len(search) > 200 {
		errs = append(errs, domain.FieldError{Field: "search", Message: "max 200 characters"})
	}
	if err := filters.Validate(); err != nil {
		if ve, ok := err.(*domain.ValidationError); ok {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
