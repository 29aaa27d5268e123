package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")
	ErrLocked        = errors.New("record is locked")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ErrIncompleteSuggestion is returned when an applicability suggestion
// cannot be applied because it lacks a reason or a required comment.
var ErrIncompleteSuggestion = NewValidationError("suggestion", "incomplete suggestion")

// RestoreConflictError reports a legal effect that forbids restoring
// an article version.
type RestoreConflictError struct {
	EffectType      LegalEffectType
	EffectDate      time.Time
	SourceArticleID uuid.UUID
}

func (e *RestoreConflictError) Error() string {
	return fmt.Sprintf("version restore blocked: article abrogated on %s", e.EffectDate.Format(time.DateOnly))
}

func (e *RestoreConflictError) Unwrap() error { return ErrConflict }

// LockedError reports a mutation attempted on a record held by another actor.
type LockedError struct {
	RecordID uuid.UUID
	HolderID uuid.UUID
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("evaluation record %s is locked by %s", e.RecordID, e.HolderID)
}

func (e *LockedError) Unwrap() error { return ErrLocked }

// RecordFailure is one rejected record inside a bulk operation.
type RecordFailure struct {
	RecordID uuid.UUID
	Err      error
}

// BulkError aggregates every per-record failure of an aborted bulk operation.
type BulkError struct {
	Failures []RecordFailure
}

func (e *BulkError) Error() string {
	if len(e.Failures) == 1 {
		return fmt.Sprintf("bulk update aborted: record %s: %v", e.Failures[0].RecordID, e.Failures[0].Err)
	}
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.RecordID.String())
	}
	return fmt.Sprintf("bulk update aborted: %d records rejected (%s)", len(e.Failures), strings.Join(parts, ", "))
}

// Unwrap exposes each cause so errors.Is matches any of them.
func (e *BulkError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// FailedIDs returns the identifiers of the rejected records in input order.
func (e *BulkError) FailedIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(e.Failures))
	for i, f := range e.Failures {
		ids[i] = f.RecordID
	}
	return ids
}
