package evaluation

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// SetApplicabilityInput holds the parameters of an applicability change.
type SetApplicabilityInput struct {
	RecordID      uuid.UUID
	Applicability domain.Applicability
	Reason        *domain.NonApplicableReason
	ReasonComment *string
}

func (i SetApplicabilityInput) changeSet() domain.ChangeSet {
	value := i.Applicability
	return domain.ChangeSet{Applicability: &value, Reason: i.Reason, ReasonComment: i.ReasonComment}
}

// SetConformityInput holds the parameters of a conformity change.
type SetConformityInput struct {
	RecordID uuid.UUID
	State    domain.ConformityState
}

// UpdateRecordInput holds a general partial update.
type UpdateRecordInput struct {
	RecordID uuid.UUID
	Changes  domain.ChangeSet
}

// AttachProofInput describes a proof to attach. File proofs need a storage
// path, link proofs an absolute http(s) URL.
type AttachProofInput struct {
	RecordID    uuid.UUID
	Type        domain.ProofType
	StoragePath *string
	FileName    *string
	FileType    *string
	FileSize    *int64
	URL         *string
	Comment     *string
}

// Validate checks all fields and collects all errors.
func (i AttachProofInput) Validate() error {
	var errs []domain.FieldError

	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}

	switch i.Type {
	case domain.ProofTypeFile:
		if i.StoragePath == nil || strings.TrimSpace(*i.StoragePath) == "" {
			errs = append(errs, domain.FieldError{Field: "storage_path", Message: "required for a file proof"})
		}
		if i.URL != nil {
			errs = append(errs, domain.FieldError{Field: "url", Message: "not allowed for a file proof"})
		}
		if i.FileSize != nil && *i.FileSize < 0 {
			errs = append(errs, domain.FieldError{Field: "file_size", Message: "must not be negative"})
		}
	case domain.ProofTypeLink:
		if i.URL == nil || !isHTTPURL(*i.URL) {
			errs = append(errs, domain.FieldError{Field: "url", Message: "must be an absolute http(s) URL"})
		}
		if i.StoragePath != nil {
			errs = append(errs, domain.FieldError{Field: "storage_path", Message: "not allowed for a link proof"})
		}
	default:
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid value"})
	}

	if i.Comment != nil && len(*i.Comment) > 2000 {
		errs = append(errs, domain.FieldError{Field: "comment", Message: "max 2000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// CreateActionInput holds the parameters of a corrective action.
type CreateActionInput struct {
	RecordID        uuid.UUID
	Title           string
	Description     *string
	ResponsibleID   *uuid.UUID
	ResponsibleName *string
	DueDate         *time.Time
	Priority        domain.ActionPriority
}

// Validate checks all fields and collects all errors.
func (i CreateActionInput) Validate() error {
	var errs []domain.FieldError

	if i.RecordID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}
	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > 255 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid value"})
	}
	if i.Description != nil && len(*i.Description) > 5000 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
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
