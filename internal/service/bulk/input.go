package bulk

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// UpdateInput is one change set applied to every listed record.
type UpdateInput struct {
	RecordIDs []uuid.UUID
	Changes   domain.ChangeSet
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate(maxRecords int) error {
	var errs []domain.FieldError

	if len(i.RecordIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "record_ids", Message: "at least one record is required"})
	}
	if maxRecords > 0 && len(i.RecordIDs) > maxRecords {
		errs = append(errs, domain.FieldError{Field: "record_ids", Message: fmt.Sprintf("max %d records", maxRecords)})
	}
	for _, id := range i.RecordIDs {
		if id == uuid.Nil {
			errs = append(errs, domain.FieldError{Field: "record_ids", Message: "contains an empty id"})
			break
		}
	}
	if err := i.Changes.Validate(); err != nil {
		if ve, ok := err.(*domain.ValidationError); ok {
			errs = append(errs, ve.Errors...)
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// uniqueIDs drops duplicates, keeping the first occurrence.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
