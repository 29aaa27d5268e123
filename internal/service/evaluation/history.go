package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// History returns the audit trail of a record, newest first. The record must
// belong to the caller's tenant; a record of another tenant is reported as
// not found.
func (s *Service) History(ctx context.Context, recordID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return nil, domain.NewValidationError("record_id", "required")
	}
	switch {
	case limit < 0 || limit > maxHistoryLimit:
		return nil, domain.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", maxHistoryLimit))
	case limit == 0:
		limit = defaultHistoryLimit
	}

	if _, err := s.records.Get(ctx, id.TenantID, recordID); err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	entries, err := s.audit.GetByEntity(ctx, id.TenantID, domain.EntityTypeEvaluation, recordID, limit)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	if entries == nil {
		entries = []domain.AuditRecord{}
	}
	return entries, nil
}
