package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// transitionFunc computes the next state of a locked record.
type transitionFunc func(current domain.EvaluationRecord) (domain.EvaluationRecord, error)

// transition reads the record FOR UPDATE, refuses records held by another
// actor, computes the next state, writes it and appends the audit entry, all
// in one transaction. Nothing is written when next returns an error.
func (s *Service) transition(
	ctx context.Context,
	operation string,
	action domain.AuditAction,
	recordID uuid.UUID,
	extra map[string]any,
	next transitionFunc,
) (domain.EvaluationRecord, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.EvaluationRecord{}, domain.ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return domain.EvaluationRecord{}, domain.NewValidationError("record_id", "required")
	}

	var updated domain.EvaluationRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.records.GetForUpdate(txCtx, id.TenantID, recordID)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		if err := current.CheckLock(id.UserID); err != nil {
			return err
		}

		proposed, err := next(current)
		if err != nil {
			return err
		}

		updated, err = s.records.Update(txCtx, proposed, id.UserID)
		if err != nil {
			return fmt.Errorf("update record: %w", err)
		}

		changes := domain.Diff(current, updated)
		for k, v := range extra {
			changes[k] = v
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeEvaluation,
			EntityID:   &updated.ID,
			Action:     action,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		s.metrics.IncTransition(operation, outcome(err))
		return domain.EvaluationRecord{}, err
	}

	s.metrics.IncTransition(operation, metrics.OutcomeOK)
	s.log.InfoContext(ctx, "record transitioned",
		slog.String("operation", operation),
		slog.String("record_id", updated.ID.String()),
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("actor_id", id.UserID.String()),
		slog.String("applicability", updated.Applicability.String()),
		slog.String("state", updated.State.String()),
	)
	return updated, nil
}

// outcome labels business rejections apart from infrastructure failures.
func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrLocked),
		errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeError
	}
}
