package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// Lock marks a record as in use by the caller. Locking a record the caller
// already holds is a no-op. A record held by someone else yields LockedError.
func (s *Service) Lock(ctx context.Context, recordID uuid.UUID) (domain.EvaluationRecord, error) {
	return s.setLock(ctx, recordID, true)
}

// Unlock releases the caller's lock. Unlocking a free record is a no-op.
func (s *Service) Unlock(ctx context.Context, recordID uuid.UUID) (domain.EvaluationRecord, error) {
	return s.setLock(ctx, recordID, false)
}

func (s *Service) setLock(ctx context.Context, recordID uuid.UUID, lock bool) (domain.EvaluationRecord, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.EvaluationRecord{}, domain.ErrUnauthorized
	}
	if recordID == uuid.Nil {
		return domain.EvaluationRecord{}, domain.NewValidationError("record_id", "required")
	}

	action := domain.AuditActionUnlock
	var holder *uuid.UUID
	if lock {
		action = domain.AuditActionLock
		holder = &id.UserID
	}

	var result domain.EvaluationRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.records.GetForUpdate(txCtx, id.TenantID, recordID)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}
		if err := current.CheckLock(id.UserID); err != nil {
			return err
		}
		if current.Locked() == lock {
			result = current
			return nil
		}

		result, err = s.records.SetLock(txCtx, id.TenantID, recordID, holder)
		if err != nil {
			return fmt.Errorf("set lock: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeEvaluation,
			EntityID:   &recordID,
			Action:     action,
			Changes:    map[string]any{},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.EvaluationRecord{}, err
	}

	s.log.InfoContext(ctx, "record lock changed",
		slog.String("record_id", recordID.String()),
		slog.Bool("locked", result.Locked()),
		slog.String("actor_id", id.UserID.String()),
	)
	return result, nil
}
