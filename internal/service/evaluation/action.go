package evaluation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// CreateAction spawns a corrective action on a record. It is accepted
// whatever the conformity state so actions can be backfilled.
func (s *Service) CreateAction(ctx context.Context, input CreateActionInput) (domain.CorrectiveAction, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.CorrectiveAction{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.CorrectiveAction{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	action := domain.CorrectiveAction{
		ID:              uuid.New(),
		RecordID:        input.RecordID,
		TenantID:        id.TenantID,
		Title:           strings.TrimSpace(input.Title),
		Description:     trimOrNil(input.Description),
		ResponsibleID:   input.ResponsibleID,
		ResponsibleName: trimOrNil(input.ResponsibleName),
		DueDate:         input.DueDate,
		Priority:        priority,
		Status:          domain.ActionTodo,
		CreatedBy:       &id.UserID,
	}

	var created domain.CorrectiveAction
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.records.Get(txCtx, id.TenantID, input.RecordID); err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		var err error
		created, err = s.actions.Create(txCtx, action)
		if err != nil {
			return fmt.Errorf("create corrective action: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeAction,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"record_id": input.RecordID.String(),
				"title":     map[string]any{"new": created.Title},
				"priority":  map[string]any{"new": created.Priority},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.CorrectiveAction{}, err
	}

	s.log.InfoContext(ctx, "corrective action created",
		slog.String("action_id", created.ID.String()),
		slog.String("record_id", input.RecordID.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return created, nil
}

// DeleteAction removes a corrective action.
func (s *Service) DeleteAction(ctx context.Context, actionID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if actionID == uuid.Nil {
		return domain.NewValidationError("action_id", "required")
	}

	return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deleted, err := s.actions.Delete(txCtx, id.TenantID, actionID)
		if err != nil {
			return fmt.Errorf("delete corrective action: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeAction,
			EntityID:   &deleted.ID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"record_id": deleted.RecordID.String(), "title": deleted.Title},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
}
