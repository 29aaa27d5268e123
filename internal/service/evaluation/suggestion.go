package evaluation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// ApplySuggestion performs the mutation proposed by the suggestion of kind
// and marks the slot applied, in the same write. When the mutation is
// invalid nothing changes and the slot stays pending.
func (s *Service) ApplySuggestion(ctx context.Context, recordID uuid.UUID, kind domain.SuggestionKind) (domain.EvaluationRecord, error) {
	if !kind.IsValid() {
		return domain.EvaluationRecord{}, domain.NewValidationError("kind", "invalid value")
	}

	rec, err := s.transition(ctx, "suggestion_apply", domain.AuditActionApply, recordID,
		map[string]any{"suggestion": kind.String()},
		func(current domain.EvaluationRecord) (domain.EvaluationRecord, error) {
			cs, err := current.Suggestions.ChangeSet(kind, current)
			if err != nil {
				return current, err
			}
			next, err := current.Apply(cs)
			if err != nil {
				return current, err
			}
			next.Suggestions = current.Suggestions.WithStatus(kind, domain.SuggestionApplied, s.now())
			return next, nil
		})
	if err != nil {
		return domain.EvaluationRecord{}, err
	}

	s.metrics.IncSuggestion(kind.String(), "applied")
	return rec, nil
}

// IgnoreSuggestion marks a pending slot ignored. Nothing else on the record
// changes.
func (s *Service) IgnoreSuggestion(ctx context.Context, recordID uuid.UUID, kind domain.SuggestionKind) (domain.EvaluationRecord, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.EvaluationRecord{}, domain.ErrUnauthorized
	}
	if !kind.IsValid() {
		return domain.EvaluationRecord{}, domain.NewValidationError("kind", "invalid value")
	}

	var updated domain.EvaluationRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.records.GetForUpdate(txCtx, id.TenantID, recordID)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		slot := current.Suggestions.Slot(kind)
		if slot == nil {
			return domain.NewValidationError("suggestion", "no suggestion of this kind")
		}
		if slot.Status != domain.SuggestionPending {
			return domain.NewValidationError("suggestion", "suggestion already "+slot.Status.String())
		}

		payload := current.Suggestions.WithStatus(kind, domain.SuggestionIgnored, s.now())
		updated, err = s.records.SetSuggestions(txCtx, id.TenantID, recordID, payload)
		if err != nil {
			return fmt.Errorf("set suggestions: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeEvaluation,
			EntityID:   &recordID,
			Action:     domain.AuditActionIgnore,
			Changes:    map[string]any{"suggestion": kind.String(), "value": slot.Value},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.EvaluationRecord{}, err
	}

	s.metrics.IncSuggestion(kind.String(), "ignored")
	s.log.InfoContext(ctx, "suggestion ignored",
		slog.String("record_id", recordID.String()),
		slog.String("kind", kind.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return updated, nil
}

// RecordSuggestions stores a payload produced by the upstream suggestion
// engine. Every slot present in raw replaces the stored one and is reset to
// pending. Slots absent from raw are kept.
func (s *Service) RecordSuggestions(ctx context.Context, tenantID, recordID uuid.UUID, raw []byte) error {
	incoming := domain.ParseSuggestionPayload(raw)
	if incoming.IsEmpty() {
		return domain.NewValidationError("payload", "no suggestion slot")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.records.GetForUpdate(txCtx, tenantID, recordID)
		if err != nil {
			return fmt.Errorf("get record: %w", err)
		}

		merged := current.Suggestions.Merge(incoming, s.now())
		if _, err := s.records.SetSuggestions(txCtx, tenantID, recordID, merged); err != nil {
			return fmt.Errorf("set suggestions: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   tenantID,
			ActorID:    domain.SystemActorID,
			EntityType: domain.EntityTypeEvaluation,
			EntityID:   &recordID,
			Action:     domain.AuditActionUpdate,
			Changes:    map[string]any{"suggestions": recordedKinds(incoming)},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, kind := range recordedKinds(incoming) {
		s.metrics.IncSuggestion(kind, "recorded")
	}
	s.log.InfoContext(ctx, "suggestions recorded",
		slog.String("record_id", recordID.String()),
		slog.String("tenant_id", tenantID.String()),
	)
	return nil
}

func recordedKinds(p domain.SuggestionPayload) []string {
	var kinds []string
	if p.Applicability != nil {
		kinds = append(kinds, domain.SuggestionApplicability.String())
	}
	if p.State != nil {
		kinds = append(kinds, domain.SuggestionState.String())
	}
	return kinds
}
