package bulk

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// Update applies input.Changes to every record in one transaction.
//
// The capability is checked once, before anything else. Each record's
// resulting state is validated together with its lock. If any record is
// rejected or missing the whole batch is aborted and a *domain.BulkError
// lists every failure; nothing is written.
func (s *Service) Update(ctx context.Context, input UpdateInput) ([]domain.EvaluationRecord, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !s.capability.HasBulkEditCapability(ctx) {
		s.metrics.IncTransition("bulk", metrics.OutcomeRejected)
		return nil, fmt.Errorf("bulk edit capability required: %w", domain.ErrForbidden)
	}
	if err := input.Validate(s.maxRecords); err != nil {
		s.metrics.IncTransition("bulk", metrics.OutcomeRejected)
		return nil, err
	}

	ids := uniqueIDs(input.RecordIDs)

	ctx, span := tracer.Start(ctx, "bulk.Update",
		trace.WithAttributes(
			attribute.String("tenant_id", id.TenantID.String()),
			attribute.Int("bulk.records", len(ids)),
		),
	)
	defer span.End()

	var updated []domain.EvaluationRecord
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.records.ListForUpdate(txCtx, id.TenantID, ids)
		if err != nil {
			return fmt.Errorf("list records: %w", err)
		}

		byID := make(map[uuid.UUID]domain.EvaluationRecord, len(current))
		for _, rec := range current {
			byID[rec.ID] = rec
		}

		proposed := make([]domain.EvaluationRecord, 0, len(ids))
		var failures []domain.RecordFailure
		for _, recID := range ids {
			rec, found := byID[recID]
			if !found {
				failures = append(failures, domain.RecordFailure{RecordID: recID, Err: domain.ErrNotFound})
				continue
			}
			if err := rec.CheckLock(id.UserID); err != nil {
				failures = append(failures, domain.RecordFailure{RecordID: recID, Err: err})
				continue
			}
			next, err := rec.Apply(input.Changes)
			if err != nil {
				failures = append(failures, domain.RecordFailure{RecordID: recID, Err: err})
				continue
			}
			proposed = append(proposed, next)
		}
		if len(failures) > 0 {
			return &domain.BulkError{Failures: failures}
		}

		updated, err = s.records.UpdateMany(txCtx, proposed, id.UserID)
		if err != nil {
			return fmt.Errorf("update records: %w", err)
		}

		for _, rec := range updated {
			auditErr := s.audit.Log(txCtx, domain.AuditRecord{
				TenantID:   id.TenantID,
				ActorID:    id.UserID,
				EntityType: domain.EntityTypeEvaluation,
				EntityID:   &rec.ID,
				Action:     domain.AuditActionBulk,
				Changes:    domain.Diff(byID[rec.ID], rec),
			})
			if auditErr != nil {
				return fmt.Errorf("audit log: %w", auditErr)
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "bulk update aborted")

		var bulkErr *domain.BulkError
		if errors.As(err, &bulkErr) {
			s.metrics.IncTransition("bulk", metrics.OutcomeRejected)
			s.log.WarnContext(ctx, "bulk update rejected",
				slog.String("tenant_id", id.TenantID.String()),
				slog.String("actor_id", id.UserID.String()),
				slog.Int("records", len(ids)),
				slog.Int("failures", len(bulkErr.Failures)),
			)
		} else {
			s.metrics.IncTransition("bulk", metrics.Outcome(err))
		}
		return nil, err
	}

	s.metrics.IncTransition("bulk", metrics.OutcomeOK)
	s.metrics.ObserveBulk(len(updated))
	s.log.InfoContext(ctx, "bulk update applied",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("actor_id", id.UserID.String()),
		slog.Int("records", len(updated)),
	)
	return updated, nil
}
