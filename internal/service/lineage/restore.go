package lineage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// RestoreVersion
// ---------------------------------------------------------------------------

// RestoreVersion brings the content of a past version back into force as a
// new leaf of the lineage. The historical version is never modified.
//
// An abrogation of the article dated after the target version blocks the
// restore with a *domain.RestoreConflictError. Later replacements and
// amendments do not block it and are returned as a warning. The article row
// is locked for the whole unit so two lineage changes never interleave.
func (s *Service) RestoreVersion(ctx context.Context, input RestoreInput) (domain.RestoreResult, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.RestoreResult{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.RestoreResult{}, err
	}

	ctx, span := tracer.Start(ctx, "lineage.RestoreVersion",
		trace.WithAttributes(
			attribute.String("article_id", input.ArticleID.String()),
			attribute.String("version_id", input.VersionID.String()),
		),
	)
	defer span.End()

	var result domain.RestoreResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.corpus.GetArticleForUpdate(txCtx, input.ArticleID); err != nil {
			return fmt.Errorf("get article: %w", err)
		}

		target, err := s.corpus.GetVersion(txCtx, input.VersionID)
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		if target.ArticleID != input.ArticleID {
			return fmt.Errorf("version %s of article %s: %w", input.VersionID, input.ArticleID, domain.ErrNotFound)
		}

		effects, err := s.corpus.ListLegalEffects(txCtx, input.ArticleID, target.EffectiveDate)
		if err != nil {
			return fmt.Errorf("list legal effects: %w", err)
		}
		warning, err := domain.RestoreConflict(effects, target.EffectiveDate)
		if err != nil {
			return err
		}

		current, err := s.currentVersion(txCtx, input.ArticleID)
		if err != nil {
			return err
		}

		notes := fmt.Sprintf("Restored from version %d (%s)", target.Sequence, target.EffectiveDate.Format(time.DateOnly))
		created, err := s.appendVersion(txCtx, id.UserID, current, domain.VigorSuperseded, domain.ArticleVersion{
			ArticleID:     input.ArticleID,
			Content:       target.Content,
			EffectiveDate: s.today(),
			Notes:         &notes,
		})
		if err != nil {
			return err
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeArticleVersion,
			EntityID:   &created.ID,
			Action:     domain.AuditActionRestore,
			Changes: map[string]any{
				"article_id":        input.ArticleID.String(),
				"restored_version":  target.ID.String(),
				"restored_sequence": target.Sequence,
				"sequence":          map[string]any{"new": created.Sequence},
				"superseded":        current.ID.String(),
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}

		result = domain.RestoreResult{
			Version:    created,
			Superseded: []uuid.UUID{current.ID},
			Warning:    warning,
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		var conflict *domain.RestoreConflictError
		if errors.As(err, &conflict) {
			span.SetStatus(codes.Error, "restore blocked")
			s.metrics.IncRestore("blocked")
			s.log.WarnContext(ctx, "version restore blocked",
				slog.String("article_id", input.ArticleID.String()),
				slog.String("version_id", input.VersionID.String()),
				slog.String("effect_date", conflict.EffectDate.Format(time.DateOnly)),
			)
			return domain.RestoreResult{}, err
		}
		span.SetStatus(codes.Error, "restore failed")
		s.metrics.IncRestore(metrics.OutcomeError)
		return domain.RestoreResult{}, err
	}

	later := 0
	if result.Warning != nil {
		later = result.Warning.LaterModifications
	}
	span.SetAttributes(
		attribute.Int("lineage.sequence", result.Version.Sequence),
		attribute.Int("lineage.later_modifications", later),
	)
	s.metrics.IncRestore(metrics.OutcomeOK)
	s.log.InfoContext(ctx, "version restored",
		slog.String("article_id", input.ArticleID.String()),
		slog.String("restored_version", input.VersionID.String()),
		slog.Int("sequence", result.Version.Sequence),
		slog.Int("later_modifications", later),
		slog.String("actor_id", id.UserID.String()),
	)
	return result, nil
}

// currentVersion returns the single in-force version of an article. Any
// other count means the lineage is corrupt and nothing may be appended.
func (s *Service) currentVersion(ctx context.Context, articleID uuid.UUID) (domain.ArticleVersion, error) {
	versions, err := s.corpus.ListVersions(ctx, articleID)
	if err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("list versions: %w", err)
	}
	inForce := domain.InForce(versions)
	if len(inForce) != 1 {
		return domain.ArticleVersion{}, fmt.Errorf("lineage integrity: article %s has %d in-force versions: %w",
			articleID, len(inForce), domain.ErrConflict)
	}
	return inForce[0], nil
}

// appendVersion retires previous (when set) with the given vigor, inserts
// next as the new in-force leaf and refreshes the article's current content.
// The retirement runs first so the one-in-force index is never violated.
func (s *Service) appendVersion(
	ctx context.Context,
	actorID uuid.UUID,
	previous domain.ArticleVersion,
	previousVigor domain.VigorStatus,
	next domain.ArticleVersion,
) (domain.ArticleVersion, error) {
	seq, err := s.corpus.MaxSequence(ctx, next.ArticleID)
	if err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("max sequence: %w", err)
	}

	if previous.ID != uuid.Nil {
		n, err := s.corpus.SetVigor(ctx, []uuid.UUID{previous.ID}, previousVigor)
		if err != nil {
			return domain.ArticleVersion{}, fmt.Errorf("retire version: %w", err)
		}
		if n != 1 {
			return domain.ArticleVersion{}, fmt.Errorf("lineage integrity: retired %d versions: %w", n, domain.ErrConflict)
		}
		prevID := previous.ID
		next.SupersedesID = &prevID
	}

	next.ID = uuid.New()
	next.Sequence = seq + 1
	next.Vigor = domain.VigorInForce
	next.CreatedBy = &actorID

	created, err := s.corpus.InsertVersion(ctx, next)
	if err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("insert version: %w", err)
	}
	if err := s.corpus.UpdateCurrentContent(ctx, next.ArticleID, created.Content); err != nil {
		return domain.ArticleVersion{}, fmt.Errorf("update current content: %w", err)
	}
	return created, nil
}
