package lineage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// CreateVersion appends a new in-force version and retires the current one
// as superseded or abrogated. An article without any version gets its first.
func (s *Service) CreateVersion(ctx context.Context, input CreateVersionInput) (domain.ArticleVersion, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ArticleVersion{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ArticleVersion{}, err
	}

	previousVigor := input.PreviousVigor
	if previousVigor == "" {
		previousVigor = domain.VigorSuperseded
	}

	var created domain.ArticleVersion
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.corpus.GetArticleForUpdate(txCtx, input.ArticleID); err != nil {
			return fmt.Errorf("get article: %w", err)
		}

		versions, err := s.corpus.ListVersions(txCtx, input.ArticleID)
		if err != nil {
			return fmt.Errorf("list versions: %w", err)
		}
		var previous domain.ArticleVersion
		switch inForce := domain.InForce(versions); len(inForce) {
		case 0:
		case 1:
			previous = inForce[0]
		default:
			return fmt.Errorf("lineage integrity: article %s has %d in-force versions: %w",
				input.ArticleID, len(inForce), domain.ErrConflict)
		}

		var notes *string
		if input.Notes != nil {
			if trimmed := strings.TrimSpace(*input.Notes); trimmed != "" {
				notes = &trimmed
			}
		}

		created, err = s.appendVersion(txCtx, id.UserID, previous, previousVigor, domain.ArticleVersion{
			ArticleID:     input.ArticleID,
			Content:       input.Content,
			EffectiveDate: input.EffectiveDate.UTC().Truncate(24 * time.Hour),
			Notes:         notes,
		})
		if err != nil {
			return err
		}

		changes := map[string]any{
			"article_id": input.ArticleID.String(),
			"sequence":   map[string]any{"new": created.Sequence},
		}
		if previous.ID != uuid.Nil {
			changes["previous"] = map[string]any{"id": previous.ID.String(), "vigor": previousVigor}
		}
		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeArticleVersion,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.ArticleVersion{}, err
	}

	s.log.InfoContext(ctx, "article version created",
		slog.String("article_id", input.ArticleID.String()),
		slog.Int("sequence", created.Sequence),
		slog.String("actor_id", id.UserID.String()),
	)
	return created, nil
}

// ListVersions returns the lineage of an article ordered by effective date
// then sequence. Soft-deleted versions are left out. An unknown article is
// reported as not found rather than as an empty lineage.
func (s *Service) ListVersions(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleVersion, error) {
	if _, ok := ctxutil.IdentityFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if articleID == uuid.Nil {
		return nil, domain.NewValidationError("article_id", "required")
	}

	if _, err := s.corpus.GetArticle(ctx, articleID); err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	versions, err := s.corpus.ListVersions(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	if versions == nil {
		versions = []domain.ArticleVersion{}
	}
	return versions, nil
}
