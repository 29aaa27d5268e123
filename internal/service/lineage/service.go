// Package lineage manages the append-only version history of regulatory
// articles: authoring new versions and restoring old ones.
package lineage

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
)

var tracer = otel.Tracer("compliance.lineage")

type corpusRepo interface {
	GetArticle(ctx context.Context, id uuid.UUID) (domain.Article, error)
	GetArticleForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error)
	UpdateCurrentContent(ctx context.Context, articleID uuid.UUID, content string) error
	GetVersion(ctx context.Context, id uuid.UUID) (domain.ArticleVersion, error)
	ListVersions(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleVersion, error)
	MaxSequence(ctx context.Context, articleID uuid.UUID) (int, error)
	InsertVersion(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error)
	SetVigor(ctx context.Context, ids []uuid.UUID, vigor domain.VigorStatus) (int, error)
	ListLegalEffects(ctx context.Context, targetArticleID uuid.UUID, after time.Time) ([]domain.LegalEffect, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service appends versions to article lineages.
type Service struct {
	corpus  corpusRepo
	audit   auditLogger
	tx      txManager
	metrics *metrics.Metrics
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new lineage service.
func NewService(log *slog.Logger, corpus corpusRepo, audit auditLogger, tx txManager, m *metrics.Metrics) *Service {
	return &Service{
		corpus:  corpus,
		audit:   audit,
		tx:      tx,
		metrics: m,
		log:     log.With("service", "lineage"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// today returns the current UTC date at midnight.
func (s *Service) today() time.Time {
	return s.now().UTC().Truncate(24 * time.Hour)
}
