// Package evaluation owns the transition rules of an evaluation record:
// applicability, conformity, suggestions, proofs, corrective actions and
// the record lock.
package evaluation

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
)

type recordRepo interface {
	Get(ctx context.Context, tenantID, id uuid.UUID) (domain.EvaluationRecord, error)
	GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (domain.EvaluationRecord, error)
	Update(ctx context.Context, rec domain.EvaluationRecord, actorID uuid.UUID) (domain.EvaluationRecord, error)
	SetSuggestions(ctx context.Context, tenantID, id uuid.UUID, payload domain.SuggestionPayload) (domain.EvaluationRecord, error)
	SetLock(ctx context.Context, tenantID, id uuid.UUID, holder *uuid.UUID) (domain.EvaluationRecord, error)
}

type proofRepo interface {
	Create(ctx context.Context, p domain.Proof) (domain.Proof, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) (domain.Proof, error)
	GetFileByPath(ctx context.Context, tenantID uuid.UUID, path string) (domain.Proof, error)
}

type actionRepo interface {
	Create(ctx context.Context, a domain.CorrectiveAction) (domain.CorrectiveAction, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) (domain.CorrectiveAction, error)
}

type urlSigner interface {
	SignURL(bucket, path string) (string, time.Time, error)
}

type urlCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, url string, ttl time.Duration) error
	Invalidate(ctx context.Context, key string) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
	GetByEntity(ctx context.Context, tenantID uuid.UUID, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service applies state-machine transitions to evaluation records.
type Service struct {
	records  recordRepo
	proofs   proofRepo
	actions  actionRepo
	signer   urlSigner
	cache    urlCache
	cacheTTL time.Duration
	audit    auditLogger
	tx       txManager
	metrics  *metrics.Metrics
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new evaluation service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	proofs proofRepo,
	actions actionRepo,
	signer urlSigner,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
) *Service {
	return &Service{
		records: records,
		proofs:  proofs,
		actions: actions,
		signer:  signer,
		audit:   audit,
		tx:      tx,
		metrics: m,
		log:     log.With("service", "evaluation"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// WithURLCache enables caching of resolved proof URLs for ttl.
func (s *Service) WithURLCache(cache urlCache, ttl time.Duration) *Service {
	s.cache = cache
	s.cacheTTL = ttl
	return s
}
