// Package query serves the read side of evaluations: filtered pages,
// bounded exports and saved views.
package query

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
)

var tracer = otel.Tracer("compliance.query")

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type recordRepo interface {
	EnsureSeed(ctx context.Context, tenantID, siteID uuid.UUID) (int, error)
	List(ctx context.Context, query domain.EvaluationQuery) ([]domain.EvaluationRecord, error)
	Count(ctx context.Context, query domain.EvaluationQuery) (int, error)
}

type proofRepo interface {
	ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.Proof, error)
}

type actionRepo interface {
	ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.CorrectiveAction, error)
}

type viewRepo interface {
	List(ctx context.Context, scope domain.ViewScopeFilter) ([]domain.SavedView, error)
	Get(ctx context.Context, tenantID, id uuid.UUID) (domain.SavedView, error)
	Create(ctx context.Context, v domain.SavedView) (domain.SavedView, error)
	Update(ctx context.Context, v domain.SavedView) (domain.SavedView, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config bounds paging and export.
type Config struct {
	PageSize       int
	ExportPageSize int
	ExportMaxPages int
}

// Service implements listing, export and saved views.
type Service struct {
	records recordRepo
	proofs  proofRepo
	actions actionRepo
	views   viewRepo
	audit   auditLogger
	tx      txManager
	metrics *metrics.Metrics
	cfg     Config
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new query service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	proofs proofRepo,
	actions actionRepo,
	views viewRepo,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
	cfg Config,
) *Service {
	return &Service{
		records: records,
		proofs:  proofs,
		actions: actions,
		views:   views,
		audit:   audit,
		tx:      tx,
		metrics: m,
		cfg:     cfg,
		log:     log.With("service", "query"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}
