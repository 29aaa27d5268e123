// Package bulk applies one change set to many evaluation records as a
// single all-or-nothing batch.
package bulk

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
)

var tracer = otel.Tracer("compliance.bulk")

type recordRepo interface {
	ListForUpdate(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]domain.EvaluationRecord, error)
	UpdateMany(ctx context.Context, recs []domain.EvaluationRecord, actorID uuid.UUID) ([]domain.EvaluationRecord, error)
}

type capabilityChecker interface {
	HasBulkEditCapability(ctx context.Context) bool
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service coordinates bulk updates.
type Service struct {
	records    recordRepo
	capability capabilityChecker
	audit      auditLogger
	tx         txManager
	metrics    *metrics.Metrics
	maxRecords int
	log        *slog.Logger
}

// NewService creates a new bulk service. maxRecords bounds the size of one batch.
func NewService(
	log *slog.Logger,
	records recordRepo,
	capability capabilityChecker,
	audit auditLogger,
	tx txManager,
	m *metrics.Metrics,
	maxRecords int,
) *Service {
	return &Service{
		records:    records,
		capability: capability,
		audit:      audit,
		tx:         tx,
		metrics:    m,
		maxRecords: maxRecords,
		log:        log.With("service", "bulk"),
	}
}
