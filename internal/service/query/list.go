package query

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

// List returns one page of the site's evaluation records, newest first, with
// proofs and corrective actions attached. Missing records for the site's
// articles are seeded first. The total count and page count are always set.
func (s *Service) List(ctx context.Context, input ListInput) (domain.EvaluationPage, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.EvaluationPage{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.EvaluationPage{}, err
	}

	ctx, span := tracer.Start(ctx, "query.List",
		trace.WithAttributes(
			attribute.String("tenant_id", id.TenantID.String()),
			attribute.String("site_id", input.SiteID.String()),
		),
	)
	defer span.End()
	start := time.Now()

	seeded, err := s.records.EnsureSeed(ctx, id.TenantID, input.SiteID)
	if err != nil {
		span.SetStatus(codes.Error, "seed failed")
		return domain.EvaluationPage{}, fmt.Errorf("seed records: %w", err)
	}
	if seeded > 0 {
		s.log.InfoContext(ctx, "evaluation records seeded",
			slog.String("site_id", input.SiteID.String()),
			slog.Int("count", seeded),
		)
	}

	page := max(input.Page, 1)
	query := domain.EvaluationQuery{
		TenantID: id.TenantID,
		SiteID:   input.SiteID,
		Filter:   input.Filter,
		Search:   input.Search,
		Page:     page,
		PageSize: s.cfg.PageSize,
		Now:      s.now(),
	}

	total, err := s.records.Count(ctx, query)
	if err != nil {
		span.SetStatus(codes.Error, "count failed")
		return domain.EvaluationPage{}, fmt.Errorf("count records: %w", err)
	}

	records, err := s.records.List(ctx, query)
	if err != nil {
		span.SetStatus(codes.Error, "list failed")
		return domain.EvaluationPage{}, fmt.Errorf("list records: %w", err)
	}

	if err := s.attachChildren(ctx, records, false); err != nil {
		span.SetStatus(codes.Error, "children failed")
		return domain.EvaluationPage{}, err
	}

	span.SetAttributes(attribute.Int("query.total", total))
	s.metrics.ObserveQuery("list", time.Since(start))

	return domain.EvaluationPage{
		Records:    records,
		Page:       page,
		PageSize:   s.cfg.PageSize,
		TotalCount: total,
		TotalPages: domain.TotalPagesFor(total, s.cfg.PageSize),
	}, nil
}

// attachChildren loads proofs and corrective actions of a page, concurrently
// unless inTx is set: a transaction runs one statement at a time.
func (s *Service) attachChildren(ctx context.Context, records []domain.EvaluationRecord, inTx bool) error {
	if len(records) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}

	var (
		proofs  map[uuid.UUID][]domain.Proof
		actions map[uuid.UUID][]domain.CorrectiveAction
	)
	g, gctx := errgroup.WithContext(ctx)
	if inTx {
		g.SetLimit(1)
	}
	g.Go(func() error {
		var err error
		proofs, err = s.proofs.ListByRecordIDs(gctx, ids)
		if err != nil {
			return fmt.Errorf("list proofs: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		actions, err = s.actions.ListByRecordIDs(gctx, ids)
		if err != nil {
			return fmt.Errorf("list corrective actions: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range records {
		records[i].Proofs = proofs[records[i].ID]
		records[i].Actions = actions[records[i].ID]
	}
	return nil
}
