package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/adapter/postgres/action"
	"github.com/heartmarshall/compliance-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/compliance-backend/internal/adapter/postgres/corpus"
	evalrepo "github.com/heartmarshall/compliance-backend/internal/adapter/postgres/evaluation"
	"github.com/heartmarshall/compliance-backend/internal/adapter/postgres/proof"
	"github.com/heartmarshall/compliance-backend/internal/adapter/postgres/savedview"
	"github.com/heartmarshall/compliance-backend/internal/adapter/redis"
	"github.com/heartmarshall/compliance-backend/internal/adapter/storage"
	"github.com/heartmarshall/compliance-backend/internal/auth"
	"github.com/heartmarshall/compliance-backend/internal/config"
	"github.com/heartmarshall/compliance-backend/internal/metrics"
	"github.com/heartmarshall/compliance-backend/internal/service/bulk"
	"github.com/heartmarshall/compliance-backend/internal/service/evaluation"
	"github.com/heartmarshall/compliance-backend/internal/service/lineage"
	"github.com/heartmarshall/compliance-backend/internal/service/query"
)

// Deps holds the connections and services shared by every binary.
type Deps struct {
	Pool    *pgxpool.Pool
	Redis   *redis.Client
	Metrics *metrics.Metrics

	Evaluation *evaluation.Service
	Bulk       *bulk.Service
	Query      *query.Service
	Lineage    *lineage.Service
}

// Close releases the database and cache connections.
func (d *Deps) Close() {
	if d.Redis != nil {
		_ = d.Redis.Close()
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
}

// BuildDeps connects to PostgreSQL and, when configured, Redis, then wires
// repositories into the services. Instruments are registered on reg.
// A Redis failure disables the URL cache instead of failing startup.
func BuildDeps(ctx context.Context, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Deps, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	rdb, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		logger.WarnContext(ctx, "redis unavailable, proof url cache disabled", slog.String("error", err.Error()))
		rdb = nil
	}

	deps, err := newDeps(pool, rdb, cfg, logger, reg)
	if err != nil {
		if rdb != nil {
			_ = rdb.Close()
		}
		pool.Close()
		return nil, err
	}
	return deps, nil
}

func newDeps(pool *pgxpool.Pool, rdb *redis.Client, cfg *config.Config, logger *slog.Logger, reg prometheus.Registerer) (*Deps, error) {
	signer, err := storage.NewSigner(cfg.Storage.ProofBaseURL, cfg.Storage.SigningSecret, cfg.Storage.URLTTL)
	if err != nil {
		return nil, fmt.Errorf("create url signer: %w", err)
	}

	deps := &Deps{Pool: pool, Redis: rdb, Metrics: metrics.New(reg)}

	tx := postgres.NewTxManager(pool)
	records := evalrepo.New(pool)
	proofs := proof.New(pool)
	actions := action.New(pool)
	auditLog := audit.New(pool)

	deps.Evaluation = evaluation.NewService(logger, records, proofs, actions, signer, auditLog, tx, deps.Metrics)
	if rdb != nil {
		deps.Evaluation.WithURLCache(redis.NewURLCache(rdb), cfg.Storage.CacheTTL)
	}

	deps.Bulk = bulk.NewService(logger, records, auth.NewRolePolicy(cfg.Evaluation.BulkEditRoles),
		auditLog, tx, deps.Metrics, cfg.Evaluation.BulkMaxRecords)

	deps.Query = query.NewService(logger, records, proofs, actions, savedview.New(pool), auditLog, tx, deps.Metrics,
		query.Config{
			PageSize:       cfg.Evaluation.PageSize,
			ExportPageSize: cfg.Evaluation.ExportPageSize,
			ExportMaxPages: cfg.Evaluation.ExportMaxPages,
		})

	deps.Lineage = lineage.NewService(logger, corpus.New(pool), auditLog, tx, deps.Metrics)

	return deps, nil
}
