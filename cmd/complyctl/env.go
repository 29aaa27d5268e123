package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/compliance-backend/internal/app"
	"github.com/heartmarshall/compliance-backend/internal/config"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// operatorRole marks identities built from CLI flags.
const operatorRole = "operator"

// openDeps loads configuration and connects every dependency.
func openDeps(ctx context.Context) (*app.Deps, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	logger := app.NewLogger(cfg.Log, "complyctl")

	deps, err := app.BuildDeps(ctx, cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return nil, nil, err
	}
	return deps, logger, nil
}

// operatorIdentity builds the acting identity from the tenant and actor flags.
func operatorIdentity(tenant, actor string) (ctxutil.Identity, error) {
	tenantID, err := uuid.Parse(tenant)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("--tenant: %w", err)
	}
	actorID, err := uuid.Parse(actor)
	if err != nil {
		return ctxutil.Identity{}, fmt.Errorf("--actor: %w", err)
	}
	return ctxutil.Identity{UserID: actorID, TenantID: tenantID, Role: operatorRole}, nil
}
