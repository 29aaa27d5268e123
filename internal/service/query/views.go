package query

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Saved views
// ---------------------------------------------------------------------------

// ListViews returns the views visible to the caller: tenant views, the
// caller's own user views and the views of the caller's team.
func (s *Service) ListViews(ctx context.Context) ([]domain.SavedView, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	views, err := s.views.List(ctx, domain.ViewScopeFilter{TenantID: id.TenantID, UserID: id.UserID, TeamID: id.TeamID})
	if err != nil {
		return nil, fmt.Errorf("list saved views: %w", err)
	}
	return views, nil
}

// CreateView saves a snapshot of filters and search text.
func (s *Service) CreateView(ctx context.Context, input CreateViewInput) (domain.SavedView, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.SavedView{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.SavedView{}, err
	}
	teamID, err := teamFor(input.Scope, id)
	if err != nil {
		return domain.SavedView{}, err
	}

	view := domain.SavedView{
		ID:       uuid.New(),
		TenantID: id.TenantID,
		OwnerID:  id.UserID,
		TeamID:   teamID,
		Name:     strings.TrimSpace(input.Name),
		Scope:    input.Scope,
		Filters:  input.Filters,
		Search:   strings.TrimSpace(input.Search),
	}

	var created domain.SavedView
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.views.Create(txCtx, view)
		if err != nil {
			return fmt.Errorf("create saved view: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeSavedView,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes: map[string]any{
				"name":  map[string]any{"new": created.Name},
				"scope": map[string]any{"new": created.Scope},
			},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.SavedView{}, err
	}

	s.log.InfoContext(ctx, "saved view created",
		slog.String("view_id", created.ID.String()),
		slog.String("scope", created.Scope.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return created, nil
}

// UpdateView replaces the name, scope, filters and search of a view. Only
// the owner may update it.
func (s *Service) UpdateView(ctx context.Context, input UpdateViewInput) (domain.SavedView, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.SavedView{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.SavedView{}, err
	}
	teamID, err := teamFor(input.Scope, id)
	if err != nil {
		return domain.SavedView{}, err
	}

	var updated domain.SavedView
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.ownedView(txCtx, id, input.ID)
		if err != nil {
			return err
		}

		next := current
		next.Name = strings.TrimSpace(input.Name)
		next.Scope = input.Scope
		next.TeamID = teamID
		next.Filters = input.Filters
		next.Search = strings.TrimSpace(input.Search)

		updated, err = s.views.Update(txCtx, next)
		if err != nil {
			return fmt.Errorf("update saved view: %w", err)
		}

		changes := map[string]any{}
		if current.Name != updated.Name {
			changes["name"] = map[string]any{"old": current.Name, "new": updated.Name}
		}
		if current.Scope != updated.Scope {
			changes["scope"] = map[string]any{"old": current.Scope, "new": updated.Scope}
		}
		if current.Search != updated.Search {
			changes["search"] = map[string]any{"old": current.Search, "new": updated.Search}
		}
		changes["filters"] = map[string]any{"new": updated.Filters}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeSavedView,
			EntityID:   &updated.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return domain.SavedView{}, err
	}

	s.log.InfoContext(ctx, "saved view updated",
		slog.String("view_id", updated.ID.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return updated, nil
}

// DeleteView removes a view. Only the owner may delete it.
func (s *Service) DeleteView(ctx context.Context, viewID uuid.UUID) error {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if viewID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.ownedView(txCtx, id, viewID)
		if err != nil {
			return err
		}
		if err := s.views.Delete(txCtx, id.TenantID, viewID); err != nil {
			return fmt.Errorf("delete saved view: %w", err)
		}

		auditErr := s.audit.Log(txCtx, domain.AuditRecord{
			TenantID:   id.TenantID,
			ActorID:    id.UserID,
			EntityType: domain.EntityTypeSavedView,
			EntityID:   &viewID,
			Action:     domain.AuditActionDelete,
			Changes:    map[string]any{"name": current.Name},
		})
		if auditErr != nil {
			return fmt.Errorf("audit log: %w", auditErr)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "saved view deleted",
		slog.String("view_id", viewID.String()),
		slog.String("actor_id", id.UserID.String()),
	)
	return nil
}

// ApplyView loads a view and lists the site with exactly its filters and
// search. The caller's current filter state is replaced, never merged.
func (s *Service) ApplyView(ctx context.Context, viewID, siteID uuid.UUID, page int) (domain.SavedView, domain.EvaluationPage, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return domain.SavedView{}, domain.EvaluationPage{}, domain.ErrUnauthorized
	}

	view, err := s.visibleView(ctx, id, viewID)
	if err != nil {
		return domain.SavedView{}, domain.EvaluationPage{}, err
	}

	result, err := s.List(ctx, ListInput{
		SiteID: siteID,
		Filter: view.Filters,
		Search: view.Search,
		Page:   page,
	})
	if err != nil {
		return domain.SavedView{}, domain.EvaluationPage{}, err
	}
	return view, result, nil
}

// visibleView returns the view when the caller may see it and NotFound
// otherwise, so hidden views are indistinguishable from missing ones.
func (s *Service) visibleView(ctx context.Context, id ctxutil.Identity, viewID uuid.UUID) (domain.SavedView, error) {
	view, err := s.views.Get(ctx, id.TenantID, viewID)
	if err != nil {
		return domain.SavedView{}, fmt.Errorf("get saved view: %w", err)
	}
	if !canSee(view, id) {
		return domain.SavedView{}, fmt.Errorf("get saved view: %w", domain.ErrNotFound)
	}
	return view, nil
}

func (s *Service) ownedView(ctx context.Context, id ctxutil.Identity, viewID uuid.UUID) (domain.SavedView, error) {
	view, err := s.visibleView(ctx, id, viewID)
	if err != nil {
		return domain.SavedView{}, err
	}
	if view.OwnerID != id.UserID {
		return domain.SavedView{}, fmt.Errorf("only the owner may change a saved view: %w", domain.ErrForbidden)
	}
	return view, nil
}

func canSee(v domain.SavedView, id ctxutil.Identity) bool {
	switch v.Scope {
	case domain.ViewScopeTenant:
		return true
	case domain.ViewScopeUser:
		return v.OwnerID == id.UserID
	case domain.ViewScopeTeam:
		return v.OwnerID == id.UserID || (v.TeamID != nil && id.TeamID != nil && *v.TeamID == *id.TeamID)
	}
	return false
}

func teamFor(scope domain.ViewScope, id ctxutil.Identity) (*uuid.UUID, error) {
	if scope != domain.ViewScopeTeam {
		return nil, nil
	}
	if id.TeamID == nil {
		return nil, domain.NewValidationError("scope", "team scope requires a team")
	}
	team := *id.TeamID
	return &team, nil
}
