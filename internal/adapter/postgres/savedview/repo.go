// Package savedview implements saved filter views using PostgreSQL.
package savedview

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// Repo provides saved view persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved view repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, tenant_id, owner_id, team_id, name, scope, filters, search, created_at, updated_at`

const getSQL = `SELECT ` + columns + ` FROM saved_views WHERE id = $1 AND tenant_id = $2`

const insertSQL = `
INSERT INTO saved_views (id, tenant_id, owner_id, team_id, name, scope, filters, search)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + columns

const updateSQL = `
UPDATE saved_views SET
    name = $3,
    scope = $4,
    team_id = $5,
    filters = $6,
    search = $7,
    updated_at = now()
WHERE id = $1 AND tenant_id = $2
RETURNING ` + columns

const deleteSQL = `DELETE FROM saved_views WHERE id = $1 AND tenant_id = $2`

// List returns the views visible to the actor: their own user views, their
// team's views and every tenant-wide view. Ordered by name.
func (r *Repo) List(ctx context.Context, scope domain.ViewScopeFilter) ([]domain.SavedView, error) {
	visible := sq.Or{
		sq.Eq{"scope": string(domain.ViewScopeTenant)},
		sq.And{sq.Eq{"scope": string(domain.ViewScopeUser)}, sq.Eq{"owner_id": scope.UserID}},
	}
	if scope.TeamID != nil {
		visible = append(visible, sq.And{sq.Eq{"scope": string(domain.ViewScopeTeam)}, sq.Eq{"team_id": *scope.TeamID}})
	}

	sqlStr, args, err := postgres.Builder.
		Select(columns).
		From("saved_views").
		Where(sq.Eq{"tenant_id": scope.TenantID}).
		Where(visible).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build saved_views query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list saved_views: %w", err)
	}
	defer rows.Close()

	var views []domain.SavedView
	for rows.Next() {
		v, err := scanView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved_view: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list saved_views: %w", err)
	}
	return views, nil
}

// Get returns a view by id within a tenant.
func (r *Repo) Get(ctx context.Context, tenantID, id uuid.UUID) (domain.SavedView, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	v, err := scanView(q.QueryRow(ctx, getSQL, id, tenantID))
	if err != nil {
		return domain.SavedView{}, postgres.MapError(err, "saved_view", id)
	}
	return v, nil
}

// Create inserts a view.
func (r *Repo) Create(ctx context.Context, v domain.SavedView) (domain.SavedView, error) {
	filters, err := json.Marshal(v.Filters)
	if err != nil {
		return domain.SavedView{}, fmt.Errorf("saved_view marshal filters: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, insertSQL, v.ID, v.TenantID, v.OwnerID, v.TeamID, v.Name, string(v.Scope), filters, v.Search)
	created, err := scanView(row)
	if err != nil {
		return domain.SavedView{}, postgres.MapError(err, "saved_view", v.ID)
	}
	return created, nil
}

// Update replaces the name, scope, filters and search of a view.
func (r *Repo) Update(ctx context.Context, v domain.SavedView) (domain.SavedView, error) {
	filters, err := json.Marshal(v.Filters)
	if err != nil {
		return domain.SavedView{}, fmt.Errorf("saved_view marshal filters: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, updateSQL, v.ID, v.TenantID, v.Name, string(v.Scope), v.TeamID, filters, v.Search)
	updated, err := scanView(row)
	if err != nil {
		return domain.SavedView{}, postgres.MapError(err, "saved_view", v.ID)
	}
	return updated, nil
}

// Delete removes a view.
func (r *Repo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, deleteSQL, id, tenantID)
	if err != nil {
		return postgres.MapError(err, "saved_view", id)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "saved_view", id)
	}
	return nil
}

func scanView(s pgx.Row) (domain.SavedView, error) {
	var (
		v       domain.SavedView
		scope   string
		filters []byte
	)
	err := s.Scan(&v.ID, &v.TenantID, &v.OwnerID, &v.TeamID, &v.Name, &scope, &filters,
		&v.Search, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.SavedView{}, err
	}
	v.Scope = domain.ViewScope(scope)
	if len(filters) > 0 {
		if err := json.Unmarshal(filters, &v.Filters); err != nil {
			return domain.SavedView{}, fmt.Errorf("saved_view %s unmarshal filters: %w", v.ID, err)
		}
	}
	return v, nil
}
