// Package action implements the corrective action store using PostgreSQL.
package action

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// Repo provides corrective action persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new corrective action repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, record_id, tenant_id, title, description, responsible_id, responsible_name,
due_date, priority, status, created_by, created_at, updated_at`

const insertSQL = `
INSERT INTO corrective_actions (id, record_id, tenant_id, title, description, responsible_id,
    responsible_name, due_date, priority, status, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + columns

const deleteSQL = `DELETE FROM corrective_actions WHERE id = $1 AND tenant_id = $2 RETURNING ` + columns

const listByRecordsSQL = `SELECT ` + columns + `
FROM corrective_actions
WHERE record_id = ANY($1::uuid[])
ORDER BY created_at, id`

// Create inserts a corrective action.
func (r *Repo) Create(ctx context.Context, a domain.CorrectiveAction) (domain.CorrectiveAction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, insertSQL,
		a.ID, a.RecordID, a.TenantID, a.Title, a.Description, a.ResponsibleID,
		a.ResponsibleName, a.DueDate, string(a.Priority), string(a.Status), a.CreatedBy,
	)
	created, err := scanAction(row)
	if err != nil {
		return domain.CorrectiveAction{}, postgres.MapError(err, "corrective_action", a.ID)
	}
	return created, nil
}

// Delete removes a corrective action and returns the deleted row.
func (r *Repo) Delete(ctx context.Context, tenantID, id uuid.UUID) (domain.CorrectiveAction, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	deleted, err := scanAction(q.QueryRow(ctx, deleteSQL, id, tenantID))
	if err != nil {
		return domain.CorrectiveAction{}, postgres.MapError(err, "corrective_action", id)
	}
	return deleted, nil
}

// ListByRecordIDs returns the actions of the given records grouped by record id.
func (r *Repo) ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.CorrectiveAction, error) {
	out := make(map[uuid.UUID][]domain.CorrectiveAction, len(recordIDs))
	if len(recordIDs) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByRecordsSQL, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("list corrective_actions: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		a, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan corrective_action: %w", err)
		}
		out[a.RecordID] = append(out[a.RecordID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list corrective_actions: %w", err)
	}
	return out, nil
}

func scanAction(s pgx.Row) (domain.CorrectiveAction, error) {
	var (
		a        domain.CorrectiveAction
		priority string
		status   string
	)
	err := s.Scan(&a.ID, &a.RecordID, &a.TenantID, &a.Title, &a.Description, &a.ResponsibleID,
		&a.ResponsibleName, &a.DueDate, &priority, &status, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return domain.CorrectiveAction{}, err
	}
	a.Priority = domain.ActionPriority(priority)
	a.Status = domain.ActionStatus(status)
	return a, nil
}
