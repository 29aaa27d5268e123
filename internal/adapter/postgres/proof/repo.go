// Package proof implements the evaluation proof store using PostgreSQL.
package proof

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// Repo provides proof persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new proof repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, record_id, tenant_id, proof_type, bucket, storage_path, file_name,
file_type, file_size, url, comment, created_by, created_at`

const insertSQL = `
INSERT INTO evaluation_proofs (id, record_id, tenant_id, proof_type, bucket, storage_path,
    file_name, file_type, file_size, url, comment, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + columns

const deleteSQL = `DELETE FROM evaluation_proofs WHERE id = $1 AND tenant_id = $2 RETURNING ` + columns

const getFileByPathSQL = `SELECT ` + columns + `
FROM evaluation_proofs
WHERE tenant_id = $1 AND proof_type = 'FILE' AND storage_path = $2
ORDER BY created_at, id
LIMIT 1`

const listByRecordsSQL = `SELECT ` + columns + `
FROM evaluation_proofs
WHERE record_id = ANY($1::uuid[])
ORDER BY created_at, id`

// Create attaches a proof row to its record.
func (r *Repo) Create(ctx context.Context, p domain.Proof) (domain.Proof, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, insertSQL,
		p.ID, p.RecordID, p.TenantID, string(p.Type), p.Bucket, p.StoragePath,
		p.FileName, p.FileType, p.FileSize, p.URL, p.Comment, p.CreatedBy,
	)
	created, err := scanProof(row)
	if err != nil {
		return domain.Proof{}, postgres.MapError(err, "proof", p.ID)
	}
	return created, nil
}

// Delete removes a proof and returns the deleted row, so the caller can
// release the stored file.
func (r *Repo) Delete(ctx context.Context, tenantID, id uuid.UUID) (domain.Proof, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	deleted, err := scanProof(q.QueryRow(ctx, deleteSQL, id, tenantID))
	if err != nil {
		return domain.Proof{}, postgres.MapError(err, "proof", id)
	}
	return deleted, nil
}

// GetFileByPath returns the tenant's file proof stored at path.
func (r *Repo) GetFileByPath(ctx context.Context, tenantID uuid.UUID, path string) (domain.Proof, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	p, err := scanProof(q.QueryRow(ctx, getFileByPathSQL, tenantID, path))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Proof{}, fmt.Errorf("proof file %q: %w", path, domain.ErrNotFound)
	}
	if err != nil {
		return domain.Proof{}, fmt.Errorf("get proof by path: %w", err)
	}
	return p, nil
}

// ListByRecordIDs returns the proofs of the given records grouped by record id.
func (r *Repo) ListByRecordIDs(ctx context.Context, recordIDs []uuid.UUID) (map[uuid.UUID][]domain.Proof, error) {
	out := make(map[uuid.UUID][]domain.Proof, len(recordIDs))
	if len(recordIDs) == 0 {
		return out, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listByRecordsSQL, recordIDs)
	if err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProof(rows)
		if err != nil {
			return nil, fmt.Errorf("scan proof: %w", err)
		}
		out[p.RecordID] = append(out[p.RecordID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list proofs: %w", err)
	}
	return out, nil
}

func scanProof(s pgx.Row) (domain.Proof, error) {
	var (
		p   domain.Proof
		typ string
	)
	err := s.Scan(&p.ID, &p.RecordID, &p.TenantID, &typ, &p.Bucket, &p.StoragePath, &p.FileName,
		&p.FileType, &p.FileSize, &p.URL, &p.Comment, &p.CreatedBy, &p.CreatedAt)
	if err != nil {
		return domain.Proof{}, err
	}
	p.Type = domain.ProofType(typ)
	return p, nil
}
