// Package evaluation implements the evaluation record store using PostgreSQL.
// Mutations lock rows with SELECT ... FOR UPDATE and rewrite every mutable
// column in one statement, so the last committed write wins.
package evaluation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// Repo provides evaluation record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new evaluation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const recordColumns = `r.id, r.tenant_id, r.site_id, r.article_id, r.applicability, r.reason,
r.reason_comment, r.state, r.comment, r.impact_level, r.suggestion_payload,
r.locked_by, r.locked_at, r.updated_by, r.created_at, r.updated_at`

const articleColumns = `a.number, a.title, a.reference, a.domain_code, a.sub_domain_code,
t.title, t.reference, t.source_type`

const getSQL = `SELECT ` + recordColumns + `
FROM evaluation_records r
WHERE r.id = $1 AND r.tenant_id = $2`

const getForUpdateSQL = getSQL + `
FOR UPDATE`

const listForUpdateSQL = `SELECT ` + recordColumns + `
FROM evaluation_records r
WHERE r.id = ANY($1::uuid[]) AND r.tenant_id = $2
ORDER BY r.id
FOR UPDATE`

const updateSQL = `UPDATE evaluation_records AS r SET
    applicability = $3,
    reason = $4,
    reason_comment = $5,
    state = $6,
    comment = $7,
    impact_level = $8,
    suggestion_payload = $9,
    updated_by = $10,
    updated_at = clock_timestamp()
WHERE r.id = $1 AND r.tenant_id = $2
RETURNING ` + recordColumns

const setSuggestionsSQL = `UPDATE evaluation_records AS r SET
    suggestion_payload = $3
WHERE r.id = $1 AND r.tenant_id = $2
RETURNING ` + recordColumns

const setLockSQL = `UPDATE evaluation_records AS r SET
    locked_by = $3,
    locked_at = CASE WHEN $3::uuid IS NULL THEN NULL ELSE clock_timestamp() END
WHERE r.id = $1 AND r.tenant_id = $2
RETURNING ` + recordColumns

const ensureSeedSQL = `
INSERT INTO evaluation_records (id, tenant_id, site_id, article_id)
SELECT gen_random_uuid(), sd.tenant_id, sd.site_id, a.id
FROM site_domains sd
JOIN articles a ON a.domain_code = sd.domain_code
WHERE sd.tenant_id = $1 AND sd.site_id = $2
ON CONFLICT (site_id, article_id) DO NOTHING`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns a record by id within a tenant.
func (r *Repo) Get(ctx context.Context, tenantID, id uuid.UUID) (domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecord(q.QueryRow(ctx, getSQL, id, tenantID))
	if err != nil {
		return domain.EvaluationRecord{}, postgres.MapError(err, "evaluation_record", id)
	}
	return rec, nil
}

// GetForUpdate returns a record and locks its row until the surrounding
// transaction ends. Must be called inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, tenantID, id uuid.UUID) (domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecord(q.QueryRow(ctx, getForUpdateSQL, id, tenantID))
	if err != nil {
		return domain.EvaluationRecord{}, postgres.MapError(err, "evaluation_record", id)
	}
	return rec, nil
}

// ListForUpdate locks and returns the records with the given ids, in id order.
// Ids that do not exist in the tenant are simply absent from the result.
func (r *Repo) ListForUpdate(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, listForUpdateSQL, ids, tenantID)
	if err != nil {
		return nil, fmt.Errorf("lock evaluation_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.EvaluationRecord, 0, len(ids))
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lock evaluation_records: %w", err)
	}
	return records, nil
}

// List returns one page of records matching the query, with article metadata.
func (r *Repo) List(ctx context.Context, query domain.EvaluationQuery) ([]domain.EvaluationRecord, error) {
	sqlStr, args, err := selectQuery(query).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("list evaluation_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.EvaluationRecord, 0, query.PageSize)
	for rows.Next() {
		rec, err := scanRecordWithArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan evaluation_record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list evaluation_records: %w", err)
	}
	return records, nil
}

// Count returns the number of records matching the query, ignoring paging.
func (r *Repo) Count(ctx context.Context, query domain.EvaluationQuery) (int, error) {
	sqlStr, args, err := countQuery(query).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count evaluation_records: %w", err)
	}
	return total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Update writes every mutable field of rec and returns the stored row.
func (r *Repo) Update(ctx context.Context, rec domain.EvaluationRecord, actorID uuid.UUID) (domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	updated, err := scanRecord(q.QueryRow(ctx, updateSQL, updateArgs(rec, actorID)...))
	if err != nil {
		return domain.EvaluationRecord{}, postgres.MapError(err, "evaluation_record", rec.ID)
	}
	return updated, nil
}

// UpdateMany writes every record in one pgx batch. Callers run it inside a
// transaction so the batch commits or fails as a whole.
func (r *Repo) UpdateMany(ctx context.Context, recs []domain.EvaluationRecord, actorID uuid.UUID) ([]domain.EvaluationRecord, error) {
	if len(recs) == 0 {
		return nil, nil
	}

	batch := &pgx.Batch{}
	for _, rec := range recs {
		batch.Queue(updateSQL, updateArgs(rec, actorID)...)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	br := q.SendBatch(ctx, batch)
	defer br.Close()

	out := make([]domain.EvaluationRecord, 0, len(recs))
	for _, rec := range recs {
		updated, err := scanRecord(br.QueryRow())
		if err != nil {
			return nil, postgres.MapError(err, "evaluation_record", rec.ID)
		}
		out = append(out, updated)
	}
	return out, nil
}

// SetSuggestions replaces the suggestion payload only. updated_at is left
// alone: suggestion traffic is not an evaluation change.
func (r *Repo) SetSuggestions(ctx context.Context, tenantID, id uuid.UUID, payload domain.SuggestionPayload) (domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecord(q.QueryRow(ctx, setSuggestionsSQL, id, tenantID, payload.Raw()))
	if err != nil {
		return domain.EvaluationRecord{}, postgres.MapError(err, "evaluation_record", id)
	}
	return rec, nil
}

// SetLock sets or clears (holder == nil) the lock holder.
func (r *Repo) SetLock(ctx context.Context, tenantID, id uuid.UUID, holder *uuid.UUID) (domain.EvaluationRecord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rec, err := scanRecord(q.QueryRow(ctx, setLockSQL, id, tenantID, holder))
	if err != nil {
		return domain.EvaluationRecord{}, postgres.MapError(err, "evaluation_record", id)
	}
	return rec, nil
}

// EnsureSeed creates a default record for every article of the site's
// domains that has none yet. Returns the number of records created.
func (r *Repo) EnsureSeed(ctx context.Context, tenantID, siteID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, ensureSeedSQL, tenantID, siteID)
	if err != nil {
		return 0, fmt.Errorf("seed evaluation_records for site %s: %w", siteID, err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

type recordRow struct {
	rec           domain.EvaluationRecord
	applicability string
	reason        *string
	state         string
	impact        *string
	payload       []byte
}

func (row *recordRow) dest() []any {
	rec := &row.rec
	return []any{
		&rec.ID, &rec.TenantID, &rec.SiteID, &rec.ArticleID, &row.applicability, &row.reason,
		&rec.ReasonComment, &row.state, &rec.Comment, &row.impact, &row.payload,
		&rec.LockedBy, &rec.LockedAt, &rec.UpdatedBy, &rec.CreatedAt, &rec.UpdatedAt,
	}
}

func (row *recordRow) toDomain() domain.EvaluationRecord {
	rec := row.rec
	rec.Applicability = domain.Applicability(row.applicability)
	rec.State = domain.ConformityState(row.state)
	if row.reason != nil {
		reason := domain.NonApplicableReason(*row.reason)
		rec.Reason = &reason
	}
	if row.impact != nil {
		level := domain.ImpactLevel(*row.impact)
		rec.ImpactLevel = &level
	}
	rec.Suggestions = domain.ParseSuggestionPayload(row.payload)
	return rec
}

func scanRecord(s pgx.Row) (domain.EvaluationRecord, error) {
	var row recordRow
	if err := s.Scan(row.dest()...); err != nil {
		return domain.EvaluationRecord{}, err
	}
	return row.toDomain(), nil
}

func scanRecordWithArticle(s pgx.Row) (domain.EvaluationRecord, error) {
	var (
		row     recordRow
		article domain.ArticleSummary
	)
	dest := append(row.dest(),
		&article.Number, &article.Title, &article.Reference, &article.DomainCode,
		&article.SubDomainCode, &article.TextTitle, &article.TextReference, &article.SourceType,
	)
	if err := s.Scan(dest...); err != nil {
		return domain.EvaluationRecord{}, err
	}
	rec := row.toDomain()
	article.ID = rec.ArticleID
	rec.Article = &article
	return rec, nil
}

func updateArgs(rec domain.EvaluationRecord, actorID uuid.UUID) []any {
	return []any{
		rec.ID, rec.TenantID,
		string(rec.Applicability), enumPtr(rec.Reason), rec.ReasonComment,
		string(rec.State), rec.Comment, enumPtr(rec.ImpactLevel),
		rec.Suggestions.Raw(), actorID,
	}
}

func enumPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
