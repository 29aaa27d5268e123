// Package corpus implements read access to regulatory articles and the
// append-only article version lineage using PostgreSQL.
package corpus

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

// Repo provides corpus persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new corpus repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const articleColumns = `id, text_id, number, title, reference, current_content, created_at, updated_at`

const getArticleSQL = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`

const versionColumns = `id, article_id, sequence, content, effective_date, vigor,
supersedes_id, notes, created_by, created_at, deleted_at`

const getVersionSQL = `SELECT ` + versionColumns + `
FROM article_versions
WHERE id = $1 AND deleted_at IS NULL`

const listVersionsSQL = `SELECT ` + versionColumns + `
FROM article_versions
WHERE article_id = $1 AND deleted_at IS NULL
ORDER BY effective_date, sequence`

const maxSequenceSQL = `SELECT coalesce(max(sequence), 0) FROM article_versions WHERE article_id = $1`

const listEffectsSQL = `SELECT id, source_article_id, target_article_id, effect_type, effective_date
FROM legal_effects
WHERE target_article_id = $1 AND effective_date > $2
ORDER BY effective_date, id`

const insertVersionSQL = `
INSERT INTO article_versions (id, article_id, sequence, content, effective_date, vigor, supersedes_id, notes, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + versionColumns

const setVigorSQL = `UPDATE article_versions SET vigor = $2 WHERE id = ANY($1::uuid[]) AND deleted_at IS NULL`

const updateContentSQL = `UPDATE articles SET current_content = $2, updated_at = now() WHERE id = $1`

// ---------------------------------------------------------------------------
// Articles
// ---------------------------------------------------------------------------

// GetArticle returns an article by id.
func (r *Repo) GetArticle(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	a, err := scanArticle(q.QueryRow(ctx, getArticleSQL, id))
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// GetArticleForUpdate returns an article and locks its row, serializing
// lineage changes of the same article. Must run inside a transaction.
func (r *Repo) GetArticleForUpdate(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	a, err := scanArticle(q.QueryRow(ctx, getArticleSQL+` FOR UPDATE`, id))
	if err != nil {
		return domain.Article{}, postgres.MapError(err, "article", id)
	}
	return a, nil
}

// UpdateCurrentContent rewrites the article's denormalized in-force text.
func (r *Repo) UpdateCurrentContent(ctx context.Context, articleID uuid.UUID, content string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, updateContentSQL, articleID, content)
	if err != nil {
		return postgres.MapError(err, "article", articleID)
	}
	if tag.RowsAffected() == 0 {
		return postgres.MapError(pgx.ErrNoRows, "article", articleID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Versions
// ---------------------------------------------------------------------------

// GetVersion returns a live (not soft-deleted) version by id.
func (r *Repo) GetVersion(ctx context.Context, id uuid.UUID) (domain.ArticleVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	v, err := scanVersion(q.QueryRow(ctx, getVersionSQL, id))
	if err != nil {
		return domain.ArticleVersion{}, postgres.MapError(err, "article_version", id)
	}
	return v, nil
}

// ListVersions returns the live lineage of an article ordered by effective
// date, then sequence.
func (r *Repo) ListVersions(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listVersionsSQL, articleID)
	if err != nil {
		return nil, fmt.Errorf("list article_versions: %w", err)
	}
	defer rows.Close()

	var versions []domain.ArticleVersion
	for rows.Next() {
		v, err := scanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article_version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list article_versions: %w", err)
	}
	return versions, nil
}

// MaxSequence returns the highest sequence ever used by the article,
// soft-deleted versions included. Zero when the article has no version.
func (r *Repo) MaxSequence(ctx context.Context, articleID uuid.UUID) (int, error) {
	var seq int
	q := postgres.QuerierFromCtx(ctx, r.pool)
	if err := q.QueryRow(ctx, maxSequenceSQL, articleID).Scan(&seq); err != nil {
		return 0, fmt.Errorf("max sequence for article %s: %w", articleID, err)
	}
	return seq, nil
}

// InsertVersion appends a version to the lineage.
func (r *Repo) InsertVersion(ctx context.Context, v domain.ArticleVersion) (domain.ArticleVersion, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	row := q.QueryRow(ctx, insertVersionSQL,
		v.ID, v.ArticleID, v.Sequence, v.Content, v.EffectiveDate, string(v.Vigor),
		v.SupersedesID, v.Notes, v.CreatedBy,
	)
	created, err := scanVersion(row)
	if err != nil {
		return domain.ArticleVersion{}, postgres.MapError(err, "article_version", v.ID)
	}
	return created, nil
}

// SetVigor moves the given versions to vigor. Returns the number of rows changed.
func (r *Repo) SetVigor(ctx context.Context, ids []uuid.UUID, vigor domain.VigorStatus) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)
	tag, err := q.Exec(ctx, setVigorSQL, ids, string(vigor))
	if err != nil {
		return 0, fmt.Errorf("set vigor %s: %w", vigor, err)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Legal effects
// ---------------------------------------------------------------------------

// ListLegalEffects returns the effects targeting an article dated strictly
// after the given day.
func (r *Repo) ListLegalEffects(ctx context.Context, targetArticleID uuid.UUID, after time.Time) ([]domain.LegalEffect, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, listEffectsSQL, targetArticleID, after)
	if err != nil {
		return nil, fmt.Errorf("list legal_effects: %w", err)
	}
	defer rows.Close()

	var effects []domain.LegalEffect
	for rows.Next() {
		var (
			e   domain.LegalEffect
			typ string
		)
		if err := rows.Scan(&e.ID, &e.SourceArticleID, &e.TargetArticleID, &typ, &e.EffectiveDate); err != nil {
			return nil, fmt.Errorf("scan legal_effect: %w", err)
		}
		e.Type = domain.LegalEffectType(typ)
		effects = append(effects, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list legal_effects: %w", err)
	}
	return effects, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanArticle(s pgx.Row) (domain.Article, error) {
	var a domain.Article
	err := s.Scan(&a.ID, &a.TextID, &a.Number, &a.Title, &a.Reference, &a.CurrentContent, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func scanVersion(s pgx.Row) (domain.ArticleVersion, error) {
	var (
		v     domain.ArticleVersion
		vigor string
	)
	err := s.Scan(&v.ID, &v.ArticleID, &v.Sequence, &v.Content, &v.EffectiveDate, &vigor,
		&v.SupersedesID, &v.Notes, &v.CreatedBy, &v.CreatedAt, &v.DeletedAt)
	if err != nil {
		return domain.ArticleVersion{}, err
	}
	v.Vigor = domain.VigorStatus(vigor)
	return v, nil
}
