package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Scope is a tenant/site pair owning evaluation records.
type Scope struct {
	TenantID uuid.UUID
	SiteID   uuid.UUID
}

// NewScope returns a fresh tenant/site pair. Nothing is inserted:
// tenants and sites live outside this database.
func NewScope() Scope {
	return Scope{TenantID: uuid.New(), SiteID: uuid.New()}
}

// SeedArticle inserts a regulatory text and one article under the given domain.
func SeedArticle(t *testing.T, pool *pgxpool.Pool, domainCode string) domain.Article {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	textID := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(ctx,
		`INSERT INTO regulatory_texts (id, title, reference, source_type) VALUES ($1, $2, $3, 'arrete')`,
		textID, "Arrêté "+suffix, "AR-"+suffix,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert text: %v", err)
	}

	ref := "REF-" + suffix
	article := domain.Article{
		ID:             uuid.New(),
		TextID:         &textID,
		Number:         "R." + suffix,
		Title:          "Article " + suffix,
		Reference:      &ref,
		CurrentContent: "content " + suffix,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = pool.Exec(ctx,
		`INSERT INTO articles (id, text_id, number, title, reference, domain_code, current_content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		article.ID, textID, article.Number, article.Title, ref, domainCode, article.CurrentContent, now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedArticle insert article: %v", err)
	}

	return article
}

// SeedVersion inserts an article version with the given sequence, date and vigor.
func SeedVersion(t *testing.T, pool *pgxpool.Pool, articleID uuid.UUID, seq int, effective time.Time, vigor domain.VigorStatus) domain.ArticleVersion {
	t.Helper()

	v := domain.ArticleVersion{
		ID:            uuid.New(),
		ArticleID:     articleID,
		Sequence:      seq,
		Content:       "version content " + uniqueSuffix(),
		EffectiveDate: effective,
		Vigor:         vigor,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO article_versions (id, article_id, sequence, content, effective_date, vigor)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		v.ID, v.ArticleID, v.Sequence, v.Content, v.EffectiveDate, string(v.Vigor),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedVersion: %v", err)
	}
	return v
}

// SeedEffect inserts a legal effect targeting target. The source is a new article.
func SeedEffect(t *testing.T, pool *pgxpool.Pool, target uuid.UUID, typ domain.LegalEffectType, effective time.Time) domain.LegalEffect {
	t.Helper()

	source := SeedArticle(t, pool, "SRC")
	e := domain.LegalEffect{
		ID:              uuid.New(),
		SourceArticleID: source.ID,
		TargetArticleID: target,
		Type:            typ,
		EffectiveDate:   effective,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO legal_effects (id, source_article_id, target_article_id, effect_type, effective_date)
		 VALUES ($1, $2, $3, $4, $5)`,
		e.ID, e.SourceArticleID, e.TargetArticleID, string(e.Type), e.EffectiveDate,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEffect: %v", err)
	}
	return e
}

// SeedSiteDomain links a site to a domain code.
func SeedSiteDomain(t *testing.T, pool *pgxpool.Pool, scope Scope, domainCode string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO site_domains (tenant_id, site_id, domain_code) VALUES ($1, $2, $3)`,
		scope.TenantID, scope.SiteID, domainCode,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSiteDomain: %v", err)
	}
}

// SeedRecord inserts an APPLICABLE / Non_evalue evaluation record.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, scope Scope, articleID uuid.UUID) domain.EvaluationRecord {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.EvaluationRecord{
		ID:            uuid.New(),
		TenantID:      scope.TenantID,
		SiteID:        scope.SiteID,
		ArticleID:     articleID,
		Applicability: domain.ApplicabilityApplicable,
		State:         domain.StateNotEvaluated,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO evaluation_records (id, tenant_id, site_id, article_id, applicability, state, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		rec.ID, rec.TenantID, rec.SiteID, rec.ArticleID, string(rec.Applicability), string(rec.State), now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord: %v", err)
	}
	return rec
}

// SeedFileProof attaches a file proof row to a record.
func SeedFileProof(t *testing.T, pool *pgxpool.Pool, rec domain.EvaluationRecord) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO evaluation_proofs (id, record_id, tenant_id, proof_type, bucket, storage_path, file_name)
		 VALUES ($1, $2, $3, 'FILE', $4, $5, 'proof.pdf')`,
		id, rec.ID, rec.TenantID, domain.ProofBucket, rec.ID.String()+"/proof.pdf",
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFileProof: %v", err)
	}
	return id
}
