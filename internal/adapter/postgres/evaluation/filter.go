package evaluation

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/compliance-backend/internal/adapter/postgres"
	"github.com/heartmarshall/compliance-backend/internal/domain"
)

const fromClause = `evaluation_records r
JOIN articles a ON a.id = r.article_id
LEFT JOIN regulatory_texts t ON t.id = a.text_id`

// selectQuery builds the filtered, ordered page query.
func selectQuery(q domain.EvaluationQuery) sq.SelectBuilder {
	sb := postgres.Builder.
		Select(recordColumns, articleColumns).
		From(fromClause)
	sb = applyFilter(sb, q)

	sb = sb.OrderBy("r.updated_at DESC", "r.id ASC")
	if q.PageSize > 0 {
		page := max(q.Page, 1)
		sb = sb.Limit(uint64(q.PageSize)).Offset(uint64((page - 1) * q.PageSize))
	}
	return sb
}

// countQuery builds the total-count query sharing the page query's filter.
func countQuery(q domain.EvaluationQuery) sq.SelectBuilder {
	return applyFilter(postgres.Builder.Select("count(*)").From(fromClause), q)
}

func applyFilter(sb sq.SelectBuilder, q domain.EvaluationQuery) sq.SelectBuilder {
	sb = sb.Where(sq.Eq{"r.tenant_id": q.TenantID, "r.site_id": q.SiteID})

	f := q.Filter
	if f.DomainCode != nil {
		sb = sb.Where(sq.Eq{"a.domain_code": *f.DomainCode})
	}
	if f.SubDomainCode != nil {
		sb = sb.Where(sq.Eq{"a.sub_domain_code": *f.SubDomainCode})
	}
	if f.Applicability != nil {
		sb = sb.Where(sq.Eq{"r.applicability": string(*f.Applicability)})
	}
	if f.Reason != nil {
		sb = sb.Where(sq.Eq{"r.reason": string(*f.Reason)})
	}
	if f.State != nil {
		sb = sb.Where(sq.Eq{"r.state": string(*f.State)})
	}
	if f.Proof != nil {
		exists := "EXISTS (SELECT 1 FROM evaluation_proofs p WHERE p.record_id = r.id)"
		if *f.Proof == domain.ProofWithout {
			exists = "NOT " + exists
		}
		sb = sb.Where(sq.Expr(exists))
	}
	if f.SourceType != nil {
		sb = sb.Where(sq.Eq{"t.source_type": *f.SourceType})
	}
	if f.UpdatedWithinDays != nil {
		since := q.Now.AddDate(0, 0, -*f.UpdatedWithinDays)
		sb = sb.Where(sq.GtOrEq{"r.updated_at": since})
	}
	if f.ImpactLevel != nil {
		sb = sb.Where(sq.Eq{"r.impact_level": string(*f.ImpactLevel)})
	}

	if search := q.NormalizedSearch(); search != "" {
		pattern := "%" + escapeLike(search) + "%"
		sb = sb.Where(sq.Or{
			sq.ILike{"a.number": pattern},
			sq.ILike{"a.title": pattern},
			sq.ILike{"a.reference": pattern},
			sq.ILike{"a.current_content": pattern},
			sq.ILike{"t.title": pattern},
		})
	}
	return sb
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralises LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
