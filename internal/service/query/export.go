package query

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/pkg/ctxutil"
)

// ExportHeader is the first row of every export.
var ExportHeader = []string{
	"article_id", "numero", "titre", "reference", "domaine",
	"applicabilite", "motif", "etat", "preuves", "updated_at", "impact_level",
}

// ExportResult summarises a finished export.
type ExportResult struct {
	Rows      int
	Pages     int
	Truncated bool
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

// Export writes the filtered records as CSV to w, one row per record. The
// count and every page are read from one snapshot, so edits committed during
// the export neither skip nor repeat rows. It stops after the configured
// number of pages; Truncated reports whether matching records were left out.
func (s *Service) Export(ctx context.Context, input ExportInput, w io.Writer) (ExportResult, error) {
	id, ok := ctxutil.IdentityFromCtx(ctx)
	if !ok {
		return ExportResult{}, domain.ErrUnauthorized
	}
	listInput := ListInput{SiteID: input.SiteID, Filter: input.Filter, Search: input.Search}
	if err := listInput.Validate(); err != nil {
		return ExportResult{}, err
	}

	ctx, span := tracer.Start(ctx, "query.Export",
		trace.WithAttributes(
			attribute.String("tenant_id", id.TenantID.String()),
			attribute.String("site_id", input.SiteID.String()),
		),
	)
	defer span.End()
	start := time.Now()

	query := domain.EvaluationQuery{
		TenantID: id.TenantID,
		SiteID:   input.SiteID,
		Filter:   input.Filter,
		Search:   input.Search,
		PageSize: s.cfg.ExportPageSize,
		Now:      s.now(),
	}

	var (
		result ExportResult
		total  int
	)
	cw := csv.NewWriter(w)
	err := s.tx.RunInSnapshot(ctx, func(snapCtx context.Context) error {
		var err error
		total, err = s.records.Count(snapCtx, query)
		if err != nil {
			return fmt.Errorf("count records: %w", err)
		}
		if err := cw.Write(ExportHeader); err != nil {
			return fmt.Errorf("write header: %w", err)
		}

		for page := 1; page <= s.cfg.ExportMaxPages; page++ {
			query.Page = page
			records, err := s.records.List(snapCtx, query)
			if err != nil {
				return fmt.Errorf("list records page %d: %w", page, err)
			}
			if len(records) == 0 {
				break
			}
			if err := s.attachChildren(snapCtx, records, true); err != nil {
				return err
			}

			for _, rec := range records {
				if err := cw.Write(exportRow(rec)); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
			result.Rows += len(records)
			result.Pages = page

			if len(records) < s.cfg.ExportPageSize {
				break
			}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "export failed")
		return result, err
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return result, fmt.Errorf("flush export: %w", err)
	}

	result.Truncated = total > result.Rows
	span.SetAttributes(
		attribute.Int("export.rows", result.Rows),
		attribute.Bool("export.truncated", result.Truncated),
	)
	s.metrics.ObserveQuery("export", time.Since(start))
	s.log.InfoContext(ctx, "evaluations exported",
		slog.String("tenant_id", id.TenantID.String()),
		slog.String("site_id", input.SiteID.String()),
		slog.Int("rows", result.Rows),
		slog.Bool("truncated", result.Truncated),
	)
	return result, nil
}

func exportRow(rec domain.EvaluationRecord) []string {
	row := make([]string, len(ExportHeader))
	row[0] = rec.ArticleID.String()
	if a := rec.Article; a != nil {
		row[1] = a.Number
		row[2] = a.Title
		row[3] = str(a.Reference)
		row[4] = domainLabel(a)
	}
	row[5] = rec.Applicability.String()
	if rec.Reason != nil {
		row[6] = rec.Reason.String()
	}
	row[7] = rec.State.String()
	row[8] = proofRefs(rec.Proofs)
	row[9] = rec.UpdatedAt.UTC().Format(time.RFC3339)
	if rec.ImpactLevel != nil {
		row[10] = rec.ImpactLevel.String()
	}
	return row
}

func domainLabel(a *domain.ArticleSummary) string {
	code := str(a.DomainCode)
	if sub := str(a.SubDomainCode); sub != "" {
		return code + "/" + sub
	}
	return code
}

// proofRefs joins file names (or paths) and link URLs.
func proofRefs(proofs []domain.Proof) string {
	refs := make([]string, 0, len(proofs))
	for _, p := range proofs {
		switch {
		case p.Type == domain.ProofTypeLink:
			refs = append(refs, str(p.URL))
		case p.FileName != nil:
			refs = append(refs, *p.FileName)
		default:
			refs = append(refs, str(p.StoragePath))
		}
	}
	return strings.Join(refs, "; ")
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
