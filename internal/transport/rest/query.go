package rest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/service/query"
)

type queryService interface {
	List(ctx context.Context, input query.ListInput) (domain.EvaluationPage, error)
	Export(ctx context.Context, input query.ExportInput, w io.Writer) (query.ExportResult, error)
	ListViews(ctx context.Context) ([]domain.SavedView, error)
	CreateView(ctx context.Context, input query.CreateViewInput) (domain.SavedView, error)
	UpdateView(ctx context.Context, input query.UpdateViewInput) (domain.SavedView, error)
	DeleteView(ctx context.Context, viewID uuid.UUID) error
	ApplyView(ctx context.Context, viewID, siteID uuid.UUID, page int) (domain.SavedView, domain.EvaluationPage, error)
}

// QueryHandler serves record listing, export and saved views.
type QueryHandler struct {
	q   queryService
	log *slog.Logger
}

// NewQueryHandler creates a QueryHandler.
func NewQueryHandler(svc queryService, logger *slog.Logger) *QueryHandler {
	return &QueryHandler{q: svc, log: logger.With("handler", "query")}
}

// List handles GET /api/sites/{siteID}/evaluations.
func (h *QueryHandler) List(w http.ResponseWriter, r *http.Request) {
	siteID, ok := pathUUID(w, r, "siteID")
	if !ok {
		return
	}
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	result, err := h.q.List(r.Context(), query.ListInput{
		SiteID: siteID,
		Filter: filter,
		Search: r.URL.Query().Get("search"),
		Page:   page,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(result))
}

// Export handles GET /api/sites/{siteID}/evaluations/export. The CSV is
// built in memory first so that a failure still yields a proper error status.
func (h *QueryHandler) Export(w http.ResponseWriter, r *http.Request) {
	siteID, ok := pathUUID(w, r, "siteID")
	if !ok {
		return
	}
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	var buf bytes.Buffer
	result, err := h.q.Export(r.Context(), query.ExportInput{
		SiteID: siteID,
		Filter: filter,
		Search: r.URL.Query().Get("search"),
	}, &buf)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	filename := fmt.Sprintf("evaluations-%s-%s.csv", siteID, time.Now().UTC().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("X-Export-Rows", strconv.Itoa(result.Rows))
	w.Header().Set("X-Export-Truncated", strconv.FormatBool(result.Truncated))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w) //nolint:errcheck
}

// ---------------------------------------------------------------------------
// Saved views
// ---------------------------------------------------------------------------

// ListViews handles GET /api/views.
func (h *QueryHandler) ListViews(w http.ResponseWriter, r *http.Request) {
	views, err := h.q.ListViews(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]viewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toViewResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateView handles POST /api/views.
func (h *QueryHandler) CreateView(w http.ResponseWriter, r *http.Request) {
	var req viewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.q.CreateView(r.Context(), query.CreateViewInput{
		Name:    req.Name,
		Scope:   req.Scope,
		Filters: req.Filters,
		Search:  req.Search,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toViewResponse(view))
}

// UpdateView handles PUT /api/views/{id}.
func (h *QueryHandler) UpdateView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req viewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	view, err := h.q.UpdateView(r.Context(), query.UpdateViewInput{
		ID:      id,
		Name:    req.Name,
		Scope:   req.Scope,
		Filters: req.Filters,
		Search:  req.Search,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toViewResponse(view))
}

// DeleteView handles DELETE /api/views/{id}.
func (h *QueryHandler) DeleteView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.q.DeleteView(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ApplyView handles GET /api/views/{id}/apply?site=...&page=...
func (h *QueryHandler) ApplyView(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	siteID, err := uuid.Parse(r.URL.Query().Get("site"))
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("site", "must be a UUID"))
		return
	}
	page, err := queryInt(r, "page", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	view, result, err := h.q.ApplyView(r.Context(), id, siteID, page)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, appliedViewResponse{View: toViewResponse(view), Page: toPageResponse(result)})
}

// parseFilter reads the list filters from query parameters. Enum values are
// passed through and checked by the service.
func parseFilter(q url.Values) (domain.EvaluationFilter, error) {
	var f domain.EvaluationFilter

	f.DomainCode = optString(q, "domain")
	f.SubDomainCode = optString(q, "subDomain")
	f.SourceType = optString(q, "sourceType")
	if v := optString(q, "applicability"); v != nil {
		a := domain.Applicability(*v)
		f.Applicability = &a
	}
	if v := optString(q, "motif"); v != nil {
		m := domain.NonApplicableReason(*v)
		f.Reason = &m
	}
	if v := optString(q, "state"); v != nil {
		s := domain.ConformityState(*v)
		f.State = &s
	}
	if v := optString(q, "hasProof"); v != nil {
		p := domain.ProofPresence(*v)
		f.Proof = &p
	}
	if v := optString(q, "impactLevel"); v != nil {
		l := domain.ImpactLevel(*v)
		f.ImpactLevel = &l
	}
	if v := optString(q, "updatedWithinDays"); v != nil {
		days, err := strconv.Atoi(*v)
		if err != nil {
			return f, domain.NewValidationError("updatedWithinDays", "must be an integer")
		}
		f.UpdatedWithinDays = &days
	}
	return f, nil
}

func optString(q url.Values, key string) *string {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	return &v
}
