package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/service/lineage"
)

type lineageService interface {
	RestoreVersion(ctx context.Context, input lineage.RestoreInput) (domain.RestoreResult, error)
	CreateVersion(ctx context.Context, input lineage.CreateVersionInput) (domain.ArticleVersion, error)
	ListVersions(ctx context.Context, articleID uuid.UUID) ([]domain.ArticleVersion, error)
}

// LineageHandler serves article version history.
type LineageHandler struct {
	svc lineageService
	log *slog.Logger
}

// NewLineageHandler creates a LineageHandler.
func NewLineageHandler(svc lineageService, logger *slog.Logger) *LineageHandler {
	return &LineageHandler{svc: svc, log: logger.With("handler", "lineage")}
}

// ListVersions handles GET /api/articles/{id}/versions.
func (h *LineageHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	versions, err := h.svc.ListVersions(r.Context(), articleID)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	out := make([]versionResponse, 0, len(versions))
	for _, v := range versions {
		out = append(out, toVersionResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

// CreateVersion handles POST /api/articles/{id}/versions.
func (h *LineageHandler) CreateVersion(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req versionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	effective, err := parseDate("effectiveDate", req.EffectiveDate)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	version, err := h.svc.CreateVersion(r.Context(), lineage.CreateVersionInput{
		ArticleID:     articleID,
		Content:       req.Content,
		EffectiveDate: effective,
		Notes:         req.Notes,
		PreviousVigor: req.PreviousVigor,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toVersionResponse(version))
}

// Restore handles POST /api/articles/{id}/versions/{versionID}/restore.
// A blocking abrogation answers 409 with the effect date.
func (h *LineageHandler) Restore(w http.ResponseWriter, r *http.Request) {
	articleID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	versionID, ok := pathUUID(w, r, "versionID")
	if !ok {
		return
	}

	result, err := h.svc.RestoreVersion(r.Context(), lineage.RestoreInput{ArticleID: articleID, VersionID: versionID})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRestoreResponse(result))
}
