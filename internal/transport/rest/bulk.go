package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/service/bulk"
)

type bulkService interface {
	Update(ctx context.Context, input bulk.UpdateInput) ([]domain.EvaluationRecord, error)
}

// BulkHandler serves the bulk edit endpoint.
type BulkHandler struct {
	svc bulkService
	log *slog.Logger
}

// NewBulkHandler creates a BulkHandler.
func NewBulkHandler(svc bulkService, logger *slog.Logger) *BulkHandler {
	return &BulkHandler{svc: svc, log: logger.With("handler", "bulk")}
}

// Update handles POST /api/evaluations/bulk. The batch is all or nothing;
// a rejected batch lists every failing record.
func (h *BulkHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	records, err := h.svc.Update(r.Context(), bulk.UpdateInput{
		RecordIDs: req.RecordIDs,
		Changes:   req.Changes.toDomain(),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"updated": len(records),
		"records": toRecordResponses(records),
	})
}
