package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
	"github.com/heartmarshall/compliance-backend/internal/service/evaluation"
)

type evaluationService interface {
	SetApplicability(ctx context.Context, input evaluation.SetApplicabilityInput) (domain.EvaluationRecord, error)
	SetConformity(ctx context.Context, input evaluation.SetConformityInput) (domain.EvaluationRecord, error)
	UpdateRecord(ctx context.Context, input evaluation.UpdateRecordInput) (domain.EvaluationRecord, error)
	ApplySuggestion(ctx context.Context, recordID uuid.UUID, kind domain.SuggestionKind) (domain.EvaluationRecord, error)
	IgnoreSuggestion(ctx context.Context, recordID uuid.UUID, kind domain.SuggestionKind) (domain.EvaluationRecord, error)
	Lock(ctx context.Context, recordID uuid.UUID) (domain.EvaluationRecord, error)
	Unlock(ctx context.Context, recordID uuid.UUID) (domain.EvaluationRecord, error)
	History(ctx context.Context, recordID uuid.UUID, limit int) ([]domain.AuditRecord, error)
	AttachProof(ctx context.Context, input evaluation.AttachProofInput) (domain.Proof, error)
	DetachProof(ctx context.Context, proofID uuid.UUID) (domain.Proof, error)
	ResolveProofURL(ctx context.Context, storagePath string) (string, error)
	CreateAction(ctx context.Context, input evaluation.CreateActionInput) (domain.CorrectiveAction, error)
	DeleteAction(ctx context.Context, actionID uuid.UUID) error
}

// EvaluationHandler serves single-record transitions, proofs and actions.
type EvaluationHandler struct {
	svc evaluationService
	log *slog.Logger
}

// NewEvaluationHandler creates an EvaluationHandler.
func NewEvaluationHandler(svc evaluationService, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{svc: svc, log: logger.With("handler", "evaluation")}
}

// SetApplicability handles PATCH /api/evaluations/{id}/applicability.
func (h *EvaluationHandler) SetApplicability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req applicabilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.SetApplicability(r.Context(), evaluation.SetApplicabilityInput{
		RecordID:      id,
		Applicability: req.Applicability,
		Reason:        req.Reason,
		ReasonComment: req.ReasonComment,
	})
	h.respondRecord(w, r, rec, err)
}

// SetConformity handles PATCH /api/evaluations/{id}/conformity.
func (h *EvaluationHandler) SetConformity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req conformityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.SetConformity(r.Context(), evaluation.SetConformityInput{RecordID: id, State: req.State})
	h.respondRecord(w, r, rec, err)
}

// Update handles PATCH /api/evaluations/{id}.
func (h *EvaluationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req changeSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.UpdateRecord(r.Context(), evaluation.UpdateRecordInput{RecordID: id, Changes: req.toDomain()})
	h.respondRecord(w, r, rec, err)
}

// ApplySuggestion handles POST /api/evaluations/{id}/suggestions/{kind}/apply.
func (h *EvaluationHandler) ApplySuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.svc.ApplySuggestion(r.Context(), id, domain.SuggestionKind(r.PathValue("kind")))
	h.respondRecord(w, r, rec, err)
}

// IgnoreSuggestion handles POST /api/evaluations/{id}/suggestions/{kind}/ignore.
func (h *EvaluationHandler) IgnoreSuggestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.svc.IgnoreSuggestion(r.Context(), id, domain.SuggestionKind(r.PathValue("kind")))
	h.respondRecord(w, r, rec, err)
}

// Lock handles POST /api/evaluations/{id}/lock.
func (h *EvaluationHandler) Lock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.svc.Lock(r.Context(), id)
	h.respondRecord(w, r, rec, err)
}

// Unlock handles DELETE /api/evaluations/{id}/lock.
func (h *EvaluationHandler) Unlock(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	rec, err := h.svc.Unlock(r.Context(), id)
	h.respondRecord(w, r, rec, err)
}

// History handles GET /api/evaluations/{id}/history.
func (h *EvaluationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	entries, err := h.svc.History(r.Context(), id, limit)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	out := make([]auditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAuditEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ---------------------------------------------------------------------------
// Proofs
// ---------------------------------------------------------------------------

// AttachProof handles POST /api/evaluations/{id}/proofs.
func (h *EvaluationHandler) AttachProof(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req proofRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	proof, err := h.svc.AttachProof(r.Context(), evaluation.AttachProofInput{
		RecordID:    id,
		Type:        req.Type,
		StoragePath: req.StoragePath,
		FileName:    req.FileName,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		URL:         req.URL,
		Comment:     req.Comment,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProofResponse(proof))
}

// DetachProof handles DELETE /api/proofs/{id}. The removed proof is returned
// so the caller can release its stored file.
func (h *EvaluationHandler) DetachProof(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	proof, err := h.svc.DetachProof(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProofResponse(proof))
}

// ProofURL handles GET /api/proofs/url?path=...
func (h *EvaluationHandler) ProofURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.ResolveProofURL(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// ---------------------------------------------------------------------------
// Corrective actions
// ---------------------------------------------------------------------------

// CreateAction handles POST /api/evaluations/{id}/actions.
func (h *EvaluationHandler) CreateAction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req actionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := evaluation.CreateActionInput{
		RecordID:        id,
		Title:           req.Title,
		Description:     req.Description,
		ResponsibleID:   req.ResponsibleID,
		ResponsibleName: req.ResponsibleName,
		Priority:        req.Priority,
	}
	if req.DueDate != nil {
		due, err := parseDate("dueDate", *req.DueDate)
		if err != nil {
			respondError(w, r, h.log, err)
			return
		}
		input.DueDate = &due
	}

	action, err := h.svc.CreateAction(r.Context(), input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActionResponse(action))
}

// DeleteAction handles DELETE /api/actions/{id}.
func (h *EvaluationHandler) DeleteAction(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteAction(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *EvaluationHandler) respondRecord(w http.ResponseWriter, r *http.Request, rec domain.EvaluationRecord, err error) {
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecordResponse(rec))
}
