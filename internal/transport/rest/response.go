package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/compliance-backend/internal/domain"
)

const maxBodyBytes = 1 << 20

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Message    string          `json:"message"`
	Fields     []fieldError    `json:"fields,omitempty"`
	Failures   []recordFailure `json:"failures,omitempty"`
	HolderID   *string         `json:"holderId,omitempty"`
	EffectDate *string         `json:"effectDate,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type recordFailure struct {
	RecordID string `json:"recordId"`
	Message  string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Message: message}})
}

// respondError maps a service error onto a status code and error body.
// Unknown errors are logged and reported as 500 without details.
func respondError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var bulkErr *domain.BulkError
	if errors.As(err, &bulkErr) && len(bulkErr.Failures) > 0 {
		detail := errorDetail{Message: "bulk update aborted"}
		for _, f := range bulkErr.Failures {
			detail.Failures = append(detail.Failures, recordFailure{
				RecordID: f.RecordID.String(),
				Message:  f.Err.Error(),
			})
		}
		writeJSON(w, statusFor(bulkErr.Failures[0].Err), errorBody{Error: detail})
		return
	}

	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, status, "internal server error")
		return
	}

	detail := errorDetail{Message: err.Error()}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		detail.Message = "validation failed"
		for _, fe := range validationErr.Errors {
			detail.Fields = append(detail.Fields, fieldError{Field: fe.Field, Message: fe.Message})
		}
	}

	var lockedErr *domain.LockedError
	if errors.As(err, &lockedErr) {
		holder := lockedErr.HolderID.String()
		detail.HolderID = &holder
	}

	var conflictErr *domain.RestoreConflictError
	if errors.As(err, &conflictErr) {
		date := conflictErr.EffectDate.Format(time.DateOnly)
		detail.EffectDate = &date
	}

	switch status {
	case http.StatusUnauthorized:
		detail.Message = "unauthorized"
	case http.StatusForbidden:
		detail.Message = "forbidden"
	case http.StatusNotFound:
		detail.Message = "not found"
	}

	writeJSON(w, status, errorBody{Error: detail})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrLocked):
		return http.StatusLocked
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a bounded JSON body into dst, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "request body is empty")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathUUID parses the named path value. It writes a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errorDetail{
			Message: "validation failed",
			Fields:  []fieldError{{Field: name, Message: "must be a UUID"}},
		}})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}
