package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"planwise-backend/internal/models"
	"planwise-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func errorResp(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	writeJSON(w, status, models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	})
}

func errorRespWithFields(w http.ResponseWriter, r *http.Request, status int, code, message string, fields map[string]string) {
	writeJSON(w, status, models.ErrorResponse{
		Error: models.APIError{
			Code:      code,
			Message:   message,
			Fields:    fields,
			RequestID: r.Header.Get("X-Request-ID"),
		},
	})
}

// handleServiceError maps typed service errors onto the error envelope.
func handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		errorRespWithFields(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", e.Fields)
	case *services.ConflictError:
		errorResp(w, r, http.StatusConflict, "CONFLICT", e.Message)
	case *services.NotFoundError:
		errorResp(w, r, http.StatusNotFound, "NOT_FOUND", e.Message)
	case *services.UnauthorizedError:
		errorResp(w, r, http.StatusUnauthorized, "UNAUTHORIZED", e.Message)
	case *services.ForbiddenError:
		errorResp(w, r, http.StatusForbidden, "FORBIDDEN", e.Message)
	case *services.UnavailableError:
		errorResp(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", e.Message)
	default:
		log.Printf("internal error [%s %s]: %v", r.Method, r.URL.Path, err)
		errorResp(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Something went wrong")
	}
}
