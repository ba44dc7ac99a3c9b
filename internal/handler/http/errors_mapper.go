package http

import (
	"errors"
	"net/http"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/service"
	"github.com/ymatsuda/go-api-sample/internal/utils"
	"github.com/ymatsuda/go-api-sample/models"
)

// statusFromError maps domain errors onto HTTP status codes.
// Unrecognised errors fall back to 500.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrNameAlreadyTaken),
		errors.Is(err, service.ErrEmailAlreadyTaken),
		errors.Is(err, service.ErrAlreadyRegistered),
		errors.Is(err, service.ErrCurrentPasswordRequired),
		errors.Is(err, service.ErrNoChangesProvided):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrWrongPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeDomainError renders err as an {"detail": ...} body with the mapped
// status code. Internal errors are logged and masked with a generic message.
func (h *Handler) writeDomainError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	detail := err.Error()
	if status == http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("internal error")
		detail = "internal server error"
	}

	h.writeError(w, r, status, detail)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, detail string) {
	if _, err := utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeValidationErrors renders a 422 with the structured field-error list.
func (h *Handler) writeValidationErrors(w http.ResponseWriter, r *http.Request, fieldErrors []models.FieldError) {
	response := models.ValidationErrorResponse{Detail: fieldErrors}

	if _, err := utils.WriteJSON(w, response, http.StatusUnprocessableEntity); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing validation response")
	}
}
