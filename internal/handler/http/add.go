package http

import (
	"io"
	"net/http"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/utils"
	"github.com/ymatsuda/go-api-sample/models"
)

// AddNumbers handles POST /add.
//
// The body is decoded and validated against the declarative schema held by
// the handler; any violation yields 422 with one entry per offending field.
func (h *Handler) AddNumbers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("error reading request body")
		h.writeError(w, r, http.StatusInternalServerError, "error reading request body")
		return
	}

	values, fieldErrors := h.addSchema.Decode(body)
	if len(fieldErrors) > 0 {
		h.writeValidationErrors(w, r, fieldErrors)
		return
	}

	response := h.services.Calc.Add(r.Context(), models.AddRequest{
		A: values.Numbers["a"],
		B: values.Numbers["b"],
	})

	if _, err = utils.WriteJSON(w, response, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing add response")
	}
}
