package http

import (
	"net/http"

	"github.com/ymatsuda/go-api-sample/internal/logger"
	"github.com/ymatsuda/go-api-sample/internal/utils"
)

// GetGreeting handles GET / and returns the canonical greeting.
func (h *Handler) GetGreeting(w http.ResponseWriter, r *http.Request) {
	greeting := h.services.Calc.Greet(r.Context())

	if _, err := utils.WriteJSON(w, greeting, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing greeting response")
	}
}
