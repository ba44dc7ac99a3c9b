package http

import (
	"net/http"

	"github.com/ymatsuda/go-api-sample/internal/logger"
)

// GetVersion handles GET /api/version/ and writes the bare version string.
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.services.AppInfo.GetVersion(r.Context())
	if err != nil {
		h.writeDomainError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	if _, err = w.Write([]byte(version)); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version response")
	}
}
