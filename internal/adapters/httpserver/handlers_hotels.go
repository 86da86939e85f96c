package httpserver

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

func (h *Handlers) searchByCoordinates(w http.ResponseWriter, r *http.Request) {
	q, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	body, err := h.Search.ByCoordinates(r.Context(), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// upstream payload passthrough
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("write search response failed")
	}
}
