package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) addFavorite(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id, err := h.Favorites.Add(r.Context(), chi.URLParam(r, "userId"), req.Hotel)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Added to favorites", "fav_id": id})
}

func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Favorites.List(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (h *Handlers) deleteFavorite(w http.ResponseWriter, r *http.Request) {
	if err := h.Favorites.Remove(r.Context(), chi.URLParam(r, "favId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Favorite removed"})
}
