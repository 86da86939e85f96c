package httpserver

import "net/http"

func (h *Handlers) adminUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Admin.Users(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": users})
}

func (h *Handlers) adminTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := h.Admin.Transactions(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"transactions": txs})
}

func (h *Handlers) adminFavorites(w http.ResponseWriter, r *http.Request) {
	favs, err := h.Admin.Favorites(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": favs})
}

func (h *Handlers) adminChats(w http.ResponseWriter, r *http.Request) {
	chats, err := h.Admin.Chats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"chats": chats})
}
