package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handlers) predict(w http.ResponseWriter, r *http.Request) {
	var req predictRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.Chat.Predict(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, reply)
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.Chat.Send(r.Context(), req.UserID, req.UserName, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	// the body is the assistant text itself, nothing wrapped around it
	writeText(w, http.StatusOK, reply)
}

func (h *Handlers) chatHistory(w http.ResponseWriter, r *http.Request) {
	turns, err := h.Chat.History(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, turns)
}

func (h *Handlers) chatPurge(w http.ResponseWriter, r *http.Request) {
	if err := h.Chat.Purge(r.Context(), chi.URLParam(r, "userId")); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Chats deleted successfully"})
}

func (h *Handlers) recommend(w http.ResponseWriter, r *http.Request) {
	var req recommendationRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	reply, err := h.Chat.Recommend(r.Context(), req.UserName, req.Text)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeText(w, http.StatusOK, reply)
}
