package httpserver

import (
	"net/http"

	"tripmate/internal/domain"
)

func (h *Handlers) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	id, created, err := h.Auth.Register(r.Context(), domain.User{
		Email:      req.Email,
		Sub:        req.Sub,
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
		Picture:    req.Picture,
		Verified:   req.Verified,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	msg := "User registered successfully"
	if !created {
		// re-registering an existing email is not an error
		msg = "User already registered"
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": msg, "user_id": id})
}

func (h *Handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, token, err := h.Auth.Login(r.Context(), req.Email)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func (h *Handlers) adminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeValid(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	adm, err := h.Auth.AdminLogin(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Login successful",
		"admin":   adm,
	})
}
