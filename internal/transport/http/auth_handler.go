package http

import (
	"encoding/json"
	"net/http"
)

// POST /api/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
		return
	}

	if _, err := h.authSvc.Register(r.Context(), req.Name, req.Email, req.Password); err != nil {
		writeError(w, r, "handler.Register:", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Success: true, Message: "Registration successful"})
}

// POST /api/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
		return
	}

	u, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, "handler.Login:", err)
		return
	}

	// The password hash never leaves the service layer.
	writeJSON(w, http.StatusOK, LoginResponse{
		Success: true,
		Message: "Login successful",
		User: UserItem{
			ID:    int64(u.ID),
			Name:  u.Name,
			Email: u.Email,
		},
	})
}
