package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emo-circle/backend/internal/domain"

	"github.com/go-chi/chi/v5"
)

// POST /api/messages/
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
		return
	}

	_, err := h.messageSvc.Send(r.Context(), domain.SessionID(req.SessionID), req.Content, req.SenderName)
	if err != nil {
		writeError(w, r, "handler.SendMessage:", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Message sent"})
}

// POST /api/messages/{id}/reply
func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid message id"})
		return
	}

	var req ReplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
		return
	}

	if _, err := h.messageSvc.Reply(r.Context(), domain.MessageID(id), req.Content, req.Sender); err != nil {
		writeError(w, r, "handler.AddReply:", err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Success: true, Message: "Reply added"})
}
