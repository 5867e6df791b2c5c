package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/service"
	"github.com/emo-circle/backend/pkg/logger"
)

type Handler struct {
	authSvc    *service.AuthService
	sessionSvc *service.SessionService
	messageSvc *service.MessageService
}

func NewHandler(auth *service.AuthService, session *service.SessionService, message *service.MessageService) *Handler {
	return &Handler{
		authSvc:    auth,
		sessionSvc: session,
		messageSvc: message,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps service errors to HTTP statuses. Unexpected errors are
// logged server-side, with trace ids when a span is active, and answered
// with a generic message.
func writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrPasswordTooShort):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	case errors.Is(err, domain.ErrEmailTaken):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "Email already registered"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{Message: "Invalid email or password"})
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionClosed):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Session not found or has ended"})
	case errors.Is(err, domain.ErrMessageNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Message: "Message not found"})
	default:
		attrs := append(logger.AttrsFromCtx(r.Context()), slog.Any("err", err))
		logger.L().LogAttrs(r.Context(), slog.LevelError, op, attrs...)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
	}
}
