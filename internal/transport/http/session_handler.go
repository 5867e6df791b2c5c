package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/emo-circle/backend/internal/domain"
	"github.com/emo-circle/backend/internal/service"

	"github.com/go-chi/chi/v5"
)

// POST /api/sessions/
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
		return
	}

	code, err := h.sessionSvc.Create(r.Context(), req.Name, domain.UserID(req.FacilitatorID))
	if err != nil {
		writeError(w, r, "handler.CreateSession:", err)
		return
	}

	writeJSON(w, http.StatusOK, CreateSessionResponse{
		Success:     true,
		Message:     "Session created successfully",
		SessionCode: code,
	})
}

// GET /api/sessions/?facilitator_id=&status=
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	facilitatorID, _ := strconv.ParseInt(r.URL.Query().Get("facilitator_id"), 10, 64)
	status := r.URL.Query().Get("status")

	items, err := h.sessionSvc.List(r.Context(), domain.UserID(facilitatorID), status)
	if err != nil {
		writeError(w, r, "handler.ListSessions:", err)
		return
	}

	resp := SessionsListResponse{Success: true, Sessions: make([]SessionItem, 0, len(items))}
	for _, it := range items {
		resp.Sessions = append(resp.Sessions, SessionItem{
			ID:           int64(it.ID),
			Name:         it.Name,
			Code:         it.Code,
			Status:       string(it.Status),
			CreatedAt:    it.CreatedDate,
			Time:         it.CreatedTime,
			Participants: it.ParticipantCount,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GET /api/sessions/details_by_code?code=
func (h *Handler) SessionDetailsByCode(w http.ResponseWriter, r *http.Request) {
	detail, err := h.sessionSvc.DetailsByCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, r, "handler.SessionDetailsByCode:", err)
		return
	}

	writeJSON(w, http.StatusOK, SessionDetailResponse{
		Success: true,
		Session: toSessionDetailItem(detail),
	})
}

func toSessionDetailItem(d *service.SessionDetail) SessionDetailItem {
	item := SessionDetailItem{
		ID:            int64(d.ID),
		Name:          d.Name,
		Code:          d.Code,
		FacilitatorID: int64(d.FacilitatorID),
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		Participants:  make([]ParticipantItem, 0, len(d.Participants)),
		Messages:      make([]MessageItem, 0, len(d.Messages)),
		Emotions:      make([]EmotionItem, 0, len(d.Emotions)),
	}

	for _, p := range d.Participants {
		item.Participants = append(item.Participants, ParticipantItem{ID: int64(p.ID), Name: p.Name})
	}
	for _, m := range d.Messages {
		mi := MessageItem{
			ID:         int64(m.ID),
			Content:    m.Content,
			SenderName: m.SenderName,
			Timestamp:  m.Timestamp,
			Replies:    make([]ReplyItem, 0, len(m.Replies)),
		}
		for _, rep := range m.Replies {
			mi.Replies = append(mi.Replies, ReplyItem{
				ID:        int64(rep.ID),
				Content:   rep.Content,
				Sender:    rep.Sender,
				Timestamp: rep.Timestamp,
			})
		}
		item.Messages = append(item.Messages, mi)
	}
	for _, e := range d.Emotions {
		item.Emotions = append(item.Emotions, EmotionItem{
			Emotion:    e.Emotion,
			Percentage: e.Percentage,
			Color:      e.Color,
		})
	}

	return item
}

// POST /api/sessions/member/join
func (h *Handler) JoinSession(w http.ResponseWriter, r *http.Request) {
	var req JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid json"})
		return
	}

	res, err := h.sessionSvc.Join(r.Context(), req.SessionCode, req.MemberName)
	if err != nil {
		writeError(w, r, "handler.JoinSession:", err)
		return
	}

	resp := JoinResponse{
		Success:      true,
		SessionID:    int64(res.SessionID),
		MemberID:     int64(res.MemberID),
		Participants: make([]ParticipantItem, 0, len(res.Participants)),
	}
	for _, p := range res.Participants {
		resp.Participants = append(resp.Participants, ParticipantItem{ID: int64(p.ID), Name: p.Name})
	}

	writeJSON(w, http.StatusOK, resp)
}

// PUT /api/sessions/{id}/end
func (h *Handler) EndSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Message: "invalid session id"})
		return
	}

	if err := h.sessionSvc.End(r.Context(), domain.SessionID(id)); err != nil {
		writeError(w, r, "handler.EndSession:", err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Success: true, Message: "Session ended successfully"})
}
