package http

import "time"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserItem struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	User    UserItem `json:"user"`
}

type CreateSessionRequest struct {
	Name          string `json:"name"`
	FacilitatorID int64  `json:"facilitator_id"`
}

type CreateSessionResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	SessionCode string `json:"sessionCode"`
}

type SessionItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"` // dd/mm/yyyy
	Time         string `json:"time"`       // HH:MM:SS
	Participants int    `json:"participants"`
}

type SessionsListResponse struct {
	Success  bool          `json:"success"`
	Sessions []SessionItem `json:"sessions"`
}

type ParticipantItem struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type ReplyItem struct {
	ID        int64   `json:"id"`
	Content   string  `json:"content"`
	Sender    *string `json:"sender"`
	Timestamp string  `json:"timestamp"`
}

type MessageItem struct {
	ID         int64       `json:"id"`
	Content    string      `json:"content"`
	SenderName *string     `json:"sender_name"`
	Timestamp  string      `json:"timestamp"`
	Replies    []ReplyItem `json:"replies"`
}

type EmotionItem struct {
	Emotion    string  `json:"emotion"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

type SessionDetailItem struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	Code          string            `json:"code"`
	FacilitatorID int64             `json:"facilitator_id"`
	Status        string            `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
	Participants  []ParticipantItem `json:"participants"`
	Messages      []MessageItem     `json:"messages"`
	Emotions      []EmotionItem     `json:"emotions"`
}

type SessionDetailResponse struct {
	Success bool              `json:"success"`
	Session SessionDetailItem `json:"session"`
}

type JoinRequest struct {
	SessionCode string `json:"sessionCode"`
	MemberName  string `json:"memberName"`
}

type JoinResponse struct {
	Success      bool              `json:"success"`
	SessionID    int64             `json:"sessionId"`
	MemberID     int64             `json:"memberId"`
	Participants []ParticipantItem `json:"participants"`
}

type SendMessageRequest struct {
	SessionID  int64   `json:"sessionId"`
	Content    string  `json:"content"`
	SenderName *string `json:"senderName"`
}

type ReplyRequest struct {
	Content string  `json:"content"`
	Sender  *string `json:"sender"`
}
