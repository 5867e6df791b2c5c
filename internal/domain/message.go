package domain

import "time"

type MessageID int64

// Message is an anonymous (or named) post within a session.
type Message struct {
	ID         MessageID `db:"id"`
	SessionID  SessionID `db:"session_id"`
	SenderName *string   `db:"sender_name"`
	Content    string    `db:"content"`
	CreatedAt  time.Time `db:"created_at"`
}

type ReplyID int64

// Reply is a threaded response to a specific message.
type Reply struct {
	ID        ReplyID   `db:"id"`
	MessageID MessageID `db:"message_id"`
	Content   string    `db:"content"`
	Sender    *string   `db:"sender"`
	CreatedAt time.Time `db:"created_at"`
}
