package domain

import "time"

type ParticipantID int64

type Participant struct {
	ID        ParticipantID `db:"id"`
	SessionID SessionID     `db:"session_id"`
	Name      string        `db:"name"`
	CreatedAt time.Time     `db:"created_at"`
}
