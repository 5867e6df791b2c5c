package queries

const (
	QueryCreateUser = `
		INSERT INTO users (name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	QueryGetUserByEmail = `
		SELECT id, name, email, password_hash, created_at
		FROM users
		WHERE email = $1;
	`
	QueryExistsUserByEmail = `SELECT 1 FROM users WHERE email = $1;`

	QueryCreateSession = `
		INSERT INTO sessions (name, code, facilitator_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	QueryGetSessionByCode = `
		SELECT id, name, code, facilitator_id, status, created_at
		FROM sessions
		WHERE code = $1;
	`
	QueryListSessionsByFacilitator = `
		SELECT s.id, s.name, s.code, s.facilitator_id, s.status, s.created_at,
		       (SELECT COUNT(*) FROM participants p WHERE p.session_id = s.id) AS participants
		FROM sessions s
		WHERE s.facilitator_id = $1
		  AND ($2::text IS NULL OR s.status = $2)
		ORDER BY s.created_at DESC, s.id DESC;
	`
	QueryCloseSession = `UPDATE sessions SET status = 'Closed' WHERE id = $1;`

	QueryCreateParticipant = `
		INSERT INTO participants (session_id, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`
	QueryListParticipantsBySession = `
		SELECT id, session_id, name, created_at
		FROM participants
		WHERE session_id = $1
		ORDER BY id ASC;
	`

	QueryCreateMessage = `
		INSERT INTO messages (session_id, sender_name, content, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	QueryListMessagesBySession = `
		SELECT id, session_id, sender_name, content, created_at
		FROM messages
		WHERE session_id = $1
		ORDER BY created_at DESC, id DESC;
	`

	QueryCreateReply = `
		INSERT INTO replies (message_id, content, sender, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	QueryListRepliesByMessage = `
		SELECT id, message_id, content, sender, created_at
		FROM replies
		WHERE message_id = $1
		ORDER BY created_at ASC, id ASC;
	`

	QueryListEmotionsBySession = `
		SELECT session_id, emotion, percentage
		FROM emotions
		WHERE session_id = $1;
	`
)
