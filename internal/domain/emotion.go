package domain

// Emotion is a precomputed label/percentage aggregate for a session.
type Emotion struct {
	SessionID  SessionID `db:"session_id"`
	Emotion    string    `db:"emotion"`
	Percentage float64   `db:"percentage"`
}

// emotionColors is the fixed label→display-color mapping used by the dashboard.
var emotionColors = map[string]string{
	"happy":   "#FFD700",
	"excited": "#A8E6CF",
	"neutral": "#87CEEB",
	"worried": "#FFA500",
	"sad":     "#FF6B6B",
}

const defaultEmotionColor = "#cccccc"

func EmotionColor(label string) string {
	if c, ok := emotionColors[label]; ok {
		return c
	}
	return defaultEmotionColor
}
