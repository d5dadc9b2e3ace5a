package session

import "time"

// Session is one bounded period of climbing. end_time is NULL while
// the session is active; a user has at most one active session.
type Session struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	AreaID          string     `json:"area_id"`
	AreaName        string     `json:"area_name,omitempty"`
	ClimbType       string     `json:"climb_type"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Summary is the end-of-session recap: how much was climbed and the
// hardest grade ticked.
type Summary struct {
	SessionID       string `json:"session_id"`
	AscentCount     int    `json:"ascent_count"`
	HardestGrade    string `json:"hardest_grade"`
	DurationMinutes int    `json:"duration_minutes"`
}
