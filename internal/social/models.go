package social

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Friendship is created directed (requester -> addressee) but means
// the same thing in both directions once accepted.
type Friendship struct {
	ID          string    `json:"id"`
	RequesterID string    `json:"requester_id"`
	AddresseeID string    `json:"addressee_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type Friend struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Like struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// FeedItem is one ended session in the friends feed with enough
// aggregates to render the card without extra fetches.
type FeedItem struct {
	SessionID       string     `json:"session_id"`
	UserID          string     `json:"user_id"`
	Username        string     `json:"username"`
	AreaName        string     `json:"area_name"`
	ClimbType       string     `json:"climb_type"`
	StartTime       time.Time  `json:"start_time"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes"`
	AscentCount     int        `json:"ascent_count"`
	HardestGrade    string     `json:"hardest_grade"`
	LikeCount       int        `json:"like_count"`
	CommentCount    int        `json:"comment_count"`
}
