package training

import "time"

type Plan struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Goal      string    `json:"goal"`
	Weeks     int       `json:"weeks"`
	Focus     string    `json:"focus,omitempty"`
	Body      string    `json:"body"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// PlanRequest carries the prompt inputs: the user's stated goal plus a
// snapshot of their recent logbook.
type PlanRequest struct {
	Goal         string
	Weeks        int
	Focus        string
	RecentClimbs int
	HardestGrade string
}
