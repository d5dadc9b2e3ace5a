package ascent

import "time"

var validStyles = map[string]bool{
	"onsight": true, "flash": true, "redpoint": true,
	"toprope": true, "hangdog": true, "attempt": true,
}

type Ascent struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	RouteID     string    `json:"route_id"`
	SessionID   *string   `json:"session_id,omitempty"`
	DateClimbed time.Time `json:"date_climbed"`
	Style       *string   `json:"style,omitempty"`
	Attempts    int       `json:"attempts"`
	Notes       string    `json:"notes,omitempty"`
	Rating      *int      `json:"rating,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// AscentWithRoute is the list shape: an ascent joined with the route
// fields the dashboard and feed need.
type AscentWithRoute struct {
	Ascent
	RouteName string `json:"route_name"`
	Grade     string `json:"grade"`
	ClimbType string `json:"climb_type"`
	AreaName  string `json:"area_name"`
}
