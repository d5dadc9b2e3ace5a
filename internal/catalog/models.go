package catalog

import "time"

type Area struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type Route struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Grade            string    `json:"grade"`
	DifficultySystem string    `json:"difficulty_system"`
	ClimbType        string    `json:"climb_type"`
	AreaID           string    `json:"area_id"`
	AreaName         string    `json:"area_name,omitempty"`
	ExternalID       string    `json:"external_id,omitempty"`
	CreatedBy        string    `json:"created_by"`
	CreatedAt        time.Time `json:"created_at"`
}

// ExternalRoute is one search hit from the open route database.
type ExternalRoute struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Grade     string `json:"grade"`
	System    string `json:"grade_system"`
	ClimbType string `json:"climb_type"`
	AreaName  string `json:"area_name"`
}
