package stats

import "time"

// Climb is one ascent joined with its route's grade, climb type and
// area name. This is the only input shape the aggregator sees.
type Climb struct {
	DateClimbed time.Time `json:"date_climbed"`
	Style       *string   `json:"style"`
	Attempts    int       `json:"attempts"`
	Grade       string    `json:"grade"`
	ClimbType   string    `json:"climb_type"`
	AreaName    string    `json:"area_name"`
}

type VenueSplit struct {
	Outdoor int `json:"outdoor"`
	Indoor  int `json:"indoor"`
}

type DayVolume struct {
	Date     string `json:"date"`
	Climbs   int    `json:"climbs"`
	Sessions int    `json:"sessions"`
}

type MonthTrend struct {
	DisplayMonth string  `json:"display_month"`
	Climbs       int     `json:"climbs"`
	AvgGrade     float64 `json:"avg_grade"`
}

type ProgressionPoint struct {
	Date         string  `json:"date"`
	HardestGrade float64 `json:"hardest_grade"`
	AvgGrade     float64 `json:"avg_grade"`
}

type PyramidEntry struct {
	Grade     string `json:"grade"`
	ClimbType string `json:"climb_type"`
	Count     int    `json:"count"`
}

type StyleCount struct {
	Style      string  `json:"style"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type GradeCount struct {
	Grade string `json:"grade"`
	Count int    `json:"count"`
}

// Progress is the derived dashboard payload. It is recomputed on every
// fetch and never persisted.
type Progress struct {
	TotalClimbs          int                `json:"total_climbs"`
	TotalSessions        int                `json:"total_sessions"`
	AvgClimbsPerSession  float64            `json:"avg_climbs_per_session"`
	SendRate             float64            `json:"send_rate"`
	FlashRate            float64            `json:"flash_rate"`
	OnsightRate          float64            `json:"onsight_rate"`
	OutdoorVsIndoor      VenueSplit         `json:"outdoor_vs_indoor"`
	HardestGrades        map[string]string  `json:"hardest_grades"`
	MonthlyVolume        []DayVolume        `json:"monthly_volume"`
	MonthlyTrends        []MonthTrend       `json:"monthly_trends"`
	GradeProgression     []ProgressionPoint `json:"grade_progression"`
	GradePyramid         []PyramidEntry     `json:"grade_pyramid"`
	AttemptsDistribution map[string]int     `json:"attempts_distribution"`
	StyleDistribution    []StyleCount       `json:"style_distribution"`
	FavoriteGrades       []GradeCount       `json:"favorite_grades"`
	CurrentStreak        int                `json:"current_streak"`
	LongestStreak        int                `json:"longest_streak"`
}
