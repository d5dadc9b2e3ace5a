package stats

import (
	"context"

	"backend-sendit/internal/db"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Progress loads the user's complete ascent history joined with route
// and area data, then hands it to the pure aggregator. Nothing is
// cached; callers re-fetch after mutations.
func (s *Service) Progress(ctx context.Context, userID string) (Progress, error) {
	rows, err := s.db.Query(ctx, `
		SELECT a.date_climbed, a.style, a.attempts,
		       COALESCE(r.grade, ''), COALESCE(r.climb_type, ''), COALESCE(ar.name, '')
		FROM ascents a
		LEFT JOIN routes r ON r.id = a.route_id
		LEFT JOIN areas ar ON ar.id = r.area_id
		WHERE a.user_id = $1
	`, userID)
	if err != nil {
		return Progress{}, err
	}
	defer rows.Close()

	var climbs []Climb
	for rows.Next() {
		var c Climb
		if err := rows.Scan(&c.DateClimbed, &c.Style, &c.Attempts, &c.Grade, &c.ClimbType, &c.AreaName); err != nil {
			return Progress{}, err
		}
		climbs = append(climbs, c)
	}
	return Aggregate(climbs), nil
}
