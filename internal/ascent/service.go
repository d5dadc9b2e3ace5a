package ascent

import (
	"context"
	"errors"
	"time"

	"backend-sendit/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Log(ctx context.Context, input Ascent) (Ascent, error) {
	if input.UserID == "" || input.RouteID == "" {
		return Ascent{}, errors.New("user_id and route_id required")
	}
	if input.Attempts == 0 {
		input.Attempts = 1
	}
	if input.Attempts < 1 {
		return Ascent{}, errors.New("attempts must be at least 1")
	}
	if input.Style != nil && !validStyles[*input.Style] {
		return Ascent{}, errors.New("invalid style")
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 5) {
		return Ascent{}, errors.New("rating must be between 1 and 5")
	}
	if input.DateClimbed.IsZero() {
		input.DateClimbed = time.Now()
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO ascents (id, user_id, route_id, session_id, date_climbed, style, attempts, notes, rating)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NULLIF($8,''),$9)
		RETURNING created_at
	`, input.ID, input.UserID, input.RouteID, input.SessionID, input.DateClimbed, input.Style, input.Attempts, input.Notes, input.Rating)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Ascent{}, err
	}
	return input, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]AscentWithRoute, error) {
	rows, err := s.db.Query(ctx, `
		SELECT a.id, a.user_id, a.route_id, a.session_id, a.date_climbed, a.style, a.attempts,
		       COALESCE(a.notes, ''), a.rating, a.created_at,
		       COALESCE(r.name, ''), COALESCE(r.grade, ''), COALESCE(r.climb_type, ''), COALESCE(ar.name, '')
		FROM ascents a
		LEFT JOIN routes r ON r.id = a.route_id
		LEFT JOIN areas ar ON ar.id = r.area_id
		WHERE a.user_id=$1
		ORDER BY a.date_climbed DESC, a.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWithRoutes(rows)
}

// BySession returns a session's ascents for the end-of-session summary.
func (s *Service) BySession(ctx context.Context, sessionID string) ([]AscentWithRoute, error) {
	rows, err := s.db.Query(ctx, `
		SELECT a.id, a.user_id, a.route_id, a.session_id, a.date_climbed, a.style, a.attempts,
		       COALESCE(a.notes, ''), a.rating, a.created_at,
		       COALESCE(r.name, ''), COALESCE(r.grade, ''), COALESCE(r.climb_type, ''), COALESCE(ar.name, '')
		FROM ascents a
		LEFT JOIN routes r ON r.id = a.route_id
		LEFT JOIN areas ar ON ar.id = r.area_id
		WHERE a.session_id=$1
		ORDER BY a.created_at
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanWithRoutes(rows)
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM ascents WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("ascent not found or not owned")
	}
	return nil
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
}

func scanWithRoutes(rows rowScanner) ([]AscentWithRoute, error) {
	var out []AscentWithRoute
	for rows.Next() {
		var a AscentWithRoute
		if err := rows.Scan(&a.ID, &a.UserID, &a.RouteID, &a.SessionID, &a.DateClimbed, &a.Style, &a.Attempts,
			&a.Notes, &a.Rating, &a.CreatedAt, &a.RouteName, &a.Grade, &a.ClimbType, &a.AreaName); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
