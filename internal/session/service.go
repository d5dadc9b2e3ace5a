package session

import (
	"context"
	"errors"
	"time"

	"backend-sendit/internal/catalog"
	"backend-sendit/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrSessionActive is returned when start is attempted while an
// unterminated session exists. The store is checked at start time; UI
// gating alone is not trusted.
var ErrSessionActive = errors.New("an active session already exists")

// ErrNoActiveSession is returned when end is attempted with nothing to
// end.
var ErrNoActiveSession = errors.New("no active session")

type Service struct {
	db    db.Querier
	areas *catalog.Service
}

func NewService(db db.Querier, areas *catalog.Service) *Service {
	return &Service{db: db, areas: areas}
}

// Active returns the user's unterminated session, if any.
func (s *Service) Active(ctx context.Context, userID string) (Session, error) {
	row := s.db.QueryRow(ctx, `
		SELECT s.id, s.user_id, s.area_id, COALESCE(a.name, ''), s.climb_type,
		       s.start_time, s.end_time, s.duration_minutes, COALESCE(s.notes, ''), s.created_at
		FROM sessions s
		LEFT JOIN areas a ON a.id = s.area_id
		WHERE s.user_id=$1 AND s.end_time IS NULL
	`, userID)

	var sess Session
	if err := row.Scan(&sess.ID, &sess.UserID, &sess.AreaID, &sess.AreaName, &sess.ClimbType,
		&sess.StartTime, &sess.EndTime, &sess.DurationMinutes, &sess.Notes, &sess.CreatedAt); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Start opens a session at the named area, creating the area on first
// reference. Rejected with ErrSessionActive while one is open.
func (s *Service) Start(ctx context.Context, userID, climbType, areaName string) (Session, error) {
	if userID == "" || areaName == "" {
		return Session{}, errors.New("user_id and area_name required")
	}

	if _, err := s.Active(ctx, userID); err == nil {
		return Session{}, ErrSessionActive
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return Session{}, err
	}

	area, err := s.areas.FindOrCreateArea(ctx, areaName, userID)
	if err != nil {
		return Session{}, err
	}

	sess := Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		AreaID:    area.ID,
		AreaName:  area.Name,
		ClimbType: climbType,
		StartTime: time.Now(),
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO sessions (id, user_id, area_id, climb_type, start_time)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING start_time, created_at
	`, sess.ID, sess.UserID, sess.AreaID, sess.ClimbType, sess.StartTime)
	if err := row.Scan(&sess.StartTime, &sess.CreatedAt); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// End closes the user's active session, stamping end_time and the
// floored minute duration. The row is immutable afterward except for
// deletion.
func (s *Service) End(ctx context.Context, userID, notes string) (Session, error) {
	sess, err := s.Active(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Session{}, ErrNoActiveSession
		}
		return Session{}, err
	}

	now := time.Now()
	minutes := int(now.Sub(sess.StartTime).Minutes())

	_, err = s.db.Exec(ctx, `
		UPDATE sessions
		SET end_time=$2, duration_minutes=$3, notes=NULLIF($4,'')
		WHERE id=$1
	`, sess.ID, now, minutes, notes)
	if err != nil {
		return Session{}, err
	}

	sess.EndTime = &now
	sess.DurationMinutes = &minutes
	sess.Notes = notes
	return sess, nil
}

// Summary recaps a session. Hardest grade is the lexical max of the
// session's route grades, same weak ordering the dashboard uses.
func (s *Service) Summary(ctx context.Context, sessionID string) (Summary, error) {
	summary := Summary{SessionID: sessionID}
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(a.id), COALESCE(MAX(r.grade), ''), COALESCE(MIN(s.duration_minutes), 0)
		FROM sessions s
		LEFT JOIN ascents a ON a.session_id = s.id
		LEFT JOIN routes r ON r.id = a.route_id
		WHERE s.id=$1
	`, sessionID)
	if err := row.Scan(&summary.AscentCount, &summary.HardestGrade, &summary.DurationMinutes); err != nil {
		return Summary{}, err
	}
	return summary, nil
}

// Delete removes a session; ascents, comments and likes cascade via
// foreign keys.
func (s *Service) Delete(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("session not found or not owned")
	}
	return nil
}
