package social

import (
	"context"
	"errors"

	"backend-sendit/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) Request(ctx context.Context, requesterID, addresseeID string) (Friendship, error) {
	if requesterID == "" || addresseeID == "" {
		return Friendship{}, errors.New("requester_id and addressee_id required")
	}
	if requesterID == addresseeID {
		return Friendship{}, errors.New("cannot friend yourself")
	}

	friendship := Friendship{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		AddresseeID: addresseeID,
		Status:      StatusPending,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO friendships (id, requester_id, addressee_id, status)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, friendship.ID, friendship.RequesterID, friendship.AddresseeID, friendship.Status)
	if err := row.Scan(&friendship.CreatedAt); err != nil {
		return Friendship{}, err
	}
	return friendship, nil
}

// Respond accepts or rejects a pending request. Only the addressee may
// respond, and only while the request is still pending.
func (s *Service) Respond(ctx context.Context, friendshipID, addresseeID string, accept bool) error {
	status := StatusRejected
	if accept {
		status = StatusAccepted
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE friendships
		SET status=$3
		WHERE id=$1 AND addressee_id=$2 AND status='pending'
	`, friendshipID, addresseeID, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("pending request not found")
	}
	return nil
}

func (s *Service) Remove(ctx context.Context, friendshipID, userID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM friendships
		WHERE id=$1 AND (requester_id=$2 OR addressee_id=$2)
	`, friendshipID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("friendship not found")
	}
	return nil
}

func (s *Service) Friends(ctx context.Context, userID string) ([]Friend, error) {
	rows, err := s.db.Query(ctx, `
		SELECT u.id, u.username, COALESCE(u.avatar_url, '')
		FROM friendships f
		JOIN users u ON u.id = CASE WHEN f.requester_id=$1 THEN f.addressee_id ELSE f.requester_id END
		WHERE f.status='accepted' AND (f.requester_id=$1 OR f.addressee_id=$1)
		ORDER BY u.username
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var friends []Friend
	for rows.Next() {
		var f Friend
		if err := rows.Scan(&f.UserID, &f.Username, &f.AvatarURL); err != nil {
			return nil, err
		}
		friends = append(friends, f)
	}
	return friends, nil
}

func (s *Service) Pending(ctx context.Context, userID string) ([]Friendship, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, requester_id, addressee_id, status, created_at
		FROM friendships
		WHERE addressee_id=$1 AND status='pending'
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pending []Friendship
	for rows.Next() {
		var f Friendship
		if err := rows.Scan(&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt); err != nil {
			return nil, err
		}
		pending = append(pending, f)
	}
	return pending, nil
}

func (s *Service) Like(ctx context.Context, sessionID, userID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO session_likes (session_id, user_id)
		VALUES ($1,$2)
		ON CONFLICT DO NOTHING
	`, sessionID, userID)
	return err
}

func (s *Service) Unlike(ctx context.Context, sessionID, userID string) error {
	_, err := s.db.Exec(ctx, `
		DELETE FROM session_likes WHERE session_id=$1 AND user_id=$2
	`, sessionID, userID)
	return err
}

func (s *Service) AddComment(ctx context.Context, sessionID, userID, content string) (Comment, error) {
	if content == "" {
		return Comment{}, errors.New("content required")
	}
	comment := Comment{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		UserID:    userID,
		Content:   content,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO comments (id, session_id, user_id, content)
		VALUES ($1,$2,$3,$4)
		RETURNING created_at
	`, comment.ID, comment.SessionID, comment.UserID, comment.Content)
	if err := row.Scan(&comment.CreatedAt); err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func (s *Service) Comments(ctx context.Context, sessionID string) ([]Comment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, session_id, user_id, content, created_at
		FROM comments WHERE session_id=$1
		ORDER BY created_at
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.SessionID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}

func (s *Service) DeleteComment(ctx context.Context, commentID, userID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM comments WHERE id=$1 AND user_id=$2
	`, commentID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("comment not found or not owned")
	}
	return nil
}

// Feed returns ended sessions of the user and their accepted friends,
// newest first, with the aggregates the feed card renders.
func (s *Service) Feed(ctx context.Context, userID string) ([]FeedItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT s.id, s.user_id, COALESCE(u.username, ''), COALESCE(a.name, ''), s.climb_type,
		       s.start_time, s.end_time, COALESCE(s.duration_minutes, 0),
		       COUNT(DISTINCT ac.id), COALESCE(MAX(r.grade), ''),
		       COUNT(DISTINCT l.user_id), COUNT(DISTINCT c.id)
		FROM sessions s
		LEFT JOIN users u ON u.id = s.user_id
		LEFT JOIN areas a ON a.id = s.area_id
		LEFT JOIN ascents ac ON ac.session_id = s.id
		LEFT JOIN routes r ON r.id = ac.route_id
		LEFT JOIN session_likes l ON l.session_id = s.id
		LEFT JOIN comments c ON c.session_id = s.id
		WHERE s.end_time IS NOT NULL
		  AND (s.user_id = $1 OR s.user_id IN (
		      SELECT CASE WHEN f.requester_id=$1 THEN f.addressee_id ELSE f.requester_id END
		      FROM friendships f
		      WHERE f.status='accepted' AND (f.requester_id=$1 OR f.addressee_id=$1)))
		GROUP BY s.id, u.username, a.name
		ORDER BY s.start_time DESC
		LIMIT 50
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var feed []FeedItem
	for rows.Next() {
		var item FeedItem
		if err := rows.Scan(&item.SessionID, &item.UserID, &item.Username, &item.AreaName, &item.ClimbType,
			&item.StartTime, &item.EndTime, &item.DurationMinutes,
			&item.AscentCount, &item.HardestGrade, &item.LikeCount, &item.CommentCount); err != nil {
			return nil, err
		}
		feed = append(feed, item)
	}
	return feed, nil
}
