package training

import (
	"context"
	"errors"
	"log"

	"backend-sendit/internal/db"

	"github.com/google/uuid"
)

const (
	SourceOpenAI   = "openai"
	SourceTemplate = "template"
)

type Service struct {
	db  db.Querier
	gen Generator
}

// NewService takes a nil Generator when plan generation should be
// template-only.
func NewService(db db.Querier, gen Generator) *Service {
	return &Service{db: db, gen: gen}
}

// Generate builds a plan from the user's recent logbook and persists
// it. Generation failures degrade to the template body rather than
// failing the request.
func (s *Service) Generate(ctx context.Context, userID, goal string, weeks int, focus string) (Plan, error) {
	if userID == "" || goal == "" {
		return Plan{}, errors.New("user_id and goal required")
	}
	if weeks <= 0 {
		weeks = 4
	}
	if weeks > 12 {
		weeks = 12
	}

	req := PlanRequest{Goal: goal, Weeks: weeks, Focus: focus}
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(a.id), COALESCE(MAX(r.grade), '')
		FROM ascents a
		LEFT JOIN routes r ON r.id = a.route_id
		WHERE a.user_id=$1 AND a.date_climbed > NOW() - INTERVAL '60 days'
	`, userID)
	if err := row.Scan(&req.RecentClimbs, &req.HardestGrade); err != nil {
		return Plan{}, err
	}

	body, source := "", SourceTemplate
	if s.gen != nil {
		generated, err := s.gen.GeneratePlan(ctx, req)
		if err != nil {
			log.Printf("plan generation failed, using template: %v", err)
		} else {
			body, source = generated, SourceOpenAI
		}
	}
	if body == "" {
		body, source = templatePlan(req), SourceTemplate
	}

	plan := Plan{
		ID:     uuid.NewString(),
		UserID: userID,
		Goal:   goal,
		Weeks:  weeks,
		Focus:  focus,
		Body:   body,
		Source: source,
	}
	insert := s.db.QueryRow(ctx, `
		INSERT INTO training_plans (id, user_id, goal, weeks, focus, body, source)
		VALUES ($1,$2,$3,$4,NULLIF($5,''),$6,$7)
		RETURNING created_at
	`, plan.ID, plan.UserID, plan.Goal, plan.Weeks, plan.Focus, plan.Body, plan.Source)
	if err := insert.Scan(&plan.CreatedAt); err != nil {
		return Plan{}, err
	}
	return plan, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Plan, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, goal, weeks, COALESCE(focus, ''), body, source, created_at
		FROM training_plans
		WHERE user_id=$1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plans []Plan
	for rows.Next() {
		var p Plan
		if err := rows.Scan(&p.ID, &p.UserID, &p.Goal, &p.Weeks, &p.Focus, &p.Body, &p.Source, &p.CreatedAt); err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM training_plans WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("plan not found or not owned")
	}
	return nil
}
