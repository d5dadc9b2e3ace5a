package catalog

import (
	"context"
	"errors"

	"backend-sendit/internal/db"
	"backend-sendit/internal/shared/grade"

	"github.com/google/uuid"
)

var validClimbTypes = map[string]bool{
	"sport": true, "trad": true, "boulder": true, "aid": true, "mixed": true, "ice": true,
}

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// FindOrCreateArea returns the area row for name, creating it on first
// reference. Areas are never updated afterward; the conflict clause
// only exists so RETURNING yields the existing row.
func (s *Service) FindOrCreateArea(ctx context.Context, name, userID string) (Area, error) {
	if name == "" {
		return Area{}, errors.New("area name required")
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO areas (id, name, created_by)
		VALUES ($1,$2,$3)
		ON CONFLICT (name) DO UPDATE SET name=EXCLUDED.name
		RETURNING id, name, created_by, created_at
	`, uuid.NewString(), name, userID)

	var area Area
	if err := row.Scan(&area.ID, &area.Name, &area.CreatedBy, &area.CreatedAt); err != nil {
		return Area{}, err
	}
	return area, nil
}

func (s *Service) CreateRoute(ctx context.Context, input Route) (Route, error) {
	if input.Name == "" || input.Grade == "" {
		return Route{}, errors.New("name and grade required")
	}
	if !validClimbTypes[input.ClimbType] {
		return Route{}, errors.New("invalid climb_type")
	}
	if _, ok := grade.Ordinal(grade.System(input.DifficultySystem), input.Grade); !ok {
		return Route{}, errors.New("grade not found in difficulty_system")
	}

	if input.AreaID == "" {
		area, err := s.FindOrCreateArea(ctx, input.AreaName, input.CreatedBy)
		if err != nil {
			return Route{}, err
		}
		input.AreaID = area.ID
		input.AreaName = area.Name
	}

	input.ID = uuid.NewString()
	row := s.db.QueryRow(ctx, `
		INSERT INTO routes (id, name, grade, difficulty_system, climb_type, area_id, external_id, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),$8)
		RETURNING created_at
	`, input.ID, input.Name, input.Grade, input.DifficultySystem, input.ClimbType, input.AreaID, input.ExternalID, input.CreatedBy)
	if err := row.Scan(&input.CreatedAt); err != nil {
		return Route{}, err
	}
	return input, nil
}

func (s *Service) GetRoute(ctx context.Context, id string) (Route, error) {
	row := s.db.QueryRow(ctx, `
		SELECT r.id, r.name, r.grade, r.difficulty_system, r.climb_type, r.area_id,
		       COALESCE(a.name, ''), COALESCE(r.external_id, ''), r.created_by, r.created_at
		FROM routes r
		LEFT JOIN areas a ON a.id = r.area_id
		WHERE r.id=$1
	`, id)
	var route Route
	if err := row.Scan(&route.ID, &route.Name, &route.Grade, &route.DifficultySystem, &route.ClimbType,
		&route.AreaID, &route.AreaName, &route.ExternalID, &route.CreatedBy, &route.CreatedAt); err != nil {
		return Route{}, err
	}
	return route, nil
}

func (s *Service) RoutesByArea(ctx context.Context, areaID string) ([]Route, error) {
	rows, err := s.db.Query(ctx, `
		SELECT r.id, r.name, r.grade, r.difficulty_system, r.climb_type, r.area_id,
		       COALESCE(a.name, ''), COALESCE(r.external_id, ''), r.created_by, r.created_at
		FROM routes r
		LEFT JOIN areas a ON a.id = r.area_id
		WHERE r.area_id=$1
		ORDER BY r.name
	`, areaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var routes []Route
	for rows.Next() {
		var r Route
		if err := rows.Scan(&r.ID, &r.Name, &r.Grade, &r.DifficultySystem, &r.ClimbType,
			&r.AreaID, &r.AreaName, &r.ExternalID, &r.CreatedBy, &r.CreatedAt); err != nil {
			return nil, err
		}
		routes = append(routes, r)
	}
	return routes, nil
}

func (s *Service) DeleteRoute(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM routes WHERE id=$1 AND created_by=$2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("route not found or not owned")
	}
	return nil
}

// Import persists a search hit from the open route database as a local
// route, lazily creating its area. Re-importing the same external id
// refreshes the stored copy instead of duplicating it.
func (s *Service) Import(ctx context.Context, ext ExternalRoute, userID string) (Route, error) {
	if ext.ID == "" || ext.Name == "" || ext.Grade == "" {
		return Route{}, errors.New("external id, name and grade required")
	}
	climbType := ext.ClimbType
	if !validClimbTypes[climbType] {
		climbType = "sport"
	}
	areaName := ext.AreaName
	if areaName == "" {
		areaName = "Unknown"
	}

	area, err := s.FindOrCreateArea(ctx, areaName, userID)
	if err != nil {
		return Route{}, err
	}

	route := Route{
		ID:               uuid.NewString(),
		Name:             ext.Name,
		Grade:            ext.Grade,
		DifficultySystem: ext.System,
		ClimbType:        climbType,
		AreaID:           area.ID,
		AreaName:         area.Name,
		ExternalID:       ext.ID,
		CreatedBy:        userID,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO routes (id, name, grade, difficulty_system, climb_type, area_id, external_id, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (external_id) DO UPDATE
		SET name=EXCLUDED.name, grade=EXCLUDED.grade, difficulty_system=EXCLUDED.difficulty_system,
		    climb_type=EXCLUDED.climb_type, area_id=EXCLUDED.area_id
		RETURNING id, created_at
	`, route.ID, route.Name, route.Grade, route.DifficultySystem, route.ClimbType, route.AreaID, route.ExternalID, route.CreatedBy)
	if err := row.Scan(&route.ID, &route.CreatedAt); err != nil {
		return Route{}, err
	}
	return route, nil
}
