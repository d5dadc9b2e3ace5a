package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errQuery = errors.New("query error")

func TestFindOrCreateArea(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO areas`).
		WithArgs(pgxmock.AnyArg(), "Smith Rock", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow("area-1", "Smith Rock", "user-1", createdAt))

	svc := NewService(mock)
	area, err := svc.FindOrCreateArea(context.Background(), "Smith Rock", "user-1")
	if err != nil {
		t.Fatalf("find or create area: %v", err)
	}
	if area.ID != "area-1" || area.Name != "Smith Rock" {
		t.Fatalf("unexpected area: %+v", area)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindOrCreateAreaEmptyName(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.FindOrCreateArea(context.Background(), "", "user-1"); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestCreateRouteWithLazyArea(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO areas`).
		WithArgs(pgxmock.AnyArg(), "Bishop", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow("area-1", "Bishop", "user-1", time.Now()))

	mock.ExpectQuery(`INSERT INTO routes`).
		WithArgs(pgxmock.AnyArg(), "High Plains Drifter", "V7", "v_scale", "boulder", "area-1", "", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	svc := NewService(mock)
	route, err := svc.CreateRoute(context.Background(), Route{
		Name:             "High Plains Drifter",
		Grade:            "V7",
		DifficultySystem: "v_scale",
		ClimbType:        "boulder",
		AreaName:         "Bishop",
		CreatedBy:        "user-1",
	})
	if err != nil {
		t.Fatalf("create route: %v", err)
	}
	if route.AreaID != "area-1" {
		t.Fatalf("expected lazily created area wired in")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRouteValidation(t *testing.T) {
	svc := NewService(nil)

	if _, err := svc.CreateRoute(context.Background(), Route{Grade: "V1"}); err == nil {
		t.Fatalf("expected name required")
	}
	if _, err := svc.CreateRoute(context.Background(), Route{
		Name: "X", Grade: "V1", DifficultySystem: "v_scale", ClimbType: "bouldering",
	}); err == nil {
		t.Fatalf("expected invalid climb_type")
	}
	if _, err := svc.CreateRoute(context.Background(), Route{
		Name: "X", Grade: "V99", DifficultySystem: "v_scale", ClimbType: "boulder",
	}); err == nil {
		t.Fatalf("expected unknown grade rejection")
	}
}

func TestGetAndListRoutes(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	columns := []string{"id", "name", "grade", "difficulty_system", "climb_type", "area_id", "area_name", "external_id", "created_by", "created_at"}

	mock.ExpectQuery(`SELECT r.id, r.name, r.grade`).
		WithArgs("route-1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("route-1", "Moonlight", "5.10a", "yds", "sport", "area-1", "Smith Rock", "", "user-1", time.Now()))

	svc := NewService(mock)
	route, err := svc.GetRoute(context.Background(), "route-1")
	if err != nil || route.Name != "Moonlight" {
		t.Fatalf("get route: %v", err)
	}

	mock.ExpectQuery(`SELECT r.id, r.name, r.grade`).
		WithArgs("area-1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow("route-1", "Moonlight", "5.10a", "yds", "sport", "area-1", "Smith Rock", "", "user-1", time.Now()).
			AddRow("route-2", "Zebra", "5.9", "yds", "sport", "area-1", "Smith Rock", "", "user-1", time.Now()))

	routes, err := svc.RoutesByArea(context.Background(), "area-1")
	if err != nil || len(routes) != 2 {
		t.Fatalf("routes by area: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteRouteOwnership(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM routes`).
		WithArgs("route-1", "user-1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	svc := NewService(mock)
	if err := svc.DeleteRoute(context.Background(), "route-1", "user-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectExec(`DELETE FROM routes`).
		WithArgs("route-1", "user-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	if err := svc.DeleteRoute(context.Background(), "route-1", "user-2"); err == nil {
		t.Fatalf("expected not-owned error")
	}
}

func TestImportRoute(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO areas`).
		WithArgs(pgxmock.AnyArg(), "Fontainebleau", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow("area-1", "Fontainebleau", "user-1", time.Now()))

	mock.ExpectQuery(`INSERT INTO routes`).
		WithArgs(pgxmock.AnyArg(), "Rainbow Rocket", "8a", "french", "boulder", "area-1", "ext-42", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("route-1", time.Now()))

	svc := NewService(mock)
	route, err := svc.Import(context.Background(), ExternalRoute{
		ID:        "ext-42",
		Name:      "Rainbow Rocket",
		Grade:     "8a",
		System:    "french",
		ClimbType: "boulder",
		AreaName:  "Fontainebleau",
	}, "user-1")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if route.ExternalID != "ext-42" || route.AreaID != "area-1" {
		t.Fatalf("unexpected imported route: %+v", route)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestImportRouteValidation(t *testing.T) {
	svc := NewService(nil)
	if _, err := svc.Import(context.Background(), ExternalRoute{Name: "X"}, "user-1"); err == nil {
		t.Fatalf("expected external id required")
	}
}

func TestImportRouteInsertError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`INSERT INTO areas`).
		WithArgs(pgxmock.AnyArg(), "Unknown", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow("area-1", "Unknown", "user-1", time.Now()))

	mock.ExpectQuery(`INSERT INTO routes`).
		WillReturnError(errQuery)

	svc := NewService(mock)
	if _, err := svc.Import(context.Background(), ExternalRoute{ID: "ext-1", Name: "R", Grade: "6a"}, "user-1"); err == nil {
		t.Fatalf("expected error")
	}
}
