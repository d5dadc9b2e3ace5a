package session

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"backend-sendit/internal/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
)

func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	}
}

func TestSessionStartEndHandlers(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	expectNoActive(mock, "user-1")
	mock.ExpectQuery(`INSERT INTO areas`).
		WithArgs(pgxmock.AnyArg(), "Local Gym", "user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "name", "created_by", "created_at"}).
			AddRow("area-1", "Local Gym", "user-1", time.Now()))
	mock.ExpectQuery(`INSERT INTO sessions`).
		WithArgs(pgxmock.AnyArg(), "user-1", "area-1", "boulder", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"start_time", "created_at"}).AddRow(time.Now(), time.Now()))

	startedAt := time.Now().Add(-30 * time.Minute)
	mock.ExpectQuery(`SELECT s.id, s.user_id, s.area_id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns()).
			AddRow("sess-1", "user-1", "area-1", "Local Gym", "boulder",
				startedAt, (*time.Time)(nil), (*int)(nil), "", time.Now()))
	mock.ExpectExec(`UPDATE sessions`).
		WithArgs("sess-1", pgxmock.AnyArg(), 30, "pumped").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	app := fiber.New()
	RegisterRoutes(app.Group("/sessions"), NewService(mock, catalog.NewService(mock)), asUser("user-1"))

	body, _ := json.Marshal(map[string]string{"user_id": "user-1", "climb_type": "boulder", "area_name": "Local Gym"})
	req := httptest.NewRequest(http.MethodPost, "/sessions/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusCreated {
		t.Fatalf("start status: %v", err)
	}

	body, _ = json.Marshal(map[string]string{"user_id": "user-1", "notes": "pumped"})
	req = httptest.NewRequest(http.MethodPost, "/sessions/end", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("end status: %v", err)
	}
}

func TestSessionStartConflictHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT s.id, s.user_id, s.area_id`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows(sessionColumns()).
			AddRow("sess-1", "user-1", "area-1", "Local Gym", "boulder",
				time.Now(), (*time.Time)(nil), (*int)(nil), "", time.Now()))

	app := fiber.New()
	RegisterRoutes(app.Group("/sessions"), NewService(mock, catalog.NewService(mock)), asUser("user-1"))

	body, _ := json.Marshal(map[string]string{"user_id": "user-1", "climb_type": "boulder", "area_name": "Local Gym"})
	req := httptest.NewRequest(http.MethodPost, "/sessions/start", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected conflict while a session is active, got %d", resp.StatusCode)
	}
}

func TestSessionEndConflictHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	expectNoActive(mock, "user-1")

	app := fiber.New()
	RegisterRoutes(app.Group("/sessions"), NewService(mock, catalog.NewService(mock)), asUser("user-1"))

	body, _ := json.Marshal(map[string]string{"user_id": "user-1"})
	req := httptest.NewRequest(http.MethodPost, "/sessions/end", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected conflict for end without active session, got %d", resp.StatusCode)
	}
}

func TestSessionActiveHandlerNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT s.id, s.user_id, s.area_id`).
		WithArgs("user-1").
		WillReturnError(pgx.ErrNoRows)

	app := fiber.New()
	RegisterRoutes(app.Group("/sessions"), NewService(mock, catalog.NewService(mock)), asUser("user-1"))

	req := httptest.NewRequest(http.MethodGet, "/sessions/active?user_id=user-1", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected not found without active session, got %d", resp.StatusCode)
	}
}

func TestSessionSummaryHandler(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT COUNT\(a.id\)`).
		WithArgs("sess-1").
		WillReturnRows(pgxmock.NewRows([]string{"count", "hardest", "duration"}).AddRow(2, "5.11a", 60))

	app := fiber.New()
	RegisterRoutes(app.Group("/sessions"), NewService(mock, catalog.NewService(mock)), asUser("user-1"))

	req := httptest.NewRequest(http.MethodGet, "/sessions/sess-1/summary", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("summary status: %v", err)
	}
}
