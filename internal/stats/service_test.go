package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

func TestProgressQueryAndAggregate(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	flash := "flash"
	climbed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT a.date_climbed, a.style, a.attempts`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"date_climbed", "style", "attempts", "grade", "climb_type", "name"}).
			AddRow(climbed, &flash, 1, "V3", "boulder", "Smith Rock").
			AddRow(climbed, (*string)(nil), 2, "V5", "boulder", "Smith Rock"))

	svc := NewService(mock)
	progress, err := svc.Progress(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.TotalClimbs != 2 || progress.TotalSessions != 1 {
		t.Fatalf("unexpected totals: %+v", progress)
	}
	if progress.HardestGrades["boulder"] != "V5" {
		t.Fatalf("unexpected hardest grade")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProgressEmptyHistory(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT a.date_climbed, a.style, a.attempts`).
		WithArgs("user-2").
		WillReturnRows(pgxmock.NewRows([]string{"date_climbed", "style", "attempts", "grade", "climb_type", "name"}))

	svc := NewService(mock)
	progress, err := svc.Progress(context.Background(), "user-2")
	if err != nil {
		t.Fatalf("progress: %v", err)
	}
	if progress.TotalClimbs != 0 {
		t.Fatalf("expected empty stats")
	}
	if progress.StyleDistribution == nil || progress.GradePyramid == nil {
		t.Fatalf("collections must be non-nil for empty history")
	}
}

func TestProgressQueryError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectQuery(`SELECT a.date_climbed, a.style, a.attempts`).
		WithArgs("user-err").
		WillReturnError(errors.New("query error"))

	svc := NewService(mock)
	if _, err := svc.Progress(context.Background(), "user-err"); err == nil {
		t.Fatalf("expected error")
	}
}
