package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
)

var errSave = errors.New("save error")

func TestSaveObject(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO storage_objects`).
		WithArgs(pgxmock.AnyArg(), "user-1", "https://storage.example/file", "ascent_photo", (*string)(nil)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	svc := NewService(mock)
	id, err := svc.SaveObject(context.Background(), "user-1", "https://storage.example/file", "ascent_photo", nil)
	if err != nil {
		t.Fatalf("save object: %v", err)
	}
	if id == "" {
		t.Fatalf("expected id")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveObjectInvalidKind(t *testing.T) {
	svc := NewService(nil)
	_, err := svc.SaveObject(context.Background(), "user-1", "url", "document", nil)
	if err == nil {
		t.Fatalf("expected invalid kind error")
	}
}

func TestSaveObjectError(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`INSERT INTO storage_objects`).
		WithArgs(pgxmock.AnyArg(), "user-1", "url", "avatar", (*string)(nil)).
		WillReturnError(errSave)

	svc := NewService(mock)
	_, err = svc.SaveObject(context.Background(), "user-1", "url", "avatar", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestListByUser(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	ref := "session-1"
	mock.ExpectQuery(`SELECT id, user_id, url, kind, ref_id, created_at`).
		WithArgs("user-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "user_id", "url", "kind", "ref_id", "created_at"}).
			AddRow("obj-1", "user-1", "https://storage.example/a.jpg", "session_photo", &ref, time.Now()).
			AddRow("obj-2", "user-1", "https://storage.example/b.jpg", "avatar", (*string)(nil), time.Now()))

	svc := NewService(mock)
	objects, err := svc.ListByUser(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(objects) != 2 {
		t.Fatalf("expected 2 objects, got %d", len(objects))
	}
	if objects[0].RefID == nil || *objects[0].RefID != "session-1" {
		t.Fatalf("expected ref to session-1")
	}
}

func TestDeleteNotOwned(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`DELETE FROM storage_objects`).
		WithArgs("obj-1", "user-2").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	svc := NewService(mock)
	if err := svc.Delete(context.Background(), "obj-1", "user-2"); err == nil {
		t.Fatalf("expected not found error")
	}
}
