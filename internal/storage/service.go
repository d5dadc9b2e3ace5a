package storage

import (
	"context"
	"errors"
	"time"

	"backend-sendit/internal/db"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var validKinds = map[string]bool{
	"ascent_photo":  true,
	"session_photo": true,
	"avatar":        true,
}

type Object struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	URL       string    `json:"url"`
	Kind      string    `json:"kind"`
	RefID     *string   `json:"ref_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// SaveObject records an uploaded media object. RefID links the object to an
// ascent or session for photo kinds; nil for avatars.
func (s *Service) SaveObject(ctx context.Context, userID, url, kind string, refID *string) (string, error) {
	if !validKinds[kind] {
		return "", errors.New("invalid kind")
	}
	id := uuid.NewString()
	_, err := s.db.Exec(ctx, `
		INSERT INTO storage_objects (id, user_id, url, kind, ref_id)
		VALUES ($1,$2,$3,$4,$5)
	`, id, userID, url, kind, refID)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Object, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, url, kind, ref_id, created_at
		FROM storage_objects
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var objects []Object
	for rows.Next() {
		var o Object
		if err := rows.Scan(&o.ID, &o.UserID, &o.URL, &o.Kind, &o.RefID, &o.CreatedAt); err != nil {
			return nil, err
		}
		objects = append(objects, o)
	}
	return objects, nil
}

func (s *Service) Delete(ctx context.Context, id, userID string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM storage_objects WHERE id = $1 AND user_id = $2
	`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("object not found")
	}
	return nil
}

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/upload", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			UserID   string  `json:"user_id"`
			FileName string  `json:"file_name"`
			Kind     string  `json:"kind"`
			RefID    *string `json:"ref_id"`
		}
		_ = c.BodyParser(&body)
		if body.FileName == "" {
			body.FileName = "upload"
		}
		url := "https://storage.example/" + body.FileName
		id, err := svc.SaveObject(c.Context(), body.UserID, url, body.Kind, body.RefID)
		if err != nil {
			if err.Error() == "invalid kind" {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(fiber.Map{
			"id":         id,
			"url":        url,
			"expires_at": time.Now().Add(15 * time.Minute),
		})
	})

	r.Get("/", authMiddleware, func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if userID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		objects, err := svc.ListByUser(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if objects == nil {
			objects = []Object{}
		}
		return c.JSON(objects)
	})

	r.Delete("/:id", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.Delete(c.Context(), c.Params("id"), userID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
