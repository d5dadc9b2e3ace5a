package stats

import (
	"backend-sendit/internal/shared/grade"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Get("/progress", authMiddleware, func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if userID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		progress, err := svc.Progress(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(progress)
	})

	r.Get("/grades/:system", func(c *fiber.Ctx) error {
		system := grade.System(c.Params("system"))
		labels := grade.Labels(system)
		if len(labels) == 0 {
			return fiber.NewError(fiber.StatusNotFound, "unknown grading system")
		}
		return c.JSON(fiber.Map{"system": system, "grades": labels})
	})
}
