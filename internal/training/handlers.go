package training

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/plans", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			UserID string `json:"user_id"`
			Goal   string `json:"goal"`
			Weeks  int    `json:"weeks"`
			Focus  string `json:"focus"`
		}
		if err := c.BodyParser(&body); err != nil || body.UserID == "" || body.Goal == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id and goal required")
		}
		plan, err := svc.Generate(c.Context(), body.UserID, body.Goal, body.Weeks, body.Focus)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(plan)
	})

	r.Get("/plans", authMiddleware, func(c *fiber.Ctx) error {
		userID := c.Query("user_id")
		if userID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "user_id required")
		}
		plans, err := svc.List(c.Context(), userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		if plans == nil {
			plans = []Plan{}
		}
		return c.JSON(plans)
	})

	r.Delete("/plans/:id", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.Delete(c.Context(), c.Params("id"), userID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}
