package catalog

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, client *Client, authMiddleware fiber.Handler) {
	r.Post("/areas", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Name   string `json:"name"`
			UserID string `json:"user_id"`
		}
		if err := c.BodyParser(&body); err != nil || body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name required")
		}
		area, err := svc.FindOrCreateArea(c.Context(), body.Name, body.UserID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(area)
	})

	r.Post("/routes", authMiddleware, func(c *fiber.Ctx) error {
		var req Route
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		route, err := svc.CreateRoute(c.Context(), req)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(route)
	})

	r.Get("/routes/:id", func(c *fiber.Ctx) error {
		route, err := svc.GetRoute(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "route not found")
		}
		return c.JSON(route)
	})

	r.Get("/areas/:id/routes", func(c *fiber.Ctx) error {
		routes, err := svc.RoutesByArea(c.Context(), c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return c.JSON(routes)
	})

	r.Delete("/routes/:id", authMiddleware, func(c *fiber.Ctx) error {
		userID, _ := c.Locals("user_id").(string)
		if err := svc.DeleteRoute(c.Context(), c.Params("id"), userID); err != nil {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/search", func(c *fiber.Ctx) error {
		query := c.Query("query")
		if query == "" {
			return fiber.NewError(fiber.StatusBadRequest, "query required")
		}
		limit, _ := strconv.Atoi(c.Query("limit"))
		results, err := client.Search(c.Context(), query, limit)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, err.Error())
		}
		if results == nil {
			results = []ExternalRoute{}
		}
		return c.JSON(results)
	})

	r.Post("/import", authMiddleware, func(c *fiber.Ctx) error {
		var req ExternalRoute
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		userID, _ := c.Locals("user_id").(string)
		route, err := svc.Import(c.Context(), req, userID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(route)
	})
}
