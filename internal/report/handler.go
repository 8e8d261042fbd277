package report

import (
	"github.com/gofiber/fiber/v2"
	"github.com/radiantglow/shop-backend/internal/user"
)

type Handler struct {
	service *Service
	users   user.ServiceInterface
}

func NewHandler(s *Service, us user.ServiceInterface) *Handler {
	return &Handler{service: s, users: us}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/stats", h.getStats)
}

func (h *Handler) getStats(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	prof, err := h.users.GetByID(userID)
	if err != nil || !prof.IsAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}

	stats, err := h.service.Stats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(stats)
}
