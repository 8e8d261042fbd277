package order

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/radiantglow/shop-backend/internal/user"
)

// Handler serves the buyer's order history and the operator endpoints.
type Handler struct {
	service *Service
	users   user.ServiceInterface
}

func NewHandler(s *Service, us user.ServiceInterface) *Handler {
	return &Handler{service: s, users: us}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.listOrders)
	app.Get("/api/v1/admin/orders", h.listAllOrders)
	app.Patch("/api/v1/admin/orders/:id<[0-9]+>/status", h.updateStatus)
}

// listOrders returns all orders belonging to the authenticated user,
// newest first, with line items attached.
func (h *Handler) listOrders(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	orders, err := h.service.ListByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

func (h *Handler) listAllOrders(c *fiber.Ctx) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	orders, err := h.service.ListAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	orderID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid order id"})
	}

	payload := new(updateStatusRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	status, err := ParseStatus(payload.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.SetStatus(orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "order not found"})
		case errors.Is(err, ErrInvalidTransition):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}

func (h *Handler) requireAdmin(c *fiber.Ctx) (bool, error) {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return false, c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}
	prof, err := h.users.GetByID(userID)
	if err != nil || !prof.IsAdmin {
		return false, c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "admin only"})
	}
	return true, nil
}
