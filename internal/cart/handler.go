package cart

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/radiantglow/shop-backend/internal/user"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/cart", h.getCart)
	app.Put("/api/v1/cart/items", h.setItem)
	app.Delete("/api/v1/cart/items/:productId<[0-9]+>", h.removeItem)
	app.Delete("/api/v1/cart", h.clearCart)
}

func (h *Handler) getCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	lines, err := h.service.GetCartLines(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(lines)
}

type setItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

func (h *Handler) setItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	payload := new(setItemRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.ProductID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	lines, err := h.service.SetItem(userID, payload.ProductID, payload.Quantity)
	if err != nil {
		switch err {
		case ErrProductNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(lines)
}

func (h *Handler) removeItem(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	productID, err := strconv.Atoi(c.Params("productId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	lines, err := h.service.RemoveItem(userID, productID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(lines)
}

func (h *Handler) clearCart(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	if err := h.service.ClearCart(userID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"message": "cart cleared"})
}
