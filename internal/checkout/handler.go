package checkout

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/radiantglow/shop-backend/internal/user"
)

// Handler exposes the single checkout entry point. The profile-completed
// gate lives here; PlaceOrder still validates its own inputs if called
// without it.
type Handler struct {
	service *Service
	users   user.ServiceInterface
}

func NewHandler(s *Service, us user.ServiceInterface) *Handler {
	return &Handler{service: s, users: us}
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/checkout", h.placeOrder)
}

type placeOrderRequest struct {
	ShippingAddress string `json:"shippingAddress"`
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	userID, err := user.GetUserIDFromCtx(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "unauthorized"})
	}

	prof, err := h.users.GetByID(userID)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "profile not found"})
	}
	if !prof.ProfileCompleted {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "please complete your profile first"})
	}

	payload := new(placeOrderRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.PlaceOrder(userID, payload.ShippingAddress)
	if err != nil {
		var stockErr *InsufficientStockError
		switch {
		case errors.Is(err, ErrEmptyAddress), errors.Is(err, ErrEmptyCart), errors.Is(err, ErrInvalidUser):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		case errors.As(err, &stockErr):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message":   stockErr.Error(),
				"productId": stockErr.ProductID,
			})
		case errors.Is(err, ErrStockConflict):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(ord)
}
