package product

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/radiantglow/shop-backend/internal/user"
	"github.com/shopspring/decimal"
)

// Handler exposes catalog reads publicly and catalog management to admins.
type Handler struct {
	service ServiceInterface
	users   user.ServiceInterface
}

func NewHandler(s ServiceInterface, us user.ServiceInterface) *Handler {
	return &Handler{service: s, users: us}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.listProducts)
	app.Get("/api/v1/products/:id<[0-9]+>", h.getProduct)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/admin/products", h.listAllProducts)
	app.Post("/api/v1/admin/products", h.createProduct)
	app.Put("/api/v1/admin/products/:id<[0-9]+>", h.updateProduct)
}

// listProducts serves the storefront catalog: active products only.
func (h *Handler) listProducts(c *fiber.Ctx) error {
	products, err := h.service.ListActive()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

// listAllProducts serves the admin dashboard, deactivated products included.
func (h *Handler) listAllProducts(c *fiber.Ctx) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	products, err := h.service.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(products)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(p)
}

type productRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	IsActive      *bool           `json:"isActive"`
	ImageURL      *string         `json:"imageUrl"`
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if strings.TrimSpace(payload.Name) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "name is required"})
	}
	if payload.Price.IsNegative() || payload.StockQuantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price and stock must be non-negative"})
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	created, err := h.service.Create(Product{
		Name:          strings.TrimSpace(payload.Name),
		Description:   payload.Description,
		Price:         payload.Price,
		StockQuantity: payload.StockQuantity,
		IsActive:      active,
		ImageURL:      payload.ImageURL,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	if ok, err := h.requireAdmin(c); !ok {
		return err
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid product id"})
	}

	payload := new(productRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Price.IsNegative() || payload.StockQuantity < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "price and stock must be non-negative"})
	}

	active := true
	if payload.IsActive != nil {
		active = *payload.IsActive
	}

	updated, err := h.service.Update(id, Product{
		Name:          strings.TrimSpace(payload.Name),
		Description:   payload.Description,
		Price:         payload.Price,
		StockQuantity: payload.StockQuantity,
		IsActive:      active,
		ImageURL:      payload.ImageURL,
	})
	if err != nil {
		switch err {
		case ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "product not found"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(updated)
}

// requireAdmin writes the rejection response itself; callers return its
// error and stop when ok is false.
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
