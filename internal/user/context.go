package user

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v4"
)

// GetUserIDFromCtx extracts the authenticated user id from the JWT the
// jwtware middleware stored in Locals("user").
func GetUserIDFromCtx(c *fiber.Ctx) (int, error) {
	u := c.Locals("user")
	if u == nil {
		return 0, fiber.ErrUnauthorized
	}
	tok, ok := u.(*jwt.Token)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	raw, ok := claims["user_id"]
	if !ok {
		return 0, fiber.ErrUnauthorized
	}
	switch v := raw.(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		id, err := strconv.Atoi(v)
		if err != nil {
			return 0, fiber.ErrUnauthorized
		}
		return id, nil
	default:
		return 0, fiber.ErrUnauthorized
	}
}
