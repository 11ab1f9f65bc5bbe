package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/articulos-centros/internal/application/dto"
	"github.com/jhoicas/articulos-centros/pkg/jwt"
)

// LocalClient key en c.Locals con el cliente autenticado.
const LocalClient = "client"

// AuthMiddleware valida el Bearer Token JWT y deja el cliente en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		client, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalClient, client)
		return c.Next()
	}
}

// GetClient devuelve el cliente del contexto (después del middleware de auth).
func GetClient(c *fiber.Ctx) string {
	v := c.Locals(LocalClient)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
