package middleware

import (
	"strconv"
	"strings"

	"github.com/Brunoball/Mesas-Examen-sub001/internal/auth"
	"github.com/Brunoball/Mesas-Examen-sub001/internal/dto"
	"github.com/gofiber/fiber/v2"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
}

func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// Required exige un token válido.
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("token ausente"))
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("formato de token inválido"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.jwtService.ValidarToken(tokenString)
		if err != nil {
			if strings.Contains(err.Error(), "expired") {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("token expirado"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Fallo("token inválido"))
		}

		idUsuario, _ := strconv.Atoi(claims.Sub)
		c.Locals("idUsuario", idUsuario)
		c.Locals("rolUsuario", claims.Rol)

		return c.Next()
	}
}

// AdminOnly corta el paso a todo rol que no sea admin.
func (m *AuthMiddleware) AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := c.Locals("rolUsuario")
		if rol == nil || rol.(string) != "admin" {
			return c.Status(fiber.StatusForbidden).JSON(dto.Fallo("acceso denegado: solo admin"))
		}
		return c.Next()
	}
}

// IDUsuario devuelve el id del usuario autenticado, o 0.
func IDUsuario(c *fiber.Ctx) int {
	id := c.Locals("idUsuario")
	if id == nil {
		return 0
	}
	return id.(int)
}
