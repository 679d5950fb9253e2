package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Claves de contexto compartidas entre middleware y handlers
const (
	CtxAccessToken = "access_token"
	CtxRequestID   = "request_id"
)

// BearerToken extrae el token del header Authorization y lo deja en el
// contexto. No valida nada: la verificación es del backend; acá el token
// solo se reenvía y se usa para resolver identidad.
func BearerToken() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
			c.Locals(CtxAccessToken, strings.TrimSpace(authHeader[7:]))
		}
		return c.Next()
	}
}

// RequireBearer corta con 401 los endpoints de escritura cuando el
// request llega sin token
func RequireBearer() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if AccessToken(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Falta el header Authorization",
			})
		}
		return c.Next()
	}
}

// AccessToken devuelve el token del request actual, vacío si no vino
func AccessToken(c *fiber.Ctx) string {
	if token, ok := c.Locals(CtxAccessToken).(string); ok {
		return token
	}
	return ""
}
