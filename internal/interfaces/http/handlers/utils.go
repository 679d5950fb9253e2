package handlers

import (
	"errors"
	"strconv"

	"github.com/acamposr/event-surveys-api/internal/application/identity"
	"github.com/acamposr/event-surveys-api/internal/application/usecases"
	"github.com/acamposr/event-surveys-api/internal/domain/repositories"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// resolveAttendee intenta resolver el id de asistente del request; un
// string vacío significa identidad sin resolver (los usecases deciden si
// eso es un error o solo "sin datos")
func resolveAttendee(c *fiber.Ctx, sessions *identity.Provider, resolver *identity.Resolver) string {
	token := middleware.AccessToken(c)
	if token == "" {
		return ""
	}
	attendeeID, _ := resolver.ResolveAttendeeID(sessions.Session(c.UserContext(), token))
	return attendeeID
}

// parseUintParam lee un parámetro de ruta numérico (":id")
func parseUintParam(c *fiber.Ctx, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("parámetro '" + name + "' inválido")
	}
	return uint(value), nil
}

// respondError mapea la taxonomía de errores a respuestas HTTP:
// identidad/sesión → 401 y re-login; validación → 400; fallas del
// backend → su mismo status con señal de reintento para el front
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usecases.ErrEventRequired), errors.Is(err, usecases.ErrInvalidSurveyType):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecases.ErrSurveyNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usecases.ErrIdentityUnresolved):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":  err.Error(),
			"action": "reauthenticate",
		})
	case errors.Is(err, repositories.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":  err.Error(),
			"action": "reauthenticate",
		})
	}

	var upstream *repositories.UpstreamError
	if errors.As(err, &upstream) {
		return c.Status(upstream.Status).JSON(fiber.Map{
			"error":     upstream.Message,
			"retryable": true,
		})
	}

	// fallas de red u otras: el front muestra el control de reintento
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":     err.Error(),
		"retryable": true,
	})
}
