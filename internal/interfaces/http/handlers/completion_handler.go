package handlers

import (
	"strconv"

	"github.com/acamposr/event-surveys-api/internal/application/identity"
	"github.com/acamposr/event-surveys-api/internal/application/usecases"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// CompletionHandler atiende el flujo de abrir el formulario externo y
// confirmar su completitud
type CompletionHandler struct {
	completionUseCase usecases.CompletionUseCase
	sessions          *identity.Provider
	resolver          *identity.Resolver
}

func NewCompletionHandler(completionUseCase usecases.CompletionUseCase, sessions *identity.Provider, resolver *identity.Resolver) *CompletionHandler {
	return &CompletionHandler{
		completionUseCase: completionUseCase,
		sessions:          sessions,
		resolver:          resolver,
	}
}

// OpenSurveyForm pasa el flujo a form_opened y devuelve la URL del
// formulario externo más si corresponde armar la confirmación al volver
func (h *CompletionHandler) OpenSurveyForm(c *fiber.Ctx) error {
	surveyID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	eventID, _ := strconv.Atoi(c.Query("event_id", "0"))

	token := middleware.AccessToken(c)
	attendeeID := resolveAttendee(c, h.sessions, h.resolver)

	result, err := h.completionUseCase.Open(c.UserContext(), token, uint(eventID), surveyID, attendeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}

// CompleteSurvey confirma "sí, completé el formulario". Repetir la
// confirmación de una encuesta ya completada no es un error: degrada a
// re-confirmar el estado completed.
func (h *CompletionHandler) CompleteSurvey(c *fiber.Ctx) error {
	surveyID, err := parseUintParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	token := middleware.AccessToken(c)
	attendeeID := resolveAttendee(c, h.sessions, h.resolver)

	result, err := h.completionUseCase.Confirm(c.UserContext(), token, surveyID, attendeeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(result)
}
