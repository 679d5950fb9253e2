package handlers

import (
	"strconv"
	"time"

	"github.com/acamposr/event-surveys-api/internal/application/identity"
	"github.com/acamposr/event-surveys-api/internal/application/usecases"
	"github.com/acamposr/event-surveys-api/internal/domain/entities"
	"github.com/acamposr/event-surveys-api/internal/interfaces/http/middleware"
	"github.com/gofiber/fiber/v2"
)

// SurveyHandler atiende el catálogo de encuestas con el estado anotado
// por usuario
type SurveyHandler struct {
	catalogUseCase usecases.CatalogUseCase
	statusUseCase  usecases.StatusUseCase
	sessions       *identity.Provider
	resolver       *identity.Resolver
}

func NewSurveyHandler(catalogUseCase usecases.CatalogUseCase, statusUseCase usecases.StatusUseCase, sessions *identity.Provider, resolver *identity.Resolver) *SurveyHandler {
	return &SurveyHandler{
		catalogUseCase: catalogUseCase,
		statusUseCase:  statusUseCase,
		sessions:       sessions,
		resolver:       resolver,
	}
}

// GetSurveys lista encuestas filtradas por evento, actividad y tipo, cada
// una anotada con {status, status_label, actionable} para el usuario
// actual. Con solo activity_id se usa la variante de ponentes.
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	token := middleware.AccessToken(c)

	eventID, _ := strconv.Atoi(c.Query("event_id", "0"))
	activityID, _ := strconv.Atoi(c.Query("activity_id", "0"))
	surveyType := c.Query("type", "")
	if surveyType == "all" {
		surveyType = ""
	}

	var (
		surveys []entities.Survey
		err     error
	)

	switch {
	case eventID > 0:
		filter := usecases.CatalogFilter{
			EventID: uint(eventID),
			Type:    entities.SurveyType(surveyType),
		}
		if activityID > 0 {
			id := uint(activityID)
			filter.ActivityID = &id
		}
		surveys, err = h.catalogUseCase.FilterSurveys(c.UserContext(), token, filter)
	case activityID > 0:
		surveys, err = h.catalogUseCase.GetSurveysByActivity(c.UserContext(), token, uint(activityID))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Se requiere event_id o activity_id",
		})
	}
	if err != nil {
		return respondError(c, err)
	}

	attendeeID := resolveAttendee(c, h.sessions, h.resolver)
	annotated := h.statusUseCase.Annotate(surveys, attendeeID, time.Now())

	return c.JSON(fiber.Map{
		"data":  annotated,
		"total": len(annotated),
	})
}
